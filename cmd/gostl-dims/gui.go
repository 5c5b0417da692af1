package main

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gostl-dims/internal/app"
	"github.com/philipparndt/gostl-dims/internal/config"
	"github.com/philipparndt/gostl-dims/internal/dimension"
	"github.com/philipparndt/gostl-dims/internal/overlay"
	"github.com/philipparndt/gostl-dims/internal/scene"
	"github.com/philipparndt/gostl-dims/pkg/viewer"
	"github.com/philipparndt/gostl-dims/pkg/watcher"
	"github.com/spf13/cobra"
)

var guiCmd = &cobra.Command{
	Use:   "gui [file]",
	Short: "Open the model in a desktop window",
	Args:  cobra.ExactArgs(1),
	RunE:  runGUI,
}

func init() {
	rootCmd.AddCommand(guiCmd)
}

type guiApp struct {
	cfg        *config.Config
	path       string
	window     fyne.Window
	renderer   *viewer.ModelRenderer
	controller *dimension.Controller
	sizeLabels [3]*widget.Label
	modelLabel *widget.Label
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	model, bounds, err := app.LoadModel(args[0], cfg.Model.ZUp)
	if err != nil {
		return err
	}
	opts, err := cfg.ControllerOptions()
	if err != nil {
		return err
	}

	a := fyneapp.New()
	w := a.NewWindow("GoSTL Dimensions - " + filepath.Base(args[0]))

	root := scene.NewScene()
	layer := overlay.NewLayer()
	renderer := viewer.NewModelRenderer(model, root, layer)

	opts.Annotation.Layer = layer
	opts.Annotation.Measurer = viewer.TextMeasurer{}
	g := &guiApp{
		cfg:        cfg,
		path:       args[0],
		window:     w,
		renderer:   renderer,
		controller: dimension.NewController(root, renderer.Camera(), opts),
		modelLabel: widget.NewLabel(""),
	}
	for i := range g.sizeLabels {
		g.sizeLabels[i] = widget.NewLabel("")
	}
	g.controller.Build(bounds)
	g.updateInfo(model.TriangleCount())

	renderer.SetOnFrame(func(cam *viewer.Camera, width, height float64) {
		g.controller.Update(cam, dimension.Viewport{Width: width, Height: height})
	})

	if cfg.Watch.Enabled {
		fw, err := g.watch(cmd)
		if err != nil {
			logger.Warn("auto reload disabled", "err", err)
		} else {
			defer fw.Close()
		}
	}

	w.SetContent(container.NewBorder(nil, nil, nil, g.sidebar(), renderer))
	w.Resize(fyne.NewSize(float32(cfg.Viewport.Width), float32(cfg.Viewport.Height)))
	w.ShowAndRun()

	g.controller.Release()
	return nil
}

func (g *guiApp) sidebar() fyne.CanvasObject {
	title := widget.NewLabel("Dimensions")
	title.TextStyle = fyne.TextStyle{Bold: true}

	toggle := widget.NewCheck("Show dimensions", nil)
	toggle.SetChecked(g.controller.Visible())
	toggle.OnChanged = func(checked bool) {
		if checked {
			g.controller.Show()
		} else {
			g.controller.Hide()
		}
		g.redraw()
	}

	return container.NewVBox(
		title,
		g.sizeLabels[dimension.Width],
		g.sizeLabels[dimension.Height],
		g.sizeLabels[dimension.Depth],
		widget.NewSeparator(),
		toggle,
		widget.NewSeparator(),
		g.modelLabel,
	)
}

func (g *guiApp) updateInfo(triangles int) {
	for _, a := range g.controller.Annotations() {
		g.sizeLabels[a.Axis()].SetText(fmt.Sprintf("%s: %s", a.Axis(), a.Text()))
	}
	g.modelLabel.SetText(fmt.Sprintf("Triangles: %d", triangles))
}

func (g *guiApp) redraw() {
	size := g.renderer.Size()
	g.renderer.Render(float64(size.Width), float64(size.Height))
}

// watch reloads the model off the UI thread and swaps it in with fyne.Do
func (g *guiApp) watch(cmd *cobra.Command) (*watcher.FileWatcher, error) {
	fw, err := watcher.NewFileWatcher(g.cfg.Watch.Debounce, logger)
	if err != nil {
		return nil, err
	}

	reload := func(path string) {
		model, bounds, err := app.LoadModel(path, g.cfg.Model.ZUp)
		if err != nil {
			logger.Warn("reload failed", "path", path, "err", err)
			fyne.Do(func() {
				dialog.ShowError(fmt.Errorf("failed to reload: %w", err), g.window)
			})
			return
		}

		fyne.Do(func() {
			g.controller.Rebuild(bounds)
			g.renderer.SetModel(model)
			g.updateInfo(model.TriangleCount())
		})
	}

	if err := fw.Watch([]string{g.path}, reload); err != nil {
		fw.Close()
		return nil, err
	}
	fw.Start(cmd.Context())
	logger.Info("watching file for changes", "path", g.path)
	return fw, nil
}
