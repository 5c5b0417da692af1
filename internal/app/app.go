// Package app is the interactive raylib viewer: it loads a model, frames the
// camera on it, and draws the width, height and depth dimensions.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gostl-dims/internal/config"
	"github.com/philipparndt/gostl-dims/internal/dimension"
	"github.com/philipparndt/gostl-dims/internal/overlay"
	"github.com/philipparndt/gostl-dims/internal/scene"
	"github.com/philipparndt/gostl-dims/pkg/viewer"
	"golang.org/x/image/font/gofont/goregular"
)

// Options configures Run
type Options struct {
	Path   string
	Config *config.Config
	Logger *slog.Logger
}

// Run opens the viewer window and blocks until it is closed
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	model, bounds, err := LoadModel(opts.Path, cfg.Model.ZUp)
	if err != nil {
		return err
	}

	ctrlOpts, err := cfg.ControllerOptions()
	if err != nil {
		return err
	}

	// Initialize window
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Viewport.Width), int32(cfg.Viewport.Height), "GoSTL Dimensions - "+filepath.Base(opts.Path))
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	app := &App{
		Model: ModelData{
			model:  model,
			bounds: bounds,
		},
		View: ViewSettings{
			showFilled: true,
			showHelp:   true,
		},
		FileWatch: FileWatchState{
			sourceFile: opts.Path,
		},
		Camera: CameraState{
			camera: viewer.NewCamera(model.BoundingBox()),
		},
		cfg:    cfg,
		logger: logger,
	}

	// Load the font at high resolution for crisp rendering on high DPI displays
	app.UI.font = rl.LoadFontFromMemory(".ttf", goregular.TTF, 96, nil)
	defer rl.UnloadFont(app.UI.font)
	rl.SetTextureFilter(app.UI.font.Texture, rl.FilterBilinear)
	app.UI.measurer = fontMeasurer{font: app.UI.font}

	app.Model.mesh = stlToRaylibMesh(model)
	defer func() { rl.UnloadMesh(&app.Model.mesh) }()
	app.Model.material = rl.LoadMaterialDefault()

	app.Dimensions.root = scene.NewScene()
	app.Dimensions.layer = overlay.NewLayer()
	ctrlOpts.Annotation.Layer = app.Dimensions.layer
	ctrlOpts.Annotation.Measurer = app.UI.measurer
	app.Dimensions.controller = dimension.NewController(app.Dimensions.root, app.Camera.camera, ctrlOpts)

	vp := viewport()
	app.Camera.camera.SetViewport(vp.Width, vp.Height)
	app.Dimensions.controller.Build(bounds)
	defer app.Dimensions.controller.Release()
	app.Camera.defaultDist = app.Camera.camera.Distance
	logger.Info("model loaded", "model", app.String(), "triangles", model.TriangleCount())

	if cfg.Watch.Enabled {
		if err := app.setupFileWatcher(ctx); err != nil {
			logger.Warn("auto-reload not available", "err", err)
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			break
		}

		app.reloadModel()
		app.applyLoadedModel()

		app.handleInput()

		vp := viewport()
		app.Camera.camera.SetViewport(vp.Width, vp.Height)
		app.Dimensions.controller.Update(app.Camera.camera, vp)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(toRaylibCamera(app.Camera.camera))
		if app.View.showFilled {
			rl.DrawMesh(app.Model.mesh, app.Model.material, rl.MatrixIdentity())
		}
		if app.View.showWireframe {
			app.drawWireframe()
		}
		app.drawScene(vp.Height)
		rl.EndMode3D()

		app.drawLabels(vp.Width)
		app.drawUI()

		rl.EndDrawing()
	}

	return nil
}

// String describes the loaded model for logs
func (app *App) String() string {
	size := app.Model.bounds.Size()
	return fmt.Sprintf("%s (%.2f x %.2f x %.2f)", app.FileWatch.sourceFile, size.X, size.Y, size.Z)
}
