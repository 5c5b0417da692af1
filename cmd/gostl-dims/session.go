package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gostl-dims/internal/app"
	"github.com/philipparndt/gostl-dims/internal/config"
	"github.com/philipparndt/gostl-dims/internal/dimension"
	"github.com/philipparndt/gostl-dims/internal/overlay"
	"github.com/philipparndt/gostl-dims/internal/scene"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
	"github.com/philipparndt/gostl-dims/pkg/stl"
	"github.com/philipparndt/gostl-dims/pkg/viewer"
)

// session is a loaded model with its camera and dimensions, without a window
type session struct {
	cfg        *config.Config
	model      *stl.Model
	bounds     geometry.BoundingBox
	camera     *viewer.Camera
	root       *scene.Group
	layer      *overlay.Layer
	controller *dimension.Controller
	measurer   overlay.Measurer
}

func newSession(path string, cfg *config.Config, measurer overlay.Measurer, visible bool) (*session, error) {
	model, bounds, err := app.LoadModel(path, cfg.Model.ZUp)
	if err != nil {
		return nil, err
	}

	opts, err := cfg.ControllerOptions()
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:      cfg,
		model:    model,
		bounds:   bounds,
		camera:   viewer.NewCamera(model.BoundingBox()),
		root:     scene.NewScene(),
		layer:    overlay.NewLayer(),
		measurer: measurer,
	}
	s.camera.SetViewport(float64(cfg.Viewport.Width), float64(cfg.Viewport.Height))

	opts.Annotation.Layer = s.layer
	opts.Annotation.Measurer = measurer
	opts.Annotation.StartVisible = opts.Annotation.StartVisible || visible
	s.controller = dimension.NewController(s.root, s.camera, opts)
	s.controller.Build(bounds)
	return s, nil
}

// fontMeasurer loads the configured TTF or Go Regular
func fontMeasurer(cfg *config.Config) (*overlay.FontMeasurer, error) {
	var ttf []byte
	if cfg.Label.Font != "" {
		data, err := os.ReadFile(cfg.Label.Font)
		if err != nil {
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
		ttf = data
	}
	return overlay.NewFontMeasurer(ttf)
}

func (s *session) viewport() dimension.Viewport {
	return dimension.Viewport{Width: float64(s.cfg.Viewport.Width), Height: float64(s.cfg.Viewport.Height)}
}

// frame lays out the labels for one frame
func (s *session) frame() {
	s.controller.Update(s.camera, s.viewport())
}
