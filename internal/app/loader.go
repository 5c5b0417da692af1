package app

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gostl-dims/internal/dimension"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
	"github.com/philipparndt/gostl-dims/pkg/stl"
	"github.com/philipparndt/gostl-dims/pkg/watcher"
)

type loadedModel struct {
	model  *stl.Model
	bounds geometry.BoundingBox
}

// LoadModel parses an STL file, converts it to Y-up when zUp is set and
// centers it on X/Z. The returned bounds are the ones before centering, as
// the dimension controller expects.
func LoadModel(filePath string, zUp bool) (*stl.Model, geometry.BoundingBox, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	if ext != ".stl" {
		return nil, geometry.BoundingBox{}, fmt.Errorf("unsupported file type: %s (expected .stl)", ext)
	}

	model, err := stl.Parse(filePath)
	if err != nil {
		return nil, geometry.BoundingBox{}, fmt.Errorf("failed to parse STL file: %w", err)
	}
	if zUp {
		model.ToYUp()
	}

	bounds := model.BoundingBox()
	model.Translate(dimension.ModelOffset(bounds))
	return model, bounds, nil
}

// stlToRaylibMesh converts an STL model to a Raylib mesh with baked lighting
func stlToRaylibMesh(model *stl.Model) rl.Mesh {
	triangleCount := len(model.Triangles)
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	colors := make([]uint8, vertexCount*4)

	// Light direction for baked lighting
	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

	idx := 0
	for _, triangle := range model.Triangles {
		normal := triangle.CalculateNormal()

		// Min 30% ambient, max 100% diffuse
		lightIntensity := math.Max(0.3, -normal.Dot(lightDir))
		shade := bakedColor(lightIntensity)

		for _, v := range []geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			vertices[idx*3+0] = float32(v.X)
			vertices[idx*3+1] = float32(v.Y)
			vertices[idx*3+2] = float32(v.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			colors[idx*4+0] = shade.R
			colors[idx*4+1] = shade.G
			colors[idx*4+2] = shade.B
			colors[idx*4+3] = 255
			idx++
		}
	}

	if len(vertices) > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Colors = &colors[0]
	}

	// Upload mesh data to GPU
	rl.UploadMesh(&mesh, false)

	return mesh
}

// bakedColor is the light grey-blue model color at the given intensity
func bakedColor(intensity float64) rl.Color {
	base := 220.0
	return rl.Color{
		R: uint8(base * intensity * 0.7),
		G: uint8(base * intensity * 0.75),
		B: uint8(base * intensity * 0.8),
		A: 255,
	}
}

// setupFileWatcher reloads the model whenever its file changes
func (app *App) setupFileWatcher(ctx context.Context) error {
	fw, err := watcher.NewFileWatcher(app.cfg.Watch.Debounce, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	callback := func(changedFile string) {
		app.logger.Info("file changed", "path", changedFile)
		app.FileWatch.mu.Lock()
		app.FileWatch.needsReload = true
		app.FileWatch.mu.Unlock()
	}

	if err := fw.Watch([]string{app.FileWatch.sourceFile}, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}

	fw.Start(ctx)
	app.FileWatch.fileWatcher = fw
	app.logger.Info("watching file for changes", "path", app.FileWatch.sourceFile)
	return nil
}

// reloadModel reloads the model from the source file in the background
func (app *App) reloadModel() {
	fw := &app.FileWatch
	fw.mu.Lock()
	if !fw.needsReload || fw.isLoading {
		fw.mu.Unlock()
		return
	}
	fw.needsReload = false
	fw.isLoading = true
	fw.loadingStartTime = time.Now()
	fw.mu.Unlock()

	// Load in background (but don't create mesh - that must be on main thread)
	go func() {
		model, bounds, err := LoadModel(fw.sourceFile, app.cfg.Model.ZUp)

		fw.mu.Lock()
		defer fw.mu.Unlock()
		if err != nil {
			app.logger.Warn("reload failed", "path", fw.sourceFile, "err", err)
			fw.isLoading = false
			return
		}
		fw.loaded = &loadedModel{model: model, bounds: bounds}
	}()
}

// applyLoadedModel swaps in a reloaded model and rebuilds the dimensions
// (must be called on main thread)
func (app *App) applyLoadedModel() {
	fw := &app.FileWatch
	fw.mu.Lock()
	loaded := fw.loaded
	fw.loaded = nil
	started := fw.loadingStartTime
	fw.mu.Unlock()
	if loaded == nil {
		return
	}

	// Keep the user's orbit; the rebuild reframes, so restore it afterwards
	cam := app.Camera.camera
	savedTarget, savedDistance := cam.Target, cam.Distance
	savedX, savedY := cam.RotationX, cam.RotationY

	newMesh := stlToRaylibMesh(loaded.model)
	oldMesh := app.Model.mesh
	app.Model.mesh = newMesh
	app.Model.model = loaded.model
	app.Model.bounds = loaded.bounds
	rl.UnloadMesh(&oldMesh)

	app.Dimensions.controller.Rebuild(loaded.bounds)

	cam.Target, cam.Distance = savedTarget, savedDistance
	cam.RotationX, cam.RotationY = savedX, savedY
	cam.UpdatePosition()

	fw.mu.Lock()
	fw.isLoading = false
	fw.mu.Unlock()

	app.logger.Info("model reloaded", "triangles", loaded.model.TriangleCount(), "elapsed", time.Since(started).Round(time.Millisecond))
}

// loading reports whether a background reload is in progress
func (app *App) loading() (bool, time.Time) {
	app.FileWatch.mu.Lock()
	defer app.FileWatch.mu.Unlock()
	return app.FileWatch.isLoading, app.FileWatch.loadingStartTime
}
