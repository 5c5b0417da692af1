package app

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes user input
func (app *App) handleInput() {
	// Camera view preset shortcuts
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		app.setCameraFrontView()
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		app.setCameraRightView()
	}

	// Pan with Shift + drag or middle mouse button
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Camera.isPanning = rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.Camera.isPanning = false
	}

	delta := rl.GetMouseDelta()
	if (rl.IsMouseButtonDown(rl.MouseLeftButton) && app.Camera.isPanning) || rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		if delta.X != 0 || delta.Y != 0 {
			app.doPan(float64(delta.X), float64(delta.Y))
		}
	} else if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		if delta.X != 0 || delta.Y != 0 {
			app.Camera.camera.Rotate(float64(-delta.Y)*0.01, float64(delta.X)*0.01)
		}
	}

	// Zoom with mouse wheel
	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		app.Camera.camera.Zoom(-float64(wheel) * 0.03)
		minDist := app.Camera.defaultDist * 0.05
		if app.Camera.camera.Distance < minDist {
			app.Camera.camera.Distance = minDist
			app.Camera.camera.UpdatePosition()
		}
	}

	// Keyboard controls
	if rl.IsKeyPressed(rl.KeyD) {
		visible := app.Dimensions.controller.Toggle()
		app.logger.Debug("dimensions toggled", "visible", visible)
	}
	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWireframe = !app.View.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.View.showFilled = !app.View.showFilled
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}
}

