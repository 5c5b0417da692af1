package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gostl-dims/internal/dimension"
	"github.com/philipparndt/gostl-dims/version"
)

var helpLines = []string{
	"D: toggle dimensions",
	"W: wireframe  F: filled",
	"Drag: orbit  Shift+drag: pan  Wheel: zoom",
	"Home: reset  T: top  1: front  3: right",
	"H: hide help",
}

// drawUI draws the info panel, help and loading indicator
func (app *App) drawUI() {
	fontSize := float32(16)
	lineHeight := float32(20)
	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())
	textColor := rl.NewColor(220, 220, 220, 255)

	y := float32(10)
	draw := func(text string, col rl.Color) {
		rl.DrawTextEx(app.UI.font, text, rl.Vector2{X: 10, Y: y}, fontSize, 1, col)
		y += lineHeight
	}

	draw(fmt.Sprintf("Triangles: %d", app.Model.model.TriangleCount()), textColor)
	if app.Dimensions.controller.Visible() {
		for _, a := range app.Dimensions.controller.Annotations() {
			draw(fmt.Sprintf("%-6s %s", a.Axis(), a.Text()), rl.NewColor(255, 210, 80, 255))
		}
	} else {
		draw("Dimensions hidden (D)", textColor)
	}

	if app.View.showHelp {
		y += lineHeight / 2
		for _, line := range helpLines {
			draw(line, rl.NewColor(160, 160, 160, 255))
		}
	}

	// Loading indicator
	if loading, started := app.loading(); loading {
		elapsed := time.Since(started).Seconds()
		loadingText := fmt.Sprintf("Loading... (%.1fs)", elapsed)
		size := rl.MeasureTextEx(app.UI.font, loadingText, fontSize, 1)
		boxX := screenWidth - size.X - 40
		rl.DrawRectangle(int32(boxX), 10, int32(size.X+20), int32(size.Y+20), rl.NewColor(0, 0, 0, 200))
		rl.DrawTextEx(app.UI.font, loadingText, rl.Vector2{X: boxX + 10, Y: 20}, fontSize, 1, rl.Yellow)
	}

	versionText := "gostl-dims " + version.GetFullVersion()
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: 10, Y: screenHeight - 24}, 14, 1, rl.NewColor(120, 120, 120, 255))
}

// viewport returns the current window size for label layout
func viewport() dimension.Viewport {
	return dimension.Viewport{
		Width:  float64(rl.GetScreenWidth()),
		Height: float64(rl.GetScreenHeight()),
	}
}
