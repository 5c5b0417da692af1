package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawWireframe renders the model in wireframe mode using thin cylinders
func (app *App) drawWireframe() {
	// Semi-transparent dark gray for better blending with the filled surface
	wireframeColor := rl.NewColor(100, 100, 100, 200)
	// Scale with camera distance for constant screen thickness
	wireframeThickness := float32(app.Camera.camera.Distance * 0.0001)
	cylinderSegments := int32(8)

	// Track drawn edges to avoid duplicates
	type edgeKey [2]rl.Vector3
	drawnEdges := make(map[edgeKey]bool)

	for _, triangle := range app.Model.model.Triangles {
		v1 := toRaylibVector(triangle.V1)
		v2 := toRaylibVector(triangle.V2)
		v3 := toRaylibVector(triangle.V3)

		edges := [][2]rl.Vector3{{v1, v2}, {v2, v3}, {v3, v1}}
		for _, edge := range edges {
			key := edgeKey{edge[0], edge[1]}
			reverse := edgeKey{edge[1], edge[0]}
			if drawnEdges[key] || drawnEdges[reverse] {
				continue
			}
			drawnEdges[key] = true
			rl.DrawCylinderEx(edge[0], edge[1], wireframeThickness, wireframeThickness, cylinderSegments, wireframeColor)
		}
	}
}
