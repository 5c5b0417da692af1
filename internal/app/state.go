package app

import (
	"log/slog"
	"sync"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gostl-dims/internal/config"
	"github.com/philipparndt/gostl-dims/internal/dimension"
	"github.com/philipparndt/gostl-dims/internal/overlay"
	"github.com/philipparndt/gostl-dims/internal/scene"
	"github.com/philipparndt/gostl-dims/pkg/geometry"
	"github.com/philipparndt/gostl-dims/pkg/stl"
	"github.com/philipparndt/gostl-dims/pkg/viewer"
	"github.com/philipparndt/gostl-dims/pkg/watcher"
)

// App is the interactive viewer
type App struct {
	Camera     CameraState
	Model      ModelData
	View       ViewSettings
	Dimensions DimensionState
	FileWatch  FileWatchState
	UI         UIState
	cfg        *config.Config
	logger     *slog.Logger
}

// CameraState holds all camera-related state
type CameraState struct {
	camera      *viewer.Camera
	isPanning   bool
	defaultDist float64 // Default camera distance (for reset)
}

// ModelData holds all model-related data
type ModelData struct {
	model    *stl.Model
	bounds   geometry.BoundingBox // Bounds before centering
	mesh     rl.Mesh
	material rl.Material
}

// ViewSettings holds display settings
type ViewSettings struct {
	showWireframe bool
	showFilled    bool
	showHelp      bool
}

// DimensionState holds the annotation scene and its overlay
type DimensionState struct {
	root       *scene.Group
	layer      *overlay.Layer
	controller *dimension.Controller
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	sourceFile       string               // Model file path
	fileWatcher      *watcher.FileWatcher // File watcher for auto-reload
	mu               sync.Mutex           // Guards the fields below
	needsReload      bool                 // Flag to indicate model needs reloading
	isLoading        bool                 // Flag to indicate a reload is in progress
	loadingStartTime time.Time            // When loading started
	loaded           *loadedModel         // Model loaded in background
}

// UIState holds UI-related state
type UIState struct {
	font     rl.Font
	measurer overlay.Measurer
}
