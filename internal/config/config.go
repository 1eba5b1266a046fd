// Package config handles editor configuration loading and management.
package config

// Config holds all editor settings.
type Config struct {
	Window    WindowConfig    `yaml:"window" envPrefix:"WINDOW_"`
	Camera    CameraConfig    `yaml:"camera" envPrefix:"CAMERA_"`
	Placement PlacementConfig `yaml:"placement" envPrefix:"PLACEMENT_"`
	Catalog   CatalogConfig   `yaml:"catalog" envPrefix:"CATALOG_"`
	Scene     SceneConfig     `yaml:"scene" envPrefix:"SCENE_"`
	Logging   LoggingConfig   `yaml:"logging" envPrefix:"LOG_"`
}

type WindowConfig struct {
	Width    int    `yaml:"width" env:"WIDTH"`
	Height   int    `yaml:"height" env:"HEIGHT"`
	Title    string `yaml:"title" env:"TITLE"`
	VSync    bool   `yaml:"vsync" env:"VSYNC"`
	FPSLimit int    `yaml:"fps_limit" env:"FPS_LIMIT"`
}

// CameraConfig controls the fly camera.
type CameraConfig struct {
	FOV             float32    `yaml:"fov" env:"FOV"`
	MoveSpeed       float32    `yaml:"move_speed" env:"MOVE_SPEED"`
	FastMultiplier  float32    `yaml:"fast_multiplier" env:"FAST_MULTIPLIER"`
	LookSensitivity float32    `yaml:"look_sensitivity" env:"LOOK_SENSITIVITY"`
	StartPosition   [3]float32 `yaml:"start_position"`
	StartTarget     [3]float32 `yaml:"start_target"`
}

// PlacementConfig holds the ray length, the terrain size and the
// per-category rule records.
type PlacementConfig struct {
	MaxDistance float32       `yaml:"max_distance" env:"MAX_DISTANCE"`
	TerrainSize float32       `yaml:"terrain_size" env:"TERRAIN_SIZE"`
	Categories  CategoryRules `yaml:"categories"`
}

type CategoryRules struct {
	Ground       CategoryRecord `yaml:"ground" envPrefix:"GROUND_"`
	Buildings    CategoryRecord `yaml:"buildings" envPrefix:"BUILDINGS_"`
	Environments CategoryRecord `yaml:"environments" envPrefix:"ENVIRONMENTS_"`
}

// CategoryRecord is the file form of placement.CategoryConfig. Layers are
// referenced by name.
type CategoryRecord struct {
	TargetLayers     []string `yaml:"target_layers" env:"TARGET_LAYERS"`
	ExclusionLayers  []string `yaml:"exclusion_layers" env:"EXCLUSION_LAYERS"`
	PlacedLayer      string   `yaml:"placed_layer" env:"PLACED_LAYER"`
	GridSize         float32  `yaml:"grid_size" env:"GRID_SIZE"`
	FootprintDivisor float32  `yaml:"footprint_divisor" env:"DIVISOR"`
	RotateStep       float32  `yaml:"rotate_step" env:"ROTATE_STEP"`
	Scalable         bool     `yaml:"scalable" env:"SCALABLE"`
}

type CatalogConfig struct {
	Root string `yaml:"root" env:"ROOT"`
}

type SceneConfig struct {
	Path     string `yaml:"path" env:"PATH"`
	AutoLoad bool   `yaml:"auto_load" env:"AUTO_LOAD"`
}

type LoggingConfig struct {
	Level   string `yaml:"level" env:"LEVEL"`
	LogFile string `yaml:"log_file" env:"FILE"`
}

// Default returns a Config with the stock placement rules.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:    1600,
			Height:   900,
			Title:    "BuilderEX",
			VSync:    true,
			FPSLimit: 144,
		},
		Camera: CameraConfig{
			FOV:             60,
			MoveSpeed:       40,
			FastMultiplier:  4,
			LookSensitivity: 0.003,
			StartPosition:   [3]float32{0, 60, 90},
			StartTarget:     [3]float32{0, 0, 0},
		},
		Placement: PlacementConfig{
			MaxDistance: 10000,
			TerrainSize: 600,
			Categories:  DefaultCategoryRules(),
		},
		Catalog: CatalogConfig{
			Root: "assets/prefabs",
		},
		Scene: SceneConfig{
			Path:     "assets/scenes/level.json",
			AutoLoad: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

func DefaultCategoryRules() CategoryRules {
	surface := []string{"terrain", "ground"}
	objects := []string{"buildings", "environments"}
	return CategoryRules{
		Ground: CategoryRecord{
			TargetLayers:     surface,
			ExclusionLayers:  []string{"ground"},
			PlacedLayer:      "ground",
			GridSize:         30,
			FootprintDivisor: 10,
			RotateStep:       90,
		},
		Buildings: CategoryRecord{
			TargetLayers:     surface,
			ExclusionLayers:  objects,
			PlacedLayer:      "buildings",
			FootprintDivisor: 2,
			RotateStep:       20,
			Scalable:         true,
		},
		Environments: CategoryRecord{
			TargetLayers:     surface,
			ExclusionLayers:  objects,
			PlacedLayer:      "environments",
			FootprintDivisor: 2,
			RotateStep:       20,
			Scalable:         true,
		},
	}
}
