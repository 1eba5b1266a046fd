package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagWidth   = flag.Int("width", 0, "Window width")
	flagHeight  = flag.Int("height", 0, "Window height")
	flagScene   = flag.String("scene", "", "Scene file to load and save")
	flagPrefabs = flag.String("prefabs", "", "Prefab catalog root")
	flagNoLoad  = flag.Bool("fresh", false, "Start with an empty scene")
	flagLogFile = flag.String("log-file", "", "Also write logs to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagScene != "" {
		cfg.Scene.Path = *flagScene
	}
	if *flagPrefabs != "" {
		cfg.Catalog.Root = *flagPrefabs
	}
	if *flagNoLoad {
		cfg.Scene.AutoLoad = false
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
