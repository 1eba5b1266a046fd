// Command levelbuilder is the in-scene placement editor.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/Develoder/BuilderEX/internal/config"
	"github.com/Develoder/BuilderEX/internal/game"
	"github.com/Develoder/BuilderEX/internal/logger"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	// Run next to the binary for deployed builds; "go run" builds into a
	// temp go-build directory, so leave the working directory alone there.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	config.ParseFlags()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run loads config, starts logging and runs the editor until the window
// closes. The log is flushed on every return path.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("logger error: %w", err)
	}
	defer logger.Sync()

	logger.Info("=== BuilderEX level builder ===")

	g, err := game.New(cfg, logger.Named("editor"))
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		return err
	}
	g.Run()
	return nil
}
