package main

import (
	"os"

	"github.com/yigit/collegesim/internal/config"
	"github.com/yigit/collegesim/internal/pkg/logger" // Still needed for initial error logging
	"github.com/yigit/collegesim/internal/runner"
)

func main() {
	r, err := runner.NewRunner(runner.Options{
		ConfigPath: config.DefaultPath,
		Output:     os.Stdout,
		LogOutput:  os.Stderr,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize simulation")
		os.Exit(1)
	}

	if err := r.Run(); err != nil {
		logger.Error().Err(err).Str("runID", r.RunID()).Msg("Simulation failed")
		os.Exit(1)
	}
}
