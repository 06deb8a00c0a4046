package main

import (
	"fmt"
	"os"

	"github.com/taskline/taskline/internal/config"
	"github.com/taskline/taskline/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	app, err := ui.NewApp(cfg)
	if err != nil {
		return fmt.Errorf("initializing: %w", err)
	}
	return app.Execute()
}
