package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskline/taskline/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View configuration",
		Long: `Display the current configuration.

If no config file exists, creates one with default values.

Example:
  taskline config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfig()
		},
	}
}

func runConfig() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	printConfig(cfg)
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Printf("locale      = %s\n", cfg.Locale)
	fmt.Println("\n[suggest]")
	fmt.Printf("  limit     = %d\n", cfg.Suggest.Limit)
	fmt.Printf("  use_label = %v\n", cfg.Suggest.UseLabel)
	fmt.Println("\n[triggers]")
	fmt.Printf("  status    = %s\n", orNone(cfg.Triggers.Status))
	fmt.Printf("  priority  = %s\n", orNone(cfg.Triggers.Priority))
	fmt.Printf("  context   = %s\n", orNone(cfg.Triggers.Context))
	fmt.Printf("  tag       = %s\n", orNone(cfg.Triggers.Tag))
	fmt.Printf("  project   = %s\n", orNone(cfg.Triggers.Project))
	fmt.Println("\n[lexicons]")
	if cfg.Lexicons.File != "" {
		fmt.Printf("  file      = %s\n", cfg.Lexicons.File)
	}
	printEntries("statuses", cfg.Lexicons.Statuses)
	printEntries("priorities", cfg.Lexicons.Priorities)
}

func printEntries(name string, entries []config.EntryConfig) {
	if len(entries) == 0 {
		fmt.Printf("  %-10s= (built-in defaults)\n", name)
		return
	}
	values := make([]string, 0, len(entries))
	for _, e := range entries {
		values = append(values, e.Value)
	}
	fmt.Printf("  %-10s= %s\n", name, strings.Join(values, ", "))
}

func orNone(char string) string {
	if char == "" {
		return "(disabled)"
	}
	return char
}
