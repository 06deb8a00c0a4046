package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskline/taskline/internal/config"
	"github.com/taskline/taskline/internal/lexicon"
	"github.com/taskline/taskline/internal/parse"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config     *config.Config
	parser     *parse.Parser
	triggers   lexicon.Triggers
	statuses   []lexicon.Entry
	priorities []lexicon.Entry
	root       *cobra.Command
	noColor    bool
}

// NewApp creates a new CLI application from the given config.
func NewApp(cfg *config.Config) (*App, error) {
	statuses, priorities, err := cfg.LoadLexicons()
	if err != nil {
		return nil, err
	}
	if len(statuses) == 0 {
		statuses = lexicon.DefaultStatuses()
	}
	if len(priorities) == 0 {
		priorities = lexicon.DefaultPriorities()
	}

	a := &App{
		config:     cfg,
		triggers:   cfg.TriggerSet(),
		statuses:   statuses,
		priorities: priorities,
	}
	a.parser = parse.New(parse.Options{
		Statuses:   statuses,
		Priorities: priorities,
		Triggers:   a.triggers,
		Locale:     cfg.Locale,
	})

	a.root = &cobra.Command{
		Use:   "taskline",
		Short: "Turn free-form task lines into structured fields",
		Long: `Taskline extracts structured task fields from a single line of text:
status, priority, due and scheduled dates, time estimate, recurrence,
and trigger-prefixed contexts, tags, and projects. Lexicons and trigger
characters are user-configurable.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
	}

	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.parseCmd())
	a.root.AddCommand(a.suggestCmd())
	a.root.AddCommand(a.configCmd())

	return a, nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("taskline %s (commit: %s)\n", Version, Commit)
		},
	}
}

// entriesFor maps a kind name from the command line to its lexicon.
func (a *App) entriesFor(kind string) ([]lexicon.Entry, lexicon.Kind, error) {
	switch kind {
	case "status":
		return a.statuses, lexicon.KindStatus, nil
	case "priority":
		return a.priorities, lexicon.KindPriority, nil
	}
	return nil, "", fmt.Errorf("unknown kind %q (want status or priority)", kind)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
