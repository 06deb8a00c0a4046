package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taskline/taskline/internal/lexicon"
)

// lexiconFile is the YAML shape of an external lexicon file.
type lexiconFile struct {
	Statuses   []EntryConfig `yaml:"statuses"`
	Priorities []EntryConfig `yaml:"priorities"`
}

// LoadLexicons resolves the effective status and priority lexicons:
// entries from the YAML lexicon file when one is configured and present,
// the inline TOML entries otherwise. Entry order follows file order;
// entries without an id get one minted.
func (c *Config) LoadLexicons() (statuses, priorities []lexicon.Entry, err error) {
	statusCfgs := c.Lexicons.Statuses
	priorityCfgs := c.Lexicons.Priorities

	if c.Lexicons.File != "" {
		data, readErr := os.ReadFile(c.Lexicons.File)
		switch {
		case readErr == nil:
			var f lexiconFile
			if err := yaml.Unmarshal(data, &f); err != nil {
				return nil, nil, fmt.Errorf("parsing lexicon file: %w", err)
			}
			if len(f.Statuses) > 0 {
				statusCfgs = f.Statuses
			}
			if len(f.Priorities) > 0 {
				priorityCfgs = f.Priorities
			}
		case !os.IsNotExist(readErr):
			return nil, nil, fmt.Errorf("reading lexicon file: %w", readErr)
		}
	}

	return toEntries(statusCfgs), toEntries(priorityCfgs), nil
}

func toEntries(cfgs []EntryConfig) []lexicon.Entry {
	entries := make([]lexicon.Entry, 0, len(cfgs))
	for i, ec := range cfgs {
		id := ec.ID
		if id == "" {
			id = lexicon.NewEntryID()
		}
		entries = append(entries, lexicon.Entry{
			ID:        id,
			Value:     ec.Value,
			Label:     ec.Label,
			Order:     i,
			Completed: ec.Completed,
		})
	}
	return entries
}
