// Package config handles configuration loading from files, defaults, and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/taskline/taskline/internal/lexicon"
)

// Config holds the application configuration.
type Config struct {
	Locale   string         `toml:"locale"` // ISO-639-1 code, e.g. "en"
	Suggest  SuggestConfig  `toml:"suggest"`
	Triggers TriggersConfig `toml:"triggers"`
	Lexicons LexiconsConfig `toml:"lexicons"`
}

// SuggestConfig holds completion settings.
type SuggestConfig struct {
	Limit    int  `toml:"limit"`     // max suggestions returned
	UseLabel bool `toml:"use_label"` // insert the label instead of the value
}

// TriggersConfig assigns a trigger character per property kind. An empty
// string disables the trigger for that kind.
type TriggersConfig struct {
	Status   string `toml:"status"`
	Priority string `toml:"priority"`
	Context  string `toml:"context"`
	Tag      string `toml:"tag"`
	Project  string `toml:"project"`
}

// LexiconsConfig holds the status/priority vocabularies. When File is set
// it names a YAML lexicon file whose entries replace the inline ones.
type LexiconsConfig struct {
	File       string        `toml:"file"`
	Statuses   []EntryConfig `toml:"statuses"`
	Priorities []EntryConfig `toml:"priorities"`
}

// EntryConfig is one configured lexicon entry. A blank ID gets a minted
// identifier at load time.
type EntryConfig struct {
	ID        string `toml:"id" yaml:"id"`
	Value     string `toml:"value" yaml:"value"`
	Label     string `toml:"label" yaml:"label"`
	Completed bool   `toml:"completed" yaml:"completed"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Locale: "en",
		Suggest: SuggestConfig{
			Limit:    10,
			UseLabel: true,
		},
		Triggers: TriggersConfig{
			Status:   "*",
			Priority: "!",
			Context:  "@",
			Tag:      "#",
			Project:  "+",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "taskline", "config.toml")
}

// Load loads configuration from the default path, merging with defaults
// and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path. It starts with
// defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Lexicons.File = expandPath(cfg.Lexicons.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TASKLINE_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv("TASKLINE_LEXICON_FILE"); v != "" {
		cfg.Lexicons.File = v
	}
	if v := os.Getenv("TASKLINE_SUGGEST_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Suggest.Limit = n
		}
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid. Trigger characters are
// not validated here: the engine disables malformed triggers on its own
// rather than rejecting the whole parse.
func (c *Config) Validate() error {
	if c.Locale == "" {
		return errors.New("locale must be set")
	}
	if c.Suggest.Limit < 0 {
		return errors.New("suggest limit cannot be negative")
	}
	for _, e := range c.Lexicons.Statuses {
		if strings.TrimSpace(e.Value) == "" {
			return errors.New("status entries need a value")
		}
	}
	for _, e := range c.Lexicons.Priorities {
		if strings.TrimSpace(e.Value) == "" {
			return errors.New("priority entries need a value")
		}
	}
	return nil
}

// TriggerSet converts the configured characters into the engine's trigger
// mapping. Multi-rune or duplicated characters get disabled during
// normalization, not rejected here.
func (c *Config) TriggerSet() lexicon.Triggers {
	t := lexicon.Triggers{
		lexicon.KindStatus:   trigger(c.Triggers.Status),
		lexicon.KindPriority: trigger(c.Triggers.Priority),
		lexicon.KindContext:  trigger(c.Triggers.Context),
		lexicon.KindTag:      trigger(c.Triggers.Tag),
		lexicon.KindProject:  trigger(c.Triggers.Project),
	}
	return t.Normalize()
}

func trigger(char string) lexicon.Trigger {
	char = strings.TrimSpace(char)
	return lexicon.Trigger{
		Character: char,
		Enabled:   utf8.RuneCountInString(char) == 1,
	}
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
