// Package config loads the calc command's settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the configuration file in the config directory.
const FileName = "calc.toml"

// DefaultPrompt is shown by the editor while the buffer is empty.
const DefaultPrompt = "Start typing expression..."

// Config holds every setting of the command.
type Config struct {
	Display Display `toml:"display"`
	Log     Log     `toml:"log"`
	Batch   Batch   `toml:"batch"`
}

// Display configures output.
type Display struct {
	// Color is auto, on, or off.
	Color string `toml:"color"`
	// Prompt is the editor's placeholder for an empty buffer.
	Prompt string `toml:"prompt"`
}

// Log configures logging.
type Log struct {
	// Level is debug, info, warn, or error.
	Level string `toml:"level"`
	// File, if set, receives JSON logs in addition to stderr.
	File string `toml:"file"`
}

// Batch configures evaluation of many expressions at once.
type Batch struct {
	// Workers is the number of concurrent evaluations.
	Workers int `toml:"workers"`
}

// Default returns the configuration used when there is no file.
func Default() Config {
	return Config{
		Display: Display{Color: "auto", Prompt: DefaultPrompt},
		Log:     Log{Level: "warn"},
		Batch:   Batch{Workers: 8},
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Display.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[display].color must be auto, on, or off, not %q", c.Display.Color)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("[log].level must be debug, info, warn, or error, not %q", c.Log.Level)
	}
	if c.Batch.Workers <= 0 {
		return fmt.Errorf("[batch].workers must be positive, not %d", c.Batch.Workers)
	}
	return nil
}

// Load reads the configuration at path on top of the defaults. Keys missing
// from the file keep their default values; unknown keys are errors.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if und := meta.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if strings.TrimSpace(cfg.Display.Prompt) == "" {
		cfg.Display.Prompt = DefaultPrompt
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the path of the configuration file in the user's
// config directory: $XDG_CONFIG_HOME/calc/calc.toml if XDG_CONFIG_HOME is set,
// otherwise ~/.config/calc/calc.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "calc", FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "calc", FileName), nil
}

// Resolve loads the configuration for the command. An explicit path must
// exist. Without one, the default path is used if a file exists there, and
// the defaults otherwise. The returned path is the file that was loaded, or
// empty if none was.
func Resolve(explicit string) (Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}
	path, err := DefaultPath()
	if err != nil {
		return Default(), "", nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), "", nil
		}
		return Config{}, "", fmt.Errorf("failed to stat %q: %w", path, err)
	}
	cfg, err := Load(path)
	return cfg, path, err
}
