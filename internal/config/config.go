// Package config loads the engine configuration: the structural key
// bindings of the inner editor and preview behavior. TOML is the
// primary format; an optional YAML bindings file overrides chords. A
// missing file is not an error and yields defaults, so embedding hosts
// work with zero configuration.
package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/dshills/inlay/internal/key"
)

// Config holds the synchronization engine's configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Preview PreviewConfig `toml:"preview"`
}

// EditorConfig configures the inner editing surface.
type EditorConfig struct {
	// TabText is inserted by the Tab binding.
	TabText string `toml:"tab-text"`

	// ExitChord is the combination that leaves the embedded editor,
	// in "ctrl+enter" spec form.
	ExitChord string `toml:"exit-chord"`
}

// PreviewConfig configures the rendered-preview collaborator.
type PreviewConfig struct {
	// RenderOnSeed pushes the initial node value to the renderer as
	// soon as the node is first seen.
	RenderOnSeed bool `toml:"render-on-seed"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			TabText:   "\t",
			ExitChord: "ctrl+enter",
		},
		Preview: PreviewConfig{
			RenderOnSeed: true,
		},
	}
}

// Load reads configuration from a TOML file, layered over defaults.
// A missing file yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that configured values are usable.
func (c Config) Validate() error {
	if _, err := key.Parse(c.Editor.ExitChord); err != nil {
		return fmt.Errorf("exit-chord: %w", err)
	}
	return nil
}

// ParsedExitChord returns the configured exit chord. Validate catches
// parse failures at load time, so this falls back to the default chord
// rather than returning an error.
func (c Config) ParsedExitChord() key.Chord {
	chord, err := key.Parse(c.Editor.ExitChord)
	if err != nil {
		chord, _ = key.Parse(Default().Editor.ExitChord)
	}
	return chord
}
