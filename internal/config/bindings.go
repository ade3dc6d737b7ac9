package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/inlay/internal/key"
)

// bindingsFile is the YAML override format:
//
//	bindings:
//	  exit: meta+enter
type bindingsFile struct {
	Bindings map[string]string `yaml:"bindings"`
}

// LoadBindings layers chord overrides from a YAML file onto cfg and
// returns the result. A missing file returns cfg unchanged. Only the
// "exit" action is overridable; the Tab binding is structural and
// cannot be remapped away, only its inserted text changes (TOML).
func LoadBindings(path string, cfg Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading bindings file %s: %w", path, err)
	}

	var file bindingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parsing bindings file %s: %w", path, err)
	}

	for action, spec := range file.Bindings {
		switch action {
		case "exit":
			if _, err := key.Parse(spec); err != nil {
				return Config{}, fmt.Errorf("bindings file %s: exit: %w", path, err)
			}
			cfg.Editor.ExitChord = spec
		default:
			return Config{}, fmt.Errorf("bindings file %s: unknown action %q", path, action)
		}
	}
	return cfg, nil
}
