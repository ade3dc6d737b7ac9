package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/inlay/internal/key"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Editor.TabText != "\t" {
		t.Errorf("expected tab default, got %q", cfg.Editor.TabText)
	}
	want := key.Special(key.KeyEnter, key.ModCtrl)
	if !cfg.ParsedExitChord().Matches(want) {
		t.Errorf("expected default exit chord ctrl+enter, got %v", cfg.ParsedExitChord())
	}
	if !cfg.Preview.RenderOnSeed {
		t.Error("expected render-on-seed default true")
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "inlay.toml", `
[editor]
tab-text = "    "
exit-chord = "meta+enter"

[preview]
render-on-seed = false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Editor.TabText != "    " {
		t.Errorf("expected four-space tab, got %q", cfg.Editor.TabText)
	}
	if !cfg.ParsedExitChord().Matches(key.Special(key.KeyEnter, key.ModMeta)) {
		t.Errorf("expected meta+enter, got %v", cfg.ParsedExitChord())
	}
	if cfg.Preview.RenderOnSeed {
		t.Error("expected render-on-seed false")
	}
}

func TestLoadRejectsBadChord(t *testing.T) {
	path := writeFile(t, t.TempDir(), "inlay.toml", `
[editor]
exit-chord = "hyper+flurble"
`)

	if _, err := Load(path); !errors.Is(err, key.ErrBadChord) {
		t.Errorf("expected ErrBadChord, got %v", err)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "inlay.toml", "[editor\n")

	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadBindings(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bindings.yaml", `
bindings:
  exit: alt+escape
`)

	cfg, err := LoadBindings(path, Default())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !cfg.ParsedExitChord().Matches(key.Special(key.KeyEscape, key.ModAlt)) {
		t.Errorf("expected alt+escape, got %v", cfg.ParsedExitChord())
	}
}

func TestLoadBindingsMissingFile(t *testing.T) {
	cfg, err := LoadBindings(filepath.Join(t.TempDir(), "absent.yaml"), Default())
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected unchanged config, got %+v", cfg)
	}
}

func TestLoadBindingsUnknownAction(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bindings.yaml", `
bindings:
  save: ctrl+s
`)

	if _, err := LoadBindings(path, Default()); err == nil {
		t.Error("expected unknown action error")
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "inlay.toml", `
[editor]
exit-chord = "ctrl+enter"
`)

	got := make(chan Config, 4)
	w, err := Watch(path, func(cfg Config) { got <- cfg })
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}
	defer w.Close()

	writeFile(t, dir, "inlay.toml", `
[editor]
exit-chord = "meta+enter"
`)

	select {
	case cfg := <-got:
		if !cfg.ParsedExitChord().Matches(key.Special(key.KeyEnter, key.ModMeta)) {
			t.Errorf("expected reloaded meta+enter, got %v", cfg.ParsedExitChord())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	path := writeFile(t, t.TempDir(), "inlay.toml", "")

	w, err := Watch(path, func(Config) {})
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second close failed: %v", err)
	}
}
