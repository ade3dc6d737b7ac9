// Package key models keyboard chords for the embedded editor's two
// structural bindings. A Chord pairs a key with modifier flags and can
// be parsed from a "ctrl+enter" style spec in configuration files.
package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrBadChord indicates an unparseable chord specification.
var ErrBadChord = errors.New("malformed chord spec")

// Key identifies a keyboard key. Character keys use KeyRune with the
// rune carried alongside on the Chord.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// KeyRune is a printable character key.
	KeyRune

	// Special keys the engine can bind.
	KeyEnter
	KeyTab
	KeyEscape
	KeyBackspace
	KeySpace
)

// Modifier represents keyboard modifier flags.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// Chord is a single key press: a key, its character for KeyRune, and
// the active modifiers.
type Chord struct {
	Key  Key
	Rune rune
	Mods Modifier
}

// RuneChord creates a chord for a printable character.
func RuneChord(r rune, mods Modifier) Chord {
	return Chord{Key: KeyRune, Rune: r, Mods: mods}
}

// Special creates a chord for a non-character key.
func Special(k Key, mods Modifier) Chord {
	return Chord{Key: k, Mods: mods}
}

// IsRune returns true if this is a character chord.
func (c Chord) IsRune() bool {
	return c.Key == KeyRune && c.Rune != 0
}

// Matches reports whether two chords denote the same key press.
func (c Chord) Matches(other Chord) bool {
	return c.Key == other.Key && c.Rune == other.Rune && c.Mods == other.Mods
}

// IsZero returns true for the unset chord.
func (c Chord) IsZero() bool {
	return c.Key == KeyNone && c.Mods == ModNone
}

var keyNames = map[Key]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyEscape:    "escape",
	KeyBackspace: "backspace",
	KeySpace:     "space",
}

var namedKeys = map[string]Key{
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"cr":        KeyEnter,
	"tab":       KeyTab,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"backspace": KeyBackspace,
	"space":     KeySpace,
}

var modNames = map[string]Modifier{
	"shift": ModShift,
	"ctrl":  ModCtrl,
	"c":     ModCtrl,
	"alt":   ModAlt,
	"a":     ModAlt,
	"meta":  ModMeta,
	"cmd":   ModMeta,
	"m":     ModMeta,
}

// Parse reads a chord from a "mod+...+key" spec, e.g. "ctrl+enter",
// "shift+tab", "alt+x". Matching is case-insensitive.
func Parse(spec string) (Chord, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(spec)), "+")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return Chord{}, fmt.Errorf("%q: %w", spec, ErrBadChord)
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod, ok := modNames[p]
		if !ok {
			return Chord{}, fmt.Errorf("%q: unknown modifier %q: %w", spec, p, ErrBadChord)
		}
		mods |= mod
	}

	keyPart := parts[len(parts)-1]
	if k, ok := namedKeys[keyPart]; ok {
		return Special(k, mods), nil
	}
	if utf8.RuneCountInString(keyPart) == 1 {
		r, _ := utf8.DecodeRuneInString(keyPart)
		return RuneChord(r, mods), nil
	}
	return Chord{}, fmt.Errorf("%q: unknown key %q: %w", spec, keyPart, ErrBadChord)
}

// String returns the canonical spec form of the chord.
func (c Chord) String() string {
	var parts []string
	if c.Mods.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if c.Mods.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if c.Mods.Has(ModShift) {
		parts = append(parts, "shift")
	}
	if c.Mods.Has(ModMeta) {
		parts = append(parts, "meta")
	}
	switch {
	case c.Key == KeyRune:
		parts = append(parts, string(c.Rune))
	case keyNames[c.Key] != "":
		parts = append(parts, keyNames[c.Key])
	default:
		parts = append(parts, "none")
	}
	return strings.Join(parts, "+")
}
