// Package editor implements the inner editing surface: an independent
// document scoped to a hosted node's content, visible only while the
// node is focused. The editor applies transactions to its own state and
// reports each one to an attached dispatch hook; the hook is where the
// edit forwarder plugs in.
//
// Two bindings are structural and hold regardless of configuration:
// Tab inserts literal tab text instead of moving focus, and the exit
// chord hands control back to the outer document. Everything else about
// key handling is ordinary text entry.
//
// An editor is exclusively owned by its editing session and driven from
// a single event-dispatch thread; it performs no internal locking.
package editor

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/inlay/internal/doc"
	"github.com/dshills/inlay/internal/key"
	"github.com/dshills/inlay/internal/txn"
)

// DefaultTabText is inserted by the Tab binding unless overridden.
const DefaultTabText = "\t"

// DefaultExitChord returns the default exit binding, ctrl+enter.
func DefaultExitChord() key.Chord {
	return key.Special(key.KeyEnter, key.ModCtrl)
}

// DispatchHook observes every transaction after it has been applied.
// before is the snapshot the transaction was applied to. A hook error
// propagates to the Dispatch caller; the local application stands.
type DispatchHook func(tx *txn.Transaction, before doc.State) error

// ExitFunc is invoked when the exit chord fires.
type ExitFunc func() error

// Option configures a new editor.
type Option func(*Editor)

// WithHook attaches the dispatch hook.
func WithHook(hook DispatchHook) Option {
	return func(e *Editor) { e.hook = hook }
}

// WithExit attaches the exit action.
func WithExit(exit ExitFunc) Option {
	return func(e *Editor) { e.exit = exit }
}

// WithTabText overrides the text the Tab binding inserts.
func WithTabText(text string) Option {
	return func(e *Editor) { e.tabText = text }
}

// WithExitChord overrides the exit binding.
func WithExitChord(c key.Chord) Option {
	return func(e *Editor) {
		if !c.IsZero() {
			e.exitChord = c
		}
	}
}

// Editor is the inner editor instance.
type Editor struct {
	state     doc.State
	hook      DispatchHook
	exit      ExitFunc
	tabText   string
	exitChord key.Chord
}

// New creates an editor seeded with the hosted node's current content,
// selection at the document start.
func New(content doc.Fragment, opts ...Option) *Editor {
	e := &Editor{
		state:     doc.NewState(content, doc.DocStart),
		tabText:   DefaultTabText,
		exitChord: DefaultExitChord(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current document snapshot.
func (e *Editor) State() doc.State {
	return e.state
}

// Content returns the current content fragment.
func (e *Editor) Content() doc.Fragment {
	return e.state.Content()
}

// Text returns the current flattened text.
func (e *Editor) Text() string {
	return e.state.Text()
}

// SetSelection moves the selection without editing content.
func (e *Editor) SetSelection(sel doc.Selection) {
	e.state = e.state.WithSelection(sel)
}

// Dispatch applies a transaction to the editor's state atomically, then
// reports it to the hook. On application failure the state is
// unchanged and the hook is not invoked.
func (e *Editor) Dispatch(tx *txn.Transaction) error {
	before := e.state
	next, err := tx.Apply(before)
	if err != nil {
		return fmt.Errorf("applying inner transaction: %w", err)
	}
	e.state = next

	if e.hook != nil {
		return e.hook(tx, before)
	}
	return nil
}

// InsertText replaces the current selection with text and places the
// cursor after it.
func (e *Editor) InsertText(text string) error {
	r := e.state.Selection().Range()
	tx := txn.New().
		AddStep(txn.NewStep(r, text)).
		SetSelection(doc.Collapsed(r.Start + doc.ByteOffset(len(text))))
	return e.Dispatch(tx)
}

// DeleteBackward removes the selection, or the rune before the cursor
// when the selection is collapsed. At the document start it is a no-op.
func (e *Editor) DeleteBackward() error {
	r := e.state.Selection().Range()
	if r.IsEmpty() {
		if r.Start == 0 {
			return nil
		}
		text := e.state.Text()
		_, n := utf8.DecodeLastRuneInString(text[:r.Start])
		r = doc.NewRange(r.Start-doc.ByteOffset(n), r.Start)
	}
	tx := txn.New().
		AddStep(txn.Delete(r.Start, r.End)).
		SetSelection(doc.Collapsed(r.Start))
	return e.Dispatch(tx)
}

// HandleKey processes one chord. The first return value reports whether
// the editor consumed it.
func (e *Editor) HandleKey(c key.Chord) (bool, error) {
	switch {
	case c.Matches(e.exitChord):
		if e.exit != nil {
			return true, e.exit()
		}
		return true, nil
	case c.Key == key.KeyTab && c.Mods == key.ModNone:
		// Literal tab, never focus navigation.
		return true, e.InsertText(e.tabText)
	case c.Key == key.KeyEnter && c.Mods == key.ModNone:
		return true, e.InsertText("\n")
	case c.Key == key.KeySpace && c.Mods&(key.ModCtrl|key.ModAlt|key.ModMeta) == 0:
		return true, e.InsertText(" ")
	case c.Key == key.KeyBackspace && c.Mods == key.ModNone:
		return true, e.DeleteBackward()
	case c.IsRune() && c.Mods&(key.ModCtrl|key.ModAlt|key.ModMeta) == 0:
		return true, e.InsertText(string(c.Rune))
	default:
		return false, nil
	}
}
