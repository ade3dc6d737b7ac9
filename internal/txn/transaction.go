package txn

import (
	"fmt"
	"strings"

	"github.com/dshills/inlay/internal/doc"
)

// Origin tags a transaction with where its edits came from. The edit
// forwarder only projects Local transactions onto the outer document;
// Echo transactions replay an outer-originated change into the inner
// document and must never be forwarded back out.
type Origin uint8

const (
	// OriginLocal marks a transaction produced by user input in the
	// document it is applied to.
	OriginLocal Origin = iota

	// OriginEcho marks a transaction that replays an external change
	// (undo, collaborative edit, programmatic replace) into the inner
	// document.
	OriginEcho
)

// String returns a human-readable representation of the origin.
func (o Origin) String() string {
	switch o {
	case OriginLocal:
		return "local"
	case OriginEcho:
		return "echo"
	default:
		return "unknown"
	}
}

// Transaction is an ordered batch of steps plus transient metadata and
// an optional target selection. Build one with New or NewEcho, add
// steps, then Apply it to a snapshot.
type Transaction struct {
	steps  []Step
	origin Origin
	meta   map[string]any
	sel    *doc.Selection
}

// New creates an empty locally-originated transaction.
func New() *Transaction {
	return &Transaction{origin: OriginLocal}
}

// NewEcho creates an empty externally-originated transaction.
func NewEcho() *Transaction {
	return &Transaction{origin: OriginEcho}
}

// Origin returns the transaction's origin tag.
func (t *Transaction) Origin() Origin {
	return t.origin
}

// AddStep appends a step to the transaction.
func (t *Transaction) AddStep(s Step) *Transaction {
	t.steps = append(t.steps, s)
	return t
}

// Steps returns a copy of the transaction's steps in order.
func (t *Transaction) Steps() []Step {
	if len(t.steps) == 0 {
		return nil
	}
	out := make([]Step, len(t.steps))
	copy(out, t.steps)
	return out
}

// StepCount returns the number of steps in the transaction.
func (t *Transaction) StepCount() int {
	return len(t.steps)
}

// ChangesContent returns true if any step actually edits content.
func (t *Transaction) ChangesContent() bool {
	for _, s := range t.steps {
		if !s.IsNoOp() {
			return true
		}
	}
	return false
}

// SetMeta attaches a metadata value to the transaction.
func (t *Transaction) SetMeta(key string, value any) *Transaction {
	if t.meta == nil {
		t.meta = make(map[string]any)
	}
	t.meta[key] = value
	return t
}

// Meta returns the metadata value for key and whether it is present.
func (t *Transaction) Meta(key string) (any, bool) {
	v, ok := t.meta[key]
	return v, ok
}

// SetSelection sets the selection the resulting snapshot should carry.
func (t *Transaction) SetSelection(sel doc.Selection) *Transaction {
	t.sel = &sel
	return t
}

// Selection returns the target selection and whether one was set.
func (t *Transaction) Selection() (doc.Selection, bool) {
	if t.sel == nil {
		return doc.Selection{}, false
	}
	return *t.sel, true
}

// Apply produces the snapshot resulting from applying all steps to s in
// order. Each step's coordinates address the text produced by the steps
// before it. Application is atomic: on any error the input snapshot is
// the still-valid current state and nothing was committed.
func (t *Transaction) Apply(s doc.State) (doc.State, error) {
	text := s.Text()
	for _, step := range t.steps {
		if !step.Range.IsValid() {
			return doc.State{}, fmt.Errorf("applying %s: %w", step, ErrRangeInvalid)
		}
		if step.Range.End > doc.ByteOffset(len(text)) {
			return doc.State{}, fmt.Errorf("applying %s to %d bytes: %w",
				step, len(text), ErrRangeOutOfBounds)
		}
		var sb strings.Builder
		sb.Grow(len(text) + len(step.Text))
		sb.WriteString(text[:step.Range.Start])
		sb.WriteString(step.Text)
		sb.WriteString(text[step.Range.End:])
		text = sb.String()
	}

	sel := s.Selection()
	if t.sel != nil {
		sel = *t.sel
	}
	return doc.NewState(doc.TextFragment(text), sel), nil
}

// String returns a human-readable representation of the transaction.
func (t *Transaction) String() string {
	return fmt.Sprintf("txn(%s, %d steps)", t.origin, len(t.steps))
}
