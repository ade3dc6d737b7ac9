// Package session owns the lifecycle of the inner editing surface: a
// two-state machine, Idle and Editing, with no partial state in
// between. A Session value exists exactly while the hosted node is
// focused; at most one session is live per controller at a time.
package session

import (
	"github.com/google/uuid"

	"github.com/dshills/inlay/internal/doc"
	"github.com/dshills/inlay/internal/editor"
)

// Session is the transient state owned by the controller while the
// hosted node is being edited. It is not persisted; blur or destroy
// discards it.
type Session struct {
	// ID uniquely identifies this editing session for host
	// bookkeeping (event attribution, containment checks).
	ID string

	// Editor is the live inner editor instance, exclusively owned by
	// this session.
	Editor *editor.Editor
}

// Controller drives the Idle/Editing transitions. Transition methods
// are idempotent: opening while Editing and closing while Idle are
// expected UI races, not errors.
type Controller struct {
	editable func() bool
	teardown func(*Session)
	current  *Session
}

// Option configures a controller.
type Option func(*Controller)

// WithTeardown registers a hook run synchronously when a session
// closes, before the session is discarded.
func WithTeardown(fn func(*Session)) Option {
	return func(c *Controller) { c.teardown = fn }
}

// NewController creates a controller in the Idle state. editable gates
// the Idle -> Editing transition; a nil func means always editable.
func NewController(editable func() bool, opts ...Option) *Controller {
	c := &Controller{editable: editable}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsEditing returns true while a session is live.
func (c *Controller) IsEditing() bool {
	return c.current != nil
}

// Current returns the live session, or nil while Idle.
func (c *Controller) Current() *Session {
	return c.current
}

// Open performs the Idle -> Editing transition: constructs a fresh
// inner editor seeded with the hosted node's current content and the
// selection at the document start. Returns the live session and
// whether this call created it. While already Editing, or while the
// host is not editable, Open changes nothing.
func (c *Controller) Open(content doc.Fragment, opts ...editor.Option) (*Session, bool) {
	if c.current != nil {
		return c.current, false
	}
	if c.editable != nil && !c.editable() {
		return nil, false
	}
	c.current = &Session{
		ID:     uuid.New().String(),
		Editor: editor.New(content, opts...),
	}
	return c.current, true
}

// Close performs the Editing -> Idle transition, destroying the inner
// editor synchronously. Returns true if a session was actually closed.
func (c *Controller) Close() bool {
	if c.current == nil {
		return false
	}
	s := c.current
	c.current = nil
	if c.teardown != nil {
		c.teardown(s)
	}
	return true
}
