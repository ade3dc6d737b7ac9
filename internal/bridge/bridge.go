package bridge

import (
	"errors"
	"fmt"

	"github.com/dshills/inlay/internal/config"
	"github.com/dshills/inlay/internal/doc"
	"github.com/dshills/inlay/internal/editor"
	"github.com/dshills/inlay/internal/forward"
	"github.com/dshills/inlay/internal/key"
	"github.com/dshills/inlay/internal/reconcile"
	"github.com/dshills/inlay/internal/session"
	"github.com/dshills/inlay/internal/txn"
)

// HostView is the outer document/editor capability the bridge consumes.
// The outer framework itself (tree model, step application, selection
// model) lives behind this interface and is not reimplemented here.
type HostView interface {
	forward.Outer

	// Editable reports whether the hosting document currently accepts
	// edits. Gates opening an inner editing surface.
	Editable() bool

	// ExitBelow inserts a new empty block immediately after the
	// hosted node, moves the outer selection there, and returns input
	// focus to the outer document. The designated escape hatch from
	// the embedded editor.
	ExitBelow() error
}

// Surface answers whether an event target belongs to the inner
// editor's owned surface, whatever the host's UI toolkit calls a
// target. Consulted only while a session is open.
type Surface interface {
	Contains(target any) bool
}

// Renderer receives the canonical text value for the rendered preview.
type Renderer func(text string)

// Option configures a bridge.
type Option func(*Bridge)

// WithRenderer attaches the preview collaborator.
func WithRenderer(r Renderer) Option {
	return func(b *Bridge) { b.render = r }
}

// WithSurface attaches the containment query for event interception.
func WithSurface(s Surface) Option {
	return func(b *Bridge) { b.surface = s }
}

// WithConfig overrides the default engine configuration.
func WithConfig(cfg config.Config) Option {
	return func(b *Bridge) { b.cfg = cfg }
}

// WithErrorHandler attaches the sink for fatal forwarding errors, which
// the host should surface as a visible editor error state.
func WithErrorHandler(fn func(error)) Option {
	return func(b *Bridge) { b.onError = fn }
}

// WithActiveMarker attaches the host hook toggling the node's visual
// "active" marker.
func WithActiveMarker(fn func(bool)) Option {
	return func(b *Bridge) { b.markActive = fn }
}

// Bridge synchronizes one hosted node with its inner editor.
type Bridge struct {
	host       HostView
	render     Renderer
	surface    Surface
	cfg        config.Config
	onError    func(error)
	markActive func(bool)

	ctrl *session.Controller
	fwd  *forward.Forwarder
}

// New creates a bridge for the given host view.
func New(host HostView, opts ...Option) *Bridge {
	b := &Bridge{
		host: host,
		cfg:  config.Default(),
		fwd:  forward.New(host),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.ctrl = session.NewController(host.Editable)
	return b
}

// SetConfig swaps the engine configuration. Sessions already open keep
// their bindings; the next session picks up the new values. Used by
// config hot reload.
func (b *Bridge) SetConfig(cfg config.Config) {
	b.cfg = cfg
}

// Editing returns true while an inner editing session is open.
func (b *Bridge) Editing() bool {
	return b.ctrl.IsEditing()
}

// Session returns the live editing session, or nil while idle.
func (b *Bridge) Session() *session.Session {
	return b.ctrl.Current()
}

// OnUpdate handles an outer-node content notification. On the initial
// notification it only seeds the preview; there is nothing to diff
// against yet. Afterwards it reconciles an open session's inner
// document with the new outer content and always re-renders the
// preview from the canonical text.
func (b *Bridge) OnUpdate(content doc.Fragment, initial bool) {
	if initial {
		if b.cfg.Preview.RenderOnSeed {
			b.renderText(content.Text())
		}
		return
	}

	if ses := b.ctrl.Current(); ses != nil {
		if patch := reconcile.Reconcile(content, ses.Editor.Content()); patch != nil {
			// A failed patch is skipped for this cycle; the next
			// update re-diffs against current state and self-heals.
			_ = ses.Editor.Dispatch(patch)
		}
	}

	b.renderText(content.Text())
}

// OnFocus handles a focus request for the hosted node, opening the
// inner editing surface seeded with the node's current content. A
// no-op while the host is not editable or a session is already open.
func (b *Bridge) OnFocus(content doc.Fragment) {
	_, opened := b.ctrl.Open(content,
		editor.WithHook(b.forwardHook),
		editor.WithExit(b.exit),
		editor.WithTabText(b.cfg.Editor.TabText),
		editor.WithExitChord(b.cfg.ParsedExitChord()),
	)
	if opened && b.markActive != nil {
		b.markActive(true)
	}
}

// OnBlur tears the inner editing surface down. Idempotent.
func (b *Bridge) OnBlur() {
	if b.ctrl.Close() && b.markActive != nil {
		b.markActive(false)
	}
}

// OnDestroy releases everything the bridge owns. The host releases its
// own UI resources for the node alongside this call.
func (b *Bridge) OnDestroy() {
	b.OnBlur()
}

// StopEvent returns true when the host must swallow the event: a
// session is open and the target lies within the inner editor's owned
// surface, so the outer editor must not double-handle it.
func (b *Bridge) StopEvent(target any) bool {
	return b.ctrl.IsEditing() && b.surface != nil && b.surface.Contains(target)
}

// HandleKey routes a key chord to the open inner editor. The first
// return value reports whether the editor consumed it; chords arriving
// while idle are never consumed.
func (b *Bridge) HandleKey(c key.Chord) (bool, error) {
	ses := b.ctrl.Current()
	if ses == nil {
		return false, nil
	}
	return ses.Editor.HandleKey(c)
}

func (b *Bridge) forwardHook(tx *txn.Transaction, before doc.State) error {
	err := b.fwd.Forward(tx, before)
	if err != nil && errors.Is(err, forward.ErrEditLost) && b.onError != nil {
		b.onError(err)
	}
	return err
}

func (b *Bridge) exit() error {
	if err := b.host.ExitBelow(); err != nil {
		return fmt.Errorf("exiting embedded editor: %w", err)
	}
	b.OnBlur()
	return nil
}

func (b *Bridge) renderText(text string) {
	if b.render != nil {
		b.render(text)
	}
}
