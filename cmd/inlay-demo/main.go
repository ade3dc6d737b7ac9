// Package main runs a scripted embedded-editing session against an
// in-memory host document, printing each synchronization step. It
// exists to exercise the engine end to end without a UI toolkit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/inlay/internal/bridge"
	"github.com/dshills/inlay/internal/config"
	"github.com/dshills/inlay/internal/doc"
	"github.com/dshills/inlay/internal/key"
	"github.com/dshills/inlay/internal/txn"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var b *bridge.Bridge
	if configPath != "" {
		w, err := config.Watch(configPath, func(cfg config.Config) {
			if b != nil {
				b.SetConfig(cfg)
			}
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer w.Close()
	}

	host := &memoryHost{prefix: "Report: ", content: "x = 1"}
	b = bridge.New(host,
		bridge.WithConfig(cfg),
		bridge.WithRenderer(func(text string) {
			fmt.Printf("preview  <- %q\n", text)
		}),
		bridge.WithErrorHandler(func(err error) {
			fmt.Fprintf(os.Stderr, "editor error: %v\n", err)
		}),
	)
	host.bridge = b

	// The node appears in the document.
	b.OnUpdate(doc.TextFragment(host.content), true)

	// The user clicks into the node.
	b.OnFocus(doc.TextFragment(host.content))
	ses := b.Session()
	if ses == nil {
		fmt.Fprintln(os.Stderr, "Error: no session opened")
		return 1
	}
	fmt.Printf("session  %s open\n", ses.ID[:8])

	// Typing at the end of the inner document.
	ses.Editor.SetSelection(doc.Collapsed(ses.Editor.State().Size()))
	for _, r := range "+1" {
		if _, err := b.HandleKey(key.RuneChord(r, key.ModNone)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	fmt.Printf("outer    %q\n", host.render())

	// An outer undo reverts the node while the session is open; the
	// reconciler patches the inner editor.
	host.undo()
	fmt.Printf("undo     outer %q inner %q\n", host.render(), ses.Editor.Text())

	// The exit chord hands control back to the host.
	if _, err := b.HandleKey(cfg.ParsedExitChord()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("session  closed (exits=%d editing=%v)\n", host.exits, b.Editing())

	return 0
}

// memoryHost is a minimal linear-text outer document hosting one node.
type memoryHost struct {
	bridge  *bridge.Bridge
	prefix  string
	content string
	history []string
	exits   int
}

func (h *memoryHost) base() doc.ByteOffset {
	return doc.ByteOffset(len(h.prefix)) + 1
}

func (h *memoryHost) ContentStart() (doc.ByteOffset, error) {
	return h.base(), nil
}

func (h *memoryHost) Editable() bool {
	return true
}

func (h *memoryHost) Dispatch(tx *txn.Transaction) error {
	text := h.content
	for _, s := range tx.Steps() {
		start := s.Range.Start - h.base()
		end := s.Range.End - h.base()
		if start < 0 || end > doc.ByteOffset(len(text)) || start > end {
			return fmt.Errorf("step %s outside node content", s)
		}
		text = text[:start] + s.Text + text[end:]
	}
	h.history = append(h.history, h.content)
	h.content = text
	if h.bridge != nil {
		h.bridge.OnUpdate(doc.TextFragment(text), false)
	}
	return nil
}

func (h *memoryHost) ExitBelow() error {
	h.exits++
	return nil
}

func (h *memoryHost) undo() {
	if len(h.history) == 0 {
		return
	}
	h.content = h.history[len(h.history)-1]
	h.history = h.history[:len(h.history)-1]
	if h.bridge != nil {
		h.bridge.OnUpdate(doc.TextFragment(h.content), false)
	}
}

func (h *memoryHost) render() string {
	return h.content
}
