// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: transcript/document.go
// Summary: Transcript document: raw text, rendered lines, edit application.
// Usage: The host-facing surface; wires raw storage to the parser core.

package transcript

import (
	"fmt"
	"os"

	"github.com/alicangnll/TermView/parser"
)

// Document holds one transcript: the raw escape-sequence text and the styled
// lines rendered from it. Every change goes through the raw text; the
// rendered form is rebuilt in full, never patched.
type Document struct {
	path     string
	raw      string
	lines    []parser.Line
	applying bool
	changed  func(raw string)
}

// Option configures a document.
type Option func(*Document)

// WithChangeHandler registers a callback invoked with the new raw text after
// every edit applied through the document.
func WithChangeHandler(handler func(raw string)) Option {
	return func(d *Document) { d.changed = handler }
}

// New creates a document from raw transcript text.
func New(raw string, opts ...Option) *Document {
	d := &Document{}
	for _, opt := range opts {
		opt(d)
	}
	d.render(raw)
	return d
}

// Load reads a transcript file into a document.
func Load(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load transcript: %w", err)
	}
	d := New(string(data), opts...)
	d.path = path
	return d, nil
}

// Save writes the raw text back to the file the document was loaded from,
// or to path if the document was created in memory.
func (d *Document) Save(path string) error {
	if path == "" {
		path = d.path
	}
	if path == "" {
		return fmt.Errorf("save transcript: no path")
	}
	if err := os.WriteFile(path, []byte(d.raw), 0644); err != nil {
		return fmt.Errorf("save transcript: %w", err)
	}
	d.path = path
	return nil
}

// Path returns the file backing the document, if any.
func (d *Document) Path() string { return d.path }

// Raw returns the current raw transcript text.
func (d *Document) Raw() string { return d.raw }

// Lines returns the rendered styled lines. Callers must not mutate them.
func (d *Document) Lines() []parser.Line { return d.lines }

// SetRaw replaces the raw text after an external change and re-renders.
// A change reported while the document is applying its own edit is the echo
// of that edit coming back from storage; it is dropped so the edit cannot
// re-trigger a render of itself.
func (d *Document) SetRaw(raw string) {
	if d.applying {
		return
	}
	d.render(raw)
}

// ApplyEdit lowers an edited line structure to raw text, re-renders, and
// notifies the change handler. The self-edit guard is held across the
// notification so a storage echo does not loop back in.
func (d *Document) ApplyEdit(lines []parser.Line) {
	d.applying = true
	defer func() { d.applying = false }()

	d.render(parser.Reconstruct(lines))
	if d.changed != nil {
		d.changed(d.raw)
	}
}

// PlainText returns the rendered transcript with all styling stripped, one
// string per line.
func (d *Document) PlainText() []string {
	out := make([]string, len(d.lines))
	for i, line := range d.lines {
		out[i] = line.Text()
	}
	return out
}

func (d *Document) render(raw string) {
	d.raw = raw
	d.lines = parser.Render(raw)
}
