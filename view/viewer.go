// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: view/viewer.go
// Summary: Full-screen tcell viewer for rendered transcripts.
// Usage: Read-only; scrolls through the styled lines of one document.

package view

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/alicangnll/TermView/parser"
	"github.com/alicangnll/TermView/transcript"
)

// Viewer displays a transcript document on a tcell screen.
type Viewer struct {
	screen  tcell.Screen
	doc     *transcript.Document
	palette [258]tcell.Color
	offset  int
	quit    chan struct{}
}

// NewViewer creates a viewer for a document on a fresh tcell screen.
func NewViewer(doc *transcript.Document) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return newViewerWithScreen(screen, doc), nil
}

// newViewerWithScreen wires a viewer to an existing screen. Tests use this
// with a simulation screen.
func newViewerWithScreen(screen tcell.Screen, doc *transcript.Document) *Viewer {
	defStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	screen.SetStyle(defStyle)
	screen.HideCursor()
	return &Viewer{
		screen:  screen,
		doc:     doc,
		palette: newDefaultPalette(),
		quit:    make(chan struct{}),
	}
}

// Run draws the document and processes key events until the user quits.
func (v *Viewer) Run() error {
	defer v.screen.Fini()
	v.draw()
	for {
		select {
		case <-v.quit:
			return nil
		default:
		}
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		v.handleEvent(ev)
	}
}

// Close stops a running viewer.
func (v *Viewer) Close() {
	select {
	case <-v.quit:
	default:
		close(v.quit)
	}
}

func (v *Viewer) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Clear()
		v.draw()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q'):
			v.Close()
		case ev.Key() == tcell.KeyUp || (ev.Key() == tcell.KeyRune && ev.Rune() == 'k'):
			v.scrollBy(-1)
		case ev.Key() == tcell.KeyDown || (ev.Key() == tcell.KeyRune && ev.Rune() == 'j'):
			v.scrollBy(1)
		case ev.Key() == tcell.KeyPgUp:
			_, h := v.screen.Size()
			v.scrollBy(-h)
		case ev.Key() == tcell.KeyPgDn:
			_, h := v.screen.Size()
			v.scrollBy(h)
		case ev.Key() == tcell.KeyHome:
			v.offset = 0
			v.draw()
		case ev.Key() == tcell.KeyEnd:
			v.offset = v.maxOffset()
			v.draw()
		}
	}
}

func (v *Viewer) scrollBy(n int) {
	v.offset += n
	if max := v.maxOffset(); v.offset > max {
		v.offset = max
	}
	if v.offset < 0 {
		v.offset = 0
	}
	v.draw()
}

func (v *Viewer) maxOffset() int {
	_, h := v.screen.Size()
	max := len(v.doc.Lines()) - h
	if max < 0 {
		max = 0
	}
	return max
}

func (v *Viewer) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	lines := v.doc.Lines()

	for y := 0; y < height; y++ {
		idx := v.offset + y
		if idx >= len(lines) {
			break
		}
		v.drawLine(y, width, lines[idx])
	}
	v.screen.Show()
}

// drawLine paints one rendered line, advancing by display width so wide
// runes occupy both of their columns.
func (v *Viewer) drawLine(y, width int, line parser.Line) {
	x := 0
	for _, run := range line.Runs {
		style := v.mapStyle(run.Style)
		for _, r := range run.Text {
			if x >= width {
				return
			}
			v.screen.SetContent(x, y, r, nil, style)
			x += runewidth.RuneWidth(r)
		}
	}
}
