// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/render.go
// Summary: Style-run renderer: groups grid cells into styled runs per line.
// Usage: Render/RenderScreen produce the structured form shown to the user.

package parser

// Run is a maximal stretch of characters within one line that share a single
// accumulated style. Tag carries the raw escape string so an edited run can
// be lowered back to escape sequences byte-for-byte; it is empty for
// unstyled text.
type Run struct {
	Text  string
	Style Style
	Tag   string
}

// Line is one rendered transcript line.
type Line struct {
	Runs []Run
}

// Text returns the line's plain text with all styling stripped.
func (l Line) Text() string {
	var out string
	for _, r := range l.Runs {
		out += r.Text
	}
	return out
}

// Render parses raw transcript text and renders the resulting grid.
func Render(raw string) []Line {
	return RenderScreen(Parse(raw))
}

// RenderScreen walks a finished grid and coalesces each row into maximal
// style runs. It is pure: rendering the same screen twice yields identical
// output.
func RenderScreen(s *Screen) []Line {
	rows := s.Rows()
	lines := make([]Line, len(rows))
	for y, row := range rows {
		lines[y] = renderRow(row)
	}
	return lines
}

// renderRow groups adjacent cells with an identical style string into runs.
// An empty row renders as a single blank placeholder run so the line keeps
// its place in the output.
func renderRow(row Row) Line {
	if len(row) == 0 {
		return Line{Runs: []Run{{}}}
	}
	var runs []Run
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i].Style == row[start].Style {
			continue
		}
		style := row[start].Style
		runs = append(runs, Run{
			Text:  row[start:i].text(),
			Style: TranslateStyle(style),
			Tag:   style,
		})
		start = i
	}
	return Line{Runs: runs}
}
