// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: export/html.go
// Summary: HTML export of rendered transcript lines.
// Usage: Lowers styled runs to <span> markup with inline CSS.

package export

import (
	"html"
	"strings"

	"github.com/alicangnll/TermView/parser"
)

// HTMLOptions controls HTML export.
type HTMLOptions struct {
	// Title for the document head; empty means a bare fragment is emitted
	// with no page scaffolding.
	Title string
	// Palette used to lower terminal colors. Zero value means the default
	// xterm palette.
	Palette *Palette
}

// HTML renders styled lines as an HTML fragment or page. Run text is
// markup-escaped here; the structured form upstream stays untouched.
func HTML(lines []parser.Line, opts HTMLOptions) string {
	palette := opts.Palette
	if palette == nil {
		def := NewDefaultPalette()
		palette = &def
	}

	var sb strings.Builder
	if opts.Title != "" {
		sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
		sb.WriteString(html.EscapeString(opts.Title))
		sb.WriteString("</title>\n</head>\n<body style=\"background:")
		sb.WriteString(palette[257].Hex())
		sb.WriteString(";color:")
		sb.WriteString(palette[256].Hex())
		sb.WriteString("\">\n")
	}

	sb.WriteString("<pre>")
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, run := range line.Runs {
			writeRun(&sb, run, palette)
		}
	}
	sb.WriteString("</pre>\n")

	if opts.Title != "" {
		sb.WriteString("</body>\n</html>\n")
	}
	return sb.String()
}

func writeRun(sb *strings.Builder, run parser.Run, palette *Palette) {
	if run.Text == "" {
		return
	}
	css := runCSS(run.Style, palette)
	if css == "" {
		sb.WriteString(html.EscapeString(run.Text))
		return
	}
	sb.WriteString("<span style=\"")
	sb.WriteString(css)
	sb.WriteString("\">")
	sb.WriteString(html.EscapeString(run.Text))
	sb.WriteString("</span>")
}

// runCSS lowers a visual style to inline CSS. An unstyled run yields ""
// and is emitted without any wrapping markup.
func runCSS(st parser.Style, palette *Palette) string {
	if st.IsZero() {
		return ""
	}

	fg, bg := st.FG, st.BG
	var props []string

	if st.Attr&parser.AttrReverse != 0 {
		// Reverse video swaps the resolved colors.
		props = append(props,
			"color:"+palette.Background(bg).Hex(),
			"background:"+palette.Foreground(fg).Hex())
	} else {
		if fg.Mode != parser.ColorModeDefault {
			props = append(props, "color:"+palette.Foreground(fg).Hex())
		}
		if bg.Mode != parser.ColorModeDefault {
			props = append(props, "background:"+palette.Background(bg).Hex())
		}
	}

	if st.Attr&parser.AttrBold != 0 {
		props = append(props, "font-weight:bold")
	}
	if st.Attr&parser.AttrFaint != 0 {
		props = append(props, "opacity:0.6")
	}
	if st.Attr&parser.AttrItalic != 0 {
		props = append(props, "font-style:italic")
	}
	switch {
	case st.Attr&parser.AttrUnderline != 0 && st.Attr&parser.AttrStrike != 0:
		props = append(props, "text-decoration:underline line-through")
	case st.Attr&parser.AttrUnderline != 0:
		props = append(props, "text-decoration:underline")
	case st.Attr&parser.AttrStrike != 0:
		props = append(props, "text-decoration:line-through")
	}

	return strings.Join(props, ";")
}
