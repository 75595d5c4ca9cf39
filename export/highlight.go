// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: export/highlight.go
// Summary: Syntax highlighting for unstyled transcript lines.
// Usage: Optional pass before HTML export; presentation only, never tagged.

package export

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"

	"github.com/alicangnll/TermView/parser"
)

const defaultChromaStyle = "monokai"

// Highlight colorizes fully-unstyled lines with a syntax lexer. Lines that
// already carry terminal styling are returned untouched: the transcript's
// own colors always win. Highlighted runs get a visual style but no
// round-trip tag, so reconstruction still emits them as plain text.
func Highlight(lines []parser.Line, filename, styleName string) []parser.Line {
	if hasStyling(lines) {
		return lines
	}

	plain := make([]string, len(lines))
	for i, line := range lines {
		plain[i] = line.Text()
	}
	text := strings.Join(plain, "\n")
	if strings.TrimSpace(text) == "" {
		return lines
	}

	lexer := pickLexer(filename, text)
	if lexer == nil {
		return lines
	}
	style := styles.Get(styleName)
	if style == styles.Fallback {
		style = styles.Get(defaultChromaStyle)
	}

	tokens, err := chroma.Tokenise(chroma.Coalesce(lexer), nil, text)
	if err != nil {
		return lines
	}
	return tokensToLines(tokens, style, len(lines))
}

// hasStyling reports whether any run carries a round-trip tag.
func hasStyling(lines []parser.Line) bool {
	for _, line := range lines {
		for _, run := range line.Runs {
			if run.Tag != "" {
				return true
			}
		}
	}
	return false
}

// pickLexer resolves a lexer from the filename via language detection,
// falling back to content analysis.
func pickLexer(filename, text string) chroma.Lexer {
	if filename != "" {
		if lang, safe := enry.GetLanguageByExtension(filename); safe {
			if l := lexers.Get(lang); l != nil {
				return l
			}
		}
	}
	if lang := enry.GetLanguage(filename, []byte(text)); lang != "" && lang != enry.OtherLanguage {
		if l := lexers.Get(lang); l != nil {
			return l
		}
	}
	return lexers.Analyse(text)
}

// tokensToLines rebuilds a line structure from a chroma token stream,
// splitting tokens on newlines. lineCount pads the result so the output
// keeps the input's line count.
func tokensToLines(tokens []chroma.Token, style *chroma.Style, lineCount int) []parser.Line {
	var out []parser.Line
	current := parser.Line{}

	flush := func() {
		if len(current.Runs) == 0 {
			current.Runs = []parser.Run{{}}
		}
		out = append(out, current)
		current = parser.Line{}
	}

	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		st := tokenStyle(style.Get(tok.Type))
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				flush()
			}
			if part == "" {
				continue
			}
			current.Runs = append(current.Runs, parser.Run{Text: part, Style: st})
		}
	}
	flush()

	for len(out) < lineCount {
		out = append(out, parser.Line{Runs: []parser.Run{{}}})
	}
	// A trailing newline in the token stream leaves one extra empty line.
	if len(out) > lineCount {
		out = out[:lineCount]
	}
	return out
}

// tokenStyle lowers a chroma style entry to a visual style.
func tokenStyle(entry chroma.StyleEntry) parser.Style {
	var st parser.Style
	if entry.Colour.IsSet() {
		st.FG = parser.Color{
			Mode: parser.ColorModeRGB,
			R:    entry.Colour.Red(),
			G:    entry.Colour.Green(),
			B:    entry.Colour.Blue(),
		}
	}
	if entry.Bold == chroma.Yes {
		st.Attr |= parser.AttrBold
	}
	if entry.Italic == chroma.Yes {
		st.Attr |= parser.AttrItalic
	}
	if entry.Underline == chroma.Yes {
		st.Attr |= parser.AttrUnderline
	}
	return st
}
