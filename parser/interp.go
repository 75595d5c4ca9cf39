// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/interp.go
// Summary: Buffer interpreter: applies tokens to the screen model.
// Usage: Parse is the entry point for turning raw transcript text into a grid.

package parser

// Parse interprets raw transcript text and returns the resulting screen.
// Every call builds a fresh screen; the interpreter keeps no state of its
// own beyond the screen it drives.
func Parse(raw string) *Screen {
	s := NewScreen()
	sc := NewScanner(raw)
	for {
		tok, ok := sc.Next()
		if !ok {
			return s
		}
		apply(s, tok)
	}
}

// apply dispatches one token against the screen.
func apply(s *Screen, tok Token) {
	switch tok.Kind {
	case TokenText:
		for _, r := range tok.Value {
			s.PlaceRune(r)
		}
	case TokenControl:
		switch tok.Value[0] {
		case '\n':
			s.LineFeed()
		case '\r':
			s.CarriageReturn()
		case '\b':
			s.Backspace()
		}
	case TokenCSI:
		applyCSI(s, tok.Value)
	case TokenOSC, TokenKeypad:
		// Out-of-band; no grid effect.
	}
}

// applyCSI handles a whole captured control sequence. Unrecognized final
// letters are accepted and ignored so unknown sequences degrade to no-ops.
func applyCSI(s *Screen, seq string) {
	final := seq[len(seq)-1]
	params, private := csiParams(seq)
	if private {
		// Private-mode sequences (ESC[?...) never touch the grid.
		return
	}

	param := func(i, def int) int {
		if i < len(params) && params[i] != 0 {
			return params[i]
		}
		return def
	}

	switch final {
	case 'm':
		if isResetSGR(seq) {
			s.ResetStyle()
		} else {
			s.SetStyle(seq)
		}
	case 'K':
		s.EraseLine(param(0, 0))
	case 'J':
		s.EraseDisplay(param(0, 0))
	case 'P':
		s.DeleteChars(param(0, 1))
	case 'A':
		s.MoveUp(param(0, 1))
	case 'B':
		s.MoveDown(param(0, 1))
	case 'C':
		s.MoveForward(param(0, 1))
	case 'D':
		s.MoveBackward(param(0, 1))
	}
}

// csiParams extracts the numeric parameters from a captured CSI sequence.
// The returned slice holds one entry per ';'-separated field; empty fields
// parse as 0 so callers can apply their own defaults.
func csiParams(seq string) (params []int, private bool) {
	cur, seen := 0, false
	for i := 2; i < len(seq)-1; i++ {
		switch b := seq[i]; {
		case b >= '0' && b <= '9':
			cur = cur*10 + int(b-'0')
			seen = true
		case b == ';':
			params = append(params, cur)
			cur, seen = 0, false
		case b == '?':
			private = true
		}
	}
	if seen || len(params) > 0 {
		params = append(params, cur)
	}
	return params, private
}

// isResetSGR reports whether seq is the bare SGR reset, ESC[0m or ESC[m.
func isResetSGR(seq string) bool {
	return seq == "\x1b[0m" || seq == "\x1b[m"
}
