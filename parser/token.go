// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/token.go
// Summary: Escape-sequence tokenizer for raw transcript text.
// Usage: Feeds the buffer interpreter; see interp.go.

package parser

// TokenKind identifies one of the five token shapes the scanner recognizes.
type TokenKind int

const (
	// TokenText is a maximal run of printable characters.
	TokenText TokenKind = iota
	// TokenCSI is a whole control sequence, ESC '[' params final-letter.
	TokenCSI
	// TokenOSC is a whole operating-system command, ESC ']' ... BEL or ESC '\'.
	TokenOSC
	// TokenKeypad is ESC '=' or ESC '>'.
	TokenKeypad
	// TokenControl is a single '\n', '\r' or backspace.
	TokenControl
)

// Token is one lexical unit of a transcript. Value always holds the exact
// bytes consumed, escape introducers included.
type Token struct {
	Kind  TokenKind
	Value string
}

const esc = '\x1b'

// Scanner splits raw transcript text into tokens by longest-match scanning.
// The five shapes are mutually exclusive and tried in priority order at each
// position: CSI, OSC, keypad, control character, text run. An escape that
// starts none of the escape shapes is skipped; an unterminated OSC at end of
// input is dropped the same way.
type Scanner struct {
	input string
	pos   int
}

// NewScanner returns a scanner positioned at the start of input.
// Scanners are single-pass; create a fresh one to rescan.
func NewScanner(input string) *Scanner {
	return &Scanner{input: input}
}

// Tokenize runs a scanner over input and returns every token.
func Tokenize(input string) []Token {
	sc := NewScanner(input)
	var toks []Token
	for {
		tok, ok := sc.Next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

// Next returns the next token, or ok=false at end of input.
func (s *Scanner) Next() (Token, bool) {
	for s.pos < len(s.input) {
		if s.input[s.pos] == esc {
			if tok, ok := s.scanEscape(); ok {
				return tok, true
			}
			// Escape opened no recognized shape. Drop it and rescan
			// from the next byte.
			s.pos++
			continue
		}
		switch s.input[s.pos] {
		case '\n', '\r', '\b':
			tok := Token{Kind: TokenControl, Value: s.input[s.pos : s.pos+1]}
			s.pos++
			return tok, true
		}
		return s.scanText(), true
	}
	return Token{}, false
}

// scanEscape tries the three escape shapes at s.pos, which points at ESC.
func (s *Scanner) scanEscape() (Token, bool) {
	if s.pos+1 >= len(s.input) {
		return Token{}, false
	}
	switch s.input[s.pos+1] {
	case '[':
		return s.scanCSI()
	case ']':
		return s.scanOSC()
	case '=', '>':
		tok := Token{Kind: TokenKeypad, Value: s.input[s.pos : s.pos+2]}
		s.pos += 2
		return tok, true
	}
	return Token{}, false
}

// scanCSI matches ESC '[' [0-9;?]* final-letter.
func (s *Scanner) scanCSI() (Token, bool) {
	i := s.pos + 2
	for i < len(s.input) {
		b := s.input[i]
		if (b >= '0' && b <= '9') || b == ';' || b == '?' {
			i++
			continue
		}
		if (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') {
			tok := Token{Kind: TokenCSI, Value: s.input[s.pos : i+1]}
			s.pos = i + 1
			return tok, true
		}
		return Token{}, false
	}
	return Token{}, false
}

// scanOSC matches ESC ']' ... terminated by BEL or ESC '\'.
func (s *Scanner) scanOSC() (Token, bool) {
	for i := s.pos + 2; i < len(s.input); i++ {
		switch s.input[i] {
		case '\x07':
			tok := Token{Kind: TokenOSC, Value: s.input[s.pos : i+1]}
			s.pos = i + 1
			return tok, true
		case esc:
			if i+1 < len(s.input) && s.input[i+1] == '\\' {
				tok := Token{Kind: TokenOSC, Value: s.input[s.pos : i+2]}
				s.pos = i + 2
				return tok, true
			}
		}
	}
	return Token{}, false
}

// scanText consumes the longest run of characters that are neither escape
// introducers nor the handled control characters.
func (s *Scanner) scanText() Token {
	start := s.pos
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case esc, '\n', '\r', '\b':
			return Token{Kind: TokenText, Value: s.input[start:s.pos]}
		}
		s.pos++
	}
	return Token{Kind: TokenText, Value: s.input[start:]}
}
