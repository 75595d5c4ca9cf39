// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/reconstruct.go
// Summary: Escape reconstructor: lowers edited styled lines to raw text.
// Usage: Inverse of render.go at line granularity; fed by the edit path.

package parser

import "strings"

const resetSGR = "\x1b[0m"

// Reconstruct rebuilds an escape-sequence stream from styled lines. Each
// tagged run is bracketed by resets so its style cannot leak into the
// neighboring text; untagged runs contribute their literal text only.
// Reconstruction never invents styling: a run whose tag was lost by the
// editing surface comes back as plain text. Lossy by design.
func Reconstruct(lines []Line) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, run := range line.Runs {
			if run.Tag != "" {
				sb.WriteString(resetSGR)
				sb.WriteString(run.Tag)
				sb.WriteString(run.Text)
				sb.WriteString(resetSGR)
			} else {
				sb.WriteString(run.Text)
			}
		}
	}
	return sb.String()
}
