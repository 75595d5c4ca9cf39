// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: capture/logging.go
// Summary: Debug logging toggle for capture sessions.

package capture

import (
	"io"
	"log"
	"os"
)

var debugLog = log.New(io.Discard, "capture: ", log.LstdFlags)

// SetVerboseLogging toggles verbose capture logging.
// When disabled (default), debug output is discarded.
func SetVerboseLogging(enable bool) {
	if enable {
		debugLog.SetOutput(os.Stderr)
	} else {
		debugLog.SetOutput(io.Discard)
	}
}
