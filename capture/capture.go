// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: capture/capture.go
// Summary: PTY capture: runs a command and records its raw terminal output.
// Usage: Produces the transcript text the parser core consumes.

package capture

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// Options controls a capture session.
type Options struct {
	// Width and Height are the PTY dimensions advertised to the command.
	Width, Height int
	// Timeout bounds the whole session; zero means wait for exit.
	Timeout time.Duration
	// Env entries appended to the inherited environment.
	Env []string
}

// DefaultOptions returns an 80x24 capture with no timeout.
func DefaultOptions() Options {
	return Options{Width: 80, Height: 24}
}

// Session is a running PTY capture.
type Session struct {
	ptmx   *os.File
	cmd    *exec.Cmd
	output bytes.Buffer
	mu     sync.Mutex
	done   chan struct{}
}

// Run captures the full output of a command and returns it as raw transcript
// text once the command exits.
func Run(command string, args []string, opts Options) (string, error) {
	s, err := Start(command, args, opts)
	if err != nil {
		return "", err
	}
	return s.Wait(opts.Timeout)
}

// Start launches a command under a fresh PTY and begins recording.
func Start(command string, args []string, opts Options) (*Session, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}

	cmd := exec.Command(command, args...)
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("COLUMNS=%d", opts.Width),
		fmt.Sprintf("LINES=%d", opts.Height),
		"TERM=xterm-256color",
	)
	cmd.Env = append(cmd.Env, opts.Env...)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(opts.Height),
		Cols: uint16(opts.Width),
	})
	if err != nil {
		return nil, fmt.Errorf("start pty: %w", err)
	}

	// Raw mode disables echo, so cursor-position replies we synthesize
	// below are not looped back into the recording.
	if _, err := term.MakeRaw(int(ptmx.Fd())); err != nil {
		ptmx.Close()
		return nil, fmt.Errorf("make pty raw: %w", err)
	}

	s := &Session{
		ptmx: ptmx,
		cmd:  cmd,
		done: make(chan struct{}),
	}
	go s.readLoop()
	return s, nil
}

func (s *Session) readLoop() {
	defer close(s.done)
	buf := make([]byte, 4096)
	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			data := buf[:n]
			s.answerQueries(data)
			s.mu.Lock()
			s.output.Write(data)
			s.mu.Unlock()
		}
		if err != nil {
			// EOF or EIO when the child side closes.
			if err != io.EOF {
				debugLog.Printf("pty read: %v", err)
			}
			return
		}
	}
}

// answerQueries scans output for cursor-position (DSR) and device-attribute
// queries and answers them, so full-screen programs do not stall waiting for
// a terminal that is not there.
func (s *Session) answerQueries(data []byte) {
	for i := 0; i+2 < len(data); i++ {
		if data[i] != 0x1b || data[i+1] != '[' {
			continue
		}
		j := i + 2
		for j < len(data) && ((data[j] >= '0' && data[j] <= '9') || data[j] == ';' || data[j] == '?' || data[j] == '>') {
			j++
		}
		if j >= len(data) {
			return
		}
		param := string(data[i+2 : j])
		switch data[j] {
		case 'n':
			if param == "6" {
				s.ptmx.Write([]byte("\x1b[1;1R"))
			}
		case 'c':
			if param == "" || param == "0" || param == ">" || param == ">0" {
				s.ptmx.Write([]byte("\x1b[?1;2c"))
			}
		}
	}
}

// SendInput writes bytes to the command's terminal.
func (s *Session) SendInput(data []byte) error {
	_, err := s.ptmx.Write(data)
	return err
}

// SendText writes text to the command's terminal.
func (s *Session) SendText(text string) error {
	return s.SendInput([]byte(text))
}

// Output returns a snapshot of everything captured so far.
func (s *Session) Output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.output.String()
}

// Wait blocks until the command exits (or timeout elapses, if nonzero) and
// returns the captured transcript. The command's exit status is not an
// error: a transcript of a failing command is still a transcript.
func (s *Session) Wait(timeout time.Duration) (string, error) {
	if timeout > 0 {
		select {
		case <-s.done:
		case <-time.After(timeout):
			s.cmd.Process.Kill()
			<-s.done
		}
	} else {
		<-s.done
	}
	s.cmd.Wait()
	s.ptmx.Close()
	return s.Output(), nil
}
