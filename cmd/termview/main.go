// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/termview/main.go
// Summary: TermView CLI: view, export, capture and search terminal transcripts.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/alicangnll/TermView/capture"
	"github.com/alicangnll/TermView/config"
	"github.com/alicangnll/TermView/export"
	"github.com/alicangnll/TermView/parser"
	"github.com/alicangnll/TermView/transcript"
	"github.com/alicangnll/TermView/view"
)

const usage = `usage: termview <command> [flags]

commands:
  render    <file>              print a transcript as plain text
  html      <file>              export a transcript as HTML
  view      <file>              open a transcript in the full-screen viewer
  capture   <cmd> [args...]     run a command and record its transcript
  search    <query>             search indexed transcripts
  index     <file>              add a transcript to the search index
  roundtrip <file>              re-emit a transcript through the reconstructor
`

func main() {
	log.SetFlags(0)
	log.SetPrefix("termview: ")

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err := config.Err(); err != nil {
		log.Printf("config: %v (using defaults)", err)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "render":
		err = runRender(args)
	case "html":
		err = runHTML(args)
	case "view":
		err = runView(args)
	case "capture":
		err = runCapture(args)
	case "search":
		err = runSearch(args)
	case "index":
		err = runIndex(args)
	case "roundtrip":
		err = runRoundtrip(args)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func loadDocument(args []string) (*transcript.Document, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected exactly one transcript file")
	}
	return transcript.Load(args[0])
}

func runRender(args []string) error {
	doc, err := loadDocument(args)
	if err != nil {
		return err
	}
	for _, line := range doc.PlainText() {
		fmt.Println(line)
	}
	return nil
}

func runHTML(args []string) error {
	fs := flag.NewFlagSet("html", flag.ExitOnError)
	page := fs.Bool("page", false, "emit a full HTML page instead of a fragment")
	highlight := fs.Bool("highlight", false, "syntax-highlight transcripts with no styling of their own")
	theme := fs.String("theme", config.Load().ExportTheme, "chroma style for -highlight")
	out := fs.String("o", "", "write to file instead of stdout")
	fs.Parse(args)

	doc, err := loadDocument(fs.Args())
	if err != nil {
		return err
	}

	lines := doc.Lines()
	if *highlight {
		lines = export.Highlight(lines, doc.Path(), *theme)
	}
	opts := export.HTMLOptions{}
	if *page {
		opts.Title = doc.Path()
	}
	html := export.HTML(lines, opts)

	if *out == "" {
		fmt.Print(html)
		return nil
	}
	return os.WriteFile(*out, []byte(html), 0644)
}

func runView(args []string) error {
	doc, err := loadDocument(args)
	if err != nil {
		return err
	}
	viewer, err := view.NewViewer(doc)
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	return viewer.Run()
}

func runCapture(args []string) error {
	fs := flag.NewFlagSet("capture", flag.ExitOnError)
	cfg := config.Load()
	width := fs.Int("width", cfg.CaptureWidth, "terminal width")
	height := fs.Int("height", cfg.CaptureHeight, "terminal height")
	timeout := fs.Duration("timeout", 0, "kill the command after this long (0 = wait)")
	out := fs.String("o", "", "write the transcript to file instead of stdout")
	verbose := fs.Bool("v", false, "verbose capture logging")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("capture: missing command")
	}
	capture.SetVerboseLogging(*verbose)

	raw, err := capture.Run(fs.Arg(0), fs.Args()[1:], capture.Options{
		Width:   *width,
		Height:  *height,
		Timeout: *timeout,
	})
	if err != nil {
		return err
	}
	if *out == "" {
		fmt.Print(raw)
		return nil
	}
	return os.WriteFile(*out, []byte(raw), 0644)
}

func openIndex() (*transcript.SearchIndex, error) {
	dbPath, err := config.Load().SearchDB()
	if err != nil {
		return nil, fmt.Errorf("resolve index path: %w", err)
	}
	return transcript.OpenSearchIndex(dbPath)
}

func runIndex(args []string) error {
	doc, err := loadDocument(args)
	if err != nil {
		return err
	}
	ix, err := openIndex()
	if err != nil {
		return err
	}
	defer ix.Close()
	return ix.IndexDocument(doc)
}

func runSearch(args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	limit := fs.Int("n", 50, "maximum number of results")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("search: expected exactly one query")
	}

	ix, err := openIndex()
	if err != nil {
		return err
	}
	defer ix.Close()

	start := time.Now()
	results, err := ix.Search(fs.Arg(0), *limit)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Printf("%s:%d: %s\n", r.Path, r.LineNo+1, r.Content)
	}
	debugf("search: %d results in %v", len(results), time.Since(start))
	return nil
}

func runRoundtrip(args []string) error {
	doc, err := loadDocument(args)
	if err != nil {
		return err
	}
	fmt.Print(parser.Reconstruct(doc.Lines()))
	return nil
}

func debugf(format string, v ...any) {
	if os.Getenv("TERMVIEW_DEBUG") != "" {
		log.Printf(format, v...)
	}
}
