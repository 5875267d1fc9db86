// Command olex prints the tokens of a source file.
//
// Usage:
//
//	olex [-format plain|pretty] [-recover] [-browse] <input_file>
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/KimNorgaard/go-olex"
	"github.com/KimNorgaard/go-olex/internal/browser"
	"github.com/KimNorgaard/go-olex/internal/formatter"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("olex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "plain", "listing format: plain or pretty")
	recoverErrs := fs.Bool("recover", false, "keep scanning past lexical errors and report all of them")
	browse := fs.Bool("browse", false, "open the listing in an interactive browser")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] <input_file>\n", fs.Name())
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}
	mode, err := formatter.ParseMode(*format)
	if err != nil {
		fmt.Fprintf(stderr, "olex: %v\n", err)
		return exitUsage
	}

	path := fs.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(stderr, "olex: %v\n", err)
		return exitError
	}
	defer f.Close()

	var opts []olex.Option
	if *recoverErrs {
		opts = append(opts, olex.Recover())
	}
	toks, lexErr := olex.NewTokenizer(f, opts...).Tokenize()
	// Lexical diagnostics share stdout with the listing.
	if lexErr != nil && !*recoverErrs {
		_ = formatter.New(stdout, mode).FormatError(lexErr)
		return exitError
	}

	if *browse {
		var buf bytes.Buffer
		if err := formatter.New(&buf, mode).Format(toks); err != nil {
			fmt.Fprintf(stderr, "olex: %v\n", err)
			return exitError
		}
		if err := browser.Run(filepath.Base(path), buf.String()); err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}
	} else if err := formatter.New(stdout, mode).Format(toks); err != nil {
		fmt.Fprintf(stderr, "olex: %v\n", err)
		return exitError
	}

	if lexErr != nil {
		_ = formatter.New(stdout, mode).FormatError(lexErr)
		return exitError
	}
	return exitOK
}
