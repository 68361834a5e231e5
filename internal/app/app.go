// Package app implements the cfmt command: printf(1) on top of the cfmt
// engine.
package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"github.com/bjaus/cfmt"
)

const usageText = `usage: cfmt [-columns] FORMAT [ARGUMENT...]

Print ARGUMENTs according to FORMAT, a C printf template. Backslash escapes
in FORMAT are interpreted. FORMAT is reused while arguments remain; missing
arguments format as zero or as the empty string.
`

// Run executes the command and returns the process exit code: 0 on
// success, 1 when an argument could not be converted, 2 on usage errors.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cfmt", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	columns := fs.Bool("columns", false, "measure %s and %c widths in terminal columns")

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			_, _ = io.WriteString(stdout, usageText)
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "cfmt: %v\n%s", err, usageText)
		return 2
	}
	rest := fs.Args()
	if len(rest) == 0 {
		_, _ = fmt.Fprintf(stderr, "cfmt: missing operand\n%s", usageText)
		return 2
	}

	format := unescape(rest[0])
	args := make([]any, len(rest)-1)
	for i, a := range rest[1:] {
		args[i] = argument(a)
	}

	p := cfmt.Printer{DisplayWidth: *columns, DefaultLength: cfmt.LengthJ}
	out, errs := render(p, format, args)

	code := 0
	for _, err := range errs {
		_, _ = fmt.Fprintf(stderr, "cfmt: %v\n", err)
		code = 1
	}

	w := bufio.NewWriter(stdout)
	_, _ = w.Write(out)
	if err := w.Flush(); err != nil && !isBrokenPipe(err) {
		_, _ = fmt.Fprintf(stderr, "cfmt: %v\n", err)
		return 1
	}
	return code
}

// render applies format repeatedly until every argument is consumed. A
// template that consumes nothing is applied once.
func render(p cfmt.Printer, format string, args []any) ([]byte, []error) {
	var (
		out  []byte
		errs []error
	)
	for {
		var (
			used int
			err  error
		)
		out, used, err = p.Append(out, format, args...)
		if err != nil && !errors.Is(err, cfmt.ErrMissingArgument) {
			errs = append(errs, err)
		}
		args = args[used:]
		if used == 0 || len(args) == 0 {
			return out, errs
		}
	}
}

// isBrokenPipe reports whether err is a broken or closed pipe, as when the
// reader (like `head`) exits early.
func isBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
