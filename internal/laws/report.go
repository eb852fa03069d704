package laws

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// StdoutIsTerminal reports whether stdout is a terminal, in which case the
// report verdicts are colored.
func StdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Print writes one line per result. A law that could not be evaluated is
// reported as "not verified" with the error, not as a plain failure.
func Print(w io.Writer, results []Result, color bool) {
	for _, r := range results {
		fmt.Fprintf(w, "%s (%s): %s\n", r.Name, r.Detail, verdict(r, color))
	}
}

func verdict(r Result, color bool) string {
	switch {
	case r.Err != nil:
		return paint(fmt.Sprintf("not verified (%v)", r.Err), ansiRed, color)
	case r.Holds:
		return paint("PASS", ansiGreen, color)
	default:
		return paint("FAIL", ansiRed, color)
	}
}

func paint(s, code string, color bool) string {
	if !color {
		return s
	}
	return code + s + ansiReset
}
