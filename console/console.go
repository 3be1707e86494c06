// Package console provides small helpers for command-line programs built on
// the recordfile library: positional argument retrieval with an interactive
// fallback, input cleanup, and gated debug printing.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Arg returns the positional argument at position, cleaned with Clean. When
// the argument is absent, a prompt is printed to stderr (only if stdin is a
// terminal, so piped input stays quiet) and one line is read from stdin.
func Arg(args []string, position int, prompt string) string {
	return arg(args, position, prompt, os.Stdin, os.Stderr, stdinIsTerminal())
}

func arg(args []string, position int, prompt string, in io.Reader, out io.Writer, tty bool) string {
	if position >= 0 && position < len(args) {
		return Clean(args[position])
	}
	if tty {
		fmt.Fprint(out, prompt)
	}
	line, _ := bufio.NewReader(in).ReadString('\n')
	return Clean(line)
}

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// Clean trims surrounding whitespace and at most one pair of enclosing quote
// characters, single or double. The quotes must match and enclose the whole
// value; interior quotes are left alone.
func Clean(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			s = s[1 : len(s)-1]
		}
	}
	return s
}
