package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"pwna/internal/preflight"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"

	checkLabelWidth = 24
)

// checkVerdict returns the bracketed label and color for a preflight result.
// Failed optional checks degrade to a warning.
func checkVerdict(result preflight.Result) (string, string) {
	switch {
	case result.Passed:
		return "OK", ansiGreen
	case result.Optional:
		return "WARN", ansiYellow
	default:
		return "ERROR", ansiRed
	}
}

func renderCheckLine(result preflight.Result, colorize bool) string {
	label, color := checkVerdict(result)
	verdict := "[" + label + "]"
	if result.Detail != "" {
		verdict += " " + result.Detail
	}
	line := fmt.Sprintf("  %-*s %s", checkLabelWidth, result.Name+":", verdict)
	if colorize {
		return color + line + ansiReset
	}
	return line
}

func preflightLines(results []preflight.Result, colorize bool) []string {
	lines := make([]string, 0, len(results))
	for _, result := range results {
		lines = append(lines, renderCheckLine(result, colorize))
	}
	return lines
}

// writeStatusReport prints a titled block of check lines to out.
func writeStatusReport(out io.Writer, title string, results []preflight.Result) {
	colorize := shouldColorize(out)
	heading := "== " + title + " =="
	rule := strings.Repeat("-", len(heading))
	if colorize {
		heading, rule = ansiBlue+heading+ansiReset, ansiBlue+rule+ansiReset
	}
	fmt.Fprintln(out, heading)
	fmt.Fprintln(out, rule)
	for _, line := range preflightLines(results, colorize) {
		fmt.Fprintln(out, line)
	}
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
