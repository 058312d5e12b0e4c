package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// isTerminal reports whether stdout is an interactive terminal.
var isTerminal = func() bool {
	if stdout != os.Stdout {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printMarkdown prints md to stdout, rendered with style when stdout is a terminal.
func printMarkdown(md, style string) {
	if !isTerminal() {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := renderMarkdown(md, style)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

func renderMarkdown(md, style string) (string, error) {
	styleOpt := glamour.WithAutoStyle()
	if style != "" && style != "auto" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(100))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
