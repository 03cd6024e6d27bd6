// Package console formats translator diagnostics for a terminal,
// matching the teacher's stderr-prefixed error style (cmd/uawk/main.go's
// "uawk: %v\n") but with color when the output stream is a real
// terminal, and with the UTF-8 console mode Windows needs set up front.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Category names one of the three diagnostic kinds a translation run can
// report (§6, §7): lexer, parser, or codegen failures, plus a plain
// informational category for verbose-mode banners.
type Category string

const (
	CategoryLexer   Category = "lexer"
	CategoryParser  Category = "parser"
	CategoryCodeGen Category = "codegen"
	CategoryInfo    Category = "info"
)

var styles = map[Category]lipgloss.Style{
	CategoryLexer:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	CategoryParser:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	CategoryCodeGen: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	CategoryInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))

// ColorEnabled reports whether w should receive ANSI color codes: it
// must be a real terminal, not a redirected file or pipe.
func ColorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Diagnostic renders one positioned error line: "<category>: <message>
// at <line>:<column>" (§6), with the category prefix colored when color
// is enabled.
func Diagnostic(w io.Writer, cat Category, message string, line, column int) string {
	prefix := string(cat)
	if ColorEnabled(w) {
		prefix = styles[cat].Render(prefix)
	}
	if line == 0 && column == 0 {
		return fmt.Sprintf("%s: %s", prefix, message)
	}
	return fmt.Sprintf("%s: %s at %d:%d", prefix, message, line, column)
}

// Info renders an unpositioned informational line for verbose output.
func Info(w io.Writer, message string) string {
	prefix := string(CategoryInfo)
	if ColorEnabled(w) {
		prefix = styles[CategoryInfo].Render(prefix)
	}
	return fmt.Sprintf("%s: %s", prefix, message)
}

// Banner renders a verbose-mode phase marker, e.g. "=== stage 1:
// lexical analysis ===" (§6), bold when color is enabled.
func Banner(w io.Writer, title string) string {
	line := fmt.Sprintf("=== %s ===", title)
	if ColorEnabled(w) {
		line = bannerStyle.Render(line)
	}
	return line
}
