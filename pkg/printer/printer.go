// Package printer renders CLI output: status lines, JSON, and plain
// column tables.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// OutputType selects the encoding used by Printer.
type OutputType string

const (
	OutputTypeText OutputType = "text"
	OutputTypeJSON OutputType = "json"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// Printer writes structured output in the configured encoding.
type Printer struct {
	outputType OutputType
	quiet      bool
}

// New creates a printer. When quiet is set, informational output is
// suppressed; errors still print.
func New(outputType OutputType, quiet bool) *Printer {
	return &Printer{outputType: outputType, quiet: quiet}
}

// PrintJSON writes v as indented JSON to stdout.
func (p *Printer) PrintJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// PrintSuccess prints a green success line.
func PrintSuccess(msg string) {
	fmt.Println(successStyle.Render("✓ " + msg))
}

// PrintError prints a red error line to stderr.
func PrintError(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+msg))
}

// PrintInfo prints an informational line.
func PrintInfo(msg string) {
	fmt.Println(infoStyle.Render(msg))
}

// TruncateString shortens s to max runes, ellipsis included.
func TruncateString(s string, max int) string {
	if max <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// TablePrinter renders rows as aligned columns with a bold header.
type TablePrinter struct {
	w       io.Writer
	headers []string
	rows    [][]string
}

// NewTablePrinter creates a table writing to w.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{w: w}
}

// SetHeaders sets the column titles.
func (t *TablePrinter) SetHeaders(headers ...string) {
	t.headers = headers
}

// AddRow appends one row of cells.
func (t *TablePrinter) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render writes the table.
func (t *TablePrinter) Render() {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var header strings.Builder
	for i, h := range t.headers {
		header.WriteString(pad(h, widths[i]))
		if i < len(t.headers)-1 {
			header.WriteString("  ")
		}
	}
	fmt.Fprintln(t.w, headerStyle.Render(header.String()))

	for _, row := range t.rows {
		var line strings.Builder
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			line.WriteString(pad(cell, widths[i]))
			if i < len(row)-1 {
				line.WriteString("  ")
			}
		}
		fmt.Fprintln(t.w, line.String())
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
