package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const columnGap = "  "

// Column describes one table column. Widths are terminal cells; a zero
// MaxWidth means unbounded. Align takes lipgloss.Left, Center or Right.
type Column struct {
	Header   string
	MinWidth int
	MaxWidth int
	Align    lipgloss.Position
}

// Table collects rows and renders them as aligned text
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates an empty table
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Missing cells render empty, extra cells are ignored.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Render draws the header, a rule and the rows with alternating styles
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}

	widths := t.widths()
	var b strings.Builder

	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.Header
	}
	b.WriteString(StyleTableHeader.Render(t.line(headers, widths)))
	b.WriteByte('\n')

	rules := make([]string, len(widths))
	for i, w := range widths {
		rules[i] = strings.Repeat("─", w)
	}
	b.WriteString(StyleTableBorder.Render(strings.Join(rules, columnGap)))
	b.WriteByte('\n')

	for i, row := range t.rows {
		style := StyleTableRow
		if i%2 == 1 {
			style = StyleTableRowAlt
		}
		b.WriteString(style.Render(t.line(row, widths)))
		b.WriteByte('\n')
	}

	return b.String()
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		w := max(col.MinWidth, lipgloss.Width(col.Header))
		for _, row := range t.rows {
			if i < len(row) {
				w = max(w, lipgloss.Width(row[i]))
			}
		}
		if col.MaxWidth > 0 {
			w = min(w, col.MaxWidth)
		}
		widths[i] = w
	}
	return widths
}

func (t *Table) line(cells []string, widths []int) string {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = fit(cell, widths[i], col.Align)
	}
	return strings.Join(parts, columnGap)
}

// fit truncates or pads s to exactly width cells
func fit(s string, width int, align lipgloss.Position) string {
	s = Truncate(s, width)
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}

	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", gap) + s
	case lipgloss.Center:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

// Truncate shortens s to at most maxWidth cells, marking the cut with "..."
func Truncate(s string, maxWidth int) string {
	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	runes := []rune(s)
	if maxWidth <= 3 {
		for len(runes) > 0 && lipgloss.Width(string(runes)) > maxWidth {
			runes = runes[:len(runes)-1]
		}
		return string(runes)
	}

	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
