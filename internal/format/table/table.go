// Package table lays out tab rows in aligned columns.
package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const ellipsis = "…"

// Format returns the rows padded according to the widest entry in each
// column. Cells may carry ANSI styling; widths are measured in cells.
func Format(rows [][]string, alignments []Alignment) []string {
	return FormatWidth(rows, alignments, nil)
}

// FormatWidth is Format with an optional maximum width per column. A zero
// or missing limit leaves the column unbounded; longer cells are truncated
// with an ellipsis.
func FormatWidth(rows [][]string, alignments []Alignment, limits []int) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	cells := make([][]string, len(rows))
	widths := make([]int, colCount)
	for r, row := range rows {
		cells[r] = make([]string, colCount)
		for c, cell := range row {
			if c < len(limits) && limits[c] > 0 {
				cell = Truncate(cell, limits[c])
			}
			cells[r][c] = cell
			if w := ansi.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for r, row := range cells {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			pad := widths[c] - ansi.StringWidth(cell)
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(strings.Repeat(" ", max(pad, 0)))
				b.WriteString(cell)
				continue
			}
			b.WriteString(cell)
			if c < colCount-1 {
				b.WriteString(strings.Repeat(" ", max(pad, 0)))
			}
		}
		out[r] = b.String()
	}
	return out
}

// Truncate shortens text to width cells, ending with an ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return ansi.Truncate(text, 1, "")
	}
	return ansi.Truncate(text, width, ellipsis)
}
