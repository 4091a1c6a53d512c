// Package table renders fixed-width text tables framed by dashed dividers.
package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Align controls how a cell is padded within its column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column describes one table column. Width is measured in terminal cells.
type Column struct {
	Title string
	Width int
	Align Align
}

// Render lays out rows under a centered header. Every row must have one
// cell per column. Cells wider than their column are printed in full.
func Render(columns []Column, rows [][]string) string {
	divider := Divider(columns)

	titles := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = center(c.Title, c.Width)
	}

	lines := make([]string, 0, len(rows)+4)
	lines = append(lines, divider, joinRow(titles), divider)

	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, c := range columns {
			cells[i] = pad(row[i], c.Width, c.Align)
		}
		lines = append(lines, joinRow(cells))
	}

	lines = append(lines, divider)
	return strings.Join(lines, "\n")
}

// Divider returns the dashed line that frames a table with the given columns.
func Divider(columns []Column) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, c := range columns {
		b.WriteString(strings.Repeat("-", c.Width+2))
		b.WriteByte('+')
	}
	return b.String()
}

func joinRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

func pad(s string, width int, align Align) string {
	if align == AlignRight {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}

// center pads s on both sides; an odd remainder goes to the right.
func center(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
