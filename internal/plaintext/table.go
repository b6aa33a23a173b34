package plaintext

import (
	"strings"

	"github.com/mithrel/plainleaf/pkg/mdtoken"
)

// parseTable splits a table token span into rows. Rows seen between
// thead_open and thead_close are header rows; each cell body goes through
// the same fragment rendering as any other nested container, then is
// trimmed.
func (c *collector) parseTable(span []mdtoken.Token) []TableRow {
	var rows []TableRow
	var cells []string
	inHeader := false
	for i := 0; i < len(span); {
		tok := span[i]
		switch tok.Type {
		case mdtoken.THeadOpen:
			inHeader = true
		case mdtoken.THeadClose:
			inHeader = false
		case mdtoken.TrOpen:
			cells = nil
		case mdtoken.TrClose:
			rows = append(rows, TableRow{Cells: cells, IsHeader: inHeader})
			cells = nil
		case mdtoken.ThOpen:
			inner, next := extractSpan(span, i, mdtoken.ThOpen, mdtoken.ThClose)
			cells = append(cells, strings.TrimSpace(c.renderFragment(inner, c.depth)))
			i = next
			continue
		case mdtoken.TdOpen:
			inner, next := extractSpan(span, i, mdtoken.TdOpen, mdtoken.TdClose)
			cells = append(cells, strings.TrimSpace(c.renderFragment(inner, c.depth)))
			i = next
			continue
		}
		i++
	}
	return rows
}

// columnWidths computes, per column, the maximum display width over all
// rows. Display width, not rune count: wide and combining characters would
// otherwise break the alignment.
func columnWidths(rows []TableRow) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row.Cells {
			w := displayWidth(cell)
			if i >= len(widths) {
				widths = append(widths, w)
			} else if w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

const columnGap = "  "

// renderTableRows lays the rows out with every cell right-padded to its
// column width. A dash separator follows the first header row, but only
// when there is something under it to separate.
func renderTableRows(rows []TableRow, opts Options) string {
	widths := columnWidths(rows)
	var b strings.Builder
	separatorDone := false
	for _, row := range rows {
		parts := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			parts[i] = pad(cell, widths[i])
		}
		b.WriteString(strings.Join(parts, columnGap) + "\n")
		if row.IsHeader && !separatorDone && len(rows) > 1 {
			b.WriteString(separatorRow(widths, opts.minColumnWidth()) + "\n")
			separatorDone = true
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func pad(cell string, width int) string {
	if n := width - displayWidth(cell); n > 0 {
		return cell + strings.Repeat(" ", n)
	}
	return cell
}

func separatorRow(widths []int, minWidth int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		if w < minWidth {
			w = minWidth
		}
		parts[i] = strings.Repeat("-", w)
	}
	return strings.Join(parts, columnGap)
}
