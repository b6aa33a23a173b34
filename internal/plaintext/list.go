package plaintext

import (
	"strconv"
	"strings"

	"github.com/mithrel/plainleaf/pkg/mdtoken"
)

// parseList splits a list token span into items. Each item's body is a
// fragment rendered one level deeper, so nested lists inside it indent
// themselves; this level only records the item boundary and its number.
func (c *collector) parseList(span []mdtoken.Token, ordered bool, start int) []ListItem {
	var items []ListItem
	index := start
	for i := 0; i < len(span); {
		if span[i].Type != mdtoken.ListItemOpen {
			i++
			continue
		}
		inner, next := extractSpan(span, i, mdtoken.ListItemOpen, mdtoken.ListItemClose)
		item := ListItem{
			Content:     c.renderFragment(inner, c.depth+1),
			Ordered:     ordered,
			IndentLevel: c.depth,
		}
		if ordered {
			item.Index = index
			index++
		}
		items = append(items, item)
		i = next
	}
	return items
}

// renderListItems turns items into text: indentation from the item's list
// depth, a numeric or dash prefix on the first line only, and one blank line
// after every item. Continuation lines already carry whatever indentation
// their nested fragments produced. The trailing blank run is trimmed so the
// list ends at a single boundary.
func renderListItems(items []ListItem, opts Options) string {
	var b strings.Builder
	unit := opts.IndentType.unit()
	for _, item := range items {
		indent := strings.Repeat(unit, item.IndentLevel-1)
		prefix := "- "
		if item.Ordered {
			prefix = strconv.Itoa(item.Index) + ". "
		}
		lines := strings.Split(item.Content, "\n")
		b.WriteString(indent + prefix + lines[0] + "\n")
		for _, line := range lines[1:] {
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
