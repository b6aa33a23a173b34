package plaintext

import "fmt"

// BlockKind discriminates the Block union. The formatter switches over it
// exhaustively; adding a kind means teaching the formatter and the spacing
// table about it.
type BlockKind int

const (
	KindParagraph BlockKind = iota
	KindHeading
	KindList
	KindTable
	KindCode
	KindBlockquote
	KindRaw
)

func (k BlockKind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindList:
		return "list"
	case KindTable:
		return "table"
	case KindCode:
		return "code"
	case KindBlockquote:
		return "blockquote"
	case KindRaw:
		return "raw"
	default:
		return fmt.Sprintf("blockkind(%d)", int(k))
	}
}

// MarshalText makes kinds readable in the JSON output mode.
func (k BlockKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Block is one semantic unit of output, in document order. Only the fields
// relevant to its Kind are populated.
type Block struct {
	Kind BlockKind `json:"kind"`

	// Lines holds paragraph, code and blockquote content.
	Lines []string `json:"lines,omitempty"`
	// Level and Text hold heading content; Text doubles as Raw content.
	Level int    `json:"level,omitempty"`
	Text  string `json:"text,omitempty"`

	Items []ListItem `json:"items,omitempty"`
	Rows  []TableRow `json:"rows,omitempty"`
}

// ListItem is one rendered list entry. IndentLevel is the nesting depth of
// the owning list (1 = top level), not the token-tree depth. Index is set
// only for ordered items and counts within the item's own list.
type ListItem struct {
	Content     string `json:"content"`
	Ordered     bool   `json:"ordered"`
	Index       int    `json:"index,omitempty"`
	IndentLevel int    `json:"indentLevel"`
}

// TableRow is one parsed table row; cells are already rendered and trimmed.
type TableRow struct {
	Cells    []string `json:"cells"`
	IsHeader bool     `json:"isHeader,omitempty"`
}
