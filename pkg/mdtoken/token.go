// Package mdtoken defines the token vocabulary exchanged between a markdown
// tokenizer and the plaintext renderer. The set of token types mirrors the
// common markdown-it naming so any tokenizer emitting that shape can feed the
// renderer; unknown types are ignored downstream, so extending the vocabulary
// is backward compatible.
package mdtoken

// Type identifies a token kind. It is a string rather than an enum so that
// tokenizers can emit extension types the renderer has not learned yet.
type Type string

const (
	// Block structure.
	ParagraphOpen    Type = "paragraph_open"
	ParagraphClose   Type = "paragraph_close"
	HeadingOpen      Type = "heading_open"
	HeadingClose     Type = "heading_close"
	Fence            Type = "fence"
	CodeBlock        Type = "code_block"
	Hr               Type = "hr"
	ThematicBreak    Type = "thematic_break" // alias some tokenizers emit for hr
	BlockquoteOpen   Type = "blockquote_open"
	BlockquoteClose  Type = "blockquote_close"
	BulletListOpen   Type = "bullet_list_open"
	BulletListClose  Type = "bullet_list_close"
	OrderedListOpen  Type = "ordered_list_open"
	OrderedListClose Type = "ordered_list_close"
	ListItemOpen     Type = "list_item_open"
	ListItemClose    Type = "list_item_close"
	TableOpen        Type = "table_open"
	TableClose       Type = "table_close"
	THeadOpen        Type = "thead_open"
	THeadClose       Type = "thead_close"
	TrOpen           Type = "tr_open"
	TrClose          Type = "tr_close"
	ThOpen           Type = "th_open"
	ThClose          Type = "th_close"
	TdOpen           Type = "td_open"
	TdClose          Type = "td_close"

	// Inline content (children of an Inline token).
	Inline      Type = "inline"
	Text        Type = "text"
	Softbreak   Type = "softbreak"
	Hardbreak   Type = "hardbreak"
	EmOpen      Type = "em_open"
	EmClose     Type = "em_close"
	StrongOpen  Type = "strong_open"
	StrongClose Type = "strong_close"
	StrikeOpen  Type = "s_open"
	StrikeClose Type = "s_close"
	MarkOpen    Type = "mark_open"
	MarkClose   Type = "mark_close"
	InsOpen     Type = "ins_open"
	InsClose    Type = "ins_close"
	SubOpen     Type = "sub_open"
	SubClose    Type = "sub_close"
	SupOpen     Type = "sup_open"
	SupClose    Type = "sup_close"
	Emoji       Type = "emoji"
	LinkOpen    Type = "link_open"
	LinkClose   Type = "link_close"
	CodeInline  Type = "code_inline"
)

// Token is one node of the token tree. Block-level structure is expressed as
// flat open/close pairs; inline runs hang off an Inline token's Children.
type Token struct {
	Type     Type              `json:"type"`
	Tag      string            `json:"tag,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Content  string            `json:"content,omitempty"`
	Markup   string            `json:"markup,omitempty"`
	Children []Token           `json:"children,omitempty"`
}

// Attr returns the named attribute or "" when absent.
func (t Token) Attr(name string) string {
	if t.Attrs == nil {
		return ""
	}
	return t.Attrs[name]
}
