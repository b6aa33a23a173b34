// Package tokenizer turns markdown source into the mdtoken vocabulary using
// goldmark. It is the pluggable front half of the pipeline: the renderer
// consumes the token tree opaquely and never sees markdown text itself.
package tokenizer

import (
	"fmt"
	"strconv"

	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	emojiast "github.com/yuin/goldmark-emoji/ast"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/mithrel/plainleaf/pkg/mdtoken"
)

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithEmoji toggles the emoji extension. When disabled, :shortcode: text
// stays literal text and no emoji tokens are ever produced, which is how
// downstream keeps shortcodes verbatim.
func WithEmoji(enabled bool) Option {
	return func(t *Tokenizer) { t.emoji = enabled }
}

// Tokenizer parses markdown into token trees. Safe for reuse across inputs.
type Tokenizer struct {
	emoji bool
	md    goldmark.Markdown
}

// New builds a Tokenizer with GFM tables, strikethrough, task lists and
// (by default) emoji shortcodes enabled.
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{emoji: true}
	for _, opt := range opts {
		opt(t)
	}
	exts := []goldmark.Extender{
		extension.Table,
		extension.Strikethrough,
		extension.TaskList,
	}
	if t.emoji {
		exts = append(exts, emoji.Emoji)
	}
	t.md = goldmark.New(goldmark.WithExtensions(exts...))
	return t
}

// Tokenize parses source and returns the top-level token slice.
func (t *Tokenizer) Tokenize(source []byte) []mdtoken.Token {
	doc := t.md.Parser().Parse(text.NewReader(source))
	return blockTokens(doc, source)
}

func blockTokens(parent ast.Node, src []byte) []mdtoken.Token {
	var out []mdtoken.Token
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, blockToken(n, src)...)
	}
	return out
}

func blockToken(n ast.Node, src []byte) []mdtoken.Token {
	switch n := n.(type) {
	case *ast.Paragraph:
		return paragraphTokens(n, src)
	case *ast.TextBlock:
		// Tight list items carry bare text blocks; downstream treats them
		// like paragraphs.
		return paragraphTokens(n, src)
	case *ast.Heading:
		return []mdtoken.Token{
			{Type: mdtoken.HeadingOpen, Tag: fmt.Sprintf("h%d", n.Level)},
			{Type: mdtoken.Inline, Children: inlineTokens(n, src)},
			{Type: mdtoken.HeadingClose, Tag: fmt.Sprintf("h%d", n.Level)},
		}
	case *ast.FencedCodeBlock:
		return []mdtoken.Token{{Type: mdtoken.Fence, Content: rawLines(n, src)}}
	case *ast.CodeBlock:
		return []mdtoken.Token{{Type: mdtoken.CodeBlock, Content: rawLines(n, src)}}
	case *ast.ThematicBreak:
		return []mdtoken.Token{{Type: mdtoken.Hr, Markup: "---"}}
	case *ast.Blockquote:
		out := []mdtoken.Token{{Type: mdtoken.BlockquoteOpen}}
		out = append(out, blockTokens(n, src)...)
		return append(out, mdtoken.Token{Type: mdtoken.BlockquoteClose})
	case *ast.List:
		return listTokens(n, src)
	case *east.Table:
		return tableTokens(n, src)
	default:
		// HTML blocks and anything unrecognized produce no tokens.
		return nil
	}
}

func paragraphTokens(n ast.Node, src []byte) []mdtoken.Token {
	return []mdtoken.Token{
		{Type: mdtoken.ParagraphOpen, Tag: "p"},
		{Type: mdtoken.Inline, Children: inlineTokens(n, src)},
		{Type: mdtoken.ParagraphClose, Tag: "p"},
	}
}

func listTokens(n *ast.List, src []byte) []mdtoken.Token {
	open, closeType := mdtoken.BulletListOpen, mdtoken.BulletListClose
	var attrs map[string]string
	if n.IsOrdered() {
		open, closeType = mdtoken.OrderedListOpen, mdtoken.OrderedListClose
		attrs = map[string]string{"start": strconv.Itoa(n.Start)}
	}
	out := []mdtoken.Token{{Type: open, Attrs: attrs, Markup: string(n.Marker)}}
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		out = append(out, mdtoken.Token{Type: mdtoken.ListItemOpen})
		out = append(out, blockTokens(item, src)...)
		out = append(out, mdtoken.Token{Type: mdtoken.ListItemClose})
	}
	return append(out, mdtoken.Token{Type: closeType})
}

func tableTokens(n *east.Table, src []byte) []mdtoken.Token {
	out := []mdtoken.Token{{Type: mdtoken.TableOpen}}
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		switch row := row.(type) {
		case *east.TableHeader:
			out = append(out, mdtoken.Token{Type: mdtoken.THeadOpen})
			out = append(out, rowTokens(row, src, mdtoken.ThOpen, mdtoken.ThClose)...)
			out = append(out, mdtoken.Token{Type: mdtoken.THeadClose})
		case *east.TableRow:
			out = append(out, rowTokens(row, src, mdtoken.TdOpen, mdtoken.TdClose)...)
		}
	}
	return append(out, mdtoken.Token{Type: mdtoken.TableClose})
}

func rowTokens(row ast.Node, src []byte, cellOpen, cellClose mdtoken.Type) []mdtoken.Token {
	out := []mdtoken.Token{{Type: mdtoken.TrOpen}}
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		out = append(out, mdtoken.Token{Type: cellOpen})
		out = append(out, mdtoken.Token{Type: mdtoken.Inline, Children: inlineTokens(cell, src)})
		out = append(out, mdtoken.Token{Type: cellClose})
	}
	return append(out, mdtoken.Token{Type: mdtoken.TrClose})
}

func inlineTokens(parent ast.Node, src []byte) []mdtoken.Token {
	var out []mdtoken.Token
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, inlineToken(n, src)...)
	}
	return out
}

func inlineToken(n ast.Node, src []byte) []mdtoken.Token {
	switch n := n.(type) {
	case *ast.Text:
		out := []mdtoken.Token{{Type: mdtoken.Text, Content: string(n.Segment.Value(src))}}
		if n.HardLineBreak() {
			out = append(out, mdtoken.Token{Type: mdtoken.Hardbreak})
		} else if n.SoftLineBreak() {
			out = append(out, mdtoken.Token{Type: mdtoken.Softbreak})
		}
		return out
	case *ast.String:
		return []mdtoken.Token{{Type: mdtoken.Text, Content: string(n.Value)}}
	case *ast.CodeSpan:
		return []mdtoken.Token{{Type: mdtoken.CodeInline, Content: nodeText(n, src), Markup: "`"}}
	case *ast.Emphasis:
		open, closeType, markup := mdtoken.EmOpen, mdtoken.EmClose, "*"
		if n.Level == 2 {
			open, closeType, markup = mdtoken.StrongOpen, mdtoken.StrongClose, "**"
		}
		out := []mdtoken.Token{{Type: open, Markup: markup}}
		out = append(out, inlineTokens(n, src)...)
		return append(out, mdtoken.Token{Type: closeType, Markup: markup})
	case *east.Strikethrough:
		out := []mdtoken.Token{{Type: mdtoken.StrikeOpen, Markup: "~~"}}
		out = append(out, inlineTokens(n, src)...)
		return append(out, mdtoken.Token{Type: mdtoken.StrikeClose, Markup: "~~"})
	case *ast.Link:
		out := []mdtoken.Token{{
			Type:  mdtoken.LinkOpen,
			Attrs: map[string]string{"href": string(n.Destination)},
		}}
		out = append(out, inlineTokens(n, src)...)
		return append(out, mdtoken.Token{Type: mdtoken.LinkClose})
	case *ast.AutoLink:
		return []mdtoken.Token{
			{Type: mdtoken.LinkOpen, Attrs: map[string]string{"href": string(n.URL(src))}},
			{Type: mdtoken.Text, Content: string(n.Label(src))},
			{Type: mdtoken.LinkClose},
		}
	case *ast.Image:
		// Images cannot survive a plain-text rendering; drop them whole.
		return nil
	case *ast.RawHTML:
		// Passed through as text so the renderer's <img> stripping applies.
		return []mdtoken.Token{{Type: mdtoken.Text, Content: segmentsText(n.Segments, src)}}
	case *east.TaskCheckBox:
		marker := "[ ] "
		if n.IsChecked {
			marker = "[x] "
		}
		return []mdtoken.Token{{Type: mdtoken.Text, Content: marker}}
	case *emojiast.Emoji:
		return []mdtoken.Token{{
			Type:    mdtoken.Emoji,
			Content: string(n.Value.Unicode),
			Markup:  ":" + string(n.ShortName) + ":",
		}}
	default:
		return nil
	}
}

// nodeText concatenates the text segments under an inline node.
func nodeText(parent ast.Node, src []byte) string {
	var out []byte
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Text:
			out = append(out, n.Segment.Value(src)...)
		case *ast.String:
			out = append(out, n.Value...)
		}
	}
	return string(out)
}

func segmentsText(segs *text.Segments, src []byte) string {
	var out []byte
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		out = append(out, seg.Value(src)...)
	}
	return string(out)
}

// rawLines joins a code block's lines verbatim.
func rawLines(n ast.Node, src []byte) string {
	var out []byte
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		out = append(out, line.Value(src)...)
	}
	return string(out)
}
