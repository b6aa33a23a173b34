package plaintext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/plainleaf/pkg/mdtoken"
)

func heading(tag, text string) []mdtoken.Token {
	return []mdtoken.Token{
		{Type: mdtoken.HeadingOpen, Tag: tag},
		{Type: mdtoken.Inline, Children: []mdtoken.Token{txt(text)}},
		{Type: mdtoken.HeadingClose, Tag: tag},
	}
}

func TestHeadingLevels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tag  string
		want int
	}{
		{"h1", 1},
		{"h3", 3},
		{"h6", 6},
		{"h7", 6},  // clamped down
		{"h0", 1},  // clamped up
		{"div", 1}, // unparsable falls back
	}
	for _, c := range cases {
		blocks := Collect(heading(c.tag, "x"), Options{})
		require.Len(t, blocks, 1)
		assert.Equal(t, c.want, blocks[0].Level, "tag %q", c.tag)
	}
}

func TestHeadingPreserveFlag(t *testing.T) {
	t.Parallel()

	tokens := heading("h2", "Section")
	assert.Equal(t, "Section", Render(tokens, Options{}))
	assert.Equal(t, "## Section", Render(tokens, Options{PreserveHeading: true}))
}

func TestSoftBreakStaysOneParagraph(t *testing.T) {
	t.Parallel()

	tokens := para(txt("Line one"), tok(mdtoken.Softbreak), txt("Line two"))
	blocks := Collect(tokens, Options{})
	require.Len(t, blocks, 1)
	assert.Equal(t, KindParagraph, blocks[0].Kind)
	assert.Equal(t, []string{"Line one", "Line two"}, blocks[0].Lines)
}

func TestCodeBlockTrailingBlanksStripped(t *testing.T) {
	t.Parallel()

	tokens := []mdtoken.Token{{Type: mdtoken.Fence, Content: "x := 1\n\ty := 2\n\n\n"}}
	blocks := Collect(tokens, Options{})
	require.Len(t, blocks, 1)
	assert.Equal(t, KindCode, blocks[0].Kind)
	assert.Equal(t, []string{"x := 1", "\ty := 2"}, blocks[0].Lines)
}

func TestHorizontalRule(t *testing.T) {
	t.Parallel()

	tokens := []mdtoken.Token{{Type: mdtoken.Hr, Markup: "***"}}

	blocks := Collect(tokens, Options{PreserveHorizontalRule: true})
	require.Len(t, blocks, 1)
	assert.Equal(t, Block{Kind: KindRaw, Text: "***"}, blocks[0])

	// Stripped rules still occupy a block slot, as a non-breaking space.
	blocks = Collect(tokens, Options{})
	require.Len(t, blocks, 1)
	assert.Equal(t, Block{Kind: KindRaw, Text: " "}, blocks[0])
}

func TestBlockquote(t *testing.T) {
	t.Parallel()

	tokens := append([]mdtoken.Token{{Type: mdtoken.BlockquoteOpen}},
		append(para(txt("first")), append(para(txt("second")), mdtoken.Token{Type: mdtoken.BlockquoteClose})...)...)
	blocks := Collect(tokens, Options{})
	require.Len(t, blocks, 1)
	assert.Equal(t, KindBlockquote, blocks[0].Kind)
	assert.Equal(t, []string{"first", "", "second"}, blocks[0].Lines)
}

func TestUnknownTokensIgnored(t *testing.T) {
	t.Parallel()

	tokens := []mdtoken.Token{
		{Type: "custom_widget_open"},
		{Type: mdtoken.ParagraphOpen},
		{Type: mdtoken.Inline, Children: []mdtoken.Token{
			txt("hello"),
			{Type: "math_inline", Content: "E=mc^2"},
		}},
		{Type: mdtoken.ParagraphClose},
		{Type: "custom_widget_close"},
	}
	assert.Equal(t, "hello", Render(tokens, Options{}))
}

func TestExtractSpanDepthAware(t *testing.T) {
	t.Parallel()

	tokens := []mdtoken.Token{
		{Type: mdtoken.BulletListOpen},
		{Type: mdtoken.ListItemOpen},
		{Type: mdtoken.BulletListOpen}, // nested same-type open
		{Type: mdtoken.BulletListClose},
		{Type: mdtoken.ListItemClose},
		{Type: mdtoken.BulletListClose},
		{Type: mdtoken.ParagraphOpen},
	}
	span, next := extractSpan(tokens, 0, mdtoken.BulletListOpen, mdtoken.BulletListClose)
	assert.Len(t, span, 4)
	assert.Equal(t, 6, next)
	assert.Equal(t, mdtoken.ParagraphOpen, tokens[next].Type)
}

func TestExtractSpanUnbalanced(t *testing.T) {
	t.Parallel()

	tokens := []mdtoken.Token{
		{Type: mdtoken.TableOpen},
		{Type: mdtoken.TrOpen},
	}
	span, next := extractSpan(tokens, 0, mdtoken.TableOpen, mdtoken.TableClose)
	assert.Len(t, span, 1)
	assert.Equal(t, len(tokens), next)
}

func TestFragmentIsolation(t *testing.T) {
	t.Parallel()

	// A link opened inside a list item must not affect a sibling paragraph.
	inner := []mdtoken.Token{
		{Type: mdtoken.ParagraphOpen},
		{Type: mdtoken.Inline, Children: link("https://example.com", txt("inside"))},
		{Type: mdtoken.ParagraphClose},
	}
	tokens := bulletList(item(inner...))
	tokens = append(tokens, para(txt("outside"))...)

	out := Render(tokens, Options{HyperlinkBehavior: HyperlinkURL})
	assert.Equal(t, "- https://example.com\n\noutside", out)
}

func TestDocumentOrderPreserved(t *testing.T) {
	t.Parallel()

	tokens := heading("h1", "Title")
	tokens = append(tokens, para(txt("body"))...)
	tokens = append(tokens, bulletList(item(para(txt("x"))...))...)
	blocks := Collect(tokens, Options{})
	require.Len(t, blocks, 3)
	assert.Equal(t, KindHeading, blocks[0].Kind)
	assert.Equal(t, KindParagraph, blocks[1].Kind)
	assert.Equal(t, KindList, blocks[2].Kind)
}
