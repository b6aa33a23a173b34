package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/plainleaf/pkg/mdtoken"
)

func types(tokens []mdtoken.Token) []mdtoken.Type {
	out := make([]mdtoken.Type, len(tokens))
	for i, t := range tokens {
		out[i] = t.Type
	}
	return out
}

func TestTokenizeParagraph(t *testing.T) {
	t.Parallel()

	tokens := New().Tokenize([]byte("hello world"))
	require.Equal(t, []mdtoken.Type{mdtoken.ParagraphOpen, mdtoken.Inline, mdtoken.ParagraphClose}, types(tokens))
	require.Len(t, tokens[1].Children, 1)
	assert.Equal(t, "hello world", tokens[1].Children[0].Content)
}

func TestTokenizeHeadingTag(t *testing.T) {
	t.Parallel()

	tokens := New().Tokenize([]byte("### Section"))
	require.Equal(t, []mdtoken.Type{mdtoken.HeadingOpen, mdtoken.Inline, mdtoken.HeadingClose}, types(tokens))
	assert.Equal(t, "h3", tokens[0].Tag)
}

func TestTokenizeOrderedListStart(t *testing.T) {
	t.Parallel()

	tokens := New().Tokenize([]byte("3. a\n4. b"))
	require.NotEmpty(t, tokens)
	assert.Equal(t, mdtoken.OrderedListOpen, tokens[0].Type)
	assert.Equal(t, "3", tokens[0].Attr("start"))
	assert.Equal(t, mdtoken.OrderedListClose, tokens[len(tokens)-1].Type)
}

func TestTokenizeLinkHref(t *testing.T) {
	t.Parallel()

	tokens := New().Tokenize([]byte("[text](https://example.com)"))
	require.Equal(t, mdtoken.Inline, tokens[1].Type)
	children := tokens[1].Children
	require.Equal(t, []mdtoken.Type{mdtoken.LinkOpen, mdtoken.Text, mdtoken.LinkClose}, types(children))
	assert.Equal(t, "https://example.com", children[0].Attr("href"))
}

func TestTokenizeEmphasisLevels(t *testing.T) {
	t.Parallel()

	tokens := New().Tokenize([]byte("*a* **b**"))
	children := tokens[1].Children
	got := types(children)
	assert.Contains(t, got, mdtoken.EmOpen)
	assert.Contains(t, got, mdtoken.StrongOpen)
	for _, c := range children {
		switch c.Type {
		case mdtoken.EmOpen, mdtoken.EmClose:
			assert.Equal(t, "*", c.Markup)
		case mdtoken.StrongOpen, mdtoken.StrongClose:
			assert.Equal(t, "**", c.Markup)
		}
	}
}

func TestTokenizeFence(t *testing.T) {
	t.Parallel()

	tokens := New().Tokenize([]byte("```\ncode line\n```"))
	require.Len(t, tokens, 1)
	assert.Equal(t, mdtoken.Fence, tokens[0].Type)
	assert.Equal(t, "code line\n", tokens[0].Content)
}

func TestTokenizeTableShape(t *testing.T) {
	t.Parallel()

	tokens := New().Tokenize([]byte("| A | B |\n|---|---|\n| 1 | 2 |"))
	want := []mdtoken.Type{
		mdtoken.TableOpen,
		mdtoken.THeadOpen, mdtoken.TrOpen,
		mdtoken.ThOpen, mdtoken.Inline, mdtoken.ThClose,
		mdtoken.ThOpen, mdtoken.Inline, mdtoken.ThClose,
		mdtoken.TrClose, mdtoken.THeadClose,
		mdtoken.TrOpen,
		mdtoken.TdOpen, mdtoken.Inline, mdtoken.TdClose,
		mdtoken.TdOpen, mdtoken.Inline, mdtoken.TdClose,
		mdtoken.TrClose,
		mdtoken.TableClose,
	}
	assert.Equal(t, want, types(tokens))
}

func TestTokenizeBlockquoteNesting(t *testing.T) {
	t.Parallel()

	tokens := New().Tokenize([]byte("> quoted"))
	got := types(tokens)
	assert.Equal(t, mdtoken.BlockquoteOpen, got[0])
	assert.Equal(t, mdtoken.BlockquoteClose, got[len(got)-1])
}

func TestTokenizeHardbreak(t *testing.T) {
	t.Parallel()

	tokens := New().Tokenize([]byte("one  \ntwo"))
	got := types(tokens[1].Children)
	assert.Contains(t, got, mdtoken.Hardbreak)
}

func TestTokenizeSoftbreak(t *testing.T) {
	t.Parallel()

	tokens := New().Tokenize([]byte("one\ntwo"))
	got := types(tokens[1].Children)
	assert.Contains(t, got, mdtoken.Softbreak)
	assert.NotContains(t, got, mdtoken.Hardbreak)
}

func TestTokenizeEmojiToggle(t *testing.T) {
	t.Parallel()

	tokens := New().Tokenize([]byte(":smile:"))
	got := types(tokens[1].Children)
	assert.Contains(t, got, mdtoken.Emoji)

	tokens = New(WithEmoji(false)).Tokenize([]byte(":smile:"))
	for _, c := range tokens[1].Children {
		assert.NotEqual(t, mdtoken.Emoji, c.Type)
	}
}

func TestTokenizeStrikethrough(t *testing.T) {
	t.Parallel()

	tokens := New().Tokenize([]byte("~~old~~"))
	got := types(tokens[1].Children)
	assert.Equal(t, []mdtoken.Type{mdtoken.StrikeOpen, mdtoken.Text, mdtoken.StrikeClose}, got)
}
