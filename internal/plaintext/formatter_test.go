package plaintext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPure(t *testing.T) {
	t.Parallel()

	blocks := []Block{
		{Kind: KindHeading, Level: 2, Text: "Title"},
		{Kind: KindParagraph, Lines: []string{"one", "two"}},
		{Kind: KindList, Items: []ListItem{{Content: "a", IndentLevel: 1}}},
	}
	opts := Options{PreserveHeading: true}
	first := Format(blocks, opts)
	second := Format(blocks, opts)
	assert.Equal(t, first, second)
}

func TestFormatSpacing(t *testing.T) {
	t.Parallel()

	blocks := []Block{
		{Kind: KindParagraph, Lines: []string{"a"}},
		{Kind: KindParagraph, Lines: []string{"b"}},
	}
	assert.Equal(t, "a\n\nb", Format(blocks, Options{}))

	sparse := Options{Spacing: DefaultSpacing().Set(KindParagraph, KindParagraph, false)}
	assert.Equal(t, "a\nb", Format(blocks, sparse))
}

func TestFormatNoTrailingBlankLines(t *testing.T) {
	t.Parallel()

	blocks := []Block{
		{Kind: KindParagraph, Lines: []string{"text"}},
		{Kind: KindList, Items: []ListItem{{Content: "a", IndentLevel: 1}, {Content: "b", IndentLevel: 1}}},
	}
	out := Format(blocks, Options{})
	assert.Equal(t, "text\n\n- a\n\n- b", out)
}

func TestFormatRuleBlockSpacing(t *testing.T) {
	t.Parallel()

	// The placeholder rule still separates its neighbors.
	blocks := []Block{
		{Kind: KindParagraph, Lines: []string{"before"}},
		{Kind: KindRaw, Text: " "},
		{Kind: KindParagraph, Lines: []string{"after"}},
	}
	assert.Equal(t, "before\n\n \n\nafter", Format(blocks, Options{}))
}

func TestFormatEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Format(nil, Options{}))
}
