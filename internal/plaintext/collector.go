package plaintext

import (
	"strconv"
	"strings"

	"github.com/mithrel/plainleaf/pkg/mdtoken"
)

// collector walks a token slice and accumulates Blocks in document order.
// One collector lives for exactly one (fragment) render: nested containers
// get their own collector with fresh state, so spacing decisions and link
// state never leak across a containment boundary.
type collector struct {
	opts   Options
	depth  int // list nesting depth, 1 at top level
	blocks []Block

	para      strings.Builder
	heading   strings.Builder
	inHeading bool
	level     int

	links linkStack
}

func newCollector(opts Options, depth int) *collector {
	return &collector{opts: opts, depth: depth}
}

// Collect walks top-level tokens into an ordered Block sequence.
func Collect(tokens []mdtoken.Token, opts Options) []Block {
	c := newCollector(opts, 1)
	c.walk(tokens)
	c.pushParagraph()
	return c.blocks
}

func (c *collector) walk(tokens []mdtoken.Token) {
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		switch tok.Type {
		case mdtoken.ParagraphOpen:
			c.pushParagraph()
		case mdtoken.ParagraphClose:
			c.pushParagraph()
		case mdtoken.HeadingOpen:
			c.pushParagraph()
			c.inHeading = true
			c.level = headingLevel(tok.Tag)
			c.heading.Reset()
		case mdtoken.HeadingClose:
			c.blocks = append(c.blocks, Block{
				Kind:  KindHeading,
				Level: c.level,
				Text:  c.heading.String(),
			})
			c.inHeading = false
		case mdtoken.Inline:
			c.append(c.renderInline(tok.Children))
		case mdtoken.Fence, mdtoken.CodeBlock:
			c.pushParagraph()
			c.blocks = append(c.blocks, Block{
				Kind:  KindCode,
				Lines: codeLines(tok.Content),
			})
		case mdtoken.Hr, mdtoken.ThematicBreak:
			c.pushParagraph()
			c.blocks = append(c.blocks, c.ruleBlock(tok))
		case mdtoken.BlockquoteOpen:
			c.pushParagraph()
			span, next := extractSpan(tokens, i, mdtoken.BlockquoteOpen, mdtoken.BlockquoteClose)
			c.blocks = append(c.blocks, c.blockquote(span))
			i = next
			continue
		case mdtoken.TableOpen:
			c.pushParagraph()
			span, next := extractSpan(tokens, i, mdtoken.TableOpen, mdtoken.TableClose)
			c.blocks = append(c.blocks, Block{Kind: KindTable, Rows: c.parseTable(span)})
			i = next
			continue
		case mdtoken.BulletListOpen:
			c.pushParagraph()
			span, next := extractSpan(tokens, i, mdtoken.BulletListOpen, mdtoken.BulletListClose)
			c.blocks = append(c.blocks, Block{Kind: KindList, Items: c.parseList(span, false, 1)})
			i = next
			continue
		case mdtoken.OrderedListOpen:
			c.pushParagraph()
			span, next := extractSpan(tokens, i, mdtoken.OrderedListOpen, mdtoken.OrderedListClose)
			c.blocks = append(c.blocks, Block{Kind: KindList, Items: c.parseList(span, true, listStart(tok))})
			i = next
			continue
		default:
			// Unknown token types contribute nothing. A new extension token
			// must never crash the renderer.
		}
		i++
	}
}

// append routes inline output into whichever accumulator is open.
func (c *collector) append(s string) {
	if c.inHeading {
		c.heading.WriteString(s)
		return
	}
	c.para.WriteString(s)
}

// pushParagraph closes the current paragraph into a Block. It runs on
// paragraph boundaries and before any non-paragraph block, so loose inline
// content (table cells arrive without paragraph wrappers) is never lost.
func (c *collector) pushParagraph() {
	text := c.para.String()
	c.para.Reset()
	if text == "" {
		return
	}
	c.blocks = append(c.blocks, Block{Kind: KindParagraph, Lines: strings.Split(text, "\n")})
}

// renderFragment collects and immediately formats a bounded sub-span with
// fresh, isolated state at the given list depth. The caller's own
// accumulators are untouched when this returns.
func (c *collector) renderFragment(tokens []mdtoken.Token, depth int) string {
	sub := newCollector(c.opts, depth)
	sub.walk(tokens)
	sub.pushParagraph()
	return Format(sub.blocks, c.opts)
}

func (c *collector) blockquote(span []mdtoken.Token) Block {
	text := c.renderFragment(span, c.depth)
	text = newlineRunRe.ReplaceAllString(text, "\n\n")
	text = strings.Trim(text, "\n")
	return Block{Kind: KindBlockquote, Lines: strings.Split(text, "\n")}
}

// ruleBlock renders a horizontal rule, or a non-breaking-space placeholder
// when rules are stripped: the rule still has to occupy a block slot so the
// spacing policy sees it.
func (c *collector) ruleBlock(tok mdtoken.Token) Block {
	if c.opts.PreserveHorizontalRule {
		markup := tok.Markup
		if markup == "" {
			markup = "---"
		}
		return Block{Kind: KindRaw, Text: markup}
	}
	return Block{Kind: KindRaw, Text: " "}
}

// extractSpan returns the tokens strictly between the open token at index i
// and its matching close, plus the index just past the close. Same-type
// nested opens are skipped with a depth counter, since nested lists and
// tables reuse the same token types.
func extractSpan(tokens []mdtoken.Token, i int, open, close mdtoken.Type) ([]mdtoken.Token, int) {
	depth := 0
	for j := i; j < len(tokens); j++ {
		switch tokens[j].Type {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return tokens[i+1 : j], j + 1
			}
		}
	}
	// Unbalanced input: take everything after the open.
	return tokens[i+1:], len(tokens)
}

// headingLevel reads a level out of a tag like "h3", clamped to 1..6.
func headingLevel(tag string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(tag, "h"))
	if err != nil || n < 1 {
		return 1
	}
	if n > 6 {
		return 6
	}
	return n
}

// listStart reads the ordered list start attribute, defaulting to 1.
func listStart(tok mdtoken.Token) int {
	n, err := strconv.Atoi(tok.Attr("start"))
	if err != nil || n < 0 {
		return 1
	}
	return n
}

// codeLines splits code content into lines with trailing blanks stripped.
// Content is literal and never reformatted beyond that.
func codeLines(content string) []string {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
