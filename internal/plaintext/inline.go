package plaintext

import (
	"regexp"
	"strings"

	"github.com/mithrel/plainleaf/pkg/mdtoken"
)

var (
	footnoteRefRe = regexp.MustCompile(`\[\^([^\]]+)\]`)
	imgTagRe      = regexp.MustCompile(`<img[^>]*>`)
	newlineRunRe  = regexp.MustCompile(`\n{3,}`)
	escapeRe      = regexp.MustCompile("\\\\([*_~^\\\\`#])")
)

// cleanText normalizes one text token: footnote references [^x] and
// definitions [^x]: lose the caret, raw <img> fragments disappear, runs of
// three or more newlines collapse to two, and markdown backslash escapes are
// unwrapped.
func cleanText(s string) string {
	s = footnoteRefRe.ReplaceAllString(s, "[$1]")
	s = imgTagRe.ReplaceAllString(s, "")
	s = newlineRunRe.ReplaceAllString(s, "\n\n")
	s = escapeRe.ReplaceAllString(s, "$1")
	return s
}

// inlineRenderer walks one run of inline tokens and accumulates their text.
type inlineRenderer struct {
	opts  Options
	links *linkStack
	out   strings.Builder
}

// renderInline renders the children of an inline token into a string,
// using the collector's link stack so link state survives across runs.
func (c *collector) renderInline(tokens []mdtoken.Token) string {
	r := inlineRenderer{opts: c.opts, links: &c.links}
	r.walk(tokens)
	return r.out.String()
}

func (r *inlineRenderer) walk(tokens []mdtoken.Token) {
	for _, tok := range tokens {
		switch tok.Type {
		case mdtoken.Text:
			r.writeText(cleanText(tok.Content))
		case mdtoken.Softbreak, mdtoken.Hardbreak:
			r.out.WriteString("\n")
		case mdtoken.EmOpen, mdtoken.EmClose:
			if r.opts.PreserveEmphasis {
				r.writeMarkup(tok.Markup, "*")
			}
		case mdtoken.StrongOpen, mdtoken.StrongClose:
			if r.opts.PreserveBold {
				r.writeMarkup(tok.Markup, "**")
			}
		case mdtoken.StrikeOpen, mdtoken.StrikeClose:
			if r.opts.PreserveStrikethrough {
				r.out.WriteString("~~")
			}
		case mdtoken.MarkOpen, mdtoken.MarkClose:
			if r.opts.PreserveMark {
				r.out.WriteString("==")
			}
		case mdtoken.InsOpen, mdtoken.InsClose:
			if r.opts.PreserveInsert {
				r.out.WriteString("++")
			}
		case mdtoken.SubOpen, mdtoken.SubClose:
			if r.opts.PreserveSubscript {
				r.out.WriteString("~")
			}
		case mdtoken.SupOpen, mdtoken.SupClose:
			if r.opts.PreserveSuperscript {
				r.out.WriteString("^")
			}
		case mdtoken.Emoji:
			if r.opts.DisplayEmojis {
				r.out.WriteString(tok.Content)
			}
		case mdtoken.CodeInline:
			// Inline code is content, not markup; it is never stripped.
			r.out.WriteString(tok.Content)
		case mdtoken.LinkOpen:
			r.links.push(tok.Attr("href"))
		case mdtoken.LinkClose:
			r.closeLink()
		case mdtoken.Inline:
			r.walk(tok.Children)
		}
	}
}

// writeText routes text to the main stream, or into the title buffer of the
// innermost tracked link. With title behavior the text additionally streams
// straight through, so the link reads as plain prose in place.
func (r *inlineRenderer) writeText(s string) {
	if top := r.links.top(); top != nil && top.href != "" {
		top.title.WriteString(s)
		if r.opts.HyperlinkBehavior != HyperlinkTitle {
			return
		}
	}
	r.out.WriteString(s)
}

// writeMarkup emits the token's original markup, falling back to the
// canonical marker when the tokenizer did not record one.
func (r *inlineRenderer) writeMarkup(markup, fallback string) {
	if markup == "" {
		markup = fallback
	}
	r.out.WriteString(markup)
}

func (r *inlineRenderer) closeLink() {
	it := r.links.pop()
	if it == nil || it.href == "" {
		return
	}
	title := it.title.String()
	if title == "" {
		return
	}
	switch r.opts.HyperlinkBehavior {
	case HyperlinkURL:
		r.out.WriteString(it.href)
	case HyperlinkMarkdown:
		r.out.WriteString("[" + title + "](" + it.href + ")")
	case HyperlinkTitle:
		// Already streamed while the link was open.
	}
}
