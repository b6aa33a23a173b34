package plaintext

import "strings"

// Format turns an ordered Block sequence into the final string. Between two
// blocks it consults the spacing policy for exactly one blank line or none;
// the result never ends in blank lines or trailing whitespace.
func Format(blocks []Block, opts Options) string {
	var b strings.Builder
	for i, blk := range blocks {
		if i > 0 {
			if opts.Spacing.BlankBetween(blocks[i-1].Kind, blk.Kind) {
				b.WriteString("\n\n")
			} else {
				b.WriteString("\n")
			}
		}
		b.WriteString(renderBlock(blk, opts))
	}
	return strings.TrimRight(b.String(), " \t\n")
}

func renderBlock(blk Block, opts Options) string {
	switch blk.Kind {
	case KindParagraph, KindCode, KindBlockquote:
		return strings.Join(blk.Lines, "\n")
	case KindHeading:
		if opts.PreserveHeading {
			return strings.Repeat("#", blk.Level) + " " + blk.Text
		}
		return blk.Text
	case KindList:
		return strings.TrimRight(renderListItems(blk.Items, opts), "\n")
	case KindTable:
		return strings.TrimRight(renderTableRows(blk.Rows, opts), "\n")
	case KindRaw:
		return blk.Text
	default:
		return ""
	}
}
