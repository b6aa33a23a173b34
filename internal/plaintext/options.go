package plaintext

// HyperlinkBehavior selects how a tracked external link is written out.
type HyperlinkBehavior int

const (
	// HyperlinkTitle streams only the link text, as plain prose.
	HyperlinkTitle HyperlinkBehavior = iota
	// HyperlinkURL replaces the link with its bare href.
	HyperlinkURL
	// HyperlinkMarkdown writes the full [title](href) form.
	HyperlinkMarkdown
)

// ParseHyperlinkBehavior parses "title", "url" or "markdown".
func ParseHyperlinkBehavior(s string) (HyperlinkBehavior, bool) {
	switch s {
	case "title":
		return HyperlinkTitle, true
	case "url":
		return HyperlinkURL, true
	case "markdown":
		return HyperlinkMarkdown, true
	default:
		return HyperlinkTitle, false
	}
}

func (b HyperlinkBehavior) String() string {
	switch b {
	case HyperlinkURL:
		return "url"
	case HyperlinkMarkdown:
		return "markdown"
	default:
		return "title"
	}
}

// IndentType selects the unit used for list indentation.
type IndentType int

const (
	IndentSpaces IndentType = iota
	IndentTabs
)

// ParseIndentType parses "spaces" or "tabs".
func ParseIndentType(s string) (IndentType, bool) {
	switch s {
	case "spaces":
		return IndentSpaces, true
	case "tabs":
		return IndentTabs, true
	default:
		return IndentSpaces, false
	}
}

func (t IndentType) String() string {
	if t == IndentTabs {
		return "tabs"
	}
	return "spaces"
}

// unit returns one indentation step.
func (t IndentType) unit() string {
	if t == IndentTabs {
		return "\t"
	}
	return "    "
}

// Options is the flat per-call configuration of the renderer. The caller
// supplies it wholesale; no defaults are resolved here beyond the zero-value
// fallbacks documented on individual fields.
type Options struct {
	PreserveSuperscript    bool
	PreserveSubscript      bool
	PreserveEmphasis       bool
	PreserveBold           bool
	PreserveHeading        bool
	PreserveStrikethrough  bool
	PreserveHorizontalRule bool
	PreserveMark           bool
	PreserveInsert         bool
	DisplayEmojis          bool

	HyperlinkBehavior HyperlinkBehavior
	IndentType        IndentType

	// MinColumnWidth is the minimum dash run in a table separator row.
	// Zero means the default of 3.
	MinColumnWidth int

	// Spacing overrides the blank-line policy between adjacent blocks.
	// Nil means the dense default (blank line between every pair).
	Spacing *SpacingRules
}

func (o Options) minColumnWidth() int {
	if o.MinColumnWidth <= 0 {
		return 3
	}
	return o.MinColumnWidth
}
