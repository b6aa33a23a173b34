package present

import (
	"io"

	"github.com/mithrel/plainleaf/internal/plaintext"
	"github.com/mithrel/plainleaf/internal/present/format"
	"github.com/mithrel/plainleaf/pkg/mdtoken"
)

type Mode int

const (
	ModePlain Mode = iota
	ModePretty
	ModeJSON
	ModeNDJSON
)

type Options struct {
	Mode       Mode
	JSONIndent bool
}

// ParseMode parses a string like "plain", "pretty", "json", "ndjson".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "plain":
		return ModePlain, true
	case "pretty":
		return ModePretty, true
	case "json":
		return ModeJSON, true
	case "ndjson":
		return ModeNDJSON, true
	default:
		return ModePlain, false
	}
}

// Document carries one markdown conversion through the output modes: the
// original source, its token tree, the collected blocks and the final text.
type Document struct {
	Source []byte
	Tokens []mdtoken.Token
	Blocks []plaintext.Block
	Text   string
}

// RenderDocument writes the document according to options.
func RenderDocument(w io.Writer, doc Document, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONResult(w, format.Result{Text: doc.Text, Blocks: doc.Blocks}, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSONTokens(w, doc.Tokens)
	case ModePretty:
		return format.WritePrettySource(w, doc.Source)
	default:
		return format.WritePlainText(w, doc.Text)
	}
}
