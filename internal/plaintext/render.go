// Package plaintext converts a parsed markdown token tree into a plain-text
// rendering that keeps document structure — headings, nested lists, aligned
// tables, blockquotes, code — while selectively preserving or stripping
// inline markup according to Options.
//
// The conversion is a pure function of (tokens, options): it holds no state
// between calls, performs no I/O, and is safe to call concurrently as long
// as each call gets its own token slice. Tokens come from an external
// tokenizer speaking the mdtoken vocabulary; unrecognized token types are
// ignored rather than rejected.
package plaintext

import "github.com/mithrel/plainleaf/pkg/mdtoken"

// Render converts a token tree into the final plain-text string.
func Render(tokens []mdtoken.Token, opts Options) string {
	return Format(Collect(tokens, opts), opts)
}
