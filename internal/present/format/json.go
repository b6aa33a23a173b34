package format

import (
	"encoding/json"
	"io"

	"github.com/mithrel/plainleaf/internal/plaintext"
)

// Result is the JSON shape of one conversion: the block sequence the
// collector produced and the text it formatted to.
type Result struct {
	Blocks []plaintext.Block `json:"blocks"`
	Text   string            `json:"text"`
}

func WriteJSONResult(w io.Writer, r Result, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(r)
}
