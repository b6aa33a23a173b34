package format

import (
	"encoding/json"
	"io"

	"github.com/mithrel/plainleaf/pkg/mdtoken"
)

// WriteNDJSONTokens streams the token tree one top-level token per line.
// Children stay nested inside their inline token, which keeps each line a
// self-contained record.
func WriteNDJSONTokens(w io.Writer, tokens []mdtoken.Token) error {
	enc := json.NewEncoder(w)
	for _, tok := range tokens {
		if err := enc.Encode(tok); err != nil {
			return err
		}
	}
	return nil
}
