package format

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// WritePrettySource renders the original markdown source for the terminal
// using glamour. Useful as a side-by-side preview of what the plain
// rendering drops.
func WritePrettySource(w io.Writer, source []byte) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.RenderBytes(source)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	_, err = w.Write(out)
	return err
}
