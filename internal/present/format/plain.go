package format

import "io"

// WritePlainText writes the rendered text with a final newline. The renderer
// guarantees no trailing blank lines, so this is the only newline added.
func WritePlainText(w io.Writer, text string) error {
	_, err := io.WriteString(w, text+"\n")
	return err
}
