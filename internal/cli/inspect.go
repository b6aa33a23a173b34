package cli

import (
	"github.com/spf13/cobra"

	"github.com/mithrel/plainleaf/internal/present"
)

// newInspectCmd dumps the intermediate pipeline stages: the token tree as
// ndjson or the collected block sequence as json. Meant for debugging why a
// document renders the way it does.
func newInspectCmd() *cobra.Command {
	var tokens bool

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Dump the token tree or block sequence for a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := getViper(cmd)
			source, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			doc := convert(source, v)
			mode := present.ModeJSON
			if tokens {
				mode = present.ModeNDJSON
			}
			return present.RenderDocument(cmd.OutOrStdout(), doc, present.Options{Mode: mode, JSONIndent: true})
		},
	}

	cmd.Flags().BoolVar(&tokens, "tokens", false, "dump the token tree (ndjson) instead of blocks (json)")

	return cmd
}
