package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mithrel/plainleaf/internal/config"
	"github.com/mithrel/plainleaf/internal/plaintext"
	"github.com/mithrel/plainleaf/internal/present"
	"github.com/mithrel/plainleaf/internal/tokenizer"
)

// boolFlagKeys maps render command flags onto config keys so a flag given on
// the command line overrides the config file for this invocation only.
var boolFlagKeys = map[string]string{
	"keep-headings":      "render.preserve_heading",
	"keep-bold":          "render.preserve_bold",
	"keep-emphasis":      "render.preserve_emphasis",
	"keep-strikethrough": "render.preserve_strikethrough",
	"keep-mark":          "render.preserve_mark",
	"keep-insert":        "render.preserve_insert",
	"keep-superscript":   "render.preserve_superscript",
	"keep-subscript":     "render.preserve_subscript",
	"keep-rules":         "render.preserve_horizontal_rule",
	"emojis":             "render.display_emojis",
}

func newRenderCmd() *cobra.Command {
	var links, indent, formatName string

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Convert markdown to plain text (default: read stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := getViper(cmd)
			applyFlagOverrides(cmd, v, links, indent, formatName)
			if err := config.CheckConfigValidity(v); err != nil {
				return err
			}

			source, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			doc := convert(source, v)
			mode, _ := present.ParseMode(v.GetString("format"))
			popts := present.Options{Mode: mode, JSONIndent: true}

			if usePager(v, mode) {
				return withPager(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), func(w io.Writer) error {
					return present.RenderDocument(w, doc, popts)
				})
			}
			return present.RenderDocument(cmd.OutOrStdout(), doc, popts)
		},
	}

	for flag := range boolFlagKeys {
		cmd.Flags().Bool(flag, false, "override render."+boolFlagKeys[flag][len("render."):])
	}
	cmd.Flags().StringVar(&links, "links", "", "hyperlink rendering: title|url|markdown")
	cmd.Flags().StringVar(&indent, "indent", "", "list indentation: spaces|tabs")
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "output format: plain|pretty|json|ndjson")

	return cmd
}

// applyFlagOverrides writes changed flags into the viper instance, keeping
// config-file values for everything left untouched.
func applyFlagOverrides(cmd *cobra.Command, v *viper.Viper, links, indent, formatName string) {
	for flag, key := range boolFlagKeys {
		if cmd.Flags().Changed(flag) {
			val, _ := cmd.Flags().GetBool(flag)
			v.Set(key, val)
		}
	}
	if links != "" {
		v.Set("render.hyperlink_behavior", links)
	}
	if indent != "" {
		v.Set("render.indent_type", indent)
	}
	if formatName != "" {
		v.Set("format", formatName)
	}
}

// convert runs the pipeline: tokenize, collect, format.
func convert(source []byte, v *viper.Viper) present.Document {
	opts := config.RenderOptions(v)
	tok := tokenizer.New(tokenizer.WithEmoji(opts.DisplayEmojis))
	tokens := tok.Tokenize(source)
	blocks := plaintext.Collect(tokens, opts)
	return present.Document{
		Source: source,
		Tokens: tokens,
		Blocks: blocks,
		Text:   plaintext.Format(blocks, opts),
	}
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", args[0], err)
		}
		return data, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

func usePager(v *viper.Viper, mode present.Mode) bool {
	return v.GetBool("pager.enabled") && (mode == present.ModePlain || mode == present.ModePretty)
}
