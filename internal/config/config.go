package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mithrel/plainleaf/internal/plaintext"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
// This centralizes default values and descriptions in one place.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	// Configure Viper search paths. If SetConfigFile was provided upstream,
	// it takes precedence; these paths are harmless fallbacks.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "plainleaf"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "plainleaf"))
		}
		v.AddConfigPath(".")
	}

	// Apply centralized defaults (lowest precedence)
	applyDefaults(v)

	// Read config file if present (overrides defaults)
	_ = v.ReadInConfig()

	// Environment variables: PLAINLEAF_* (highest among these sources)
	v.SetEnvPrefix("plainleaf")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return CheckConfigValidity(v)
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "plainleaf", "config.toml")
}

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
// This is the single source of truth for default values and generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "format", Default: "plain", Comment: "Default output format: plain, pretty, json, ndjson"},

		{Key: "pager.enabled", Default: true, Comment: "Pipe terminal output through $PAGER"},

		{Key: "render.preserve_heading", Default: false, Comment: "Keep # markers on headings"},
		{Key: "render.preserve_bold", Default: false, Comment: "Keep ** bold markers"},
		{Key: "render.preserve_emphasis", Default: false, Comment: "Keep * emphasis markers"},
		{Key: "render.preserve_strikethrough", Default: false, Comment: "Keep ~~ strikethrough markers"},
		{Key: "render.preserve_mark", Default: false, Comment: "Keep == highlight markers"},
		{Key: "render.preserve_insert", Default: false, Comment: "Keep ++ insert markers"},
		{Key: "render.preserve_superscript", Default: false, Comment: "Keep ^ superscript markers"},
		{Key: "render.preserve_subscript", Default: false, Comment: "Keep ~ subscript markers"},
		{Key: "render.preserve_horizontal_rule", Default: false, Comment: "Keep horizontal rule markers"},
		{Key: "render.display_emojis", Default: true, Comment: "Render emoji shortcodes as glyphs"},
		{Key: "render.hyperlink_behavior", Default: "title", Comment: "How links render: title, url, markdown"},
		{Key: "render.indent_type", Default: "spaces", Comment: "List indentation unit: spaces, tabs"},

		{Key: "table.min_column_width", Default: 3, Comment: "Minimum dash run in table separator rows"},
	}
}

// CheckConfigValidity validates enum-like and numeric settings, aggregating
// every problem into one error so the user can fix them in a single pass.
func CheckConfigValidity(v *viper.Viper) error {
	var problems []string

	switch v.GetString("format") {
	case "plain", "pretty", "json", "ndjson":
	default:
		problems = append(problems, fmt.Sprintf("format %q is not one of plain, pretty, json, ndjson", v.GetString("format")))
	}
	if _, ok := plaintext.ParseHyperlinkBehavior(v.GetString("render.hyperlink_behavior")); !ok {
		problems = append(problems, fmt.Sprintf("render.hyperlink_behavior %q is not one of title, url, markdown", v.GetString("render.hyperlink_behavior")))
	}
	if _, ok := plaintext.ParseIndentType(v.GetString("render.indent_type")); !ok {
		problems = append(problems, fmt.Sprintf("render.indent_type %q is not one of spaces, tabs", v.GetString("render.indent_type")))
	}
	if v.GetInt("table.min_column_width") <= 0 {
		problems = append(problems, "table.min_column_width must be greater than 0")
	}

	if len(problems) > 0 {
		return errors.New("invalid config: " + strings.Join(problems, "; "))
	}
	return nil
}

// RenderOptions maps the render.* and table.* keys onto the renderer's
// option struct. Flag overrides have already been written into v by cobra.
func RenderOptions(v *viper.Viper) plaintext.Options {
	behavior, _ := plaintext.ParseHyperlinkBehavior(v.GetString("render.hyperlink_behavior"))
	indent, _ := plaintext.ParseIndentType(v.GetString("render.indent_type"))
	return plaintext.Options{
		PreserveHeading:        v.GetBool("render.preserve_heading"),
		PreserveBold:           v.GetBool("render.preserve_bold"),
		PreserveEmphasis:       v.GetBool("render.preserve_emphasis"),
		PreserveStrikethrough:  v.GetBool("render.preserve_strikethrough"),
		PreserveMark:           v.GetBool("render.preserve_mark"),
		PreserveInsert:         v.GetBool("render.preserve_insert"),
		PreserveSuperscript:    v.GetBool("render.preserve_superscript"),
		PreserveSubscript:      v.GetBool("render.preserve_subscript"),
		PreserveHorizontalRule: v.GetBool("render.preserve_horizontal_rule"),
		DisplayEmojis:          v.GetBool("render.display_emojis"),
		HyperlinkBehavior:      behavior,
		IndentType:             indent,
		MinColumnWidth:         v.GetInt("table.min_column_width"),
	}
}
