package config

import (
	"fmt"
	"strings"
)

// RenderDefaultTOML renders a TOML config with defaults from GetConfigOptions.
func RenderDefaultTOML() string {
	var b strings.Builder
	b.WriteString("# plainleaf configuration (TOML)\n")

	topLevel, sections, order := groupOptions(GetConfigOptions())
	for _, o := range topLevel {
		writeTOMLOption(&b, o)
	}
	for _, section := range order {
		b.WriteString("[" + section + "]\n")
		for _, o := range sections[section] {
			writeTOMLOption(&b, o)
		}
	}
	return b.String()
}

// UpdateTOML merges defaults into an existing TOML string: unknown keys are
// commented out, missing keys are appended with their defaults. Returns the
// updated text and whether anything changed.
func UpdateTOML(existing string) (string, bool) {
	opts := GetConfigOptions()
	known := make(map[string]ConfigOption, len(opts))
	for _, o := range opts {
		known[o.Key] = o
	}

	existingKeys := make(map[string]bool)
	currentSection := ""
	lines := strings.Split(existing, "\n")
	out := make([]string, 0, len(lines))
	changed := false

	for _, line := range lines {
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, "#") || strings.HasPrefix(trim, ";") {
			out = append(out, line)
			continue
		}
		if strings.HasPrefix(trim, "[") && strings.HasSuffix(trim, "]") {
			currentSection = strings.TrimSpace(trim[1 : len(trim)-1])
			out = append(out, line)
			continue
		}
		key, ok := parseTOMLKey(line)
		if !ok {
			out = append(out, line)
			continue
		}
		fullKey := key
		if currentSection != "" {
			fullKey = currentSection + "." + key
		}
		existingKeys[fullKey] = true
		if _, ok := known[fullKey]; !ok {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			out = append(out, indent+"# OUTDATED: option removed from config schema")
			out = append(out, indent+"# "+strings.TrimLeft(line, " \t"))
			changed = true
			continue
		}
		out = append(out, line)
	}

	missing := make([]ConfigOption, 0)
	for _, o := range opts {
		if !existingKeys[o.Key] {
			missing = append(missing, o)
		}
	}
	if len(missing) > 0 {
		out = append(out, "", "# Added by config update")
		topLevel, sections, order := groupOptions(missing)
		var b strings.Builder
		for _, o := range topLevel {
			writeTOMLOption(&b, o)
		}
		for _, section := range order {
			b.WriteString("[" + section + "]\n")
			for _, o := range sections[section] {
				writeTOMLOption(&b, o)
			}
		}
		out = append(out, strings.Split(strings.TrimRight(b.String(), "\n"), "\n")...)
		changed = true
	}

	return strings.Join(out, "\n"), changed
}

// groupOptions splits dotted keys into sections, preserving declaration order.
func groupOptions(opts []ConfigOption) ([]ConfigOption, map[string][]ConfigOption, []string) {
	topLevel := make([]ConfigOption, 0, len(opts))
	sections := make(map[string][]ConfigOption)
	order := make([]string, 0)
	for _, o := range opts {
		if !strings.Contains(o.Key, ".") {
			topLevel = append(topLevel, o)
			continue
		}
		parts := strings.SplitN(o.Key, ".", 2)
		if _, ok := sections[parts[0]]; !ok {
			order = append(order, parts[0])
		}
		sections[parts[0]] = append(sections[parts[0]], ConfigOption{
			Key:     parts[1],
			Default: o.Default,
			Comment: o.Comment,
		})
	}
	return topLevel, sections, order
}

func parseTOMLKey(line string) (string, bool) {
	idx := strings.Index(line, "=")
	if idx == -1 {
		return "", false
	}
	key := strings.TrimSpace(line[:idx])
	if key == "" || strings.HasPrefix(key, "[") {
		return "", false
	}
	if strings.HasPrefix(key, "\"") || strings.HasPrefix(key, "'") {
		return "", false
	}
	return key, true
}

func writeTOMLOption(b *strings.Builder, o ConfigOption) {
	if o.Comment != "" {
		b.WriteString("# " + o.Comment + "\n")
	}
	switch v := o.Default.(type) {
	case string:
		b.WriteString(fmt.Sprintf("%s = \"%s\"\n\n", o.Key, v))
	default:
		b.WriteString(fmt.Sprintf("%s = %v\n\n", o.Key, v))
	}
}
