// ABOUTME: Encoders writing a palette snapshot as JSON, YAML, CSS, or env lines
// ABOUTME: Only resolved roles are written; unavailable ones are skipped
package palette

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an export encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSS  Format = "css"
	FormatEnv  Format = "env"
)

// DefaultFormat is used when neither a flag nor the config names one
const DefaultFormat = FormatJSON

// Formats lists the supported export formats
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatCSS, FormatEnv}
}

// ParseFormat validates a format name (case-insensitive, "yml" accepted)
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "css":
		return FormatCSS, nil
	case "env":
		return FormatEnv, nil
	}
	return "", fmt.Errorf("unsupported format %q (valid: json, yaml, css, env)", s)
}

// ExportOptions controls Export
type ExportOptions struct {
	Format Format
	// Prefix for CSS custom properties and env names.
	// Empty selects "syscolor-" for CSS and "SYSCOLOR_" for env.
	Prefix string
}

// record is the serialized form of one entry
type record struct {
	Role     string `json:"role" yaml:"role"`
	Constant string `json:"constant" yaml:"constant"`
	Index    int32  `json:"index" yaml:"index"`
	Color    string `json:"color" yaml:"color"`
	Fallback bool   `json:"fallback,omitempty" yaml:"fallback,omitempty"`
}

type document struct {
	Colors []record `json:"colors" yaml:"colors"`
}

func (p Palette) records() []record {
	records := make([]record, 0, len(p))
	for _, e := range p.Resolved() {
		records = append(records, record{
			Role:     e.Index.Slug(),
			Constant: e.Index.Constant(),
			Index:    e.Index.Value(),
			Color:    e.Color.String(),
			Fallback: e.Fallback,
		})
	}
	return records
}

// Export writes the resolved roles of p to w
func Export(w io.Writer, p Palette, opts ExportOptions) error {
	switch opts.Format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(document{Colors: p.records()})

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document{Colors: p.records()}); err != nil {
			return err
		}
		return enc.Close()

	case FormatCSS:
		prefix := opts.Prefix
		if prefix == "" {
			prefix = "syscolor-"
		}
		var b strings.Builder
		b.WriteString(":root {\n")
		for _, e := range p.Resolved() {
			fmt.Fprintf(&b, "  --%s%s: %s;\n", prefix, e.Index.Slug(), e.Color)
		}
		b.WriteString("}\n")
		_, err := io.WriteString(w, b.String())
		return err

	case FormatEnv:
		prefix := opts.Prefix
		if prefix == "" {
			prefix = "SYSCOLOR_"
		}
		var b strings.Builder
		for _, e := range p.Resolved() {
			name := strings.ToUpper(strings.ReplaceAll(e.Index.Slug(), "-", "_"))
			fmt.Fprintf(&b, "%s%s=%s\n", prefix, name, e.Color)
		}
		_, err := io.WriteString(w, b.String())
		return err
	}

	return fmt.Errorf("unsupported format %q", opts.Format)
}
