package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rshade/pagelist/internal/config"
	"github.com/rshade/pagelist/internal/pagination"
)

// yamlIndent is the indentation used for YAML output.
const yamlIndent = 2

// listResult is the structured form of one rendered page.
type listResult struct {
	Meta  pagination.Meta `json:"meta"  yaml:"meta"`
	Items []string        `json:"items" yaml:"items"`
}

// renderStructured writes page as JSON or YAML.
func renderStructured(w io.Writer, format string, page pagination.Page[string], meta pagination.Meta) error {
	result := listResult{Meta: meta, Items: page.Items}
	if result.Items == nil {
		result.Items = []string{}
	}

	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encoding JSON output: %w", err)
		}
		return nil

	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(yamlIndent)
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encoding YAML output: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("%w: got %q", config.ErrInvalidOutputFormat, format)
	}
}
