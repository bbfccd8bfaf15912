package inspector

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Render writes v to w in the given format.
func Render(w io.Writer, format string, v any) error {
	switch format {
	case FormatYAML, "":
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(v); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		return e.Close()
	case FormatJSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(v)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
