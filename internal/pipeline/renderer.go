package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ashmulev/gematria/internal/model"
)

// Renderer writes calculation and grouping results in text, JSON, or YAML.
// It makes only presentation decisions; ordering comes from the report.
type Renderer struct {
	verbose bool
}

// NewRenderer creates a renderer.
func NewRenderer(verbose bool) *Renderer {
	return &Renderer{verbose: verbose}
}

// RenderGroups writes a group report in the given format.
func (r *Renderer) RenderGroups(w io.Writer, report *model.GroupReport, format string) error {
	switch format {
	case "", "text":
		return r.renderGroupsText(w, report)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		return yaml.NewEncoder(w).Encode(report)
	default:
		return fmt.Errorf("unknown output format: %q", format)
	}
}

func (r *Renderer) renderGroupsText(w io.Writer, report *model.GroupReport) error {
	for _, g := range report.Groups {
		words := make([]string, len(g.Words))
		for i, word := range g.Words {
			words[i] = word
			if g.Counts != nil && g.Counts[i] > 1 {
				words[i] = fmt.Sprintf("%s (x%d)", word, g.Counts[i])
			}
		}
		var err error
		if r.verbose {
			_, err = fmt.Fprintf(w, "Gematria value %4d: %s\n", g.Value, strings.Join(words, ", "))
		} else {
			_, err = fmt.Fprintf(w, "%4d -> %s\n", g.Value, strings.Join(words, ", "))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// RenderValues writes calculated word values in the given format.
func (r *Renderer) RenderValues(w io.Writer, values []model.WordValue, format string) error {
	switch format {
	case "", "text":
		for _, v := range values {
			var err error
			if r.verbose {
				_, err = fmt.Fprintf(w, "Gematria value for %q: %d\n", v.Word, v.Value)
			} else {
				_, err = fmt.Fprintf(w, "%d\t%s\n", v.Value, v.Word)
			}
			if err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(values)
	case "yaml":
		return yaml.NewEncoder(w).Encode(values)
	default:
		return fmt.Errorf("unknown output format: %q", format)
	}
}

// RenderMatches writes matched words, one per line.
func (r *Renderer) RenderMatches(w io.Writer, words []string) error {
	for _, word := range words {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}
	return nil
}
