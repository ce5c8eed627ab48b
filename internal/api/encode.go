package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"flight-route-search/internal/api/dto"
	"flight-route-search/internal/domain"

	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultIndent is the JSON indentation used when none is configured.
const DefaultIndent = 4

var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat normalizes a user supplied format name.
func ParseFormat(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Encode writes itineraries as a single document. An empty result is written as an empty array.
func Encode(w io.Writer, itineraries []domain.Itinerary, format string, indent int) error {
	format, err := ParseFormat(format)
	if err != nil {
		return err
	}
	if indent < 0 {
		indent = 0
	}
	records := dto.Itineraries(itineraries)

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if indent > 0 {
			enc.SetIndent(indent)
		}
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", strings.Repeat(" ", indent))
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}
