package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	"wanderly/internal/itinerary"
)

type fileFormat string

const (
	formatYAML fileFormat = "yaml"
	formatJSON fileFormat = "json"
)

func formatFor(path string) (fileFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".json":
		return formatJSON, nil
	default:
		return "", fmt.Errorf("unsupported itinerary file %q: use .yaml, .yml or .json", path)
	}
}

func parseFormat(name string) (fileFormat, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return formatYAML, nil
	case "json":
		return formatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q: use yaml or json", name)
	}
}

// readItinerary loads a list of days from a YAML or JSON file.
func readItinerary(path string) (itinerary.Itinerary, fileFormat, error) {
	format, err := formatFor(path)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}

	var days itinerary.Itinerary
	switch format {
	case formatYAML:
		err = yaml.Unmarshal(data, &days)
	case formatJSON:
		err = json.Unmarshal(data, &days)
	}
	if err != nil {
		return nil, "", fmt.Errorf("parsing %s: %w", path, err)
	}
	return days, format, nil
}

func encodeItinerary(days itinerary.Itinerary, format fileFormat) ([]byte, error) {
	if days == nil {
		days = itinerary.Itinerary{}
	}
	if format == formatJSON {
		out, err := json.MarshalIndent(days, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	}
	return yaml.Marshal(days)
}

// writeItinerary replaces path atomically via a temp file in the same dir.
func writeItinerary(path string, days itinerary.Itinerary, format fileFormat) error {
	data, err := encodeItinerary(days, format)
	if err != nil {
		return fmt.Errorf("encoding itinerary: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tripctl-*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return os.Rename(tmp.Name(), path)
}
