package trips

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSON encodes records as indented JSON and writes them to w.
// The output keeps the load order (ascending by count).
func WriteJSON(records []Station, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes records to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(records []Station, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(records, f)
}
