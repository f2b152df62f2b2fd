package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/chatstat/internal"
)

// JSONExporter exports reports in JSON format (pretty-printed)
type JSONExporter struct{}

// Export exports a report to JSON format
func (e *JSONExporter) Export(report *internal.Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(report); err != nil {
		return &internal.ExportError{Format: "json", Err: err}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
