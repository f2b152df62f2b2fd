package export

import (
	"io"

	"github.com/iksnae/chatstat/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports reports in YAML format
type YAMLExporter struct{}

// Export exports a report to YAML format
func (e *YAMLExporter) Export(report *internal.Report, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(report); err != nil {
		return &internal.ExportError{Format: "yaml", Err: err}
	}
	return enc.Close()
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
