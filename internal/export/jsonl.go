package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/chatstat/internal"
)

// JSONLExporter exports the report's records in JSONL format (one record per line)
type JSONLExporter struct{}

type jsonlRecord struct {
	Index     int     `json:"index"`
	Timestamp *string `json:"timestamp"`
	Raw       string  `json:"raw_timestamp"`
	Sender    string  `json:"sender"`
	Body      string  `json:"body"`
	Date      *string `json:"date"`
	Weekday   *string `json:"weekday"`
	Hour      *int    `json:"hour"`
}

// Export exports a report's records to JSONL format. Unparsed timestamps are
// written as null.
func (e *JSONLExporter) Export(report *internal.Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for _, rec := range report.Records {
		line := jsonlRecord{
			Index:  rec.Index,
			Raw:    rec.RawTimestamp,
			Sender: rec.Sender,
			Body:   rec.Body,
		}
		if rec.Timestamp != nil {
			ts := rec.Timestamp.Format("2006-01-02T15:04:05")
			line.Timestamp = &ts
		}
		if cal := rec.Calendar; cal != nil {
			line.Date = &cal.Date
			line.Weekday = &cal.WeekdayName
			line.Hour = &cal.Hour
		}

		if err := enc.Encode(line); err != nil {
			return &internal.ExportError{Format: "jsonl", Err: fmt.Errorf("failed to encode record %d: %w", rec.Index, err)}
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
