package export

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/iksnae/chatstat/internal"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(report *internal.Report, w io.Writer) error
	Extension() string
}

// Formats lists the accepted format names
var Formats = []string{"json", "yaml", "md", "jsonl", "sqlite"}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch strings.ToLower(format) {
	case "jsonl":
		return &JSONLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "sqlite", "db":
		return &SQLiteExporter{}, nil
	default:
		return nil, &internal.ExportError{
			Format: format,
			Err:    fmt.Errorf("unsupported format (supported: %s)", strings.Join(Formats, ", ")),
		}
	}
}

// FileName returns the file name a report is written to: the sender
// slugified plus the exporter's extension.
func FileName(report *internal.Report, e Exporter) string {
	return fmt.Sprintf("chatstat-%s.%s", slug(report.Sender), e.Extension())
}

// FileNamer hands out file names that are unique within one export run.
// Senders whose slugs collide get a numeric suffix: chatstat-mom.json,
// chatstat-mom-2.json.
type FileNamer struct {
	used map[string]struct{}
}

// NewFileNamer returns an empty FileNamer
func NewFileNamer() *FileNamer {
	return &FileNamer{used: make(map[string]struct{})}
}

// Name returns the file name for report, unique among the names returned so far
func (n *FileNamer) Name(report *internal.Report, e Exporter) string {
	name := FileName(report, e)
	for i := 2; n.taken(name); i++ {
		name = fmt.Sprintf("chatstat-%s-%d.%s", slug(report.Sender), i, e.Extension())
	}
	n.used[name] = struct{}{}
	return name
}

func (n *FileNamer) taken(name string) bool {
	_, ok := n.used[name]
	return ok
}

// slug lower-cases s and keeps letters, digits and combining marks (so
// Devanagari or Cyrillic names survive), joining everything else into
// single dashes.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r) && b.Len() > 0 && !dash:
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "sender"
	}
	return out
}
