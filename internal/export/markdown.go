package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/chatstat/internal"
)

// MarkdownExporter exports reports in Markdown format
type MarkdownExporter struct{}

// Export exports a report to Markdown format
func (e *MarkdownExporter) Export(report *internal.Report, w io.Writer) error {
	mw := &mdWriter{w: w}

	mw.printf("# Chat statistics: %s\n\n", escapeMarkdown(report.Sender))
	mw.printf("**Messages:** %d  \n", report.Stats.Messages)
	mw.printf("**Words:** %d  \n", report.Stats.Words)
	mw.printf("**Media shared:** %d  \n", report.Stats.Media)
	mw.printf("**Links shared:** %d\n\n", report.Stats.Links)
	if report.Summary.UnparsedDates > 0 {
		mw.printf("_%d of %d timestamps could not be parsed._\n\n", report.Summary.UnparsedDates, report.Summary.Records)
	}

	mw.section("Monthly timeline", []string{"Month", "Messages"}, len(report.MonthlyTimeline), func(i int) []string {
		p := report.MonthlyTimeline[i]
		return []string{p.Label, fmt.Sprint(p.Messages)}
	})
	mw.section("Daily timeline", []string{"Date", "Messages"}, len(report.DailyTimeline), func(i int) []string {
		p := report.DailyTimeline[i]
		return []string{p.Date, fmt.Sprint(p.Messages)}
	})
	mw.section("Most busy days", []string{"Day", "Messages"}, len(report.BusyDays), func(i int) []string {
		c := report.BusyDays[i]
		return []string{c.Name, fmt.Sprint(c.Count)}
	})
	mw.section("Most busy months", []string{"Month", "Messages"}, len(report.BusyMonths), func(i int) []string {
		c := report.BusyMonths[i]
		return []string{c.Name, fmt.Sprint(c.Count)}
	})
	mw.heatmap(report.Heatmap)

	if report.Ranking != nil {
		mw.section("Most busy users", []string{"Name", "Messages"}, len(report.Ranking.Top), func(i int) []string {
			s := report.Ranking.Top[i]
			return []string{escapeMarkdown(s.Sender), fmt.Sprint(s.Messages)}
		})
		mw.section("Share of messages", []string{"Name", "Percent"}, len(report.Ranking.Shares), func(i int) []string {
			s := report.Ranking.Shares[i]
			return []string{escapeMarkdown(s.Sender), fmt.Sprintf("%.2f", s.Percent)}
		})
	}

	mw.section("Most common words", []string{"Word", "Count"}, len(report.MostCommonWords), func(i int) []string {
		c := report.MostCommonWords[i]
		return []string{escapeMarkdown(c.Word), fmt.Sprint(c.Count)}
	})
	mw.section("Emoji", []string{"Emoji", "Messages"}, len(report.Emojis), func(i int) []string {
		c := report.Emojis[i]
		return []string{c.Emoji, fmt.Sprint(c.Count)}
	})

	return mw.err
}

type mdWriter struct {
	w   io.Writer
	err error
}

func (m *mdWriter) printf(format string, args ...any) {
	if m.err != nil {
		return
	}
	if _, err := fmt.Fprintf(m.w, format, args...); err != nil {
		m.err = &internal.ExportError{Format: "md", Err: err}
	}
}

// section writes a heading and a table; empty tables get a placeholder line
func (m *mdWriter) section(title string, header []string, n int, row func(int) []string) {
	m.printf("## %s\n\n", title)
	if n == 0 {
		m.printf("_No data._\n\n")
		return
	}
	m.printf("| %s |\n", strings.Join(header, " | "))
	m.printf("|%s\n", strings.Repeat(" --- |", len(header)))
	for i := 0; i < n; i++ {
		m.printf("| %s |\n", strings.Join(row(i), " | "))
	}
	m.printf("\n")
}

func (m *mdWriter) heatmap(h internal.Heatmap) {
	m.printf("## Weekly activity map\n\n")
	m.printf("| Day | %s |\n", strings.Join(h.Columns[:], " | "))
	m.printf("|%s\n", strings.Repeat(" --- |", len(h.Columns)+1))
	for d, name := range h.Rows {
		cells := make([]string, len(h.Columns))
		for hr := range h.Columns {
			cells[hr] = fmt.Sprint(h.Cells[d][hr])
		}
		m.printf("| %s | %s |\n", name, strings.Join(cells, " | "))
	}
	m.printf("\n")
}

// escapeMarkdown escapes characters that would break a table cell or add emphasis
func escapeMarkdown(text string) string {
	r := strings.NewReplacer(
		"|", "\\|",
		"**", "\\*\\*",
		"__", "\\_\\_",
		"\n", " ",
	)
	return r.Replace(text)
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
