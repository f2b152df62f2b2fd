// Package render draws a Report for the terminal: headline boxes, bar
// charts for the timelines and activity tables, and a shaded weekly heatmap.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/chatstat/internal"
	"github.com/mattn/go-runewidth"
)

const (
	defaultWidth = 80
	labelWidth   = 16
	topEmojis    = 10
)

// heatShades go from empty to busiest
var heatShades = []string{"·", "░", "▒", "▓", "█"}

type Options struct {
	Width int // total width in columns (0 = 80)
}

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	box     lipgloss.Style
	value   lipgloss.Style
	label   lipgloss.Style
	bar     lipgloss.Style
	dim     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).MarginTop(1),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1).
			Align(lipgloss.Center),
		value: r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		label: r.NewStyle().Foreground(lipgloss.Color("240")),
		bar:   r.NewStyle().Foreground(lipgloss.Color("62")),
		dim:   r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Report writes the full terminal view of report to w. Colour is used only
// when w is a colour-capable terminal.
func Report(w io.Writer, report *internal.Report, opts Options) error {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	st := newStyles(lipgloss.NewRenderer(w))

	var b strings.Builder
	b.WriteString(st.title.Render("Chat statistics: "+report.Sender) + "\n")
	if report.Summary.UnparsedDates > 0 {
		b.WriteString(st.dim.Render(fmt.Sprintf("%d of %d timestamps could not be parsed",
			report.Summary.UnparsedDates, report.Summary.Records)) + "\n")
	}
	b.WriteString(statBoxes(st, report.Stats) + "\n")

	monthly := make([]row, 0, len(report.MonthlyTimeline))
	for _, p := range report.MonthlyTimeline {
		monthly = append(monthly, row{p.Label, p.Messages})
	}
	b.WriteString(barSection(st, "Monthly timeline", monthly, opts.Width))

	daily := make([]row, 0, len(report.DailyTimeline))
	for _, p := range report.DailyTimeline {
		daily = append(daily, row{p.Date, p.Messages})
	}
	b.WriteString(barSection(st, "Daily timeline", daily, opts.Width))

	b.WriteString(barSection(st, "Most busy days", categoryRows(report.BusyDays), opts.Width))
	b.WriteString(barSection(st, "Most busy months", categoryRows(report.BusyMonths), opts.Width))
	b.WriteString(heatmapSection(st, report.Heatmap))

	if report.Ranking != nil {
		top := make([]row, 0, len(report.Ranking.Top))
		for _, s := range report.Ranking.Top {
			top = append(top, row{s.Sender, s.Messages})
		}
		b.WriteString(barSection(st, "Most busy users", top, opts.Width))
		b.WriteString(shareSection(st, report.Ranking.Shares))
	}

	words := make([]row, 0, len(report.MostCommonWords))
	for _, wc := range report.MostCommonWords {
		words = append(words, row{wc.Word, wc.Count})
	}
	b.WriteString(barSection(st, "Most common words", words, opts.Width))
	b.WriteString(emojiSection(st, report.TopEmojis(topEmojis)))

	_, err := io.WriteString(w, b.String())
	return err
}

type row struct {
	label string
	count int
}

func categoryRows(counts []internal.CategoryCount) []row {
	out := make([]row, 0, len(counts))
	for _, c := range counts {
		out = append(out, row{c.Name, c.Count})
	}
	return out
}

func statBoxes(st styles, s internal.Stats) string {
	cell := func(label string, n int) string {
		return st.box.Render(st.label.Render(label) + "\n" + st.value.Render(fmt.Sprint(n)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		cell("Messages", s.Messages),
		cell("Words", s.Words),
		cell("Media", s.Media),
		cell("Links", s.Links),
	)
}

func barSection(st styles, title string, rows []row, width int) string {
	var b strings.Builder
	b.WriteString(st.section.Render(title) + "\n")
	if len(rows) == 0 {
		b.WriteString(st.dim.Render("  no data") + "\n")
		return b.String()
	}

	peak := 0
	for _, r := range rows {
		peak = max(peak, r.count)
	}
	countWidth := len(fmt.Sprint(peak))
	barWidth := max(width-labelWidth-countWidth-4, 1)

	for _, r := range rows {
		label := runewidth.FillRight(runewidth.Truncate(r.label, labelWidth, "…"), labelWidth)
		fmt.Fprintf(&b, "  %s %*d %s\n", label, countWidth, r.count, st.bar.Render(Bar(r.count, peak, barWidth)))
	}
	return b.String()
}

// Bar returns a bar of full blocks scaled so peak fills width. Non-zero
// counts always get at least one block.
func Bar(count, peak, width int) string {
	if count <= 0 || peak <= 0 || width <= 0 {
		return ""
	}
	n := count * width / peak
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// Shade picks the heatmap glyph for count relative to peak
func Shade(count, peak int) string {
	if count <= 0 || peak <= 0 {
		return heatShades[0]
	}
	i := 1 + count*(len(heatShades)-2)/peak
	return heatShades[min(i, len(heatShades)-1)]
}

// heatmapSection draws the weekday by hour grid, one glyph per cell
func heatmapSection(st styles, h internal.Heatmap) string {
	var b strings.Builder
	b.WriteString(st.section.Render("Weekly activity map") + "\n")

	b.WriteString("      ")
	for hr := range h.Columns {
		if hr%6 == 0 {
			fmt.Fprintf(&b, "%-6d", hr)
		}
	}
	b.WriteString("\n")

	peak := h.Max()
	for d, day := range h.Rows {
		fmt.Fprintf(&b, "  %-3s ", day[:3])
		for hr := range h.Columns {
			b.WriteString(Shade(h.Cells[d][hr], peak))
		}
		b.WriteString("\n")
	}
	b.WriteString(st.dim.Render(fmt.Sprintf("  %s none  %s busiest (%d)", heatShades[0], heatShades[len(heatShades)-1], peak)) + "\n")
	return b.String()
}

func shareSection(st styles, shares []internal.SenderShare) string {
	var b strings.Builder
	b.WriteString(st.section.Render("Share of messages") + "\n")
	for _, s := range shares {
		name := runewidth.FillRight(runewidth.Truncate(s.Sender, labelWidth+8, "…"), labelWidth+8)
		fmt.Fprintf(&b, "  %s %6.2f%%\n", name, s.Percent)
	}
	return b.String()
}

func emojiSection(st styles, emojis []internal.EmojiCount) string {
	var b strings.Builder
	b.WriteString(st.section.Render("Emoji") + "\n")
	if len(emojis) == 0 {
		b.WriteString(st.dim.Render("  no data") + "\n")
		return b.String()
	}
	for _, e := range emojis {
		fmt.Fprintf(&b, "  %s %d\n", runewidth.FillRight(e.Emoji, 4), e.Count)
	}
	return b.String()
}
