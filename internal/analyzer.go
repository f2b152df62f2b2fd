package internal

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// AnalyzeOptions configures a full analysis
type AnalyzeOptions struct {
	StopWords        *StopWords
	MediaPlaceholder string
	TopWords         int
	TopSenders       int
	WordCloud        WordCloudOptions
	// Parallel runs the aggregators concurrently. They only read the record set.
	Parallel bool
}

// DefaultAnalyzeOptions returns the stock options around a stop-word set
func DefaultAnalyzeOptions(stop *StopWords) AnalyzeOptions {
	return AnalyzeOptions{
		StopWords:        stop,
		MediaPlaceholder: DefaultMediaPlaceholder,
		TopWords:         DefaultTopWords,
		TopSenders:       DefaultTopSenders,
		WordCloud:        DefaultWordCloudOptions(),
		Parallel:         true,
	}
}

// Report is every analytic computed for one sender filter
type Report struct {
	Sender          string          `json:"sender" yaml:"sender"`
	Summary         ParseSummary    `json:"summary" yaml:"summary"`
	Stats           Stats           `json:"stats" yaml:"stats"`
	MonthlyTimeline []MonthlyPoint  `json:"monthly_timeline" yaml:"monthly_timeline"`
	DailyTimeline   []DailyPoint    `json:"daily_timeline" yaml:"daily_timeline"`
	BusyDays        []CategoryCount `json:"busy_days" yaml:"busy_days"`
	BusyMonths      []CategoryCount `json:"busy_months" yaml:"busy_months"`
	Heatmap         Heatmap         `json:"heatmap" yaml:"heatmap"`
	MostCommonWords []WordCount     `json:"most_common_words" yaml:"most_common_words"`
	WordCloud       WordCloud       `json:"wordcloud" yaml:"wordcloud"`
	Emojis          []EmojiCount    `json:"emojis" yaml:"emojis"`
	// Ranking is only computed for the Overall view
	Ranking *Ranking `json:"ranking,omitempty" yaml:"ranking,omitempty"`
	// Records is the filtered record set the report was computed from
	Records []Record `json:"-" yaml:"-"`
}

// TopEmojis returns the first n rows of the emoji table
func (r *Report) TopEmojis(n int) []EmojiCount {
	if n >= 0 && len(r.Emojis) > n {
		return r.Emojis[:n]
	}
	return r.Emojis
}

type analysisTask struct {
	name string
	run  func()
}

// Analyze runs every aggregator over set for sender. The record set is never
// modified. An unknown sender produces an empty report, not an error; a
// missing stop-word set is an error.
func Analyze(ctx context.Context, set *RecordSet, sender string, opts AnalyzeOptions) (*Report, error) {
	if opts.StopWords == nil {
		return nil, &StopWordError{Err: fmt.Errorf("%w: analysis needs a stop-word set", ErrMissingStopWords)}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if set == nil {
		set = &RecordSet{}
	}
	if IsOverall(sender) {
		sender = Overall
	}
	if !HasSender(set.Records, sender) {
		LogWarn("Sender %q not found in transcript", sender)
	}

	records := set.Records
	report := &Report{
		Sender:  sender,
		Summary: set.Summary,
		Records: FilterBySender(records, sender),
	}

	tasks := []analysisTask{
		{"stats", func() { report.Stats = FetchStats(sender, records, opts.MediaPlaceholder) }},
		{"monthly_timeline", func() { report.MonthlyTimeline = MonthlyTimeline(sender, records) }},
		{"daily_timeline", func() { report.DailyTimeline = DailyTimeline(sender, records) }},
		{"busy_days", func() { report.BusyDays = WeekActivity(sender, records) }},
		{"busy_months", func() { report.BusyMonths = MonthActivity(sender, records) }},
		{"heatmap", func() { report.Heatmap = ActivityHeatmap(sender, records) }},
		{"most_common_words", func() {
			report.MostCommonWords = MostCommonWords(sender, records, opts.StopWords, opts.MediaPlaceholder, opts.TopWords)
		}},
		{"wordcloud", func() {
			report.WordCloud = BuildWordCloud(sender, records, opts.StopWords, opts.MediaPlaceholder, opts.WordCloud)
		}},
		{"emojis", func() { report.Emojis = EmojiFrequencies(sender, records) }},
	}
	if sender == Overall {
		tasks = append(tasks, analysisTask{"ranking", func() {
			ranking := MostBusySenders(records, opts.TopSenders)
			report.Ranking = &ranking
		}})
	}

	// Each task writes a distinct report field.
	g, gctx := errgroup.WithContext(ctx)
	if !opts.Parallel {
		g.SetLimit(1)
	}
	for _, task := range tasks {
		task := task
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return &AnalysisError{Component: task.name, Sender: sender, Err: err}
			}
			task.run()
			LogDebug("Computed %s for %s", task.name, sender)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return report, nil
}
