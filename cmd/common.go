package cmd

import (
	"bytes"
	"context"
	"os"
	"unicode/utf8"

	"github.com/iksnae/chatstat/internal"
	"golang.org/x/term"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// loadTranscript reads and parses a transcript file using the loaded config
func loadTranscript(ctx context.Context, path string) (*internal.RecordSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &internal.TranscriptError{Path: path, Op: "read", Err: err}
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, &internal.TranscriptError{Path: path, Op: "decode", Err: errInvalidUTF8}
	}

	normalizer := internal.NewTimestampNormalizer(
		internal.WithDayFirst(cfg.DayFirst),
		internal.WithDefaultYear(cfg.DefaultYear),
	)

	var set *internal.RecordSet
	err = internal.ShowProgress(ctx, "Parsing "+path, func() error {
		set = internal.BuildRecords(string(data), normalizer)
		return nil
	})
	if err != nil {
		return nil, err
	}

	internal.LogInfo("Parsed %d messages from %s (%d senders, %d unparsed timestamps)",
		set.Summary.Records, path, set.Summary.DistinctSenders, set.Summary.UnparsedDates)
	return set, nil
}

// loadStopWords loads the configured stop-word list. A missing list is fatal.
func loadStopWords() (*internal.StopWords, error) {
	return internal.LoadStopWords(cfg.StopWordsPath)
}

func analyzeOptions(stop *internal.StopWords) internal.AnalyzeOptions {
	return internal.AnalyzeOptions{
		StopWords:        stop,
		MediaPlaceholder: cfg.MediaPlaceholder,
		TopWords:         cfg.TopWords,
		TopSenders:       cfg.TopSenders,
		WordCloud: internal.WordCloudOptions{
			Width:       cfg.WordCloud.Width,
			Height:      cfg.WordCloud.Height,
			MinFontSize: cfg.WordCloud.MinFontSize,
			MaxWords:    cfg.WordCloud.MaxWords,
			Background:  cfg.WordCloud.Background,
		},
		Parallel: cfg.Parallel,
	}
}

// terminalWidth returns the width of stdout, or 0 when it is not a terminal
func terminalWidth() int {
	if !internal.IsTerminal(os.Stdout) {
		return 0
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}
