package internal

import "strings"

// DefaultTopWords is the length of the most-common-words table
const DefaultTopWords = 20

// Word-cloud canvas defaults
const (
	DefaultWordCloudWidth      = 500
	DefaultWordCloudHeight     = 500
	DefaultWordCloudMinFont    = 10
	DefaultWordCloudMaxWords   = 200
	DefaultWordCloudBackground = "white"
)

// WordCount is one row of a word frequency table
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// WordCloudOptions configures the word-cloud generator
type WordCloudOptions struct {
	Width       int    `json:"width" yaml:"width"`
	Height      int    `json:"height" yaml:"height"`
	MinFontSize int    `json:"min_font_size" yaml:"min_font_size"`
	MaxWords    int    `json:"max_words" yaml:"max_words"`
	Background  string `json:"background" yaml:"background"`
}

// DefaultWordCloudOptions returns a 500x500 white canvas with a 10pt minimum font
func DefaultWordCloudOptions() WordCloudOptions {
	return WordCloudOptions{
		Width:       DefaultWordCloudWidth,
		Height:      DefaultWordCloudHeight,
		MinFontSize: DefaultWordCloudMinFont,
		MaxWords:    DefaultWordCloudMaxWords,
		Background:  DefaultWordCloudBackground,
	}
}

// WordCloud is the generator input: the stop-word filtered corpus, the canvas
// configuration and the weighted terms the canvas draws.
type WordCloud struct {
	WordCloudOptions `yaml:",inline"`
	Corpus           string      `json:"corpus" yaml:"corpus"`
	Words            []WordCount `json:"words" yaml:"words"`
}

// MostCommonWords returns the top n words for sender, most frequent first,
// ties in first-seen order. System messages and media placeholders are
// skipped, bodies are lower-cased and stop words dropped.
func MostCommonWords(sender string, records []Record, stop *StopWords, mediaPlaceholder string, n int) []WordCount {
	c := newCounter()
	forEachTextRecord(sender, records, mediaPlaceholder, func(rec Record) {
		for _, tok := range FilterTokens(rec.Body, stop) {
			c.add(tok)
		}
	})
	return wordCounts(c, n)
}

// BuildWordCloud assembles the word-cloud input for sender. The corpus joins
// each message's remaining tokens with single spaces.
func BuildWordCloud(sender string, records []Record, stop *StopWords, mediaPlaceholder string, opts WordCloudOptions) WordCloud {
	var sb strings.Builder
	c := newCounter()
	forEachTextRecord(sender, records, mediaPlaceholder, func(rec Record) {
		tokens := FilterTokens(rec.Body, stop)
		if len(tokens) == 0 {
			return
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strings.Join(tokens, " "))
		for _, tok := range tokens {
			c.add(tok)
		}
	})

	return WordCloud{
		WordCloudOptions: opts,
		Corpus:           sb.String(),
		Words:            wordCounts(c, opts.MaxWords),
	}
}

// FilterTokens lower-cases body, splits it on whitespace and drops stop words
func FilterTokens(body string, stop *StopWords) []string {
	fields := strings.Fields(strings.ToLower(body))
	tokens := fields[:0]
	for _, f := range fields {
		if stop != nil && stop.Contains(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func forEachTextRecord(sender string, records []Record, mediaPlaceholder string, fn func(Record)) {
	for _, rec := range FilterBySender(records, sender) {
		if rec.Sender == GroupNotification || IsMedia(rec.Body, mediaPlaceholder) {
			continue
		}
		fn(rec)
	}
}

func wordCounts(c *counter, n int) []WordCount {
	top := c.mostCommon(n)
	out := make([]WordCount, 0, len(top))
	for _, kc := range top {
		out = append(out, WordCount{Word: kc.key, Count: kc.count})
	}
	return out
}
