package internal

import (
	"strings"

	"mvdan.cc/xurls/v2"
)

// linkPattern finds URLs with or without a scheme ("example.com/x" counts)
var linkPattern = xurls.Relaxed()

// Stats are the headline counts for a sender filter
type Stats struct {
	Messages int `json:"messages" yaml:"messages"`
	Words    int `json:"words" yaml:"words"`
	Media    int `json:"media" yaml:"media"`
	Links    int `json:"links" yaml:"links"`
}

// FetchStats counts messages, words, media attachments and links for sender.
// Media placeholders are counted as media, not as words. An unknown sender
// yields zero Stats.
func FetchStats(sender string, records []Record, mediaPlaceholder string) Stats {
	var stats Stats
	for _, rec := range FilterBySender(records, sender) {
		stats.Messages++
		if IsMedia(rec.Body, mediaPlaceholder) {
			stats.Media++
			continue
		}
		stats.Words += len(strings.Fields(rec.Body))
		stats.Links += len(ExtractLinks(rec.Body))
	}
	return stats
}

// ExtractLinks returns every URL found in body, in order
func ExtractLinks(body string) []string {
	return linkPattern.FindAllString(body, -1)
}
