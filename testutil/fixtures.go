package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SampleTranscript is a short group export: a preamble line, a system
// message, media, a link, a multi-line message and a narrow no-break space
// before the meridiem.
const SampleTranscript = "Messages and calls are end-to-end encrypted.\n" +
	"1/1/24, 10:00 AM - Alice created group \"Trip\"\n" +
	"1/1/24, 10:05\u202fAM - Alice: Hello everyone 😀😀\n" +
	"1/1/24, 10:06 AM - Bob: hello alice, plans at https://example.com: see you\n" +
	"2/1/24, 9:15\u202fPM - Bob: <Media omitted>\n" +
	"2/1/24, 11:30 PM - Carol: first line\nsecond line 👍\n" +
	"3/2/24, 12:01 AM - Alice: trip trip plans 👍\n"

// ScenarioTranscript is the two-message example used across the docs
const ScenarioTranscript = "1/1/24, 10:00 AM - Alice: Hello\n1/1/24, 10:05 AM - Bob: <Media omitted>\n"

// DefaultStopWords is a small stop-word list for tests
var DefaultStopWords = []string{"the", "a", "an", "and", "is", "at", "see", "you", "hello"}

// WriteTranscript writes a transcript fixture and returns its path
func WriteTranscript(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "chat.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write transcript fixture: %v", err)
	}
	return path
}

// WriteStopWords writes a stop-word fixture, one word per line, and returns its path
func WriteStopWords(t *testing.T, dir string, words ...string) string {
	t.Helper()
	if len(words) == 0 {
		words = DefaultStopWords
	}
	path := filepath.Join(dir, "stopwords.txt")
	if err := os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("Failed to write stop words fixture: %v", err)
	}
	return path
}

// WriteConfig writes a chatstat.yaml fixture and returns its path
func WriteConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "chatstat.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config fixture: %v", err)
	}
	return path
}
