package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// StopWords is a read-only set of lower-case tokens excluded from word
// frequencies. It is loaded once and shared by every analysis.
type StopWords struct {
	words  map[string]struct{}
	source string
}

// NewStopWords builds a set from words
func NewStopWords(words ...string) *StopWords {
	sw := &StopWords{words: make(map[string]struct{}, len(words)), source: "inline"}
	for _, w := range words {
		sw.add(w)
	}
	return sw
}

// LoadStopWords reads a whitespace or line delimited stop-word file. A
// missing file or an empty path is an error wrapping ErrMissingStopWords.
func LoadStopWords(path string) (*StopWords, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &StopWordError{Path: path, Err: fmt.Errorf("%w: no path configured", ErrMissingStopWords)}
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %v", ErrMissingStopWords, err)
		}
		return nil, &StopWordError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	sw, err := ReadStopWords(f)
	if err != nil {
		return nil, &StopWordError{Path: path, Err: err}
	}
	sw.source = path

	LogDebug("Loaded %d stop word(s) from %s", sw.Len(), path)
	return sw, nil
}

// ReadStopWords reads stop words from r
func ReadStopWords(r io.Reader) (*StopWords, error) {
	sw := &StopWords{words: make(map[string]struct{})}

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		sw.add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stop words: %w", err)
	}
	return sw, nil
}

func (sw *StopWords) add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word != "" {
		sw.words[word] = struct{}{}
	}
}

// Contains reports whether token is a stop word. Tokens are expected lower-case.
func (sw *StopWords) Contains(token string) bool {
	_, ok := sw.words[token]
	return ok
}

// Len returns the number of distinct stop words
func (sw *StopWords) Len() int {
	return len(sw.words)
}

// Source returns where the set was loaded from
func (sw *StopWords) Source() string {
	return sw.source
}
