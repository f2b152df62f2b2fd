package internal

import (
	"errors"
	"fmt"
)

// ErrMissingStopWords means the stop-word resource could not be found.
// Word frequency analytics refuse to run without it.
var ErrMissingStopWords = errors.New("stop-word resource missing")

// TranscriptError represents errors reading a transcript
type TranscriptError struct {
	Path string
	Op   string // "open", "read", "decode"
	Err  error
}

func (e *TranscriptError) Error() string {
	return fmt.Sprintf("transcript error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *TranscriptError) Unwrap() error {
	return e.Err
}

// StopWordError represents errors loading the stop-word list
type StopWordError struct {
	Path string
	Err  error
}

func (e *StopWordError) Error() string {
	return fmt.Sprintf("stop words error [%s]: %v", e.Path, e.Err)
}

func (e *StopWordError) Unwrap() error {
	return e.Err
}

// AnalysisError represents a failure inside one aggregator
type AnalysisError struct {
	Component string
	Sender    string
	Err       error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis error [%s] %s: %v", e.Component, e.Sender, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
