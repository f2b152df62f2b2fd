package internal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestShowProgress(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		message string
		fn      func() error
		wantErr bool
	}{
		{
			name:    "successful function",
			message: "Testing",
			fn: func() error {
				return nil
			},
			wantErr: false,
		},
		{
			name:    "function with error",
			message: "Testing error",
			fn: func() error {
				return errors.New("test error")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ShowProgress(ctx, tt.message, tt.fn)
			if (err != nil) != tt.wantErr {
				t.Errorf("ShowProgress() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestShowProgress_NotTerminalRunsInline(t *testing.T) {
	calls := 0
	err := ShowProgress(context.Background(), "Parsing", func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("ShowProgress() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

func TestShowProgressWithSteps(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		steps   []ProgressStep
		wantErr bool
	}{
		{
			name: "successful steps",
			steps: []ProgressStep{
				{Message: "Step 1", Fn: func() error { return nil }},
				{Message: "Step 2", Fn: func() error { return nil }},
			},
			wantErr: false,
		},
		{
			name: "step with error",
			steps: []ProgressStep{
				{Message: "Step 1", Fn: func() error { return nil }},
				{Message: "Step 2", Fn: func() error { return errors.New("step error") }},
			},
			wantErr: true,
		},
		{
			name:    "empty steps",
			steps:   []ProgressStep{},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ShowProgressWithSteps(ctx, tt.steps)
			if (err != nil) != tt.wantErr {
				t.Errorf("ShowProgressWithSteps() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestShowProgressWithSteps_StopsAtFailure(t *testing.T) {
	ran := 0
	steps := []ProgressStep{
		{Message: "Parse", Fn: func() error { ran++; return nil }},
		{Message: "Analyze", Fn: func() error { ran++; return errors.New("boom") }},
		{Message: "Export", Fn: func() error { ran++; return nil }},
	}

	err := ShowProgressWithSteps(context.Background(), steps)
	if err == nil || !strings.Contains(err.Error(), "Analyze: boom") {
		t.Errorf("error = %v, want the failing step's message", err)
	}
	if ran != 2 {
		t.Errorf("ran %d steps, want 2", ran)
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
}
