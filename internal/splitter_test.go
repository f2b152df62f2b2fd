package internal

import (
	"strings"
	"testing"

	"github.com/iksnae/chatstat/testutil"
)

func TestSplitTranscript(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantLen      int
		wantPreamble string
		wantFirstTS  string
	}{
		{
			name:         "sample with preamble",
			text:         testutil.SampleTranscript,
			wantLen:      6,
			wantPreamble: "Messages and calls are end-to-end encrypted.\n",
			wantFirstTS:  "1/1/24, 10:00 AM",
		},
		{
			name:        "scenario",
			text:        testutil.ScenarioTranscript,
			wantLen:     2,
			wantFirstTS: "1/1/24, 10:00 AM",
		},
		{
			name:         "no timestamps",
			text:         "just some text\nwith lines\n",
			wantLen:      0,
			wantPreamble: "just some text\nwith lines\n",
		},
		{
			name:    "empty",
			text:    "",
			wantLen: 0,
		},
		{
			name:        "seconds and lower-case meridiem",
			text:        "12/31/23, 11:59:59 pm - A: late\n",
			wantLen:     1,
			wantFirstTS: "12/31/23, 11:59:59 pm",
		},
		{
			name:        "no year",
			text:        "5/3, 9:00 AM - A: hi\n",
			wantLen:     1,
			wantFirstTS: "5/3, 9:00 AM",
		},
		{
			name:        "narrow no-break space",
			text:        "1/1/24, 10:05\u202fAM - A: hi\n",
			wantLen:     1,
			wantFirstTS: "1/1/24, 10:05 AM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := SplitTranscript(tt.text)

			if split.Len() != tt.wantLen {
				t.Fatalf("Len() = %d, want %d", split.Len(), tt.wantLen)
			}
			if len(split.Boundaries) != len(split.Blocks) {
				t.Errorf("%d boundaries but %d blocks", len(split.Boundaries), len(split.Blocks))
			}
			if split.Preamble != tt.wantPreamble {
				t.Errorf("Preamble = %q, want %q", split.Preamble, tt.wantPreamble)
			}
			if got := split.Reconstruct(); got != tt.text {
				t.Errorf("Reconstruct() = %q, want original text", got)
			}
			if tt.wantLen > 0 {
				if got := split.Timestamps()[0]; got != tt.wantFirstTS {
					t.Errorf("Timestamps()[0] = %q, want %q", got, tt.wantFirstTS)
				}
			}
		})
	}
}

func TestSplitTranscript_BlocksKeepContinuationLines(t *testing.T) {
	split := SplitTranscript(testutil.SampleTranscript)

	carol := split.Blocks[4]
	if !strings.Contains(carol, "first line\nsecond line") {
		t.Errorf("multi-line block = %q, want both lines", carol)
	}
	if strings.Contains(carol, "Alice") {
		t.Errorf("block should stop at the next timestamp, got %q", carol)
	}
}

func TestNormalizeSpaces(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "10:05\u202fAM", want: "10:05 AM"},
		{input: "10:05\u00a0PM", want: "10:05 PM"},
		{input: "a\u2007b", want: "a b"},
		{input: "plain text", want: "plain text"},
	}
	for _, tt := range tests {
		if got := NormalizeSpaces(tt.input); got != tt.want {
			t.Errorf("NormalizeSpaces(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
