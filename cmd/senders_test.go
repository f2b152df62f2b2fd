package cmd

import (
	"errors"
	"testing"

	"github.com/iksnae/chatstat/internal"
	"github.com/iksnae/chatstat/testutil"
)

func TestSendersCommand(t *testing.T) {
	chat, stop := fixtures(t, testutil.SampleTranscript)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "names",
			args: []string{"--stopwords", stop, "senders", chat},
			want: "Overall\nAlice\nBob\nCarol\n",
		},
		{
			name: "counts",
			args: []string{"senders", chat, "--counts"},
			want: "Overall\t6\nAlice\t2\nBob\t2\nCarol\t1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := executeCommand(t, tt.args...)
			if err != nil {
				t.Fatalf("senders error = %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestSendersCommand_EmptyTranscript(t *testing.T) {
	chat, _ := fixtures(t, "no timestamps in here\n")

	out, _, err := executeCommand(t, "senders", chat)
	if err != nil {
		t.Fatalf("senders error = %v", err)
	}
	if out != "Overall\n" {
		t.Errorf("output = %q, want only Overall", out)
	}
}

func TestSendersCommand_MissingFile(t *testing.T) {
	_, _, err := executeCommand(t, "senders", "/nonexistent/chat.txt")
	var te *internal.TranscriptError
	if !errors.As(err, &te) {
		t.Errorf("error = %v, want TranscriptError", err)
	}
}
