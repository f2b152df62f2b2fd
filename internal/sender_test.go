package internal

import "testing"

func TestExtractSender(t *testing.T) {
	tests := []struct {
		name       string
		block      string
		wantSender string
		wantBody   string
	}{
		{name: "simple", block: " - Alice: Hello\n", wantSender: "Alice", wantBody: "Hello"},
		{name: "colon inside url", block: " - Bob: see https://x.com: ok\n", wantSender: "Bob", wantBody: "see https://x.com: ok"},
		{name: "first colon wins", block: " - Dr. J: Smith: hi\n", wantSender: "Dr. J", wantBody: "Smith: hi"},
		{name: "phone number sender", block: " - +91 98765 43210: hey\n", wantSender: "+91 98765 43210", wantBody: "hey"},
		{name: "multi-line body", block: " - Carol: first\nsecond\n", wantSender: "Carol", wantBody: "first\nsecond"},
		{name: "crlf line ending", block: " - Carol: hi\r\n", wantSender: "Carol", wantBody: "hi"},
		{name: "system message", block: " - Alice created group \"Trip\"\n", wantSender: GroupNotification, wantBody: "Alice created group \"Trip\""},
		{name: "colon without space", block: " - Bob:no space\n", wantSender: GroupNotification, wantBody: "Bob:no space"},
		{name: "no separator", block: "Alice: hi", wantSender: "Alice", wantBody: "hi"},
		{name: "empty body", block: " - Ann: \n", wantSender: "Ann", wantBody: ""},
		{name: "empty block", block: "", wantSender: GroupNotification, wantBody: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender, body := ExtractSender(tt.block)
			if sender != tt.wantSender {
				t.Errorf("sender = %q, want %q", sender, tt.wantSender)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}
