package internal

import "testing"

func TestFetchStats(t *testing.T) {
	records := CreateTestRecordSet().Records

	tests := []struct {
		name   string
		sender string
		want   Stats
	}{
		{name: "overall", sender: Overall, want: Stats{Messages: 6, Words: 18, Media: 1, Links: 1}},
		{name: "empty filter is overall", sender: "", want: Stats{Messages: 6, Words: 18, Media: 1, Links: 1}},
		{name: "bob", sender: "Bob", want: Stats{Messages: 2, Words: 4, Media: 1, Links: 1}},
		{name: "alice", sender: "Alice", want: Stats{Messages: 2, Words: 8, Media: 0, Links: 0}},
		{name: "unparsed timestamp still counts", sender: "Carol", want: Stats{Messages: 1, Words: 2}},
		{name: "unknown sender", sender: "Zed", want: Stats{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FetchStats(tt.sender, records, DefaultMediaPlaceholder); got != tt.want {
				t.Errorf("FetchStats(%q) = %+v, want %+v", tt.sender, got, tt.want)
			}
		})
	}
}

func TestFetchStats_CustomPlaceholder(t *testing.T) {
	records := []Record{
		CreateTestUnparsedRecord(0, "A", "<Médias omis>"),
		CreateTestUnparsedRecord(1, "A", DefaultMediaPlaceholder),
	}
	got := FetchStats(Overall, records, "<Médias omis>")
	if got.Media != 1 {
		t.Errorf("Media = %d, want 1", got.Media)
	}
	if got.Words != 2 {
		t.Errorf("Words = %d, want 2 (default placeholder is plain text here)", got.Words)
	}
}

func TestExtractLinks(t *testing.T) {
	tests := []struct {
		body string
		want int
	}{
		{body: "see https://example.com", want: 1},
		{body: "two: https://a.org/x and http://b.net", want: 2},
		{body: "no scheme example.com/path", want: 1},
		{body: "no links here", want: 0},
		{body: "", want: 0},
	}
	for _, tt := range tests {
		if got := ExtractLinks(tt.body); len(got) != tt.want {
			t.Errorf("ExtractLinks(%q) = %v, want %d links", tt.body, got, tt.want)
		}
	}
}
