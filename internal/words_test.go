package internal

import (
	"reflect"
	"testing"
)

func TestMostCommonWords(t *testing.T) {
	records := CreateTestRecordSet().Records
	stop := NewStopWords("hello", "see")

	tests := []struct {
		name   string
		sender string
		n      int
		want   []WordCount
	}{
		{
			name:   "top one overall",
			sender: Overall,
			n:      1,
			want:   []WordCount{{"trip", 2}},
		},
		{
			name:   "alice ties keep first-seen order",
			sender: "Alice",
			n:      4,
			want:   []WordCount{{"trip", 2}, {"everyone", 1}, {"😀😀", 1}, {"plans", 1}},
		},
		{
			name:   "media only sender",
			sender: "Bob",
			n:      20,
			want:   []WordCount{{"alice,", 1}, {"https://example.com", 1}},
		},
		{
			name:   "unknown sender",
			sender: "Zed",
			n:      20,
			want:   []WordCount{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MostCommonWords(tt.sender, records, stop, DefaultMediaPlaceholder, tt.n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MostCommonWords() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMostCommonWords_SkipsSystemAndMedia(t *testing.T) {
	got := MostCommonWords(Overall, CreateTestRecordSet().Records, NewStopWords(), DefaultMediaPlaceholder, 0)
	for _, wc := range got {
		switch wc.Word {
		case "created", "group", "<media", "omitted>":
			t.Errorf("word %q should not be counted", wc.Word)
		}
	}
}

func TestBuildWordCloud(t *testing.T) {
	records := CreateTestRecordSet().Records
	stop := NewStopWords("hello", "see")

	opts := DefaultWordCloudOptions()
	opts.MaxWords = 2
	cloud := BuildWordCloud(Overall, records, stop, DefaultMediaPlaceholder, opts)

	wantCorpus := "everyone 😀😀 alice, https://example.com trip trip plans 😀 👍 late"
	if cloud.Corpus != wantCorpus {
		t.Errorf("Corpus = %q, want %q", cloud.Corpus, wantCorpus)
	}
	if len(cloud.Words) != 2 || cloud.Words[0].Word != "trip" {
		t.Errorf("Words = %v, want two entries led by trip", cloud.Words)
	}
	if cloud.Width != 500 || cloud.Height != 500 || cloud.MinFontSize != 10 || cloud.Background != "white" {
		t.Errorf("options not carried: %+v", cloud.WordCloudOptions)
	}
}

func TestBuildWordCloud_SkipsEmptyMessages(t *testing.T) {
	records := []Record{
		CreateTestUnparsedRecord(0, "A", "hello see"),
		CreateTestUnparsedRecord(1, "A", "Picnic"),
		CreateTestUnparsedRecord(2, "A", "hello"),
	}
	cloud := BuildWordCloud(Overall, records, NewStopWords("hello", "see"), "", DefaultWordCloudOptions())
	if cloud.Corpus != "picnic" {
		t.Errorf("Corpus = %q, want %q", cloud.Corpus, "picnic")
	}
}

func TestFilterTokens(t *testing.T) {
	tests := []struct {
		name string
		body string
		stop *StopWords
		want []string
	}{
		{name: "lower-cases and drops", body: "The CAT the", stop: NewStopWords("the"), want: []string{"cat"}},
		{name: "nil stop set keeps all", body: "A b", stop: nil, want: []string{"a", "b"}},
		{name: "only stop words", body: "the the", stop: NewStopWords("the"), want: []string{}},
		{name: "punctuation stays attached", body: "hi, there", stop: NewStopWords("hi"), want: []string{"hi,", "there"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTokens(tt.body, tt.stop)
			if len(got) != len(tt.want) {
				t.Fatalf("FilterTokens(%q) = %v, want %v", tt.body, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("FilterTokens(%q) = %v, want %v", tt.body, got, tt.want)
				}
			}
		})
	}
}
