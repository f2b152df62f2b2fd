package internal

import (
	"reflect"
	"testing"
	"unicode"
)

func TestEmojiFrequencies(t *testing.T) {
	records := CreateTestRecordSet().Records

	got := EmojiFrequencies(Overall, records)
	want := []EmojiCount{{"😀", 2}, {"👍", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EmojiFrequencies(Overall) = %v, want %v", got, want)
	}

	if got := EmojiFrequencies("Bob", records); len(got) != 0 {
		t.Errorf("EmojiFrequencies(Bob) = %v, want empty", got)
	}
}

func TestDistinctEmojis(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want []string
	}{
		{name: "repeats count once", s: "hi 😀😀 😀", want: []string{"😀"}},
		{name: "order kept", s: "👍 then 😂", want: []string{"👍", "😂"}},
		{name: "skin tone", s: "\U0001F44D\U0001F3FD ok", want: []string{"\U0001F44D\U0001F3FD"}},
		{name: "flag", s: "go 🇮🇳", want: []string{"🇮🇳"}},
		{name: "zwj family", s: "\U0001F468\u200D\U0001F469\u200D\U0001F467", want: []string{"\U0001F468\u200D\U0001F469\u200D\U0001F467"}},
		{name: "keycap", s: "1\uFE0F\u20E3 first", want: []string{"1\uFE0F\u20E3"}},
		{name: "heart with selector", s: "\u2764\uFE0F", want: []string{"\u2764\uFE0F"}},
		{name: "text copyright", s: "© 2024", want: nil},
		{name: "emoji copyright", s: "\u00A9\uFE0F", want: []string{"\u00A9\uFE0F"}},
		{name: "digits", s: "123 #tag", want: nil},
		{name: "plain text", s: "hello", want: nil},
		{name: "empty", s: "", want: nil},
		{name: "star symbol", s: "★ rated", want: nil},
		{name: "check mark", s: "done ✓", want: nil},
		{name: "heavy arrow", s: "next ➔", want: nil},
		{name: "ballot box", s: "☐ todo", want: nil},
		{name: "music note", s: "♪ la", want: nil},
		{name: "squared letter", s: "\U0001F130 x", want: nil},
		{name: "text heart without selector", s: "\u2764 you", want: nil},
		{name: "heavy check mark with selector", s: "\u2714\uFE0F", want: []string{"\u2714\uFE0F"}},
		{name: "star emoji", s: "\u2B50 rated", want: []string{"\u2B50"}},
		{name: "symbols among emoji", s: "★ 😀 ✓ 👍", want: []string{"😀", "👍"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistinctEmojis(tt.s)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DistinctEmojis(%q) = %q, want %q", tt.s, got, tt.want)
			}
		})
	}
}

func TestEmojiTables(t *testing.T) {
	for name, table := range map[string]*unicode.RangeTable{
		"emojiPresentation": emojiPresentation,
		"emojiCharacter":    emojiCharacter,
	} {
		prev := rune(-1)
		for _, r := range table.R16 {
			if rune(r.Lo) <= prev || r.Hi < r.Lo {
				t.Errorf("%s: range %#x..%#x out of order", name, r.Lo, r.Hi)
			}
			prev = rune(r.Hi)
		}
		for _, r := range table.R32 {
			if rune(r.Lo) <= prev || r.Hi < r.Lo {
				t.Errorf("%s: range %#x..%#x out of order", name, r.Lo, r.Hi)
			}
			prev = rune(r.Hi)
		}
	}

	for _, r := range emojiPresentation.R32 {
		for c := rune(r.Lo); c <= rune(r.Hi); c++ {
			if !unicode.Is(emojiCharacter, c) {
				t.Fatalf("%#x has Emoji_Presentation but not Emoji", c)
			}
		}
	}
}
