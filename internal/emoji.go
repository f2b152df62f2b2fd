package internal

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// EmojiCount is one row of the emoji table: the number of messages that use it
type EmojiCount struct {
	Emoji string `json:"emoji" yaml:"emoji"`
	Count int    `json:"count" yaml:"count"`
}

// EmojiFrequencies counts, for each emoji, the messages of sender that contain
// it. An emoji repeated inside one message counts once. Every emoji is
// returned, most used first, ties in first-seen order.
func EmojiFrequencies(sender string, records []Record) []EmojiCount {
	c := newCounter()
	for _, rec := range FilterBySender(records, sender) {
		for _, e := range DistinctEmojis(rec.Body) {
			c.add(e)
		}
	}

	out := make([]EmojiCount, 0, c.len())
	for _, kc := range c.mostCommon(0) {
		out = append(out, EmojiCount{Emoji: kc.key, Count: kc.count})
	}
	return out
}

// DistinctEmojis returns the emoji in s in first-seen order without repeats.
// Multi-codepoint emoji (flags, skin tones, ZWJ families, keycaps) are
// single entries.
func DistinctEmojis(s string) []string {
	var out []string
	seen := make(map[string]struct{})

	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if !isEmojiCluster(g.Runes()) {
			continue
		}
		cluster := g.Str()
		if _, ok := seen[cluster]; ok {
			continue
		}
		seen[cluster] = struct{}{}
		out = append(out, cluster)
	}
	return out
}

const (
	variationSelector16 = 0xFE0F
	combiningKeycap     = 0x20E3
)

// isEmojiCluster reports whether a grapheme cluster renders as an emoji: it
// holds an Emoji_Presentation code point, or an Emoji code point followed by
// U+FE0F or a keycap. Plain ©, digits and symbols such as ★ or ✓ do not count.
func isEmojiCluster(runes []rune) bool {
	emoji := false
	qualified := false
	for _, r := range runes {
		switch {
		case r == variationSelector16 || r == combiningKeycap:
			qualified = true
		case unicode.Is(emojiPresentation, r):
			return true
		case unicode.Is(emojiCharacter, r):
			emoji = true
		}
	}
	return emoji && qualified
}
