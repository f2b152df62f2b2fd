package internal

import (
	"regexp"
	"strings"
)

// boundaryPattern matches the timestamp that opens every exported message:
// M/D[/YY], H:MM[:SS] AM|PM. Space separators (\p{Zs}) cover the narrow
// no-break space some locales put before the meridiem.
var boundaryPattern = regexp.MustCompile(`\d{1,2}/\d{1,2}(?:/\d{2})?,[\s\p{Zs}]\d{1,2}:\d{2}(?::\d{2})?[\s\p{Zs}]*[aApP][mM]`)

// Split is a transcript cut at timestamp boundaries.
// Preamble + Boundaries[0] + Blocks[0] + ... + Boundaries[n-1] + Blocks[n-1]
// is the original text.
type Split struct {
	Preamble   string
	Boundaries []string
	Blocks     []string
}

// Len returns the number of message blocks
func (s Split) Len() int {
	return len(s.Blocks)
}

// Timestamps returns the boundaries with locale space characters normalized
func (s Split) Timestamps() []string {
	out := make([]string, len(s.Boundaries))
	for i, b := range s.Boundaries {
		out[i] = NormalizeSpaces(b)
	}
	return out
}

// Reconstruct joins the split back into the original text
func (s Split) Reconstruct() string {
	var sb strings.Builder
	sb.WriteString(s.Preamble)
	for i := range s.Blocks {
		sb.WriteString(s.Boundaries[i])
		sb.WriteString(s.Blocks[i])
	}
	return sb.String()
}

// SplitTranscript cuts raw transcript text into (timestamp, block) pairs.
// Text before the first timestamp is kept as Preamble and is not a message.
// A transcript with no timestamps yields an empty Split.
func SplitTranscript(text string) Split {
	locs := boundaryPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return Split{Preamble: text}
	}

	split := Split{
		Preamble:   text[:locs[0][0]],
		Boundaries: make([]string, 0, len(locs)),
		Blocks:     make([]string, 0, len(locs)),
	}
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		split.Boundaries = append(split.Boundaries, text[loc[0]:loc[1]])
		split.Blocks = append(split.Blocks, text[loc[1]:end])
	}
	return split
}

// NormalizeSpaces replaces the no-break space variants used by some export
// locales with a regular space.
func NormalizeSpaces(s string) string {
	return spaceReplacer.Replace(s)
}

var spaceReplacer = strings.NewReplacer(
	"\u202f", " ", // narrow no-break space
	"\u00a0", " ", // no-break space
	"\u2007", " ", // figure space
)
