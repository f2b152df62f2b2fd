package internal

import (
	"regexp"
	"strings"
)

var (
	// separatorPattern is the " - " the export writes between timestamp and sender
	separatorPattern = regexp.MustCompile(`^[\s\p{Zs}]*-[\s\p{Zs}]`)

	// senderPattern stops at the first colon followed by whitespace. The name
	// may hold any character, so "Dr. J: Smith" yields "Dr. J".
	senderPattern = regexp.MustCompile(`^([\s\S]+?):[\s\p{Zs}]`)
)

// ExtractSender separates the "Name: " prefix of a message block from its
// body. Blocks without a prefix belong to GroupNotification and keep their
// whole text as body. Trailing line breaks are dropped from the body.
func ExtractSender(block string) (sender, body string) {
	rest := block
	if loc := separatorPattern.FindStringIndex(rest); loc != nil {
		rest = rest[loc[1]:]
	}

	if m := senderPattern.FindStringSubmatchIndex(rest); m != nil {
		name := strings.TrimSpace(rest[m[2]:m[3]])
		if name != "" {
			return name, trimBody(rest[m[1]:])
		}
	}
	return GroupNotification, trimBody(rest)
}

func trimBody(body string) string {
	return strings.TrimRight(body, "\r\n")
}
