// Package fence extracts fenced code blocks from generated text.
package fence

import (
	"regexp"
	"strings"
)

// Block is one complete fenced code block.
type Block struct {
	LanguageTag string // fence tag, e.g. "jsx"; empty when the fence had none
	Content     string // content between the fences, trimmed of surrounding whitespace
}

var fenceOpenRe = regexp.MustCompile("^```([A-Za-z0-9_+-]*)[ \t\r]*$")

// Extract scans text for complete fenced code blocks in document order.
// An opening fence is a line of three backticks optionally followed
// immediately by a language tag; a closing fence is a line of exactly three
// backticks. A trailing fence with no closing line is not yielded — the
// stream may still be delivering it, and a later pass over the grown buffer
// will pick it up whole. Extract holds no state between calls, so it can be
// re-run on every chunk of a growing buffer.
func Extract(text string) []Block {
	lines := strings.Split(text, "\n")
	var blocks []Block
	var current *Block
	var buf strings.Builder

	for _, line := range lines {
		if current != nil {
			// Inside a block — look for the closing fence.
			if strings.TrimSpace(line) == "```" {
				current.Content = strings.TrimSpace(buf.String())
				blocks = append(blocks, *current)
				current = nil
				buf.Reset()
				continue
			}
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString(line)
			continue
		}

		if m := fenceOpenRe.FindStringSubmatch(line); m != nil {
			current = &Block{LanguageTag: m[1]}
			buf.Reset()
		}
	}

	return blocks
}
