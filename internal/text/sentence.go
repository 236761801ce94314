package text

import (
	"strings"
	"unicode"
)

// SplitSentences breaks text into sentences. A sentence ends at a run of
// '.', '!' or '?' followed by whitespace or end of input, or at a newline.
// Returned sentences are trimmed; empty ones are dropped.
func SplitSentences(s string) []string {
	var out []string
	rs := []rune(s)
	start := 0

	flush := func(end int) {
		if sent := strings.TrimSpace(string(rs[start:end])); sent != "" {
			out = append(out, sent)
		}
		start = end
	}

	for i := 0; i < len(rs); i++ {
		switch rs[i] {
		case '\n':
			flush(i + 1)
		case '.', '!', '?':
			j := i + 1
			for j < len(rs) && (rs[j] == '.' || rs[j] == '!' || rs[j] == '?') {
				j++
			}
			if j == len(rs) || unicode.IsSpace(rs[j]) {
				flush(j)
			}
			i = j - 1
		}
	}
	flush(len(rs))
	return out
}
