package pos

import (
	"strings"
	"unicode"
)

// Tagger tags tokens with a closed-class lexicon, a list of symptom
// adjectives and suffix rules. Words nothing recognizes default to NN.
type Tagger struct {
	closed     map[string]Tag
	adjectives map[string]bool
	gerunds    map[string]bool
	rules      []suffixRule
}

// NewTagger returns a tagger with the built-in English lexicon.
func NewTagger() *Tagger {
	return &Tagger{
		closed:     closed,
		adjectives: adjectives,
		gerunds:    gerundNouns,
		rules:      suffixRules,
	}
}

// Tag tags each word of a tokenized sentence.
func (t *Tagger) Tag(words []string) []Tagged {
	out := make([]Tagged, len(words))
	for i, w := range words {
		out[i] = Tagged{Word: w, Tag: t.tagWord(w)}
	}
	// A gerund after a determiner, possessive or adjective names a thing:
	// "the burning", "severe itching".
	for i := 1; i < len(out); i++ {
		if out[i].Tag != VBG {
			continue
		}
		switch prev := out[i-1].Tag; {
		case prev == DT, prev == PRPS, prev.IsAdjective():
			out[i].Tag = NN
		}
	}
	return out
}

// Phrases tags a tokenized sentence and returns its noun phrase chunks.
func (t *Tagger) Phrases(words []string) []string {
	return Chunk(t.Tag(words))
}

func (t *Tagger) tagWord(w string) Tag {
	lw := strings.ToLower(strings.ReplaceAll(w, "’", "'"))
	if !strings.ContainsFunc(lw, isWordRune) {
		return Punct
	}
	if isNumber(lw) {
		return CD
	}
	if tag, ok := t.closed[lw]; ok {
		return tag
	}
	if t.adjectives[lw] {
		return JJ
	}
	if t.gerunds[lw] {
		return NN
	}
	for _, r := range t.rules {
		if len(lw) >= r.minLen && strings.HasSuffix(lw, r.suffix) {
			return r.tag
		}
	}
	return NN
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isNumber(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' {
			return false
		}
	}
	return true
}
