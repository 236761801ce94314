package pos

import "strings"

type chunkState int

const (
	idle chunkState = iota
	inAdjective
	inNoun
)

// Chunk walks a tagged sentence left to right and returns its noun phrases in
// order of appearance. A phrase is an adjective immediately followed by one or
// more nouns, or a bare run of nouns. An adjective not followed by a noun is
// dropped; in a run of adjectives only the last one joins the phrase.
func Chunk(tagged []Tagged) []string {
	var (
		phrases []string
		state   = idle
		start   int
	)
	emit := func(end int) {
		words := make([]string, 0, end-start)
		for _, tk := range tagged[start:end] {
			words = append(words, tk.Word)
		}
		phrases = append(phrases, strings.Join(words, " "))
	}

	for i, tk := range tagged {
		switch state {
		case idle:
			switch {
			case tk.Tag.IsAdjective():
				start, state = i, inAdjective
			case tk.Tag.IsNoun():
				start, state = i, inNoun
			}
		case inAdjective:
			switch {
			case tk.Tag.IsNoun():
				state = inNoun
			case tk.Tag.IsAdjective():
				start = i
			default:
				state = idle
			}
		case inNoun:
			if tk.Tag.IsNoun() {
				continue
			}
			emit(i)
			if tk.Tag.IsAdjective() {
				start, state = i, inAdjective
			} else {
				state = idle
			}
		}
	}
	if state == inNoun {
		emit(len(tagged))
	}
	return phrases
}
