// Package extract turns free-text symptom descriptions into scored symptoms
// from the vocabulary.
package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kuandriy/symptom-gate/internal/dataset"
	"github.com/kuandriy/symptom-gate/internal/pos"
	"github.com/kuandriy/symptom-gate/internal/rank"
	"github.com/kuandriy/symptom-gate/internal/similarity"
	"github.com/kuandriy/symptom-gate/internal/text"
)

// DefaultKeywords are words that usually sit next to a symptom description.
var DefaultKeywords = []string{
	"feel", "pain", "ache", "sore", "hurt", "discomfort", "uncomfortable",
	"symptom", "suffering", "experiencing", "problem", "issue",
	"chronic", "acute", "severe", "mild", "moderate", "intense",
	"constant", "intermittent", "occasional", "frequent", "persistent",
}

// Config holds extraction parameters.
type Config struct {
	// Threshold is the minimum cosine similarity for a candidate to be
	// accepted as a symptom. Lower values raise recall and admit noise.
	Threshold float64
	// WindowBefore and WindowAfter bound the words captured around a keyword.
	WindowBefore int
	WindowAfter  int
	// A candidate is dropped when its preprocessed form has fewer than
	// MinTokens tokens and fewer than MinChars characters.
	MinTokens int
	MinChars  int
	Keywords  []string
}

// DefaultConfig returns the standard extraction parameters.
func DefaultConfig() Config {
	return Config{
		Threshold:    0.3,
		WindowBefore: 3,
		WindowAfter:  5,
		MinTokens:    2,
		MinChars:     5,
		Keywords:     append([]string(nil), DefaultKeywords...),
	}
}

type keywordWindow struct {
	keyword string
	pattern *regexp.Regexp
}

// Extractor generates candidate phrases from text and matches them against
// the symptom space. It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	model   *similarity.Model
	vocab   *dataset.Vocabulary
	tagger  *pos.Tagger
	cfg     Config
	windows []keywordWindow
}

// New creates an extractor over the given symptom space.
func New(model *similarity.Model, vocab *dataset.Vocabulary, cfg Config) *Extractor {
	e := &Extractor{
		model:  model,
		vocab:  vocab,
		tagger: pos.NewTagger(),
		cfg:    cfg,
	}
	for _, kw := range cfg.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		expr := fmt.Sprintf(`(?i)(?:(?:\w+\s+){0,%d})%s(?:\s+\w+){0,%d}`,
			cfg.WindowBefore, regexp.QuoteMeta(kw), cfg.WindowAfter)
		e.windows = append(e.windows, keywordWindow{keyword: kw, pattern: regexp.MustCompile(expr)})
	}
	return e
}

// Candidates returns the distinct candidate phrases found in the text, in
// order of discovery. Each sentence contributes keyword windows first, then
// its noun phrase chunks.
func (e *Extractor) Candidates(s string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(c string) {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			return
		}
		seen[c] = true
		out = append(out, c)
	}

	for _, sentence := range text.SplitSentences(s) {
		lower := strings.ToLower(sentence)
		for _, w := range e.windows {
			if !strings.Contains(lower, w.keyword) {
				continue
			}
			for _, m := range w.pattern.FindAllString(sentence, -1) {
				add(m)
			}
		}
		for _, p := range e.tagger.Phrases(text.Words(sentence)) {
			add(p)
		}
	}
	return out
}

// Extract returns up to topN symptoms inferred from the text, highest score
// first with ties in vocabulary order. Every candidate maps to at most one
// symptom; a symptom reached by candidates with different scores appears once
// per distinct score.
func (e *Extractor) Extract(s string, topN int) []similarity.Match {
	type pair struct {
		symptom string
		score   float64
	}
	seen := make(map[pair]bool)
	var entries []rank.Entry

	for _, c := range e.Candidates(s) {
		tokens := text.Preprocess(c)
		if e.tooShort(tokens) {
			continue
		}
		m, ok := e.model.BestTokens(tokens)
		if !ok || m.Score < e.cfg.Threshold {
			continue
		}
		p := pair{m.Symptom, m.Score}
		if seen[p] {
			continue
		}
		seen[p] = true
		i, _ := e.vocab.Index(m.Symptom)
		entries = append(entries, rank.Entry{Pos: i, Score: m.Score})
	}

	top := rank.Top(entries, topN)
	if len(top) == 0 {
		return nil
	}
	out := make([]similarity.Match, len(top))
	for k, en := range top {
		out[k] = similarity.Match{Symptom: e.vocab.At(en.Pos), Score: en.Score}
	}
	return out
}

func (e *Extractor) tooShort(tokens []string) bool {
	joined := strings.Join(tokens, " ")
	return len(tokens) < e.cfg.MinTokens && utf8.RuneCountInString(joined) < e.cfg.MinChars
}

// DirectMatches returns every vocabulary symptom that occurs literally in the
// text, case-insensitively, in vocabulary order.
func (e *Extractor) DirectMatches(s string) []string {
	lower := strings.ToLower(s)
	var out []string
	for i := 0; i < e.vocab.Len(); i++ {
		if sym := e.vocab.At(i); strings.Contains(lower, sym) {
			out = append(out, sym)
		}
	}
	return out
}
