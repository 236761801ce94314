package tfidf

import (
	"math"

	"github.com/kuandriy/symptom-gate/internal/text"
)

// Engine is a TF-IDF model fit once over a fixed corpus. Document frequencies
// are collected by AddDocument during the fit; afterwards the engine is only
// read, and query text is projected into the same term space without
// refitting.
type Engine struct {
	DocFreq   map[string]int `json:"docFreq"`
	TotalDocs int            `json:"totalDocs"`
}

// NewEngine creates an empty TF-IDF engine.
func NewEngine() *Engine {
	return &Engine{
		DocFreq: make(map[string]int),
	}
}

// Fit builds an engine over the given preprocessed documents.
func Fit(docs [][]string) *Engine {
	e := NewEngine()
	for _, d := range docs {
		e.AddDocument(d)
	}
	return e
}

// AddDocument updates document frequency counts for a new document's tokens.
// Each unique indexable token increments its DF by 1.
func (e *Engine) AddDocument(tokens []string) {
	seen := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		if !indexable(t) || seen[t] {
			continue
		}
		e.DocFreq[t]++
		seen[t] = true
	}
	e.TotalDocs++
}

// Terms returns the number of distinct terms in the space.
func (e *Engine) Terms() int {
	return len(e.DocFreq)
}

// IDF computes the inverse document frequency for a term.
// Uses the smoothed formula: ln((1 + totalDocs) / (1 + df)) + 1.
// Returns 0 for terms outside the fitted vocabulary.
func (e *Engine) IDF(term string) float64 {
	df := e.DocFreq[term]
	if df == 0 {
		return 0
	}
	return math.Log(float64(1+e.TotalDocs)/float64(1+df)) + 1
}

// Vectorize preprocesses raw text and projects it into the space.
func (e *Engine) Vectorize(rawText string) Vector {
	return e.VectorizeTokens(text.Preprocess(rawText))
}

// VectorizeTokens converts preprocessed tokens into an L2-normalized TF-IDF
// Vector. Terms unknown to the fitted vocabulary contribute nothing; a text
// made only of unknown terms yields a nil vector.
func (e *Engine) VectorizeTokens(tokens []string) Vector {
	if len(tokens) == 0 {
		return nil
	}
	counts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if indexable(t) {
			counts = append(counts, t)
		}
	}
	tf := text.TermCounts(counts)
	weights := make(map[string]float64, len(tf))
	for term, freq := range tf {
		idf := e.IDF(term)
		if idf > 0 {
			weights[term] = freq * idf
		}
	}
	return NewVector(weights).Normalize()
}

// indexable mirrors the usual word token pattern: single-character tokens
// are not terms.
func indexable(token string) bool {
	return len([]rune(token)) >= 2
}
