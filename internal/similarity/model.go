// Package similarity places every symptom name in a shared TF-IDF space and
// answers "which symptoms read like these", independent of co-occurrence.
package similarity

import (
	"github.com/kuandriy/symptom-gate/internal/dataset"
	"github.com/kuandriy/symptom-gate/internal/rank"
	"github.com/kuandriy/symptom-gate/internal/text"
	"github.com/kuandriy/symptom-gate/internal/tfidf"
)

// Match is a symptom with its cosine similarity to a query.
type Match struct {
	Symptom string  `json:"symptom"`
	Score   float64 `json:"score"`
}

// Model holds one fixed vector per vocabulary symptom. The space is fit once
// over the preprocessed symptom names and never refit.
type Model struct {
	vocab   *dataset.Vocabulary
	engine  *tfidf.Engine
	vectors []tfidf.Vector
}

// New fits the space over the vocabulary.
func New(vocab *dataset.Vocabulary) *Model {
	docs := make([][]string, vocab.Len())
	for i := range docs {
		docs[i] = text.Preprocess(vocab.At(i))
	}
	e := tfidf.Fit(docs)
	vectors := make([]tfidf.Vector, len(docs))
	for i, d := range docs {
		vectors[i] = e.VectorizeTokens(d)
	}
	return &Model{vocab: vocab, engine: e, vectors: vectors}
}

// Terms returns the dimensionality of the space.
func (m *Model) Terms() int { return m.engine.Terms() }

// Space returns the fitted TF-IDF engine.
func (m *Model) Space() *tfidf.Engine { return m.engine }

// Vector returns the fixed vector of the symptom at position i.
func (m *Model) Vector(i int) tfidf.Vector { return m.vectors[i] }

// Similar returns up to topN symptoms closest to the given set. Several
// inputs are combined by summing their vectors without renormalizing.
// Unknown inputs are dropped, inputs never match themselves, and only
// positive similarities are returned, highest first with ties in vocabulary
// order.
func (m *Model) Similar(symptoms []string, topN int) []Match {
	pos := m.vocab.Positions(symptoms)
	if len(pos) == 0 {
		return nil
	}
	vs := make([]tfidf.Vector, len(pos))
	for k, i := range pos {
		vs[k] = m.vectors[i]
	}
	scores := m.scores(tfidf.Sum(vs...))
	for _, i := range pos {
		scores[i] = 0
	}
	return m.matches(rank.Positive(scores, topN))
}

// Best projects a free-text phrase into the space and returns the closest
// symptom. The first symptom in vocabulary order wins a tie. ok is false when
// the phrase shares no term with any symptom.
func (m *Model) Best(phrase string) (Match, bool) {
	return m.BestTokens(text.Preprocess(phrase))
}

// BestTokens is Best for an already preprocessed phrase.
func (m *Model) BestTokens(tokens []string) (best Match, ok bool) {
	q := m.engine.VectorizeTokens(tokens)
	if q == nil {
		return Match{}, false
	}
	bestPos := -1
	for i, v := range m.vectors {
		if s := tfidf.CosineSimilarity(q, v); s > best.Score {
			best.Score = s
			bestPos = i
		}
	}
	if bestPos < 0 {
		return Match{}, false
	}
	best.Symptom = m.vocab.At(bestPos)
	best.Score = clamp(best.Score)
	return best, true
}

func (m *Model) scores(q tfidf.Vector) []float64 {
	out := make([]float64, len(m.vectors))
	for i, v := range m.vectors {
		out[i] = tfidf.CosineSimilarity(q, v)
	}
	return out
}

func (m *Model) matches(top []rank.Entry) []Match {
	if len(top) == 0 {
		return nil
	}
	out := make([]Match, len(top))
	for k, e := range top {
		out[k] = Match{Symptom: m.vocab.At(e.Pos), Score: clamp(e.Score)}
	}
	return out
}

// clamp absorbs floating point overshoot above 1.
func clamp(s float64) float64 {
	if s > 1 {
		return 1
	}
	return s
}
