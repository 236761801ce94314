// Package cooccur counts how often two symptoms are recorded for the same
// disease and answers "what usually comes with these symptoms".
package cooccur

import (
	"github.com/kuandriy/symptom-gate/internal/dataset"
	"github.com/kuandriy/symptom-gate/internal/rank"
)

// Relation is a co-occurring symptom with its summed count.
type Relation struct {
	Symptom string
	Count   int
}

// Matrix is a dense symptom×symptom count matrix, index-aligned with the
// vocabulary. Counts[i][j] is the number of disease records containing both
// symptoms i and j. It is symmetric with a zero diagonal.
type Matrix struct {
	vocab  *dataset.Vocabulary
	counts [][]int
}

// Build counts co-occurrences over every disease's symptom list.
func Build(d *dataset.Dataset) *Matrix {
	n := d.Vocabulary.Len()
	m := &Matrix{
		vocab:  d.Vocabulary,
		counts: make([][]int, n),
	}
	for i := range m.counts {
		m.counts[i] = make([]int, n)
	}
	for _, disease := range d.Diseases() {
		m.record(d.Symptoms(disease))
	}
	return m
}

// record increments every ordered pair of distinct symptoms in the list.
func (m *Matrix) record(symptoms []string) {
	pos := m.vocab.Positions(symptoms)
	for _, i := range pos {
		for _, j := range pos {
			if i != j {
				m.counts[i][j]++
			}
		}
	}
}

// Size returns the matrix dimension.
func (m *Matrix) Size() int { return len(m.counts) }

// At returns the count for positions i and j.
func (m *Matrix) At(i, j int) int { return m.counts[i][j] }

// Related returns up to topN symptoms co-occurring with the given set, highest
// summed count first, ties in vocabulary order. Unknown symptoms are dropped;
// input symptoms and zero counts never appear in the result.
func (m *Matrix) Related(symptoms []string, topN int) []Relation {
	pos := m.vocab.Positions(symptoms)
	if len(pos) == 0 {
		return nil
	}
	scores := make([]float64, m.Size())
	for _, i := range pos {
		for j, c := range m.counts[i] {
			scores[j] += float64(c)
		}
	}
	for _, i := range pos {
		scores[i] = 0
	}

	top := rank.Positive(scores, topN)
	out := make([]Relation, len(top))
	for k, e := range top {
		out[k] = Relation{Symptom: m.vocab.At(e.Pos), Count: int(e.Score)}
	}
	return out
}

// Names returns the symptom names of relations in order.
func Names(rs []Relation) []string {
	if len(rs) == 0 {
		return nil
	}
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Symptom
	}
	return out
}
