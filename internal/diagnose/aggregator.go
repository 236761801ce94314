// Package diagnose ranks diseases against a set of resolved symptoms.
package diagnose

import (
	"github.com/kuandriy/symptom-gate/internal/dataset"
	"github.com/kuandriy/symptom-gate/internal/rank"
)

// Score is a disease with its aggregated score.
type Score struct {
	Disease string  `json:"disease"`
	Score   float64 `json:"score"`
}

// Aggregator scores diseases from symptom→disease associations.
type Aggregator struct {
	ds    *dataset.Dataset
	limit int
}

// New creates an aggregator returning at most limit diseases.
func New(ds *dataset.Dataset, limit int) *Aggregator {
	return &Aggregator{ds: ds, limit: limit}
}

// PossibleDiseases ranks the diseases associated with the given symptoms.
//
// Every association of an input symptom with a disease adds one point plus
// the disease's coverage, the fraction of its recorded symptoms present in the
// input. A disease listed by several dataset rows for the same symptom scores
// once per row, and the coverage bonus is added again for every matching
// input symptom. Results are sorted by score, ties in the order diseases were
// first reached, and truncated to the limit.
func (a *Aggregator) PossibleDiseases(symptoms []string) []Score {
	input := make(map[string]bool, len(symptoms))
	var unique []string
	for _, s := range symptoms {
		if s == "" || input[s] {
			continue
		}
		input[s] = true
		unique = append(unique, s)
	}

	scores := make(map[string]float64)
	var order []string
	for _, s := range unique {
		for _, d := range a.ds.DiseasesWith(s) {
			if _, ok := scores[d]; !ok {
				order = append(order, d)
			}
			scores[d] += 1 + a.coverage(d, input)
		}
	}

	entries := make([]rank.Entry, 0, len(order))
	for i, d := range order {
		if scores[d] > 0 {
			entries = append(entries, rank.Entry{Pos: i, Score: scores[d]})
		}
	}
	top := rank.Top(entries, a.limit)
	if len(top) == 0 {
		return nil
	}
	out := make([]Score, len(top))
	for k, e := range top {
		out[k] = Score{Disease: order[e.Pos], Score: e.Score}
	}
	return out
}

// coverage returns |input ∩ symptoms(d)| / |symptoms(d)|.
func (a *Aggregator) coverage(disease string, input map[string]bool) float64 {
	recorded := a.ds.Symptoms(disease)
	if len(recorded) == 0 {
		return 0
	}
	n := 0
	for _, s := range recorded {
		if input[s] {
			n++
		}
	}
	return float64(n) / float64(len(recorded))
}
