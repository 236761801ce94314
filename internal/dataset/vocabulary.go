package dataset

import (
	"strings"

	"github.com/google/btree"
)

// Vocabulary is the deduplicated, lexicographically sorted symptom set. A
// symptom's position in the sorted order is its canonical index, shared by
// the co-occurrence matrix and the vector space.
type Vocabulary struct {
	tree    *btree.BTreeG[string]
	symbols []string
	index   map[string]int
}

// NewVocabulary builds a vocabulary from canonical symptom strings.
// Duplicates and empty strings are ignored.
func NewVocabulary(symptoms []string) *Vocabulary {
	tree := btree.NewG(8, func(a, b string) bool { return a < b })
	for _, s := range symptoms {
		if s != "" {
			tree.ReplaceOrInsert(s)
		}
	}
	v := &Vocabulary{
		tree:    tree,
		symbols: make([]string, 0, tree.Len()),
		index:   make(map[string]int, tree.Len()),
	}
	tree.Ascend(func(s string) bool {
		v.index[s] = len(v.symbols)
		v.symbols = append(v.symbols, s)
		return true
	})
	return v
}

// Len returns the number of symptoms.
func (v *Vocabulary) Len() int { return len(v.symbols) }

// At returns the symptom at position i.
func (v *Vocabulary) At(i int) string { return v.symbols[i] }

// Index returns the canonical position of a symptom.
func (v *Vocabulary) Index(symptom string) (int, bool) {
	i, ok := v.index[symptom]
	return i, ok
}

// Contains reports whether the symptom is in the vocabulary.
func (v *Vocabulary) Contains(symptom string) bool {
	_, ok := v.index[symptom]
	return ok
}

// List returns a copy of the sorted symptom sequence.
func (v *Vocabulary) List() []string {
	out := make([]string, len(v.symbols))
	copy(out, v.symbols)
	return out
}

// WithPrefix returns the symptoms starting with prefix, in vocabulary order.
func (v *Vocabulary) WithPrefix(prefix string) []string {
	if prefix == "" {
		return v.List()
	}
	var out []string
	v.tree.AscendGreaterOrEqual(prefix, func(s string) bool {
		if !strings.HasPrefix(s, prefix) {
			return false
		}
		out = append(out, s)
		return true
	})
	return out
}

// Positions maps symptoms to positions, silently dropping unknown ones and
// repeats. Order follows the input.
func (v *Vocabulary) Positions(symptoms []string) []int {
	out := make([]int, 0, len(symptoms))
	seen := make(map[int]bool, len(symptoms))
	for _, s := range symptoms {
		i, ok := v.index[s]
		if !ok || seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, i)
	}
	return out
}
