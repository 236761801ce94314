// Package dataset turns disease/symptom rows into the canonical vocabulary
// and the disease↔symptom associations every index is built from.
package dataset

import (
	"github.com/kuandriy/symptom-gate/internal/text"
)

// Row is one parsed record: a disease name and its raw symptom cells. Cells
// may be empty.
type Row struct {
	Disease  string
	Symptoms []string
}

// Dataset holds the associations built once from the source rows. It is
// read-only after Build.
type Dataset struct {
	Vocabulary *Vocabulary

	diseases   []string
	symptomsOf map[string][]string
	diseasesOf map[string][]string
	rows       int
}

// Build normalizes every symptom cell and builds the vocabulary and both
// association directions.
//
// Repeated rows for the same disease accumulate: the disease's symptom list
// is the union of its rows in order of first appearance. The symptom→disease
// association keeps one entry per row, so a disease documented by several rows
// is listed once per row. Rows without a disease name are skipped; rows with
// no symptoms keep the disease with an empty list.
func Build(rows []Row) *Dataset {
	d := &Dataset{
		symptomsOf: make(map[string][]string),
		diseasesOf: make(map[string][]string),
	}
	var all []string
	for _, r := range rows {
		if r.Disease == "" {
			continue
		}
		d.rows++
		known, ok := d.symptomsOf[r.Disease]
		if !ok {
			d.diseases = append(d.diseases, r.Disease)
			known = []string{}
		}
		inRow := make(map[string]bool, len(r.Symptoms))
		for _, cell := range r.Symptoms {
			s := text.Canonical(cell)
			if s == "" || inRow[s] {
				continue
			}
			inRow[s] = true
			all = append(all, s)
			d.diseasesOf[s] = append(d.diseasesOf[s], r.Disease)
			if !contains(known, s) {
				known = append(known, s)
			}
		}
		d.symptomsOf[r.Disease] = known
	}
	d.Vocabulary = NewVocabulary(all)
	return d
}

// Diseases returns disease names in order of first appearance.
func (d *Dataset) Diseases() []string {
	out := make([]string, len(d.diseases))
	copy(out, d.diseases)
	return out
}

// Symptoms returns the canonical symptoms recorded for a disease.
func (d *Dataset) Symptoms(disease string) []string {
	return d.symptomsOf[disease]
}

// DiseasesWith returns the diseases associated with a symptom, one entry per
// dataset row that lists it.
func (d *Dataset) DiseasesWith(symptom string) []string {
	return d.diseasesOf[symptom]
}

// Rows returns the number of rows that contributed to the dataset.
func (d *Dataset) Rows() int { return d.rows }

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
