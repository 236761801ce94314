package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/kuandriy/symptom-gate/internal/config"
	"github.com/kuandriy/symptom-gate/internal/engine"
	"github.com/kuandriy/symptom-gate/internal/tfidf"
)

// inspectReport is the JSON shape of the inspect command.
type inspectReport struct {
	Config   config.Config `json:"config"`
	Stats    engine.Stats  `json:"stats"`
	Diseases []string      `json:"diseases"`
	TopTerms []termDF      `json:"topTerms"`
}

// ---------------------------------------------------------------------------
// handleInspect: configuration and model dump
// ---------------------------------------------------------------------------

// handleInspect prints the effective configuration, dataset sizes, the
// disease list and the most common terms in symptom names. It is the quickest
// way to confirm a dataset was parsed the way it was meant to be.
func handleInspect(w io.Writer, e *engine.Engine, opts options) error {
	report := inspectReport{
		Config:   e.Config(),
		Stats:    e.Stats(),
		Diseases: e.Diseases(),
		TopTerms: topTermsByDF(e.TermSpace(), 20),
	}
	if more, err := emit(w, report, opts); !more || err != nil {
		return err
	}
	return inspectText(w, report)
}

// ---------------------------------------------------------------------------
// Text formatter
// ---------------------------------------------------------------------------

func inspectText(w io.Writer, r inspectReport) error {
	cfg := r.Config

	fmt.Fprintln(w, "=== Symptom Gate Inspect ===")
	fmt.Fprintln(w)

	// --- Config ---
	fmt.Fprintln(w, "--- Config ---")
	fmt.Fprintf(w, "  dataset.symptoms:     %s\n", cfg.Dataset.Symptoms)
	fmt.Fprintf(w, "  dataset.descriptions: %s\n", cfg.Dataset.Descriptions)
	fmt.Fprintf(w, "  similarity.threshold: %.3f\n", cfg.Similarity.Threshold)
	fmt.Fprintf(w, "  limits.related:       %d\n", cfg.Limits.Related)
	fmt.Fprintf(w, "  limits.similar:       %d\n", cfg.Limits.Similar)
	fmt.Fprintf(w, "  limits.extract:       %d\n", cfg.Limits.Extract)
	fmt.Fprintf(w, "  limits.diseases:      %d\n", cfg.Limits.Diseases)
	fmt.Fprintf(w, "  extract.window:       %d before, %d after\n",
		cfg.Extract.WindowBefore, cfg.Extract.WindowAfter)
	fmt.Fprintf(w, "  extract.keywords:     %d\n", len(cfg.Extract.Keywords))
	fmt.Fprintln(w)

	// --- Dataset ---
	s := r.Stats
	fmt.Fprintf(w, "--- Dataset: %d rows, %d diseases, %d symptoms, %d descriptions ---\n",
		s.Rows, s.Diseases, s.Symptoms, s.Descriptions)
	for _, d := range r.Diseases {
		fmt.Fprintf(w, "  %s\n", d)
	}
	fmt.Fprintln(w)

	// --- TF-IDF ---
	fmt.Fprintf(w, "--- TF-IDF: %d unique terms ---\n", s.Terms)
	if len(r.TopTerms) > 0 {
		fmt.Fprintf(w, "  Top %d by document frequency:\n", len(r.TopTerms))
		for _, t := range r.TopTerms {
			fmt.Fprintf(w, "    %-20s df=%d\n", t.Term, t.DF)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type termDF struct {
	Term string `json:"term"`
	DF   int    `json:"df"`
}

// topTermsByDF returns the n terms that occur in the most symptom names,
// ties broken alphabetically.
func topTermsByDF(e *tfidf.Engine, n int) []termDF {
	terms := make([]termDF, 0, len(e.DocFreq))
	for t, df := range e.DocFreq {
		terms = append(terms, termDF{t, df})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].DF != terms[j].DF {
			return terms[i].DF > terms[j].DF
		}
		return terms[i].Term < terms[j].Term
	})
	if n > len(terms) {
		n = len(terms)
	}
	return terms[:n]
}
