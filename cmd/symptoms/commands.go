package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/kuandriy/symptom-gate/internal/engine"
	"github.com/kuandriy/symptom-gate/internal/persist"
)

var errNoSymptoms = errors.New("at least one symptom is required")

// emit prints v as JSON when requested and saves it to the --out file.
// It reports whether the text formatter should still run.
func emit(w io.Writer, v any, opts options) (bool, error) {
	if opts.outFile != "" {
		if err := persist.SaveAtomic(opts.outFile, v); err != nil {
			return false, fmt.Errorf("save %s: %w", opts.outFile, err)
		}
	}
	if !opts.asJSON {
		return true, nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return false, enc.Encode(v)
}

func handleAnalyze(w io.Writer, e *engine.Engine, text string, opts options) error {
	if engine.IsBlank(text) {
		return errors.New("no text provided")
	}
	a := e.Analyze(text)
	if more, err := emit(w, a, opts); !more || err != nil {
		return err
	}

	fmt.Fprintln(w, "Extracted symptoms:")
	if len(a.Findings) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, f := range a.Findings {
		marker := ""
		if f.IsDirectMatch {
			marker = "  [direct]"
		}
		fmt.Fprintf(w, "  %-30s %.3f%s\n", f.Symptom, f.Confidence, marker)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Possible diseases:")
	if len(a.Diseases) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for i, d := range a.Diseases {
		fmt.Fprintf(w, "  %d. %-30s %.3f\n", i+1, d.Disease, d.Score)
		if d.Description != "" {
			fmt.Fprintf(w, "     %s\n", truncate(d.Description, 100))
		}
	}
	return nil
}

func handleRelated(w io.Writer, e *engine.Engine, symptoms []string, opts options) error {
	if len(symptoms) == 0 {
		return errNoSymptoms
	}
	r := e.Related(symptoms)
	if more, err := emit(w, r, opts); !more || err != nil {
		return err
	}

	fmt.Fprintf(w, "Symptoms: %v\n\n", r.Symptoms)
	fmt.Fprintln(w, "Co-occurring:")
	if len(r.Cooccurrence) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, s := range r.Cooccurrence {
		fmt.Fprintf(w, "  %s\n", s)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Semantically similar:")
	if len(r.Semantic) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, m := range r.Semantic {
		fmt.Fprintf(w, "  %-30s %.3f\n", m.Symptom, m.Score)
	}
	return nil
}

func handleSimilar(w io.Writer, e *engine.Engine, symptoms []string, opts options) error {
	if len(symptoms) == 0 {
		return errNoSymptoms
	}
	matches := e.SimilarSymptoms(symptoms, 0)
	if more, err := emit(w, matches, opts); !more || err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(w, "(no similar symptoms)")
	}
	for _, m := range matches {
		fmt.Fprintf(w, "%-30s %.3f\n", m.Symptom, m.Score)
	}
	return nil
}

func handleDiagnose(w io.Writer, e *engine.Engine, symptoms []string, opts options) error {
	if len(symptoms) == 0 {
		return errNoSymptoms
	}
	scores := e.PossibleDiseases(symptoms)
	if more, err := emit(w, scores, opts); !more || err != nil {
		return err
	}
	if len(scores) == 0 {
		fmt.Fprintln(w, "(no matching diseases)")
	}
	for i, s := range scores {
		fmt.Fprintf(w, "%d. %-30s %.3f\n", i+1, s.Disease, s.Score)
	}
	return nil
}

func handleList(w io.Writer, e *engine.Engine, args []string, opts options) error {
	var list []string
	if len(args) > 0 {
		list = e.SymptomsWithPrefix(args[0])
	} else {
		list = e.ListSymptoms()
	}
	if more, err := emit(w, list, opts); !more || err != nil {
		return err
	}
	for _, s := range list {
		fmt.Fprintln(w, s)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
