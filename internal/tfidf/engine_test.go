package tfidf

import (
	"math"
	"testing"
)

func TestEngineAddDocument(t *testing.T) {
	e := NewEngine()
	e.AddDocument([]string{"skin", "rash"})
	e.AddDocument([]string{"skin", "peeling"})
	e.AddDocument([]string{"high", "fever"})

	if e.TotalDocs != 3 {
		t.Errorf("TotalDocs = %d, want 3", e.TotalDocs)
	}
	if e.DocFreq["skin"] != 2 {
		t.Errorf("DocFreq[skin] = %d, want 2", e.DocFreq["skin"])
	}
	if e.DocFreq["rash"] != 1 {
		t.Errorf("DocFreq[rash] = %d, want 1", e.DocFreq["rash"])
	}
	if e.Terms() != 5 {
		t.Errorf("Terms = %d, want 5", e.Terms())
	}
}

func TestEngineAddDocumentDeduplicates(t *testing.T) {
	e := NewEngine()
	// Same token repeated in one document should only count once
	e.AddDocument([]string{"pain", "pain", "pain"})

	if e.DocFreq["pain"] != 1 {
		t.Errorf("DocFreq[pain] = %d, want 1 (deduplicated)", e.DocFreq["pain"])
	}
}

func TestEngineSkipsSingleCharacterTokens(t *testing.T) {
	e := NewEngine()
	e.AddDocument([]string{"b", "vitamin"})

	if _, ok := e.DocFreq["b"]; ok {
		t.Error("single character token should not be a term")
	}
	if e.DocFreq["vitamin"] != 1 {
		t.Errorf("DocFreq[vitamin] = %d, want 1", e.DocFreq["vitamin"])
	}
}

func TestFit(t *testing.T) {
	e := Fit([][]string{{"skin", "rash"}, {"itching"}})
	if e.TotalDocs != 2 {
		t.Errorf("TotalDocs = %d, want 2", e.TotalDocs)
	}
	if e.DocFreq["itching"] != 1 {
		t.Errorf("DocFreq[itching] = %d, want 1", e.DocFreq["itching"])
	}
}

func TestEngineIDF(t *testing.T) {
	e := Fit([][]string{{"skin", "rash"}, {"skin", "peeling"}, {"high", "fever"}})

	// "skin" appears in 2/3 docs: ln(4/3) + 1
	if got, want := e.IDF("skin"), math.Log(4.0/3.0)+1; math.Abs(got-want) > 1e-10 {
		t.Errorf("IDF(skin) = %f, want %f", got, want)
	}

	// "rash" appears in 1/3 docs: ln(4/2) + 1
	if got, want := e.IDF("rash"), math.Log(2)+1; math.Abs(got-want) > 1e-10 {
		t.Errorf("IDF(rash) = %f, want %f", got, want)
	}

	if e.IDF("unknown") != 0 {
		t.Error("IDF of unknown term should be 0")
	}
}

func TestEngineVectorizeUnitLength(t *testing.T) {
	e := Fit([][]string{{"skin", "rash"}, {"skin", "peeling"}, {"high", "fever"}})

	v := e.Vectorize("Skin rashes everywhere")
	if v == nil {
		t.Fatal("Vectorize returned nil")
	}
	if math.Abs(v.Norm()-1) > 1e-10 {
		t.Errorf("norm = %f, want 1", v.Norm())
	}
	for _, term := range v {
		if term.Word == "everywhere" {
			t.Error("unknown term should not appear in the vector")
		}
	}
}

func TestEngineVectorizeEmpty(t *testing.T) {
	e := Fit([][]string{{"skin", "rash"}})
	if v := e.Vectorize(""); v != nil {
		t.Errorf("Vectorize empty should be nil, got %v", v)
	}
	if v := e.Vectorize("completely unrelated words"); v != nil {
		t.Errorf("Vectorize unknown terms should be nil, got %v", v)
	}
}

func TestEngineVectorizeRareTermHigher(t *testing.T) {
	e := Fit([][]string{{"pain", "joint"}, {"pain", "chest"}, {"pain", "back"}})

	// "pain" is in all 3 docs (common), "joint" is in 1 doc (rare)
	v := e.VectorizeTokens([]string{"pain", "joint"})

	var painWeight, jointWeight float64
	for _, term := range v {
		switch term.Word {
		case "pain":
			painWeight = term.Weight
		case "joint":
			jointWeight = term.Weight
		}
	}

	if jointWeight <= painWeight {
		t.Errorf("rare term 'joint' (%f) should have higher weight than common term 'pain' (%f)",
			jointWeight, painWeight)
	}
}
