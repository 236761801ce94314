package dataset

import (
	"reflect"
	"testing"
)

func sampleRows() []Row {
	return []Row{
		{Disease: "Fungal infection", Symptoms: []string{"itching", " skin_rash", "nodal_skin_eruptions", ""}},
		{Disease: "Allergy", Symptoms: []string{" continuous_sneezing", " shivering", " chills"}},
		{Disease: "Malaria", Symptoms: []string{" chills", " high_fever", "Sweating"}},
	}
}

func TestBuildVocabulary(t *testing.T) {
	d := Build(sampleRows())

	want := []string{
		"chills", "continuous sneezing", "high fever", "itching",
		"nodal skin eruptions", "shivering", "skin rash", "sweating",
	}
	if got := d.Vocabulary.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("vocabulary = %v, want %v", got, want)
	}
	for i, s := range want {
		idx, ok := d.Vocabulary.Index(s)
		if !ok || idx != i {
			t.Errorf("Index(%q) = %d, %v; want %d", s, idx, ok, i)
		}
		if d.Vocabulary.At(i) != s {
			t.Errorf("At(%d) = %q, want %q", i, d.Vocabulary.At(i), s)
		}
	}
	if _, ok := d.Vocabulary.Index("fever"); ok {
		t.Error("fever should not be in the vocabulary")
	}
}

func TestBuildAssociations(t *testing.T) {
	d := Build(sampleRows())

	if got, want := d.Diseases(), []string{"Fungal infection", "Allergy", "Malaria"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Diseases = %v, want %v", got, want)
	}
	if got, want := d.Symptoms("Malaria"), []string{"chills", "high fever", "sweating"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Symptoms(Malaria) = %v, want %v", got, want)
	}
	if got, want := d.DiseasesWith("chills"), []string{"Allergy", "Malaria"}; !reflect.DeepEqual(got, want) {
		t.Errorf("DiseasesWith(chills) = %v, want %v", got, want)
	}
	if d.Rows() != 3 {
		t.Errorf("Rows = %d, want 3", d.Rows())
	}
}

func TestBuildDuplicateRowsAccumulate(t *testing.T) {
	d := Build([]Row{
		{Disease: "Flu", Symptoms: []string{"fever", "cough"}},
		{Disease: "Flu", Symptoms: []string{"fever", "headache"}},
	})

	if got, want := d.Diseases(), []string{"Flu"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Diseases = %v, want %v", got, want)
	}
	if got, want := d.Symptoms("Flu"), []string{"fever", "cough", "headache"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Symptoms(Flu) = %v, want %v", got, want)
	}
	// One entry per row occurrence
	if got, want := d.DiseasesWith("fever"), []string{"Flu", "Flu"}; !reflect.DeepEqual(got, want) {
		t.Errorf("DiseasesWith(fever) = %v, want %v", got, want)
	}
}

func TestBuildEmptyRows(t *testing.T) {
	d := Build([]Row{
		{Disease: "Unknown", Symptoms: []string{"", "  "}},
		{Disease: "", Symptoms: []string{"fever"}},
	})

	if got := d.Symptoms("Unknown"); got == nil || len(got) != 0 {
		t.Errorf("Symptoms(Unknown) = %v, want empty non-nil list", got)
	}
	if d.Vocabulary.Len() != 0 {
		t.Errorf("rows without a disease should not contribute symptoms, got %v", d.Vocabulary.List())
	}
	if d.Rows() != 1 {
		t.Errorf("Rows = %d, want 1", d.Rows())
	}
}

func TestVocabularyWithPrefix(t *testing.T) {
	v := NewVocabulary([]string{"skin rash", "skin peeling", "sweating", "itching", "skin rash"})

	tests := []struct {
		prefix string
		want   []string
	}{
		{"skin", []string{"skin peeling", "skin rash"}},
		{"s", []string{"skin peeling", "skin rash", "sweating"}},
		{"x", nil},
		{"", []string{"itching", "skin peeling", "skin rash", "sweating"}},
	}
	for _, tt := range tests {
		if got := v.WithPrefix(tt.prefix); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("WithPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestVocabularyPositions(t *testing.T) {
	v := NewVocabulary([]string{"cough", "fever", "headache"})
	got := v.Positions([]string{"headache", "unknown", "cough", "headache"})
	if want := []int{2, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("Positions = %v, want %v", got, want)
	}
}
