package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sampleCSV = "\ufeffDisease,Symptom_1,Symptom_2,Symptom_3\n" +
	"Fungal infection,itching, skin_rash,\n" +
	"Allergy, continuous_sneezing, shivering, chills\n" +
	"Drug Reaction\n"

func TestReadRows(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	want := []Row{
		{Disease: "Fungal infection", Symptoms: []string{"itching", " skin_rash", ""}},
		{Disease: "Allergy", Symptoms: []string{" continuous_sneezing", " shivering", " chills"}},
		{Disease: "Drug Reaction"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("ReadRows = %#v, want %#v", rows, want)
	}
}

func TestReadRowsWithoutSymptomHeaders(t *testing.T) {
	rows, err := ReadRows(strings.NewReader("name,a,b\nFlu,fever,cough\n"))
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	want := []Row{{Disease: "Flu", Symptoms: []string{"fever", "cough"}}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("ReadRows = %#v, want %#v", rows, want)
	}
}

func TestReadRowsEmpty(t *testing.T) {
	if _, err := ReadRows(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Rows() != 3 {
		t.Errorf("Rows = %d, want 3", d.Rows())
	}
	if !d.Vocabulary.Contains("skin rash") {
		t.Error("skin rash should be in the vocabulary")
	}
	if got := d.Symptoms("Drug Reaction"); len(got) != 0 {
		t.Errorf("Symptoms(Drug Reaction) = %v, want empty", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load missing file: err = %v, want ErrNotFound", err)
	}
}

func TestReadDescriptions(t *testing.T) {
	in := "Disease,Description\n" +
		"Malaria,\"A disease caused by a plasmodium parasite, transmitted by mosquitoes.\"\n" +
		"Allergy,An immune reaction.\n"
	d, err := ReadDescriptions(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadDescriptions: %v", err)
	}
	if d.Len() != 2 {
		t.Errorf("Len = %d, want 2", d.Len())
	}

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"Malaria", "A disease caused by a plasmodium parasite, transmitted by mosquitoes.", true},
		{"allergy", "An immune reaction.", true},
		{"Flu", "", false},
	}
	for _, tt := range tests {
		got, ok := d.Lookup(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Lookup(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDescriptionsNil(t *testing.T) {
	var d *Descriptions
	if _, ok := d.Lookup("Malaria"); ok {
		t.Error("nil Descriptions should find nothing")
	}
	if d.Len() != 0 {
		t.Error("nil Descriptions should be empty")
	}
}
