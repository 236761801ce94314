package persist

import (
	"os"
	"path/filepath"
	"testing"
)

type report struct {
	Text     string   `json:"text"`
	Symptoms []string `json:"symptoms"`
	Limit    int      `json:"limit"`
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	original := report{Text: "high fever", Symptoms: []string{"high fever"}, Limit: 8}
	if err := SaveAtomic(path, original); err != nil {
		t.Fatalf("SaveAtomic failed: %v", err)
	}

	var loaded report
	if err := Load(path, &loaded); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Text != original.Text || loaded.Limit != original.Limit || len(loaded.Symptoms) != 1 {
		t.Errorf("loaded = %+v, want %+v", loaded, original)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "report.json")

	if err := SaveAtomic(path, report{Text: "test"}); err != nil {
		t.Fatalf("SaveAtomic with nested dirs failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file should exist after save: %v", err)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")

	for i := 0; i < 3; i++ {
		if err := SaveAtomic(path, report{Limit: i}); err != nil {
			t.Fatalf("SaveAtomic: %v", err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "report.json" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory = %v, want only report.json", names)
	}
}

func TestSaveUnencodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := SaveAtomic(path, map[string]any{"f": func() {}}); err == nil {
		t.Error("expected encode error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("failed save should not create the file")
	}
}

func TestLoadMissingFile(t *testing.T) {
	data := report{Limit: 5}
	if err := Load(filepath.Join(t.TempDir(), "missing.json"), &data); err != nil {
		t.Errorf("Load of missing file should not error, got: %v", err)
	}
	if data.Limit != 5 {
		t.Error("data should be untouched when file is missing")
	}
}

func TestLoadKeepsAbsentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"text": "chills"}`), 0644); err != nil {
		t.Fatal(err)
	}

	data := report{Limit: 7}
	if err := Load(path, &data); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if data.Text != "chills" || data.Limit != 7 {
		t.Errorf("data = %+v, want text overridden and limit kept", data)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	var data report
	if err := Load(path, &data); err == nil {
		t.Error("Load of corrupt file should return error")
	}
}
