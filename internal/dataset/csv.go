package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when the symptom dataset file does not exist.
// Nothing can be served without it.
var ErrNotFound = errors.New("dataset not found")

// Load reads a disease/symptom CSV file and builds the dataset.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return Build(rows), nil
}

// ReadRows parses CSV with a header row. The disease column is the one named
// "Disease" (first column otherwise); symptom columns are those whose header
// starts with "Symptom", or every other column when none does.
func ReadRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("empty dataset")
	}

	header := make([]string, len(records[0]))
	for i, cell := range records[0] {
		header[i] = cleanCell(cell)
	}
	diseaseCol := findColumn(header, "disease")
	if diseaseCol < 0 {
		diseaseCol = 0
	}
	var symptomCols []int
	for i, h := range header {
		if i != diseaseCol && strings.HasPrefix(strings.ToLower(h), "symptom") {
			symptomCols = append(symptomCols, i)
		}
	}
	if len(symptomCols) == 0 {
		for i := range header {
			if i != diseaseCol {
				symptomCols = append(symptomCols, i)
			}
		}
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if diseaseCol >= len(rec) {
			continue
		}
		disease := cleanCell(rec[diseaseCol])
		if disease == "" {
			continue
		}
		row := Row{Disease: disease}
		for _, col := range symptomCols {
			if col < len(rec) {
				row.Symptoms = append(row.Symptoms, rec[col])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "\ufeff")
	return v
}

func findColumn(header []string, name string) int {
	for i, col := range header {
		if strings.EqualFold(col, name) {
			return i
		}
	}
	return -1
}
