package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Descriptions maps disease names to free-text descriptions. It is pure
// presentation data and never takes part in scoring.
type Descriptions struct {
	byName  map[string]string
	byLower map[string]string
}

// NewDescriptions builds a lookup from name/description pairs.
func NewDescriptions(pairs map[string]string) *Descriptions {
	d := &Descriptions{
		byName:  make(map[string]string, len(pairs)),
		byLower: make(map[string]string, len(pairs)),
	}
	for name, desc := range pairs {
		d.byName[name] = desc
		d.byLower[strings.ToLower(name)] = desc
	}
	return d
}

// Lookup returns the description of a disease. An exact name match wins over
// a case-insensitive one. A nil receiver has no descriptions.
func (d *Descriptions) Lookup(disease string) (string, bool) {
	if d == nil {
		return "", false
	}
	if desc, ok := d.byName[disease]; ok {
		return desc, true
	}
	desc, ok := d.byLower[strings.ToLower(strings.TrimSpace(disease))]
	return desc, ok
}

// Len returns the number of described diseases.
func (d *Descriptions) Len() int {
	if d == nil {
		return 0
	}
	return len(d.byName)
}

// LoadDescriptions reads a disease/description CSV file.
func LoadDescriptions(path string) (*Descriptions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	d, err := ReadDescriptions(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return d, nil
}

// ReadDescriptions parses CSV with a header row. The "Disease" and
// "Description" columns are located by name, falling back to the first two
// columns. A later row for the same disease replaces an earlier one.
func ReadDescriptions(r io.Reader) (*Descriptions, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	pairs := make(map[string]string)
	if len(records) == 0 {
		return NewDescriptions(pairs), nil
	}

	header := make([]string, len(records[0]))
	for i, cell := range records[0] {
		header[i] = cleanCell(cell)
	}
	nameCol := findColumn(header, "disease")
	if nameCol < 0 {
		nameCol = 0
	}
	descCol := findColumn(header, "description")
	if descCol < 0 {
		descCol = 1
	}

	for _, rec := range records[1:] {
		if nameCol >= len(rec) || descCol >= len(rec) {
			continue
		}
		name := cleanCell(rec[nameCol])
		if name == "" {
			continue
		}
		pairs[name] = cleanCell(rec[descCol])
	}
	return NewDescriptions(pairs), nil
}
