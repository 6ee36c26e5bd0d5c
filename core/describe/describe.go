package describe

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"checkatron/core/schema"
)

// Record is one row of a schema listing.
type Record struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ErrMissingHeader is returned when a listing has no "name" column.
var ErrMissingHeader = errors.New("listing header must contain a \"name\" column")

// Parse reads a CSV listing. The header is matched case-insensitively; "type" is
// optional so key listings may only carry names. Rows with a blank name are skipped.
func Parse(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read listing header: %w", err)
	}

	nameIdx, typeIdx := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))) {
		case "name":
			nameIdx = i
		case "type":
			typeIdx = i
		}
	}
	if nameIdx < 0 {
		return nil, ErrMissingHeader
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read listing line %d: %w", line, err)
		}
		if nameIdx >= len(row) || strings.TrimSpace(row[nameIdx]) == "" {
			continue
		}

		rec := Record{Name: strings.TrimSpace(row[nameIdx])}
		if typeIdx >= 0 && typeIdx < len(row) {
			rec.Type = strings.TrimSpace(row[typeIdx])
		}
		records = append(records, rec)
	}

	return records, nil
}

// Columns converts listing records into schema columns, inferring kinds.
func Columns(records []Record) []schema.Column {
	out := make([]schema.Column, len(records))
	for i, r := range records {
		out[i] = schema.NewColumn(r.Name, r.Type)
	}
	return out
}

// Names returns the record names in order. Used for key listings.
func Names(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}
