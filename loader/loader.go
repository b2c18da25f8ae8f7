package loader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"go-sentiment/dataset"
)

// Error taxonomy for loading. Callers match with errors.Is.
var (
	ErrFileNotFound = errors.New("file not found")
	ErrEmptyData    = errors.New("empty CSV file")
	ErrParse        = errors.New("could not parse CSV")
)

// LoadData reads a sentiment dataset from a CSV file. The first line
// is the header; every record must have the same number of fields.
// Unnamed index columns (empty header cells or pandas-style
// "Unnamed: 0" leftovers from previous saves) are dropped.
//
// A header-only file yields a valid zero-row Dataset. A missing file
// wraps ErrFileNotFound, an empty file ErrEmptyData, and malformed
// content ErrParse.
func LoadData(path string) (dataset.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return dataset.Dataset{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return dataset.Dataset{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	records, err := reader.ReadAll()
	if err != nil {
		return dataset.Dataset{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(records) == 0 {
		return dataset.Dataset{}, fmt.Errorf("%w: %s", ErrEmptyData, path)
	}

	records, dropped := dropUnnamedColumns(records)
	if len(dropped) > 0 {
		log.Printf("Dropped %d unnamed columns: %v", len(dropped), dropped)
	}

	ds, err := dataset.FromRecords(records)
	if err != nil {
		return dataset.Dataset{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	log.Printf("Dataset loaded successfully with shape: (%d, %d)", ds.Nrow(), ds.Ncol())
	return ds, nil
}

// dropUnnamedColumns removes columns whose header cell is empty or
// contains the pandas "Unnamed" artifact anywhere in the name.
// Returns the filtered records and the positions that were dropped.
func dropUnnamedColumns(records [][]string) ([][]string, []int) {
	header := records[0]
	keep := make([]bool, len(header))
	var dropped []int
	for i, name := range header {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" || strings.Contains(trimmed, "Unnamed") {
			dropped = append(dropped, i)
			continue
		}
		keep[i] = true
	}
	if len(dropped) == 0 {
		return records, nil
	}

	out := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, 0, len(rec)-len(dropped))
		for i, v := range rec {
			if i < len(keep) && keep[i] {
				row = append(row, v)
			}
		}
		out = append(out, row)
	}
	return out, dropped
}
