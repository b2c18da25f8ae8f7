package cleaner

import (
	"log"
	"strconv"
	"strings"

	"github.com/go-gota/gota/series"

	"go-sentiment/dataset"
	"go-sentiment/types"
)

// defaultCategoricalColumns are the columns trimmed when the caller
// does not name any, matching the dataset's usual schema.
var defaultCategoricalColumns = []string{
	types.PlatformColumn,
	types.SentimentColumn,
	types.CountryColumn,
}

// missing markers treated as absent values.
func isMissing(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "NA", "NaN":
		return true
	}
	return false
}

// CleanData runs the standard cleaning pipeline: trim categorical
// columns, drop exact duplicates (first occurrence kept), and drop
// rows missing a sentiment label. The quality report is logged; use
// CleanDataWithOptions to get it back.
func CleanData(ds dataset.Dataset) (dataset.Dataset, error) {
	clean, _, err := CleanDataWithOptions(ds, types.DefaultCleanOptions())
	return clean, err
}

// CleanDataWithOptions runs the cleaning stages enabled in opts, in a
// fixed order: trim, dedup, drop missing, coerce numeric, validate.
// Row order is preserved among surviving rows. The returned report is
// nil unless opts.Validate is set.
func CleanDataWithOptions(ds dataset.Dataset, opts types.CleanOptions) (dataset.Dataset, *types.QualityReport, error) {
	log.Println("Starting data cleaning pipeline...")
	clean := ds
	var err error

	if opts.TrimCategorical {
		clean, err = TrimCategorical(clean, opts.CategoricalColumns)
		if err != nil {
			return dataset.Dataset{}, nil, err
		}
	}

	if opts.RemoveDups {
		clean, err = DropDuplicates(clean)
		if err != nil {
			return dataset.Dataset{}, nil, err
		}
	}

	if opts.DropMissing {
		clean, err = DropMissing(clean, opts.RequiredColumns)
		if err != nil {
			return dataset.Dataset{}, nil, err
		}
	}

	if len(opts.NumericColumns) > 0 {
		clean, err = CoerceNumeric(clean, opts.NumericColumns)
		if err != nil {
			return dataset.Dataset{}, nil, err
		}
	}

	var report *types.QualityReport
	if opts.Validate {
		report = ValidateData(clean)
	}

	log.Printf("Cleaning complete. Final shape: (%d, %d)", clean.Nrow(), clean.Ncol())
	return clean, report, nil
}

// TrimCategorical strips leading/trailing whitespace from the named
// string columns. With no columns given, the default categorical set
// is used and missing defaults are skipped with a warning. A column
// the caller asked for explicitly must exist.
func TrimCategorical(ds dataset.Dataset, cols []string) (dataset.Dataset, error) {
	explicit := len(cols) > 0
	if !explicit {
		cols = defaultCategoricalColumns
	}

	clean := ds
	for _, col := range cols {
		if !clean.HasColumn(col) {
			if explicit {
				return dataset.Dataset{}, &types.SchemaError{Column: col}
			}
			log.Printf("Warning: column %q not found in dataset", col)
			continue
		}
		s, err := clean.Col(col)
		if err != nil {
			return dataset.Dataset{}, err
		}
		values := s.Records()
		for i, v := range values {
			values[i] = strings.TrimSpace(v)
		}
		clean, err = clean.Mutate(series.New(values, series.String, col))
		if err != nil {
			return dataset.Dataset{}, err
		}
	}
	return clean, nil
}

// DropDuplicates removes rows identical across all columns, keeping
// the first occurrence. This is a stable filter: surviving rows keep
// their original order.
func DropDuplicates(ds dataset.Dataset) (dataset.Dataset, error) {
	rows := ds.Rows()
	seen := make(map[string]struct{}, len(rows))
	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		key := strings.Join(row, "\x1f")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
	}

	removed := len(rows) - len(kept)
	log.Printf("Found and removed %d duplicate rows.", removed)
	if removed == 0 {
		return ds, nil
	}
	return dataset.FromRows(ds.Header(), kept)
}

// DropMissing removes rows with a missing value in any required
// column. An absent required column is a SchemaError.
func DropMissing(ds dataset.Dataset, required []string) (dataset.Dataset, error) {
	if len(required) == 0 {
		return ds, nil
	}
	header := ds.Header()
	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[name] = i
	}
	for _, col := range required {
		if _, ok := colIdx[col]; !ok {
			return dataset.Dataset{}, &types.SchemaError{Column: col}
		}
	}

	rows := ds.Rows()
	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		complete := true
		for _, col := range required {
			if isMissing(row[colIdx[col]]) {
				complete = false
				break
			}
		}
		if complete {
			kept = append(kept, row)
		}
	}

	removed := len(rows) - len(kept)
	if removed > 0 {
		log.Printf("Dropped %d rows with missing values in %v.", removed, required)
	}
	if removed == 0 {
		return ds, nil
	}
	return dataset.FromRows(header, kept)
}

// CoerceNumeric converts the named columns to numeric type. A row
// whose value does not parse as a number is treated as missing and
// dropped, the same rule DropMissing applies.
func CoerceNumeric(ds dataset.Dataset, cols []string) (dataset.Dataset, error) {
	header := ds.Header()
	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[name] = i
	}
	for _, col := range cols {
		if _, ok := colIdx[col]; !ok {
			return dataset.Dataset{}, &types.SchemaError{Column: col}
		}
	}

	rows := ds.Rows()
	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		valid := true
		for _, col := range cols {
			v := strings.TrimSpace(row[colIdx[col]])
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				valid = false
				break
			}
		}
		if valid {
			kept = append(kept, row)
		}
	}

	removed := len(rows) - len(kept)
	if removed > 0 {
		log.Printf("Dropped %d rows with non-numeric values in %v.", removed, cols)
	}

	colTypes := make(map[string]series.Type, len(cols))
	for _, col := range cols {
		colTypes[col] = series.Float
	}
	return dataset.FromRowsTyped(header, kept, colTypes)
}
