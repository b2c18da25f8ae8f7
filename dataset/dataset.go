package dataset

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Dataset is an ordered collection of uniform-schema records held in
// memory, backed by a gota DataFrame. Row order reflects file order.
// Values are kept as strings until a cleaning step coerces a column.
type Dataset struct {
	df dataframe.DataFrame
}

// New wraps an existing DataFrame.
func New(df dataframe.DataFrame) Dataset {
	return Dataset{df: df}
}

// Empty builds a zero-row Dataset with the given columns.
func Empty(header []string) Dataset {
	ss := make([]series.Series, 0, len(header))
	for _, name := range header {
		ss = append(ss, series.New([]string{}, series.String, name))
	}
	return Dataset{df: dataframe.New(ss...)}
}

// FromRecords builds a Dataset from raw CSV records, header first.
// Values stay strings; CoerceNumeric owns the numeric typing.
func FromRecords(records [][]string) (Dataset, error) {
	if len(records) == 0 {
		return Dataset{}, fmt.Errorf("no records to load")
	}
	if len(records) == 1 {
		return Empty(records[0]), nil
	}
	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return Dataset{}, fmt.Errorf("loading records: %w", df.Err)
	}
	return Dataset{df: df}, nil
}

// FromRows is FromRecords with the header passed separately.
func FromRows(header []string, rows [][]string) (Dataset, error) {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, header)
	records = append(records, rows...)
	return FromRecords(records)
}

// FromRowsTyped builds a Dataset with explicit column types, used when
// a cleaning step has coerced columns to numeric.
func FromRowsTyped(header []string, rows [][]string, colTypes map[string]series.Type) (Dataset, error) {
	if len(rows) == 0 {
		return Empty(header), nil
	}
	records := make([][]string, 0, len(rows)+1)
	records = append(records, header)
	records = append(records, rows...)
	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(colTypes),
	)
	if df.Err != nil {
		return Dataset{}, fmt.Errorf("loading typed records: %w", df.Err)
	}
	return Dataset{df: df}, nil
}

// DF exposes the underlying DataFrame for callers that want gota's
// full API (grouping, joins, plotting).
func (d Dataset) DF() dataframe.DataFrame {
	return d.df
}

func (d Dataset) Nrow() int {
	return d.df.Nrow()
}

func (d Dataset) Ncol() int {
	return d.df.Ncol()
}

func (d Dataset) Names() []string {
	return d.df.Names()
}

// HasColumn reports whether the named column exists.
func (d Dataset) HasColumn(name string) bool {
	for _, n := range d.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Col returns the named column as a Series.
func (d Dataset) Col(name string) (series.Series, error) {
	if !d.HasColumn(name) {
		return series.Series{}, fmt.Errorf("column %q not found", name)
	}
	return d.df.Col(name), nil
}

// Records returns the dataset as CSV records, header first.
func (d Dataset) Records() [][]string {
	return d.df.Records()
}

// Header returns the column names in order.
func (d Dataset) Header() []string {
	return d.df.Names()
}

// Rows returns the data records without the header.
func (d Dataset) Rows() [][]string {
	records := d.df.Records()
	if len(records) <= 1 {
		return [][]string{}
	}
	return records[1:]
}

// Mutate replaces the column matching the series name, or appends it.
func (d Dataset) Mutate(s series.Series) (Dataset, error) {
	df := d.df.Mutate(s)
	if df.Err != nil {
		return Dataset{}, fmt.Errorf("mutating column %q: %w", s.Name, df.Err)
	}
	return Dataset{df: df}, nil
}

// Select keeps only the named columns, in the given order.
func (d Dataset) Select(names []string) (Dataset, error) {
	for _, n := range names {
		if !d.HasColumn(n) {
			return Dataset{}, fmt.Errorf("column %q not found", n)
		}
	}
	df := d.df.Select(names)
	if df.Err != nil {
		return Dataset{}, fmt.Errorf("selecting columns: %w", df.Err)
	}
	return Dataset{df: df}, nil
}

// ReadCSV parses delimited text into a Dataset. The first record is
// the header. Values are not type-detected; see FromRecords.
func ReadCSV(r io.Reader) (Dataset, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return Dataset{}, df.Err
	}
	return Dataset{df: df}, nil
}

// WriteCSV exports the dataset, header included, to the given path.
func (d Dataset) WriteCSV(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file %q: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.Printf("Error closing export file '%s': %v", path, cerr)
		}
	}()

	if err := d.df.WriteCSV(file, dataframe.WriteHeader(true)); err != nil {
		return fmt.Errorf("writing CSV to %q: %w", path, err)
	}
	log.Printf("Exported %d rows to %s", d.Nrow(), path)
	return nil
}

// String renders the dataset in gota's tabular format.
func (d Dataset) String() string {
	return d.df.String()
}
