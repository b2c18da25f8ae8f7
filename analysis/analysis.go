package analysis

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/series"

	"go-sentiment/cleaner"
	"go-sentiment/dataset"
	"go-sentiment/types"
)

// ValueCount is one entry of a frequency table.
type ValueCount struct {
	Value string
	Count int
}

// ValueCounts tallies the distinct values of a column, most frequent
// first (ties broken alphabetically so output is deterministic).
func ValueCounts(ds dataset.Dataset, col string) ([]ValueCount, error) {
	s, err := ds.Col(col)
	if err != nil {
		return nil, &types.SchemaError{Column: col}
	}

	counts := make(map[string]int)
	for _, v := range s.Records() {
		counts[v]++
	}

	out := make([]ValueCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, ValueCount{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out, nil
}

// AverageByGroup computes the mean of a numeric column per group, e.g.
// average engagement per sentiment group. Values that do not parse as
// numbers are skipped; a group with no numeric values averages to 0.
func AverageByGroup(ds dataset.Dataset, valueCol, groupCol string) (map[string]float64, error) {
	values, err := ds.Col(valueCol)
	if err != nil {
		return nil, &types.SchemaError{Column: valueCol}
	}
	groups, err := ds.Col(groupCol)
	if err != nil {
		return nil, &types.SchemaError{Column: groupCol}
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	valueRecords := values.Records()
	for i, group := range groups.Records() {
		v, err := strconv.ParseFloat(strings.TrimSpace(valueRecords[i]), 64)
		if err != nil {
			continue
		}
		sums[group] += v
		counts[group]++
	}

	averages := make(map[string]float64, len(sums))
	for group, sum := range sums {
		averages[group] = sum / float64(counts[group])
	}
	return averages, nil
}

// AddTimeFeatures derives year, month, day, hour, day_of_week and
// is_weekend columns from the timestamp column. day_of_week counts
// Monday as 0; is_weekend is 1 for Saturday and Sunday. Every
// timestamp must parse, so run the cleaner first.
func AddTimeFeatures(ds dataset.Dataset, tsCol string) (dataset.Dataset, error) {
	if !ds.HasColumn(tsCol) {
		return dataset.Dataset{}, &types.SchemaError{Column: tsCol}
	}
	s, err := ds.Col(tsCol)
	if err != nil {
		return dataset.Dataset{}, err
	}

	records := s.Records()
	years := make([]int, len(records))
	months := make([]int, len(records))
	days := make([]int, len(records))
	hours := make([]int, len(records))
	daysOfWeek := make([]int, len(records))
	weekends := make([]int, len(records))

	for i, v := range records {
		t, ok := cleaner.ParseTimestamp(v)
		if !ok {
			return dataset.Dataset{}, fmt.Errorf("could not parse timestamp %q at row %d", v, i)
		}
		years[i] = t.Year()
		months[i] = int(t.Month())
		days[i] = t.Day()
		hours[i] = t.Hour()
		dow := (int(t.Weekday()) + 6) % 7 // Monday = 0
		daysOfWeek[i] = dow
		if dow >= 5 {
			weekends[i] = 1
		}
	}

	out := ds
	for _, feature := range []struct {
		name   string
		values []int
	}{
		{"year", years},
		{"month", months},
		{"day", days},
		{"hour", hours},
		{"day_of_week", daysOfWeek},
		{"is_weekend", weekends},
	} {
		out, err = out.Mutate(series.New(feature.values, series.Int, feature.name))
		if err != nil {
			return dataset.Dataset{}, err
		}
	}
	return out, nil
}

// Info renders basic information about the dataset: shape, columns
// and column types, pandas-info style.
func Info(ds dataset.Dataset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Shape: (%d, %d)\n", ds.Nrow(), ds.Ncol())
	fmt.Fprintf(&b, "Columns: %v\n", ds.Names())
	dfTypes := ds.DF().Types()
	for i, name := range ds.Names() {
		fmt.Fprintf(&b, "  %-24s %v\n", name, dfTypes[i])
	}
	return b.String()
}
