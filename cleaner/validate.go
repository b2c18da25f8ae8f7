package cleaner

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-sentiment/dataset"
	"go-sentiment/types"
)

// timestamp layouts seen in exported social datasets.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z", // without fractional seconds
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp tries the known layouts in order.
func ParseTimestamp(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ValidateData performs the data quality assessment: missing values
// per column, duplicate count, timestamp parseability, and empty
// posts. It never modifies the dataset.
func ValidateData(ds dataset.Dataset) *types.QualityReport {
	report := &types.QualityReport{
		ID:            uuid.NewString(),
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		Rows:          ds.Nrow(),
		Columns:       ds.Ncol(),
		MissingValues: make(map[string]int, ds.Ncol()),
	}

	header := ds.Header()
	rows := ds.Rows()

	for i, col := range header {
		count := 0
		for _, row := range rows {
			if isMissing(row[i]) {
				count++
			}
		}
		report.MissingValues[col] = count
	}

	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		key := strings.Join(row, "\x1f")
		if _, ok := seen[key]; ok {
			report.DuplicateRows++
			continue
		}
		seen[key] = struct{}{}
	}

	report.TimestampValid = true
	if ds.HasColumn(types.TimestampColumn) {
		idx := indexOf(header, types.TimestampColumn)
		for _, row := range rows {
			v := row[idx]
			if isMissing(v) {
				continue
			}
			if _, ok := ParseTimestamp(v); !ok {
				report.TimestampValid = false
				log.Printf("Warning: could not parse timestamp %q", v)
				break
			}
		}
	}

	if ds.HasColumn(types.TextColumn) {
		idx := indexOf(header, types.TextColumn)
		for _, row := range rows {
			if strings.TrimSpace(row[idx]) == "" {
				report.EmptyTexts++
			}
		}
	}

	log.Printf("Validation report %s: %d duplicates, %d empty posts.",
		report.ID, report.DuplicateRows, report.EmptyTexts)
	return report
}

func indexOf(header []string, name string) int {
	for i, n := range header {
		if n == name {
			return i
		}
	}
	return -1
}
