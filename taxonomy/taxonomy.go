package taxonomy

import (
	"log"
	"sort"
	"strings"

	"github.com/go-gota/gota/series"

	"go-sentiment/dataset"
	"go-sentiment/types"
)

// Mapper maps raw sentiment labels onto the fixed group taxonomy.
// Matching is exact on the normalized (lowercased, space-collapsed)
// label. Labels without a table entry are tagged Neutral/Other rather
// than dropped, so mapping is total over every row; the unmapped
// labels are reported back through MappingStats as a data quality
// signal.
type Mapper struct {
	table map[string]types.SentimentGroup
}

// Normalize lowercases a raw label and collapses runs of whitespace,
// the same normalization applied to table keys.
func Normalize(label string) string {
	return strings.ToLower(strings.Join(strings.Fields(label), " "))
}

// NewMapper validates and normalizes a lookup table. Two keys that
// normalize to the same label must agree on the group, and every group
// must be one of the known taxonomy values; anything else is a
// MappingError.
func NewMapper(table map[string]types.SentimentGroup) (*Mapper, error) {
	normalized := make(map[string]types.SentimentGroup, len(table))
	for raw, group := range table {
		key := Normalize(raw)
		if key == "" {
			return nil, &types.MappingError{Label: raw, Reason: "label normalizes to empty string"}
		}
		if !types.IsValidGroup(group) {
			return nil, &types.MappingError{Label: raw, Reason: "unknown sentiment group " + string(group)}
		}
		if existing, ok := normalized[key]; ok && existing != group {
			return nil, &types.MappingError{
				Label:  key,
				Reason: "maps to both " + string(existing) + " and " + string(group),
			}
		}
		normalized[key] = group
	}
	return &Mapper{table: normalized}, nil
}

// DefaultMapper builds a Mapper over DefaultTable. The default table
// is static and known-good, so a validation failure is a programming
// error.
func DefaultMapper() *Mapper {
	m, err := NewMapper(DefaultTable())
	if err != nil {
		log.Fatalf("default sentiment table is malformed: %v", err)
	}
	return m
}

// Lookup resolves a single raw label. The second return reports
// whether the table had an entry; on false the group is the
// Neutral/Other tag.
func (m *Mapper) Lookup(raw string) (types.SentimentGroup, bool) {
	group, ok := m.table[Normalize(raw)]
	if !ok {
		return types.NeutralOther, false
	}
	return group, true
}

// MapSentiments adds the Sentiment_Clean and Sentiment_Group columns
// derived from the raw Sentiment column. The input dataset is not
// modified. An absent Sentiment column is a SchemaError.
func (m *Mapper) MapSentiments(ds dataset.Dataset) (dataset.Dataset, *types.MappingStats, error) {
	if !ds.HasColumn(types.SentimentColumn) {
		return dataset.Dataset{}, nil, &types.SchemaError{Column: types.SentimentColumn}
	}

	s, err := ds.Col(types.SentimentColumn)
	if err != nil {
		return dataset.Dataset{}, nil, err
	}
	raw := s.Records()

	stats := &types.MappingStats{
		GroupCounts: make(map[types.SentimentGroup]int, len(types.Groups())),
	}
	unmappedSet := make(map[string]struct{})

	cleanLabels := make([]string, len(raw))
	groups := make([]string, len(raw))
	for i, label := range raw {
		normalized := Normalize(label)
		cleanLabels[i] = normalized
		group, ok := m.Lookup(label)
		if !ok {
			stats.UnmappedRows++
			unmappedSet[normalized] = struct{}{}
		}
		groups[i] = string(group)
		stats.GroupCounts[group]++
	}

	for label := range unmappedSet {
		stats.UnmappedLabels = append(stats.UnmappedLabels, label)
	}
	sort.Strings(stats.UnmappedLabels)

	mapped, err := ds.Mutate(series.New(cleanLabels, series.String, types.CleanLabelColumn))
	if err != nil {
		return dataset.Dataset{}, nil, err
	}
	mapped, err = mapped.Mutate(series.New(groups, series.String, types.GroupColumn))
	if err != nil {
		return dataset.Dataset{}, nil, err
	}

	log.Printf("Sentiment mapping: %d rows, %d without a table entry (tagged %s).",
		ds.Nrow(), stats.UnmappedRows, types.NeutralOther)
	return mapped, stats, nil
}

// MapSentiments maps with the default table, the common case for
// notebook callers.
func MapSentiments(ds dataset.Dataset) (dataset.Dataset, error) {
	mapped, _, err := DefaultMapper().MapSentiments(ds)
	return mapped, err
}
