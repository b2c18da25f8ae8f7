package types

// SentimentGroup is one of the broad categories that raw free-text
// sentiment labels get mapped onto.
type SentimentGroup string

const (
	Joy          SentimentGroup = "Joy"
	Sadness      SentimentGroup = "Sadness"
	Anger        SentimentGroup = "Anger"
	Fear         SentimentGroup = "Fear"
	Guilt        SentimentGroup = "Guilt"
	NeutralOther SentimentGroup = "Neutral/Other"
)

// Groups lists every valid sentiment group.
func Groups() []SentimentGroup {
	return []SentimentGroup{Joy, Sadness, Anger, Fear, Guilt, NeutralOther}
}

// IsValidGroup reports whether g is one of the known sentiment groups.
func IsValidGroup(g SentimentGroup) bool {
	switch g {
	case Joy, Sadness, Anger, Fear, Guilt, NeutralOther:
		return true
	}
	return false
}

// Column names the pipeline expects or produces.
const (
	TextColumn      = "Text"
	SentimentColumn = "Sentiment"
	TimestampColumn = "Timestamp"
	PlatformColumn  = "Platform"
	CountryColumn   = "Country"

	CleanLabelColumn = "Sentiment_Clean"
	GroupColumn      = "Sentiment_Group"
	ScoreColumn      = "Sentiment_Score"
	MagnitudeColumn  = "Sentiment_Magnitude"
)

// QualityReport holds the results of the data quality assessment that
// runs between cleaning and mapping.
type QualityReport struct {
	ID             string         `json:"id"`
	GeneratedAt    string         `json:"generatedAt"` // RFC3339
	Rows           int            `json:"rows"`
	Columns        int            `json:"columns"`
	MissingValues  map[string]int `json:"missingValues"`
	DuplicateRows  int            `json:"duplicateRows"`
	TimestampValid bool           `json:"timestampValid"`
	EmptyTexts     int            `json:"emptyTexts"`
}

// MappingStats summarizes one MapSentiments run: how many rows landed
// in each group, and which raw labels had no table entry.
type MappingStats struct {
	GroupCounts    map[SentimentGroup]int `json:"groupCounts"`
	UnmappedLabels []string               `json:"unmappedLabels"` // distinct, sorted
	UnmappedRows   int                    `json:"unmappedRows"`
}

// CleanOptions toggles the individual cleaning stages. The zero value
// disables everything; use DefaultCleanOptions for the standard run.
type CleanOptions struct {
	TrimCategorical bool
	RemoveDups      bool
	DropMissing     bool
	Validate        bool
	// Columns whose values must be present for a row to survive.
	RequiredColumns []string
	// Columns to trim. Empty means the default categorical set.
	CategoricalColumns []string
	// Columns to coerce to numeric. Rows with non-coercible values drop.
	NumericColumns []string
}

// DefaultCleanOptions mirrors the standard cleaning run: trim, dedup,
// drop rows missing a sentiment label, and produce a quality report.
func DefaultCleanOptions() CleanOptions {
	return CleanOptions{
		TrimCategorical: true,
		RemoveDups:      true,
		DropMissing:     true,
		Validate:        true,
		RequiredColumns: []string{SentimentColumn},
	}
}
