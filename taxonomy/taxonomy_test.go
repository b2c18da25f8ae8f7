package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sentiment/dataset"
	"go-sentiment/types"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "happy", Normalize("Happy "))
	assert.Equal(t, "joy in baking", Normalize("  Joy   In BAKING "))
	assert.Equal(t, "", Normalize("   "))
}

func TestNewMapper_ConflictingKeysIsMappingError(t *testing.T) {
	_, err := NewMapper(map[string]types.SentimentGroup{
		"Happy ": types.Joy,
		"happy":  types.Sadness,
	})

	var mapErr *types.MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "happy", mapErr.Label)
}

func TestNewMapper_AgreeingDuplicateKeysAllowed(t *testing.T) {
	m, err := NewMapper(map[string]types.SentimentGroup{
		"Happy ": types.Joy,
		"happy":  types.Joy,
	})
	require.NoError(t, err)

	group, ok := m.Lookup("HAPPY")
	assert.True(t, ok)
	assert.Equal(t, types.Joy, group)
}

func TestNewMapper_UnknownGroupIsMappingError(t *testing.T) {
	_, err := NewMapper(map[string]types.SentimentGroup{
		"happy": types.SentimentGroup("Elation"),
	})

	var mapErr *types.MappingError
	assert.ErrorAs(t, err, &mapErr)
}

func TestNewMapper_EmptyLabelIsMappingError(t *testing.T) {
	_, err := NewMapper(map[string]types.SentimentGroup{
		"   ": types.Joy,
	})

	var mapErr *types.MappingError
	assert.ErrorAs(t, err, &mapErr)
}

func TestDefaultTable_IsWellFormed(t *testing.T) {
	_, err := NewMapper(DefaultTable())
	assert.NoError(t, err)
}

func TestLookup_CaseAndWhitespaceInsensitive(t *testing.T) {
	m := DefaultMapper()

	for _, raw := range []string{"happy", "Happy ", " HAPPY", "happiness"} {
		group, ok := m.Lookup(raw)
		assert.True(t, ok, "expected %q to map", raw)
		assert.Equal(t, types.Joy, group)
	}
}

func TestLookup_UnmappedTagsNeutralOther(t *testing.T) {
	group, ok := DefaultMapper().Lookup("flabbergasted")
	assert.False(t, ok)
	assert.Equal(t, types.NeutralOther, group)
}

func makeDataset(t *testing.T, header []string, rows [][]string) dataset.Dataset {
	t.Helper()
	ds, err := dataset.FromRows(header, rows)
	require.NoError(t, err)
	return ds
}

func TestMapSentiments_AddsColumns(t *testing.T) {
	ds := makeDataset(t, []string{"Text", "Sentiment"}, [][]string{
		{"I love this!", "Happy"},
		{"bad day", "happy"},
	})

	mapped, stats, err := DefaultMapper().MapSentiments(ds)
	require.NoError(t, err)

	assert.Equal(t, []string{"Text", "Sentiment", "Sentiment_Clean", "Sentiment_Group"}, mapped.Names())
	assert.Equal(t, 0, stats.UnmappedRows)
	assert.Equal(t, 2, stats.GroupCounts[types.Joy])

	rows := mapped.Rows()
	assert.Equal(t, []string{"I love this!", "Happy", "happy", "Joy"}, rows[0])
	assert.Equal(t, []string{"bad day", "happy", "happy", "Joy"}, rows[1])
}

func TestMapSentiments_TotalUnderTagPolicy(t *testing.T) {
	ds := makeDataset(t, []string{"Text", "Sentiment"}, [][]string{
		{"a", "grief"},
		{"b", "flabbergasted"},
		{"c", "discombobulated"},
		{"d", "anger"},
	})

	mapped, stats, err := DefaultMapper().MapSentiments(ds)
	require.NoError(t, err)

	// No row is dropped and every row gets a group from the taxonomy.
	assert.Equal(t, 4, mapped.Nrow())
	groups, err := mapped.Col(types.GroupColumn)
	require.NoError(t, err)
	for _, g := range groups.Records() {
		assert.True(t, types.IsValidGroup(types.SentimentGroup(g)), "unexpected group %q", g)
	}

	assert.Equal(t, 2, stats.UnmappedRows)
	assert.Equal(t, []string{"discombobulated", "flabbergasted"}, stats.UnmappedLabels)
	assert.Equal(t, 2, stats.GroupCounts[types.NeutralOther])
	assert.Equal(t, 1, stats.GroupCounts[types.Sadness])
	assert.Equal(t, 1, stats.GroupCounts[types.Anger])
}

func TestMapSentiments_MissingColumnIsSchemaError(t *testing.T) {
	ds := makeDataset(t, []string{"Text"}, [][]string{{"a"}})

	_, _, err := DefaultMapper().MapSentiments(ds)
	var schemaErr *types.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "Sentiment", schemaErr.Column)
}

func TestMapSentiments_InputNotModified(t *testing.T) {
	ds := makeDataset(t, []string{"Text", "Sentiment"}, [][]string{{"a", "happy"}})
	before := ds.Records()

	_, _, err := DefaultMapper().MapSentiments(ds)
	require.NoError(t, err)
	assert.Equal(t, before, ds.Records())
}
