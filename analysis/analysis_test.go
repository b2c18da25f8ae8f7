package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sentiment/dataset"
	"go-sentiment/types"
)

func makeDataset(t *testing.T, header []string, rows [][]string) dataset.Dataset {
	t.Helper()
	ds, err := dataset.FromRows(header, rows)
	require.NoError(t, err)
	return ds
}

func TestValueCounts_OrderedByFrequency(t *testing.T) {
	ds := makeDataset(t, []string{"Sentiment_Group"}, [][]string{
		{"Joy"}, {"Sadness"}, {"Joy"}, {"Anger"}, {"Joy"}, {"Sadness"},
	})

	counts, err := ValueCounts(ds, "Sentiment_Group")
	require.NoError(t, err)

	assert.Equal(t, []ValueCount{
		{Value: "Joy", Count: 3},
		{Value: "Sadness", Count: 2},
		{Value: "Anger", Count: 1},
	}, counts)
}

func TestValueCounts_TiesAlphabetical(t *testing.T) {
	ds := makeDataset(t, []string{"Platform"}, [][]string{
		{"Twitter"}, {"Reddit"},
	})

	counts, err := ValueCounts(ds, "Platform")
	require.NoError(t, err)
	assert.Equal(t, "Reddit", counts[0].Value)
	assert.Equal(t, "Twitter", counts[1].Value)
}

func TestValueCounts_MissingColumn(t *testing.T) {
	ds := makeDataset(t, []string{"Text"}, [][]string{{"a"}})

	_, err := ValueCounts(ds, "Sentiment_Group")
	var schemaErr *types.SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestAverageByGroup(t *testing.T) {
	ds := makeDataset(t, []string{"Likes", "Sentiment_Group"}, [][]string{
		{"10", "Joy"},
		{"20", "Joy"},
		{"5", "Sadness"},
		{"n/a", "Sadness"}, // skipped, not numeric
	})

	averages, err := AverageByGroup(ds, "Likes", "Sentiment_Group")
	require.NoError(t, err)

	assert.InDelta(t, 15.0, averages["Joy"], 1e-9)
	assert.InDelta(t, 5.0, averages["Sadness"], 1e-9)
}

func TestAverageByGroup_MissingColumn(t *testing.T) {
	ds := makeDataset(t, []string{"Likes"}, [][]string{{"1"}})

	_, err := AverageByGroup(ds, "Likes", "Sentiment_Group")
	var schemaErr *types.SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestAddTimeFeatures(t *testing.T) {
	ds := makeDataset(t, []string{"Text", "Timestamp"}, [][]string{
		{"a", "2023-01-15 10:30:00"}, // Sunday
		{"b", "2023-01-10 08:00:00"}, // Tuesday
	})

	out, err := AddTimeFeatures(ds, "Timestamp")
	require.NoError(t, err)

	for _, col := range []string{"year", "month", "day", "hour", "day_of_week", "is_weekend"} {
		assert.True(t, out.HasColumn(col), "missing column %q", col)
	}

	year, err := out.Col("year")
	require.NoError(t, err)
	assert.Equal(t, []string{"2023", "2023"}, year.Records())

	hour, err := out.Col("hour")
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "8"}, hour.Records())

	dow, err := out.Col("day_of_week")
	require.NoError(t, err)
	assert.Equal(t, []string{"6", "1"}, dow.Records())

	weekend, err := out.Col("is_weekend")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "0"}, weekend.Records())
}

func TestAddTimeFeatures_BadTimestamp(t *testing.T) {
	ds := makeDataset(t, []string{"Timestamp"}, [][]string{{"yesterday"}})

	_, err := AddTimeFeatures(ds, "Timestamp")
	assert.Error(t, err)
}

func TestAddTimeFeatures_MissingColumn(t *testing.T) {
	ds := makeDataset(t, []string{"Text"}, [][]string{{"a"}})

	_, err := AddTimeFeatures(ds, "Timestamp")
	var schemaErr *types.SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestInfo(t *testing.T) {
	ds := makeDataset(t, []string{"Text", "Sentiment"}, [][]string{{"a", "happy"}})

	info := Info(ds)
	assert.True(t, strings.Contains(info, "Shape: (1, 2)"))
	assert.True(t, strings.Contains(info, "Sentiment"))
}
