package processor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sentiment/loader"
	"go-sentiment/types"
)

const sampleCSV = `Text,Sentiment,Platform
I love this!,Happy ,Twitter
bad day,happy,Reddit
bad day,happy,Reddit
no label,,Twitter
great vibes,flabbergasted,Bluesky
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "posts.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

func TestRunPipeline_Default(t *testing.T) {
	result, err := RunPipeline(writeSample(t), DefaultOptions())
	require.NoError(t, err)

	// Duplicate and missing-label rows are gone.
	assert.Equal(t, 3, result.Dataset.Nrow())
	assert.True(t, result.Dataset.HasColumn(types.GroupColumn))
	assert.True(t, result.Dataset.HasColumn(types.CleanLabelColumn))

	require.NotNil(t, result.Report)
	assert.Equal(t, 3, result.Report.Rows)

	require.NotNil(t, result.Stats)
	assert.Equal(t, 2, result.Stats.GroupCounts[types.Joy])
	assert.Equal(t, []string{"flabbergasted"}, result.Stats.UnmappedLabels)

	assert.NotEmpty(t, result.Log)
}

func TestRunPipeline_MissingFile(t *testing.T) {
	_, err := RunPipeline(filepath.Join(t.TempDir(), "nope.csv"), DefaultOptions())
	assert.ErrorIs(t, err, loader.ErrFileNotFound)
}

func TestRunPipeline_Export(t *testing.T) {
	exportPath := filepath.Join(t.TempDir(), "cleaned.csv")
	opts := DefaultOptions()
	opts.ExportPath = exportPath

	_, err := RunPipeline(writeSample(t), opts)
	require.NoError(t, err)

	exported, err := loader.LoadData(exportPath)
	require.NoError(t, err)
	assert.Equal(t, 3, exported.Nrow())
	assert.True(t, exported.HasColumn(types.GroupColumn))
}

func TestRunPipeline_TimeFeatures(t *testing.T) {
	csv := `Text,Sentiment,Timestamp
hello,happy,2023-01-15 10:30:00
bye,sad,2023-01-10 08:00:00
`
	path := filepath.Join(t.TempDir(), "posts.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	opts := DefaultOptions()
	opts.AddTime = true
	result, err := RunPipeline(path, opts)
	require.NoError(t, err)

	for _, col := range []string{"year", "month", "day", "hour", "day_of_week", "is_weekend"} {
		assert.True(t, result.Dataset.HasColumn(col), "missing column %q", col)
	}
}

func TestProcessDataset_StagesDisabled(t *testing.T) {
	ds, err := loader.LoadData(writeSample(t))
	require.NoError(t, err)

	result, err := ProcessDataset(ds, Options{})
	require.NoError(t, err)

	// Nothing enabled: dataset passes through untouched.
	assert.Equal(t, 5, result.Dataset.Nrow())
	assert.False(t, result.Dataset.HasColumn(types.GroupColumn))
	assert.Nil(t, result.Report)
	assert.Nil(t, result.Stats)
}
