package processor

import (
	"fmt"
	"log"
	"strings"

	"go-sentiment/analysis"
	"go-sentiment/cleaner"
	"go-sentiment/dataset"
	"go-sentiment/loader"
	"go-sentiment/taxonomy"
	"go-sentiment/types"
)

// Options selects which pipeline stages run. The stages always run in
// the same order: clean, map, time features, export.
type Options struct {
	Clean        types.CleanOptions
	MapSentiment bool
	AddTime      bool
	// ExportPath, when set, writes the processed dataset as CSV.
	ExportPath string
}

// DefaultOptions is the standard run: full cleaning plus sentiment
// mapping, no time features, no export.
func DefaultOptions() Options {
	return Options{
		Clean:        types.DefaultCleanOptions(),
		MapSentiment: true,
	}
}

// Result bundles everything one pipeline run produced.
type Result struct {
	Dataset dataset.Dataset
	Report  *types.QualityReport
	Stats   *types.MappingStats
	Log     string
}

// RunPipeline loads a CSV file and runs ProcessDataset over it.
func RunPipeline(path string, opts Options) (*Result, error) {
	ds, err := loader.LoadData(path)
	if err != nil {
		return nil, err
	}
	return ProcessDataset(ds, opts)
}

// ProcessDataset runs the cleaning and mapping stages over an already
// loaded dataset. Each stage operates on the previous stage's output;
// the input dataset is never modified.
func ProcessDataset(ds dataset.Dataset, opts Options) (*Result, error) {
	// Helper function to append a formatted log message.
	var logBuilder strings.Builder
	addLog := func(format string, args ...interface{}) {
		logBuilder.WriteString(fmt.Sprintf(format, args...))
		logBuilder.WriteString("\n")
	}

	addLog("Pipeline start: shape (%d, %d)", ds.Nrow(), ds.Ncol())
	result := &Result{}

	clean, report, err := cleaner.CleanDataWithOptions(ds, opts.Clean)
	if err != nil {
		addLog("Cleaning failed: %v", err)
		log.Println(logBuilder.String())
		return nil, err
	}
	result.Report = report
	addLog("After cleaning: shape (%d, %d)", clean.Nrow(), clean.Ncol())

	if opts.MapSentiment && clean.HasColumn(types.SentimentColumn) {
		mapped, stats, err := taxonomy.DefaultMapper().MapSentiments(clean)
		if err != nil {
			addLog("Mapping failed: %v", err)
			log.Println(logBuilder.String())
			return nil, err
		}
		clean = mapped
		result.Stats = stats
		addLog("Mapped sentiments: %d rows without a table entry", stats.UnmappedRows)
	}

	if opts.AddTime && clean.HasColumn(types.TimestampColumn) {
		withTime, err := analysis.AddTimeFeatures(clean, types.TimestampColumn)
		if err != nil {
			addLog("Time features failed: %v", err)
			log.Println(logBuilder.String())
			return nil, err
		}
		clean = withTime
		addLog("Added time feature columns")
	}

	if opts.ExportPath != "" {
		if err := clean.WriteCSV(opts.ExportPath); err != nil {
			addLog("Export failed: %v", err)
			log.Println(logBuilder.String())
			return nil, err
		}
		addLog("Exported processed dataset to %s", opts.ExportPath)
	}

	addLog("Pipeline done: shape (%d, %d)", clean.Nrow(), clean.Ncol())
	log.Println(logBuilder.String())

	result.Dataset = clean
	result.Log = logBuilder.String()
	return result, nil
}
