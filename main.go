package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"

	"go-sentiment/analysis"
	"go-sentiment/dataset"
	"go-sentiment/mlmodel"
	"go-sentiment/nlp"
	"go-sentiment/processor"
	"go-sentiment/suggest"
	"go-sentiment/types"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using process environment")
	}

	// Input dataset: first argument wins, DATASET_PATH is the fallback.
	path := os.Getenv("DATASET_PATH")
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "" {
		log.Fatalf("No dataset given. Pass a CSV path or set DATASET_PATH.")
	}

	opts := processor.DefaultOptions()
	opts.AddTime = os.Getenv("ADD_TIME_FEATURES") == "true"
	opts.ExportPath = os.Getenv("EXPORT_PATH")

	result, err := processor.RunPipeline(path, opts)
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}

	fmt.Println("\n=== Dataset Information ===")
	fmt.Print(analysis.Info(result.Dataset))

	if result.Report != nil {
		fmt.Println("\n=== Quality Report ===")
		fmt.Printf("Report %s (%s)\n", result.Report.ID, result.Report.GeneratedAt)
		fmt.Printf("Duplicates: %d | Empty posts: %d | Timestamps ok: %v\n",
			result.Report.DuplicateRows, result.Report.EmptyTexts, result.Report.TimestampValid)
	}

	if result.Stats != nil {
		fmt.Println("\n=== Sentiment Mapping Results ===")
		counts, err := analysis.ValueCounts(result.Dataset, types.GroupColumn)
		if err != nil {
			log.Fatalf("Error counting sentiment groups: %v", err)
		}
		for _, c := range counts {
			fmt.Printf("%-16s %d\n", c.Value, c.Count)
		}
		if len(result.Stats.UnmappedLabels) > 0 {
			fmt.Printf("\nLabels without a table entry (tagged %s): %v\n",
				types.NeutralOther, result.Stats.UnmappedLabels)
			suggestTableEntries(result.Stats.UnmappedLabels)
		}
	}

	// Optional: score the post texts through the Natural Language API.
	if os.Getenv("SCORE_SENTIMENT") == "true" {
		langClient, err := nlp.InitLanguageClient()
		if err != nil {
			log.Fatalf("Failed to create Natural Language client: %v", err)
		}
		defer nlp.CloseLanguageClient()

		scored, err := nlp.ScoreDataset(context.Background(), langClient, result.Dataset)
		if err != nil {
			log.Fatalf("Error scoring sentiment: %v", err)
		}
		result.Dataset = scored

		averages, err := analysis.AverageByGroup(result.Dataset, types.ScoreColumn, types.GroupColumn)
		if err != nil {
			log.Fatalf("Error averaging scores: %v", err)
		}
		fmt.Println("\n=== Average Score per Group ===")
		for group, avg := range averages {
			fmt.Printf("%-16s %.3f\n", group, avg)
		}

		overall, err := nlp.AverageScore(result.Dataset)
		if err != nil {
			log.Fatalf("Error averaging overall score: %v", err)
		}
		fmt.Printf("%-16s %.3f\n", "Overall", overall)
	}

	// Optional: cross-check the labels against the hosted classifier.
	if os.Getenv("CHECK_LABELS") == "true" {
		checkLabels(result.Dataset)
	}
}

// checkLabels sends the post texts to the hosted classifier and
// reports how many rows came back, as a sanity check on the labels.
func checkLabels(ds dataset.Dataset) {
	req, err := mlmodel.RequestFromDataset(ds)
	if err != nil {
		log.Fatalf("Error building model request: %v", err)
	}
	resp, err := mlmodel.CallModel(req)
	if err != nil {
		log.Fatalf("Error calling sentiment model: %v", err)
	}
	fmt.Println("\n=== Model Label Check ===")
	fmt.Printf("Model scored %d of %d posts\n", len(resp), ds.Nrow())
}

// suggestTableEntries asks OpenAI for taxonomy proposals covering the
// unmapped labels, when a key is configured.
func suggestTableEntries(labels []string) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return
	}
	fmt.Println("OPENAI_API_KEY loaded")

	client := openai.NewClient(apiKey)
	proposals, err := suggest.SuggestTableEntries(context.Background(), client, labels)
	if err != nil {
		log.Printf("Error suggesting table entries: %v", err)
		return
	}
	fmt.Println("\n=== Proposed Table Entries ===")
	fmt.Println(proposals)
}
