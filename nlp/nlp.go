package nlp

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"sync"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
	"github.com/go-gota/gota/series"
	"google.golang.org/api/option"

	"go-sentiment/dataset"
	"go-sentiment/types"
)

// languageClient a singleton languageClient instance.
var (
	languageClient *language.Client
	clientOnce     sync.Once
)

// AnalyzeSentiment scores a single post through the Cloud Natural
// Language API.
func AnalyzeSentiment(ctx context.Context, client *language.Client, text string) (types.Sentiment, error) {
	var sentiment types.Sentiment
	req := &languagepb.AnalyzeSentimentRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := client.AnalyzeSentiment(ctx, req)
	if err != nil {
		return sentiment, fmt.Errorf("AnalyzeSentiment request error: %w", err)
	}

	sentiment.Score = resp.DocumentSentiment.Score
	sentiment.Magnitude = resp.DocumentSentiment.Magnitude

	return sentiment, nil
}

// ScoreDataset runs every post's text through sentiment analysis and
// adds Sentiment_Score and Sentiment_Magnitude columns. Rows are
// scored sequentially; cancel the context to stop early. This is an
// optional enrichment on top of the label mapping, not part of it.
func ScoreDataset(ctx context.Context, client *language.Client, ds dataset.Dataset) (dataset.Dataset, error) {
	if !ds.HasColumn(types.TextColumn) {
		return dataset.Dataset{}, &types.SchemaError{Column: types.TextColumn}
	}
	s, err := ds.Col(types.TextColumn)
	if err != nil {
		return dataset.Dataset{}, err
	}

	texts := s.Records()
	scores := make([]float64, len(texts))
	magnitudes := make([]float64, len(texts))
	for i, text := range texts {
		select {
		case <-ctx.Done():
			return dataset.Dataset{}, ctx.Err()
		default:
		}
		sentiment, err := AnalyzeSentiment(ctx, client, text)
		if err != nil {
			return dataset.Dataset{}, fmt.Errorf("scoring row %d: %w", i, err)
		}
		scores[i] = float64(sentiment.Score)
		magnitudes[i] = float64(sentiment.Magnitude)
	}

	scored, err := ds.Mutate(series.New(scores, series.Float, types.ScoreColumn))
	if err != nil {
		return dataset.Dataset{}, err
	}
	return scored.Mutate(series.New(magnitudes, series.Float, types.MagnitudeColumn))
}

// AverageScore averages the Sentiment_Score column that ScoreDataset
// produced, giving the overall polarity of the whole dataset.
func AverageScore(ds dataset.Dataset) (float32, error) {
	if !ds.HasColumn(types.ScoreColumn) {
		return 0, &types.SchemaError{Column: types.ScoreColumn}
	}
	s, err := ds.Col(types.ScoreColumn)
	if err != nil {
		return 0, err
	}

	scores := s.Float()
	sentiments := make([]types.Sentiment, 0, len(scores))
	for _, v := range scores {
		sentiments = append(sentiments, types.Sentiment{Score: float32(v)})
	}
	return ComputeSimpleAverageSentiment(sentiments), nil
}

// ComputeSimpleAverageSentiment averages a batch of scores. Returns 0
// for an empty batch.
func ComputeSimpleAverageSentiment(sentiments []types.Sentiment) float32 {
	var totalScore float32
	count := 0

	for _, s := range sentiments {
		totalScore += s.Score
		count++
	}

	if count == 0 {
		return 0
	}

	return totalScore / float32(count)
}

// InitLanguageClient initializes and returns a language client using
// the base64-encoded credentials from the environment.
func InitLanguageClient() (*language.Client, error) {
	var err error

	clientOnce.Do(func() {
		// Decode credentials
		encodedCreds := os.Getenv("NATURAL_LANGUAGE_CREDENTIALS")
		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			log.Fatalf("Failed to decode Natural language credentials: %v", err)
		}

		opt := option.WithCredentialsJSON(creds)
		languageClient, err = language.NewClient(context.Background(), opt)
		if err != nil {
			log.Fatalf("Failed to create Natural Language client: %v", err)
		}
	})

	return languageClient, err
}

func CloseLanguageClient() {
	if languageClient != nil {
		languageClient.Close()
	}
}
