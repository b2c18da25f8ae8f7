package mlmodel

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"

	"go-sentiment/dataset"
	"go-sentiment/types"
)

// MLRequest maps a row id to its post text.
type MLRequest map[string]string

// MLResponse maps a row id to the model's class probabilities.
type MLResponse map[string][]float64

const defaultModelURL = "https://sentimentmodel-165032778338.us-central1.run.app/posts/"

// RequestFromDataset builds a model request from the Text column,
// keyed "row-<index>" so responses can be matched back to rows.
func RequestFromDataset(ds dataset.Dataset) (MLRequest, error) {
	if !ds.HasColumn(types.TextColumn) {
		return nil, &types.SchemaError{Column: types.TextColumn}
	}
	s, err := ds.Col(types.TextColumn)
	if err != nil {
		return nil, err
	}

	req := make(MLRequest, ds.Nrow())
	for i, text := range s.Records() {
		req["row-"+strconv.Itoa(i)] = text
	}
	return req, nil
}

// CallModel sends a batch of texts to the hosted classifier and
// returns a probability vector per row. Set SENTIMENT_MODEL_URL to
// point at a different deployment.
func CallModel(inputs MLRequest) (MLResponse, error) {
	url := os.Getenv("SENTIMENT_MODEL_URL")
	if url == "" {
		url = defaultModelURL
	}

	payloadBytes, err := json.Marshal(inputs)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("ML model returned status: " + resp.Status)
	}

	var mlResp MLResponse
	if err := json.NewDecoder(resp.Body).Decode(&mlResp); err != nil {
		return nil, err
	}

	return mlResp, nil
}
