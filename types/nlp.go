package types

// Sentiment is a document-level score from the Natural Language API.
// Score is the overall polarity in [-1, 1]; Magnitude the strength.
type Sentiment struct {
	Magnitude float32 `json:"magnitude"`
	Score     float32 `json:"score"`
}
