package suggest

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"

	"go-sentiment/types"
)

const maxLabelsForPrompt = 40
const maxPromptLength = 15000 // Rough character limit for prompt

// BuildPrompt turns a batch of unmapped raw labels into the prompt
// asking the model to propose lookup table entries. Deterministic, so
// it can be tested without an API key.
func BuildPrompt(labels []string) string {
	if len(labels) > maxLabelsForPrompt {
		log.Printf("Truncating label list from %d to %d for prompt.", len(labels), maxLabelsForPrompt)
		labels = labels[:maxLabelsForPrompt]
	}

	groupNames := make([]string, 0, len(types.Groups()))
	for _, g := range types.Groups() {
		groupNames = append(groupNames, string(g))
	}

	prompt := fmt.Sprintf(
		"The following raw sentiment labels from a social media dataset have no entry in our lookup table. "+
			"For each label, propose exactly one group from this fixed set: %s. "+
			"Answer one label per line in the form `label -> group`. Do not invent new groups.\n\n---\n%s\n---",
		strings.Join(groupNames, ", "),
		strings.Join(labels, "\n"),
	)

	if len(prompt) > maxPromptLength {
		log.Printf("Warning: prompt exceeds max length (%d), truncating.", maxPromptLength)
		prompt = prompt[:maxPromptLength]
	}
	return prompt
}

// SuggestTableEntries asks OpenAI to triage unmapped labels into the
// existing groups. The answer is advisory: a human still reviews it
// before any table change, so the raw text comes back as-is.
func SuggestTableEntries(ctx context.Context, client *openai.Client, labels []string) (string, error) {
	if len(labels) == 0 {
		return "", nil
	}

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that classifies free-text sentiment labels into a fixed set of groups.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: BuildPrompt(labels),
				},
			},
			MaxTokens:   300,
			N:           1,
			Temperature: 0.2, // Lower temperature for consistent group choices
		},
	)

	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
