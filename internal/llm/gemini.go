package llm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

const geminiModel = "gemini-2.0-flash"

// Gemini pricing (per million tokens)
const (
	geminiInputPricePerMillion  = 0.10
	geminiOutputPricePerMillion = 0.40
)

// Prompt is a single generation request. Text is always set; ImageJPEG is
// set only for vision analysis and is sent as an inline multimodal part.
type Prompt struct {
	Text      string
	ImageJPEG []byte
}

// GeminiClient calls Google's Gemini API for nutrition analysis.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a Gemini-backed client with the given API key.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

// Generate executes a single GenerateContent call and returns the first
// candidate's text. No retries are performed; a failed call surfaces
// immediately to the caller.
func (g *GeminiClient) Generate(ctx context.Context, prompt Prompt) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt.Text),
	}
	if len(prompt.ImageJPEG) > 0 {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{Data: prompt.ImageJPEG, MIMEType: "image/jpeg"},
		})
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, geminiModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}

	// Log usage and cost
	if result.UsageMetadata != nil {
		inputTokens := int64(result.UsageMetadata.PromptTokenCount)
		outputTokens := int64(result.UsageMetadata.CandidatesTokenCount)
		cost := calculateGeminiCost(inputTokens, outputTokens)
		log.Info().
			Str("model", geminiModel).
			Bool("multimodal", len(prompt.ImageJPEG) > 0).
			Int64("inputTokens", inputTokens).
			Int64("outputTokens", outputTokens).
			Float64("costUSD", cost).
			Msg("nutrition analysis llm call")
	}

	return result.Text(), nil
}

func calculateGeminiCost(inputTokens, outputTokens int64) float64 {
	inputCost := float64(inputTokens) / 1_000_000 * geminiInputPricePerMillion
	outputCost := float64(outputTokens) / 1_000_000 * geminiOutputPricePerMillion
	return inputCost + outputCost
}
