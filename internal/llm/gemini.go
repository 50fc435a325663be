package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the Gemini model used for job spec extraction.
const DefaultModel = "gemini-2.5-flash"

const extractionPrompt = `Extract a structured job specification from the job posting below.

Return ONLY valid JSON matching this exact structure:
{
  "role": string,
  "seniority": string, // junior, mid, senior, staff, lead, principal or unspecified
  "responsibilities": [{"label": string, "evidence": string, "priority": "medium"}],
  "requirements_must": [{"label": string, "evidence": string, "priority": "high"}],
  "requirements_nice": [{"label": string, "evidence": string, "priority": "low"}],
  "stack": [string] // lowercase technology names
}

Omit any field you cannot extract. Evidence must be a short quote from the posting.

Job posting:
%s`

// GeminiOverride implements Override using Google Gemini.
type GeminiOverride struct {
	client *genai.Client
	model  string
}

// NewGeminiOverride creates a Gemini-backed extraction override.
func NewGeminiOverride(ctx context.Context, apiKey string) (*GeminiOverride, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiOverride{
		client: client,
		model:  DefaultModel,
	}, nil
}

// ParseJobDescription asks Gemini for a partial JobSpec extracted from the posting.
func (o *GeminiOverride) ParseJobDescription(ctx context.Context, jdText string) (*JobSpecPatch, error) {
	model := o.client.GenerativeModel(o.model)
	model.SetTemperature(0.1) // Low temperature for consistent output

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(extractionPrompt, jdText)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}

	var patch JobSpecPatch
	if err := json.Unmarshal([]byte(cleanJSONBlock(text)), &patch); err != nil {
		return nil, fmt.Errorf("failed to parse extraction response: %w", err)
	}

	return &patch, nil
}

// Close releases the underlying client.
func (o *GeminiOverride) Close() error {
	return o.client.Close()
}

// extractTextFromResponse pulls the text parts out of a Gemini response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	result := strings.TrimSpace(sb.String())
	if result == "" {
		return "", fmt.Errorf("no text content in response")
	}
	return result, nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}
	return text
}
