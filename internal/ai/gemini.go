package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const polishPrompt = `Rewrite the following taxi fare quote into a short, friendly
customer message. Keep every amount, distance and line item exactly as given.
Do not add amounts, discounts or promises that are not in the original.
Reply with the message text only.

Quote:
%s`

// GeminiComposer polishes quote messages using Google's Gemini models.
type GeminiComposer struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiComposer initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiComposer(ctx context.Context, apiKey string) (*GeminiComposer, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Flash keeps latency low; quote polish is fire-and-forget.
	model := client.GenerativeModel("gemini-2.0-flash")
	model.SetTemperature(0.4)

	return &GeminiComposer{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (c *GeminiComposer) Close() {
	c.client.Close()
}

// Polish rewrites the deterministic draft. Amounts must survive verbatim;
// callers fall back to the draft on any error.
func (c *GeminiComposer) Polish(ctx context.Context, draft string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(polishPrompt, draft)))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(out.String()), nil
}
