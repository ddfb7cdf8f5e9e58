// File: services/gateway/gemini.go
package gateway

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const faqSystemPrompt = "You are the FAQ assistant of the Museum Information and Reservation System. " +
	"Answer visitor questions about the Louvre, Metropolitan Museum of Art, British Museum and " +
	"National Gallery concisely. If a question is about making a reservation, suggest returning " +
	"to the booking assistant.\n\nVisitor question: "

// GeminiEscalationGateway serves FAQ queries in-process against Gemini
// instead of the remote FAQ service.
type GeminiEscalationGateway struct {
	model *genai.GenerativeModel
}

func NewGeminiEscalationGateway(apiKey string) (*GeminiEscalationGateway, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiEscalationGateway{model: model}, nil
}

func (g *GeminiEscalationGateway) Ask(ctx context.Context, sessionID, query string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(faqSystemPrompt+query))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

var _ EscalationGateway = (*GeminiEscalationGateway)(nil)
