package generate

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"probelab/internal/trajectory"
)

// Gemini implements trajectory.Generator using Google's Gemini API via the
// genai SDK.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed generator.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

// Generate maps the role-tagged history onto Gemini contents (system turns
// become the system instruction, assistant turns the model role) and returns
// the reply text.
func (g *Gemini) Generate(ctx context.Context, messages []trajectory.Message) (string, error) {
	var system string
	var contents []*genai.Content
	for _, m := range messages {
		switch m.Role {
		case trajectory.RoleSystem:
			system = m.Content
		case trajectory.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	// Temperature 0 for greedy decoding.
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("GenAI generation failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return strings.TrimSpace(text), nil
}
