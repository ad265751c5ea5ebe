package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sangkips/bizdesk-api/internal/config"
	"github.com/sangkips/bizdesk-api/internal/domain/entity"
	"github.com/sangkips/bizdesk-api/internal/domain/gateway"
	"google.golang.org/api/option"
)

// GeminiAdvisor analyzes quotes with Google Gemini using the official SDK
type GeminiAdvisor struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiAdvisor creates the client once; it is shared by all requests
func NewGeminiAdvisor(ctx context.Context, apiKey, modelName string) (*GeminiAdvisor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	return &GeminiAdvisor{
		client: client,
		model:  model,
	}, nil
}

// Close closes the client connection
func (a *GeminiAdvisor) Close() {
	if a.client != nil {
		a.client.Close()
	}
}

func (a *GeminiAdvisor) Mode() string {
	return config.ModeLive
}

// AnalyzeQuote asks the model for a rationale and a win probability (0-100)
func (a *GeminiAdvisor) AnalyzeQuote(ctx context.Context, quote *entity.Quote) (*gateway.QuoteAnalysis, error) {
	resp, err := a.model.GenerateContent(ctx, genai.Text(buildQuotePrompt(quote)))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}

	return parseAnalysis(text.String())
}

type analysisResponse struct {
	Rationale      string  `json:"onderbouwing"`
	WinProbability float64 `json:"winkans"`
}

func parseAnalysis(raw string) (*gateway.QuoteAnalysis, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "```"), "```")

	var out analysisResponse
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &out); err != nil {
		return nil, fmt.Errorf("failed to decode gemini analysis: %w", err)
	}
	if strings.TrimSpace(out.Rationale) == "" {
		return nil, fmt.Errorf("gemini analysis has no rationale")
	}
	return &gateway.QuoteAnalysis{
		Rationale:      strings.TrimSpace(out.Rationale),
		WinProbability: clampProbability(out.WinProbability),
	}, nil
}

func clampProbability(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
