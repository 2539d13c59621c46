// Package aianalysis extracts competitive-landscape evidence for a disease
// market using an LLM, replacing the analyst judgement the other sources
// cannot provide.
package aianalysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pharmascope/forecaster/models"
)

const systemPrompt = "You are a pharmaceutical market analyst. Respond with strict JSON only, no prose."

// Caller generates a JSON response for a prompt. It exists so tests can
// substitute the LLM.
type Caller interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// Messager is the slice of the Anthropic client the caller needs.
type Messager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// AnthropicCaller generates completions through the Anthropic API.
type AnthropicCaller struct {
	messages Messager
}

// NewAnthropicCaller creates a caller backed by the Anthropic API.
func NewAnthropicCaller(apiKey string) *AnthropicCaller {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicCaller{messages: &client.Messages}
}

// GenerateJSON sends the prompt and concatenates the text blocks of the
// reply.
func (a *AnthropicCaller) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := a.messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.ModelClaudeSonnet4_20250514,
		MaxTokens:   1024,
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
		Temperature: anthropic.Float(0),
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	return sb.String(), nil
}

// Client produces AI-derived evidence records.
type Client struct {
	caller Caller
	logger zerolog.Logger
}

// NewClient creates an AI analysis client.
func NewClient(caller Caller) *Client {
	return &Client{
		caller: caller,
		logger: log.With().Str("component", "aianalysis_client").Logger(),
	}
}

// analysisReply mirrors the JSON schema the prompt requests.
type analysisReply struct {
	CompetitorAnalysis struct {
		NewEntrants int `json:"new_entrants"`
		MarketExits int `json:"market_exits"`
	} `json:"competitor_analysis"`
	TreatmentPreference float64 `json:"treatment_preference"`
}

// AnalyzeMarket asks the LLM for the competitive landscape of a disease
// market, optionally grounding it on recent headlines.
func (c *Client) AnalyzeMarket(ctx context.Context, disease string, headlines []string) (models.AIEvidence, error) {
	prompt := buildPrompt(disease, headlines)

	raw, err := c.caller.GenerateJSON(ctx, prompt)
	if err != nil {
		return models.AIEvidence{}, fmt.Errorf("AI analysis: %w", err)
	}

	reply, err := parseReply(raw)
	if err != nil {
		c.logger.Warn().Err(err).Str("raw", raw).Msg("Unparseable AI analysis reply")
		return models.AIEvidence{}, fmt.Errorf("AI analysis: %w", err)
	}

	evidence := models.AIEvidence{
		CompetitorAnalysis: models.CompetitorAnalysis{
			NewEntrants: reply.CompetitorAnalysis.NewEntrants,
			MarketExits: reply.CompetitorAnalysis.MarketExits,
		},
		TreatmentPreference: reply.TreatmentPreference,
	}

	c.logger.Debug().
		Int("new_entrants", evidence.CompetitorAnalysis.NewEntrants).
		Int("market_exits", evidence.CompetitorAnalysis.MarketExits).
		Float64("treatment_preference", evidence.TreatmentPreference).
		Msg("AI market analysis complete")

	return evidence, nil
}

func buildPrompt(disease string, headlines []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Assess the competitive landscape of the %s treatment market over the next 5 years.\n", disease)
	if len(headlines) > 0 {
		sb.WriteString("Recent headlines:\n")
		for _, h := range headlines {
			sb.WriteString("- " + h + "\n")
		}
	}
	sb.WriteString(`Respond with JSON matching exactly:
{"competitor_analysis": {"new_entrants": <int>, "market_exits": <int>}, "treatment_preference": <float 0..1>}`)
	return sb.String()
}

// parseReply decodes the model output, tolerating a fenced code block
// around the JSON.
func parseReply(raw string) (analysisReply, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var reply analysisReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return analysisReply{}, fmt.Errorf("parsing reply: %w", err)
	}

	if reply.TreatmentPreference < 0 || reply.TreatmentPreference > 1 {
		return analysisReply{}, fmt.Errorf("treatment preference %v out of range", reply.TreatmentPreference)
	}

	return reply, nil
}
