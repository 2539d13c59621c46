// Package serper derives market research evidence from a Serper-style
// search API: it queries for market reports on a disease and extracts
// numeric signals from the result snippets.
package serper

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	platformhttp "github.com/pharmascope/forecaster/internal/platform/http"
	"github.com/pharmascope/forecaster/models"
)

// Client is the Serper search API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *platformhttp.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new Serper client.
type ClientOptions struct {
	BaseURL        string
	APIKey         string
	RequestTimeout time.Duration
	RequestsPerSec int
}

// NewClient creates a new Serper search client.
func NewClient(opts ClientOptions) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://google.serper.dev/search"
	}

	return &Client{
		baseURL: opts.BaseURL,
		apiKey:  opts.APIKey,
		httpClient: platformhttp.NewClient(platformhttp.ClientOptions{
			Timeout:        opts.RequestTimeout,
			RequestsPerSec: opts.RequestsPerSec,
		}),
		logger: log.With().Str("component", "serper_client").Logger(),
	}
}

type searchRequest struct {
	Query      string `json:"q"`
	NumResults int    `json:"num"`
}

// SearchResult is a single organic or news result.
type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

type searchResponse struct {
	Organic []SearchResult `json:"organic"`
	News    []SearchResult `json:"news"`
}

func (c *Client) search(ctx context.Context, query string, numResults int) (searchResponse, error) {
	headers := map[string]string{"X-API-KEY": c.apiKey}

	c.logger.Debug().Str("query", query).Msg("Performing search")

	var resp searchResponse
	err := c.httpClient.PostJSON(ctx, c.baseURL, headers, searchRequest{Query: query, NumResults: numResults}, &resp)
	if err != nil {
		return searchResponse{}, fmt.Errorf("Serper search: %w", err)
	}

	return resp, nil
}

// GetMarketResearch searches for market reports on a disease and extracts
// trend, share and growth signals from the snippets.
func (c *Client) GetMarketResearch(ctx context.Context, disease string) (models.MarketEvidence, error) {
	query := fmt.Sprintf("%s pharmaceutical market size forecast", disease)

	resp, err := c.search(ctx, query, 10)
	if err != nil {
		return models.MarketEvidence{}, err
	}

	evidence := ExtractMarketEvidence(append(resp.Organic, resp.News...))

	c.logger.Debug().
		Float64("market_trend", evidence.MarketTrend).
		Float64("market_share", evidence.MarketShare).
		Float64("growth_rate", evidence.GrowthRate).
		Msg("Extracted market evidence")

	return evidence, nil
}

// GetCompetitorNews returns recent competitor headlines for a disease
// market, used as context for the AI analysis source.
func (c *Client) GetCompetitorNews(ctx context.Context, disease string) ([]string, error) {
	query := fmt.Sprintf("%s drug competitors pipeline news", disease)

	resp, err := c.search(ctx, query, 20)
	if err != nil {
		return nil, err
	}

	results := resp.News
	if len(results) == 0 {
		results = resp.Organic
	}

	headlines := make([]string, 0, len(results))
	for _, r := range results {
		headlines = append(headlines, r.Title)
	}

	c.logger.Debug().Int("count", len(headlines)).Msg("Fetched competitor headlines")

	return headlines, nil
}
