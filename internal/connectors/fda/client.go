// Package fda fetches regulatory and pricing evidence for a drug from an
// openFDA-style API.
package fda

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	platformhttp "github.com/pharmascope/forecaster/internal/platform/http"
	"github.com/pharmascope/forecaster/models"
)

// Client is the FDA API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *platformhttp.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new FDA client.
type ClientOptions struct {
	BaseURL        string
	APIKey         string
	RequestTimeout time.Duration
	RequestsPerSec int
}

// NewClient creates a new FDA API client.
func NewClient(opts ClientOptions) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://api.fda.gov"
	}

	return &Client{
		baseURL: opts.BaseURL,
		apiKey:  opts.APIKey,
		httpClient: platformhttp.NewClient(platformhttp.ClientOptions{
			Timeout:        opts.RequestTimeout,
			RequestsPerSec: opts.RequestsPerSec,
		}),
		logger: log.With().Str("component", "fda_client").Logger(),
	}
}

// approvalRecord is one result row of the drug approval endpoint. Pointer
// fields keep absent values distinguishable from explicit zeros.
type approvalRecord struct {
	BrandName         string   `json:"brand_name"`
	ApprovalStatus    string   `json:"approval_status"`
	PricePerPatient   float64  `json:"price_per_patient"`
	ReimbursementRate *float64 `json:"reimbursement_rate"`
	PriceInflation    *float64 `json:"price_inflation"`
}

type approvalResponse struct {
	Results []approvalRecord `json:"results"`
}

// GetApprovalData fetches the approval record for a drug and splits it into
// the regulatory and pricing evidence it carries. An empty result set is not
// an error; it yields default-valued evidence.
func (c *Client) GetApprovalData(ctx context.Context, drug string) (models.RegulatoryEvidence, models.PricingEvidence, error) {
	endpoint := fmt.Sprintf("%s/drug/drugsfda.json?search=%s&limit=1",
		c.baseURL, url.QueryEscape(fmt.Sprintf("brand_name:%q", drug)))
	if c.apiKey != "" {
		endpoint += "&api_key=" + url.QueryEscape(c.apiKey)
	}

	c.logger.Debug().Str("drug", drug).Msg("Fetching approval data")

	var data approvalResponse
	if err := c.httpClient.GetJSON(ctx, endpoint, nil, &data); err != nil {
		return models.RegulatoryEvidence{}, models.PricingEvidence{}, fmt.Errorf("FDA approval data: %w", err)
	}

	if len(data.Results) == 0 {
		c.logger.Warn().Str("drug", drug).Msg("No approval record found, using defaults")
		return models.RegulatoryEvidence{}, models.PricingEvidence{}, nil
	}

	record := data.Results[0]
	regulatory := models.RegulatoryEvidence{ApprovalStatus: record.ApprovalStatus}
	pricing := models.PricingEvidence{
		PricePerPatient:   record.PricePerPatient,
		ReimbursementRate: record.ReimbursementRate,
		PriceInflation:    record.PriceInflation,
	}

	c.logger.Debug().
		Str("approval_status", regulatory.Status()).
		Float64("price_per_patient", pricing.PricePerPatient).
		Msg("Fetched approval data")

	return regulatory, pricing, nil
}
