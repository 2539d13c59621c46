// Package cdc fetches epidemiological evidence (prevalence, incidence) from
// a CDC-style disease surveillance API.
package cdc

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

// Client is the CDC API client.
type Client struct {
	baseURL    string
	httpClient *platformhttp.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new CDC client.
type ClientOptions struct {
	BaseURL        string
	RequestTimeout time.Duration
	RequestsPerSec int
}

// NewClient creates a new CDC API client.
func NewClient(opts ClientOptions) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://api.cdc.gov"
	}

	return &Client{
		baseURL: opts.BaseURL,
		httpClient: platformhttp.NewClient(platformhttp.ClientOptions{
			Timeout:        opts.RequestTimeout,
			RequestsPerSec: opts.RequestsPerSec,
		}),
		logger: log.With().Str("component", "cdc_client").Logger(),
	}
}

// diseaseDataResponse is the surveillance payload for a single disease.
// Absent fields decode to zero, which is the neutral default for the
// forecast engine.
type diseaseDataResponse struct {
	Disease    string  `json:"disease"`
	Region     string  `json:"region"`
	Prevalence float64 `json:"prevalence"`
	Incidence  float64 `json:"incidence"`
	Mortality  float64 `json:"mortality"`
}

// GetDiseaseData fetches prevalence and incidence rates for a disease in a
// region.
func (c *Client) GetDiseaseData(ctx context.Context, disease, region string) (models.EpiEvidence, error) {
	endpoint := fmt.Sprintf("%s/cdc/disease/%s/data?region=%s&limit=10",
		c.baseURL, url.PathEscape(disease), url.QueryEscape(region))

	c.logger.Debug().Str("disease", disease).Str("region", region).Msg("Fetching disease data")

	var data diseaseDataResponse
	if err := c.httpClient.GetJSON(ctx, endpoint, nil, &data); err != nil {
		return models.EpiEvidence{}, fmt.Errorf("CDC disease data: %w", err)
	}

	evidence := models.EpiEvidence{
		Prevalence: data.Prevalence,
		Incidence:  data.Incidence,
		Mortality:  data.Mortality,
	}

	c.logger.Debug().
		Float64("prevalence", evidence.Prevalence).
		Float64("incidence", evidence.Incidence).
		Msg("Fetched disease data")

	return evidence, nil
}
