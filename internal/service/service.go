// Package service orchestrates a full forecast run: it gathers evidence
// from the upstream sources concurrently, degrades missing sources to
// default-valued evidence, and sequences the three forecast phases.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pharmascope/forecaster/internal/forecast"
	"github.com/pharmascope/forecaster/models"
)

// DefaultHorizon is used when a request does not specify one.
const DefaultHorizon = 5

// MarketResearchSource provides market evidence and competitor headlines.
type MarketResearchSource interface {
	GetMarketResearch(ctx context.Context, disease string) (models.MarketEvidence, error)
	GetCompetitorNews(ctx context.Context, disease string) ([]string, error)
}

// EpidemiologySource provides disease prevalence and incidence.
type EpidemiologySource interface {
	GetDiseaseData(ctx context.Context, disease, region string) (models.EpiEvidence, error)
}

// RegulatorySource provides approval and pricing records for a drug.
type RegulatorySource interface {
	GetApprovalData(ctx context.Context, drug string) (models.RegulatoryEvidence, models.PricingEvidence, error)
}

// AIAnalysisSource provides AI-derived competitive evidence.
type AIAnalysisSource interface {
	AnalyzeMarket(ctx context.Context, disease string, headlines []string) (models.AIEvidence, error)
}

// Service runs multi-phase forecasts against a fixed set of sources.
type Service struct {
	engine *forecast.Engine
	market MarketResearchSource
	epi    EpidemiologySource
	reg    RegulatorySource
	ai     AIAnalysisSource
	logger zerolog.Logger
}

// New creates a forecast service.
func New(engine *forecast.Engine, market MarketResearchSource, epi EpidemiologySource, reg RegulatorySource, ai AIAnalysisSource) *Service {
	return &Service{
		engine: engine,
		market: market,
		epi:    epi,
		reg:    reg,
		ai:     ai,
		logger: log.With().Str("component", "forecast_service").Logger(),
	}
}

// Request identifies the disease market to forecast.
type Request struct {
	Disease string
	// Drug defaults to the disease name when empty.
	Drug    string
	Region  string
	Horizon int
}

// evidenceSet is the call-local bundle of evidence for one forecast run.
type evidenceSet struct {
	market    models.MarketEvidence
	epi       models.EpiEvidence
	reg       models.RegulatoryEvidence
	pricing   models.PricingEvidence
	ai        models.AIEvidence
	headlines []string
	missing   []string

	mu sync.Mutex
}

func (s *evidenceSet) markMissing(source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.missing = append(s.missing, source)
}

// GenerateForecast gathers evidence and runs the three forecast phases in
// order: market size and patient share feed the revenue phase. A failing
// source is reported in the result's MissingSources, never as an error.
func (s *Service) GenerateForecast(ctx context.Context, req Request) (models.ForecastReport, error) {
	if req.Disease == "" {
		return models.ForecastReport{}, fmt.Errorf("disease is required")
	}
	if req.Drug == "" {
		req.Drug = req.Disease
	}
	if req.Horizon == 0 {
		req.Horizon = DefaultHorizon
	}

	evidence := s.gatherEvidence(ctx, req)

	marketSize, err := s.engine.ForecastMarketSize(evidence.market, evidence.epi, evidence.reg, req.Horizon)
	if err != nil {
		return models.ForecastReport{}, fmt.Errorf("market size phase: %w", err)
	}

	patientShare, err := s.engine.ForecastPatientShare(evidence.market, evidence.ai, req.Horizon)
	if err != nil {
		return models.ForecastReport{}, fmt.Errorf("patient share phase: %w", err)
	}

	revenue, err := s.engine.ForecastRevenue(marketSize.Value, patientShare.Value, evidence.pricing, req.Horizon)
	if err != nil {
		return models.ForecastReport{}, fmt.Errorf("revenue phase: %w", err)
	}

	report := models.ForecastReport{
		Disease:        req.Disease,
		Drug:           req.Drug,
		Region:         req.Region,
		Horizon:        req.Horizon,
		MarketSize:     marketSize,
		PatientShare:   patientShare,
		Revenue:        revenue,
		MissingSources: evidence.missing,
		GeneratedAt:    time.Now().UTC(),
	}

	s.logger.Info().
		Str("disease", req.Disease).
		Int("horizon", req.Horizon).
		Strs("missing_sources", evidence.missing).
		Float64("revenue", revenue.Value).
		Msg("Forecast complete")

	return report, nil
}

// gatherEvidence fetches the four independent sources in parallel, then the
// AI analysis which consumes the competitor headlines. Failures degrade to
// zero-valued evidence.
func (s *Service) gatherEvidence(ctx context.Context, req Request) *evidenceSet {
	evidence := &evidenceSet{}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		market, err := s.market.GetMarketResearch(ctx, req.Disease)
		if err != nil {
			s.logger.Warn().Err(err).Msg("Market research unavailable")
			evidence.markMissing("market_research")
			return
		}
		evidence.market = market
	}()

	go func() {
		defer wg.Done()
		epi, err := s.epi.GetDiseaseData(ctx, req.Disease, req.Region)
		if err != nil {
			s.logger.Warn().Err(err).Msg("Epidemiological data unavailable")
			evidence.markMissing("epidemiology")
			return
		}
		evidence.epi = epi
	}()

	go func() {
		defer wg.Done()
		reg, pricing, err := s.reg.GetApprovalData(ctx, req.Drug)
		if err != nil {
			s.logger.Warn().Err(err).Msg("Regulatory data unavailable")
			evidence.markMissing("regulatory")
			return
		}
		evidence.reg = reg
		evidence.pricing = pricing
	}()

	go func() {
		defer wg.Done()
		headlines, err := s.market.GetCompetitorNews(ctx, req.Disease)
		if err != nil {
			// Headlines only enrich the AI prompt; their loss is not a
			// missing source.
			s.logger.Warn().Err(err).Msg("Competitor news unavailable")
			return
		}
		evidence.headlines = headlines
	}()

	wg.Wait()

	ai, err := s.ai.AnalyzeMarket(ctx, req.Disease, evidence.headlines)
	if err != nil {
		s.logger.Warn().Err(err).Msg("AI analysis unavailable")
		evidence.markMissing("ai_analysis")
	} else {
		evidence.ai = ai
	}

	return evidence
}
