package forecast

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pharmascope/forecaster/internal/stats"
	"github.com/pharmascope/forecaster/models"
)

const (
	// Per-year multiplicative growth applied to the market size posterior.
	growthApproved = 1.10
	growthPending  = 1.05

	// epiScale converts fractional prevalence x incidence into an absolute
	// patient-count proxy.
	epiScale = 1000
	// trendStdScale treats market trend magnitude as estimate uncertainty.
	trendStdScale = 100_000

	patientShareLikelihoodStd = 0.1
	revenueRelativeStd        = 0.20

	confidenceLevel = 0.95

	// minLikelihoodStd floors a degenerate likelihood standard deviation so
	// the precision-weighted fusion never divides by zero.
	minLikelihoodStd = 1e-6
)

// Priors holds the engine's baseline beliefs, one per forecast quantity.
type Priors struct {
	MarketSize   models.Prior
	PatientShare models.Prior
	Revenue      models.Prior
}

// DefaultPriors returns the built-in priors used when no override is given.
func DefaultPriors() Priors {
	return Priors{
		MarketSize:   models.Prior{Mean: 1_000_000, StdDev: 500_000},
		PatientShare: models.Prior{Mean: 0.2, StdDev: 0.1},
		Revenue:      models.Prior{Mean: 100_000_000, StdDev: 50_000_000},
	}
}

// Options holds options for constructing an Engine.
type Options struct {
	// Priors overrides the built-in priors when non-nil.
	Priors *Priors
	// Seasonality and Trend gate an alternate seasonal modelling path; they
	// do not affect the three forecast operations.
	Seasonality bool
	Trend       bool
}

// Engine produces multi-phase forecasts by fusing evidence with fixed
// priors. It holds no mutable state after construction, so a single Engine
// is safe for concurrent use.
type Engine struct {
	priors      Priors
	seasonality bool
	trend       bool
	logger      zerolog.Logger
}

// New creates a forecast engine, validating that every prior has a positive
// standard deviation.
func New(opts Options) (*Engine, error) {
	priors := DefaultPriors()
	if opts.Priors != nil {
		priors = *opts.Priors
	}

	for _, p := range []struct {
		name  string
		prior models.Prior
	}{
		{"market_size", priors.MarketSize},
		{"patient_share", priors.PatientShare},
		{"revenue", priors.Revenue},
	} {
		if p.prior.StdDev <= 0 {
			return nil, fmt.Errorf("%s prior: standard deviation must be positive, got %v", p.name, p.prior.StdDev)
		}
	}

	return &Engine{
		priors:      priors,
		seasonality: opts.Seasonality,
		trend:       opts.Trend,
		logger:      log.With().Str("component", "forecast_engine").Logger(),
	}, nil
}

// ForecastMarketSize projects the addressable patient market for a disease
// across the horizon. Missing evidence fields degrade to their neutral
// defaults and never cause an error.
func (e *Engine) ForecastMarketSize(market models.MarketEvidence, epi models.EpiEvidence, regulatory models.RegulatoryEvidence, horizon int) (models.ForecastResult, error) {
	if horizon < 1 {
		return models.ForecastResult{}, fmt.Errorf("forecast horizon must be at least 1 year, got %d", horizon)
	}

	likelihoodMean := epi.Prevalence * epi.Incidence * epiScale
	likelihoodStd := market.MarketTrend * trendStdScale

	posterior := posteriorMean(e.priors.MarketSize, likelihoodMean, likelihoodStd)

	growth := growthPending
	if regulatory.Status() == models.ApprovalApproved {
		growth = growthApproved
	}

	trajectory := make([]float64, horizon)
	for year := range trajectory {
		trajectory[year] = posterior * math.Pow(growth, float64(year))
	}

	result := models.ForecastResult{
		Value:              trajectory[horizon-1],
		ConfidenceInterval: confidenceInterval(trajectory),
	}

	e.logger.Debug().
		Float64("posterior_mean", posterior).
		Float64("growth_factor", growth).
		Int("horizon", horizon).
		Float64("value", result.Value).
		Msg("Market size forecast")

	return result, nil
}

// ForecastPatientShare projects the share of treated patients captured by
// the drug. The competitor factor depends only on the current competitive
// landscape, not on the year, so it is applied flat rather than compounded.
func (e *Engine) ForecastPatientShare(market models.MarketEvidence, ai models.AIEvidence, horizon int) (models.ForecastResult, error) {
	if horizon < 1 {
		return models.ForecastResult{}, fmt.Errorf("forecast horizon must be at least 1 year, got %d", horizon)
	}

	likelihoodMean := market.MarketShare * ai.TreatmentPreference
	posterior := posteriorMean(e.priors.PatientShare, likelihoodMean, patientShareLikelihoodStd)

	factor := competitorFactor(ai.CompetitorAnalysis)

	trajectory := make([]float64, horizon)
	for year := range trajectory {
		trajectory[year] = posterior * factor
	}

	result := models.ForecastResult{
		Value:              trajectory[horizon-1],
		ConfidenceInterval: confidenceInterval(trajectory),
	}

	e.logger.Debug().
		Float64("posterior_mean", posterior).
		Float64("competitor_factor", factor).
		Int("horizon", horizon).
		Float64("value", result.Value).
		Msg("Patient share forecast")

	return result, nil
}

// ForecastRevenue projects yearly revenue from the already-computed market
// size and patient share values. Callers must run the other two phases
// first; this operation does not validate where the inputs came from.
func (e *Engine) ForecastRevenue(marketSize, patientShare float64, pricing models.PricingEvidence, horizon int) (models.ForecastResult, error) {
	if horizon < 1 {
		return models.ForecastResult{}, fmt.Errorf("forecast horizon must be at least 1 year, got %d", horizon)
	}

	base := marketSize * patientShare * pricing.PricePerPatient
	likelihoodMean := base * pricing.Reimbursement()
	likelihoodStd := base * revenueRelativeStd

	posterior := posteriorMean(e.priors.Revenue, likelihoodMean, likelihoodStd)

	inflation := pricing.Inflation()
	trajectory := make([]float64, horizon)
	for year := range trajectory {
		trajectory[year] = posterior * priceFactor(inflation, year)
	}

	result := models.ForecastResult{
		Value:              trajectory[horizon-1],
		ConfidenceInterval: confidenceInterval(trajectory),
	}

	e.logger.Debug().
		Float64("posterior_mean", posterior).
		Float64("price_inflation", inflation).
		Int("horizon", horizon).
		Float64("value", result.Value).
		Msg("Revenue forecast")

	return result, nil
}

// posteriorMean fuses a prior with an evidence-derived likelihood using the
// closed-form Gaussian conjugate update: each side is weighted by its
// precision (inverse variance). The likelihood variance is floored so a
// zero-uncertainty input stays finite; the sign of likelihoodStd is
// irrelevant since only its square enters the update.
func posteriorMean(prior models.Prior, likelihoodMean, likelihoodStd float64) float64 {
	variance := likelihoodStd * likelihoodStd
	if variance < minLikelihoodStd*minLikelihoodStd {
		variance = minLikelihoodStd * minLikelihoodStd
	}

	priorPrecision := 1 / (prior.StdDev * prior.StdDev)
	likelihoodPrecision := 1 / variance

	return (prior.Mean*priorPrecision + likelihoodMean*likelihoodPrecision) /
		(priorPrecision + likelihoodPrecision)
}

// confidenceInterval characterizes the variability of the whole trajectory,
// not the final year alone.
func confidenceInterval(trajectory []float64) models.ConfidenceInterval {
	lower, upper := stats.StudentTInterval(trajectory, confidenceLevel)
	return models.ConfidenceInterval{Lower: lower, Upper: upper}
}
