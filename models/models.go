package models

import "time"

// Prior is a baseline belief about a forecast quantity before any
// case-specific evidence is seen.
type Prior struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// Approval status values reported by the regulatory source.
const (
	ApprovalApproved = "approved"
	ApprovalPending  = "pending"
)

// MarketEvidence holds signals derived from market research sources.
// Zero values mean the signal was unavailable.
type MarketEvidence struct {
	MarketTrend float64 `json:"market_trend"`
	MarketShare float64 `json:"market_share"`
	GrowthRate  float64 `json:"growth_rate"`
}

// EpiEvidence holds epidemiological signals for a disease. Prevalence and
// incidence are fractional population rates.
type EpiEvidence struct {
	Prevalence float64 `json:"prevalence"`
	Incidence  float64 `json:"incidence"`
	Mortality  float64 `json:"mortality,omitempty"`
}

// RegulatoryEvidence holds the approval state reported for a drug.
type RegulatoryEvidence struct {
	ApprovalStatus string `json:"approval_status"`
}

// Status returns the approval status, treating an absent value as pending.
func (r RegulatoryEvidence) Status() string {
	if r.ApprovalStatus == "" {
		return ApprovalPending
	}
	return r.ApprovalStatus
}

// PricingEvidence holds pricing signals for a drug. ReimbursementRate and
// PriceInflation are pointers because their documented defaults (0.8 and
// 0.05) are not zero; use the accessor methods instead of reading the
// fields directly.
type PricingEvidence struct {
	PricePerPatient   float64  `json:"price_per_patient"`
	ReimbursementRate *float64 `json:"reimbursement_rate,omitempty"`
	PriceInflation    *float64 `json:"price_inflation,omitempty"`
}

// Reimbursement returns the reimbursement rate, defaulting to 0.8.
func (p PricingEvidence) Reimbursement() float64 {
	if p.ReimbursementRate == nil {
		return 0.8
	}
	return *p.ReimbursementRate
}

// Inflation returns the yearly price inflation, defaulting to 0.05.
func (p PricingEvidence) Inflation() float64 {
	if p.PriceInflation == nil {
		return 0.05
	}
	return *p.PriceInflation
}

// CompetitorAnalysis counts expected competitive moves over the forecast
// window.
type CompetitorAnalysis struct {
	NewEntrants int `json:"new_entrants"`
	MarketExits int `json:"market_exits"`
}

// AIEvidence holds signals extracted by the AI analysis source.
type AIEvidence struct {
	CompetitorAnalysis  CompetitorAnalysis `json:"competitor_analysis"`
	TreatmentPreference float64            `json:"treatment_preference"`
}

// ConfidenceInterval is a two-sided bound with Lower <= Upper.
type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// ForecastResult is the output of a single forecast operation: the
// final-year value and the interval characterizing the whole trajectory.
type ForecastResult struct {
	Value              float64            `json:"value"`
	ConfidenceInterval ConfidenceInterval `json:"confidence_interval"`
}

// ForecastReport bundles the three forecast phases for one disease.
type ForecastReport struct {
	Disease        string         `json:"disease"`
	Drug           string         `json:"drug,omitempty"`
	Region         string         `json:"region,omitempty"`
	Horizon        int            `json:"forecast_horizon"`
	MarketSize     ForecastResult `json:"market_size"`
	PatientShare   ForecastResult `json:"patient_share"`
	Revenue        ForecastResult `json:"revenue"`
	MissingSources []string       `json:"missing_sources,omitempty"`
	GeneratedAt    time.Time      `json:"generated_at"`
}
