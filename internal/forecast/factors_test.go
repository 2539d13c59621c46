package forecast

import (
	"math"
	"testing"

	"github.com/pharmascope/forecaster/models"
)

func TestCompetitorFactor(t *testing.T) {
	tests := []struct {
		name     string
		analysis models.CompetitorAnalysis
		expected float64
	}{
		{name: "no competitive moves", analysis: models.CompetitorAnalysis{}, expected: 1.0},
		{name: "entrants only", analysis: models.CompetitorAnalysis{NewEntrants: 2}, expected: 0.8},
		{name: "exits only", analysis: models.CompetitorAnalysis{MarketExits: 1}, expected: 1.15},
		{name: "entrants and exits", analysis: models.CompetitorAnalysis{NewEntrants: 2, MarketExits: 1}, expected: 0.8 * 1.15},
		{name: "negative counts ignored", analysis: models.CompetitorAnalysis{NewEntrants: -3, MarketExits: -1}, expected: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := competitorFactor(tt.analysis); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("competitorFactor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPriceFactorCompounds(t *testing.T) {
	year1 := priceFactor(0.05, 1)
	year2 := priceFactor(0.05, 2)

	if math.Abs(year2-year1*year1) > 1e-12 {
		t.Errorf("priceFactor(0.05, 2) = %v, want %v", year2, year1*year1)
	}
	if priceFactor(0.05, 0) != 1 {
		t.Errorf("priceFactor(0.05, 0) = %v, want 1", priceFactor(0.05, 0))
	}
	if year1 <= 1 {
		t.Errorf("priceFactor(0.05, 1) = %v, want > 1", year1)
	}
}
