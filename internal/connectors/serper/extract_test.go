package serper

import (
	"math"
	"testing"
)

func TestExtractMarketEvidence(t *testing.T) {
	tests := []struct {
		name          string
		results       []SearchResult
		expectedTrend float64
		expectedShare float64
		expectedRate  float64
	}{
		{
			name:    "no results",
			results: nil,
		},
		{
			name: "positive sentiment",
			results: []SearchResult{
				{Title: "Migraine drug market sees strong growth"},
				{Title: "Treatment demand rising worldwide"},
			},
			expectedTrend: 0.02,
		},
		{
			name: "mixed sentiment cancels",
			results: []SearchResult{
				{Title: "Market growth expected"},
				{Title: "Sales decline in Europe"},
			},
			expectedTrend: 0,
		},
		{
			name: "market share figure",
			results: []SearchResult{
				{Snippet: "The drug holds 12.5% market share in the US."},
			},
			expectedShare: 0.125,
		},
		{
			name: "growth rate figure",
			results: []SearchResult{
				{Snippet: "The segment is forecast to expand at a CAGR of 7.2% through 2030."},
			},
			expectedTrend: 0.01,
			expectedRate:  0.072,
		},
		{
			name: "trend capped",
			results: func() []SearchResult {
				var rs []SearchResult
				for i := 0; i < 30; i++ {
					rs = append(rs, SearchResult{Title: "growth"})
				}
				return rs
			}(),
			expectedTrend: 0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractMarketEvidence(tt.results)
			if math.Abs(got.MarketTrend-tt.expectedTrend) > 1e-12 {
				t.Errorf("MarketTrend = %v, want %v", got.MarketTrend, tt.expectedTrend)
			}
			if math.Abs(got.MarketShare-tt.expectedShare) > 1e-12 {
				t.Errorf("MarketShare = %v, want %v", got.MarketShare, tt.expectedShare)
			}
			if math.Abs(got.GrowthRate-tt.expectedRate) > 1e-12 {
				t.Errorf("GrowthRate = %v, want %v", got.GrowthRate, tt.expectedRate)
			}
		})
	}
}
