package serper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pharmascope/forecaster/models"
)

// trendStep is the market trend contribution of one net sentiment mention.
const trendStep = 0.01

// maxTrend caps the extracted trend magnitude.
const maxTrend = 0.2

var positiveTerms = []string{
	"growth", "growing", "expand", "rising", "increase", "surge", "accelerat",
}

var negativeTerms = []string{
	"decline", "declining", "shrink", "falling", "decrease", "stagnant", "slowdown",
}

var (
	marketShareRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*%\s*(?:of the\s+)?market share`)
	growthRateRe  = regexp.MustCompile(`(?i)(?:CAGR|growth rate|annual growth)\s*(?:of\s*)?(\d+(?:\.\d+)?)\s*%`)
)

// ExtractMarketEvidence derives market signals from search results. Trend
// comes from net sentiment-keyword counts; share and growth come from the
// first percentage figure attached to the matching phrase. Results carrying
// no signal yield zero-valued evidence.
func ExtractMarketEvidence(results []SearchResult) models.MarketEvidence {
	var evidence models.MarketEvidence

	net := 0
	for _, r := range results {
		text := strings.ToLower(r.Title + " " + r.Snippet)

		for _, term := range positiveTerms {
			if strings.Contains(text, term) {
				net++
				break
			}
		}
		for _, term := range negativeTerms {
			if strings.Contains(text, term) {
				net--
				break
			}
		}

		if evidence.MarketShare == 0 {
			if m := marketShareRe.FindStringSubmatch(text); m != nil {
				if v, err := strconv.ParseFloat(m[1], 64); err == nil {
					evidence.MarketShare = v / 100
				}
			}
		}
		if evidence.GrowthRate == 0 {
			if m := growthRateRe.FindStringSubmatch(text); m != nil {
				if v, err := strconv.ParseFloat(m[1], 64); err == nil {
					evidence.GrowthRate = v / 100
				}
			}
		}
	}

	trend := float64(net) * trendStep
	if trend > maxTrend {
		trend = maxTrend
	}
	if trend < -maxTrend {
		trend = -maxTrend
	}
	evidence.MarketTrend = trend

	return evidence
}
