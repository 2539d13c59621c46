package forecast

import (
	"math"

	"github.com/pharmascope/forecaster/models"
)

// competitorFactor adjusts patient share for expected competitive moves:
// each new entrant erodes share by 10%, each market exit frees up 15%.
func competitorFactor(c models.CompetitorAnalysis) float64 {
	factor := 1.0
	if c.NewEntrants > 0 {
		factor *= 1 - 0.10*float64(c.NewEntrants)
	}
	if c.MarketExits > 0 {
		factor *= 1 + 0.15*float64(c.MarketExits)
	}
	return factor
}

// priceFactor compounds yearly price inflation up to the given year index.
func priceFactor(inflation float64, year int) float64 {
	return math.Pow(1+inflation, float64(year))
}
