package notify

import (
	"strings"
	"testing"

	"github.com/pharmascope/forecaster/models"
)

func TestFormatReport(t *testing.T) {
	report := models.ForecastReport{
		Disease: "migraine",
		Horizon: 5,
		MarketSize: models.ForecastResult{
			Value:              146410,
			ConfidenceInterval: models.ConfidenceInterval{Lower: 100000, Upper: 150000},
		},
		PatientShare: models.ForecastResult{
			Value:              0.156,
			ConfidenceInterval: models.ConfidenceInterval{Lower: 0.156, Upper: 0.156},
		},
		Revenue: models.ForecastResult{
			Value:              166000000,
			ConfidenceInterval: models.ConfidenceInterval{Lower: 150000000, Upper: 180000000},
		},
	}

	msg := FormatReport(report)

	for _, want := range []string{"migraine", "5 years", "146410", "15.6%", "$166000000"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "Degraded") {
		t.Errorf("unexpected degraded marker:\n%s", msg)
	}
}

func TestFormatReportDegraded(t *testing.T) {
	report := models.ForecastReport{
		Disease:        "migraine",
		Horizon:        5,
		MissingSources: []string{"epidemiology", "ai_analysis"},
	}

	msg := FormatReport(report)
	if !strings.Contains(msg, "epidemiology, ai_analysis") {
		t.Errorf("missing sources not reported:\n%s", msg)
	}
}
