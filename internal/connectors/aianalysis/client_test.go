package aianalysis

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubCaller struct {
	response string
	err      error
	prompt   string
}

func (s *stubCaller) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func TestAnalyzeMarket(t *testing.T) {
	stub := &stubCaller{response: `{"competitor_analysis": {"new_entrants": 2, "market_exits": 1}, "treatment_preference": 0.7}`}
	client := NewClient(stub)

	evidence, err := client.AnalyzeMarket(context.Background(), "migraine", []string{"Rival launches generic"})
	if err != nil {
		t.Fatalf("AnalyzeMarket() failed: %v", err)
	}
	if evidence.CompetitorAnalysis.NewEntrants != 2 {
		t.Errorf("new entrants = %d, want 2", evidence.CompetitorAnalysis.NewEntrants)
	}
	if evidence.CompetitorAnalysis.MarketExits != 1 {
		t.Errorf("market exits = %d, want 1", evidence.CompetitorAnalysis.MarketExits)
	}
	if evidence.TreatmentPreference != 0.7 {
		t.Errorf("treatment preference = %v, want 0.7", evidence.TreatmentPreference)
	}
	if !strings.Contains(stub.prompt, "migraine") || !strings.Contains(stub.prompt, "Rival launches generic") {
		t.Errorf("prompt missing context: %q", stub.prompt)
	}
}

func TestAnalyzeMarketFencedReply(t *testing.T) {
	stub := &stubCaller{response: "```json\n{\"competitor_analysis\": {\"new_entrants\": 1, \"market_exits\": 0}, \"treatment_preference\": 0.5}\n```"}
	client := NewClient(stub)

	evidence, err := client.AnalyzeMarket(context.Background(), "migraine", nil)
	if err != nil {
		t.Fatalf("AnalyzeMarket() failed: %v", err)
	}
	if evidence.CompetitorAnalysis.NewEntrants != 1 {
		t.Errorf("new entrants = %d, want 1", evidence.CompetitorAnalysis.NewEntrants)
	}
}

func TestAnalyzeMarketErrors(t *testing.T) {
	tests := []struct {
		name string
		stub *stubCaller
	}{
		{name: "transport failure", stub: &stubCaller{err: errors.New("boom")}},
		{name: "non-JSON reply", stub: &stubCaller{response: "I think the market is competitive."}},
		{name: "preference out of range", stub: &stubCaller{response: `{"competitor_analysis": {}, "treatment_preference": 1.5}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.stub)
			if _, err := client.AnalyzeMarket(context.Background(), "migraine", nil); err == nil {
				t.Error("expected error")
			}
		})
	}
}
