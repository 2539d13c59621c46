package cdc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGetDiseaseData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/cdc/disease/migraine/") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("region"); got != "US" {
			t.Errorf("region = %q, want US", got)
		}
		w.Write([]byte(`{"disease": "migraine", "region": "US", "prevalence": 0.01, "incidence": 0.001}`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL, RequestsPerSec: 100})

	evidence, err := client.GetDiseaseData(context.Background(), "migraine", "US")
	if err != nil {
		t.Fatalf("GetDiseaseData() failed: %v", err)
	}
	if evidence.Prevalence != 0.01 {
		t.Errorf("prevalence = %v, want 0.01", evidence.Prevalence)
	}
	if evidence.Incidence != 0.001 {
		t.Errorf("incidence = %v, want 0.001", evidence.Incidence)
	}
}

func TestGetDiseaseDataMissingFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"disease": "migraine"}`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL, RequestsPerSec: 100})

	evidence, err := client.GetDiseaseData(context.Background(), "migraine", "US")
	if err != nil {
		t.Fatalf("GetDiseaseData() failed: %v", err)
	}
	if evidence.Prevalence != 0 || evidence.Incidence != 0 {
		t.Errorf("missing fields should default to zero, got %+v", evidence)
	}
}

func TestGetDiseaseDataAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL, RequestsPerSec: 100})

	if _, err := client.GetDiseaseData(context.Background(), "unknown", "US"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}
