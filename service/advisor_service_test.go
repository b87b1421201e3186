package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"everest-finance/config"
)

func TestSummarize_FallbackWhenDisabled(t *testing.T) {
	advisor := NewAdvisorService(config.AdvisorConfig{}, zap.NewNop())
	input := scenarioA()

	summary := advisor.Summarize(context.Background(), input, ComputeProjection(input))

	if !strings.Contains(summary, "Sur 5 ans") {
		t.Errorf("expected horizon in summary, got %q", summary)
	}
	if !strings.Contains(summary, "4 000 000 FCFA") {
		t.Errorf("expected invested amount in summary, got %q", summary)
	}
	if !strings.HasSuffix(summary, minimumFeeNote) {
		t.Errorf("expected minimum fee note, got %q", summary)
	}
}

func TestSummarize_UsesChatEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Model != "test-model" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Votre épargne progresse régulièrement."}}]}`))
	}))
	defer server.Close()

	advisor := NewAdvisorService(config.AdvisorConfig{
		APIKey: "sk-test",
		APIURL: server.URL,
		Model:  "test-model",
	}, zap.NewNop())
	input := scenarioA()

	summary := advisor.Summarize(context.Background(), input, ComputeProjection(input))

	want := "Votre épargne progresse régulièrement. " + minimumFeeNote
	if summary != want {
		t.Errorf("expected %q, got %q", want, summary)
	}
}

func TestSummarize_FallbackOnAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	advisor := NewAdvisorService(config.AdvisorConfig{APIKey: "sk-test", APIURL: server.URL}, zap.NewNop())
	input := scenarioA()

	summary := advisor.Summarize(context.Background(), input, ComputeProjection(input))

	if !strings.HasPrefix(summary, "Sur 5 ans") {
		t.Errorf("expected fallback summary, got %q", summary)
	}
}
