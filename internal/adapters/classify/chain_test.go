package classify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"trip-optimizer-service/internal/domain"
)

func TestChainUsesRemoteResultWhenHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"isOutdoor": true, "confidence": 0.9, "types": ["park"]}`))
	}))
	defer srv.Close()

	remote, err := NewRemoteClassifier(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chain := NewChain(remote, HeuristicClassifier{})

	got, err := chain.Classify(context.Background(), "p1", "Azura", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The heuristic alone would label Azura indoor at 0.5.
	if !got.IsOutdoor || got.Confidence != 0.9 {
		t.Fatalf("classification = %+v, want remote outdoor 0.9", got)
	}
}

func TestChainFallsBackToHeuristic(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("{not json"))
			},
		},
		{
			name: "missing required fields",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"types": ["park"]}`))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			remote, err := NewRemoteClassifier(srv.URL)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			chain := NewChain(remote, HeuristicClassifier{})

			got, err := chain.Classify(context.Background(), "p1", "Hidden Trail Lookout", nil)
			if err != nil {
				t.Fatalf("fallback must absorb remote failure, got %v", err)
			}
			if !got.IsOutdoor || got.Confidence != domain.ConfidenceNameKeyword {
				t.Fatalf("classification = %+v, want heuristic outdoor 0.7", got)
			}
		})
	}
}

func TestChainFallsBackWhenRemoteUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // endpoint is down

	remote, err := NewRemoteClassifier(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chain := NewChain(remote, HeuristicClassifier{})

	got, err := chain.Classify(context.Background(), "p1", "Azura", nil)
	if err != nil {
		t.Fatalf("fallback must absorb network failure, got %v", err)
	}
	if got.IsOutdoor || got.Confidence != domain.ConfidenceDefaultGuess {
		t.Fatalf("classification = %+v, want default indoor 0.5", got)
	}
}

func TestChainWithoutTiersFails(t *testing.T) {
	if _, err := NewChain().Classify(context.Background(), "p1", "Azura", nil); err == nil {
		t.Fatal("expected error from empty chain")
	}
}
