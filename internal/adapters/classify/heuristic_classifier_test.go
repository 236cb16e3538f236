package classify

import (
	"context"
	"testing"
	"trip-optimizer-service/internal/domain"
)

func TestHeuristicClassifier(t *testing.T) {
	cases := []struct {
		name           string
		placeName      string
		types          []string
		wantOutdoor    bool
		wantConfidence float64
	}{
		{
			name:           "indoor type outranks outdoor name",
			placeName:      "Garden View Museum",
			types:          []string{"museum"},
			wantOutdoor:    false,
			wantConfidence: domain.ConfidenceTypeMatch,
		},
		{
			name:           "outdoor type",
			placeName:      "Ein Hemed",
			types:          []string{"park"},
			wantOutdoor:    true,
			wantConfidence: domain.ConfidenceTypeMatch,
		},
		{
			name:           "unknown type falls through to name keyword",
			placeName:      "Hidden Trail Lookout",
			types:          []string{"tourist_attraction"},
			wantOutdoor:    true,
			wantConfidence: domain.ConfidenceNameKeyword,
		},
		{
			name:           "outdoor name keyword without types",
			placeName:      "Hidden Trail Lookout",
			wantOutdoor:    true,
			wantConfidence: domain.ConfidenceNameKeyword,
		},
		{
			name:           "indoor name keyword",
			placeName:      "City Cinema Plaza",
			wantOutdoor:    false,
			wantConfidence: domain.ConfidenceNameKeyword,
		},
		{
			name:           "no signal defaults to indoor",
			placeName:      "Azura",
			wantOutdoor:    false,
			wantConfidence: domain.ConfidenceDefaultGuess,
		},
		{
			name:           "type match is case insensitive",
			placeName:      "Somewhere",
			types:          []string{"Museum"},
			wantOutdoor:    false,
			wantConfidence: domain.ConfidenceTypeMatch,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := HeuristicClassifier{}.Classify(context.Background(), "p1", tc.placeName, tc.types)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.IsOutdoor != tc.wantOutdoor {
				t.Fatalf("isOutdoor = %v, want %v", got.IsOutdoor, tc.wantOutdoor)
			}
			if got.Confidence != tc.wantConfidence {
				t.Fatalf("confidence = %v, want %v", got.Confidence, tc.wantConfidence)
			}
		})
	}
}
