package classify

import (
	"context"
	"strings"
	"trip-optimizer-service/internal/domain"
)

// Fixed type tags. Explicit tags outrank name-keyword inference, which
// outranks the default.
var (
	indoorTypes = map[string]struct{}{
		"museum": {}, "mall": {}, "restaurant": {}, "theater": {},
		"spa": {}, "gym": {}, "store": {},
	}
	outdoorTypes = map[string]struct{}{
		"park": {}, "zoo": {}, "beach": {}, "hiking_area": {},
		"viewpoint": {}, "garden": {}, "natural_feature": {},
	}

	outdoorKeywords = []string{"outdoor", "hiking", "trail", "beach", "park", "garden", "mountain"}
	indoorKeywords  = []string{"mall", "museum", "cinema", "theater", "indoor", "gallery"}
)

// HeuristicClassifier labels places from type tags and name keywords.
// Pure and deterministic: no I/O, never fails. Indoor is the conservative
// default, since a mislabeled outdoor recommendation during bad weather is
// worse than a mislabeled indoor one.
type HeuristicClassifier struct{}

func (HeuristicClassifier) Classify(_ context.Context, _, name string, types []string) (domain.LocationClassification, error) {
	for _, t := range types {
		if _, ok := indoorTypes[strings.ToLower(t)]; ok {
			return domain.LocationClassification{
				IsOutdoor:  false,
				Confidence: domain.ConfidenceTypeMatch,
				Types:      types,
			}, nil
		}
	}
	for _, t := range types {
		if _, ok := outdoorTypes[strings.ToLower(t)]; ok {
			return domain.LocationClassification{
				IsOutdoor:  true,
				Confidence: domain.ConfidenceTypeMatch,
				Types:      types,
			}, nil
		}
	}

	lower := strings.ToLower(name)
	for _, kw := range outdoorKeywords {
		if strings.Contains(lower, kw) {
			return domain.LocationClassification{
				IsOutdoor:  true,
				Confidence: domain.ConfidenceNameKeyword,
				Types:      types,
			}, nil
		}
	}
	for _, kw := range indoorKeywords {
		if strings.Contains(lower, kw) {
			return domain.LocationClassification{
				IsOutdoor:  false,
				Confidence: domain.ConfidenceNameKeyword,
				Types:      types,
			}, nil
		}
	}

	return domain.LocationClassification{
		IsOutdoor:  false,
		Confidence: domain.ConfidenceDefaultGuess,
		Types:      types,
	}, nil
}
