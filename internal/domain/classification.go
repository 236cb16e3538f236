package domain

// Classification confidence is a coarse three-level indicator tied to the
// evidence tier, never computed from a continuous score.
const (
	ConfidenceTypeMatch    = 0.9
	ConfidenceNameKeyword  = 0.7
	ConfidenceDefaultGuess = 0.5
)

// LocationClassification labels a point of interest as indoor or outdoor.
type LocationClassification struct {
	IsOutdoor  bool     `json:"is_outdoor"`
	Confidence float64  `json:"confidence"`
	Types      []string `json:"types,omitempty"`
}
