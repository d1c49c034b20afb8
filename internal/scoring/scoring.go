// Package scoring maps requirement subsets against profile subsets, one
// dimension at a time. Every scorer returns its score and the unmatched
// requirement strings together; nothing is communicated through shared
// state, so scorers are safe under concurrent analyses.
package scoring

// Result is a single dimension's outcome: a percentage in [0,100] and the
// requirement strings that failed to match.
type Result struct {
	Score     float64  `json:"score"`
	Unmatched []string `json:"unmatched,omitempty"`
}

func vacuous() Result {
	return Result{Score: 100}
}
