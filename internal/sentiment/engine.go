package sentiment

// Scores holds the per-class polarity scores for one piece of text.
// Negative, Neutral and Positive are each in [0, 1] and sum to approximately
// 1; Compound is the aggregate polarity in [-1, 1].
type Scores struct {
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Positive float64 `json:"positive"`
	Compound float64 `json:"compound"`
}

// Engine scores the sentiment of a piece of text. Implementations must be
// deterministic and stateless across calls so that headlines can be scored
// independently and in any order, and so tests can substitute a double.
type Engine interface {
	Score(text string) (Scores, error)
}
