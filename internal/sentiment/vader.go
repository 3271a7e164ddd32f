package sentiment

import (
	"github.com/jonreiter/govader"
)

// VaderEngine scores text with the VADER lexicon, the rule-based sentiment
// model tuned for short social and news text.
type VaderEngine struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderEngine creates a VADER-backed sentiment engine.
func NewVaderEngine() *VaderEngine {
	return &VaderEngine{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

// Score returns the VADER polarity scores for text. The analyzer holds only
// its immutable lexicon, so concurrent calls are safe.
func (e *VaderEngine) Score(text string) (Scores, error) {
	s := e.analyzer.PolarityScores(text)
	return Scores{
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Positive: s.Positive,
		Compound: s.Compound,
	}, nil
}
