// Package langdetect classifies the language of feed items with an ordered cascade of
// heuristics. Each stage either qualifies with its own confidence or passes the item on;
// when no stage qualifies the detector falls back to english with a low confidence.
package langdetect

import (
	"github.com/umputun/newswire/pkg/domain"
)

// Strategy is a single stage of the detection cascade. Detect returns false when the
// stage has no qualifying answer and the next stage should be tried.
type Strategy interface {
	Detect(in domain.DetectionInput) (domain.Detection, bool)
}

// fallback verdict when no strategy qualifies
var fallback = domain.Detection{Language: domain.LangEnglish, Confidence: 0.3, Method: domain.MethodFallback}

// Detector runs strategies in order and accepts the first qualifying result
type Detector struct {
	strategies []Strategy
}

// New makes a detector with the default cascade: metadata tag, url, keyword lexicon
// and statistical trigram model
func New() *Detector {
	kw := NewKeywordStrategy()
	return NewWithStrategies(
		MetadataStrategy{},
		NewURLStrategy(),
		kw,
		NewStatisticalStrategy(kw, nil),
	)
}

// NewWithStrategies makes a detector with a custom cascade
func NewWithStrategies(strategies ...Strategy) *Detector {
	return &Detector{strategies: strategies}
}

// Detect returns the language verdict for a single item
func (d *Detector) Detect(in domain.DetectionInput) domain.Detection {
	for _, s := range d.strategies {
		res, ok := s.Detect(in)
		if !ok || !res.Language.IsSupported() {
			continue
		}
		res.Confidence = clamp(res.Confidence)
		return res
	}
	return fallback
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
