package langdetect

import (
	"math"
	"unicode/utf8"

	"github.com/RadhiFadlillah/whatlanggo"

	"github.com/umputun/newswire/pkg/domain"
)

const (
	statisticalMinLength     = 50
	statisticalBase          = 0.7
	statisticalMaxConfidence = 0.95
	statisticalMinConfidence = 0.6
)

// Identifier returns an ISO 639-1 code for the text, false when the model has no answer
type Identifier func(text string) (code string, ok bool)

// isoLanguages maps model output to supported languages; anything else is unmapped
var isoLanguages = map[string]domain.Language{
	"en": domain.LangEnglish,
	"es": domain.LangSpanish,
	"ar": domain.LangArabic,
	"pt": domain.LangPortuguese,
	"fr": domain.LangFrench,
	"zh": domain.LangChinese,
	"ja": domain.LangJapanese,
}

// reliableCodes are languages the trigram model rarely confuses
var reliableCodes = map[string]bool{"en": true, "es": true, "fr": true, "pt": true}

// StatisticalStrategy runs a trigram language model over the combined text.
// When the model output is unusable it falls back to the keyword score, even a weak one.
type StatisticalStrategy struct {
	keywords *KeywordStrategy
	identify Identifier
}

// NewStatisticalStrategy makes a statistical strategy. A nil identifier uses whatlanggo.
func NewStatisticalStrategy(keywords *KeywordStrategy, identify Identifier) *StatisticalStrategy {
	if identify == nil {
		identify = whatlangIdentifier
	}
	return &StatisticalStrategy{keywords: keywords, identify: identify}
}

// Detect implements Strategy
func (s *StatisticalStrategy) Detect(in domain.DetectionInput) (domain.Detection, bool) {
	text := in.Text()
	length := utf8.RuneCountInString(text)
	if length < statisticalMinLength {
		return domain.Detection{}, false
	}

	code, ok := s.identify(text)
	lang, mapped := isoLanguages[code]
	if !ok || !mapped {
		return s.keywordFallback(text)
	}

	conf := statisticalBase
	switch {
	case length > 1000:
		conf += 0.2
	case length > 500:
		conf += 0.1
	}
	if reliableCodes[code] {
		conf += 0.1
	}
	conf = math.Min(conf, statisticalMaxConfidence)
	if conf < statisticalMinConfidence {
		return s.keywordFallback(text)
	}
	return domain.Detection{Language: lang, Confidence: conf, Method: domain.MethodStatistical}, true
}

func (s *StatisticalStrategy) keywordFallback(text string) (domain.Detection, bool) {
	if s.keywords == nil {
		return domain.Detection{}, false
	}
	return s.keywords.Score(text)
}

func whatlangIdentifier(text string) (string, bool) {
	info := whatlanggo.Detect(text)
	if info.Confidence <= 0 {
		return "", false
	}
	code := info.Lang.Iso6391()
	return code, code != ""
}
