package langdetect

import (
	"math"
	"strings"
	"unicode"

	"github.com/umputun/newswire/pkg/domain"
)

const (
	keywordThreshold     = 0.7
	keywordMaxConfidence = 0.95
	keywordsPerPoint     = 10.0
)

// lexicon holds frequent function words per language. Latin and Arabic entries are matched
// as whole lower-cased tokens, CJK entries as raw substrings. Latin-script lists must stay
// disjoint: words shared by Spanish, Portuguese and French ("la", "que", "en", "se", "mais",
// "para") are left out so a neighbouring language can't outscore the real one.
var lexicon = map[domain.Language][]string{
	domain.LangEnglish: {"the", "and", "of", "to", "in", "is", "that", "for", "with", "was", "on",
		"are", "this", "have", "from", "by", "said", "will", "has", "it"},
	domain.LangSpanish: {"el", "los", "las", "del", "al", "lo", "y", "con", "una", "más", "pero",
		"fue", "sus", "según", "también", "hasta", "muy", "hay", "cuando", "donde", "ya", "han", "ha"},
	domain.LangArabic: {"في", "من", "على", "إلى", "أن", "التي", "الذي", "عن", "مع", "هذا", "هذه",
		"كان", "قال", "بين", "وقد", "ذلك"},
	domain.LangPortuguese: {"o", "os", "do", "da", "dos", "das", "em", "não", "é", "uma", "foi",
		"pelo", "pela", "ao", "seu", "sua", "também", "já", "com", "ainda", "muito", "então"},
	domain.LangFrench: {"le", "les", "des", "du", "et", "est", "une", "dans", "pour", "qui", "sur",
		"pas", "au", "aux", "avec", "ce", "cette", "été", "selon", "il", "leur", "sont", "ont", "aussi", "ne"},
	domain.LangChinese: {"的", "是", "在", "了", "和", "有", "我们", "这", "中国", "不", "也", "就",
		"他们", "说", "为"},
	domain.LangJapanese: {"の", "は", "を", "に", "が", "です", "ます", "した", "して", "ている",
		"という", "から", "こと", "れる", "など"},
}

// substringLanguages are scored on raw text, case folding would corrupt multi-byte runes
var substringLanguages = map[domain.Language]bool{domain.LangChinese: true, domain.LangJapanese: true}

// KeywordStrategy scores text against per-language keyword lists
type KeywordStrategy struct {
	words map[domain.Language]map[string]bool
}

// NewKeywordStrategy makes keyword strategy over the built-in lexicon
func NewKeywordStrategy() *KeywordStrategy {
	words := make(map[domain.Language]map[string]bool, len(lexicon))
	for lang, list := range lexicon {
		if substringLanguages[lang] {
			continue
		}
		set := make(map[string]bool, len(list))
		for _, w := range list {
			set[w] = true
		}
		words[lang] = set
	}
	return &KeywordStrategy{words: words}
}

// Detect implements Strategy, qualifies only above the keyword threshold
func (s *KeywordStrategy) Detect(in domain.DetectionInput) (domain.Detection, bool) {
	res, ok := s.Score(in.Text())
	if !ok || res.Confidence <= keywordThreshold {
		return domain.Detection{}, false
	}
	return res, true
}

// Score returns the best scoring language regardless of threshold.
// The second value is false when no keyword matched at all.
func (s *KeywordStrategy) Score(text string) (domain.Detection, bool) {
	if strings.TrimSpace(text) == "" {
		return domain.Detection{}, false
	}

	counts := make(map[domain.Language]int, len(lexicon))
	for _, tok := range tokenize(text) {
		for lang, set := range s.words {
			if set[tok] {
				counts[lang]++
			}
		}
	}
	for lang := range substringLanguages {
		for _, w := range lexicon[lang] {
			counts[lang] += strings.Count(text, w)
		}
	}

	var best domain.Language
	bestCount := 0
	for _, lang := range domain.SupportedLanguages {
		if counts[lang] > bestCount {
			best, bestCount = lang, counts[lang]
		}
	}
	if bestCount == 0 {
		return domain.Detection{}, false
	}

	conf := math.Min(float64(bestCount)/keywordsPerPoint, keywordMaxConfidence)
	return domain.Detection{Language: best, Confidence: conf, Method: domain.MethodKeyword}, true
}

// tokenize splits text on anything that is not a letter or a combining mark and lower-cases tokens
func tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsMark(r)
	})
	for i, f := range fields {
		fields[i] = strings.ToLower(f)
	}
	return fields
}
