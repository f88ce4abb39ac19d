package langdetect

import (
	"strings"

	"github.com/umputun/newswire/pkg/domain"
)

const metadataConfidence = 0.9

// tagLanguages maps normalised language tags to supported languages
var tagLanguages = map[string]domain.Language{
	"en": domain.LangEnglish, "en-us": domain.LangEnglish, "en-gb": domain.LangEnglish,
	"en-au": domain.LangEnglish, "en-ca": domain.LangEnglish, "en-in": domain.LangEnglish,
	"english": domain.LangEnglish,

	"es": domain.LangSpanish, "es-es": domain.LangSpanish, "es-mx": domain.LangSpanish,
	"es-ar": domain.LangSpanish, "es-co": domain.LangSpanish, "es-419": domain.LangSpanish,
	"spanish": domain.LangSpanish,

	"ar": domain.LangArabic, "ar-sa": domain.LangArabic, "ar-eg": domain.LangArabic,
	"ar-ae": domain.LangArabic, "ar-ma": domain.LangArabic, "arabic": domain.LangArabic,

	"pt": domain.LangPortuguese, "pt-br": domain.LangPortuguese, "pt-pt": domain.LangPortuguese,
	"portuguese": domain.LangPortuguese,

	"fr": domain.LangFrench, "fr-fr": domain.LangFrench, "fr-ca": domain.LangFrench,
	"fr-be": domain.LangFrench, "fr-ch": domain.LangFrench, "french": domain.LangFrench,

	"zh": domain.LangChinese, "zh-cn": domain.LangChinese, "zh-tw": domain.LangChinese,
	"zh-hk": domain.LangChinese, "zh-hans": domain.LangChinese, "zh-hant": domain.LangChinese,
	"chinese": domain.LangChinese,

	"ja": domain.LangJapanese, "ja-jp": domain.LangJapanese, "japanese": domain.LangJapanese,
}

// MetadataStrategy trusts a declared language tag when it maps to a supported language
type MetadataStrategy struct{}

// Detect implements Strategy
func (MetadataStrategy) Detect(in domain.DetectionInput) (domain.Detection, bool) {
	lang, ok := LanguageFromTag(in.Tag)
	if !ok {
		return domain.Detection{}, false
	}
	return domain.Detection{Language: lang, Confidence: metadataConfidence, Method: domain.MethodMetadata}, true
}

// LanguageFromTag maps a language tag like "en-GB" or "pt_BR" to a supported language.
// Unknown regional variants fall back to their primary subtag.
func LanguageFromTag(tag string) (domain.Language, bool) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(tag)), "_", "-")
	if norm == "" {
		return "", false
	}
	if lang, ok := tagLanguages[norm]; ok {
		return lang, true
	}
	if primary, _, found := strings.Cut(norm, "-"); found {
		if lang, ok := tagLanguages[primary]; ok {
			return lang, true
		}
	}
	return "", false
}
