package domain

import "strings"

// Language is one of the supported article languages
type Language string

// supported languages
const (
	LangEnglish    Language = "english"
	LangSpanish    Language = "spanish"
	LangArabic     Language = "arabic"
	LangPortuguese Language = "portuguese"
	LangFrench     Language = "french"
	LangChinese    Language = "chinese"
	LangJapanese   Language = "japanese"
)

// SupportedLanguages lists every language the detector may return, in tie-break order
var SupportedLanguages = []Language{
	LangEnglish, LangSpanish, LangArabic, LangPortuguese, LangFrench, LangChinese, LangJapanese,
}

// IsSupported reports whether l is one of SupportedLanguages
func (l Language) IsSupported() bool {
	for _, s := range SupportedLanguages {
		if s == l {
			return true
		}
	}
	return false
}

// DetectionMethod names the cascade stage which produced a detection
type DetectionMethod string

// detection methods
const (
	MethodMetadata    DetectionMethod = "metadata"
	MethodURL         DetectionMethod = "url"
	MethodKeyword     DetectionMethod = "keyword"
	MethodStatistical DetectionMethod = "statistical"
	MethodFallback    DetectionMethod = "fallback"
)

// Detection is the language detector's verdict for a single item
type Detection struct {
	Language   Language        `json:"language"`
	Confidence float64         `json:"confidence"`
	Method     DetectionMethod `json:"method"`
}

// DetectionInput carries everything the detector looks at
type DetectionInput struct {
	Tag         string // declared language tag from feed metadata, may be empty
	URL         string
	Title       string
	Description string
	Content     string
}

// Text returns title, description and content joined by spaces
func (in DetectionInput) Text() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{in.Title, in.Description, in.Content} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

var isoCodes = map[string]Language{
	"en": LangEnglish, "es": LangSpanish, "ar": LangArabic, "pt": LangPortuguese,
	"fr": LangFrench, "zh": LangChinese, "ja": LangJapanese,
}

// ParseLanguage accepts a supported language name or its ISO 639-1 code, case-insensitive
func ParseLanguage(s string) (Language, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if l, ok := isoCodes[s]; ok {
		return l, true
	}
	l := Language(s)
	return l, l.IsSupported()
}

// Code returns the ISO 639-1 code of a supported language, empty for unknown
func (l Language) Code() string {
	for code, lang := range isoCodes {
		if lang == l {
			return code
		}
	}
	return ""
}
