package langdetect

import (
	"net/url"
	"sort"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/umputun/newswire/pkg/domain"
)

const urlConfidence = 0.85

// domainLanguages maps domain substrings of well-known outlets to their language.
// Keys with a path part ("bbc.com/mundo") only match against the full url.
var domainLanguages = map[string]domain.Language{
	"lemonde.fr": domain.LangFrench, "lefigaro.fr": domain.LangFrench, "liberation.fr": domain.LangFrench,
	"rfi.fr": domain.LangFrench, "france24.com/fr": domain.LangFrench, "lesoir.be": domain.LangFrench,

	"elpais.com": domain.LangSpanish, "elmundo.es": domain.LangSpanish, "abc.es": domain.LangSpanish,
	"clarin.com": domain.LangSpanish, "infobae.com": domain.LangSpanish, "bbc.com/mundo": domain.LangSpanish,
	"france24.com/es": domain.LangSpanish,

	"folha.uol.com.br": domain.LangPortuguese, "globo.com": domain.LangPortuguese,
	"estadao.com.br": domain.LangPortuguese, "publico.pt": domain.LangPortuguese,
	"bbc.com/portuguese": domain.LangPortuguese,

	"aljazeera.net": domain.LangArabic, "alarabiya.net": domain.LangArabic, "youm7.com": domain.LangArabic,
	"bbc.com/arabic": domain.LangArabic, "france24.com/ar": domain.LangArabic,

	"xinhuanet.com": domain.LangChinese, "people.com.cn": domain.LangChinese, "sina.com.cn": domain.LangChinese,
	"bbc.com/zhongwen": domain.LangChinese,

	"nhk.or.jp": domain.LangJapanese, "asahi.com": domain.LangJapanese, "yomiuri.co.jp": domain.LangJapanese,
	"mainichi.jp": domain.LangJapanese, "nikkei.com": domain.LangJapanese,

	"nytimes.com": domain.LangEnglish, "theguardian.com": domain.LangEnglish, "reuters.com": domain.LangEnglish,
	"bbc.co.uk": domain.LangEnglish, "cnn.com": domain.LangEnglish, "apnews.com": domain.LangEnglish,
	"france24.com/en": domain.LangEnglish,
}

// URLStrategy guesses the language from the source url
type URLStrategy struct {
	keys []string // longest first, so the most specific entry wins
}

// NewURLStrategy makes url strategy over the built-in domain table
func NewURLStrategy() *URLStrategy {
	keys := make([]string, 0, len(domainLanguages))
	for k := range domainLanguages {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return &URLStrategy{keys: keys}
}

// Detect implements Strategy
func (s *URLStrategy) Detect(in domain.DetectionInput) (domain.Detection, bool) {
	raw := strings.ToLower(strings.TrimSpace(in.URL))
	if raw == "" {
		return domain.Detection{}, false
	}

	// full-url match first, path-qualified keys are more specific than the bare domain
	for _, k := range s.keys {
		if strings.Contains(k, "/") && strings.Contains(raw, k) {
			return s.verdict(domainLanguages[k]), true
		}
	}

	if site := registrableDomain(raw); site != "" {
		if lang, ok := domainLanguages[site]; ok {
			return s.verdict(lang), true
		}
	}

	for _, k := range s.keys {
		if strings.Contains(raw, k) {
			return s.verdict(domainLanguages[k]), true
		}
	}
	return domain.Detection{}, false
}

func (s *URLStrategy) verdict(lang domain.Language) domain.Detection {
	return domain.Detection{Language: lang, Confidence: urlConfidence, Method: domain.MethodURL}
}

// registrableDomain returns eTLD+1 of the url host, e.g. "lemonde.fr" for "https://www.lemonde.fr/x"
func registrableDomain(raw string) string {
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	site, err := publicsuffix.EffectiveTLDPlusOne(u.Hostname())
	if err != nil {
		return ""
	}
	return site
}
