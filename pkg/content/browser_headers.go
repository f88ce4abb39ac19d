package content

import (
	"fmt"
	"math/rand"
	"net/http"

	"github.com/umputun/newswire/pkg/domain"
)

// regions maps a language code to the locale a browser of that language would send first
var regions = map[string]string{
	"en": "en-US", "es": "es-ES", "ar": "ar-SA", "pt": "pt-BR", "fr": "fr-FR", "zh": "zh-CN", "ja": "ja-JP",
}

// acceptLanguage builds a browser-like Accept-Language value for a random supported
// language, english stays as the secondary choice
func acceptLanguage() string {
	lang := domain.SupportedLanguages[rand.Intn(len(domain.SupportedLanguages))] //nolint:gosec // header variation only
	code := lang.Code()
	if code == "en" {
		return "en-US,en;q=0.9"
	}
	return fmt.Sprintf("%s,%s;q=0.9,en;q=0.8", regions[code], code)
}

// addBrowserHeaders makes the request look like a page load, news sites often block bare clients.
// Accept-Encoding is left to the transport so gzip responses are decoded transparently.
func addBrowserHeaders(req *http.Request) {
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", acceptLanguage())
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "none")
	if rand.Float32() < 0.3 { //nolint:gosec // header variation only
		req.Header.Set("DNT", "1")
	}
}
