// Package content pulls the readable article text out of a news page. It is used to
// enrich translation source text when a feed carries only a short summary.
package content

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"

	"github.com/umputun/newswire/pkg/domain"
)

// HTTPExtractor extracts article content from URLs using trafilatura
type HTTPExtractor struct {
	timeout   time.Duration
	userAgent string
	client    *http.Client
}

// NewHTTPExtractor creates a new content extractor
func NewHTTPExtractor(timeout time.Duration, userAgent string) *HTTPExtractor {
	if userAgent == "" {
		userAgent = "Mozilla/5.0 (compatible; newswire/1.0)"
	}
	return &HTTPExtractor{
		timeout:   timeout,
		userAgent: userAgent,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Extract retrieves and extracts text content from the given URL
func (e *HTTPExtractor) Extract(ctx context.Context, urlStr string) (string, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w: %w", domain.ErrValidation, err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid URL %q: %w", urlStr, domain.ErrValidation)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w: %w", domain.ErrValidation, err)
	}
	req.Header.Set("User-Agent", e.userAgent)
	addBrowserHeaders(req)

	resp, err := e.client.Do(req)
	if err != nil {
		var netErr interface{ Timeout() bool }
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return "", fmt.Errorf("fetch URL %s: %w: %w", urlStr, domain.ErrTimeout, err)
		}
		return "", fmt.Errorf("fetch URL %s: %w: %w", urlStr, domain.ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d for URL %s: %w", resp.StatusCode, urlStr, domain.ErrExternalService)
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   false,
		IncludeImages:   false,
		IncludeLinks:    false,
		Deduplicate:     true,
		OriginalURL:     parsedURL,
	}

	result, err := trafilatura.Extract(resp.Body, opts)
	if err != nil {
		return "", fmt.Errorf("extract content from %s: %w: %w", urlStr, domain.ErrExternalService, err)
	}
	if result == nil || strings.TrimSpace(result.ContentText) == "" {
		return "", fmt.Errorf("no text content extracted from %s: %w", urlStr, domain.ErrExternalService)
	}

	return strings.TrimSpace(result.ContentText), nil
}
