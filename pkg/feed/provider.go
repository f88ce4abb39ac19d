// Package feed fetches and parses RSS/Atom feeds into domain types.
package feed

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/newswire/pkg/domain"
)

const defaultUserAgent = "Mozilla/5.0 (compatible; newswire/1.0; +https://github.com/umputun/newswire)"

// Provider fetches RSS/Atom feeds over HTTP
type Provider struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
	policy    *bluemonday.Policy
}

// NewProvider creates a new feed provider, every fetch is bounded by timeout
func NewProvider(timeout time.Duration, userAgent string) *Provider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Provider{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		timeout:   timeout,
		policy:    bluemonday.StrictPolicy(),
	}
}

// FetchFeed fetches and parses a feed from the given URL
func (p *Provider) FetchFeed(ctx context.Context, feedURL string) (*domain.ParsedFeed, error) {
	if err := checkURL(feedURL); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	body, err := p.fetch(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w: %w", feedURL, domain.ErrExternalService, err)
	}
	return p.toDomain(parsed), nil
}

// ValidateFeedURL checks that the url is well formed and serves a parsable feed
func (p *Provider) ValidateFeedURL(ctx context.Context, feedURL string) domain.URLValidation {
	parsed, err := p.FetchFeed(ctx, feedURL)
	if err != nil {
		return domain.URLValidation{IsValid: false, Error: err.Error()}
	}
	if parsed.Metadata.Title == "" && len(parsed.Items) == 0 {
		return domain.URLValidation{IsValid: false, Error: "feed has neither title nor items"}
	}
	return domain.URLValidation{IsValid: true}
}

func (p *Provider) toDomain(feed *gofeed.Feed) *domain.ParsedFeed {
	result := &domain.ParsedFeed{
		Metadata: domain.FeedMetadata{
			Title:       strings.TrimSpace(feed.Title),
			Description: p.text(feed.Description),
			Link:        feed.Link,
			Language:    strings.TrimSpace(feed.Language),
			LastUpdated: feed.UpdatedParsed,
		},
		Items: make([]domain.ParsedItem, 0, len(feed.Items)),
	}

	for _, item := range feed.Items {
		parsedItem := domain.ParsedItem{
			GUID:        item.GUID,
			Title:       p.text(item.Title),
			Link:        strings.TrimSpace(item.Link),
			Description: p.text(item.Description),
			Content:     p.text(item.Content),
		}

		// some feeds only carry a permalink guid
		if parsedItem.Link == "" && isHTTPURL(item.GUID) {
			parsedItem.Link = item.GUID
		}
		if parsedItem.GUID == "" {
			parsedItem.GUID = parsedItem.Link
		}

		if item.Author != nil {
			parsedItem.Author = item.Author.Name
		} else if len(item.Authors) > 0 && item.Authors[0] != nil {
			parsedItem.Author = item.Authors[0].Name
		}

		switch {
		case item.PublishedParsed != nil:
			parsedItem.PublishedAt = item.PublishedParsed
		case item.UpdatedParsed != nil:
			parsedItem.PublishedAt = item.UpdatedParsed
		}

		result.Items = append(result.Items, parsedItem)
	}
	return result
}

// text strips html, unescapes entities and collapses whitespace
func (p *Provider) text(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(html.UnescapeString(p.policy.Sanitize(s))), " ")
}

// fetch retrieves content from a URL
func (p *Provider) fetch(ctx context.Context, feedURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w: %w", domain.ErrValidation, err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := p.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, fmt.Errorf("fetch %s: %w: %w", feedURL, domain.ErrTimeout, err)
		}
		return nil, fmt.Errorf("fetch %s: %w: %w", feedURL, domain.ErrExternalService, err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("fetch %s: status %d: %w", feedURL, resp.StatusCode, domain.ErrRateLimit)
		}
		return nil, fmt.Errorf("fetch %s: unexpected status code %d: %w", feedURL, resp.StatusCode, domain.ErrExternalService)
	}

	return resp.Body, nil
}

func checkURL(feedURL string) error {
	u, err := url.Parse(strings.TrimSpace(feedURL))
	if err != nil {
		return fmt.Errorf("invalid feed url %q: %w", feedURL, domain.ErrValidation)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("feed url %q must use http or https: %w", feedURL, domain.ErrValidation)
	}
	if u.Host == "" {
		return fmt.Errorf("feed url %q has no host: %w", feedURL, domain.ErrValidation)
	}
	return nil
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
