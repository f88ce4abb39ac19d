package domain

import "time"

// Feed represents a configured news source
type Feed struct {
	ID                  int64      `json:"id"`
	URL                 string     `json:"url"`
	Title               string     `json:"title"`
	Language            string     `json:"language"` // declared language tag, e.g. "en" or "pt-br"
	Region              string     `json:"region"`
	Category            string     `json:"category"`
	Type                string     `json:"type"`
	Active              bool       `json:"active"`
	ConsecutiveFailures int        `json:"consecutive_failures"`
	LastFetched         *time.Time `json:"last_fetched,omitempty"`
	LastError           string     `json:"last_error,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

// FeedFilter selects feeds driven by a polling job. Empty fields match everything,
// non-empty fields are combined with AND, values inside a field with OR.
type FeedFilter struct {
	FeedIDs    []int64  `json:"feed_ids,omitempty" yaml:"feed_ids"`
	Categories []string `json:"categories,omitempty" yaml:"categories"`
	Languages  []string `json:"languages,omitempty" yaml:"languages"`
	Regions    []string `json:"regions,omitempty" yaml:"regions"`
	Types      []string `json:"types,omitempty" yaml:"types"`
}

// IsEmpty reports whether the filter matches all active feeds
func (f FeedFilter) IsEmpty() bool {
	return len(f.FeedIDs) == 0 && len(f.Categories) == 0 && len(f.Languages) == 0 &&
		len(f.Regions) == 0 && len(f.Types) == 0
}

// ParsedFeed is the result of fetching a feed through the RSS provider
type ParsedFeed struct {
	Metadata FeedMetadata
	Items    []ParsedItem
}

// FeedMetadata holds channel-level information of a fetched feed
type FeedMetadata struct {
	Title       string
	Description string
	Link        string
	Language    string
	LastUpdated *time.Time
}

// ParsedItem is a single entry of a fetched feed
type ParsedItem struct {
	GUID        string
	Title       string
	Link        string
	Description string
	Content     string
	Author      string
	PublishedAt *time.Time
}

// URLValidation is the outcome of checking a feed URL before it is stored
type URLValidation struct {
	IsValid bool   `json:"is_valid"`
	Error   string `json:"error,omitempty"`
}
