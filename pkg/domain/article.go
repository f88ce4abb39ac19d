package domain

import (
	"strings"
	"time"
)

// Article represents an ingested news item, unique by URL
type Article struct {
	ID          int64      `json:"id"`
	FeedID      int64      `json:"feed_id"`
	GUID        string     `json:"guid"`
	URL         string     `json:"url"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	Author      string     `json:"author"`
	Detection   Detection  `json:"detection"`
	NeedsReview bool       `json:"needs_review"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	ScrapedAt   time.Time  `json:"scraped_at"`
}

// SourceText returns the text used for translation when no extracted content is available
func (a *Article) SourceText() string {
	body := a.Content
	if body == "" {
		body = a.Description
	}
	if a.Title == "" {
		return body
	}
	if body == "" {
		return a.Title
	}
	return a.Title + "\n\n" + body
}

// LocalizedArticle is an article rendered in one language, either as ingested or from a completed translation
type LocalizedArticle struct {
	Article    Article  `json:"article"`
	Language   Language `json:"language"`
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	Translated bool     `json:"translated"`
}

// Localize builds a localized view of the article. Translated text is split back into
// title and body on the first blank line, mirroring SourceText.
func (a *Article) Localize(lang Language, translated string) LocalizedArticle {
	if translated == "" {
		body := a.Content
		if body == "" {
			body = a.Description
		}
		return LocalizedArticle{Article: *a, Language: lang, Title: a.Title, Body: body}
	}
	res := LocalizedArticle{Article: *a, Language: lang, Translated: true, Body: translated}
	if a.Title != "" {
		if title, body, ok := strings.Cut(translated, "\n\n"); ok {
			res.Title, res.Body = strings.TrimSpace(title), strings.TrimSpace(body)
		} else {
			res.Title, res.Body = strings.TrimSpace(translated), ""
		}
	}
	return res
}

// Timestamp returns publication time, falling back to scrape time
func (l LocalizedArticle) Timestamp() time.Time {
	if l.Article.PublishedAt != nil {
		return *l.Article.PublishedAt
	}
	return l.Article.ScrapedAt
}
