package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/newswire/pkg/domain"
)

// Generator renders localized articles as RSS and feed subscriptions as OPML
type Generator struct {
	baseURL string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GenerateRSS creates an RSS 2.0 feed of articles readable in lang
func (g *Generator) GenerateRSS(entries []domain.LocalizedArticle, lang domain.Language) (string, error) {
	selfLink := fmt.Sprintf("%s/rss/%s", g.baseURL, lang)

	rssItems := make([]*RSSItem, 0, len(entries))
	for _, e := range entries {
		rssItems = append(rssItems, g.convertToRSSItem(e))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         fmt.Sprintf("Newswire - %s", lang),
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("News articles in %s, original and translated", lang),
			Language:      lang.Code(),
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts a localized article to an RSS item, translated items
// keep the original link and get a language-scoped guid
func (g *Generator) convertToRSSItem(e domain.LocalizedArticle) *RSSItem {
	guid := e.Article.GUID
	if guid == "" {
		guid = e.Article.URL
	}
	categories := []string{}
	if e.Translated {
		guid = fmt.Sprintf("%s#%s", guid, e.Language)
		categories = append(categories, "translated", "from:"+string(e.Article.Detection.Language))
	}

	title := e.Title
	if title == "" {
		title = e.Article.URL
	}

	return &RSSItem{
		Title:       title,
		Link:        e.Article.URL,
		GUID:        &RSSGUID{Value: guid, IsPermaLink: "false"},
		Description: e.Body,
		Author:      e.Article.Author,
		PubDate:     e.Timestamp().Format(time.RFC1123Z),
		Categories:  categories,
	}
}

// GenerateOPML creates an OPML file with active feed subscriptions grouped by language
func (g *Generator) GenerateOPML(feeds []domain.Feed) (string, error) {
	type outline struct {
		XMLName  xml.Name  `xml:"outline"`
		Text     string    `xml:"text,attr"`
		Title    string    `xml:"title,attr,omitempty"`
		Type     string    `xml:"type,attr,omitempty"`
		XMLUrl   string    `xml:"xmlUrl,attr,omitempty"`
		Language string    `xml:"language,attr,omitempty"`
		Category string    `xml:"category,attr,omitempty"`
		Outlines []outline `xml:"outline"`
	}

	type body struct {
		XMLName  xml.Name  `xml:"body"`
		Outlines []outline `xml:"outline"`
	}

	type head struct {
		XMLName     xml.Name `xml:"head"`
		Title       string   `xml:"title"`
		DateCreated string   `xml:"dateCreated"`
	}

	type opml struct {
		XMLName xml.Name `xml:"opml"`
		Version string   `xml:"version,attr"`
		Head    head     `xml:"head"`
		Body    body     `xml:"body"`
	}

	groups := []outline{}
	index := map[string]int{}
	for _, feed := range feeds {
		if !feed.Active {
			continue
		}
		lang := feed.Language
		if lang == "" {
			lang = "unknown"
		}
		idx, ok := index[lang]
		if !ok {
			idx = len(groups)
			index[lang] = idx
			groups = append(groups, outline{Text: lang, Title: lang})
		}
		text := feed.Title
		if text == "" {
			text = feed.URL
		}
		groups[idx].Outlines = append(groups[idx].Outlines, outline{
			Text:     text,
			Title:    text,
			Type:     "rss",
			XMLUrl:   feed.URL,
			Language: feed.Language,
			Category: feed.Category,
		})
	}

	doc := opml{
		Version: "2.0",
		Head: head{
			Title:       "Newswire Feed Subscriptions",
			DateCreated: time.Now().Format(time.RFC1123Z),
		},
		Body: body{Outlines: groups},
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal OPML: %w", err)
	}

	return xml.Header + string(output), nil
}
