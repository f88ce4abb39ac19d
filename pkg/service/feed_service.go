package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/newswire/pkg/domain"
	"github.com/umputun/newswire/pkg/repository"
)

//go:generate moq -out mocks/url_validator.go -pkg mocks -skip-ensure -fmt goimports . URLValidator

// URLValidator checks a feed url is reachable and parses as a feed
type URLValidator interface {
	ValidateFeedURL(ctx context.Context, url string) domain.URLValidation
}

// FeedService manages feeds and their articles for operators
type FeedService struct {
	feedRepo    *repository.FeedRepository
	articleRepo *repository.ArticleRepository
	jobRepo     *repository.TranslationJobRepository
	validator   URLValidator
}

// NewFeedService creates a feed service, validator may be nil to skip url validation
func NewFeedService(repos *repository.Repositories, validator URLValidator) *FeedService {
	return &FeedService{feedRepo: repos.Feed, articleRepo: repos.Article, jobRepo: repos.TranslationJob, validator: validator}
}

// AddFeed validates the feed url through the provider and stores an active feed
func (s *FeedService) AddFeed(ctx context.Context, feed *domain.Feed) error {
	feed.URL = strings.TrimSpace(feed.URL)
	if feed.URL == "" {
		return fmt.Errorf("add feed: url is required: %w", domain.ErrValidation)
	}
	feed.Language = strings.ToLower(strings.TrimSpace(feed.Language))

	if s.validator != nil {
		if v := s.validator.ValidateFeedURL(ctx, feed.URL); !v.IsValid {
			return fmt.Errorf("add feed %s: %s: %w", feed.URL, v.Error, domain.ErrValidation)
		}
	}

	feed.Active = true
	if err := s.feedRepo.CreateFeed(ctx, feed); err != nil {
		return fmt.Errorf("add feed %s: %w", feed.URL, err)
	}
	log.Printf("[INFO] added feed %d: %s", feed.ID, feed.URL)
	return nil
}

// GetFeed returns a feed by id
func (s *FeedService) GetFeed(ctx context.Context, id int64) (*domain.Feed, error) {
	return s.feedRepo.GetFeed(ctx, id)
}

// ListFeeds returns all feeds, or only active ones
func (s *FeedService) ListFeeds(ctx context.Context, activeOnly bool) ([]domain.Feed, error) {
	return s.feedRepo.ListFeeds(ctx, activeOnly)
}

// SetFeedActive activates or deactivates a feed
func (s *FeedService) SetFeedActive(ctx context.Context, id int64, active bool) error {
	if err := s.feedRepo.SetFeedActive(ctx, id, active); err != nil {
		return err
	}
	log.Printf("[INFO] feed %d active: %v", id, active)
	return nil
}

// DeleteFeed removes a feed with its articles and fetch history
func (s *FeedService) DeleteFeed(ctx context.Context, id int64) error {
	if err := s.feedRepo.DeleteFeed(ctx, id); err != nil {
		return err
	}
	log.Printf("[INFO] deleted feed %d", id)
	return nil
}

// ListArticles returns recent articles, optionally of one feed or only those needing review
func (s *FeedService) ListArticles(ctx context.Context, feedID int64, needsReview bool, limit int) ([]domain.Article, error) {
	return s.articleRepo.ListArticles(ctx, feedID, needsReview, limit)
}

// MarkReviewed clears the review flag of an article
func (s *FeedService) MarkReviewed(ctx context.Context, id int64) error {
	return s.articleRepo.MarkReviewed(ctx, id)
}

// LocalizedArticles returns the newest articles readable in lang, merging articles ingested
// in that language with completed translations into it. An article appears once, the
// original wins over a translation.
func (s *FeedService) LocalizedArticles(ctx context.Context, lang domain.Language, limit int) ([]domain.LocalizedArticle, error) {
	if !lang.IsSupported() {
		return nil, fmt.Errorf("unsupported language %q: %w", lang, domain.ErrValidation)
	}
	if limit <= 0 {
		limit = 50
	}

	originals, err := s.articleRepo.ListByLanguage(ctx, lang, limit)
	if err != nil {
		return nil, fmt.Errorf("localized articles: %w", err)
	}
	jobs, err := s.jobRepo.ListCompleted(ctx, lang, limit)
	if err != nil {
		return nil, fmt.Errorf("localized articles: %w", err)
	}

	seen := make(map[int64]bool, len(originals)+len(jobs))
	res := make([]domain.LocalizedArticle, 0, len(originals)+len(jobs))
	for i := range originals {
		seen[originals[i].ID] = true
		res = append(res, originals[i].Localize(lang, ""))
	}
	for _, job := range jobs {
		if seen[job.ArticleID] {
			continue
		}
		article, err := s.articleRepo.GetArticle(ctx, job.ArticleID)
		if err != nil {
			log.Printf("[WARN] skip translation job %d: %v", job.ID, err)
			continue
		}
		seen[job.ArticleID] = true
		res = append(res, article.Localize(lang, job.TranslatedContent[lang]))
	}

	sort.SliceStable(res, func(i, j int) bool { return res[i].Timestamp().After(res[j].Timestamp()) })
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}
