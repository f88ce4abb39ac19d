package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newswire/pkg/domain"
)

// FeedProcessor runs a single polling job over the feeds matched by its filter.
// For every feed it fetches items, detects their language, skips URLs already stored,
// persists new articles and reports the fetch outcome to the health tracker.
// Per-feed failures are logged and recorded, they never abort the rest of the run.
type FeedProcessor struct {
	feedManager        FeedManager
	articleManager     ArticleManager
	healthManager      HealthManager
	translationManager TranslationManager
	provider           Provider
	detector           Detector

	maxWorkers      int
	fetchTimeout    time.Duration
	reviewThreshold float64
	autoDisable     bool
	autoTranslate   AutoTranslate
}

// FeedProcessorConfig holds configuration for FeedProcessor
type FeedProcessorConfig struct {
	FeedManager        FeedManager
	ArticleManager     ArticleManager
	HealthManager      HealthManager
	TranslationManager TranslationManager
	Provider           Provider
	Detector           Detector
	MaxWorkers         int
	FetchTimeout       time.Duration
	ReviewThreshold    float64
	AutoDisable        bool
	AutoTranslate      AutoTranslate
}

// feedResult is the outcome of processing one feed
type feedResult struct {
	itemsFetched int
	newArticles  int
	duplicates   int
}

// NewFeedProcessor creates a new feed processor with the provided configuration
func NewFeedProcessor(cfg FeedProcessorConfig) *FeedProcessor {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 10 * time.Second
	}
	return &FeedProcessor{
		feedManager:        cfg.FeedManager,
		articleManager:     cfg.ArticleManager,
		healthManager:      cfg.HealthManager,
		translationManager: cfg.TranslationManager,
		provider:           cfg.Provider,
		detector:           cfg.Detector,
		maxWorkers:         cfg.MaxWorkers,
		fetchTimeout:       cfg.FetchTimeout,
		reviewThreshold:    cfg.ReviewThreshold,
		autoDisable:        cfg.AutoDisable,
		autoTranslate:      cfg.AutoTranslate,
	}
}

// RunJob processes every feed matching the job's filter concurrently, limited by max workers.
// The run fails only if feeds can't be resolved or every matched feed failed.
func (fp *FeedProcessor) RunJob(ctx context.Context, job *domain.PollingJob) (domain.RunStats, error) {
	stats := domain.RunStats{}

	feeds, err := fp.feedManager.FindFeeds(ctx, job.Filter)
	if err != nil {
		return stats, fmt.Errorf("resolve feeds: %w", err)
	}
	stats.FeedsMatched = len(feeds)
	if len(feeds) == 0 {
		log.Printf("[INFO] polling job %q matched no active feeds", job.Name)
		return stats, nil
	}

	log.Printf("[DEBUG] polling job %q processing %d feeds", job.Name, len(feeds))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fp.maxWorkers)

	for _, f := range feeds {
		g.Go(func() error {
			res, err := fp.ProcessFeed(gctx, f)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				stats.FeedsFailed++
				return nil
			}
			stats.FeedsProcessed++
			stats.ArticlesFound += res.newArticles
			stats.DuplicatesSkipped += res.duplicates
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Printf("[ERROR] feed processing error: %v", err)
	}

	if stats.FeedsProcessed == 0 {
		return stats, fmt.Errorf("all %d feeds failed: %w", stats.FeedsFailed, domain.ErrExternalService)
	}
	return stats, nil
}

// ProcessFeed fetches a single feed, stores new articles and records the fetch in the health tracker
func (fp *FeedProcessor) ProcessFeed(ctx context.Context, f domain.Feed) (feedResult, error) {
	feedID := feedIdentifier(f)
	log.Printf("[DEBUG] updating feed: %s", feedID)

	fetchCtx, cancel := context.WithTimeout(ctx, fp.fetchTimeout)
	started := time.Now()
	parsed, err := fp.provider.FetchFeed(fetchCtx, f.URL)
	elapsed := time.Since(started)
	cancel()

	if err != nil {
		if ctx.Err() != nil {
			// the run was cancelled, not the feed's fault
			log.Printf("[DEBUG] fetch of feed %s interrupted: %v", feedID, ctx.Err())
			return feedResult{}, fmt.Errorf("fetch feed %s: %w", feedID, ctx.Err())
		}
		log.Printf("[WARN] failed to fetch feed %s: %v", feedID, err)
		fp.recordHealth(ctx, f, domain.FetchOutcome{Success: false, ResponseTime: elapsed, Error: err.Error()})
		return feedResult{}, fmt.Errorf("fetch feed %s: %w", feedID, err)
	}

	if f.Title == "" && parsed.Metadata.Title != "" {
		if err := fp.feedManager.UpdateFeedTitle(ctx, f.ID, parsed.Metadata.Title); err != nil {
			log.Printf("[WARN] failed to update title of feed %s: %v", feedID, err)
		}
	}

	res := feedResult{itemsFetched: len(parsed.Items)}
	seen := make(map[string]bool, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.Link == "" {
			log.Printf("[DEBUG] skipping item without url in feed %s: %s", feedID, item.Title)
			continue
		}
		if seen[item.Link] {
			res.duplicates++
			continue
		}
		seen[item.Link] = true

		created, err := fp.storeItem(ctx, f, parsed.Metadata.Language, item)
		if err != nil {
			log.Printf("[WARN] failed to store item %s of feed %s: %v", item.Link, feedID, err)
			continue
		}
		if !created {
			res.duplicates++
			continue
		}
		res.newArticles++
	}

	fp.recordHealth(ctx, f, domain.FetchOutcome{Success: true, ResponseTime: elapsed, ArticlesFound: res.itemsFetched})

	if res.newArticles > 0 {
		log.Printf("[INFO] added %d new articles from feed %s", res.newArticles, feedID)
	}
	return res, nil
}

// storeItem detects the language of an item and persists it unless its url is known.
// Returns false for duplicates.
func (fp *FeedProcessor) storeItem(ctx context.Context, f domain.Feed, feedLang string, item domain.ParsedItem) (bool, error) {
	exists, err := fp.articleManager.ArticleExists(ctx, item.Link)
	if err != nil {
		return false, fmt.Errorf("check article: %w", err)
	}
	if exists {
		return false, nil
	}

	tag := f.Language
	if tag == "" {
		tag = feedLang
	}
	detection := fp.detector.Detect(domain.DetectionInput{
		Tag:         tag,
		URL:         item.Link,
		Title:       item.Title,
		Description: item.Description,
		Content:     item.Content,
	})

	article := &domain.Article{
		FeedID:      f.ID,
		GUID:        item.GUID,
		URL:         item.Link,
		Title:       item.Title,
		Description: item.Description,
		Content:     item.Content,
		Author:      item.Author,
		Detection:   detection,
		NeedsReview: detection.Confidence < fp.reviewThreshold,
		PublishedAt: item.PublishedAt,
	}

	if err := fp.articleManager.CreateArticle(ctx, article); err != nil {
		// stored by a concurrent run or another feed in between
		if errors.Is(err, domain.ErrConflict) {
			return false, nil
		}
		return false, fmt.Errorf("create article: %w", err)
	}

	if article.NeedsReview {
		log.Printf("[DEBUG] article %d flagged for review, %s detected by %s with confidence %.2f",
			article.ID, detection.Language, detection.Method, detection.Confidence)
	}
	fp.enqueueTranslation(ctx, article)
	return true, nil
}

// enqueueTranslation creates an automatic translation job for targets other than the article language
func (fp *FeedProcessor) enqueueTranslation(ctx context.Context, article *domain.Article) {
	if fp.translationManager == nil || len(fp.autoTranslate.Targets) == 0 {
		return
	}
	targets := make([]domain.Language, 0, len(fp.autoTranslate.Targets))
	for _, l := range fp.autoTranslate.Targets {
		if l != article.Detection.Language {
			targets = append(targets, l)
		}
	}
	if len(targets) == 0 {
		return
	}

	job := &domain.TranslationJob{
		ArticleID:       article.ID,
		SourceLanguage:  article.Detection.Language,
		TargetLanguages: targets,
		Priority:        fp.autoTranslate.Priority,
		MaxRetries:      fp.autoTranslate.MaxRetries,
	}
	if err := fp.translationManager.EnqueueTranslation(ctx, job); err != nil {
		log.Printf("[WARN] failed to enqueue translation of article %d: %v", article.ID, err)
		return
	}
	log.Printf("[DEBUG] enqueued translation job %d for article %d to %s", job.ID, article.ID, joinLanguages(targets))
}

// recordHealth reports a fetch outcome, deactivating the feed if auto-disable is on and health says so
func (fp *FeedProcessor) recordHealth(ctx context.Context, f domain.Feed, outcome domain.FetchOutcome) {
	if fp.healthManager == nil {
		return
	}
	if err := fp.healthManager.Record(ctx, f.ID, outcome); err != nil {
		log.Printf("[WARN] failed to record health of feed %s: %v", feedIdentifier(f), err)
		return
	}
	if outcome.Success || !fp.autoDisable {
		return
	}

	h, err := fp.healthManager.Snapshot(ctx, f.ID)
	if err != nil {
		log.Printf("[WARN] failed to get health of feed %s: %v", feedIdentifier(f), err)
		return
	}
	if h.Action != domain.ActionDisable {
		return
	}
	if err := fp.feedManager.SetFeedActive(ctx, f.ID, false); err != nil {
		log.Printf("[WARN] failed to disable feed %s: %v", feedIdentifier(f), err)
		return
	}
	log.Printf("[WARN] feed %s disabled after %d consecutive failures", feedIdentifier(f), h.ConsecutiveFailures)
}

// feedIdentifier returns a human-readable identifier for a feed
func feedIdentifier(f domain.Feed) string {
	if f.Title != "" {
		return f.Title
	}
	return f.URL
}

func joinLanguages(langs []domain.Language) string {
	res := make([]string, len(langs))
	for i, l := range langs {
		res[i] = string(l)
	}
	return strings.Join(res, ",")
}
