// Package health keeps per-feed fetch statistics and derives a health status and a
// recommended polling action from them.
package health

import (
	"context"
	"fmt"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/newswire/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store persists fetch records and aggregates them
type Store interface {
	RecordFetch(ctx context.Context, rec domain.FetchRecord) error
	FetchStats(ctx context.Context, feedID int64, since time.Time) (domain.FetchStats, error)
	ListFetchStats(ctx context.Context, since time.Time) ([]domain.FetchStats, error)
	PruneFetches(ctx context.Context, before time.Time) (int64, error)
}

// classification thresholds on success rate
const (
	healthyRate     = 0.9
	warningRate     = 0.7
	excellentRate   = 0.95
	defaultWindow   = 24 * time.Hour
	defaultDisable  = 5
	defaultSlow     = 5 * time.Second
	defaultBusyRate = 10
)

// Config for Tracker, zero values get defaults
type Config struct {
	Window               time.Duration // trailing window used for snapshots
	DisableAfterFailures int           // consecutive failures recommending disable
	SlowResponse         time.Duration // average response time considered slow
	BusyArticles         float64       // average articles per fetch considered busy
}

// Tracker records fetch outcomes and builds health snapshots
type Tracker struct {
	store Store
	cfg   Config
	now   func() time.Time
}

// NewTracker makes a tracker over the given store
func NewTracker(store Store, cfg Config) *Tracker {
	if cfg.Window <= 0 {
		cfg.Window = defaultWindow
	}
	if cfg.DisableAfterFailures <= 0 {
		cfg.DisableAfterFailures = defaultDisable
	}
	if cfg.SlowResponse <= 0 {
		cfg.SlowResponse = defaultSlow
	}
	if cfg.BusyArticles <= 0 {
		cfg.BusyArticles = defaultBusyRate
	}
	return &Tracker{store: store, cfg: cfg, now: time.Now}
}

// Record stores a single fetch attempt. The store resets the consecutive failure counter
// on success and increments it on failure.
func (t *Tracker) Record(ctx context.Context, feedID int64, outcome domain.FetchOutcome) error {
	if feedID <= 0 {
		return fmt.Errorf("record fetch: feed id is required: %w", domain.ErrValidation)
	}
	if outcome.ResponseTime < 0 {
		outcome.ResponseTime = 0
	}
	if outcome.ArticlesFound < 0 {
		outcome.ArticlesFound = 0
	}
	rec := domain.FetchRecord{FeedID: feedID, FetchOutcome: outcome, FetchedAt: t.now()}
	if err := t.store.RecordFetch(ctx, rec); err != nil {
		return fmt.Errorf("record fetch for feed %d: %w", feedID, err)
	}
	if !outcome.Success {
		log.Printf("[DEBUG] feed %d fetch failed: %s", feedID, outcome.Error)
	}
	return nil
}

// Snapshot returns health of a single feed over the trailing window
func (t *Tracker) Snapshot(ctx context.Context, feedID int64) (domain.FeedHealth, error) {
	stats, err := t.store.FetchStats(ctx, feedID, t.now().Add(-t.cfg.Window))
	if err != nil {
		return domain.FeedHealth{}, fmt.Errorf("get fetch stats for feed %d: %w", feedID, err)
	}
	return t.Evaluate(stats), nil
}

// Summary returns health snapshots of all known feeds
func (t *Tracker) Summary(ctx context.Context) ([]domain.FeedHealth, error) {
	all, err := t.store.ListFetchStats(ctx, t.now().Add(-t.cfg.Window))
	if err != nil {
		return nil, fmt.Errorf("list fetch stats: %w", err)
	}
	res := make([]domain.FeedHealth, 0, len(all))
	for _, s := range all {
		res = append(res, t.Evaluate(s))
	}
	return res, nil
}

// Prune removes fetch records older than retention
func (t *Tracker) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	n, err := t.store.PruneFetches(ctx, t.now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("prune fetch log: %w", err)
	}
	return n, nil
}

// Evaluate derives the health snapshot from aggregated stats
func (t *Tracker) Evaluate(s domain.FetchStats) domain.FeedHealth {
	h := domain.FeedHealth{
		FeedID:              s.FeedID,
		TotalFetches:        s.TotalFetches,
		SuccessfulFetches:   s.SuccessfulFetches,
		ConsecutiveFailures: s.ConsecutiveFailures,
		AvgResponseTimeMs:   s.AvgResponseTimeMs,
		AvgArticles:         s.AvgArticles,
		Status:              Classify(s.TotalFetches, s.SuccessfulFetches),
	}
	if s.TotalFetches > 0 {
		h.SuccessRate = float64(s.SuccessfulFetches) / float64(s.TotalFetches)
	}
	h.Action = t.Recommend(h)
	return h
}

// Classify maps fetch totals to a health status
func Classify(total, successes int) domain.HealthStatus {
	if total <= 0 {
		return domain.HealthUnknown
	}
	rate := float64(successes) / float64(total)
	switch {
	case rate >= healthyRate:
		return domain.HealthHealthy
	case rate >= warningRate:
		return domain.HealthWarning
	default:
		return domain.HealthCritical
	}
}

// Recommend suggests a polling change for the feed, the first matching rule wins
func (t *Tracker) Recommend(h domain.FeedHealth) domain.HealthAction {
	slowMs := float64(t.cfg.SlowResponse.Milliseconds())
	switch {
	case h.ConsecutiveFailures >= t.cfg.DisableAfterFailures:
		return domain.ActionDisable
	case h.TotalFetches == 0:
		return domain.ActionMaintain
	case h.SuccessRate < warningRate:
		return domain.ActionDecreaseFrequency
	case h.AvgResponseTimeMs > slowMs:
		return domain.ActionDecreaseFrequency
	case h.SuccessRate >= excellentRate && h.AvgResponseTimeMs < slowMs/2 && h.AvgArticles >= t.cfg.BusyArticles:
		return domain.ActionIncreaseFrequency
	}
	return domain.ActionMaintain
}
