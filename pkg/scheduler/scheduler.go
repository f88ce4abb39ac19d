// Package scheduler drives interval-based polling jobs and the translation worker loop.
// Polling jobs share one ticker; each due job resolves its feeds through a filter and runs
// them through the FeedProcessor. A per-job guard makes sure a job never runs twice at once.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/newswire/pkg/domain"
)

//go:generate moq -out mocks/job_manager.go -pkg mocks -skip-ensure -fmt goimports . JobManager
//go:generate moq -out mocks/feed_manager.go -pkg mocks -skip-ensure -fmt goimports . FeedManager
//go:generate moq -out mocks/article_manager.go -pkg mocks -skip-ensure -fmt goimports . ArticleManager
//go:generate moq -out mocks/health_manager.go -pkg mocks -skip-ensure -fmt goimports . HealthManager
//go:generate moq -out mocks/translation_manager.go -pkg mocks -skip-ensure -fmt goimports . TranslationManager
//go:generate moq -out mocks/provider.go -pkg mocks -skip-ensure -fmt goimports . Provider
//go:generate moq -out mocks/detector.go -pkg mocks -skip-ensure -fmt goimports . Detector
//go:generate moq -out mocks/translator.go -pkg mocks -skip-ensure -fmt goimports . Translator
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// JobManager handles polling job persistence
type JobManager interface {
	CreatePollingJob(ctx context.Context, job *domain.PollingJob) error
	GetPollingJob(ctx context.Context, id int64) (*domain.PollingJob, error)
	GetPollingJobByName(ctx context.Context, name string) (*domain.PollingJob, error)
	ListDuePollingJobs(ctx context.Context, now time.Time) ([]domain.PollingJob, error)
	UpdatePollingSchedule(ctx context.Context, id int64, fn func(job *domain.PollingJob) error) (*domain.PollingJob, error)
	RecordPollingRun(ctx context.Context, id int64, result domain.RunResult) (*domain.PollingJob, error)
}

// FeedManager resolves and updates feeds
type FeedManager interface {
	FindFeeds(ctx context.Context, filter domain.FeedFilter) ([]domain.Feed, error)
	UpdateFeedTitle(ctx context.Context, id int64, title string) error
	SetFeedActive(ctx context.Context, id int64, active bool) error
}

// ArticleManager handles article persistence
type ArticleManager interface {
	ArticleExists(ctx context.Context, url string) (bool, error)
	CreateArticle(ctx context.Context, article *domain.Article) error
	GetArticle(ctx context.Context, id int64) (*domain.Article, error)
}

// HealthManager records fetch outcomes and reports feed health
type HealthManager interface {
	Record(ctx context.Context, feedID int64, outcome domain.FetchOutcome) error
	Snapshot(ctx context.Context, feedID int64) (domain.FeedHealth, error)
	Prune(ctx context.Context, retention time.Duration) (int64, error)
}

// TranslationManager handles translation job persistence
type TranslationManager interface {
	EnqueueTranslation(ctx context.Context, job *domain.TranslationJob) error
	ListQueuedTranslations(ctx context.Context, limit int) ([]domain.TranslationJob, error)
	ClaimTranslation(ctx context.Context, id int64, worker string) (*domain.TranslationJob, error)
	UpdateTranslationProgress(ctx context.Context, id int64, progress int, content map[domain.Language]string) error
	CompleteTranslation(ctx context.Context, id int64, content map[domain.Language]string) error
	FailTranslation(ctx context.Context, id int64, errMsg string, content map[domain.Language]string) error
	FailStaleTranslations(ctx context.Context, startedBefore time.Time, errMsg string) ([]int64, error)
}

// Provider fetches and parses feeds
type Provider interface {
	FetchFeed(ctx context.Context, url string) (*domain.ParsedFeed, error)
}

// Detector detects article language
type Detector interface {
	Detect(in domain.DetectionInput) domain.Detection
}

// Translator translates text between supported languages
type Translator interface {
	Translate(ctx context.Context, text string, source, target domain.Language) (string, error)
}

// Extractor extracts full article text from a page
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

const healthPruneInterval = time.Hour

// Scheduler runs due polling jobs on a shared ticker
type Scheduler struct {
	jobs          JobManager
	health        HealthManager
	feedProcessor *FeedProcessor

	tickInterval    time.Duration
	runTimeout      time.Duration
	healthRetention time.Duration
	now             func() time.Time

	mu        sync.Mutex
	running   map[int64]bool
	lastPrune time.Time

	runs   sync.WaitGroup // in-flight scheduled runs
	loop   sync.WaitGroup // ticker goroutine
	cancel context.CancelFunc
}

// Params contains all dependencies and configuration of the scheduler
type Params struct {
	JobManager         JobManager
	FeedManager        FeedManager
	ArticleManager     ArticleManager
	HealthManager      HealthManager
	TranslationManager TranslationManager // optional, used for automatic translation
	Provider           Provider
	Detector           Detector

	TickInterval    time.Duration
	RunTimeout      time.Duration
	FetchTimeout    time.Duration
	MaxWorkers      int
	ReviewThreshold float64
	HealthRetention time.Duration
	AutoDisable     bool
	AutoTranslate   AutoTranslate
}

// AutoTranslate describes translation jobs enqueued for every new article
type AutoTranslate struct {
	Targets    []domain.Language
	Priority   domain.JobPriority
	MaxRetries int
}

// NewScheduler creates a new scheduler instance.
// Config values are expected to be set by the config loader, zero values fall back to safe minimums.
func NewScheduler(params Params) *Scheduler {
	if params.TickInterval <= 0 {
		params.TickInterval = time.Minute
	}
	if params.RunTimeout <= 0 {
		params.RunTimeout = 10 * time.Minute
	}
	if params.MaxWorkers <= 0 {
		params.MaxWorkers = 1
	}

	fp := NewFeedProcessor(FeedProcessorConfig{
		FeedManager:        params.FeedManager,
		ArticleManager:     params.ArticleManager,
		HealthManager:      params.HealthManager,
		TranslationManager: params.TranslationManager,
		Provider:           params.Provider,
		Detector:           params.Detector,
		MaxWorkers:         params.MaxWorkers,
		FetchTimeout:       params.FetchTimeout,
		ReviewThreshold:    params.ReviewThreshold,
		AutoDisable:        params.AutoDisable,
		AutoTranslate:      params.AutoTranslate,
	})

	return &Scheduler{
		jobs:            params.JobManager,
		health:          params.HealthManager,
		feedProcessor:   fp,
		tickInterval:    params.TickInterval,
		runTimeout:      params.RunTimeout,
		healthRetention: params.HealthRetention,
		now:             func() time.Time { return time.Now().UTC() },
		running:         make(map[int64]bool),
	}
}

// Run starts the ticker loop, first scan happens immediately
func (s *Scheduler) Run(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.loop.Add(1)
	go func() {
		defer s.loop.Done()
		ticker := time.NewTicker(s.tickInterval)
		defer ticker.Stop()

		s.tick(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.tick(ctx)
			}
		}
	}()

	log.Printf("[INFO] scheduler started with tick interval %v", s.tickInterval)
}

// Shutdown stops the ticker and waits for in-flight runs to finish
func (s *Scheduler) Shutdown() {
	log.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.loop.Wait()
	s.runs.Wait()
	log.Printf("[INFO] scheduler stopped")
}

// tick starts every due job not already running and prunes health records once per hour
func (s *Scheduler) tick(ctx context.Context) {
	now := s.now()
	s.pruneHealth(ctx, now)

	jobs, err := s.FindDue(ctx, now)
	if err != nil {
		log.Printf("[ERROR] failed to find due polling jobs: %v", err)
		return
	}

	for _, job := range jobs {
		if !s.acquire(job.ID) {
			log.Printf("[DEBUG] polling job %q is still running, skipped", job.Name)
			continue
		}
		// a manual run may have finished between listing and acquiring, re-check with fresh state
		fresh, err := s.jobs.GetPollingJob(ctx, job.ID)
		if err != nil {
			s.release(job.ID)
			log.Printf("[WARN] failed to reload polling job %q: %v", job.Name, err)
			continue
		}
		if !fresh.IsDue(now) {
			s.release(job.ID)
			log.Printf("[DEBUG] polling job %q is no longer due, skipped", job.Name)
			continue
		}
		s.runs.Add(1)
		go func(job domain.PollingJob) {
			defer s.runs.Done()
			defer s.release(job.ID)
			// run survives shutdown, bounded by run timeout
			if _, err := s.runJob(context.WithoutCancel(ctx), &job, domain.TriggerScheduled); err != nil {
				log.Printf("[WARN] polling job %q failed: %v", job.Name, err)
			}
		}(*fresh)
	}
}

func (s *Scheduler) pruneHealth(ctx context.Context, now time.Time) {
	if s.health == nil || s.healthRetention <= 0 || now.Sub(s.lastPrune) < healthPruneInterval {
		return
	}
	s.lastPrune = now
	n, err := s.health.Prune(ctx, s.healthRetention)
	if err != nil {
		log.Printf("[WARN] failed to prune fetch records: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[DEBUG] pruned %d fetch records older than %v", n, s.healthRetention)
	}
}

// FindDue returns active jobs whose next run time is not after now
func (s *Scheduler) FindDue(ctx context.Context, now time.Time) ([]domain.PollingJob, error) {
	jobs, err := s.jobs.ListDuePollingJobs(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list due jobs: %w", err)
	}
	return jobs, nil
}

// CreateJob creates a polling job. Active jobs are due on the next tick.
func (s *Scheduler) CreateJob(ctx context.Context, name string, intervalMinutes int, filter domain.FeedFilter, active bool) (*domain.PollingJob, error) {
	if err := domain.ValidateInterval(intervalMinutes); err != nil {
		return nil, err
	}
	job := &domain.PollingJob{Name: name, IntervalMinutes: intervalMinutes, Filter: filter, Active: active}
	if active {
		next := s.now()
		job.NextRunTime = &next
	}
	if err := s.jobs.CreatePollingJob(ctx, job); err != nil {
		return nil, fmt.Errorf("create polling job %q: %w", name, err)
	}
	log.Printf("[INFO] created polling job %q, interval %dm, active %v", name, intervalMinutes, active)
	return job, nil
}

// EnsureDefaultJob creates an active job with the given name unless one exists already
func (s *Scheduler) EnsureDefaultJob(ctx context.Context, name string, intervalMinutes int, filter domain.FeedFilter) (*domain.PollingJob, error) {
	job, err := s.jobs.GetPollingJobByName(ctx, name)
	if err == nil {
		return job, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get polling job %q: %w", name, err)
	}
	return s.CreateJob(ctx, name, intervalMinutes, filter, true)
}

// StartJob activates a job, intervalMinutes 0 keeps the stored interval
func (s *Scheduler) StartJob(ctx context.Context, id int64, intervalMinutes int) (*domain.PollingJob, error) {
	if intervalMinutes != 0 {
		if err := domain.ValidateInterval(intervalMinutes); err != nil {
			return nil, err
		}
	}
	job, err := s.jobs.UpdatePollingSchedule(ctx, id, func(job *domain.PollingJob) error {
		if intervalMinutes != 0 {
			job.IntervalMinutes = intervalMinutes
		}
		job.Active = true
		next := s.now().Add(job.Interval())
		job.NextRunTime = &next
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("start polling job %d: %w", id, err)
	}
	log.Printf("[INFO] started polling job %q, next run at %s", job.Name, job.NextRunTime.Format(time.RFC3339))
	return job, nil
}

// StopJob deactivates a job and clears its next run time
func (s *Scheduler) StopJob(ctx context.Context, id int64) (*domain.PollingJob, error) {
	job, err := s.jobs.UpdatePollingSchedule(ctx, id, func(job *domain.PollingJob) error {
		job.Active = false
		job.NextRunTime = nil
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("stop polling job %d: %w", id, err)
	}
	log.Printf("[INFO] stopped polling job %q", job.Name)
	return job, nil
}

// UpdateInterval changes a job's interval and re-derives next run time if the job is active
func (s *Scheduler) UpdateInterval(ctx context.Context, id int64, minutes int) (*domain.PollingJob, error) {
	if err := domain.ValidateInterval(minutes); err != nil {
		return nil, err
	}
	job, err := s.jobs.UpdatePollingSchedule(ctx, id, func(job *domain.PollingJob) error {
		job.IntervalMinutes = minutes
		if job.Active {
			next := s.now().Add(job.Interval())
			job.NextRunTime = &next
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update interval of polling job %d: %w", id, err)
	}
	return job, nil
}

// TriggerJob runs a job immediately and synchronously, regardless of its schedule.
// Returns ErrConflict if the job is running already.
func (s *Scheduler) TriggerJob(ctx context.Context, id int64) (domain.RunStats, error) {
	job, err := s.jobs.GetPollingJob(ctx, id)
	if err != nil {
		return domain.RunStats{}, fmt.Errorf("get polling job %d: %w", id, err)
	}
	if !s.acquire(id) {
		return domain.RunStats{}, fmt.Errorf("polling job %q is already running: %w", job.Name, domain.ErrConflict)
	}
	defer s.release(id)

	log.Printf("[INFO] manual trigger of polling job %q", job.Name)
	// a caller going away must not abort the run half way, it is still bounded by run timeout
	return s.runJob(context.WithoutCancel(ctx), job, domain.TriggerManual)
}

// IsRunning reports whether a job has a run in progress
func (s *Scheduler) IsRunning(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running[id]
}

// runJob processes all feeds of a job and records the outcome
func (s *Scheduler) runJob(ctx context.Context, job *domain.PollingJob, trigger domain.RunTrigger) (domain.RunStats, error) {
	started := time.Now()
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	stats, runErr := s.feedProcessor.RunJob(runCtx, job)
	stats.Trigger = trigger
	stats.ExecutionTimeMs = time.Since(started).Milliseconds()
	if runErr != nil {
		stats.Error = runErr.Error()
	}

	result := domain.RunResult{Success: runErr == nil, Stats: stats, FinishedAt: s.now()}
	if _, err := s.jobs.RecordPollingRun(context.WithoutCancel(ctx), job.ID, result); err != nil {
		log.Printf("[ERROR] failed to record run of polling job %q: %v", job.Name, err)
		if runErr == nil {
			return stats, fmt.Errorf("record run: %w", err)
		}
	}

	log.Printf("[INFO] polling job %q finished in %dms: %d/%d feeds, %d new articles, %d duplicates",
		job.Name, stats.ExecutionTimeMs, stats.FeedsProcessed, stats.FeedsMatched, stats.ArticlesFound, stats.DuplicatesSkipped)
	return stats, runErr
}

func (s *Scheduler) acquire(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running[id] {
		return false
	}
	s.running[id] = true
	return true
}

func (s *Scheduler) release(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.running, id)
}
