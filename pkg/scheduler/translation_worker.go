package scheduler

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newswire/pkg/domain"
)

// progress reported once the source text is loaded, the rest is split between target languages
const sourceLoadedProgress = 10

// TranslationWorker claims queued translation jobs on its own ticker and translates them
// into every target language in order, reporting progress after each language.
type TranslationWorker struct {
	translations TranslationManager
	articles     ArticleManager
	translator   Translator
	extractor    Extractor

	id             string
	tickInterval   time.Duration
	batchSize      int
	concurrency    int
	callTimeout    time.Duration
	maxJobDuration time.Duration
	minTextLength  int
	now            func() time.Time

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// WorkerParams contains dependencies and configuration of the translation worker
type WorkerParams struct {
	TranslationManager TranslationManager
	ArticleManager     ArticleManager
	Translator         Translator
	Extractor          Extractor // optional, enriches short articles with full text

	TickInterval   time.Duration
	BatchSize      int
	Concurrency    int
	CallTimeout    time.Duration
	MaxJobDuration time.Duration
	MinTextLength  int
}

// NewTranslationWorker creates a worker with a unique worker-<uuid> identifier
func NewTranslationWorker(params WorkerParams) *TranslationWorker {
	if params.TickInterval <= 0 {
		params.TickInterval = 10 * time.Second
	}
	if params.BatchSize <= 0 {
		params.BatchSize = 1
	}
	if params.Concurrency <= 0 {
		params.Concurrency = 1
	}
	if params.CallTimeout <= 0 {
		params.CallTimeout = time.Minute
	}
	if params.MaxJobDuration <= 0 {
		params.MaxJobDuration = 15 * time.Minute
	}

	return &TranslationWorker{
		translations:   params.TranslationManager,
		articles:       params.ArticleManager,
		translator:     params.Translator,
		extractor:      params.Extractor,
		id:             "worker-" + uuid.NewString(),
		tickInterval:   params.TickInterval,
		batchSize:      params.BatchSize,
		concurrency:    params.Concurrency,
		callTimeout:    params.CallTimeout,
		maxJobDuration: params.MaxJobDuration,
		minTextLength:  params.MinTextLength,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// ID returns the worker identifier stored in claimed jobs
func (w *TranslationWorker) ID() string {
	return w.id
}

// Run starts the worker loop, first tick happens immediately
func (w *TranslationWorker) Run(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.tickInterval)
		defer ticker.Stop()

		// batches survive shutdown, each job is bounded by max job duration
		w.ProcessBatch(context.WithoutCancel(ctx))
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.ProcessBatch(context.WithoutCancel(ctx))
			}
		}
	}()

	log.Printf("[INFO] translation worker %s started with tick interval %v, concurrency %d", w.id, w.tickInterval, w.concurrency)
}

// Shutdown stops the loop and waits for the current batch
func (w *TranslationWorker) Shutdown() {
	log.Printf("[INFO] stopping translation worker %s...", w.id)
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
	log.Printf("[INFO] translation worker %s stopped", w.id)
}

// ProcessBatch fails stale jobs, then claims and processes up to batch size queued jobs.
// Returns the number of jobs this worker finished, successfully or not.
func (w *TranslationWorker) ProcessBatch(ctx context.Context) int {
	stale, err := w.translations.FailStaleTranslations(ctx, w.now().Add(-w.maxJobDuration),
		fmt.Sprintf("timeout: job exceeded max duration %v", w.maxJobDuration))
	if err != nil {
		log.Printf("[WARN] failed to fail stale translation jobs: %v", err)
	}
	if len(stale) > 0 {
		log.Printf("[WARN] failed %d stale translation jobs: %v", len(stale), stale)
	}

	jobs, err := w.translations.ListQueuedTranslations(ctx, w.batchSize)
	if err != nil {
		log.Printf("[ERROR] failed to list queued translation jobs: %v", err)
		return 0
	}
	if len(jobs) == 0 {
		return 0
	}

	var mu sync.Mutex
	processed := 0
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)
	for _, job := range jobs {
		g.Go(func() error {
			done, err := w.ProcessJob(gctx, job.ID)
			if err != nil {
				log.Printf("[WARN] translation job %d failed: %v", job.ID, err)
			}
			if done {
				mu.Lock()
				processed++
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("[ERROR] translation batch error: %v", err)
	}
	return processed
}

// ProcessJob claims a queued job and translates it. Returns false if the job was claimed by
// someone else or cancelled while processing, and the translation error if the job failed.
func (w *TranslationWorker) ProcessJob(ctx context.Context, id int64) (bool, error) {
	job, err := w.translations.ClaimTranslation(ctx, id, w.id)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrNotFound) {
			log.Printf("[DEBUG] translation job %d not claimed: %v", id, err)
			return false, nil
		}
		return false, fmt.Errorf("claim job %d: %w", id, err)
	}
	log.Printf("[DEBUG] worker %s claimed translation job %d (%s, %d targets)", w.id, job.ID, job.Priority, len(job.TargetLanguages))

	jobCtx, cancel := context.WithTimeout(ctx, w.maxJobDuration)
	defer cancel()

	article, err := w.articles.GetArticle(jobCtx, job.ArticleID)
	if err != nil {
		return w.fail(ctx, job.ID, fmt.Sprintf("load article %d: %v", job.ArticleID, err), nil, err)
	}
	text := w.sourceText(jobCtx, article)

	if err := w.translations.UpdateTranslationProgress(ctx, job.ID, sourceLoadedProgress, nil); err != nil {
		return w.stopped(job.ID, err)
	}

	content := make(map[domain.Language]string, len(job.TargetLanguages))
	n := len(job.TargetLanguages)
	for i, target := range job.TargetLanguages {
		callCtx, cancelCall := context.WithTimeout(jobCtx, w.callTimeout)
		res, err := w.translator.Translate(callCtx, text, job.SourceLanguage, target)
		cancelCall()
		if err != nil {
			msg := fmt.Sprintf("translate to %s: %v", target, err)
			if errors.Is(jobCtx.Err(), context.DeadlineExceeded) {
				msg = fmt.Sprintf("timeout: job exceeded max duration %v", w.maxJobDuration)
			}
			return w.fail(ctx, job.ID, msg, content, err)
		}
		content[target] = res

		if i == n-1 {
			break
		}
		if err := w.translations.UpdateTranslationProgress(ctx, job.ID, progressAfter(i, n), content); err != nil {
			return w.stopped(job.ID, err)
		}
	}

	if err := w.translations.CompleteTranslation(ctx, job.ID, content); err != nil {
		return w.stopped(job.ID, err)
	}
	log.Printf("[INFO] translation job %d completed, article %d translated to %s", job.ID, job.ArticleID, joinLanguages(job.TargetLanguages))
	return true, nil
}

// sourceText returns title and content, replaced by extracted full text for short articles
func (w *TranslationWorker) sourceText(ctx context.Context, article *domain.Article) string {
	text := article.SourceText()
	if w.extractor == nil || w.minTextLength <= 0 || len([]rune(article.Content)) >= w.minTextLength || article.URL == "" {
		return text
	}

	extracted, err := w.extractor.Extract(ctx, article.URL)
	if err != nil {
		log.Printf("[DEBUG] extraction for article %d failed, using feed content: %v", article.ID, err)
		return text
	}
	if len([]rune(extracted)) <= len([]rune(article.Content)) {
		return text
	}
	if article.Title == "" {
		return extracted
	}
	return article.Title + "\n\n" + extracted
}

// fail marks the job failed with partial content and returns the cause
func (w *TranslationWorker) fail(ctx context.Context, id int64, msg string, content map[domain.Language]string, cause error) (bool, error) {
	if err := w.translations.FailTranslation(ctx, id, msg, content); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			log.Printf("[INFO] translation job %d was cancelled while processing", id)
			return false, nil
		}
		log.Printf("[ERROR] failed to mark translation job %d failed: %v", id, err)
	}
	return true, fmt.Errorf("%s: %w", msg, cause)
}

// stopped handles a rejected write; a conflict means the job left processing, e.g. cancelled
func (w *TranslationWorker) stopped(id int64, err error) (bool, error) {
	if errors.Is(err, domain.ErrConflict) {
		log.Printf("[INFO] translation job %d is no longer processing, worker stops: %v", id, err)
		return false, nil
	}
	return false, fmt.Errorf("update job %d: %w", id, err)
}

// progressAfter returns progress once target i of n is translated
func progressAfter(i, n int) int {
	return sourceLoadedProgress + int(math.Round(float64(100-sourceLoadedProgress)*float64(i+1)/float64(n)))
}
