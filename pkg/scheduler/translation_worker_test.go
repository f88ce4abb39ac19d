package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newswire/pkg/domain"
	"github.com/umputun/newswire/pkg/scheduler/mocks"
)

// translationStore backs a TranslationManagerMock with the same guarded transitions the repository has
type translationStore struct {
	mu       sync.Mutex
	jobs     map[int64]*domain.TranslationJob
	progress map[int64][]int
}

func newTranslationStore(jobs ...domain.TranslationJob) (*translationStore, *mocks.TranslationManagerMock) {
	st := &translationStore{jobs: make(map[int64]*domain.TranslationJob), progress: make(map[int64][]int)}
	for _, j := range jobs {
		if j.Status == "" {
			j.Status = domain.StatusQueued
		}
		st.jobs[j.ID] = &j
	}

	guard := func(id int64, want ...domain.JobStatus) (*domain.TranslationJob, error) {
		j, ok := st.jobs[id]
		if !ok {
			return nil, fmt.Errorf("job %d: %w", id, domain.ErrNotFound)
		}
		for _, w := range want {
			if j.Status == w {
				return j, nil
			}
		}
		return nil, fmt.Errorf("job is %s: %w", j.Status, domain.ErrConflict)
	}
	copyContent := func(c map[domain.Language]string) map[domain.Language]string {
		res := make(map[domain.Language]string, len(c))
		for k, v := range c {
			res[k] = v
		}
		return res
	}

	m := &mocks.TranslationManagerMock{
		EnqueueTranslationFunc: func(ctx context.Context, job *domain.TranslationJob) error {
			st.mu.Lock()
			defer st.mu.Unlock()
			job.ID = int64(len(st.jobs) + 1)
			job.Status = domain.StatusQueued
			cp := *job
			st.jobs[job.ID] = &cp
			return nil
		},
		ListQueuedTranslationsFunc: func(ctx context.Context, limit int) ([]domain.TranslationJob, error) {
			st.mu.Lock()
			defer st.mu.Unlock()
			var res []domain.TranslationJob
			for id := int64(1); id <= int64(len(st.jobs)) && len(res) < limit; id++ {
				if j, ok := st.jobs[id]; ok && j.Status == domain.StatusQueued {
					res = append(res, *j)
				}
			}
			return res, nil
		},
		ClaimTranslationFunc: func(ctx context.Context, id int64, worker string) (*domain.TranslationJob, error) {
			st.mu.Lock()
			defer st.mu.Unlock()
			j, err := guard(id, domain.StatusQueued)
			if err != nil {
				return nil, err
			}
			j.Status, j.AssignedWorker, j.Progress = domain.StatusProcessing, worker, 0
			started := time.Now()
			j.StartedAt = &started
			cp := *j
			return &cp, nil
		},
		UpdateTranslationProgressFunc: func(ctx context.Context, id int64, progress int, content map[domain.Language]string) error {
			st.mu.Lock()
			defer st.mu.Unlock()
			j, err := guard(id, domain.StatusProcessing)
			if err != nil {
				return err
			}
			if progress >= 100 {
				return fmt.Errorf("progress %d reserved for completion: %w", progress, domain.ErrValidation)
			}
			if progress < j.Progress {
				return fmt.Errorf("progress decreased: %w", domain.ErrConflict)
			}
			j.Progress, j.TranslatedContent = progress, copyContent(content)
			st.progress[id] = append(st.progress[id], progress)
			return nil
		},
		CompleteTranslationFunc: func(ctx context.Context, id int64, content map[domain.Language]string) error {
			st.mu.Lock()
			defer st.mu.Unlock()
			j, err := guard(id, domain.StatusProcessing)
			if err != nil {
				return err
			}
			j.Status, j.Progress, j.TranslatedContent = domain.StatusCompleted, 100, copyContent(content)
			st.progress[id] = append(st.progress[id], 100)
			return nil
		},
		FailTranslationFunc: func(ctx context.Context, id int64, errMsg string, content map[domain.Language]string) error {
			st.mu.Lock()
			defer st.mu.Unlock()
			j, err := guard(id, domain.StatusProcessing)
			if err != nil {
				return err
			}
			j.Status, j.ErrorMessage, j.TranslatedContent = domain.StatusFailed, errMsg, copyContent(content)
			return nil
		},
		FailStaleTranslationsFunc: func(ctx context.Context, startedBefore time.Time, errMsg string) ([]int64, error) {
			st.mu.Lock()
			defer st.mu.Unlock()
			var res []int64
			for id, j := range st.jobs {
				if j.Status == domain.StatusProcessing && j.StartedAt != nil && j.StartedAt.Before(startedBefore) {
					j.Status, j.ErrorMessage = domain.StatusFailed, errMsg
					res = append(res, id)
				}
			}
			return res, nil
		},
	}
	return st, m
}

func (st *translationStore) get(id int64) domain.TranslationJob {
	st.mu.Lock()
	defer st.mu.Unlock()
	return *st.jobs[id]
}

func (st *translationStore) cancel(id int64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.jobs[id].Status = domain.StatusCancelled
}

func (st *translationStore) progressOf(id int64) []int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]int(nil), st.progress[id]...)
}

func prefixTranslator() *mocks.TranslatorMock {
	return &mocks.TranslatorMock{TranslateFunc: func(ctx context.Context, text string, source, target domain.Language) (string, error) {
		return string(target) + ": " + text, nil
	}}
}

func queuedJob(id int64, targets ...domain.Language) domain.TranslationJob {
	return domain.TranslationJob{ID: id, ArticleID: 1, SourceLanguage: domain.LangEnglish, TargetLanguages: targets,
		Priority: domain.PriorityNormal, MaxRetries: 3}
}

func TestNewTranslationWorker(t *testing.T) {
	w1 := NewTranslationWorker(WorkerParams{})
	w2 := NewTranslationWorker(WorkerParams{})
	assert.True(t, strings.HasPrefix(w1.ID(), "worker-"))
	assert.Len(t, w1.ID(), len("worker-")+36)
	assert.NotEqual(t, w1.ID(), w2.ID())
	assert.Equal(t, 10*time.Second, w1.tickInterval)
	assert.Equal(t, 1, w1.batchSize)
	assert.Equal(t, 1, w1.concurrency)
	assert.Equal(t, 15*time.Minute, w1.maxJobDuration)
}

func TestTranslationWorker_ProcessJob(t *testing.T) {
	st, tm := newTranslationStore(queuedJob(1, domain.LangSpanish, domain.LangFrench, domain.LangArabic))
	_, am := newArticleStore()
	am.GetArticleFunc = func(ctx context.Context, id int64) (*domain.Article, error) {
		return &domain.Article{ID: id, Title: "Title", Content: "Body"}, nil
	}
	tr := prefixTranslator()
	w := NewTranslationWorker(WorkerParams{TranslationManager: tm, ArticleManager: am, Translator: tr})

	done, err := w.ProcessJob(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, done)

	job := st.get(1)
	assert.Equal(t, domain.StatusCompleted, job.Status)
	assert.Equal(t, 100, job.Progress)
	assert.Equal(t, w.ID(), job.AssignedWorker)
	assert.Equal(t, map[domain.Language]string{
		domain.LangSpanish: "spanish: Title\n\nBody",
		domain.LangFrench:  "french: Title\n\nBody",
		domain.LangArabic:  "arabic: Title\n\nBody",
	}, job.TranslatedContent)

	assert.Equal(t, []int{10, 40, 70, 100}, st.progressOf(1), "progress is non-decreasing and 100 only at completion")

	require.Len(t, tr.TranslateCalls(), 3)
	assert.Equal(t, domain.LangSpanish, tr.TranslateCalls()[0].Target)
	assert.Equal(t, domain.LangFrench, tr.TranslateCalls()[1].Target)
	assert.Equal(t, domain.LangArabic, tr.TranslateCalls()[2].Target)
	assert.Equal(t, domain.LangEnglish, tr.TranslateCalls()[0].Source)
}

func TestTranslationWorker_ProcessJob_PartialFailure(t *testing.T) {
	st, tm := newTranslationStore(queuedJob(1, domain.LangSpanish, domain.LangFrench, domain.LangArabic))
	_, am := newArticleStore()
	am.GetArticleFunc = func(ctx context.Context, id int64) (*domain.Article, error) {
		return &domain.Article{ID: id, Title: "Title", Content: "Body"}, nil
	}
	tr := &mocks.TranslatorMock{TranslateFunc: func(ctx context.Context, text string, source, target domain.Language) (string, error) {
		if target == domain.LangFrench {
			return "", fmt.Errorf("llm request failed: %w", domain.ErrRateLimit)
		}
		return "ok", nil
	}}
	w := NewTranslationWorker(WorkerParams{TranslationManager: tm, ArticleManager: am, Translator: tr})

	done, err := w.ProcessJob(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrRateLimit)
	assert.True(t, done)

	job := st.get(1)
	assert.Equal(t, domain.StatusFailed, job.Status)
	assert.Contains(t, job.ErrorMessage, "translate to french")
	assert.Equal(t, map[domain.Language]string{domain.LangSpanish: "ok"}, job.TranslatedContent, "partial content kept")
	assert.Len(t, tr.TranslateCalls(), 2, "no calls after the failed language")
	assert.Equal(t, []int{10, 40}, st.progressOf(1))
}

func TestTranslationWorker_ProcessJob_SingleTarget(t *testing.T) {
	st, tm := newTranslationStore(queuedJob(1, domain.LangJapanese))
	_, am := newArticleStore()
	am.GetArticleFunc = func(ctx context.Context, id int64) (*domain.Article, error) {
		return &domain.Article{ID: id, Title: "T"}, nil
	}
	w := NewTranslationWorker(WorkerParams{TranslationManager: tm, ArticleManager: am, Translator: prefixTranslator()})

	_, err := w.ProcessJob(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 100}, st.progressOf(1))
	assert.Equal(t, domain.StatusCompleted, st.get(1).Status)
}

func TestTranslationWorker_ProcessJob_NotClaimable(t *testing.T) {
	done := queuedJob(1, domain.LangSpanish)
	done.Status = domain.StatusCompleted
	st, tm := newTranslationStore(done)
	tr := prefixTranslator()
	w := NewTranslationWorker(WorkerParams{TranslationManager: tm, Translator: tr})

	ok, err := w.ProcessJob(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, domain.StatusCompleted, st.get(1).Status, "terminal job untouched")

	ok, err = w.ProcessJob(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, tr.TranslateCalls())
}

func TestTranslationWorker_ProcessJob_ArticleMissing(t *testing.T) {
	st, tm := newTranslationStore(queuedJob(1, domain.LangSpanish))
	_, am := newArticleStore()
	w := NewTranslationWorker(WorkerParams{TranslationManager: tm, ArticleManager: am, Translator: prefixTranslator()})

	_, err := w.ProcessJob(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
	job := st.get(1)
	assert.Equal(t, domain.StatusFailed, job.Status)
	assert.Contains(t, job.ErrorMessage, "load article 1")
}

func TestTranslationWorker_ProcessJob_CancelledWhileProcessing(t *testing.T) {
	st, tm := newTranslationStore(queuedJob(1, domain.LangSpanish, domain.LangFrench, domain.LangArabic))
	_, am := newArticleStore()
	am.GetArticleFunc = func(ctx context.Context, id int64) (*domain.Article, error) {
		return &domain.Article{ID: id, Title: "Title"}, nil
	}
	tr := &mocks.TranslatorMock{TranslateFunc: func(ctx context.Context, text string, source, target domain.Language) (string, error) {
		if target == domain.LangFrench {
			st.cancel(1) // operator cancels mid-way
		}
		return "ok", nil
	}}
	w := NewTranslationWorker(WorkerParams{TranslationManager: tm, ArticleManager: am, Translator: tr})

	ok, err := w.ProcessJob(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, ok)

	job := st.get(1)
	assert.Equal(t, domain.StatusCancelled, job.Status, "worker doesn't overwrite a cancelled job")
	assert.Len(t, tr.TranslateCalls(), 2, "worker stops after the rejected progress update")
	assert.Equal(t, []int{10, 40}, st.progressOf(1))
}

func TestTranslationWorker_ProcessJob_MaxDuration(t *testing.T) {
	st, tm := newTranslationStore(queuedJob(1, domain.LangSpanish))
	_, am := newArticleStore()
	am.GetArticleFunc = func(ctx context.Context, id int64) (*domain.Article, error) {
		return &domain.Article{ID: id, Title: "Title"}, nil
	}
	tr := &mocks.TranslatorMock{TranslateFunc: func(ctx context.Context, text string, source, target domain.Language) (string, error) {
		<-ctx.Done()
		return "", fmt.Errorf("llm request timed out: %w", domain.ErrTimeout)
	}}
	w := NewTranslationWorker(WorkerParams{TranslationManager: tm, ArticleManager: am, Translator: tr,
		MaxJobDuration: 30 * time.Millisecond, CallTimeout: time.Minute})

	_, err := w.ProcessJob(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrTimeout)
	job := st.get(1)
	assert.Equal(t, domain.StatusFailed, job.Status)
	assert.Contains(t, job.ErrorMessage, "timeout: job exceeded max duration")
}

func TestTranslationWorker_ProcessJob_CallTimeout(t *testing.T) {
	st, tm := newTranslationStore(queuedJob(1, domain.LangSpanish))
	_, am := newArticleStore()
	am.GetArticleFunc = func(ctx context.Context, id int64) (*domain.Article, error) {
		return &domain.Article{ID: id, Title: "Title"}, nil
	}
	tr := &mocks.TranslatorMock{TranslateFunc: func(ctx context.Context, text string, source, target domain.Language) (string, error) {
		<-ctx.Done()
		return "", fmt.Errorf("llm request timed out: %w", domain.ErrTimeout)
	}}
	w := NewTranslationWorker(WorkerParams{TranslationManager: tm, ArticleManager: am, Translator: tr,
		CallTimeout: 20 * time.Millisecond})

	_, err := w.ProcessJob(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrTimeout)
	assert.Contains(t, st.get(1).ErrorMessage, "translate to spanish")
}

func TestTranslationWorker_SourceText(t *testing.T) {
	longText := strings.Repeat("full article text ", 30)

	tests := []struct {
		name      string
		article   domain.Article
		extractor *mocks.ExtractorMock
		minLength int
		want      string
		extracted bool
	}{
		{name: "no extractor", article: domain.Article{Title: "T", Content: "short", URL: "https://x/1"},
			minLength: 100, want: "T\n\nshort"},
		{name: "content long enough", article: domain.Article{Title: "T", Content: longText, URL: "https://x/1"},
			extractor: &mocks.ExtractorMock{}, minLength: 100, want: "T\n\n" + longText},
		{name: "short content extracted", article: domain.Article{Title: "T", Content: "short", URL: "https://x/1"},
			extractor: &mocks.ExtractorMock{ExtractFunc: func(ctx context.Context, url string) (string, error) {
				return longText, nil
			}},
			minLength: 100, want: "T\n\n" + longText, extracted: true},
		{name: "extraction failed", article: domain.Article{Title: "T", Description: "desc", URL: "https://x/1"},
			extractor: &mocks.ExtractorMock{ExtractFunc: func(ctx context.Context, url string) (string, error) {
				return "", fmt.Errorf("blocked: %w", domain.ErrExternalService)
			}},
			minLength: 100, want: "T\n\ndesc", extracted: true},
		{name: "extraction shorter than content", article: domain.Article{Title: "T", Content: "short text", URL: "https://x/1"},
			extractor: &mocks.ExtractorMock{ExtractFunc: func(ctx context.Context, url string) (string, error) {
				return "tiny", nil
			}},
			minLength: 100, want: "T\n\nshort text", extracted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := WorkerParams{MinTextLength: tt.minLength}
			if tt.extractor != nil {
				params.Extractor = tt.extractor
			}
			w := NewTranslationWorker(params)
			assert.Equal(t, tt.want, w.sourceText(context.Background(), &tt.article))
			if tt.extractor != nil {
				assert.Equal(t, tt.extracted, len(tt.extractor.ExtractCalls()) == 1)
			}
		})
	}
}

func TestTranslationWorker_ProcessBatch(t *testing.T) {
	stale := queuedJob(1, domain.LangSpanish)
	stale.Status = domain.StatusProcessing
	startedAt := time.Now().Add(-time.Hour)
	stale.StartedAt = &startedAt

	st, tm := newTranslationStore(stale, queuedJob(2, domain.LangSpanish), queuedJob(3, domain.LangFrench),
		queuedJob(4, domain.LangArabic))
	_, am := newArticleStore()
	am.GetArticleFunc = func(ctx context.Context, id int64) (*domain.Article, error) {
		return &domain.Article{ID: id, Title: "Title"}, nil
	}
	w := NewTranslationWorker(WorkerParams{TranslationManager: tm, ArticleManager: am, Translator: prefixTranslator(),
		BatchSize: 2, Concurrency: 2, MaxJobDuration: 10 * time.Minute})

	n := w.ProcessBatch(context.Background())
	assert.Equal(t, 2, n)

	assert.Equal(t, domain.StatusFailed, st.get(1).Status)
	assert.Contains(t, st.get(1).ErrorMessage, "timeout")
	assert.Equal(t, domain.StatusCompleted, st.get(2).Status)
	assert.Equal(t, domain.StatusCompleted, st.get(3).Status)
	assert.Equal(t, domain.StatusQueued, st.get(4).Status, "beyond batch size")

	require.Len(t, tm.ListQueuedTranslationsCalls(), 1)
	assert.Equal(t, 2, tm.ListQueuedTranslationsCalls()[0].Limit)

	assert.Equal(t, 1, w.ProcessBatch(context.Background()))
	assert.Equal(t, domain.StatusCompleted, st.get(4).Status)
	assert.Equal(t, 0, w.ProcessBatch(context.Background()))
}

func TestTranslationWorker_ConcurrentClaim(t *testing.T) {
	st, tm := newTranslationStore(queuedJob(1, domain.LangSpanish))
	_, am := newArticleStore()
	am.GetArticleFunc = func(ctx context.Context, id int64) (*domain.Article, error) {
		return &domain.Article{ID: id, Title: "Title"}, nil
	}
	tr := prefixTranslator()

	var wg sync.WaitGroup
	results := make(chan bool, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := NewTranslationWorker(WorkerParams{TranslationManager: tm, ArticleManager: am, Translator: tr})
			ok, err := w.ProcessJob(context.Background(), 1)
			assert.NoError(t, err)
			results <- ok
		}()
	}
	wg.Wait()
	close(results)

	winners := 0
	for ok := range results {
		if ok {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
	assert.Len(t, tr.TranslateCalls(), 1)
	assert.Equal(t, domain.StatusCompleted, st.get(1).Status)
}

func TestTranslationWorker_RunShutdown(t *testing.T) {
	_, tm := newTranslationStore()
	w := NewTranslationWorker(WorkerParams{TranslationManager: tm, TickInterval: 20 * time.Millisecond})

	w.Run(context.Background())
	require.Eventually(t, func() bool { return len(tm.ListQueuedTranslationsCalls()) >= 2 }, time.Second, 5*time.Millisecond)
	w.Shutdown()

	calls := len(tm.ListQueuedTranslationsCalls())
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, calls, len(tm.ListQueuedTranslationsCalls()))
}

func TestProgressAfter(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{0, 1, 100}, {0, 2, 55}, {1, 2, 100}, {0, 3, 40}, {1, 3, 70}, {0, 4, 33}, {1, 4, 55}, {2, 4, 78}, {0, 7, 23},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d of %d", tt.i+1, tt.n), func(t *testing.T) {
			assert.Equal(t, tt.want, progressAfter(tt.i, tt.n))
		})
	}
}
