package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newswire/pkg/domain"
	"github.com/umputun/newswire/pkg/service"
	"github.com/umputun/newswire/server/mocks"
)

func TestServer_PollingJobs(t *testing.T) {
	next := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	job := domain.PollingJob{ID: 1, Name: "latam", Active: true, IntervalMinutes: 15, NextRunTime: &next,
		Filter: domain.FeedFilter{Languages: []string{"es", "pt"}}}

	srv, params := testServer(t)
	sched := params.Scheduler.(*mocks.SchedulerMock)
	sched.IsRunningFunc = func(id int64) bool { return id == 1 }
	store := params.Jobs.(*mocks.JobStoreMock)
	store.ListJobsFunc = func(ctx context.Context) ([]domain.PollingJob, error) {
		return []domain.PollingJob{job, {ID: 2, Name: "asia", IntervalMinutes: 60}}, nil
	}
	store.GetJobFunc = func(ctx context.Context, id int64) (*domain.PollingJob, error) {
		if id != 1 {
			return nil, fmt.Errorf("get polling job %d: %w", id, domain.ErrNotFound)
		}
		return &job, nil
	}

	t.Run("list", func(t *testing.T) {
		w := do(t, srv, "GET", "/api/v1/polling-jobs", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var res []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Len(t, res, 2)
		assert.Equal(t, "latam", res[0]["name"])
		assert.Equal(t, true, res[0]["running"])
		assert.Equal(t, false, res[1]["running"])
	})

	t.Run("get", func(t *testing.T) {
		w := do(t, srv, "GET", "/api/v1/polling-jobs/1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var res pollingJobView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, 15, res.IntervalMinutes)
		assert.Equal(t, []string{"es", "pt"}, res.Filter.Languages)
		assert.True(t, res.Running)

		w = do(t, srv, "GET", "/api/v1/polling-jobs/7", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		w = do(t, srv, "GET", "/api/v1/polling-jobs/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create", func(t *testing.T) {
		sched.CreateJobFunc = func(ctx context.Context, name string, interval int, filter domain.FeedFilter, active bool) (*domain.PollingJob, error) {
			if interval > domain.MaxPollingInterval {
				return nil, fmt.Errorf("interval: %w", domain.ErrValidation)
			}
			return &domain.PollingJob{ID: 3, Name: name, IntervalMinutes: interval, Filter: filter, Active: active}, nil
		}

		w := do(t, srv, "POST", "/api/v1/polling-jobs", map[string]any{
			"name": "europe", "interval_minutes": 30, "filter": map[string]any{"regions": []string{"eu"}}})
		require.Equal(t, http.StatusCreated, w.Code)
		calls := sched.CreateJobCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "europe", calls[0].Name)
		assert.Equal(t, 30, calls[0].IntervalMinutes)
		assert.Equal(t, []string{"eu"}, calls[0].Filter.Regions)
		assert.True(t, calls[0].Active, "active by default")

		w = do(t, srv, "POST", "/api/v1/polling-jobs", map[string]any{"name": "paused", "interval_minutes": 30, "active": false})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.False(t, sched.CreateJobCalls()[1].Active)

		w = do(t, srv, "POST", "/api/v1/polling-jobs", map[string]any{"name": "slow", "interval_minutes": 5000})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = do(t, srv, "POST", "/api/v1/polling-jobs", `{"name": `)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("start and stop", func(t *testing.T) {
		sched.StartJobFunc = func(ctx context.Context, id int64, interval int) (*domain.PollingJob, error) {
			j := job
			if interval > 0 {
				j.IntervalMinutes = interval
			}
			return &j, nil
		}
		sched.StopJobFunc = func(ctx context.Context, id int64) (*domain.PollingJob, error) {
			return &domain.PollingJob{ID: id, Name: "latam", IntervalMinutes: 15}, nil
		}

		w := do(t, srv, "POST", "/api/v1/polling-jobs/1/start", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, sched.StartJobCalls()[0].IntervalMinutes)

		w = do(t, srv, "POST", "/api/v1/polling-jobs/1/start", map[string]int{"interval_minutes": 5})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 5, sched.StartJobCalls()[1].IntervalMinutes)

		w = do(t, srv, "POST", "/api/v1/polling-jobs/1/stop", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var res pollingJobView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.False(t, res.Active)
		assert.Nil(t, res.NextRunTime)
	})

	t.Run("trigger", func(t *testing.T) {
		sched.TriggerJobFunc = func(ctx context.Context, id int64) (domain.RunStats, error) {
			if id == 2 {
				return domain.RunStats{}, fmt.Errorf("polling job 2 is running: %w", domain.ErrConflict)
			}
			return domain.RunStats{Trigger: domain.TriggerManual, FeedsMatched: 2, FeedsProcessed: 2, ArticlesFound: 7}, nil
		}

		w := do(t, srv, "POST", "/api/v1/polling-jobs/1/trigger", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var stats domain.RunStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		assert.Equal(t, 7, stats.ArticlesFound)
		assert.Equal(t, domain.TriggerManual, stats.Trigger)

		w = do(t, srv, "POST", "/api/v1/polling-jobs/2/trigger", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "is running")
	})

	t.Run("interval", func(t *testing.T) {
		sched.UpdateIntervalFunc = func(ctx context.Context, id int64, minutes int) (*domain.PollingJob, error) {
			if err := domain.ValidateInterval(minutes); err != nil {
				return nil, err
			}
			j := job
			j.IntervalMinutes = minutes
			return &j, nil
		}

		w := do(t, srv, "PUT", "/api/v1/polling-jobs/1/interval", map[string]int{"interval_minutes": 45})
		require.Equal(t, http.StatusOK, w.Code)
		var res pollingJobView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, 45, res.IntervalMinutes)

		w = do(t, srv, "PUT", "/api/v1/polling-jobs/1/interval", map[string]int{"interval_minutes": 0})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_Feeds(t *testing.T) {
	srv, params := testServer(t)
	feeds := params.Feeds.(*mocks.FeedsMock)
	stored := map[int64]*domain.Feed{1: {ID: 1, URL: "https://example.com/rss", Language: "en", Active: true}}

	feeds.ListFeedsFunc = func(ctx context.Context, activeOnly bool) ([]domain.Feed, error) {
		return []domain.Feed{*stored[1]}, nil
	}
	feeds.GetFeedFunc = func(ctx context.Context, id int64) (*domain.Feed, error) {
		f, ok := stored[id]
		if !ok {
			return nil, fmt.Errorf("get feed %d: %w", id, domain.ErrNotFound)
		}
		return f, nil
	}
	feeds.AddFeedFunc = func(ctx context.Context, f *domain.Feed) error {
		if f.URL == "https://example.com/html" {
			return fmt.Errorf("add feed: not a feed: %w", domain.ErrValidation)
		}
		f.ID, f.Active = 2, true
		stored[2] = f
		return nil
	}
	feeds.SetFeedActiveFunc = func(ctx context.Context, id int64, active bool) error {
		f, ok := stored[id]
		if !ok {
			return domain.ErrNotFound
		}
		f.Active = active
		return nil
	}
	feeds.DeleteFeedFunc = func(ctx context.Context, id int64) error {
		if _, ok := stored[id]; !ok {
			return domain.ErrNotFound
		}
		delete(stored, id)
		return nil
	}

	t.Run("list", func(t *testing.T) {
		w := do(t, srv, "GET", "/api/v1/feeds?active=true", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, feeds.ListFeedsCalls()[0].ActiveOnly)
		w = do(t, srv, "GET", "/api/v1/feeds", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.False(t, feeds.ListFeedsCalls()[1].ActiveOnly)
	})

	t.Run("create", func(t *testing.T) {
		w := do(t, srv, "POST", "/api/v1/feeds", map[string]string{"url": "https://example.com/es", "language": "es", "region": "latam"})
		require.Equal(t, http.StatusCreated, w.Code)
		var f domain.Feed
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &f))
		assert.Equal(t, int64(2), f.ID)
		assert.Equal(t, "latam", f.Region)

		w = do(t, srv, "POST", "/api/v1/feeds", map[string]string{"url": "https://example.com/html"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "not a feed")
	})

	t.Run("activate and deactivate", func(t *testing.T) {
		w := do(t, srv, "POST", "/api/v1/feeds/1/deactivate", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.False(t, stored[1].Active)

		w = do(t, srv, "POST", "/api/v1/feeds/1/activate", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var f domain.Feed
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &f))
		assert.True(t, f.Active)

		w = do(t, srv, "POST", "/api/v1/feeds/99/activate", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		w := do(t, srv, "DELETE", "/api/v1/feeds/2", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
		w = do(t, srv, "DELETE", "/api/v1/feeds/2", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServer_FeedHealth(t *testing.T) {
	srv, params := testServer(t)
	feeds := params.Feeds.(*mocks.FeedsMock)
	feeds.GetFeedFunc = func(ctx context.Context, id int64) (*domain.Feed, error) {
		if id != 1 {
			return nil, domain.ErrNotFound
		}
		return &domain.Feed{ID: 1}, nil
	}
	health := params.Health.(*mocks.HealthReporterMock)
	health.SnapshotFunc = func(ctx context.Context, feedID int64) (domain.FeedHealth, error) {
		return domain.FeedHealth{FeedID: feedID, TotalFetches: 10, SuccessfulFetches: 6, SuccessRate: 0.6,
			Status: domain.HealthCritical, Action: domain.ActionMaintain}, nil
	}
	health.SummaryFunc = func(ctx context.Context) ([]domain.FeedHealth, error) {
		return []domain.FeedHealth{{FeedID: 1, Status: domain.HealthHealthy}, {FeedID: 2, Status: domain.HealthUnknown}}, nil
	}

	w := do(t, srv, "GET", "/api/v1/feeds/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary []domain.FeedHealth
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Len(t, summary, 2)
	assert.Empty(t, health.SnapshotCalls(), "summary route doesn't match feed id route")

	w = do(t, srv, "GET", "/api/v1/feeds/1/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var h map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &h))
	assert.Equal(t, "critical", h["status"])
	assert.Equal(t, "maintain", h["recommended_action"])

	w = do(t, srv, "GET", "/api/v1/feeds/5/health", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, health.SnapshotCalls(), 1)
}

func TestServer_Articles(t *testing.T) {
	srv, params := testServer(t)
	feeds := params.Feeds.(*mocks.FeedsMock)
	feeds.ListArticlesFunc = func(ctx context.Context, feedID int64, needsReview bool, limit int) ([]domain.Article, error) {
		return []domain.Article{{ID: 5, FeedID: 3, NeedsReview: true}}, nil
	}
	feeds.MarkReviewedFunc = func(ctx context.Context, id int64) error {
		if id != 5 {
			return domain.ErrNotFound
		}
		return nil
	}

	w := do(t, srv, "GET", "/api/v1/articles?feed_id=3&needs_review=true&limit=20", nil)
	require.Equal(t, http.StatusOK, w.Code)
	call := feeds.ListArticlesCalls()[0]
	assert.Equal(t, int64(3), call.FeedID)
	assert.True(t, call.NeedsReview)
	assert.Equal(t, 20, call.Limit)

	w = do(t, srv, "GET", "/api/v1/articles?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = do(t, srv, "GET", "/api/v1/articles?feed_id=x", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, feeds.ListArticlesCalls(), 1)

	w = do(t, srv, "POST", "/api/v1/articles/5/reviewed", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, srv, "POST", "/api/v1/articles/6/reviewed", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_TranslationJobs(t *testing.T) {
	srv, params := testServer(t)
	tr := params.Translations.(*mocks.TranslationsMock)

	t.Run("create", func(t *testing.T) {
		tr.EnqueueFunc = func(ctx context.Context, req service.EnqueueRequest) (*domain.TranslationJob, error) {
			if len(req.TargetLanguages) == 0 {
				return nil, fmt.Errorf("at least one target language is required: %w", domain.ErrValidation)
			}
			return &domain.TranslationJob{ID: 10, ArticleID: req.ArticleID, SourceLanguage: domain.LangSpanish,
				TargetLanguages: req.TargetLanguages, Status: domain.StatusQueued, Priority: req.Priority}, nil
		}

		w := do(t, srv, "POST", "/api/v1/translation-jobs", map[string]any{
			"article_id": 4, "target_languages": []string{"english", "french"}, "priority": "high"})
		require.Equal(t, http.StatusCreated, w.Code)
		req := tr.EnqueueCalls()[0].Req
		assert.Equal(t, int64(4), req.ArticleID)
		assert.Equal(t, []domain.Language{domain.LangEnglish, domain.LangFrench}, req.TargetLanguages)
		assert.Equal(t, domain.PriorityHigh, req.Priority)

		var job domain.TranslationJob
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))
		assert.Equal(t, domain.StatusQueued, job.Status)

		w = do(t, srv, "POST", "/api/v1/translation-jobs", map[string]any{"article_id": 4})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		tr.ListFunc = func(ctx context.Context, filter domain.TranslationJobFilter) ([]domain.TranslationJob, error) {
			return []domain.TranslationJob{}, nil
		}
		w := do(t, srv, "GET", "/api/v1/translation-jobs?status=queued,processing&priority=urgent&article_id=4&limit=5", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
		f := tr.ListCalls()[0].Filter
		assert.Equal(t, []domain.JobStatus{domain.StatusQueued, domain.StatusProcessing}, f.Statuses)
		assert.Equal(t, domain.PriorityUrgent, f.Priority)
		assert.Equal(t, int64(4), f.ArticleID)
		assert.Equal(t, 5, f.Limit)

		w = do(t, srv, "GET", "/api/v1/translation-jobs?limit=many", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get", func(t *testing.T) {
		tr.GetFunc = func(ctx context.Context, id int64) (*domain.TranslationJob, error) {
			if id != 10 {
				return nil, fmt.Errorf("get translation job %d: %w", id, domain.ErrNotFound)
			}
			return &domain.TranslationJob{ID: 10, Status: domain.StatusProcessing, Progress: 55,
				TranslatedContent: map[domain.Language]string{domain.LangEnglish: "hello"}}, nil
		}
		w := do(t, srv, "GET", "/api/v1/translation-jobs/10", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var job domain.TranslationJob
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))
		assert.Equal(t, 55, job.Progress)
		assert.Equal(t, "hello", job.TranslatedContent[domain.LangEnglish])

		w = do(t, srv, "GET", "/api/v1/translation-jobs/11", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("cancel and retry", func(t *testing.T) {
		tr.CancelFunc = func(ctx context.Context, id int64) (*domain.TranslationJob, error) {
			if id == 11 {
				return nil, fmt.Errorf("job is completed: %w", domain.ErrConflict)
			}
			return &domain.TranslationJob{ID: id, Status: domain.StatusCancelled}, nil
		}
		tr.RetryFunc = func(ctx context.Context, id int64) (*domain.TranslationJob, error) {
			if id == 11 {
				return nil, fmt.Errorf("job is failed: %w", domain.ErrConflict)
			}
			return &domain.TranslationJob{ID: id, Status: domain.StatusQueued, RetryCount: 1}, nil
		}

		w := do(t, srv, "POST", "/api/v1/translation-jobs/10/cancel", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"cancelled"`)
		w = do(t, srv, "POST", "/api/v1/translation-jobs/11/cancel", nil)
		assert.Equal(t, http.StatusConflict, w.Code)

		w = do(t, srv, "POST", "/api/v1/translation-jobs/10/retry", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"retry_count":1`)
		w = do(t, srv, "POST", "/api/v1/translation-jobs/11/retry", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestServer_InternalError(t *testing.T) {
	srv, params := testServer(t)
	params.Jobs.(*mocks.JobStoreMock).ListJobsFunc = func(ctx context.Context) ([]domain.PollingJob, error) {
		return nil, fmt.Errorf("list polling jobs: %w", domain.ErrDatabase)
	}
	w := do(t, srv, "GET", "/api/v1/polling-jobs", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "database error")
}

func TestServer_RSS(t *testing.T) {
	pub := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	article := domain.Article{ID: 7, GUID: "g7", URL: "https://elpais.com/a", Title: "Hola",
		Description: "Texto", PublishedAt: &pub, Detection: domain.Detection{Language: domain.LangSpanish}}

	srv, params := testServer(t)
	feeds := params.Feeds.(*mocks.FeedsMock)
	feeds.LocalizedArticlesFunc = func(ctx context.Context, lang domain.Language, limit int) ([]domain.LocalizedArticle, error) {
		if lang == domain.LangChinese {
			return nil, fmt.Errorf("list: %w", domain.ErrDatabase)
		}
		return []domain.LocalizedArticle{article.Localize(lang, "Hello\n\nText")}, nil
	}

	t.Run("by iso code", func(t *testing.T) {
		w := do(t, srv, "GET", "/rss/en?limit=10", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/rss+xml; charset=utf-8", w.Header().Get("Content-Type"))
		body := w.Body.String()
		assert.Contains(t, body, "<title>Hello</title>")
		assert.Contains(t, body, "<description>Text</description>")
		assert.Contains(t, body, `href="https://news.example.com/rss/english"`)

		calls := feeds.LocalizedArticlesCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, domain.LangEnglish, calls[0].Lang)
		assert.Equal(t, 10, calls[0].Limit)
	})

	t.Run("by name", func(t *testing.T) {
		w := do(t, srv, "GET", "/rss/Portuguese", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<language>pt</language>")
	})

	t.Run("unsupported language", func(t *testing.T) {
		w := do(t, srv, "GET", "/rss/klingon", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad limit", func(t *testing.T) {
		w := do(t, srv, "GET", "/rss/en?limit=-5", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		w := do(t, srv, "GET", "/rss/zh", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_OPML(t *testing.T) {
	srv, params := testServer(t)
	feeds := params.Feeds.(*mocks.FeedsMock)
	feeds.ListFeedsFunc = func(ctx context.Context, activeOnly bool) ([]domain.Feed, error) {
		return []domain.Feed{{ID: 1, Title: "El País", URL: "https://elpais.com/rss", Language: "es", Active: true}}, nil
	}

	w := do(t, srv, "GET", "/api/v1/feeds/opml", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/x-opml; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `xmlUrl="https://elpais.com/rss"`)

	calls := feeds.ListFeedsCalls()
	require.Len(t, calls, 1)
	assert.True(t, calls[0].ActiveOnly)
}
