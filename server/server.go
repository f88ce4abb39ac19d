package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/newswire/pkg/domain"
	"github.com/umputun/newswire/pkg/feed"
	"github.com/umputun/newswire/pkg/service"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/job_store.go -pkg mocks -skip-ensure -fmt goimports . JobStore
//go:generate moq -out mocks/feeds.go -pkg mocks -skip-ensure -fmt goimports . Feeds
//go:generate moq -out mocks/health_reporter.go -pkg mocks -skip-ensure -fmt goimports . HealthReporter
//go:generate moq -out mocks/translations.go -pkg mocks -skip-ensure -fmt goimports . Translations

// Server represents HTTP server instance
type Server struct {
	config       ConfigProvider
	scheduler    Scheduler
	jobs         JobStore
	feeds        Feeds
	health       HealthReporter
	translations Translations
	version      string
	debug        bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
	generator  *feed.Generator
}

// Scheduler interface for polling job control
type Scheduler interface {
	CreateJob(ctx context.Context, name string, intervalMinutes int, filter domain.FeedFilter, active bool) (*domain.PollingJob, error)
	StartJob(ctx context.Context, id int64, intervalMinutes int) (*domain.PollingJob, error)
	StopJob(ctx context.Context, id int64) (*domain.PollingJob, error)
	UpdateInterval(ctx context.Context, id int64, minutes int) (*domain.PollingJob, error)
	TriggerJob(ctx context.Context, id int64) (domain.RunStats, error)
	IsRunning(id int64) bool
}

// JobStore reads polling jobs
type JobStore interface {
	ListJobs(ctx context.Context) ([]domain.PollingJob, error)
	GetJob(ctx context.Context, id int64) (*domain.PollingJob, error)
}

// Feeds manages feeds and articles
type Feeds interface {
	AddFeed(ctx context.Context, feed *domain.Feed) error
	GetFeed(ctx context.Context, id int64) (*domain.Feed, error)
	ListFeeds(ctx context.Context, activeOnly bool) ([]domain.Feed, error)
	SetFeedActive(ctx context.Context, id int64, active bool) error
	DeleteFeed(ctx context.Context, id int64) error
	ListArticles(ctx context.Context, feedID int64, needsReview bool, limit int) ([]domain.Article, error)
	MarkReviewed(ctx context.Context, id int64) error
	LocalizedArticles(ctx context.Context, lang domain.Language, limit int) ([]domain.LocalizedArticle, error)
}

// HealthReporter provides feed health snapshots
type HealthReporter interface {
	Snapshot(ctx context.Context, feedID int64) (domain.FeedHealth, error)
	Summary(ctx context.Context) ([]domain.FeedHealth, error)
}

// Translations manages translation jobs
type Translations interface {
	Enqueue(ctx context.Context, req service.EnqueueRequest) (*domain.TranslationJob, error)
	Get(ctx context.Context, id int64) (*domain.TranslationJob, error)
	List(ctx context.Context, filter domain.TranslationJobFilter) ([]domain.TranslationJob, error)
	Cancel(ctx context.Context, id int64) (*domain.TranslationJob, error)
	Retry(ctx context.Context, id int64) (*domain.TranslationJob, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
}

// Params contains the services exposed by the server
type Params struct {
	Scheduler    Scheduler
	Jobs         JobStore
	Feeds        Feeds
	Health       HealthReporter
	Translations Translations
}

// New initializes a new server instance
func New(cfg ConfigProvider, params Params, version string, debug bool) *Server {
	s := &Server{
		config:       cfg,
		scheduler:    params.Scheduler,
		jobs:         params.Jobs,
		feeds:        params.Feeds,
		health:       params.Health,
		translations: params.Translations,
		version:      version,
		debug:        debug,
		router:       routegroup.New(http.NewServeMux()),
		generator:    feed.NewGenerator(cfg.GetBaseURL()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		// no write timeout, manual trigger runs a whole polling job within the request
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newswire", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /polling-jobs", s.listPollingJobsHandler)
		r.HandleFunc("POST /polling-jobs", s.createPollingJobHandler)
		r.HandleFunc("GET /polling-jobs/{id}", s.getPollingJobHandler)
		r.HandleFunc("POST /polling-jobs/{id}/start", s.startPollingJobHandler)
		r.HandleFunc("POST /polling-jobs/{id}/stop", s.stopPollingJobHandler)
		r.HandleFunc("POST /polling-jobs/{id}/trigger", s.triggerPollingJobHandler)
		r.HandleFunc("PUT /polling-jobs/{id}/interval", s.updateIntervalHandler)

		r.HandleFunc("GET /feeds", s.listFeedsHandler)
		r.HandleFunc("POST /feeds", s.createFeedHandler)
		r.HandleFunc("GET /feeds/health", s.healthSummaryHandler)
		r.HandleFunc("GET /feeds/opml", s.opmlHandler)
		r.HandleFunc("GET /feeds/{id}", s.getFeedHandler)
		r.HandleFunc("DELETE /feeds/{id}", s.deleteFeedHandler)
		r.HandleFunc("POST /feeds/{id}/activate", s.activateFeedHandler)
		r.HandleFunc("POST /feeds/{id}/deactivate", s.deactivateFeedHandler)
		r.HandleFunc("GET /feeds/{id}/health", s.feedHealthHandler)

		r.HandleFunc("GET /articles", s.listArticlesHandler)
		r.HandleFunc("POST /articles/{id}/reviewed", s.reviewedHandler)

		r.HandleFunc("GET /translation-jobs", s.listTranslationJobsHandler)
		r.HandleFunc("POST /translation-jobs", s.createTranslationJobHandler)
		r.HandleFunc("GET /translation-jobs/{id}", s.getTranslationJobHandler)
		r.HandleFunc("POST /translation-jobs/{id}/cancel", s.cancelTranslationJobHandler)
		r.HandleFunc("POST /translation-jobs/{id}/retry", s.retryTranslationJobHandler)
	})

	s.router.HandleFunc("GET /rss/{language}", s.rssFeedHandler)
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

// renderServiceError maps domain errors to status codes, unexpected ones are logged
func renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	code := errorStatus(err)
	if code == http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", r.Method, r.URL.Path, err)
	}
	renderError(w, r, err, code)
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrRateLimit):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// pathID parses the {id} path value, rendering 400 on failure
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		renderError(w, r, fmt.Errorf("invalid id %q", r.PathValue("id")), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// decodeBody decodes a JSON request body into v, an empty body leaves v untouched
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return true
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return false
	}
	return true
}
