package server

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/umputun/newswire/pkg/domain"
	"github.com/umputun/newswire/pkg/service"
)

// pollingJobView is a polling job with its in-flight state
type pollingJobView struct {
	domain.PollingJob
	Running bool `json:"running"`
}

type createPollingJobRequest struct {
	Name            string            `json:"name"`
	IntervalMinutes int               `json:"interval_minutes"`
	Filter          domain.FeedFilter `json:"filter"`
	Active          *bool             `json:"active,omitempty"` // defaults to true
}

type intervalRequest struct {
	IntervalMinutes int `json:"interval_minutes"`
}

type createFeedRequest struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Language string `json:"language"`
	Region   string `json:"region"`
	Category string `json:"category"`
	Type     string `json:"type"`
}

// polling jobs

func (s *Server) listPollingJobsHandler(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.jobs.ListJobs(r.Context())
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	res := make([]pollingJobView, len(jobs))
	for i, j := range jobs {
		res[i] = pollingJobView{PollingJob: j, Running: s.scheduler.IsRunning(j.ID)}
	}
	renderJSON(w, r, http.StatusOK, res)
}

func (s *Server) getPollingJobHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	job, err := s.jobs.GetJob(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, pollingJobView{PollingJob: *job, Running: s.scheduler.IsRunning(id)})
}

func (s *Server) createPollingJobHandler(w http.ResponseWriter, r *http.Request) {
	var req createPollingJobRequest
	if !decodeBody(w, r, &req) {
		return
	}
	active := req.Active == nil || *req.Active
	job, err := s.scheduler.CreateJob(r.Context(), req.Name, req.IntervalMinutes, req.Filter, active)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, pollingJobView{PollingJob: *job})
}

// startPollingJobHandler activates a job, optional interval_minutes replaces the stored one
func (s *Server) startPollingJobHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req intervalRequest
	if !decodeBody(w, r, &req) {
		return
	}
	job, err := s.scheduler.StartJob(r.Context(), id, req.IntervalMinutes)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, pollingJobView{PollingJob: *job, Running: s.scheduler.IsRunning(id)})
}

func (s *Server) stopPollingJobHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	job, err := s.scheduler.StopJob(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, pollingJobView{PollingJob: *job, Running: s.scheduler.IsRunning(id)})
}

// triggerPollingJobHandler runs a job now and returns its stats, a busy job returns 409
func (s *Server) triggerPollingJobHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	stats, err := s.scheduler.TriggerJob(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

func (s *Server) updateIntervalHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req intervalRequest
	if !decodeBody(w, r, &req) {
		return
	}
	job, err := s.scheduler.UpdateInterval(r.Context(), id, req.IntervalMinutes)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, pollingJobView{PollingJob: *job, Running: s.scheduler.IsRunning(id)})
}

// feeds

func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	feeds, err := s.feeds.ListFeeds(r.Context(), activeOnly)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, feeds)
}

func (s *Server) getFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	feed, err := s.feeds.GetFeed(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, feed)
}

// createFeedHandler adds a feed after validating its url through the provider
func (s *Server) createFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req createFeedRequest
	if !decodeBody(w, r, &req) {
		return
	}
	feed := &domain.Feed{
		URL:      req.URL,
		Title:    req.Title,
		Language: req.Language,
		Region:   req.Region,
		Category: req.Category,
		Type:     req.Type,
	}
	if err := s.feeds.AddFeed(r.Context(), feed); err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, feed)
}

func (s *Server) deleteFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.feeds.DeleteFeed(r.Context(), id); err != nil {
		renderServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) activateFeedHandler(w http.ResponseWriter, r *http.Request) {
	s.updateFeedStatus(w, r, true)
}

func (s *Server) deactivateFeedHandler(w http.ResponseWriter, r *http.Request) {
	s.updateFeedStatus(w, r, false)
}

// updateFeedStatus sets feed active flag and returns the updated feed
func (s *Server) updateFeedStatus(w http.ResponseWriter, r *http.Request, active bool) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.feeds.SetFeedActive(r.Context(), id, active); err != nil {
		renderServiceError(w, r, err)
		return
	}
	feed, err := s.feeds.GetFeed(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, feed)
}

func (s *Server) healthSummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := s.health.Summary(r.Context())
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, summary)
}

func (s *Server) feedHealthHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if _, err := s.feeds.GetFeed(r.Context(), id); err != nil {
		renderServiceError(w, r, err)
		return
	}
	h, err := s.health.Snapshot(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, h)
}

// articles

// listArticlesHandler supports feed_id, needs_review and limit query parameters
func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	feedID, err := queryInt(q.Get("feed_id"))
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid feed_id: %w", err), http.StatusBadRequest)
		return
	}
	limit, err := queryInt(q.Get("limit"))
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid limit: %w", err), http.StatusBadRequest)
		return
	}
	articles, err := s.feeds.ListArticles(r.Context(), feedID, q.Get("needs_review") == "true", int(limit))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, articles)
}

func (s *Server) reviewedHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.feeds.MarkReviewed(r.Context(), id); err != nil {
		renderServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// translation jobs

// listTranslationJobsHandler supports status (comma separated), priority, article_id and limit
func (s *Server) listTranslationJobsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.TranslationJobFilter{Priority: domain.JobPriority(q.Get("priority"))}
	if st := q.Get("status"); st != "" {
		for _, v := range strings.Split(st, ",") {
			filter.Statuses = append(filter.Statuses, domain.JobStatus(strings.TrimSpace(v)))
		}
	}
	articleID, err := queryInt(q.Get("article_id"))
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid article_id: %w", err), http.StatusBadRequest)
		return
	}
	limit, err := queryInt(q.Get("limit"))
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid limit: %w", err), http.StatusBadRequest)
		return
	}
	filter.ArticleID, filter.Limit = articleID, int(limit)

	jobs, err := s.translations.List(r.Context(), filter)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, jobs)
}

func (s *Server) createTranslationJobHandler(w http.ResponseWriter, r *http.Request) {
	var req service.EnqueueRequest
	if !decodeBody(w, r, &req) {
		return
	}
	job, err := s.translations.Enqueue(r.Context(), req)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	log.Printf("[DEBUG] translation job %d created via api", job.ID)
	renderJSON(w, r, http.StatusCreated, job)
}

func (s *Server) getTranslationJobHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	job, err := s.translations.Get(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, job)
}

func (s *Server) cancelTranslationJobHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	job, err := s.translations.Cancel(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, job)
}

func (s *Server) retryTranslationJobHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	job, err := s.translations.Retry(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, job)
}

// queryInt parses an optional non-negative integer query value
func queryInt(v string) (int64, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}

// feed exports

// rssFeedHandler serves articles readable in a language, accepts language name or ISO code
func (s *Server) rssFeedHandler(w http.ResponseWriter, r *http.Request) {
	lang, ok := domain.ParseLanguage(r.PathValue("language"))
	if !ok {
		http.Error(w, fmt.Sprintf("unsupported language %q", r.PathValue("language")), http.StatusBadRequest)
		return
	}
	limit, err := queryInt(r.URL.Query().Get("limit"))
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid limit: %v", err), http.StatusBadRequest)
		return
	}

	entries, err := s.feeds.LocalizedArticles(r.Context(), lang, int(limit))
	if err != nil {
		log.Printf("[ERROR] failed to get %s articles for rss: %v", lang, err)
		http.Error(w, "failed to generate feed", errorStatus(err))
		return
	}

	rss, err := s.generator.GenerateRSS(entries, lang)
	if err != nil {
		log.Printf("[ERROR] failed to generate rss: %v", err)
		http.Error(w, "failed to generate feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[WARN] failed to write rss response: %v", err)
	}
}

// opmlHandler exports active feed subscriptions
func (s *Server) opmlHandler(w http.ResponseWriter, r *http.Request) {
	feeds, err := s.feeds.ListFeeds(r.Context(), true)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	opml, err := s.generator.GenerateOPML(feeds)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/x-opml; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="newswire.opml"`)
	if _, err := w.Write([]byte(opml)); err != nil {
		log.Printf("[WARN] failed to write opml response: %v", err)
	}
}
