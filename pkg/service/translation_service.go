package service

import (
	"context"
	"fmt"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/newswire/pkg/domain"
	"github.com/umputun/newswire/pkg/repository"
)

// EnqueueRequest describes a translation requested by an operator
type EnqueueRequest struct {
	ArticleID       int64              `json:"article_id"`
	SourceLanguage  domain.Language    `json:"source_language,omitempty"` // detected article language if empty
	TargetLanguages []domain.Language  `json:"target_languages"`
	Priority        domain.JobPriority `json:"priority,omitempty"`
	MaxRetries      int                `json:"max_retries,omitempty"`
}

// TranslationService holds operator actions on translation jobs
type TranslationService struct {
	jobRepo     *repository.TranslationJobRepository
	articleRepo *repository.ArticleRepository
	maxRetries  int
}

// NewTranslationService creates a translation service, maxRetries is used for requests without one
func NewTranslationService(repos *repository.Repositories, maxRetries int) *TranslationService {
	return &TranslationService{jobRepo: repos.TranslationJob, articleRepo: repos.Article, maxRetries: maxRetries}
}

// Enqueue validates the request against the article and creates a queued job
func (s *TranslationService) Enqueue(ctx context.Context, req EnqueueRequest) (*domain.TranslationJob, error) {
	if req.ArticleID <= 0 {
		return nil, fmt.Errorf("enqueue translation: article id is required: %w", domain.ErrValidation)
	}
	article, err := s.articleRepo.GetArticle(ctx, req.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("enqueue translation: %w", err)
	}

	job := &domain.TranslationJob{
		ArticleID:       req.ArticleID,
		SourceLanguage:  req.SourceLanguage,
		TargetLanguages: req.TargetLanguages,
		Priority:        req.Priority,
		MaxRetries:      req.MaxRetries,
	}
	if job.SourceLanguage == "" {
		job.SourceLanguage = article.Detection.Language
	}
	if job.MaxRetries == 0 {
		job.MaxRetries = s.maxRetries
	}

	if err := s.jobRepo.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("enqueue translation of article %d: %w", req.ArticleID, err)
	}
	log.Printf("[INFO] enqueued translation job %d for article %d, priority %s", job.ID, job.ArticleID, job.Priority)
	return job, nil
}

// Get returns a translation job by id
func (s *TranslationService) Get(ctx context.Context, id int64) (*domain.TranslationJob, error) {
	return s.jobRepo.GetJob(ctx, id)
}

// List returns jobs matching the filter
func (s *TranslationService) List(ctx context.Context, filter domain.TranslationJobFilter) ([]domain.TranslationJob, error) {
	for _, st := range filter.Statuses {
		if !st.IsValid() {
			return nil, fmt.Errorf("unknown status %q: %w", st, domain.ErrValidation)
		}
	}
	if filter.Priority != "" && !filter.Priority.IsValid() {
		return nil, fmt.Errorf("unknown priority %q: %w", filter.Priority, domain.ErrValidation)
	}
	return s.jobRepo.ListJobs(ctx, filter)
}

// Cancel cancels a queued or processing job, terminal jobs return domain.ErrConflict
func (s *TranslationService) Cancel(ctx context.Context, id int64) (*domain.TranslationJob, error) {
	if err := s.jobRepo.Cancel(ctx, id); err != nil {
		return nil, err
	}
	log.Printf("[INFO] cancelled translation job %d", id)
	return s.jobRepo.GetJob(ctx, id)
}

// Retry re-queues a failed job while retries are left, otherwise returns domain.ErrConflict
func (s *TranslationService) Retry(ctx context.Context, id int64) (*domain.TranslationJob, error) {
	if err := s.jobRepo.Retry(ctx, id); err != nil {
		return nil, err
	}
	job, err := s.jobRepo.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] re-queued translation job %d, retry %d of %d", id, job.RetryCount, job.MaxRetries)
	return job, nil
}
