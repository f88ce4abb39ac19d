// Package service adapts repositories to the scheduler and worker interfaces and holds the
// operator-facing rules for feeds and translation jobs.
package service

import (
	"context"
	"time"

	"github.com/umputun/newswire/pkg/domain"
	"github.com/umputun/newswire/pkg/repository"
)

// SchedulerService provides unified access to repositories for the scheduler and the translation worker
type SchedulerService struct {
	feedRepo        *repository.FeedRepository
	articleRepo     *repository.ArticleRepository
	pollingRepo     *repository.PollingJobRepository
	translationRepo *repository.TranslationJobRepository
}

// NewSchedulerService creates a new scheduler service
func NewSchedulerService(repos *repository.Repositories) *SchedulerService {
	return &SchedulerService{
		feedRepo:        repos.Feed,
		articleRepo:     repos.Article,
		pollingRepo:     repos.PollingJob,
		translationRepo: repos.TranslationJob,
	}
}

// Feed methods

func (s *SchedulerService) FindFeeds(ctx context.Context, filter domain.FeedFilter) ([]domain.Feed, error) {
	return s.feedRepo.FindFeeds(ctx, filter)
}

func (s *SchedulerService) UpdateFeedTitle(ctx context.Context, id int64, title string) error {
	return s.feedRepo.UpdateFeedTitle(ctx, id, title)
}

func (s *SchedulerService) SetFeedActive(ctx context.Context, id int64, active bool) error {
	return s.feedRepo.SetFeedActive(ctx, id, active)
}

// Article methods

func (s *SchedulerService) ArticleExists(ctx context.Context, url string) (bool, error) {
	return s.articleRepo.ArticleExists(ctx, url)
}

func (s *SchedulerService) CreateArticle(ctx context.Context, article *domain.Article) error {
	return s.articleRepo.CreateArticle(ctx, article)
}

func (s *SchedulerService) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	return s.articleRepo.GetArticle(ctx, id)
}

// Polling job methods

func (s *SchedulerService) CreatePollingJob(ctx context.Context, job *domain.PollingJob) error {
	return s.pollingRepo.CreateJob(ctx, job)
}

func (s *SchedulerService) GetPollingJob(ctx context.Context, id int64) (*domain.PollingJob, error) {
	return s.pollingRepo.GetJob(ctx, id)
}

func (s *SchedulerService) GetPollingJobByName(ctx context.Context, name string) (*domain.PollingJob, error) {
	return s.pollingRepo.GetJobByName(ctx, name)
}

func (s *SchedulerService) ListDuePollingJobs(ctx context.Context, now time.Time) ([]domain.PollingJob, error) {
	return s.pollingRepo.ListDueJobs(ctx, now)
}

func (s *SchedulerService) UpdatePollingSchedule(ctx context.Context, id int64, fn func(job *domain.PollingJob) error) (*domain.PollingJob, error) {
	return s.pollingRepo.UpdateSchedule(ctx, id, fn)
}

func (s *SchedulerService) RecordPollingRun(ctx context.Context, id int64, result domain.RunResult) (*domain.PollingJob, error) {
	return s.pollingRepo.RecordRun(ctx, id, result)
}

// Translation job methods

func (s *SchedulerService) EnqueueTranslation(ctx context.Context, job *domain.TranslationJob) error {
	return s.translationRepo.CreateJob(ctx, job)
}

func (s *SchedulerService) ListQueuedTranslations(ctx context.Context, limit int) ([]domain.TranslationJob, error) {
	return s.translationRepo.ListQueued(ctx, limit)
}

func (s *SchedulerService) ClaimTranslation(ctx context.Context, id int64, worker string) (*domain.TranslationJob, error) {
	return s.translationRepo.Claim(ctx, id, worker)
}

func (s *SchedulerService) UpdateTranslationProgress(ctx context.Context, id int64, progress int, content map[domain.Language]string) error {
	return s.translationRepo.UpdateProgress(ctx, id, progress, content)
}

func (s *SchedulerService) CompleteTranslation(ctx context.Context, id int64, content map[domain.Language]string) error {
	return s.translationRepo.Complete(ctx, id, content)
}

func (s *SchedulerService) FailTranslation(ctx context.Context, id int64, errMsg string, content map[domain.Language]string) error {
	return s.translationRepo.Fail(ctx, id, errMsg, content)
}

func (s *SchedulerService) FailStaleTranslations(ctx context.Context, startedBefore time.Time, errMsg string) ([]int64, error) {
	return s.translationRepo.FailStale(ctx, startedBefore, errMsg)
}
