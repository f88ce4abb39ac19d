package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/newswire/pkg/domain"
)

// TranslationJobRepository is the durable translation job queue
type TranslationJobRepository struct {
	db *sqlx.DB
}

// translationJobSQL represents a translation job for SQL operations
type translationJobSQL struct {
	ID                int64                               `db:"id"`
	ArticleID         int64                               `db:"article_id"`
	SourceLanguage    string                              `db:"source_language"`
	TargetLanguages   jsonSQL[[]domain.Language]          `db:"target_languages"`
	Status            string                              `db:"status"`
	Priority          string                              `db:"priority"`
	Progress          int                                 `db:"progress"`
	AssignedWorker    string                              `db:"assigned_worker"`
	RetryCount        int                                 `db:"retry_count"`
	MaxRetries        int                                 `db:"max_retries"`
	ErrorMessage      string                              `db:"error_message"`
	TranslatedContent jsonSQL[map[domain.Language]string] `db:"translated_content"`
	CreatedAt         time.Time                           `db:"created_at"`
	StartedAt         *time.Time                          `db:"started_at"`
	CompletedAt       *time.Time                          `db:"completed_at"`
	UpdatedAt         time.Time                           `db:"updated_at"`
}

// priorityRank orders queued jobs, higher first
const priorityRank = "CASE priority WHEN 'urgent' THEN 4 WHEN 'high' THEN 3 WHEN 'normal' THEN 2 ELSE 1 END"

// NewTranslationJobRepository creates a new translation job repository
func NewTranslationJobRepository(database *sqlx.DB) *TranslationJobRepository {
	return &TranslationJobRepository{db: database}
}

// CreateJob validates and enqueues a new job in queued state
func (r *TranslationJobRepository) CreateJob(ctx context.Context, job *domain.TranslationJob) error {
	if err := job.Validate(); err != nil {
		return fmt.Errorf("create translation job: %w", err)
	}
	ts := now()
	row := &translationJobSQL{
		ArticleID:         job.ArticleID,
		SourceLanguage:    string(job.SourceLanguage),
		TargetLanguages:   jsonSQL[[]domain.Language]{V: job.TargetLanguages},
		Status:            string(domain.StatusQueued),
		Priority:          string(job.Priority),
		MaxRetries:        job.MaxRetries,
		TranslatedContent: jsonSQL[map[domain.Language]string]{V: map[domain.Language]string{}},
		CreatedAt:         ts,
		UpdatedAt:         ts,
	}
	query := `
		INSERT INTO translation_jobs (article_id, source_language, target_languages, status, priority,
			progress, max_retries, translated_content, created_at, updated_at)
		VALUES (:article_id, :source_language, :target_languages, :status, :priority,
			0, :max_retries, :translated_content, :created_at, :updated_at)
	`
	err := withLockRetry(ctx, func() error {
		res, err := r.db.NamedExecContext(ctx, query, row)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("get insert id: %w", err)
		}
		row.ID = id
		return nil
	})
	if err != nil {
		return dbError("create translation job", err)
	}

	job.ID = row.ID
	job.Status = domain.StatusQueued
	job.Progress = 0
	job.RetryCount = 0
	job.AssignedWorker = ""
	job.ErrorMessage = ""
	job.TranslatedContent = map[domain.Language]string{}
	job.CreatedAt, job.UpdatedAt = ts, ts
	job.StartedAt, job.CompletedAt = nil, nil
	return nil
}

// GetJob retrieves a translation job by ID
func (r *TranslationJobRepository) GetJob(ctx context.Context, id int64) (*domain.TranslationJob, error) {
	var row translationJobSQL
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM translation_jobs WHERE id = ?", id); err != nil {
		return nil, dbError(fmt.Sprintf("get translation job %d", id), err)
	}
	return row.toDomain(), nil
}

// ListJobs returns jobs matching the filter, newest first
func (r *TranslationJobRepository) ListJobs(ctx context.Context, filter domain.TranslationJobFilter) ([]domain.TranslationJob, error) {
	qb := sq.Select("*").From("translation_jobs").OrderBy("created_at DESC", "id DESC")
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		qb = qb.Where(sq.Eq{"status": statuses})
	}
	if filter.Priority != "" {
		qb = qb.Where(sq.Eq{"priority": string(filter.Priority)})
	}
	if filter.ArticleID > 0 {
		qb = qb.Where(sq.Eq{"article_id": filter.ArticleID})
	}
	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build translation jobs query: %w", err)
	}
	var rows []translationJobSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, dbError("list translation jobs", err)
	}
	return toDomainJobs(rows), nil
}

// ListCompleted returns the most recently completed jobs holding a translation into lang
func (r *TranslationJobRepository) ListCompleted(ctx context.Context, lang domain.Language, limit int) ([]domain.TranslationJob, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []translationJobSQL
	err := r.db.SelectContext(ctx, &rows, `
		SELECT * FROM translation_jobs
		WHERE status = 'completed' AND json_extract(translated_content, '$.' || ?) IS NOT NULL
		ORDER BY completed_at DESC, id DESC LIMIT ?`, string(lang), limit)
	if err != nil {
		return nil, dbError(fmt.Sprintf("list completed %s translations", lang), err)
	}
	return toDomainJobs(rows), nil
}

// ListQueued returns up to limit queued jobs by priority rank, then oldest first
func (r *TranslationJobRepository) ListQueued(ctx context.Context, limit int) ([]domain.TranslationJob, error) {
	query := "SELECT * FROM translation_jobs WHERE status = 'queued' ORDER BY " + priorityRank +
		" DESC, created_at ASC, id ASC LIMIT ?"
	var rows []translationJobSQL
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, dbError("list queued translation jobs", err)
	}
	return toDomainJobs(rows), nil
}

// Claim moves a queued job to processing for the worker. Only one concurrent claimer wins,
// others get domain.ErrConflict.
func (r *TranslationJobRepository) Claim(ctx context.Context, id int64, worker string) (*domain.TranslationJob, error) {
	ts := now()
	err := r.transition(ctx, id, `
		UPDATE translation_jobs
		SET status = 'processing', assigned_worker = ?, started_at = ?, progress = 0,
		    error_message = '', completed_at = NULL, updated_at = ?
		WHERE id = ? AND status = 'queued'`,
		worker, ts, ts, id)
	if err != nil {
		return nil, dbError(fmt.Sprintf("claim translation job %d", id), err)
	}
	return r.GetJob(ctx, id)
}

// UpdateProgress stores progress and partial content of a processing job. Progress never
// decreases and stays below 100, which only Complete sets; a job no longer processing
// returns domain.ErrConflict.
func (r *TranslationJobRepository) UpdateProgress(ctx context.Context, id int64, progress int, content map[domain.Language]string) error {
	if progress < 0 || progress >= 100 {
		return fmt.Errorf("update progress of translation job %d: progress %d out of range [0, 99]: %w",
			id, progress, domain.ErrValidation)
	}
	err := r.transition(ctx, id, `
		UPDATE translation_jobs
		SET progress = ?, translated_content = ?, updated_at = ?
		WHERE id = ? AND status = 'processing' AND progress <= ? AND progress < 100`,
		progress, contentValue(content), now(), id, progress)
	if err != nil {
		return dbError(fmt.Sprintf("update progress of translation job %d", id), err)
	}
	return nil
}

// Complete marks a processing job completed with progress 100 and the final content
func (r *TranslationJobRepository) Complete(ctx context.Context, id int64, content map[domain.Language]string) error {
	ts := now()
	err := r.transition(ctx, id, `
		UPDATE translation_jobs
		SET status = 'completed', progress = 100, translated_content = ?, error_message = '',
		    completed_at = ?, updated_at = ?
		WHERE id = ? AND status = 'processing'`,
		contentValue(content), ts, ts, id)
	if err != nil {
		return dbError(fmt.Sprintf("complete translation job %d", id), err)
	}
	return nil
}

// Fail marks a processing job failed, keeping whatever partial content was produced
func (r *TranslationJobRepository) Fail(ctx context.Context, id int64, errMsg string, content map[domain.Language]string) error {
	ts := now()
	err := r.transition(ctx, id, `
		UPDATE translation_jobs
		SET status = 'failed', error_message = ?, translated_content = ?, completed_at = ?, updated_at = ?
		WHERE id = ? AND status = 'processing'`,
		errMsg, contentValue(content), ts, ts, id)
	if err != nil {
		return dbError(fmt.Sprintf("fail translation job %d", id), err)
	}
	return nil
}

// Cancel cancels a queued or processing job, terminal jobs return domain.ErrConflict
func (r *TranslationJobRepository) Cancel(ctx context.Context, id int64) error {
	ts := now()
	err := r.transition(ctx, id, `
		UPDATE translation_jobs
		SET status = 'cancelled', completed_at = ?, updated_at = ?
		WHERE id = ? AND status IN ('queued', 'processing')`,
		ts, ts, id)
	if err != nil {
		return dbError(fmt.Sprintf("cancel translation job %d", id), err)
	}
	return nil
}

// Retry moves a failed job back to queued and bumps its retry count. A job which is not failed
// or has no retries left returns domain.ErrConflict.
func (r *TranslationJobRepository) Retry(ctx context.Context, id int64) error {
	err := r.transition(ctx, id, `
		UPDATE translation_jobs
		SET status = 'queued', retry_count = retry_count + 1, progress = 0, assigned_worker = '',
		    error_message = '', translated_content = '{}', started_at = NULL, completed_at = NULL,
		    updated_at = ?
		WHERE id = ? AND status = 'failed' AND retry_count < max_retries`,
		now(), id)
	if err != nil {
		return dbError(fmt.Sprintf("retry translation job %d", id), err)
	}
	return nil
}

// FailStale fails processing jobs started before the given time and returns their ids
func (r *TranslationJobRepository) FailStale(ctx context.Context, startedBefore time.Time, errMsg string) ([]int64, error) {
	var rows []struct {
		ID        int64      `db:"id"`
		StartedAt *time.Time `db:"started_at"`
	}
	err := r.db.SelectContext(ctx, &rows, "SELECT id, started_at FROM translation_jobs WHERE status = 'processing'")
	if err != nil {
		return nil, dbError("list processing translation jobs", err)
	}

	var failed []int64
	for _, row := range rows {
		if row.StartedAt != nil && !row.StartedAt.Before(startedBefore) {
			continue
		}
		ts := now()
		err := r.transition(ctx, row.ID, `
			UPDATE translation_jobs
			SET status = 'failed', error_message = ?, completed_at = ?, updated_at = ?
			WHERE id = ? AND status = 'processing'`,
			errMsg, ts, ts, row.ID)
		if err != nil {
			continue // finished or cancelled meanwhile
		}
		failed = append(failed, row.ID)
	}
	return failed, nil
}

// transition runs a guarded update. When nothing changed it tells a missing job
// (domain.ErrNotFound) from a job in the wrong state (domain.ErrConflict).
func (r *TranslationJobRepository) transition(ctx context.Context, id int64, query string, args ...any) error {
	return withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("get affected rows: %w", err)
		}
		if n > 0 {
			return nil
		}
		var status string
		if err := r.db.GetContext(ctx, &status, "SELECT status FROM translation_jobs WHERE id = ?", id); err != nil {
			return err // sql.ErrNoRows maps to not found
		}
		return fmt.Errorf("job is %s: %w", status, domain.ErrConflict)
	})
}

func contentValue(content map[domain.Language]string) jsonSQL[map[domain.Language]string] {
	if content == nil {
		content = map[domain.Language]string{}
	}
	return jsonSQL[map[domain.Language]string]{V: content}
}

func toDomainJobs(rows []translationJobSQL) []domain.TranslationJob {
	res := make([]domain.TranslationJob, len(rows))
	for i := range rows {
		res[i] = *rows[i].toDomain()
	}
	return res
}

func (t *translationJobSQL) toDomain() *domain.TranslationJob {
	content := t.TranslatedContent.V
	if content == nil {
		content = map[domain.Language]string{}
	}
	return &domain.TranslationJob{
		ID:                t.ID,
		ArticleID:         t.ArticleID,
		SourceLanguage:    domain.Language(t.SourceLanguage),
		TargetLanguages:   t.TargetLanguages.V,
		Status:            domain.JobStatus(t.Status),
		Priority:          domain.JobPriority(t.Priority),
		Progress:          t.Progress,
		AssignedWorker:    t.AssignedWorker,
		RetryCount:        t.RetryCount,
		MaxRetries:        t.MaxRetries,
		ErrorMessage:      t.ErrorMessage,
		TranslatedContent: content,
		CreatedAt:         t.CreatedAt,
		StartedAt:         t.StartedAt,
		CompletedAt:       t.CompletedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}
