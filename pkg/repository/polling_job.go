package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newswire/pkg/domain"
)

// PollingJobRepository handles polling job persistence
type PollingJobRepository struct {
	db *sqlx.DB
}

// pollingJobSQL represents a polling job for SQL operations
type pollingJobSQL struct {
	ID              int64                      `db:"id"`
	Name            string                     `db:"name"`
	IsActive        bool                       `db:"is_active"`
	IntervalMinutes int                        `db:"interval_minutes"`
	FeedFilter      jsonSQL[domain.FeedFilter] `db:"feed_filter"`
	LastRunTime     *time.Time                 `db:"last_run_time"`
	NextRunTime     *time.Time                 `db:"next_run_time"`
	TotalRuns       int64                      `db:"total_runs"`
	SuccessfulRuns  int64                      `db:"successful_runs"`
	FailedRuns      int64                      `db:"failed_runs"`
	LastRunStats    jsonSQL[domain.RunStats]   `db:"last_run_stats"`
	CreatedAt       time.Time                  `db:"created_at"`
	UpdatedAt       time.Time                  `db:"updated_at"`
}

// NewPollingJobRepository creates a new polling job repository
func NewPollingJobRepository(database *sqlx.DB) *PollingJobRepository {
	return &PollingJobRepository{db: database}
}

// CreateJob inserts a new polling job, duplicate name returns domain.ErrConflict.
// An active job must carry next run time, an inactive one must not.
func (r *PollingJobRepository) CreateJob(ctx context.Context, job *domain.PollingJob) error {
	if strings.TrimSpace(job.Name) == "" {
		return fmt.Errorf("create polling job: name is required: %w", domain.ErrValidation)
	}
	if err := domain.ValidateInterval(job.IntervalMinutes); err != nil {
		return fmt.Errorf("create polling job: %w", err)
	}
	if job.Active != (job.NextRunTime != nil) {
		return fmt.Errorf("create polling job: next run time must be set iff job is active: %w", domain.ErrValidation)
	}

	ts := now()
	row := &pollingJobSQL{
		Name:            job.Name,
		IsActive:        job.Active,
		IntervalMinutes: job.IntervalMinutes,
		FeedFilter:      jsonSQL[domain.FeedFilter]{V: job.Filter},
		NextRunTime:     utc(job.NextRunTime),
		LastRunStats:    jsonSQL[domain.RunStats]{},
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
	query := `
		INSERT INTO polling_jobs (name, is_active, interval_minutes, feed_filter, next_run_time,
			last_run_stats, created_at, updated_at)
		VALUES (:name, :is_active, :interval_minutes, :feed_filter, :next_run_time,
			:last_run_stats, :created_at, :updated_at)
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
		return dbError("create polling job", err)
	}
	job.ID, job.CreatedAt, job.UpdatedAt = row.ID, ts, ts
	return nil
}

// GetJob retrieves a polling job by ID
func (r *PollingJobRepository) GetJob(ctx context.Context, id int64) (*domain.PollingJob, error) {
	var row pollingJobSQL
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM polling_jobs WHERE id = ?", id); err != nil {
		return nil, dbError(fmt.Sprintf("get polling job %d", id), err)
	}
	return row.toDomain(), nil
}

// GetJobByName retrieves a polling job by its unique name
func (r *PollingJobRepository) GetJobByName(ctx context.Context, name string) (*domain.PollingJob, error) {
	var row pollingJobSQL
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM polling_jobs WHERE name = ?", name); err != nil {
		return nil, dbError(fmt.Sprintf("get polling job %q", name), err)
	}
	return row.toDomain(), nil
}

// ListJobs returns all polling jobs
func (r *PollingJobRepository) ListJobs(ctx context.Context) ([]domain.PollingJob, error) {
	var rows []pollingJobSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM polling_jobs ORDER BY id"); err != nil {
		return nil, dbError("list polling jobs", err)
	}
	res := make([]domain.PollingJob, len(rows))
	for i := range rows {
		res[i] = *rows[i].toDomain()
	}
	return res, nil
}

// ListDueJobs returns active jobs with next run time at or before now, earliest first
func (r *PollingJobRepository) ListDueJobs(ctx context.Context, now time.Time) ([]domain.PollingJob, error) {
	var rows []pollingJobSQL
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM polling_jobs WHERE is_active = 1 ORDER BY next_run_time, id")
	if err != nil {
		return nil, dbError("list due polling jobs", err)
	}
	res := make([]domain.PollingJob, 0, len(rows))
	for i := range rows {
		if job := rows[i].toDomain(); job.IsDue(now) {
			res = append(res, *job)
		}
	}
	return res, nil
}

// UpdateSchedule reads the job, lets fn change its active flag, interval, next run time and
// filter, and writes them back in one transaction. The returned job is the stored state.
func (r *PollingJobRepository) UpdateSchedule(ctx context.Context, id int64, fn func(job *domain.PollingJob) error) (*domain.PollingJob, error) {
	var updated *domain.PollingJob
	err := withLockRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		var row pollingJobSQL
		if err := tx.GetContext(ctx, &row, "SELECT * FROM polling_jobs WHERE id = ?", id); err != nil {
			return err
		}
		job := row.toDomain()
		if err := fn(job); err != nil {
			return err
		}
		if err := domain.ValidateInterval(job.IntervalMinutes); err != nil {
			return err
		}
		if !job.Active {
			job.NextRunTime = nil
		}
		if job.Active && job.NextRunTime == nil {
			return fmt.Errorf("active job without next run time: %w", domain.ErrValidation)
		}
		job.UpdatedAt = now()

		_, err = tx.ExecContext(ctx, `
			UPDATE polling_jobs
			SET is_active = ?, interval_minutes = ?, next_run_time = ?, feed_filter = ?, updated_at = ?
			WHERE id = ?`,
			job.Active, job.IntervalMinutes, utc(job.NextRunTime), jsonSQL[domain.FeedFilter]{V: job.Filter},
			job.UpdatedAt, id)
		if err != nil {
			return fmt.Errorf("update schedule: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit: %w", err)
		}
		updated = job
		return nil
	})
	if err != nil {
		return nil, dbError(fmt.Sprintf("update polling job %d schedule", id), err)
	}
	return updated, nil
}

// RecordRun stores the outcome of a run: bumps counters, sets last run time and stats, and
// moves next run time to finish time plus interval for active jobs. All in one transaction.
func (r *PollingJobRepository) RecordRun(ctx context.Context, id int64, result domain.RunResult) (*domain.PollingJob, error) {
	finished := result.FinishedAt.UTC()
	if result.FinishedAt.IsZero() {
		finished = now()
	}
	succeeded, failed := 0, 1
	if result.Success {
		succeeded, failed = 1, 0
	}

	var updated *domain.PollingJob
	err := withLockRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		var row pollingJobSQL
		if err := tx.GetContext(ctx, &row, "SELECT * FROM polling_jobs WHERE id = ?", id); err != nil {
			return err
		}
		var next *time.Time
		if row.IsActive {
			n := finished.Add(time.Duration(row.IntervalMinutes) * time.Minute)
			next = &n
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE polling_jobs
			SET total_runs = total_runs + 1,
			    successful_runs = successful_runs + ?,
			    failed_runs = failed_runs + ?,
			    last_run_time = ?,
			    last_run_stats = ?,
			    next_run_time = ?,
			    updated_at = ?
			WHERE id = ?`,
			succeeded, failed, finished, jsonSQL[domain.RunStats]{V: result.Stats}, next, now(), id)
		if err != nil {
			return fmt.Errorf("update run counters: %w", err)
		}

		var stored pollingJobSQL
		if err := tx.GetContext(ctx, &stored, "SELECT * FROM polling_jobs WHERE id = ?", id); err != nil {
			return fmt.Errorf("reload job: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit: %w", err)
		}
		updated = stored.toDomain()
		return nil
	})
	if err != nil {
		return nil, dbError(fmt.Sprintf("record run of polling job %d", id), err)
	}
	return updated, nil
}

// DeleteJob removes a polling job
func (r *PollingJobRepository) DeleteJob(ctx context.Context, id int64) error {
	err := withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "DELETE FROM polling_jobs WHERE id = ?", id)
		if err != nil {
			return err
		}
		return expectAffected(res)
	})
	if err != nil {
		return dbError(fmt.Sprintf("delete polling job %d", id), err)
	}
	return nil
}

func (p *pollingJobSQL) toDomain() *domain.PollingJob {
	return &domain.PollingJob{
		ID:              p.ID,
		Name:            p.Name,
		Active:          p.IsActive,
		IntervalMinutes: p.IntervalMinutes,
		Filter:          p.FeedFilter.V,
		LastRunTime:     p.LastRunTime,
		NextRunTime:     p.NextRunTime,
		TotalRuns:       p.TotalRuns,
		SuccessfulRuns:  p.SuccessfulRuns,
		FailedRuns:      p.FailedRuns,
		LastRunStats:    p.LastRunStats.V,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
