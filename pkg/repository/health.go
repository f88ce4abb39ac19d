package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newswire/pkg/domain"
)

// HealthRepository stores the fetch log and aggregates it for feed health snapshots
type HealthRepository struct {
	db *sqlx.DB
}

// fetchStatsSQL is an aggregated row of the fetch log
type fetchStatsSQL struct {
	FeedID              int64   `db:"feed_id"`
	TotalFetches        int     `db:"total_fetches"`
	SuccessfulFetches   int     `db:"successful_fetches"`
	ConsecutiveFailures int     `db:"consecutive_failures"`
	AvgResponseTimeMs   float64 `db:"avg_response_time_ms"`
	AvgArticles         float64 `db:"avg_articles"`
}

// NewHealthRepository creates a new health repository
func NewHealthRepository(database *sqlx.DB) *HealthRepository {
	return &HealthRepository{db: database}
}

// RecordFetch appends a fetch record and updates the feed's consecutive failure counter in one transaction
func (r *HealthRepository) RecordFetch(ctx context.Context, rec domain.FetchRecord) error {
	fetchedAt := rec.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = now()
	}

	err := withLockRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		res, err := tx.ExecContext(ctx, `
			UPDATE feeds
			SET consecutive_failures = CASE WHEN ? THEN 0 ELSE consecutive_failures + 1 END,
			    last_fetched = ?,
			    last_error = ?
			WHERE id = ?`,
			rec.Success, fetchedAt.UTC(), rec.Error, rec.FeedID)
		if err != nil {
			return fmt.Errorf("update feed: %w", err)
		}
		if err := expectAffected(res); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO feed_fetches (feed_id, success, response_time_ms, articles_found, error, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			rec.FeedID, rec.Success, rec.ResponseTime.Milliseconds(), rec.ArticlesFound, rec.Error, fetchedAt.UnixMilli())
		if err != nil {
			return fmt.Errorf("insert fetch record: %w", err)
		}
		return tx.Commit()
	})
	if err != nil {
		return dbError(fmt.Sprintf("record fetch for feed %d", rec.FeedID), err)
	}
	return nil
}

const fetchStatsQuery = `
	SELECT f.id AS feed_id,
	       COUNT(ff.id) AS total_fetches,
	       COALESCE(SUM(ff.success), 0) AS successful_fetches,
	       f.consecutive_failures AS consecutive_failures,
	       COALESCE(AVG(ff.response_time_ms), 0) AS avg_response_time_ms,
	       COALESCE(AVG(CASE WHEN ff.success = 1 THEN ff.articles_found END), 0) AS avg_articles
	FROM feeds f
	LEFT JOIN feed_fetches ff ON ff.feed_id = f.id AND ff.fetched_at >= ?
`

// FetchStats aggregates the fetch log of a single feed since the given time
func (r *HealthRepository) FetchStats(ctx context.Context, feedID int64, since time.Time) (domain.FetchStats, error) {
	var row fetchStatsSQL
	query := fetchStatsQuery + " WHERE f.id = ? GROUP BY f.id"
	if err := r.db.GetContext(ctx, &row, query, since.UnixMilli(), feedID); err != nil {
		return domain.FetchStats{}, dbError(fmt.Sprintf("get fetch stats for feed %d", feedID), err)
	}
	return domain.FetchStats(row), nil
}

// ListFetchStats aggregates the fetch log of every feed since the given time
func (r *HealthRepository) ListFetchStats(ctx context.Context, since time.Time) ([]domain.FetchStats, error) {
	var rows []fetchStatsSQL
	query := fetchStatsQuery + " GROUP BY f.id ORDER BY f.id"
	if err := r.db.SelectContext(ctx, &rows, query, since.UnixMilli()); err != nil {
		return nil, dbError("list fetch stats", err)
	}
	res := make([]domain.FetchStats, len(rows))
	for i, row := range rows {
		res[i] = domain.FetchStats(row)
	}
	return res, nil
}

// PruneFetches deletes fetch records older than the given time
func (r *HealthRepository) PruneFetches(ctx context.Context, before time.Time) (int64, error) {
	var n int64
	err := withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "DELETE FROM feed_fetches WHERE fetched_at < ?", before.UnixMilli())
		if err != nil {
			return err
		}
		n, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, dbError("prune fetch log", err)
	}
	return n, nil
}
