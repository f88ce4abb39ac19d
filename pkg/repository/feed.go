package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/newswire/pkg/domain"
	"github.com/umputun/newswire/pkg/langdetect"
)

// FeedRepository handles feed-related database operations
type FeedRepository struct {
	db *sqlx.DB
}

// feedSQL represents a feed for SQL operations
type feedSQL struct {
	ID                  int64      `db:"id"`
	URL                 string     `db:"url"`
	Title               string     `db:"title"`
	Language            string     `db:"language"`
	Region              string     `db:"region"`
	Category            string     `db:"category"`
	FeedType            string     `db:"feed_type"`
	IsActive            bool       `db:"is_active"`
	ConsecutiveFailures int        `db:"consecutive_failures"`
	LastFetched         *time.Time `db:"last_fetched"`
	LastError           string     `db:"last_error"`
	CreatedAt           time.Time  `db:"created_at"`
}

const feedColumns = "id, url, title, language, region, category, feed_type, is_active, " +
	"consecutive_failures, last_fetched, last_error, created_at"

// NewFeedRepository creates a new feed repository
func NewFeedRepository(database *sqlx.DB) *FeedRepository {
	return &FeedRepository{db: database}
}

// CreateFeed inserts a new feed, duplicate url returns domain.ErrConflict
func (r *FeedRepository) CreateFeed(ctx context.Context, feed *domain.Feed) error {
	if strings.TrimSpace(feed.URL) == "" {
		return fmt.Errorf("create feed: url is required: %w", domain.ErrValidation)
	}
	if feed.Type == "" {
		feed.Type = "rss"
	}
	sqlFeed := &feedSQL{
		URL:       feed.URL,
		Title:     feed.Title,
		Language:  feed.Language,
		Region:    feed.Region,
		Category:  feed.Category,
		FeedType:  feed.Type,
		IsActive:  feed.Active,
		CreatedAt: now(),
	}

	query := `
		INSERT INTO feeds (url, title, language, region, category, feed_type, is_active, created_at)
		VALUES (:url, :title, :language, :region, :category, :feed_type, :is_active, :created_at)
	`
	err := withLockRetry(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, sqlFeed)
		if err != nil {
			return err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get insert id: %w", err)
		}
		sqlFeed.ID = id
		return nil
	})
	if err != nil {
		return dbError("create feed", err)
	}

	feed.ID = sqlFeed.ID
	feed.CreatedAt = sqlFeed.CreatedAt
	return nil
}

// GetFeed retrieves a feed by ID
func (r *FeedRepository) GetFeed(ctx context.Context, id int64) (*domain.Feed, error) {
	var sqlFeed feedSQL
	err := r.db.GetContext(ctx, &sqlFeed, "SELECT "+feedColumns+" FROM feeds WHERE id = ?", id)
	if err != nil {
		return nil, dbError(fmt.Sprintf("get feed %d", id), err)
	}
	return r.toDomainFeed(&sqlFeed), nil
}

// ListFeeds retrieves all feeds, optionally active only
func (r *FeedRepository) ListFeeds(ctx context.Context, activeOnly bool) ([]domain.Feed, error) {
	query := "SELECT " + feedColumns + " FROM feeds"
	if activeOnly {
		query += " WHERE is_active = 1"
	}
	query += " ORDER BY id"

	var sqlFeeds []feedSQL
	if err := r.db.SelectContext(ctx, &sqlFeeds, query); err != nil {
		return nil, dbError("list feeds", err)
	}
	return r.toDomainFeeds(sqlFeeds), nil
}

// FindFeeds returns active feeds matching the filter. Empty filter fields match everything.
// Languages are matched by the language they name, so "pt", "portuguese" and "pt-BR" all
// select a feed declared as "pt-br". Unknown tags fall back to a case-insensitive compare.
func (r *FeedRepository) FindFeeds(ctx context.Context, filter domain.FeedFilter) ([]domain.Feed, error) {
	qb := sq.Select(feedColumns).From("feeds").Where(sq.Eq{"is_active": 1}).OrderBy("id")
	if len(filter.FeedIDs) > 0 {
		qb = qb.Where(sq.Eq{"id": filter.FeedIDs})
	}
	if len(filter.Categories) > 0 {
		qb = qb.Where(sq.Eq{"category": filter.Categories})
	}
	if len(filter.Regions) > 0 {
		qb = qb.Where(sq.Eq{"region": filter.Regions})
	}
	if len(filter.Types) > 0 {
		qb = qb.Where(sq.Eq{"feed_type": filter.Types})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build feeds query: %w", err)
	}

	var sqlFeeds []feedSQL
	if err := r.db.SelectContext(ctx, &sqlFeeds, query, args...); err != nil {
		return nil, dbError("find feeds", err)
	}
	feeds := r.toDomainFeeds(sqlFeeds)
	if len(filter.Languages) == 0 {
		return feeds, nil
	}

	wanted := make(map[string]bool, len(filter.Languages))
	for _, l := range filter.Languages {
		wanted[languageKey(l)] = true
	}
	res := make([]domain.Feed, 0, len(feeds))
	for _, f := range feeds {
		if wanted[languageKey(f.Language)] {
			res = append(res, f)
		}
	}
	return res, nil
}

// languageKey reduces a language tag or name to the supported language it names
func languageKey(tag string) string {
	if lang, ok := langdetect.LanguageFromTag(tag); ok {
		return string(lang)
	}
	return strings.ToLower(strings.TrimSpace(tag))
}

// SetFeedActive activates or deactivates a feed
func (r *FeedRepository) SetFeedActive(ctx context.Context, id int64, active bool) error {
	err := withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "UPDATE feeds SET is_active = ? WHERE id = ?", active, id)
		if err != nil {
			return err
		}
		return expectAffected(res)
	})
	if err != nil {
		return dbError(fmt.Sprintf("set feed %d active=%v", id, active), err)
	}
	return nil
}

// UpdateFeedTitle sets the title of a feed when it is still empty
func (r *FeedRepository) UpdateFeedTitle(ctx context.Context, id int64, title string) error {
	err := withLockRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "UPDATE feeds SET title = ? WHERE id = ? AND title = ''", title, id)
		return err
	})
	if err != nil {
		return dbError(fmt.Sprintf("update feed %d title", id), err)
	}
	return nil
}

// DeleteFeed removes a feed with its articles and fetch log
func (r *FeedRepository) DeleteFeed(ctx context.Context, id int64) error {
	err := withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "DELETE FROM feeds WHERE id = ?", id)
		if err != nil {
			return err
		}
		return expectAffected(res)
	})
	if err != nil {
		return dbError(fmt.Sprintf("delete feed %d", id), err)
	}
	return nil
}

func (r *FeedRepository) toDomainFeeds(rows []feedSQL) []domain.Feed {
	feeds := make([]domain.Feed, len(rows))
	for i := range rows {
		feeds[i] = *r.toDomainFeed(&rows[i])
	}
	return feeds
}

func (r *FeedRepository) toDomainFeed(f *feedSQL) *domain.Feed {
	return &domain.Feed{
		ID:                  f.ID,
		URL:                 f.URL,
		Title:               f.Title,
		Language:            f.Language,
		Region:              f.Region,
		Category:            f.Category,
		Type:                f.FeedType,
		Active:              f.IsActive,
		ConsecutiveFailures: f.ConsecutiveFailures,
		LastFetched:         f.LastFetched,
		LastError:           f.LastError,
		CreatedAt:           f.CreatedAt,
	}
}
