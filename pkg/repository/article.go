package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newswire/pkg/domain"
)

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID              int64      `db:"id"`
	FeedID          int64      `db:"feed_id"`
	GUID            string     `db:"guid"`
	URL             string     `db:"url"`
	Title           string     `db:"title"`
	Description     string     `db:"description"`
	Content         string     `db:"content"`
	Author          string     `db:"author"`
	Language        string     `db:"language"`
	Confidence      float64    `db:"confidence"`
	DetectionMethod string     `db:"detection_method"`
	NeedsReview     bool       `db:"needs_review"`
	PublishedAt     *time.Time `db:"published_at"`
	ScrapedAt       time.Time  `db:"scraped_at"`
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database}
}

// ArticleExists checks if an article with the url is already stored
func (r *ArticleRepository) ArticleExists(ctx context.Context, url string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM articles WHERE url = ?)", url)
	if err != nil {
		return false, dbError("check article exists", err)
	}
	return exists, nil
}

// CreateArticle inserts a new article, duplicate url returns domain.ErrConflict
func (r *ArticleRepository) CreateArticle(ctx context.Context, article *domain.Article) error {
	if article.URL == "" {
		return fmt.Errorf("create article: url is required: %w", domain.ErrValidation)
	}
	if article.ScrapedAt.IsZero() {
		article.ScrapedAt = now()
	}
	row := &articleSQL{
		FeedID:          article.FeedID,
		GUID:            article.GUID,
		URL:             article.URL,
		Title:           article.Title,
		Description:     article.Description,
		Content:         article.Content,
		Author:          article.Author,
		Language:        string(article.Detection.Language),
		Confidence:      article.Detection.Confidence,
		DetectionMethod: string(article.Detection.Method),
		NeedsReview:     article.NeedsReview,
		PublishedAt:     utc(article.PublishedAt),
		ScrapedAt:       article.ScrapedAt.UTC(),
	}

	query := `
		INSERT INTO articles (feed_id, guid, url, title, description, content, author,
			language, confidence, detection_method, needs_review, published_at, scraped_at)
		VALUES (:feed_id, :guid, :url, :title, :description, :content, :author,
			:language, :confidence, :detection_method, :needs_review, :published_at, :scraped_at)
	`
	err := withLockRetry(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, row)
		if err != nil {
			return err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get insert id: %w", err)
		}
		row.ID = id
		return nil
	})
	if err != nil {
		return dbError("create article", err)
	}
	article.ID = row.ID
	return nil
}

// GetArticle retrieves an article by ID
func (r *ArticleRepository) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	var row articleSQL
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM articles WHERE id = ?", id); err != nil {
		return nil, dbError(fmt.Sprintf("get article %d", id), err)
	}
	return r.toDomainArticle(&row), nil
}

// ListArticles returns the most recent articles, optionally of a single feed or only those
// waiting for language review
func (r *ArticleRepository) ListArticles(ctx context.Context, feedID int64, needsReview bool, limit int) ([]domain.Article, error) {
	if limit <= 0 {
		limit = 100
	}
	query := "SELECT * FROM articles WHERE (? = 0 OR feed_id = ?) AND (? = 0 OR needs_review = 1) " +
		"ORDER BY scraped_at DESC, id DESC LIMIT ?"
	var rows []articleSQL
	if err := r.db.SelectContext(ctx, &rows, query, feedID, feedID, needsReview, limit); err != nil {
		return nil, dbError("list articles", err)
	}
	res := make([]domain.Article, len(rows))
	for i := range rows {
		res[i] = *r.toDomainArticle(&rows[i])
	}
	return res, nil
}

// ListByLanguage returns the most recent articles detected as the given language
func (r *ArticleRepository) ListByLanguage(ctx context.Context, lang domain.Language, limit int) ([]domain.Article, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []articleSQL
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM articles WHERE language = ? ORDER BY scraped_at DESC, id DESC LIMIT ?", string(lang), limit)
	if err != nil {
		return nil, dbError(fmt.Sprintf("list %s articles", lang), err)
	}
	res := make([]domain.Article, len(rows))
	for i := range rows {
		res[i] = *r.toDomainArticle(&rows[i])
	}
	return res, nil
}

// MarkReviewed clears the needs_review flag of an article
func (r *ArticleRepository) MarkReviewed(ctx context.Context, id int64) error {
	err := withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "UPDATE articles SET needs_review = 0 WHERE id = ?", id)
		if err != nil {
			return err
		}
		return expectAffected(res)
	})
	if err != nil {
		return dbError(fmt.Sprintf("mark article %d reviewed", id), err)
	}
	return nil
}

func (r *ArticleRepository) toDomainArticle(a *articleSQL) *domain.Article {
	return &domain.Article{
		ID:          a.ID,
		FeedID:      a.FeedID,
		GUID:        a.GUID,
		URL:         a.URL,
		Title:       a.Title,
		Description: a.Description,
		Content:     a.Content,
		Author:      a.Author,
		Detection: domain.Detection{
			Language:   domain.Language(a.Language),
			Confidence: a.Confidence,
			Method:     domain.DetectionMethod(a.DetectionMethod),
		},
		NeedsReview: a.NeedsReview,
		PublishedAt: a.PublishedAt,
		ScrapedAt:   a.ScrapedAt,
	}
}
