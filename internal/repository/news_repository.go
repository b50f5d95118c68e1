package repository

import (
	"database/sql"

	"github.com/code-forcer/reitsbackend/internal/model"

	"github.com/lib/pq"
)

type NewsRepository struct {
	db *sql.DB
}

func NewNewsRepository(db *sql.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) Save(news *model.News) error {
	return r.db.QueryRow(`
		INSERT INTO news(title, summary, source, category, impact, published_at, read_time, related_tickers, url, is_active)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, news.Title, news.Summary, news.Source, news.Category, news.Impact,
		news.PublishedAt, news.ReadTime, pq.Array(news.RelatedTickers),
		news.URL, news.IsActive).Scan(&news.ID)
}

func (r *NewsRepository) GetActive(limit int) ([]model.News, error) {
	rows, err := r.db.Query(`
		SELECT id, title, summary, source, category, impact, published_at, read_time, related_tickers, url, is_active
		FROM news
		WHERE is_active
		ORDER BY published_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.News
	for rows.Next() {
		var n model.News
		err := rows.Scan(&n.ID, &n.Title, &n.Summary, &n.Source, &n.Category, &n.Impact,
			&n.PublishedAt, &n.ReadTime, pq.Array(&n.RelatedTickers), &n.URL, &n.IsActive)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
