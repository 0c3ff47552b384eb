package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"blogapp/internal/models"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

// UserStats counts the user's posts and the likes those posts received.
func (r *statsRepository) UserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	var stats models.UserStats

	err := r.db.GetContext(ctx, &stats, `
		SELECT
			(SELECT COUNT(*) FROM posts WHERE author_id = $1) AS total_posts,
			(SELECT COUNT(*) FROM likes l JOIN posts p ON p.id = l.post_id WHERE p.author_id = $1) AS total_likes
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count user stats: %w", err)
	}

	return &stats, nil
}
