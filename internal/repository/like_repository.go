package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"blogapp/internal/apperror"
	"blogapp/internal/models"
)

type LikeRepositoryImpl struct {
	DB *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) *LikeRepositoryImpl {
	return &LikeRepositoryImpl{DB: db}
}

// Create inserts the like. The (user_id, post_id) unique constraint is the
// only duplicate guard: a conflicting insert affects no rows.
func (r *LikeRepositoryImpl) Create(ctx context.Context, like *models.Like) error {
	query := `
		INSERT INTO likes (id, user_id, post_id, created_at)
		VALUES (:id, :user_id, :post_id, :created_at)
		ON CONFLICT (user_id, post_id) DO NOTHING
	`

	if like.ID == "" {
		like.ID = uuid.New().String()
	}

	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now().UTC()
	}

	result, err := r.DB.NamedExecContext(ctx, query, like)
	if err != nil {
		if isForeignKeyViolation(err) {
			// the session outlived its user
			if violatedConstraint(err) == likesUserFK {
				return apperror.Unauthorized(apperror.MsgAuthRequired)
			}
			return apperror.NotFound(apperror.MsgPostNotFound)
		}
		if isUniqueViolation(err) {
			return apperror.Validation(apperror.MsgAlreadyLiked)
		}
		return fmt.Errorf("failed to create like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check inserted rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperror.Validation(apperror.MsgAlreadyLiked)
	}

	return nil
}

func (r *LikeRepositoryImpl) Delete(ctx context.Context, userID, postID string) error {
	query := `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`

	_, err := r.DB.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	return nil
}

func (r *LikeRepositoryImpl) GetByPostIDs(ctx context.Context, postIDs []string) ([]models.Like, error) {
	if len(postIDs) == 0 {
		return []models.Like{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, user_id, post_id, created_at FROM likes
		WHERE post_id IN (?)
		ORDER BY created_at`, postIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build likes query: %w", err)
	}

	var likes []models.Like
	err = r.DB.SelectContext(ctx, &likes, r.DB.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get likes: %w", err)
	}

	return likes, nil
}

type likeRow struct {
	models.Like
	UserName *string `db:"user_name"`
}

func (r *LikeRepositoryImpl) GetByPostIDWithUsers(ctx context.Context, postID string) ([]models.Like, error) {
	query := `
		SELECT l.id, l.user_id, l.post_id, l.created_at, u.name AS user_name
		FROM likes l
		JOIN users u ON u.id = l.user_id
		WHERE l.post_id = $1
		ORDER BY l.created_at`

	var rows []likeRow
	err := r.DB.SelectContext(ctx, &rows, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post likes: %w", err)
	}

	likes := make([]models.Like, 0, len(rows))
	for _, row := range rows {
		like := row.Like
		like.User = &models.UserSummary{ID: like.UserID, Name: row.UserName}
		likes = append(likes, like)
	}

	return likes, nil
}

func (r *LikeRepositoryImpl) deleteByPostID(ctx context.Context, exec sqlx.ExecerContext, postID string) error {
	_, err := exec.ExecContext(ctx, `DELETE FROM likes WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post likes: %w", err)
	}

	return nil
}
