package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"blogapp/internal/apperror"
	"blogapp/internal/models"
)

type PostRepositoryImpl struct {
	DB *sqlx.DB
}

// postRow is a post joined with its author.
type postRow struct {
	models.Post
	AuthorName  *string `db:"author_name"`
	AuthorEmail string  `db:"author_email"`
}

func (r postRow) toPost() models.Post {
	post := r.Post
	post.Author = &models.AuthorSummary{
		ID:    post.AuthorID,
		Name:  r.AuthorName,
		Email: r.AuthorEmail,
	}
	post.Likes = []models.Like{}
	return post
}

const postColumns = `
	p.id, p.title, p.content, p.author_id, p.created_at, p.updated_at,
	u.name AS author_name, u.email AS author_email`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (id, title, content, author_id, created_at, updated_at)
		VALUES (:id, :title, :content, :author_id, :created_at, :updated_at)
	`

	if post.ID == "" {
		post.ID = uuid.New().String()
	}

	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.DB.NamedExecContext(ctx, query, post)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperror.Unauthorized(apperror.MsgAuthRequired)
		}
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1`

	var row postRow
	err := r.DB.GetContext(ctx, &row, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(apperror.MsgPostNotFound)
		}
		return nil, fmt.Errorf("failed to get post %s: %w", postID, err)
	}

	post := row.toPost()
	return &post, nil
}

func (r *PostRepositoryImpl) GetAuthorID(ctx context.Context, postID string) (string, error) {
	var authorID string
	err := r.DB.GetContext(ctx, &authorID, `SELECT author_id FROM posts WHERE id = $1`, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperror.NotFound(apperror.MsgPostNotFound)
		}
		return "", fmt.Errorf("failed to get post author: %w", err)
	}

	return authorID, nil
}

func buildPostFilter(params models.PostListParams) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if params.Search != "" {
		args = append(args, "%"+likeEscaper.Replace(params.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(p.title ILIKE $%d OR p.content ILIKE $%d)", n, n))
	}

	if params.AuthorID != "" {
		args = append(args, params.AuthorID)
		conds = append(conds, fmt.Sprintf("p.author_id = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns one page of posts, newest first, and the total number of
// posts matching the filter.
func (r *PostRepositoryImpl) List(ctx context.Context, params models.PostListParams) ([]models.Post, int, error) {
	where, args := buildPostFilter(params)

	var total int
	err := r.DB.GetContext(ctx, &total, `SELECT COUNT(*) FROM posts p`+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	n := len(args)
	query := `SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id` + where +
		fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", n+1, n+2)

	var rows []postRow
	err = r.DB.SelectContext(ctx, &rows, query, append(args, params.Limit, params.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := make([]models.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.toPost())
	}

	return posts, total, nil
}

// Update rewrites title and content. The author_id predicate keeps the
// owner immutable.
func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			title = :title,
			content = :content,
			updated_at = :updated_at
		WHERE id = :id AND author_id = :author_id
	`

	post.UpdatedAt = time.Now().UTC()

	result, err := r.DB.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperror.NotFound(apperror.MsgPostNotFound)
	}

	return nil
}

// Delete removes the post and its likes in one transaction.
func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	likeRepositoryImpl := LikeRepositoryImpl{DB: r.DB}
	if err := likeRepositoryImpl.deleteByPostID(ctx, tx, postID); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperror.NotFound(apperror.MsgPostNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit post deletion: %w", err)
	}

	return nil
}
