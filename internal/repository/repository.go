package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"blogapp/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetAuthorID(ctx context.Context, postID string) (string, error)
	List(ctx context.Context, params models.PostListParams) ([]models.Post, int, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID string) error
}

type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) error
	Delete(ctx context.Context, userID, postID string) error
	GetByPostIDs(ctx context.Context, postIDs []string) ([]models.Like, error)
	GetByPostIDWithUsers(ctx context.Context, postID string) ([]models.Like, error)
}

type StatsRepository interface {
	UserStats(ctx context.Context, userID string) (*models.UserStats, error)
}

type Repository struct {
	User  UserRepository
	Post  PostRepository
	Like  LikeRepository
	Stats StatsRepository
}

func NewRepository(db *sqlx.DB, bcryptCost int) *Repository {
	return &Repository{
		User:  NewUserRepository(db, bcryptCost),
		Post:  NewPostRepository(db),
		Like:  NewLikeRepository(db),
		Stats: NewStatsRepository(db),
	}
}
