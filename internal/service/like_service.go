package service

import (
	"context"

	"blogapp/internal/models"
	"blogapp/internal/repository"
)

type LikeService interface {
	AddLike(ctx context.Context, userID, postID string) (*models.Like, error)
	RemoveLike(ctx context.Context, userID, postID string) error
}

type likeService struct {
	likeRepo repository.LikeRepository
}

func NewLikeService(likeRepo repository.LikeRepository) LikeService {
	return &likeService{likeRepo: likeRepo}
}

// AddLike relies on the store's unique constraint to reject a second like
// by the same user.
func (l *likeService) AddLike(ctx context.Context, userID, postID string) (*models.Like, error) {
	like := &models.Like{
		UserID: userID,
		PostID: postID,
	}

	if err := l.likeRepo.Create(ctx, like); err != nil {
		return nil, err
	}

	return like, nil
}

// RemoveLike succeeds whether or not the like existed.
func (l *likeService) RemoveLike(ctx context.Context, userID, postID string) error {
	return l.likeRepo.Delete(ctx, userID, postID)
}
