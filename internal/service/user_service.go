package service

import (
	"context"

	"blogapp/internal/models"
	"blogapp/internal/repository"
)

type UserService interface {
	GetCurrentUser(ctx context.Context, userID string) (*models.Principal, error)
	GetUserSummary(ctx context.Context, userID string) (*models.UserSummary, error)
	GetStats(ctx context.Context, userID string) (*models.UserStats, error)
}

type userService struct {
	userRepo  repository.UserRepository
	statsRepo repository.StatsRepository
}

func NewUserService(userRepo repository.UserRepository, statsRepo repository.StatsRepository) UserService {
	return &userService{
		userRepo:  userRepo,
		statsRepo: statsRepo,
	}
}

func (s *userService) GetCurrentUser(ctx context.Context, userID string) (*models.Principal, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.Principal{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}, nil
}

func (s *userService) GetUserSummary(ctx context.Context, userID string) (*models.UserSummary, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.UserSummary{ID: user.ID, Name: user.Name}, nil
}

func (s *userService) GetStats(ctx context.Context, userID string) (*models.UserStats, error) {
	return s.statsRepo.UserStats(ctx, userID)
}
