package service

import (
	"blogapp/internal/config"
	"blogapp/internal/repository"
)

type Service struct {
	User UserService
	Post PostService
	Like LikeService
	Auth AuthService
}

func NewService(rep *repository.Repository, cfg *config.Config) *Service {
	return &Service{
		User: NewUserService(rep.User, rep.Stats),
		Post: NewPostService(rep.Post, rep.Like),
		Like: NewLikeService(rep.Like),
		Auth: NewAuthService(rep.User, cfg),
	}
}
