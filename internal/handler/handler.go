package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"blogapp/internal/config"
	"blogapp/internal/service"
)

// HealthChecker is satisfied by *database.DB.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Handlers struct {
	UserService service.UserService
	AuthService service.AuthService
	PostService service.PostService
	LikeService service.LikeService
	DB          HealthChecker
	Cfg         *config.Config
	Validate    *validator.Validate
	Log         *zap.Logger
}

func NewHandlers(service *service.Service, db HealthChecker, config *config.Config, log *zap.Logger) *Handlers {
	return &Handlers{
		UserService: service.User,
		AuthService: service.Auth,
		PostService: service.Post,
		LikeService: service.Like,
		DB:          db,
		Cfg:         config,
		Validate:    NewValidator(),
		Log:         log,
	}
}

func (h *Handlers) logger() *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}
	return h.Log
}
