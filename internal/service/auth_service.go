package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"

	"blogapp/internal/apperror"
	"blogapp/internal/config"
	"blogapp/internal/models"
	"blogapp/internal/repository"
)

// Claims is the session token payload. UserID is the sole source of
// identity for authenticated requests.
type Claims struct {
	UserID string  `json:"id"`
	Email  string  `json:"email"`
	Name   *string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.Principal, string, error)
	Authenticate(ctx context.Context, email, password string) (*models.Principal, error)
	IssueToken(principal *models.Principal) (string, error)
	ValidateToken(tokenString string) (*models.Principal, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	existingUser, err := s.userRepo.GetUserByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, apperror.Validation(apperror.MsgEmailTaken)
	}
	if err != nil && !apperror.Is(err, apperror.KindNotFound) {
		return nil, err
	}

	name := input.Name
	user := &models.User{
		Email: input.Email,
		Name:  &name,
	}

	// a concurrent registration surfaces here as a unique violation
	if err := s.userRepo.CreateUser(ctx, user, input.Password); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate returns the principal for valid credentials. Every failure
// is the same Unauthorized error.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*models.Principal, error) {
	if email == "" || password == "" {
		return nil, apperror.Unauthorized(apperror.MsgInvalidCredentials)
	}

	if !strings.Contains(email, "@") || utf8.RuneCountInString(password) < 6 {
		return nil, apperror.Unauthorized(apperror.MsgInvalidCredentials)
	}

	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return &models.Principal{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.Principal, string, error) {
	principal, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.IssueToken(principal)
	if err != nil {
		return nil, "", err
	}

	return principal, token, nil
}

func (s *authService) IssueToken(principal *models.Principal) (string, error) {
	now := s.now()

	claims := Claims{
		UserID: principal.ID,
		Email:  principal.Email,
		Name:   principal.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Session.Duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", apperror.Internal(apperror.MsgInternal, fmt.Errorf("failed to sign session token: %w", err))
	}

	return tokenString, nil
}

func (s *authService) ValidateToken(tokenString string) (*models.Principal, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.Unauthorized(apperror.MsgAuthRequired)
		}
		return nil, &apperror.Error{Kind: apperror.KindUnauthorized, Message: apperror.MsgAuthRequired, Err: err}
	}

	if !token.Valid || claims.UserID == "" {
		return nil, apperror.Unauthorized(apperror.MsgAuthRequired)
	}

	return &models.Principal{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}
