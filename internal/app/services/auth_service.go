package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/majorpath/internal/app/models"
	"github.com/yigit/majorpath/internal/app/models/dto"
	"github.com/yigit/majorpath/internal/pkg/apperrors"
	"github.com/yigit/majorpath/internal/pkg/auth"
)

// AuthService defines account operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
}

type authServiceImpl struct {
	users  UserStore
	tokens TokenIssuer
	hash   func(password string) (string, error)
	logger zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(users UserStore, tokens TokenIssuer, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		users:  users,
		tokens: tokens,
		hash:   auth.HashPassword,
		logger: logger.With().Str("service", "auth").Logger(),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account with a bcrypt-hashed password
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	hashed, err := s.hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    normalizeEmail(req.Email),
		Password: hashed,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			s.logger.Info().Str("email", user.Email).Msg("Registration with existing email")
		}
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User registered")
	return user, nil
}

// Login checks credentials and issues an access token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Info().Int64("userID", user.ID).Msg("Login with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Success:   true,
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
		UserID:    user.ID,
		Name:      user.Name,
	}, nil
}

func (s *authServiceImpl) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}
