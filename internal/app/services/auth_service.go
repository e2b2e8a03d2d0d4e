package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mskustudx/studx/internal/app/models"
	"github.com/mskustudx/studx/internal/app/models/dto"
	"github.com/mskustudx/studx/internal/app/repositories"
	"github.com/mskustudx/studx/internal/pkg/apperrors"
	"github.com/mskustudx/studx/internal/pkg/auth"
	"github.com/mskustudx/studx/internal/pkg/metrics"
)

// AuthService handles registration, login and user lookup
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	now        func() time.Time
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService. jwtService may be nil, in which
// case no tokens are issued.
func NewAuthService(
	userRepo repositories.IUserRepository,
	jwtService *auth.JWTService,
	now func() time.Time,
	logger zerolog.Logger,
) *AuthService {
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		now:        now,
		logger:     logger,
	}
}

// Register creates a user. A taken email is a Conflict.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}

	hash, err := auth.HashPassword(req.Credential)
	if err != nil {
		return nil, fmt.Errorf("failed to hash credential: %w", err)
	}

	user, err := s.userRepo.Create(ctx, &models.User{
		Name:       name,
		Email:      email,
		Credential: hash,
		CreatedAt:  s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordRegistration()
	s.logger.Info().Int64("userID", user.ID).Msg("User registered")
	return s.authResponse(user)
}

// Login verifies credentials. Unknown emails and wrong credentials are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Credential, req.Credential) {
		s.logger.Debug().Int64("userID", user.ID).Msg("Login rejected")
		return nil, apperrors.ErrInvalidCredentials
	}

	if auth.NeedsRehash(user.Credential) {
		user, err = s.upgradeCredential(ctx, user.ID, req.Credential)
		if err != nil {
			return nil, err
		}
	}

	return s.authResponse(user)
}

// GetUser retrieves a user by ID
func (s *AuthService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// upgradeCredential replaces a legacy plaintext credential with its hash
func (s *AuthService) upgradeCredential(ctx context.Context, userID int64, credential string) (*models.User, error) {
	hash, err := auth.HashPassword(credential)
	if err != nil {
		return nil, fmt.Errorf("failed to hash credential: %w", err)
	}

	user, err := s.userRepo.Update(ctx, userID, func(u *models.User) error {
		u.Credential = hash
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", userID).Msg("Upgraded legacy plaintext credential")
	return user, nil
}

func (s *AuthService) authResponse(user *models.User) (*dto.AuthResponse, error) {
	resp := &dto.AuthResponse{User: dto.NewUserResponse(user)}
	if s.jwtService == nil {
		return resp, nil
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}
	resp.Token = &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}
	return resp, nil
}
