package auth

import (
	"context"

	"github.com/mskustudx/studx/internal/app/repositories"
	"github.com/mskustudx/studx/internal/pkg/apperrors"
	"github.com/mskustudx/studx/internal/pkg/logger"
)

// ErrNotAccountOwner is returned when an authenticated caller acts on
// another user's account
var ErrNotAccountOwner = apperrors.NewCustomError(apperrors.ErrForbidden, "you can only act on your own account")

// Caller identifies who is making a request. Anonymous callers carry no id.
type Caller struct {
	UserID        int64
	Authenticated bool
}

// AuthorizationService handles authorization operations
type AuthorizationService struct {
	userRepo *repositories.UserRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo *repositories.UserRepository) *AuthorizationService {
	return &AuthorizationService{userRepo: userRepo}
}

// CanActAs reports whether caller may change data owned by userID.
// Anonymous callers are trusted with the id they name.
func (s *AuthorizationService) CanActAs(caller Caller, userID int64) bool {
	return !caller.Authenticated || caller.UserID == userID
}

// ValidateUserScope checks that the target user exists and that the caller
// may act on it
func (s *AuthorizationService) ValidateUserScope(ctx context.Context, caller Caller, userID int64) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	if !s.CanActAs(caller, userID) {
		logger.Warn().
			Int64("callerID", caller.UserID).
			Int64("userID", userID).
			Msg("Rejected request on another user's account")
		return ErrNotAccountOwner
	}
	return nil
}

// ValidateVoter checks the identity a vote is cast for. Voters need not be
// registered users, so only ownership is checked.
func (s *AuthorizationService) ValidateVoter(caller Caller, voterID int64) error {
	if !s.CanActAs(caller, voterID) {
		logger.Warn().
			Int64("callerID", caller.UserID).
			Int64("voterID", voterID).
			Msg("Rejected vote cast for another user")
		return ErrNotAccountOwner
	}
	return nil
}
