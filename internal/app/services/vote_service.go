package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mskustudx/studx/internal/app/models"
	"github.com/mskustudx/studx/internal/app/repositories"
	"github.com/mskustudx/studx/internal/pkg/apperrors"
	"github.com/mskustudx/studx/internal/pkg/livefeed"
	"github.com/mskustudx/studx/internal/pkg/metrics"
)

// VoteStatus is a user's flags on one material
type VoteStatus struct {
	HasLiked    bool
	HasDisliked bool
}

// VoteService runs the per-user material vote state machine
type VoteService struct {
	materialRepo *repositories.MaterialRepository
	userRepo     repositories.IUserRepository
	feed         VotePublisher
	logger       zerolog.Logger
}

// NewVoteService creates a new vote service instance. feed may be nil.
func NewVoteService(
	materialRepo *repositories.MaterialRepository,
	userRepo repositories.IUserRepository,
	feed VotePublisher,
	logger zerolog.Logger,
) *VoteService {
	return &VoteService{
		materialRepo: materialRepo,
		userRepo:     userRepo,
		feed:         feed,
		logger:       logger,
	}
}

// Vote applies one UP or DOWN vote by userID to a material and returns the
// updated material. A nil userID is Unauthenticated and changes nothing.
// Voting the same direction twice toggles the vote off; voting the other
// direction switches it.
func (s *VoteService) Vote(ctx context.Context, materialID int64, userID *int64, direction string) (*models.Material, error) {
	if userID == nil || *userID <= 0 {
		return nil, apperrors.ErrMissingUserID
	}

	dir, ok := models.ParseVoteDirection(direction)
	if !ok {
		return nil, apperrors.ErrInvalidVoteDirection.WithDetails(map[string]interface{}{
			"direction": direction,
		})
	}

	var from, to models.VoteState
	material, err := s.materialRepo.Update(ctx, materialID, func(m *models.Material) error {
		from, to = m.ApplyVote(*userID, dir)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordVote(string(dir), string(from), string(to))
	s.logger.Debug().
		Int64("materialID", materialID).
		Int64("userID", *userID).
		Str("direction", string(dir)).
		Str("from", string(from)).
		Str("to", string(to)).
		Msg("Vote applied")

	s.userRepo.Persist(ctx)

	if s.feed != nil {
		s.feed.Publish(livefeed.Event{
			Type:       livefeed.EventTypeVote,
			CourseID:   material.CourseID,
			MaterialID: material.ID,
			Upvotes:    material.Upvotes(),
			Downvotes:  material.Downvotes(),
		})
	}

	return material, nil
}

// VoteStatus maps every material id to userID's flags. Unknown users get
// all-false flags.
func (s *VoteService) VoteStatus(ctx context.Context, userID int64) map[int64]VoteStatus {
	materials := s.materialRepo.All(ctx)
	status := make(map[int64]VoteStatus, len(materials))
	for _, m := range materials {
		state := m.VoteStateOf(userID)
		status[m.ID] = VoteStatus{
			HasLiked:    state == models.VoteStateLiked,
			HasDisliked: state == models.VoteStateDisliked,
		}
	}
	return status
}
