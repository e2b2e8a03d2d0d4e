package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mskustudx/studx/internal/app/models"
	"github.com/mskustudx/studx/internal/app/repositories"
	"github.com/mskustudx/studx/internal/pkg/apperrors"
	"github.com/mskustudx/studx/internal/pkg/metrics"
)

// Course preferences
const (
	PreferenceLike    = "like"
	PreferenceDislike = "dislike"
)

// EngagementService tracks course views and course-level preferences per user
type EngagementService struct {
	userRepo    repositories.IUserRepository
	catalogRepo *repositories.CatalogRepository
	now         func() time.Time
	logger      zerolog.Logger
}

// NewEngagementService creates a new engagement service instance
func NewEngagementService(
	userRepo repositories.IUserRepository,
	catalogRepo *repositories.CatalogRepository,
	now func() time.Time,
	logger zerolog.Logger,
) *EngagementService {
	if now == nil {
		now = time.Now
	}
	return &EngagementService{
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		now:         now,
		logger:      logger,
	}
}

// RecordView records that userID opened courseID and returns the updated user
func (s *EngagementService) RecordView(ctx context.Context, userID, courseID int64) (*models.User, error) {
	user, err := s.userRepo.Update(ctx, userID, func(u *models.User) error {
		if !s.catalogRepo.CourseExists(courseID) {
			return apperrors.ErrCourseNotFound
		}
		u.RecordView(courseID, s.now().UTC())
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordCourseView()
	s.logger.Debug().Int64("userID", userID).Int64("courseID", courseID).Msg("Course view recorded")
	return user, nil
}

// LikeCourse marks courseID as liked by userID. Repeating it changes nothing.
func (s *EngagementService) LikeCourse(ctx context.Context, userID, courseID int64) (*models.User, error) {
	return s.setPreference(ctx, userID, courseID, PreferenceLike)
}

// DislikeCourse marks courseID as disliked by userID. Repeating it changes nothing.
func (s *EngagementService) DislikeCourse(ctx context.Context, userID, courseID int64) (*models.User, error) {
	return s.setPreference(ctx, userID, courseID, PreferenceDislike)
}

func (s *EngagementService) setPreference(ctx context.Context, userID, courseID int64, preference string) (*models.User, error) {
	user, err := s.userRepo.Update(ctx, userID, func(u *models.User) error {
		if !s.catalogRepo.CourseExists(courseID) {
			return apperrors.ErrCourseNotFound
		}
		if preference == PreferenceLike {
			u.LikeCourse(courseID)
		} else {
			u.DislikeCourse(courseID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordCoursePreference(preference)
	return user, nil
}

// RecentlyViewed returns userID's most-recent-first view list
func (s *EngagementService) RecentlyViewed(ctx context.Context, userID int64) ([]models.RecentView, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.RecentlyViewed, nil
}

// MostViewed returns userID's courses ranked by view count
func (s *EngagementService) MostViewed(ctx context.Context, userID int64) ([]models.CourseViewCount, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.MostViewed, nil
}
