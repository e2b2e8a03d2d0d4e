package dto

import (
	"time"

	"github.com/mskustudx/studx/internal/app/models"
)

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name       string `json:"name" binding:"required,personname"`
	Email      string `json:"email" binding:"required,studentemail"`
	Credential string `json:"credential" binding:"required,min=4"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Credential string `json:"credential" binding:"required"`
}

// CourseViewRequest identifies the course for a view or preference call
type CourseViewRequest struct {
	CourseID int64 `json:"courseId" binding:"required,gt=0"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"3600"`
}

// UserResponse is a user as returned to clients. The credential is never included.
type UserResponse struct {
	ID              int64                    `json:"id" example:"1"`
	Name            string                   `json:"name" example:"Demo Student"`
	Email           string                   `json:"email" example:"demo@studx.edu.tr"`
	RecentlyViewed  []models.RecentView      `json:"recentlyViewed"`
	MostViewed      []models.CourseViewCount `json:"mostViewed"`
	CoursesLiked    []int64                  `json:"coursesLiked"`
	CoursesDisliked []int64                  `json:"coursesDisliked"`
	CreatedAt       time.Time                `json:"createdAt"`
}

// AuthResponse is returned by login and register. Token is present only when
// token issuing is enabled.
type AuthResponse struct {
	User  UserResponse   `json:"user"`
	Token *TokenResponse `json:"token,omitempty"`
}

// NewUserResponse renders u without its credential
func NewUserResponse(u *models.User) UserResponse {
	recent := u.RecentlyViewed
	if recent == nil {
		recent = []models.RecentView{}
	}
	most := u.MostViewed
	if most == nil {
		most = []models.CourseViewCount{}
	}
	return UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		RecentlyViewed:  recent,
		MostViewed:      most,
		CoursesLiked:    u.CoursesLiked.Sorted(),
		CoursesDisliked: u.CoursesDisliked.Sorted(),
		CreatedAt:       u.CreatedAt,
	}
}
