package dto

import "github.com/mskustudx/studx/internal/app/models"

// MaterialListQuery holds the optional material filters. q is the short
// form of search.
type MaterialListQuery struct {
	CourseID *int64 `form:"courseId" binding:"omitempty,gt=0"`
	Type     string `form:"type"`
	Search   string `form:"search"`
	Q        string `form:"q"`
}

// SearchTerm returns the effective search term
func (q MaterialListQuery) SearchTerm() string {
	if q.Search != "" {
		return q.Search
	}
	return q.Q
}

// VoteRequest is the body of a material vote. UserID may be omitted when a
// bearer token identifies the caller. Direction is checked by the vote
// service after the caller's identity.
type VoteRequest struct {
	Direction string `json:"direction"`
	UserID    *int64 `json:"userId" binding:"omitempty,gt=0"`
}

// MaterialResponse is a material with its derived counters and, when a
// caller is known, the caller's own flags
type MaterialResponse struct {
	ID          int64  `json:"id" example:"1"`
	CourseID    int64  `json:"courseId" example:"1"`
	Type        string `json:"type" example:"LINK" enums:"LINK,LECTURE,SLIDES,EXAM"`
	Title       string `json:"title" example:"A Tour of Go"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	Upvotes     int    `json:"upvotes" example:"26"`
	Downvotes   int    `json:"downvotes" example:"2"`
	HasLiked    bool   `json:"hasLiked"`
	HasDisliked bool   `json:"hasDisliked"`
}

// VoteFlags is one entry of a vote status mapping
type VoteFlags struct {
	HasLiked    bool `json:"hasLiked"`
	HasDisliked bool `json:"hasDisliked"`
}

// NewMaterialResponse renders m as seen by userID (0 for anonymous)
func NewMaterialResponse(m *models.Material, userID int64) MaterialResponse {
	state := m.VoteStateOf(userID)
	return MaterialResponse{
		ID:          m.ID,
		CourseID:    m.CourseID,
		Type:        string(m.Type),
		Title:       m.Title,
		Description: m.Description,
		URL:         m.URL,
		Upvotes:     m.Upvotes(),
		Downvotes:   m.Downvotes(),
		HasLiked:    state == models.VoteStateLiked,
		HasDisliked: state == models.VoteStateDisliked,
	}
}

// NewMaterialListResponse renders a material list for an anonymous caller
func NewMaterialListResponse(materials []*models.Material) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, NewMaterialResponse(m, 0))
	}
	return out
}
