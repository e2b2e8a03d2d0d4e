package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mskustudx/studx/internal/app/auth"
	"github.com/mskustudx/studx/internal/app/models/dto"
	"github.com/mskustudx/studx/internal/app/services"
	"github.com/mskustudx/studx/internal/middleware"
)

// UserController serves user profiles, engagement and vote status
type UserController struct {
	authorizer        *auth.AuthorizationService
	authService       *services.AuthService
	engagementService *services.EngagementService
	voteService       *services.VoteService
}

// NewUserController creates a new UserController
func NewUserController(
	authorizer *auth.AuthorizationService,
	authService *services.AuthService,
	engagementService *services.EngagementService,
	voteService *services.VoteService,
) *UserController {
	return &UserController{
		authorizer:        authorizer,
		authService:       authService,
		engagementService: engagementService,
		voteService:       voteService,
	}
}

// GetUser retrieves a user
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.authService.GetUser(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewUserResponse(user)))
}

// RecordView records a course view
// @Summary Record a course view
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.CourseViewRequest true "Course"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 403 {object} dto.ErrorResponse "Token belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "User or course not found"
// @Router /users/{id}/views [post]
func (c *UserController) RecordView(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.CourseViewRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	if err := c.authorizer.ValidateUserScope(ctx, callerFrom(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.engagementService.RecordView(ctx, id, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewUserResponse(user)))
}

// LikeCourse marks a course as liked
// @Summary Like a course
// @Description Idempotent. Clears a previous dislike.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.CourseViewRequest true "Course"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 403 {object} dto.ErrorResponse "Token belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "User or course not found"
// @Router /users/{id}/liked-courses [post]
func (c *UserController) LikeCourse(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.CourseViewRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	if err := c.authorizer.ValidateUserScope(ctx, callerFrom(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.engagementService.LikeCourse(ctx, id, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewUserResponse(user)))
}

// DislikeCourse marks a course as disliked
// @Summary Dislike a course
// @Description Idempotent. Clears a previous like.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.CourseViewRequest true "Course"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 403 {object} dto.ErrorResponse "Token belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "User or course not found"
// @Router /users/{id}/disliked-courses [post]
func (c *UserController) DislikeCourse(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.CourseViewRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	if err := c.authorizer.ValidateUserScope(ctx, callerFrom(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.engagementService.DislikeCourse(ctx, id, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewUserResponse(user)))
}

// GetRecentlyViewed lists a user's recent course views
// @Summary Recently viewed courses
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=[]models.RecentView}
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id}/recently-viewed [get]
func (c *UserController) GetRecentlyViewed(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	recent, err := c.engagementService.RecentlyViewed(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(recent))
}

// GetMostViewed lists a user's courses by view count
// @Summary Most viewed courses
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=[]models.CourseViewCount}
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id}/most-viewed [get]
func (c *UserController) GetMostViewed(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	most, err := c.engagementService.MostViewed(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(most))
}

// GetVoteStatus maps every material to the user's flags
// @Summary Material vote status for a user
// @Description Unknown users get all-false flags.
// @Tags users, materials
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=map[string]dto.VoteFlags}
// @Router /users/{id}/vote-status [get]
func (c *UserController) GetVoteStatus(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	status := c.voteService.VoteStatus(ctx, id)
	out := make(map[string]dto.VoteFlags, len(status))
	for materialID, s := range status {
		out[strconv.FormatInt(materialID, 10)] = dto.VoteFlags{
			HasLiked:    s.HasLiked,
			HasDisliked: s.HasDisliked,
		}
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(out))
}

// callerFrom describes the requester as resolved by OptionalAuth
func callerFrom(ctx *gin.Context) auth.Caller {
	id, ok := middleware.CurrentUserID(ctx)
	return auth.Caller{UserID: id, Authenticated: ok}
}
