package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mskustudx/studx/internal/app/auth"
	"github.com/mskustudx/studx/internal/app/models/dto"
	"github.com/mskustudx/studx/internal/app/repositories"
	"github.com/mskustudx/studx/internal/app/services"
	"github.com/mskustudx/studx/internal/middleware"
)

// MaterialController serves materials and material votes
type MaterialController struct {
	authorizer      *auth.AuthorizationService
	materialService *services.MaterialService
	voteService     *services.VoteService
}

// NewMaterialController creates a new MaterialController
func NewMaterialController(authorizer *auth.AuthorizationService, materialService *services.MaterialService, voteService *services.VoteService) *MaterialController {
	return &MaterialController{
		authorizer:      authorizer,
		materialService: materialService,
		voteService:     voteService,
	}
}

// GetAllMaterials lists materials
// @Summary List materials
// @Description Filters combine with AND. Results are sorted by upvotes, highest first. An unknown type yields an empty list.
// @Tags materials
// @Produce json
// @Param courseId query int false "Course ID"
// @Param type query string false "Material type" Enums(LINK, LECTURE, SLIDES, EXAM)
// @Param search query string false "Case-insensitive match on title or description"
// @Param q query string false "Alias of search"
// @Success 200 {object} dto.APIResponse{data=[]dto.MaterialResponse}
// @Router /materials [get]
func (c *MaterialController) GetAllMaterials(ctx *gin.Context) {
	var query dto.MaterialListQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	materials := c.materialService.ListMaterials(ctx, repositories.MaterialFilter{
		CourseID:   query.CourseID,
		Type:       query.Type,
		SearchTerm: query.SearchTerm(),
	})
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewMaterialListResponse(materials)))
}

// GetCourseMaterials lists the materials of one course
// @Summary List course materials
// @Tags courses, materials
// @Produce json
// @Param id path int true "Course ID"
// @Param type query string false "Material type"
// @Param search query string false "Search term"
// @Success 200 {object} dto.APIResponse{data=[]dto.MaterialResponse}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/materials [get]
func (c *MaterialController) GetCourseMaterials(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var query dto.MaterialListQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	materials, err := c.materialService.ListCourseMaterials(ctx, id, repositories.MaterialFilter{
		Type:       query.Type,
		SearchTerm: query.SearchTerm(),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewMaterialListResponse(materials)))
}

// GetMaterialByID retrieves a material
// @Summary Get material by ID
// @Tags materials
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} dto.APIResponse{data=dto.MaterialResponse}
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Router /materials/{id} [get]
func (c *MaterialController) GetMaterialByID(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	material, err := c.materialService.GetMaterial(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	viewer, _ := middleware.CurrentUserID(ctx)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewMaterialResponse(material, viewer)))
}

// Vote applies an UP or DOWN vote
// @Summary Vote on a material
// @Description Voting the current direction again removes the vote; voting the other direction switches it.
// @Tags materials
// @Accept json
// @Produce json
// @Param id path int true "Material ID"
// @Param request body dto.VoteRequest true "Vote"
// @Success 200 {object} dto.APIResponse{data=dto.MaterialResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid direction"
// @Failure 401 {object} dto.ErrorResponse "Missing userId"
// @Failure 403 {object} dto.ErrorResponse "userId differs from the token identity"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Router /materials/{id}/vote [post]
func (c *MaterialController) Vote(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.VoteRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	userID := req.UserID
	if userID == nil {
		if tokenUser, ok := middleware.CurrentUserID(ctx); ok {
			userID = &tokenUser
		}
	}

	if userID != nil {
		if err := c.authorizer.ValidateVoter(callerFrom(ctx), *userID); err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
	}

	material, err := c.voteService.Vote(ctx, id, userID, req.Direction)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewMaterialResponse(material, *userID)))
}
