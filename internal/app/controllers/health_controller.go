package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mskustudx/studx/internal/app/models/dto"
)

// UserCounter reports the size of the live user collection
type UserCounter interface {
	Count() int
}

// HealthController reports liveness
type HealthController struct {
	users   UserCounter
	storage string
}

// NewHealthController creates a new HealthController
func NewHealthController(users UserCounter, storage string) *HealthController {
	return &HealthController{users: users, storage: storage}
}

// Health reports service status
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HealthResponse}
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.HealthResponse{
		Status:  "ok",
		Users:   c.users.Count(),
		Storage: c.storage,
	}))
}

// Ping answers with pong
func (c *HealthController) Ping(ctx *gin.Context) {
	ctx.String(http.StatusOK, "pong")
}
