package livefeed

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/mskustudx/studx/internal/app/models/dto"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CourseChecker reports whether a course exists
type CourseChecker interface {
	CourseExists(id int64) bool
}

// Handler upgrades HTTP requests to course live feeds
type Handler struct {
	hub     *Hub
	courses CourseChecker
	logger  zerolog.Logger
}

// NewHandler creates a new websocket handler
func NewHandler(hub *Hub, courses CourseChecker, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:     hub,
		courses: courses,
		logger:  logger,
	}
}

// HandleConnection godoc
// @Summary Watch live vote tallies for a course
// @Description Upgrades to a websocket that receives a message for every vote on the course's materials
// @Tags courses, websocket
// @Param id path int true "Course ID"
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/live [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	courseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || courseID <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID").WithField("id")))
		return
	}

	if !h.courses.CourseExists(courseID) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "course not found")))
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn().Err(err).Int64("courseID", courseID).Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:      h.hub,
		conn:     conn,
		send:     make(chan []byte, 64),
		courseID: courseID,
		logger:   h.logger,
	}
	if !h.hub.add(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
