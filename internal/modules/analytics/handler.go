package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxestate/internal/pkg/response"
)

// LogEventRequest records a client-side milestone (share attempts, search
// queries and the like).
type LogEventRequest struct {
	Name string         `json:"name" binding:"required"`
	Data map[string]any `json:"data"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analytics/events", h.LogEvent)
	rg.GET("/analytics/events", h.ListEvents)
}

func (h *Handler) LogEvent(c *gin.Context) {
	var req LogEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	h.service.Log(c.Request.Context(), req.Name, req.Data)
	response.Success(c, http.StatusAccepted, gin.H{"logged": true})
}

func (h *Handler) ListEvents(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"events": h.service.List(c.Request.Context())})
}
