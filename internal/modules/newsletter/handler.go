package newsletter

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxestate/internal/pkg/response"
)

type SubscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/newsletter/subscribers", h.Subscribe)
	rg.GET("/newsletter/subscribers", h.List)
	rg.GET("/newsletter/subscribers/export", h.Export)
}

func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please enter a valid email.")
		return
	}

	sub, err := h.service.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		switch err {
		case ErrInvalidEmail:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please enter a valid email.")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to subscribe")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"subscriber": sub})
}

func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"subscribers": h.service.List(c.Request.Context())})
}

// Export serves the list as a downloadable JSON attachment.
func (h *Handler) Export(c *gin.Context) {
	subs := h.service.Export(c.Request.Context())
	c.Header("Content-Disposition", `attachment; filename="subscriptions.json"`)
	c.JSON(http.StatusOK, subs)
}
