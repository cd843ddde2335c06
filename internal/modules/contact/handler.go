package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxestate/internal/pkg/response"
)

const supportEmail = "info@prestigeestates.com"

type SubmitRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message" binding:"required"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact/messages", h.Submit)
	rg.GET("/contact/messages", h.List)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	msg, err := h.service.Submit(c.Request.Context(), Message{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
	})
	if err != nil {
		switch err {
		case ErrEmptyMessage:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Message body is required")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save message")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": msg,
		"mailto":  msg.MailtoLink(supportEmail),
	})
}

func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"messages": h.service.List(c.Request.Context())})
}
