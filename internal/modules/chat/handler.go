package chat

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"luxestate/internal/pkg/response"
)

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat/sessions", h.StartSession)
	rg.GET("/chat/sessions/:id", h.GetSession)
	rg.POST("/chat/sessions/:id/options", h.SelectOption)
	rg.POST("/chat/sessions/:id/messages", h.SendText)
	rg.DELETE("/chat/sessions/:id", h.CloseSession)
}

func (h *Handler) StartSession(c *gin.Context) {
	sess := h.service.StartSession(c.Request.Context())
	messages, typing, err := h.service.Transcript(sess.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to start session")
		return
	}
	response.Success(c, http.StatusCreated, SessionResponse{
		SessionID: sess.ID,
		Messages:  messages,
		Typing:    typing,
	})
}

func (h *Handler) GetSession(c *gin.Context) {
	id := c.Param("id")
	messages, typing, err := h.service.Transcript(id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Chat session not found")
		return
	}
	response.Success(c, http.StatusOK, SessionResponse{
		SessionID: id,
		Messages:  messages,
		Typing:    typing,
	})
}

func (h *Handler) SelectOption(c *gin.Context) {
	var req SelectOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	msg, err := h.service.SelectOption(c.Request.Context(), c.Param("id"), req.OptionID, req.Label)
	if err != nil {
		switch err {
		case ErrSessionNotFound:
			response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Chat session not found")
		case ErrSessionClosed:
			response.Error(c, http.StatusGone, "SESSION_CLOSED", "Chat session is closed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to handle option")
		}
		return
	}
	response.Success(c, http.StatusAccepted, gin.H{"message": msg})
}

func (h *Handler) SendText(c *gin.Context) {
	var req SendTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	msg, err := h.service.SendText(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		switch err {
		case ErrSessionNotFound:
			response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Chat session not found")
		case ErrSessionClosed:
			response.Error(c, http.StatusGone, "SESSION_CLOSED", "Chat session is closed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to handle message")
		}
		return
	}
	if msg == nil {
		// Blank input is ignored, not rejected
		response.Success(c, http.StatusOK, gin.H{"message": nil})
		return
	}
	response.Success(c, http.StatusAccepted, gin.H{"message": msg})
}

func (h *Handler) CloseSession(c *gin.Context) {
	if err := h.service.CloseSession(c.Param("id")); err != nil {
		response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Chat session not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"closed": true})
}

// HandleWebSocket upgrades the connection and streams conversation events.
//
// Endpoint: GET /ws/chat?session=SESSION_ID
func (h *Handler) HandleWebSocket(c *gin.Context) {
	sessionID := c.Query("session")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session query parameter is required"})
		return
	}
	if _, _, err := h.service.Transcript(sessionID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "chat session not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	h.hub.ServeWS(conn, sessionID)
}
