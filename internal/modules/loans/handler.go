package loans

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxestate/internal/pkg/response"
)

type CalculateRequest struct {
	LoanAmount   float64 `json:"loan_amount" binding:"required"`
	DownPayment  float64 `json:"down_payment"`
	InterestRate float64 `json:"interest_rate"`
	TermYears    int     `json:"term_years" binding:"required"`
}

type PreApprovalRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	PropertyPrice string `json:"property_price"`
	LoanAmount    string `json:"loan_amount"`
	Message       string `json:"message"`
}

type SpeakWithExpertRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/loans/calculate", h.Calculate)
	rg.POST("/loans/pre-approvals", h.SubmitPreApproval)
	rg.GET("/loans/pre-approvals", h.ListPreApprovals)
	rg.POST("/loans/expert-requests", h.SubmitExpertRequest)
	rg.GET("/loans/expert-requests", h.ListExpertRequests)
}

func (h *Handler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	breakdown, err := h.service.Calculate(req.LoanAmount, req.DownPayment, req.InterestRate, req.TermYears)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, breakdown)
}

func (h *Handler) SubmitPreApproval(c *gin.Context) {
	var req PreApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	stored, err := h.service.SubmitPreApproval(c.Request.Context(), PreApproval{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		PropertyPrice: req.PropertyPrice,
		LoanAmount:    req.LoanAmount,
		Message:       req.Message,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"request": stored})
}

func (h *Handler) ListPreApprovals(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"requests": h.service.ListPreApprovals(c.Request.Context())})
}

func (h *Handler) SubmitExpertRequest(c *gin.Context) {
	var req SpeakWithExpertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	stored, err := h.service.SubmitExpertRequest(c.Request.Context(), ExpertRequest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"request": stored})
}

func (h *Handler) ListExpertRequests(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"requests": h.service.ListExpertRequests(c.Request.Context())})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrMissingContact:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name, email and phone are required")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save request")
	}
}
