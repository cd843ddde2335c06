package subscription

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxestate/internal/pkg/response"
	"luxestate/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts signup, login and the pricing catalog.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", h.SignUp)
	rg.POST("/auth/login", h.Login)
	rg.GET("/subscription/plans", h.Plans)
}

// RegisterProtectedRoutes mounts the member-only subscription management
// endpoints; the group must carry the auth middleware.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/subscription", h.Current)
	rg.POST("/subscription/activate", h.Activate)
	rg.POST("/subscription/cancel", h.Cancel)
	rg.PUT("/subscription/auto-renew", h.SetAutoRenew)
	rg.PUT("/subscription/plan", h.ChangePlan)
	rg.PUT("/subscription/payment-method", h.UpdatePaymentMethod)
}

func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := validator.Validate(req); fields != nil {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", fields)
			return
		}
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, token, err := h.service.SignUp(c.Request.Context(), req.Name, req.Email, req.Password, req.Phone, req.City)
	if err != nil {
		switch err {
		case ErrEmailTaken:
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "User already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create account")
		}
		return
	}
	response.Success(c, http.StatusCreated, AuthResponse{User: user, Token: token})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case ErrUserNotFound, ErrInvalidCredentials:
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
		}
		return
	}
	response.Success(c, http.StatusOK, AuthResponse{User: user, Token: token})
}

func (h *Handler) Plans(c *gin.Context) {
	plans, err := h.service.Plans(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load plans")
		return
	}

	views := make([]PlanView, 0, len(plans))
	for _, p := range plans {
		views = append(views, newPlanView(p))
	}
	response.Success(c, http.StatusOK, gin.H{"plans": views})
}

func (h *Handler) Current(c *gin.Context) {
	sub, plan, err := h.service.Current(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"subscription": sub, "plan": newPlanView(plan)})
}

func (h *Handler) Activate(c *gin.Context) {
	var req ActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := validator.Validate(req); fields != nil {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", fields)
			return
		}
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sub, err := h.service.Activate(c.Request.Context(), c.GetInt64("user_id"),
		PlanID(req.PlanID), BillingCycle(req.BillingCycle), req.PaymentMethod)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"subscription": sub})
}

func (h *Handler) Cancel(c *gin.Context) {
	sub, err := h.service.Cancel(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"subscription": sub})
}

func (h *Handler) SetAutoRenew(c *gin.Context) {
	var req AutoRenewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sub, err := h.service.SetAutoRenew(c.Request.Context(), c.GetInt64("user_id"), *req.Enabled)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"subscription": sub})
}

func (h *Handler) ChangePlan(c *gin.Context) {
	var req ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sub, err := h.service.ChangePlan(c.Request.Context(), c.GetInt64("user_id"),
		PlanID(req.PlanID), BillingCycle(req.BillingCycle))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"subscription": sub})
}

func (h *Handler) UpdatePaymentMethod(c *gin.Context) {
	var req PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sub, err := h.service.UpdatePaymentMethod(c.Request.Context(), c.GetInt64("user_id"), req.Method)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"subscription": sub})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrPlanNotFound:
		response.Error(c, http.StatusNotFound, "PLAN_NOT_FOUND", "Membership plan not found")
	case ErrSubscriptionNotFound:
		response.Error(c, http.StatusNotFound, "SUBSCRIPTION_NOT_FOUND", "No active subscription")
	case ErrAlreadySubscribed:
		response.Error(c, http.StatusConflict, "ALREADY_SUBSCRIBED", "Already subscribed to this plan")
	case ErrInvalidBillingCycle:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Billing cycle must be monthly or annual")
	case ErrInvalidPaymentMethod:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unsupported payment method")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process subscription request")
	}
}
