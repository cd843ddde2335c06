package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"luxestate/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	// The wizard lives under the singular /booking prefix so that
	// /bookings/:reference below stays free of route conflicts.
	rg.POST("/booking/wizard", h.StartWizard)
	rg.GET("/booking/wizard/:id", h.GetWizard)
	rg.PATCH("/booking/wizard/:id", h.UpdateDraft)
	rg.POST("/booking/wizard/:id/documents", h.AddDocument)
	rg.DELETE("/booking/wizard/:id/documents/:index", h.RemoveDocument)
	rg.POST("/booking/wizard/:id/submit", h.Submit)
	rg.POST("/booking/wizard/:id/cancel", h.Cancel)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/schedule-requests", h.ListScheduleRequests)
	rg.GET("/bookings/:reference", h.GetBooking)
	rg.GET("/bookings/:reference/receipt", h.Receipt)
}

func (h *Handler) StartWizard(c *gin.Context) {
	var req StartWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	sess := h.service.StartWizard(req.Property, req.Location, req.Price)
	response.Success(c, http.StatusCreated, sess)
}

func (h *Handler) GetWizard(c *gin.Context) {
	sess, err := h.service.Get(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Booking session not found")
		return
	}
	response.Success(c, http.StatusOK, sess)
}

func (h *Handler) UpdateDraft(c *gin.Context) {
	var patch DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	sess, err := h.service.UpdateDraft(c.Param("id"), patch)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sess)
}

func (h *Handler) AddDocument(c *gin.Context) {
	var req AddDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	sess, err := h.service.AddDocument(c.Param("id"), Document{
		DocType:   req.DocType,
		DocNumber: req.DocNumber,
		FileName:  req.FileName,
		FileData:  req.FileData,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, sess)
}

func (h *Handler) RemoveDocument(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Document index must be a number")
		return
	}
	sess, err := h.service.RemoveDocument(c.Param("id"), index)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sess)
}

func (h *Handler) Submit(c *gin.Context) {
	rec, err := h.service.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	receipt, err := TextReceipt(rec)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render receipt")
		return
	}
	response.Success(c, http.StatusCreated, SubmitResponse{Booking: rec, Receipt: receipt})
}

func (h *Handler) Cancel(c *gin.Context) {
	sess, err := h.service.Cancel(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sess)
}

func (h *Handler) ListBookings(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"bookings": h.service.ListBookings(c.Request.Context())})
}

func (h *Handler) ListScheduleRequests(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"requests": h.service.ListScheduleRequests(c.Request.Context())})
}

func (h *Handler) GetBooking(c *gin.Context) {
	rec, err := h.service.GetBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking record not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": rec})
}

// Receipt serves a downloadable receipt. ?format=html switches to the
// printable HTML layout; the default is plain text.
func (h *Handler) Receipt(c *gin.Context) {
	rec, err := h.service.GetBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking record not found")
		return
	}

	if c.Query("format") == "html" {
		body, err := HTMLReceipt(rec)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render receipt")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="LuxeEstate_Receipt_`+rec.ID+`.html"`)
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
		return
	}

	body, err := TextReceipt(rec)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render receipt")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="LuxeEstate_Booking_`+rec.ID+`.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrSessionNotFound:
		response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Booking session not found")
	case ErrNotEditable:
		response.Error(c, http.StatusConflict, "NOT_EDITABLE", "Booking session is not editable")
	case ErrIncompleteContactOrSchedule:
		response.Error(c, http.StatusBadRequest, "INCOMPLETE_CONTACT_OR_SCHEDULE", "Please complete name, email, phone, start and end date/time.")
	case ErrInvalidDateRange:
		response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", "End date/time must be after start date/time.")
	case ErrMissingDocuments:
		response.Error(c, http.StatusBadRequest, "MISSING_DOCUMENTS", "Please upload at least one government document.")
	case ErrIncompleteAddress:
		response.Error(c, http.StatusBadRequest, "INCOMPLETE_ADDRESS", "Please fill in all address fields.")
	case ErrIncompleteDocument:
		response.Error(c, http.StatusBadRequest, "INCOMPLETE_DOCUMENT", "Fill all fields.")
	case ErrDocumentTooLarge:
		response.Error(c, http.StatusRequestEntityTooLarge, "DOCUMENT_TOO_LARGE", "File too large (max 5MB).")
	case ErrDocumentIndexOutOfRange:
		response.Error(c, http.StatusNotFound, "DOCUMENT_NOT_FOUND", "Document index out of range")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process booking request")
	}
}
