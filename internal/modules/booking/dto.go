package booking

// StartWizardRequest opens a wizard. An empty property starts a
// general-inquiry session.
type StartWizardRequest struct {
	Property string `json:"property"`
	Location string `json:"location"`
	Price    string `json:"price"`
}

// AddDocumentRequest attaches one identity document.
type AddDocumentRequest struct {
	DocType   string `json:"doc_type"`
	DocNumber string `json:"doc_number" binding:"required"`
	FileName  string `json:"file_name"`
	FileData  string `json:"file_data" binding:"required"`
}

// SubmitResponse is returned on a confirmed booking.
type SubmitResponse struct {
	Booking Record `json:"booking"`
	Receipt string `json:"receipt"`
}
