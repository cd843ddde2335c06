package booking

import "errors"

var (
	ErrSessionNotFound             = errors.New("booking session not found")
	ErrNotEditable                 = errors.New("booking session is not editable")
	ErrIncompleteContactOrSchedule = errors.New("contact or schedule details incomplete")
	ErrInvalidDateRange            = errors.New("end date/time must be after start date/time")
	ErrMissingDocuments            = errors.New("at least one government document is required")
	ErrIncompleteAddress           = errors.New("city, state and postal code are required")
	ErrIncompleteDocument          = errors.New("document number and file are required")
	ErrDocumentTooLarge            = errors.New("document exceeds the size limit")
	ErrDocumentIndexOutOfRange     = errors.New("document index out of range")
	ErrBookingNotFound             = errors.New("booking record not found")
)
