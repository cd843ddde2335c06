package booking

// State is the wizard lifecycle phase of one booking session.
type State string

const (
	StateEmpty      State = "empty"
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StateConfirmed  State = "confirmed"
)

// Contact is step 1 of the wizard.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Address is step 2.
type Address struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Postal  string `json:"postal"`
	Country string `json:"country"`
}

// Document is one uploaded identity document (step 3). FileData carries the
// file content as a data URL.
type Document struct {
	DocType   string `json:"docType"`
	DocNumber string `json:"docNumber"`
	FileName  string `json:"fileName"`
	FileData  string `json:"fileData"`
}

// Schedule is step 4: the stay window plus party details. Dates are
// "2006-01-02", times "15:04", combined when the duration is computed.
type Schedule struct {
	StartDate string `json:"startDate"`
	StartTime string `json:"startTime"`
	EndDate   string `json:"endDate"`
	EndTime   string `json:"endTime"`
	Guests    int    `json:"guests"`
	Notes     string `json:"notes"`
}

// Payment is step 5. The payment itself is simulated; the record is always
// written with status "completed".
type Payment struct {
	SelectedProperty   string `json:"selectedProperty"`
	Deposit            int64  `json:"bookingDeposit"`
	CancellationPolicy string `json:"cancellationPolicy"`
	Method             string `json:"paymentMethod"`
}

// Draft is the in-progress wizard form.
type Draft struct {
	Contact   Contact    `json:"contact"`
	Address   Address    `json:"address"`
	Documents []Document `json:"documents"`
	Schedule  Schedule   `json:"schedule"`
	Payment   Payment    `json:"payment"`
}

// newDraft returns a draft with the wizard's field defaults.
func newDraft() Draft {
	return Draft{
		Address:  Address{Country: "India"},
		Schedule: Schedule{Guests: 1},
		Payment: Payment{
			Deposit:            10000,
			CancellationPolicy: "standard",
			Method:             "razorpay",
		},
	}
}

// Record is one confirmed booking as persisted in the viewing-requests
// list. Field names match the stored JSON shape consumed elsewhere.
type Record struct {
	ID                 string     `json:"id"`
	Property           string     `json:"property"`
	Location           string     `json:"location"`
	Price              string     `json:"price"`
	Name               string     `json:"name"`
	Phone              string     `json:"phone"`
	Email              string     `json:"email"`
	City               string     `json:"city"`
	State              string     `json:"state"`
	Postal             string     `json:"postal"`
	Country            string     `json:"country"`
	GovDocuments       []Document `json:"govDocuments"`
	Start              string     `json:"start"`
	End                string     `json:"end"`
	DurationDays       int        `json:"durationDays"`
	Guests             int        `json:"guests"`
	Notes              string     `json:"notes"`
	SelectedProperty   string     `json:"selectedProperty"`
	BookingDeposit     int64      `json:"bookingDeposit"`
	CancellationPolicy string     `json:"cancellationPolicy"`
	PaymentMethod      string     `json:"paymentMethod"`
	PaymentStatus      string     `json:"paymentStatus"`
	CreatedAt          string     `json:"createdAt"`
}
