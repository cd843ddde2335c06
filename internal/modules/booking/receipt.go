package booking

import (
	"bufio"
	"html/template"
	"strings"
	texttemplate "text/template"
	"time"
)

// receiptData is the flattened view rendered by both receipt formats.
type receiptData struct {
	Reference          string
	BookingDate        string
	Name               string
	Email              string
	Phone              string
	City               string
	State              string
	Postal             string
	Country            string
	Property           string
	CheckIn            string
	CheckOut           string
	DurationDays       int
	Guests             int
	Deposit            int64
	PaymentMethod      string
	CancellationPolicy string
	Notes              string
	Issued             string
}

const textReceiptTmpl = `LUXE ESTATE BOOKING RECEIPT
=====================================

Booking Reference: {{.Reference}}
Booking Date: {{.BookingDate}}

GUEST INFORMATION
-----------------
Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
City: {{.City}}, {{.State}} {{.Postal}}
Country: {{.Country}}

BOOKING DETAILS
---------------
Property: {{.Property}}
Check-in: {{.CheckIn}}
Check-out: {{.CheckOut}}
Duration: {{.DurationDays}} day(s)
Number of Guests: {{.Guests}}

PAYMENT INFORMATION
-------------------
Deposit Amount: ₹{{.Deposit}}
Payment Method: {{.PaymentMethod}}
Cancellation Policy: {{.CancellationPolicy}}
Payment Status: COMPLETED

ADDITIONAL NOTES
----------------
{{.Notes}}

=====================================
Thank you for choosing Luxe Estate!
We look forward to serving you.

Booking ID: {{.Reference}}
Issued: {{.Issued}}
`

const htmlReceiptTmpl = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Booking Receipt - {{.Reference}}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 40px; color: #333; }
    .container { max-width: 800px; margin: 0 auto; border: 2px solid #2563eb; padding: 30px; border-radius: 8px; }
    .header { text-align: center; margin-bottom: 30px; border-bottom: 3px solid #2563eb; padding-bottom: 20px; }
    .header h1 { color: #059669; margin: 0; font-size: 28px; }
    .section { margin-bottom: 20px; }
    .section-title { font-weight: bold; color: #2563eb; font-size: 14px; text-transform: uppercase; margin-bottom: 10px; border-left: 4px solid #2563eb; padding-left: 10px; }
    .row { display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px dotted #ddd; }
    .label { font-weight: bold; color: #666; }
    .value { color: #333; }
    .highlight { color: #059669; font-weight: bold; font-size: 16px; }
    .footer { text-align: center; margin-top: 40px; padding-top: 20px; border-top: 2px solid #2563eb; font-size: 12px; color: #666; }
    .ref-box { background: #e0f2fe; padding: 15px; border-radius: 5px; text-align: center; margin-bottom: 20px; }
    .ref-box .label { color: #0369a1; font-size: 12px; }
    .ref-box .value { color: #0284c7; font-size: 24px; font-family: monospace; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>✓ BOOKING CONFIRMED</h1>
      <p>Luxe Estate Booking System</p>
    </div>

    <div class="ref-box">
      <div class="label">BOOKING REFERENCE</div>
      <div class="value">{{.Reference}}</div>
    </div>

    <div class="section">
      <div class="section-title">Guest Information</div>
      <div class="row"><span class="label">Name:</span><span class="value">{{.Name}}</span></div>
      <div class="row"><span class="label">Email:</span><span class="value">{{.Email}}</span></div>
      <div class="row"><span class="label">Phone:</span><span class="value">{{.Phone}}</span></div>
      <div class="row"><span class="label">Location:</span><span class="value">{{.City}}, {{.State}} {{.Postal}}, {{.Country}}</span></div>
    </div>

    <div class="section">
      <div class="section-title">Booking Details</div>
      <div class="row"><span class="label">Property:</span><span class="value">{{.Property}}</span></div>
      <div class="row"><span class="label">Check-in:</span><span class="value">{{.CheckIn}}</span></div>
      <div class="row"><span class="label">Check-out:</span><span class="value">{{.CheckOut}}</span></div>
      <div class="row"><span class="label">Duration:</span><span class="value">{{.DurationDays}} day(s)</span></div>
      <div class="row"><span class="label">Guests:</span><span class="value">{{.Guests}}</span></div>
    </div>

    <div class="section">
      <div class="section-title">Payment Information</div>
      <div class="row"><span class="label">Deposit Amount:</span><span class="value highlight">₹{{.Deposit}}</span></div>
      <div class="row"><span class="label">Payment Method:</span><span class="value">{{.PaymentMethod}}</span></div>
      <div class="row"><span class="label">Cancellation Policy:</span><span class="value">{{.CancellationPolicy}}</span></div>
      <div class="row"><span class="label">Status:</span><span class="value" style="color: #059669; font-weight: bold;">COMPLETED ✓</span></div>
    </div>

    <div class="section">
      <div class="section-title">Special Requests</div>
      <div class="row"><span class="value">{{.Notes}}</span></div>
    </div>

    <div class="footer">
      <p><strong>Booking Issued:</strong> {{.Issued}}</p>
      <p>Thank you for choosing Luxe Estate. We look forward to serving you!</p>
      <p style="margin-top: 20px; font-weight: bold;">For support, contact: support@luxeestates.com | +91-1800-LUXE-EST</p>
    </div>
  </div>
</body>
</html>
`

var (
	textReceipt = texttemplate.Must(texttemplate.New("receipt").Parse(textReceiptTmpl))
	htmlReceipt = template.Must(template.New("receipt").Parse(htmlReceiptTmpl))
)

// TextReceipt renders the plain-text receipt for a confirmed booking.
func TextReceipt(rec Record) (string, error) {
	var b strings.Builder
	if err := textReceipt.Execute(&b, newReceiptData(rec)); err != nil {
		return "", err
	}
	return b.String(), nil
}

// HTMLReceipt renders the printable HTML receipt.
func HTMLReceipt(rec Record) (string, error) {
	var b strings.Builder
	if err := htmlReceipt.Execute(&b, newReceiptData(rec)); err != nil {
		return "", err
	}
	return b.String(), nil
}

// ReferenceFromText recovers the booking reference from a rendered text
// receipt. Returns "" when no reference line is present.
func ReferenceFromText(receipt string) string {
	sc := bufio.NewScanner(strings.NewReader(receipt))
	for sc.Scan() {
		line := sc.Text()
		if ref, ok := strings.CutPrefix(line, "Booking Reference: "); ok {
			return strings.TrimSpace(ref)
		}
	}
	return ""
}

func newReceiptData(rec Record) receiptData {
	property := rec.SelectedProperty
	if property == "" {
		property = "General Inquiry"
	}
	notes := rec.Notes
	if notes == "" {
		notes = "No special requests"
	}

	created := parseRFC3339(rec.CreatedAt)
	return receiptData{
		Reference:          rec.ID,
		BookingDate:        created.Format("02/01/2006"),
		Name:               rec.Name,
		Email:              rec.Email,
		Phone:              rec.Phone,
		City:               rec.City,
		State:              rec.State,
		Postal:             rec.Postal,
		Country:            rec.Country,
		Property:           property,
		CheckIn:            formatStay(rec.Start),
		CheckOut:           formatStay(rec.End),
		DurationDays:       rec.DurationDays,
		Guests:             rec.Guests,
		Deposit:            rec.BookingDeposit,
		PaymentMethod:      strings.ToUpper(rec.PaymentMethod),
		CancellationPolicy: strings.ReplaceAll(rec.CancellationPolicy, "-", " "),
		Notes:              notes,
		Issued:             created.Format("02/01/2006, 15:04:05"),
	}
}

func formatStay(ts string) string {
	t := parseRFC3339(ts)
	if t.IsZero() {
		return ts
	}
	return t.Format("2006-01-02") + " at " + t.Format("15:04")
}

func parseRFC3339(ts string) time.Time {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}
	}
	return t
}
