package booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() Record {
	return Record{
		ID:                 "BOOK-1756380000000-A1B2C3D4E",
		Property:           "Oceanfront Estate",
		Location:           "Goa",
		Price:              "$22.8M",
		Name:               "Asha Rao",
		Phone:              "+91-9876543210",
		Email:              "asha@example.com",
		City:               "Mumbai",
		State:              "Maharashtra",
		Postal:             "400001",
		Country:            "India",
		Start:              "2026-09-01T10:00:00Z",
		End:                "2026-09-03T18:00:00Z",
		DurationDays:       3,
		Guests:             2,
		SelectedProperty:   "Oceanfront Estate - Goa - $22.8M",
		BookingDeposit:     10000,
		CancellationPolicy: "non-refundable",
		PaymentMethod:      "razorpay",
		PaymentStatus:      "completed",
		CreatedAt:          "2026-08-28T12:30:45Z",
	}
}

func TestTextReceipt(t *testing.T) {
	out, err := TextReceipt(sampleRecord())
	require.NoError(t, err)

	assert.Contains(t, out, "LUXE ESTATE BOOKING RECEIPT")
	assert.Contains(t, out, "Booking Reference: BOOK-1756380000000-A1B2C3D4E")
	assert.Contains(t, out, "Name: Asha Rao")
	assert.Contains(t, out, "City: Mumbai, Maharashtra 400001")
	assert.Contains(t, out, "Check-in: 2026-09-01 at 10:00")
	assert.Contains(t, out, "Duration: 3 day(s)")
	assert.Contains(t, out, "Deposit Amount: ₹10000")
	assert.Contains(t, out, "Payment Method: RAZORPAY")
	assert.Contains(t, out, "Cancellation Policy: non refundable")
	assert.Contains(t, out, "Payment Status: COMPLETED")
	assert.Contains(t, out, "No special requests") // empty notes fall back
}

func TestTextReceipt_EmptyPropertyIsGeneralInquiry(t *testing.T) {
	rec := sampleRecord()
	rec.SelectedProperty = ""

	out, err := TextReceipt(rec)
	require.NoError(t, err)
	assert.Contains(t, out, "Property: General Inquiry")
}

func TestReferenceFromText_RoundTrip(t *testing.T) {
	rec := sampleRecord()
	out, err := TextReceipt(rec)
	require.NoError(t, err)

	assert.Equal(t, rec.ID, ReferenceFromText(out))
	assert.Empty(t, ReferenceFromText("no reference here"))
}

func TestHTMLReceipt(t *testing.T) {
	rec := sampleRecord()
	rec.Notes = "<script>alert(1)</script>"

	out, err := HTMLReceipt(rec)
	require.NoError(t, err)

	assert.Contains(t, out, rec.ID)
	assert.Contains(t, out, "BOOKING CONFIRMED")
	assert.Contains(t, out, "Luxe Estate Booking System")
	// html/template escapes user input
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
}

func TestNewReference(t *testing.T) {
	now := time.UnixMilli(1756380000000)
	ref := NewReference(now)

	assert.True(t, ValidReference(ref), "got %q", ref)
	assert.True(t, strings.HasPrefix(ref, "BOOK-1756380000000-"))

	// distinct suffixes across mints
	assert.NotEqual(t, ref, NewReference(now))
	assert.False(t, ValidReference("book-123-abcdefghi"))
	assert.False(t, ValidReference("BOOK-123-SHORT"))
}
