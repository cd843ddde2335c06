package booking

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"time"
)

const refCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var refPattern = regexp.MustCompile(`^BOOK-\d+-[0-9A-Z]{9}$`)

// NewReference mints a booking reference: BOOK-<unix millis>-<9 uppercase
// alphanumerics>. References sort roughly by creation time.
func NewReference(now time.Time) string {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(fmt.Sprintf("booking: reference entropy unavailable: %v", err))
	}
	for i, b := range buf {
		buf[i] = refCharset[int(b)%len(refCharset)]
	}
	return fmt.Sprintf("BOOK-%d-%s", now.UnixMilli(), buf)
}

// ValidReference reports whether s has the booking reference shape.
func ValidReference(s string) bool {
	return refPattern.MatchString(s)
}
