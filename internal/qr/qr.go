package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// pngSize is the rendered image edge length in pixels.
const pngSize = 256

// Encode renders the given string as a PNG QR code.
func Encode(data string) ([]byte, error) {
	return qrcode.Encode(data, qrcode.Medium, pngSize)
}

// CheckinURL builds the payload encoded into an event's QR code. Scanning the
// code leads the attendee to the check-in endpoint for that event.
func CheckinURL(baseURL string, eventID int64) string {
	return fmt.Sprintf("%s/checkin?event_id=%d", baseURL, eventID)
}
