package service

// QRCodeService renders QR codes for post share links.
type QRCodeService interface {
	// GenerateShareQR returns a PNG-encoded QR code for the given URL.
	GenerateShareQR(url string) ([]byte, error)
}
