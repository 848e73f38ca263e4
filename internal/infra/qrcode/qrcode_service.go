// Package qrcode renders share QR codes for post links.
package qrcode

import (
	"blog/config"
	"blog/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// New creates a QR code service from configuration.
func New(cfg *config.Config) service.QRCodeService {
	size := 256
	levelName := "M"
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			levelName = cfg.QRCode.ErrorCorrectionLevel
		}
	}

	var level qrcode.RecoveryLevel
	switch levelName {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateShareQR returns a PNG-encoded QR code for the given URL.
func (s *qrcodeService) GenerateShareQR(url string) ([]byte, error) {
	code, err := qrcode.New(url, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode QR code PNG")
	}

	return pngBytes, nil
}
