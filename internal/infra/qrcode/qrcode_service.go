// Package qrcode renders UPI payment intents as QR codes.
package qrcode

import (
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"

	"boutique/internal/domain/service"
)

type qrcodeService struct {
	payee                string
	payeeName            string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(payee, payeeName string, size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
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
		payee:                payee,
		payeeName:            payeeName,
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateUPIQR renders a UPI intent for the given amount and transaction
// reference as a PNG QR code.
func (s *qrcodeService) GenerateUPIQR(amount float64, reference string) ([]byte, error) {
	intent := s.upiIntent(amount, reference)

	qrCode, err := qrcode.New(intent, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// upiIntent builds the upi://pay deep link encoded into the QR code.
func (s *qrcodeService) upiIntent(amount float64, reference string) string {
	params := url.Values{}
	params.Set("pa", s.payee)
	params.Set("pn", s.payeeName)
	params.Set("am", strconv.FormatFloat(amount, 'f', 2, 64))
	params.Set("cu", "INR")
	params.Set("tr", reference)

	return "upi://pay?" + params.Encode()
}
