package service

// QRCodeService defines the interface for payment QR code generation.
type QRCodeService interface {
	// GenerateUPIQR renders a UPI intent for the given amount and transaction
	// reference as a PNG QR code.
	GenerateUPIQR(amount float64, reference string) ([]byte, error)
}
