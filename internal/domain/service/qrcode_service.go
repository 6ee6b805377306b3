package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateProductQR renders a PNG QR code pointing at the product's share link.
	GenerateProductQR(productID int64) ([]byte, error)

	// ParseProductQR extracts the product id from QR code content.
	ParseProductQR(qrData string) (int64, error)
}
