// Package qrcode renders product share links as QR code images.
package qrcode

import (
	"net/url"
	"path"
	"strconv"
	"strings"

	"market/internal/domain/service"
	"market/internal/errors"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance. Codes encode
// baseURL followed by the product id.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateProductQR renders the product share link as a PNG.
func (s *qrcodeService) GenerateProductQR(productID int64) ([]byte, error) {
	if productID <= 0 {
		return nil, errors.Errorf("invalid product id %d", productID)
	}

	qrCode, err := qrcode.New(s.productLink(productID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseProductQR extracts the product id from a scanned share link.
func (s *qrcodeService) ParseProductQR(qrData string) (int64, error) {
	if !strings.HasPrefix(qrData, s.baseURL+"/") {
		return 0, errors.Errorf("unexpected QR code content: %s", qrData)
	}

	link, err := url.Parse(qrData)
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse QR code link")
	}

	productID, err := strconv.ParseInt(path.Base(link.Path), 10, 64)
	if err != nil || productID <= 0 {
		return 0, errors.Errorf("invalid product id in QR code: %s", qrData)
	}

	return productID, nil
}

func (s *qrcodeService) productLink(productID int64) string {
	return s.baseURL + "/" + strconv.FormatInt(productID, 10)
}
