package qrcode

import (
	"strings"

	"todoez/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR renderer for links under baseURL.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ProjectLink returns the URL encoded in a project's QR code.
func (s *qrcodeService) ProjectLink(projectID uuid.UUID) string {
	return s.baseURL + "/projects/" + projectID.String()
}

// GenerateProjectQR renders the project link as a PNG.
func (s *qrcodeService) GenerateProjectQR(projectID uuid.UUID) ([]byte, error) {
	if projectID == uuid.Nil {
		return nil, errors.New("project id is required")
	}

	pngBytes, err := qrcode.Encode(s.ProjectLink(projectID), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode QR code")
	}

	return pngBytes, nil
}
