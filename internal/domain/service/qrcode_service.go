package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders QR codes for shareable links.
type QRCodeService interface {
	// GenerateProjectQR returns a PNG QR code pointing at the project.
	GenerateProjectQR(projectID uuid.UUID) ([]byte, error)
}
