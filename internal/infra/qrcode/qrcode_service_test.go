package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_ProjectLink(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://todoez.example.com/").(*qrcodeService)
	projectID := uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")

	assert.Equal(t, "https://todoez.example.com/projects/7c9e6679-7425-40de-944b-e07fc1f90ae7", svc.ProjectLink(projectID))
}

func TestQRCodeService_GenerateProjectQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService(size, "M", "http://localhost:3000")

		pngBytes, err := svc.GenerateProjectQR(uuid.New())
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(pngBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}

func TestQRCodeService_DefaultSize(t *testing.T) {
	svc := NewQRCodeService(0, "", "http://localhost:3000")

	pngBytes, err := svc.GenerateProjectQR(uuid.New())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, defaultSize, img.Bounds().Dx())
}

func TestQRCodeService_RejectsNilID(t *testing.T) {
	svc := NewQRCodeService(256, "M", "http://localhost:3000")

	_, err := svc.GenerateProjectQR(uuid.Nil)
	assert.Error(t, err)
}
