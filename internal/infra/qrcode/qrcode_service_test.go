package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newGenerator(t *testing.T, size int, level, baseURL string) *Generator {
	t.Helper()

	g, ok := NewQRCodeService(size, level, baseURL).(*Generator)
	require.True(t, ok)

	return g
}

func TestNewQRCodeService_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"", qrcode.Medium},
		{"X", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, newGenerator(t, 128, tt.level, "").level)
		})
	}
}

func TestGenerator_GeneratePackageQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		g := newGenerator(t, size, "M", "https://trailpack.example")

		data, err := g.GeneratePackageQR(primitive.NewObjectID())
		require.NoError(t, err)

		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, size, cfg.Width)
		assert.Equal(t, size, cfg.Height)
	}
}

func TestGenerator_DefaultSize(t *testing.T) {
	assert.Equal(t, defaultSize, newGenerator(t, 0, "M", "").size)
}

func TestGenerator_PackageURL(t *testing.T) {
	packageID, err := primitive.ObjectIDFromHex("65a1f0c2e4b0a1b2c3d4e5f6")
	require.NoError(t, err)

	g := newGenerator(t, 256, "M", "https://trailpack.example/")

	assert.Equal(t, "https://trailpack.example/packages/65a1f0c2e4b0a1b2c3d4e5f6", g.PackageURL(packageID))
}
