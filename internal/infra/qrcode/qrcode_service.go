// Package qrcode renders share links as PNG QR codes.
package qrcode

import (
	"strings"

	"trailpack/internal/domain/service"
	"trailpack/internal/errors"

	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultSize = 256

// recoveryLevels maps the configured letter to the library level. Unknown letters use Medium.
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

// Generator encodes public package URLs
type Generator struct {
	size    int
	level   qrcode.RecoveryLevel
	baseURL string
}

// NewQRCodeService creates a generator producing size x size images rooted at baseURL
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	level, ok := recoveryLevels[strings.ToUpper(errorCorrectionLevel)]
	if !ok {
		level = qrcode.Medium
	}

	return &Generator{
		size:    size,
		level:   level,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// PackageURL is the public page a package QR code points at
func (g *Generator) PackageURL(packageID primitive.ObjectID) string {
	return g.baseURL + "/packages/" + packageID.Hex()
}

// GeneratePackageQR renders the package URL as a PNG
func (g *Generator) GeneratePackageQR(packageID primitive.ObjectID) ([]byte, error) {
	png, err := qrcode.Encode(g.PackageURL(packageID), g.level, g.size)
	if err != nil {
		return nil, errors.Wrapf(err, "encode QR code for package %s", packageID.Hex())
	}

	return png, nil
}
