package service

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GeneratePackageQR generates a PNG QR code linking to the public page of a package
	GeneratePackageQR(packageID primitive.ObjectID) ([]byte, error)
}
