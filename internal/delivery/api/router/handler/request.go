package handler

import (
	"fmt"

	"trailpack/internal/delivery/api/response"
	domainerrors "trailpack/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.OK(c, "OK", nil)
}

// parsePathID reads a hex ObjectID path parameter. label names the resource in the error message.
func parsePathID(c echo.Context, param, label string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		return primitive.NilObjectID, domainerrors.ErrInvalidID.WithMessage("Invalid " + label + " id")
	}

	return id, nil
}

// bindAndValidate decodes the JSON body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage(err.Error())
	}

	return nil
}

// idReader converts hex ids from a request body and keeps the first failure,
// reported in the same form as the objectid validation rule.
type idReader struct {
	err error
}

func (r *idReader) one(field, hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil && r.err == nil {
		r.err = domainerrors.ErrValidationFailed.WithMessage(field + " must be a valid id")
	}

	return id
}

func (r *idReader) optional(field string, hex *string) *primitive.ObjectID {
	if hex == nil {
		return nil
	}
	id := r.one(field, *hex)

	return &id
}

func (r *idReader) many(field string, hexes []string) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for i, hex := range hexes {
		ids = append(ids, r.one(fmt.Sprintf("%s[%d]", field, i), hex))
	}

	return ids
}

func (r *idReader) optionalMany(field string, hexes *[]string) *[]primitive.ObjectID {
	if hexes == nil {
		return nil
	}
	ids := r.many(field, *hexes)

	return &ids
}
