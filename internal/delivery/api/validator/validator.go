// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	"trailpack/internal/domain/entity"
	"trailpack/internal/errors"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Validator validates request DTOs bound by echo.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator with the catalog specific rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names so messages match the request body.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	// Registration only fails on an empty tag or a nil func.
	_ = v.RegisterValidation("objectid", isObjectID)
	_ = v.RegisterValidation("destination_category", isDestinationCategory)

	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describe(fe))
	}

	return errors.New(strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	field := fieldPath(fe)

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "objectid":
		return field + " must be a valid id"
	case "destination_category":
		return field + " must be one of: " + strings.Join(entity.CategoryNames(), ", ")
	case "gte", "min":
		return field + " must be at least " + fe.Param()
	case "lte", "max":
		return field + " must be at most " + fe.Param()
	default:
		return field + " failed the " + fe.Tag() + " rule"
	}
}

// fieldPath drops the struct name prefix, keeping slice indexes.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return fe.Field()
}

func isObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}

func isDestinationCategory(fl validator.FieldLevel) bool {
	return entity.Category(fl.Field().String()).IsValid()
}
