package impl

import (
	"strings"

	"trailpack/internal/domain/entity"
	domainerrors "trailpack/internal/domain/errors"
	"trailpack/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// translateRepoError turns a repository sentinel into its AppError and wraps
// anything else as a database failure.
func translateRepoError(err, sentinel error, appErr *domainerrors.BaseError, action string) error {
	if errors.Is(err, sentinel) {
		return appErr
	}

	return domainerrors.NewDatabaseExecuteError(err, action)
}

func invalid(format string) error {
	return domainerrors.ErrValidationFailed.WithMessage(format)
}

func requireName(name string) error {
	if strings.TrimSpace(name) == "" {
		return invalid("name is required")
	}

	return nil
}

func optionalName(name *string) error {
	if name == nil {
		return nil
	}

	return requireName(*name)
}

func nonNegative(field string, value *float64) error {
	if value != nil && *value < 0 {
		return invalid(field + " must not be negative")
	}

	return nil
}

func ratingInRange(value *float64) error {
	if value != nil && (*value < 0 || *value > entity.MaxRating) {
		return invalid("rating must be between 0 and 5")
	}

	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

func valueOr[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}

	return *ptr
}

func imagesOrEmpty(images []string) []string {
	if images == nil {
		return []string{}
	}

	return images
}

func requireDestination(id primitive.ObjectID) error {
	if id.IsZero() {
		return invalid("destinationId is required")
	}

	return nil
}

func optionalDestination(id *primitive.ObjectID) error {
	if id == nil {
		return nil
	}

	return requireDestination(*id)
}
