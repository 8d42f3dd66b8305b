// Package errors defines the errors the API reports to clients.
package errors

import (
	"net/http"

	"trailpack/internal/errors"
)

// AppError is an error with everything needed to render an API error body
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // machine readable code
	Message() string   // client facing message
	Details() string   // internal context, never rendered
}

// BaseError is the AppError used for every expected failure
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func newError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithMessage returns a copy carrying a more specific client message
func (e *BaseError) WithMessage(message string) *BaseError {
	clone := *e
	clone.message = message

	return &clone
}

// WrapMessage annotates the error with internal context and a stack trace
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches on the error code so copies from WithMessage still match their sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && e.errorCode == t.errorCode
}

// Request errors
var (
	ErrValidationFailed = newError(http.StatusBadRequest, "VALIDATION_FAILED", "Invalid input")
	ErrInvalidID        = newError(http.StatusBadRequest, "INVALID_ID", "Invalid id")
	ErrBudgetOutOfRange = newError(http.StatusBadRequest, "BUDGET_OUT_OF_RANGE", "budgetPerDay must be between minBudget and maxBudget")
)

// Catalog errors
var (
	ErrDestinationNotFound      = newError(http.StatusNotFound, "DESTINATION_NOT_FOUND", "Destination not found")
	ErrDestinationAlreadyExists = newError(http.StatusConflict, "DESTINATION_ALREADY_EXISTS", "Destination already exists")
	ErrFoodSpotNotFound         = newError(http.StatusNotFound, "FOOD_SPOT_NOT_FOUND", "Food spot not found")
	ErrStayNotFound             = newError(http.StatusNotFound, "STAY_NOT_FOUND", "Stay not found")
	ErrLocalGemNotFound         = newError(http.StatusNotFound, "LOCAL_GEM_NOT_FOUND", "Local gem not found")
	ErrActivityNotFound         = newError(http.StatusNotFound, "ACTIVITY_NOT_FOUND", "Activity not found")
	ErrPackageNotFound          = newError(http.StatusNotFound, "PACKAGE_NOT_FOUND", "Package not found")
)

// ErrInternalError covers failures that are not the client's fault
var ErrInternalError = newError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")

// DatabaseExecuteError reports a failed store operation. The client sees the driver's message.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError wraps a store failure; details names the attempted operation
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return e.details + ": " + e.err.Error()
}

func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return e.err.Error() }
func (e *DatabaseExecuteError) Details() string   { return e.details }
func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
