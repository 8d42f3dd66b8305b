// Package response renders the JSON envelopes of the HTTP API.
package response

import (
	"net/http"

	deliverycontext "trailpack/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SuccessResponse is the envelope of every successful JSON response
type SuccessResponse struct {
	Message  string `json:"message"`
	Count    *int   `json:"count,omitempty"`
	Response any    `json:"response,omitempty"`
}

// ErrorResponse is the envelope of every error response
type ErrorResponse struct {
	Message string    `json:"message"`
	Code    string    `json:"code"`
	Meta    *MetaInfo `json:"meta"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Message:  message,
		Response: data,
	})
}

// Created returns a 201 response
func Created(c echo.Context, message string, data any) error {
	return Success(c, http.StatusCreated, message, data)
}

// OK returns a 200 response
func OK(c echo.Context, message string, data any) error {
	return Success(c, http.StatusOK, message, data)
}

// List returns a 200 response carrying a collection and its size
func List[T any](c echo.Context, message string, items []T) error {
	if items == nil {
		items = []T{}
	}
	count := len(items)

	return c.JSON(http.StatusOK, SuccessResponse{
		Message:  message,
		Count:    &count,
		Response: items,
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Message: message,
		Code:    errorCode,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}
