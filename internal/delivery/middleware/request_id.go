// Package middleware holds the echo middleware shared by every transport.
package middleware

import (
	"log/slog"

	deliverycontext "trailpack/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength caps client supplied request ids.
const maxRequestIDLength = 64

// RequestIDMiddleware tags each request with an id and a logger carrying it
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process keeps an incoming X-Request-Id of sane length and generates one otherwise.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		id := req.Header.Get(deliverycontext.HeaderXRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, id)

		scope := &deliverycontext.Scope{
			RequestID: id,
			Logger:    m.logger.With(slog.String("request_id", id)),
		}
		c.SetRequest(req.WithContext(deliverycontext.WithScope(req.Context(), scope)))

		return next(c)
	}
}
