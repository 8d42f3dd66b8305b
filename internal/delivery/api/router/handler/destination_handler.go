package handler

import (
	"trailpack/internal/delivery/api/response"
	"trailpack/internal/domain/entity"
	"trailpack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DestinationHandlerParams holds dependencies for DestinationHandler, injected by Fx.
type DestinationHandlerParams struct {
	fx.In

	DestinationUC usecase.DestinationUsecase
}

// DestinationHandler serves the destination admin routes
type DestinationHandler struct {
	destinationUC usecase.DestinationUsecase
}

// NewDestinationHandler is the constructor for DestinationHandler
func NewDestinationHandler(params DestinationHandlerParams) *DestinationHandler {
	return &DestinationHandler{
		destinationUC: params.DestinationUC,
	}
}

// CreateDestinationRequest represents the request body for creating a destination
type CreateDestinationRequest struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required,destination_category"`
	Country     string   `json:"country"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// UpdateDestinationRequest represents the request body for updating a destination
type UpdateDestinationRequest struct {
	Name        *string   `json:"name"`
	Category    *string   `json:"category" validate:"omitempty,destination_category"`
	Country     *string   `json:"country"`
	Rating      *float64  `json:"rating" validate:"omitempty,gte=0"`
	Description *string   `json:"description"`
	Images      *[]string `json:"images"`
}

// CreateDestination handles POST /destination
func (h *DestinationHandler) CreateDestination(c echo.Context) error {
	var req CreateDestinationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	destination, err := h.destinationUC.CreateDestination(c.Request().Context(), &usecase.CreateDestinationInput{
		Name:        req.Name,
		Category:    entity.Category(req.Category),
		Country:     req.Country,
		Rating:      req.Rating,
		Description: req.Description,
		Images:      req.Images,
	})
	if err != nil {
		return err
	}

	return response.Created(c, "Destination created", destination)
}

// UpdateDestination handles PUT /destination/:id
func (h *DestinationHandler) UpdateDestination(c echo.Context) error {
	id, err := parsePathID(c, "id", "destination")
	if err != nil {
		return err
	}

	var req UpdateDestinationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.UpdateDestinationInput{
		Name:        req.Name,
		Country:     req.Country,
		Rating:      req.Rating,
		Description: req.Description,
		Images:      req.Images,
	}
	if req.Category != nil {
		category := entity.Category(*req.Category)
		input.Category = &category
	}

	destination, err := h.destinationUC.UpdateDestination(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return response.OK(c, "Destination updated", destination)
}

// DeleteDestination handles DELETE /destination/:id
func (h *DestinationHandler) DeleteDestination(c echo.Context) error {
	id, err := parsePathID(c, "id", "destination")
	if err != nil {
		return err
	}

	result, err := h.destinationUC.DeleteDestination(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, "Destination deleted", result)
}
