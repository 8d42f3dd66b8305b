package handler

import (
	"trailpack/internal/delivery/api/response"
	"trailpack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	FoodSpotUC usecase.FoodSpotUsecase
	StayUC     usecase.StayUsecase
	LocalGemUC usecase.LocalGemUsecase
	ActivityUC usecase.ActivityUsecase
}

// CatalogHandler serves the admin routes of the items a package can reference
type CatalogHandler struct {
	foodSpotUC usecase.FoodSpotUsecase
	stayUC     usecase.StayUsecase
	localGemUC usecase.LocalGemUsecase
	activityUC usecase.ActivityUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		foodSpotUC: params.FoodSpotUC,
		stayUC:     params.StayUC,
		localGemUC: params.LocalGemUC,
		activityUC: params.ActivityUC,
	}
}

// CreateFoodSpotRequest represents the request body for creating a food spot
type CreateFoodSpotRequest struct {
	Name          string   `json:"name" validate:"required"`
	Type          string   `json:"type"`
	Images        []string `json:"images"`
	Description   string   `json:"description"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	DestinationID string   `json:"destinationId" validate:"required,objectid"`
}

// UpdateFoodSpotRequest represents the request body for updating a food spot
type UpdateFoodSpotRequest struct {
	Name          *string   `json:"name"`
	Type          *string   `json:"type"`
	Images        *[]string `json:"images"`
	Description   *string   `json:"description"`
	Price         *float64  `json:"price" validate:"omitempty,gte=0"`
	DestinationID *string   `json:"destinationId" validate:"omitempty,objectid"`
}

// CreateStayRequest represents the request body for creating a stay
type CreateStayRequest struct {
	Name          string   `json:"name" validate:"required"`
	Type          string   `json:"type"`
	Images        []string `json:"images"`
	Description   string   `json:"description"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	Rating        *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	DestinationID string   `json:"destinationId" validate:"required,objectid"`
}

// UpdateStayRequest represents the request body for updating a stay
type UpdateStayRequest struct {
	Name          *string   `json:"name"`
	Type          *string   `json:"type"`
	Images        *[]string `json:"images"`
	Description   *string   `json:"description"`
	Price         *float64  `json:"price" validate:"omitempty,gte=0"`
	Rating        *float64  `json:"rating" validate:"omitempty,gte=0,lte=5"`
	DestinationID *string   `json:"destinationId" validate:"omitempty,objectid"`
}

// CreateLocalGemRequest represents the request body for creating a local gem
type CreateLocalGemRequest struct {
	Name          string   `json:"name" validate:"required"`
	Images        []string `json:"images"`
	Description   string   `json:"description"`
	DestinationID string   `json:"destinationId" validate:"required,objectid"`
}

// UpdateLocalGemRequest represents the request body for updating a local gem
type UpdateLocalGemRequest struct {
	Name          *string   `json:"name"`
	Images        *[]string `json:"images"`
	Description   *string   `json:"description"`
	DestinationID *string   `json:"destinationId" validate:"omitempty,objectid"`
}

// CreateActivityRequest represents the request body for creating an activity
type CreateActivityRequest struct {
	Name          string   `json:"name" validate:"required"`
	Type          string   `json:"type"`
	Images        []string `json:"images"`
	Description   string   `json:"description"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	DurationHours float64  `json:"durationHours" validate:"gte=0"`
	DestinationID string   `json:"destinationId" validate:"required,objectid"`
}

// UpdateActivityRequest represents the request body for updating an activity
type UpdateActivityRequest struct {
	Name          *string   `json:"name"`
	Type          *string   `json:"type"`
	Images        *[]string `json:"images"`
	Description   *string   `json:"description"`
	Price         *float64  `json:"price" validate:"omitempty,gte=0"`
	DurationHours *float64  `json:"durationHours" validate:"omitempty,gte=0"`
	DestinationID *string   `json:"destinationId" validate:"omitempty,objectid"`
}

// CreateFoodSpot handles POST /foodspot
func (h *CatalogHandler) CreateFoodSpot(c echo.Context) error {
	var req CreateFoodSpotRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ids := &idReader{}
	input := &usecase.CreateFoodSpotInput{
		Name:          req.Name,
		Type:          req.Type,
		Images:        req.Images,
		Description:   req.Description,
		Price:         req.Price,
		DestinationID: ids.one("destinationId", req.DestinationID),
	}
	if ids.err != nil {
		return ids.err
	}

	foodSpot, err := h.foodSpotUC.CreateFoodSpot(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Created(c, "Food spot created", foodSpot)
}

// UpdateFoodSpot handles PUT /foodspot/:id
func (h *CatalogHandler) UpdateFoodSpot(c echo.Context) error {
	id, err := parsePathID(c, "id", "foodspot")
	if err != nil {
		return err
	}

	var req UpdateFoodSpotRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ids := &idReader{}
	input := &usecase.UpdateFoodSpotInput{
		Name:          req.Name,
		Type:          req.Type,
		Images:        req.Images,
		Description:   req.Description,
		Price:         req.Price,
		DestinationID: ids.optional("destinationId", req.DestinationID),
	}
	if ids.err != nil {
		return ids.err
	}

	foodSpot, err := h.foodSpotUC.UpdateFoodSpot(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return response.OK(c, "Food spot updated", foodSpot)
}

// DeleteFoodSpot handles DELETE /foodspot/:id
func (h *CatalogHandler) DeleteFoodSpot(c echo.Context) error {
	id, err := parsePathID(c, "id", "foodspot")
	if err != nil {
		return err
	}

	if err := h.foodSpotUC.DeleteFoodSpot(c.Request().Context(), id); err != nil {
		return err
	}

	return response.OK(c, "Food spot deleted", nil)
}

// CreateStay handles POST /stay
func (h *CatalogHandler) CreateStay(c echo.Context) error {
	var req CreateStayRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ids := &idReader{}
	input := &usecase.CreateStayInput{
		Name:          req.Name,
		Type:          req.Type,
		Images:        req.Images,
		Description:   req.Description,
		Price:         req.Price,
		Rating:        req.Rating,
		DestinationID: ids.one("destinationId", req.DestinationID),
	}
	if ids.err != nil {
		return ids.err
	}

	stay, err := h.stayUC.CreateStay(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Created(c, "Stay created", stay)
}

// UpdateStay handles PUT /stay/:id
func (h *CatalogHandler) UpdateStay(c echo.Context) error {
	id, err := parsePathID(c, "id", "stay")
	if err != nil {
		return err
	}

	var req UpdateStayRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ids := &idReader{}
	input := &usecase.UpdateStayInput{
		Name:          req.Name,
		Type:          req.Type,
		Images:        req.Images,
		Description:   req.Description,
		Price:         req.Price,
		Rating:        req.Rating,
		DestinationID: ids.optional("destinationId", req.DestinationID),
	}
	if ids.err != nil {
		return ids.err
	}

	stay, err := h.stayUC.UpdateStay(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return response.OK(c, "Stay updated", stay)
}

// DeleteStay handles DELETE /stay/:id
func (h *CatalogHandler) DeleteStay(c echo.Context) error {
	id, err := parsePathID(c, "id", "stay")
	if err != nil {
		return err
	}

	if err := h.stayUC.DeleteStay(c.Request().Context(), id); err != nil {
		return err
	}

	return response.OK(c, "Stay deleted", nil)
}

// CreateLocalGem handles POST /localgem
func (h *CatalogHandler) CreateLocalGem(c echo.Context) error {
	var req CreateLocalGemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ids := &idReader{}
	input := &usecase.CreateLocalGemInput{
		Name:          req.Name,
		Images:        req.Images,
		Description:   req.Description,
		DestinationID: ids.one("destinationId", req.DestinationID),
	}
	if ids.err != nil {
		return ids.err
	}

	gem, err := h.localGemUC.CreateLocalGem(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Created(c, "Local gem created", gem)
}

// UpdateLocalGem handles PUT /localgem/:id
func (h *CatalogHandler) UpdateLocalGem(c echo.Context) error {
	id, err := parsePathID(c, "id", "local gem")
	if err != nil {
		return err
	}

	var req UpdateLocalGemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ids := &idReader{}
	input := &usecase.UpdateLocalGemInput{
		Name:          req.Name,
		Images:        req.Images,
		Description:   req.Description,
		DestinationID: ids.optional("destinationId", req.DestinationID),
	}
	if ids.err != nil {
		return ids.err
	}

	gem, err := h.localGemUC.UpdateLocalGem(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return response.OK(c, "Local gem updated", gem)
}

// DeleteLocalGem handles DELETE /localgem/:id
func (h *CatalogHandler) DeleteLocalGem(c echo.Context) error {
	id, err := parsePathID(c, "id", "local gem")
	if err != nil {
		return err
	}

	if err := h.localGemUC.DeleteLocalGem(c.Request().Context(), id); err != nil {
		return err
	}

	return response.OK(c, "Local gem deleted", nil)
}

// CreateActivity handles POST /activity
func (h *CatalogHandler) CreateActivity(c echo.Context) error {
	var req CreateActivityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ids := &idReader{}
	input := &usecase.CreateActivityInput{
		Name:          req.Name,
		Type:          req.Type,
		Images:        req.Images,
		Description:   req.Description,
		Price:         req.Price,
		DurationHours: req.DurationHours,
		DestinationID: ids.one("destinationId", req.DestinationID),
	}
	if ids.err != nil {
		return ids.err
	}

	activity, err := h.activityUC.CreateActivity(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Created(c, "Activity created", activity)
}

// UpdateActivity handles PUT /activity/:id
func (h *CatalogHandler) UpdateActivity(c echo.Context) error {
	id, err := parsePathID(c, "id", "activity")
	if err != nil {
		return err
	}

	var req UpdateActivityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ids := &idReader{}
	input := &usecase.UpdateActivityInput{
		Name:          req.Name,
		Type:          req.Type,
		Images:        req.Images,
		Description:   req.Description,
		Price:         req.Price,
		DurationHours: req.DurationHours,
		DestinationID: ids.optional("destinationId", req.DestinationID),
	}
	if ids.err != nil {
		return ids.err
	}

	activity, err := h.activityUC.UpdateActivity(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return response.OK(c, "Activity updated", activity)
}

// DeleteActivity handles DELETE /activity/:id
func (h *CatalogHandler) DeleteActivity(c echo.Context) error {
	id, err := parsePathID(c, "id", "activity")
	if err != nil {
		return err
	}

	if err := h.activityUC.DeleteActivity(c.Request().Context(), id); err != nil {
		return err
	}

	return response.OK(c, "Activity deleted", nil)
}
