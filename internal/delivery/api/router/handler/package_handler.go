package handler

import (
	"net/http"

	"trailpack/internal/delivery/api/response"
	"trailpack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PackageHandlerParams holds dependencies for PackageHandler, injected by Fx.
type PackageHandlerParams struct {
	fx.In

	PackageAdminUC usecase.PackageAdminUsecase
	PackageQueryUC usecase.PackageQueryUsecase
}

// PackageHandler serves the package admin routes and the public package reads
type PackageHandler struct {
	adminUC usecase.PackageAdminUsecase
	queryUC usecase.PackageQueryUsecase
}

// NewPackageHandler is the constructor for PackageHandler
func NewPackageHandler(params PackageHandlerParams) *PackageHandler {
	return &PackageHandler{
		adminUC: params.PackageAdminUC,
		queryUC: params.PackageQueryUC,
	}
}

// CreatePackageRequest represents the request body for creating a package
type CreatePackageRequest struct {
	DestinationID      string   `json:"destinationId" validate:"required,objectid"`
	Name               string   `json:"name" validate:"required"`
	Description        string   `json:"description"`
	BudgetPerDay       *float64 `json:"budgetPerDay" validate:"required,gte=0"`
	MinBudget          *float64 `json:"minBudget" validate:"required,gte=0"`
	MaxBudget          *float64 `json:"maxBudget" validate:"required,gte=0"`
	DefaultStayID      *string  `json:"defaultStayId" validate:"omitempty,objectid"`
	DefaultFoodSpotIDs []string `json:"defaultFoodSpotIds" validate:"dive,objectid"`
	DefaultLocalGemIDs []string `json:"defaultLocalGemIds" validate:"dive,objectid"`
	DefaultActivityIDs []string `json:"defaultActivityIds" validate:"dive,objectid"`
	Popularity         *float64 `json:"popularity" validate:"omitempty,gte=0"`
	Rating             *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	TotalBookings      *int64   `json:"totalBookings" validate:"omitempty,gte=0"`
	IsActive           *bool    `json:"isActive"`
}

// UpdatePackageRequest represents the request body for updating a package.
// Sending clearDefaultStay removes the default stay.
type UpdatePackageRequest struct {
	DestinationID      *string   `json:"destinationId" validate:"omitempty,objectid"`
	Name               *string   `json:"name"`
	Description        *string   `json:"description"`
	BudgetPerDay       *float64  `json:"budgetPerDay" validate:"omitempty,gte=0"`
	MinBudget          *float64  `json:"minBudget" validate:"omitempty,gte=0"`
	MaxBudget          *float64  `json:"maxBudget" validate:"omitempty,gte=0"`
	DefaultStayID      *string   `json:"defaultStayId" validate:"omitempty,objectid"`
	ClearDefaultStay   bool      `json:"clearDefaultStay"`
	DefaultFoodSpotIDs *[]string `json:"defaultFoodSpotIds" validate:"omitempty,dive,objectid"`
	DefaultLocalGemIDs *[]string `json:"defaultLocalGemIds" validate:"omitempty,dive,objectid"`
	DefaultActivityIDs *[]string `json:"defaultActivityIds" validate:"omitempty,dive,objectid"`
	Popularity         *float64  `json:"popularity" validate:"omitempty,gte=0"`
	Rating             *float64  `json:"rating" validate:"omitempty,gte=0,lte=5"`
	TotalBookings      *int64    `json:"totalBookings" validate:"omitempty,gte=0"`
	IsActive           *bool     `json:"isActive"`
}

// CreatePackage handles POST /package
func (h *PackageHandler) CreatePackage(c echo.Context) error {
	var req CreatePackageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ids := &idReader{}
	input := &usecase.CreatePackageInput{
		DestinationID:      ids.one("destinationId", req.DestinationID),
		Name:               req.Name,
		Description:        req.Description,
		BudgetPerDay:       *req.BudgetPerDay,
		MinBudget:          *req.MinBudget,
		MaxBudget:          *req.MaxBudget,
		DefaultStayID:      ids.optional("defaultStayId", req.DefaultStayID),
		DefaultFoodSpotIDs: ids.many("defaultFoodSpotIds", req.DefaultFoodSpotIDs),
		DefaultLocalGemIDs: ids.many("defaultLocalGemIds", req.DefaultLocalGemIDs),
		DefaultActivityIDs: ids.many("defaultActivityIds", req.DefaultActivityIDs),
		Popularity:         req.Popularity,
		Rating:             req.Rating,
		TotalBookings:      req.TotalBookings,
		IsActive:           req.IsActive,
	}
	if ids.err != nil {
		return ids.err
	}

	pkg, err := h.adminUC.CreatePackage(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Created(c, "Package created", pkg)
}

// UpdatePackage handles PUT /package/:id
func (h *PackageHandler) UpdatePackage(c echo.Context) error {
	id, err := parsePathID(c, "id", "package")
	if err != nil {
		return err
	}

	var req UpdatePackageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ids := &idReader{}
	input := &usecase.UpdatePackageInput{
		DestinationID:      ids.optional("destinationId", req.DestinationID),
		Name:               req.Name,
		Description:        req.Description,
		BudgetPerDay:       req.BudgetPerDay,
		MinBudget:          req.MinBudget,
		MaxBudget:          req.MaxBudget,
		DefaultStayID:      ids.optional("defaultStayId", req.DefaultStayID),
		ClearDefaultStay:   req.ClearDefaultStay,
		DefaultFoodSpotIDs: ids.optionalMany("defaultFoodSpotIds", req.DefaultFoodSpotIDs),
		DefaultLocalGemIDs: ids.optionalMany("defaultLocalGemIds", req.DefaultLocalGemIDs),
		DefaultActivityIDs: ids.optionalMany("defaultActivityIds", req.DefaultActivityIDs),
		Popularity:         req.Popularity,
		Rating:             req.Rating,
		TotalBookings:      req.TotalBookings,
		IsActive:           req.IsActive,
	}
	if ids.err != nil {
		return ids.err
	}

	pkg, err := h.adminUC.UpdatePackage(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return response.OK(c, "Package updated", pkg)
}

// DeletePackage handles DELETE /package/:id
func (h *PackageHandler) DeletePackage(c echo.Context) error {
	id, err := parsePathID(c, "id", "package")
	if err != nil {
		return err
	}

	if err := h.adminUC.DeletePackage(c.Request().Context(), id); err != nil {
		return err
	}

	return response.OK(c, "Package deleted", nil)
}

// ListByDestination handles GET /packages/destination/:destinationId
func (h *PackageHandler) ListByDestination(c echo.Context) error {
	destinationID, err := parsePathID(c, "destinationId", "destination")
	if err != nil {
		return err
	}

	packages, err := h.queryUC.ListPackagesByDestination(c.Request().Context(), &usecase.ListPackagesInput{
		DestinationID: destinationID,
		MinBudget:     c.QueryParam("minBudget"),
		MaxBudget:     c.QueryParam("maxBudget"),
		SortBy:        c.QueryParam("sortBy"),
	})
	if err != nil {
		return err
	}

	return response.List(c, "OK", packages)
}

// GetDetail handles GET /packages/:id
func (h *PackageHandler) GetDetail(c echo.Context) error {
	id, err := parsePathID(c, "id", "package")
	if err != nil {
		return err
	}

	detail, err := h.queryUC.GetPackageDetail(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, "OK", detail)
}

// GetShareQR handles GET /packages/:id/qr
func (h *PackageHandler) GetShareQR(c echo.Context) error {
	id, err := parsePathID(c, "id", "package")
	if err != nil {
		return err
	}

	png, err := h.queryUC.GetPackageShareQR(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
