package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trailpack/config"
	"trailpack/internal/delivery/api/router"
	"trailpack/internal/delivery/api/router/handler"
	"trailpack/internal/infra/persistence/postgres"
	"trailpack/internal/infra/qrcode"
	"trailpack/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Message  string          `json:"message"`
	Code     string          `json:"code"`
	Count    *int            `json:"count"`
	Response json.RawMessage `json:"response"`
	Meta     *struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestEcho(t *testing.T, mutate func(cfg *config.Config)) *echo.Echo {
	t.Helper()

	db, err := postgres.OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(context.Background(), db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Catalog.DeletePolicy = "orphan"
	if mutate != nil {
		mutate(cfg)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	destinations := postgres.NewDestinationRepository(db)
	foodSpots := postgres.NewFoodSpotRepository(db)
	stays := postgres.NewStayRepository(db)
	localGems := postgres.NewLocalGemRepository(db)
	activities := postgres.NewActivityRepository(db)
	packages := postgres.NewPackageRepository(db)

	r := router.NewRouter(router.RouterParams{
		DestinationHandler: handler.NewDestinationHandler(handler.DestinationHandlerParams{
			DestinationUC: impl.NewDestinationService(destinations, foodSpots, stays, localGems, activities, packages, cfg, logger),
		}),
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{
			FoodSpotUC: impl.NewFoodSpotService(foodSpots),
			StayUC:     impl.NewStayService(stays),
			LocalGemUC: impl.NewLocalGemService(localGems),
			ActivityUC: impl.NewActivityService(activities),
		}),
		PackageHandler: handler.NewPackageHandler(handler.PackageHandlerParams{
			PackageAdminUC: impl.NewPackageAdminService(packages, cfg),
			PackageQueryUC: impl.NewPackageQueryService(packages, destinations, stays, foodSpots, localGems, activities,
				qrcode.NewQRCodeService(128, "M", "https://trailpack.example"), logger),
		}),
		Config: cfg,
	})

	return NewEcho(cfg, logger, r)
}

func do(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func decodeID(t *testing.T, raw json.RawMessage) string {
	t.Helper()

	var doc struct {
		ID string `json:"_id"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.NotEmpty(t, doc.ID)

	return doc.ID
}

func TestHealth(t *testing.T) {
	e := newTestEcho(t, nil)

	rec, env := do(t, e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", env.Message)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestAlappuzhaScenario(t *testing.T) {
	e := newTestEcho(t, nil)

	rec, env := do(t, e, http.MethodPost, "/destination", `{"name":"Alappuzha","category":"Beach"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Destination created", env.Message)
	destinationID := decodeID(t, env.Response)

	rec, env = do(t, e, http.MethodPost, "/stay",
		`{"name":"Lake Palace","price":3500,"rating":4.5,"destinationId":"`+destinationID+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	stayID := decodeID(t, env.Response)

	rec, env = do(t, e, http.MethodPost, "/package", `{
		"destinationId":"`+destinationID+`",
		"name":"Backwater Escape",
		"budgetPerDay":1000,"minBudget":500,"maxBudget":2000,
		"defaultStayId":"`+stayID+`"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	packageID := decodeID(t, env.Response)

	for _, prefix := range []string{"", "/api/v1"} {
		rec, env = do(t, e, http.MethodGet, prefix+"/packages/destination/"+destinationID+"?minBudget=500", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.NotNil(t, env.Count)
		assert.Equal(t, 1, *env.Count)
	}

	rec, env = do(t, e, http.MethodGet, "/packages/"+packageID, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var detail struct {
		Name        string `json:"name"`
		DefaultStay *struct {
			Name string `json:"name"`
		} `json:"defaultStay"`
		DefaultFoodSpots []json.RawMessage `json:"defaultFoodSpots"`
	}
	require.NoError(t, json.Unmarshal(env.Response, &detail))
	assert.Equal(t, "Backwater Escape", detail.Name)
	require.NotNil(t, detail.DefaultStay)
	assert.Equal(t, "Lake Palace", detail.DefaultStay.Name)
	assert.NotNil(t, detail.DefaultFoodSpots)
	assert.Empty(t, detail.DefaultFoodSpots)

	rec, env = do(t, e, http.MethodDelete, "/destination/"+destinationID, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Destination deleted", env.Message)

	// Orphaned packages remain readable by id
	rec, _ = do(t, e, http.MethodGet, "/packages/"+packageID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = do(t, e, http.MethodGet, "/packages/destination/"+destinationID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "DESTINATION_NOT_FOUND", env.Code)
}

func TestAdminErrors(t *testing.T) {
	e := newTestEcho(t, nil)

	rec, _ := do(t, e, http.MethodPost, "/destination", `{"name":"Goa","category":"Beach"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		wantCode int
		wantErr  string
	}{
		{"duplicate destination", http.MethodPost, "/destination", `{"name":"Goa","category":"Beach"}`, http.StatusConflict, "DESTINATION_ALREADY_EXISTS"},
		{"unknown category", http.MethodPost, "/destination", `{"name":"Ooty","category":"Desert"}`, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"missing name", http.MethodPost, "/destination", `{"category":"Beach"}`, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"malformed stay id", http.MethodPut, "/stay/not-an-id", `{"name":"x"}`, http.StatusBadRequest, "INVALID_ID"},
		{"unknown stay", http.MethodPut, "/stay/65a1b2c3d4e5f60718293a4b", `{"name":"x"}`, http.StatusNotFound, "STAY_NOT_FOUND"},
		{"food spot without destination", http.MethodPost, "/foodspot", `{"name":"Paragon"}`, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"malformed destination reference", http.MethodPost, "/localgem", `{"name":"Marari","destinationId":"abc"}`, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"non numeric budget", http.MethodGet, "/packages/destination/65a1b2c3d4e5f60718293a4b?minBudget=cheap", "", http.StatusBadRequest, "VALIDATION_FAILED"},
		{"malformed package id", http.MethodGet, "/api/v1/packages/xyz", "", http.StatusBadRequest, "INVALID_ID"},
		{"unknown route", http.MethodGet, "/nowhere", "", http.StatusNotFound, "ROUTE_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, e, tt.method, tt.target, tt.body)

			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantErr, env.Code)
			require.NotNil(t, env.Meta)
			assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), env.Meta.RequestID)
		})
	}
}

func TestPackageShareQR(t *testing.T) {
	e := newTestEcho(t, nil)

	rec, env := do(t, e, http.MethodPost, "/destination", `{"name":"Munnar","category":"Mountains & Outdoors"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	destinationID := decodeID(t, env.Response)

	rec, env = do(t, e, http.MethodPost, "/package",
		`{"destinationId":"`+destinationID+`","name":"Tea Trails","budgetPerDay":1500,"minBudget":1000,"maxBudget":3000}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	packageID := decodeID(t, env.Response)

	rec, _ = do(t, e, http.MethodGet, "/packages/"+packageID+"/qr", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte("\x89PNG"), rec.Body.Bytes()[:4])
}

func TestPublicRateLimit(t *testing.T) {
	e := newTestEcho(t, func(cfg *config.Config) {
		cfg.HTTP.RateLimit = &config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, Burst: 1}
	})

	target := "/packages/65a1b2c3d4e5f60718293a4b"
	rec, _ := do(t, e, http.MethodGet, target, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env := do(t, e, http.MethodGet, target, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMITED", env.Code)

	// Admin routes are not throttled
	rec, _ = do(t, e, http.MethodPost, "/destination", `{"name":"Hampi","category":"Culture & Heritage"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
