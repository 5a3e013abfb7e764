package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chrisdamba/foodadmin/internal/database"
	"github.com/chrisdamba/foodadmin/internal/logging"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/repositories"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDashboard implements only what the tests call; anything else panics.
type fakeDashboard struct {
	Dashboard

	pingErr  error
	affected int64
	err      error

	gotKind   string
	gotID     int64
	gotField  string
	gotValue  any
	gotFields map[string]any
	gotPage   repositories.Page
}

func (f *fakeDashboard) Ping(context.Context) error { return f.pingErr }

func (f *fakeDashboard) Kinds() []models.Kind { return models.Kinds }

func (f *fakeDashboard) ListEntities(_ context.Context, kind string, page repositories.Page) ([]models.Entity, error) {
	f.gotKind, f.gotPage = kind, page
	if f.err != nil {
		return nil, f.err
	}
	return []models.Entity{&models.Restaurant{ID: 1, Name: "Luigi's", Rating: 4.5}}, nil
}

func (f *fakeDashboard) CreateEntity(_ context.Context, kind string, fields map[string]any) (models.Entity, error) {
	f.gotKind, f.gotFields = kind, fields
	if f.err != nil {
		return nil, f.err
	}
	return &models.Customer{ID: 7, Name: "Ana", Email: "ana@x.com"}, nil
}

func (f *fakeDashboard) GetEntity(_ context.Context, kind string, id int64) (models.Entity, error) {
	f.gotKind, f.gotID = kind, id
	return nil, f.err
}

func (f *fakeDashboard) UpdateEntityField(_ context.Context, kind string, id int64, field string, value any) (int64, error) {
	f.gotKind, f.gotID, f.gotField, f.gotValue = kind, id, field, value
	return f.affected, f.err
}

func (f *fakeDashboard) DeleteEntity(_ context.Context, kind string, id int64) (int64, error) {
	f.gotKind, f.gotID = kind, id
	return f.affected, f.err
}

func (f *fakeDashboard) RenameColumn(context.Context, string, string, string) error {
	return fmt.Errorf("%w: renaming column", database.ErrUnsupportedOperation)
}

func (f *fakeDashboard) InsertRow(_ context.Context, table string, values map[string]any) (int64, error) {
	f.gotFields = values
	return 1, f.err
}

func newServer(svc Dashboard) *echo.Echo {
	e := echo.New()
	Register(e, &Deps{
		Handler: NewHandler(svc),
		Logger:  logging.NewWithWriter(io.Discard, "error"),
	})
	return e
}

func do(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	e := newServer(&fakeDashboard{})
	assert.Equal(t, http.StatusOK, do(t, e, http.MethodGet, "/health/live", "").Code)
	assert.Equal(t, http.StatusOK, do(t, e, http.MethodGet, "/health/ready", "").Code)

	e = newServer(&fakeDashboard{pingErr: errors.New("connection refused")})
	assert.Equal(t, http.StatusServiceUnavailable, do(t, e, http.MethodGet, "/health/ready", "").Code)
}

func TestListEntities(t *testing.T) {
	svc := &fakeDashboard{}
	e := newServer(svc)

	rec := do(t, e, http.MethodGet, "/api/entities/restaurants?limit=5&offset=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "restaurants", svc.gotKind)
	assert.Equal(t, repositories.Page{Limit: 5, Offset: 10}, svc.gotPage)

	var body struct {
		Data []map[string]any `json:"data"`
		Meta map[string]int   `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Luigi's", body.Data[0]["name"])
	assert.Equal(t, 1, body.Meta["count"])

	rec = do(t, e, http.MethodGet, "/api/entities/restaurants?limit=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_input", decodeError(t, rec).Error)
}

func TestCreateEntity(t *testing.T) {
	svc := &fakeDashboard{}
	e := newServer(svc)

	rec := do(t, e, http.MethodPost, "/api/entities/customers", `{"name":"Ana","email":"ana@x.com","is_premium":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "customers", svc.gotKind)
	assert.Equal(t, map[string]any{"name": "Ana", "email": "ana@x.com", "is_premium": true}, svc.gotFields)

	var got models.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.EqualValues(t, 7, got.ID)

	rec = do(t, e, http.MethodPost, "/api/entities/customers", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateEntityConflict(t *testing.T) {
	svc := &fakeDashboard{err: database.Wrap("INSERT", &pgconn.PgError{Code: "23505", Message: "duplicate key"})}
	rec := do(t, newServer(svc), http.MethodPost, "/api/entities/customers", `{"name":"Ana","email":"ana@x.com"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "constraint_violation", decodeError(t, rec).Error)
}

func TestUpdateEntity(t *testing.T) {
	svc := &fakeDashboard{affected: 1}
	e := newServer(svc)

	rec := do(t, e, http.MethodPatch, "/api/entities/restaurants/3", `{"field":"rating","value":4.5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"updated":1}`, rec.Body.String())
	assert.EqualValues(t, 3, svc.gotID)
	assert.Equal(t, "rating", svc.gotField)
	assert.Equal(t, 4.5, svc.gotValue)

	svc.affected = 0
	rec = do(t, e, http.MethodPatch, "/api/entities/restaurants/999", `{"field":"rating","value":4.5}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Error)

	rec = do(t, e, http.MethodPatch, "/api/entities/restaurants/3", `{"value":4.5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	svc.err = fmt.Errorf("%w: \"secret\" is not an updatable restaurants field", database.ErrInvalidIdentifier)
	rec = do(t, e, http.MethodPatch, "/api/entities/restaurants/3", `{"field":"secret","value":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_identifier", decodeError(t, rec).Error)
}

func TestGetEntityErrors(t *testing.T) {
	svc := &fakeDashboard{err: fmt.Errorf("customers 7: %w", database.ErrNotFound)}
	e := newServer(svc)

	rec := do(t, e, http.MethodGet, "/api/entities/customers/7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Error)

	rec = do(t, e, http.MethodGet, "/api/entities/customers/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/entities/customers/0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteEntity(t *testing.T) {
	svc := &fakeDashboard{affected: 1}
	e := newServer(svc)

	rec := do(t, e, http.MethodDelete, "/api/entities/orders/5", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	svc.affected = 0
	rec = do(t, e, http.MethodDelete, "/api/entities/orders/5", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	svc.err = database.Wrap("DELETE", &pgconn.PgError{Code: "23503"})
	rec = do(t, e, http.MethodDelete, "/api/entities/customers/1", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestInternalErrorsAreHidden(t *testing.T) {
	svc := &fakeDashboard{err: errors.New("pool exhausted at 10.0.0.3")}
	rec := do(t, newServer(svc), http.MethodDelete, "/api/entities/orders/5", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "internal", resp.Error)
	assert.Equal(t, "internal error", resp.Message)
}

func TestUnsupportedColumnChange(t *testing.T) {
	rec := do(t, newServer(&fakeDashboard{}), http.MethodPatch, "/api/tables/customers/columns/name", `{"name":"full_name"}`)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.Equal(t, "unsupported_operation", decodeError(t, rec).Error)
}

func TestInsertRowIgnoresPathParams(t *testing.T) {
	svc := &fakeDashboard{}
	rec := do(t, newServer(svc), http.MethodPost, "/api/tables/promotions/rows", `{"code":"SPRING"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, map[string]any{"code": "SPRING"}, svc.gotFields)
}

func TestUnknownRoute(t *testing.T) {
	rec := do(t, newServer(&fakeDashboard{}), http.MethodGet, "/api/nothing-here", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Error)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusFor(database.ErrMalformedQuery))
	assert.Equal(t, http.StatusBadRequest, StatusFor(database.ErrInvalidInput))
	assert.Equal(t, http.StatusNotFound, StatusFor(database.ErrNotFound))
	assert.Equal(t, http.StatusConflict, StatusFor(database.ErrConstraintViolation))
	assert.Equal(t, http.StatusNotImplemented, StatusFor(database.ErrUnsupportedOperation))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(errors.New("boom")))
}
