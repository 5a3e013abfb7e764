package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/chrisdamba/foodadmin/internal/database"
	"github.com/chrisdamba/foodadmin/internal/logging"
	"github.com/chrisdamba/foodadmin/internal/repositories"
	"github.com/labstack/echo/v4"
)

type UpdateFieldRequest struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

type kindInfo struct {
	Kind       string   `json:"kind"`
	PrimaryKey string   `json:"primary_key"`
	Updatable  []string `json:"updatable"`
}

func (h *Handler) ListKinds(c echo.Context) error {
	var out []kindInfo
	for _, k := range h.Svc.Kinds() {
		t, err := database.TableFor(k)
		if err != nil {
			continue
		}
		out = append(out, kindInfo{Kind: k.String(), PrimaryKey: t.PrimaryKey, Updatable: t.UpdatableColumns()})
	}
	return c.JSON(http.StatusOK, out)
}

func parseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) ListEntities(c echo.Context) error {
	const op = "entity.list"
	ctx := c.Request().Context()

	limit, err := queryInt(c, "limit")
	if err != nil {
		return badRequest(c, op, "limit must be a non-negative integer")
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		return badRequest(c, op, "offset must be a non-negative integer")
	}

	items, err := h.Svc.ListEntities(ctx, c.Param("kind"), repositories.Page{Limit: limit, Offset: offset})
	if err != nil {
		return fail(c, op, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": map[string]any{
			"limit":  limit,
			"offset": offset,
			"count":  len(items),
		},
	})
}

// bindMap decodes a JSON object body. Path parameters are not merged in,
// unlike echo's default binder.
func bindMap(c echo.Context) (map[string]any, error) {
	var m map[string]any
	if err := json.NewDecoder(c.Request().Body).Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}

func (h *Handler) CreateEntity(c echo.Context) error {
	const op = "entity.create"
	ctx := c.Request().Context()

	fields, err := bindMap(c)
	if err != nil {
		return badRequest(c, op, "invalid body")
	}

	entity, err := h.Svc.CreateEntity(ctx, c.Param("kind"), fields)
	if err != nil {
		return fail(c, op, err)
	}

	logging.FromContext(ctx).Info("entity_created", "kind", entity.Kind(), "id", entity.PrimaryKey())
	return c.JSON(http.StatusCreated, entity)
}

func (h *Handler) GetEntity(c echo.Context) error {
	const op = "entity.get"
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, op, "id must be a positive integer")
	}

	entity, err := h.Svc.GetEntity(c.Request().Context(), c.Param("kind"), id)
	if err != nil {
		return fail(c, op, err)
	}
	return c.JSON(http.StatusOK, entity)
}

func (h *Handler) UpdateEntity(c echo.Context) error {
	const op = "entity.update"
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, op, "id must be a positive integer")
	}

	var req UpdateFieldRequest
	if err := c.Bind(&req); err != nil || req.Field == "" {
		return badRequest(c, op, "body must be {\"field\": ..., \"value\": ...}")
	}

	n, err := h.Svc.UpdateEntityField(c.Request().Context(), c.Param("kind"), id, req.Field, req.Value)
	if err != nil {
		return fail(c, op, err)
	}
	if n == 0 {
		return notFound(c, op, "no "+c.Param("kind")+" with id "+c.Param("id"))
	}
	return c.JSON(http.StatusOK, map[string]int64{"updated": n})
}

func (h *Handler) DeleteEntity(c echo.Context) error {
	const op = "entity.delete"
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, op, "id must be a positive integer")
	}

	n, err := h.Svc.DeleteEntity(c.Request().Context(), c.Param("kind"), id)
	if err != nil {
		return fail(c, op, err)
	}
	if n == 0 {
		return notFound(c, op, "no "+c.Param("kind")+" with id "+c.Param("id"))
	}
	return c.NoContent(http.StatusNoContent)
}
