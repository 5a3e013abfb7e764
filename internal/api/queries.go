package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ListQueries(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Svc.Queries())
}

func (h *Handler) RunQuery(c echo.Context) error {
	res, err := h.Svc.RunQuery(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, "query.run", err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ExportQuery(c echo.Context) error {
	location, err := h.Svc.ExportQuery(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, "query.export", err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"location": location})
}

func (h *Handler) Seed(c echo.Context) error {
	results, err := h.Svc.Seed(c.Request().Context())
	if err != nil {
		return fail(c, "seed", err)
	}
	return c.JSON(http.StatusOK, results)
}

func (h *Handler) RefreshCounters(c echo.Context) error {
	n, err := h.Svc.RefreshCounters(c.Request().Context())
	if err != nil {
		return fail(c, "counters.refresh", err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"updated": n})
}
