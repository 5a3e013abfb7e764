package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type CreateTableRequest struct {
	Name    string `json:"name"`
	Columns string `json:"columns"`
}

type RenameRequest struct {
	Name string `json:"name"`
}

type AddColumnRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (h *Handler) ListTables(c echo.Context) error {
	tables, err := h.Svc.ListTables(c.Request().Context())
	if err != nil {
		return fail(c, "table.list", err)
	}
	return c.JSON(http.StatusOK, tables)
}

func (h *Handler) CreateTable(c echo.Context) error {
	const op = "table.create"
	var req CreateTableRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, op, "invalid body")
	}
	if err := h.Svc.CreateTable(c.Request().Context(), req.Name, req.Columns); err != nil {
		return fail(c, op, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"name": req.Name})
}

func (h *Handler) DescribeTable(c echo.Context) error {
	cols, err := h.Svc.DescribeTable(c.Request().Context(), c.Param("name"))
	if err != nil {
		return fail(c, "table.describe", err)
	}
	return c.JSON(http.StatusOK, cols)
}

func (h *Handler) DropTable(c echo.Context) error {
	if err := h.Svc.DropTable(c.Request().Context(), c.Param("name")); err != nil {
		return fail(c, "table.drop", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) RenameTable(c echo.Context) error {
	const op = "table.rename"
	var req RenameRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, op, "invalid body")
	}
	if err := h.Svc.RenameTable(c.Request().Context(), c.Param("name"), req.Name); err != nil {
		return fail(c, op, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"name": req.Name})
}

func (h *Handler) AddColumn(c echo.Context) error {
	const op = "table.add_column"
	var req AddColumnRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, op, "invalid body")
	}
	if err := h.Svc.AddColumn(c.Request().Context(), c.Param("name"), req.Name, req.Type); err != nil {
		return fail(c, op, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"name": req.Name, "type": req.Type})
}

func (h *Handler) RenameColumn(c echo.Context) error {
	const op = "table.rename_column"
	var req RenameRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, op, "invalid body")
	}
	if err := h.Svc.RenameColumn(c.Request().Context(), c.Param("name"), c.Param("column"), req.Name); err != nil {
		return fail(c, op, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DropColumn(c echo.Context) error {
	if err := h.Svc.DropColumn(c.Request().Context(), c.Param("name"), c.Param("column")); err != nil {
		return fail(c, "table.drop_column", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) TableRows(c echo.Context) error {
	res, err := h.Svc.TableContent(c.Request().Context(), c.Param("name"))
	if err != nil {
		return fail(c, "table.rows", err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) InsertRow(c echo.Context) error {
	const op = "table.insert_row"
	values, err := bindMap(c)
	if err != nil {
		return badRequest(c, op, "invalid body")
	}
	n, err := h.Svc.InsertRow(c.Request().Context(), c.Param("name"), values)
	if err != nil {
		return fail(c, op, err)
	}
	return c.JSON(http.StatusCreated, map[string]int64{"inserted": n})
}

func (h *Handler) ExportTable(c echo.Context) error {
	location, err := h.Svc.ExportTable(c.Request().Context(), c.Param("name"))
	if err != nil {
		return fail(c, "table.export", err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"location": location})
}
