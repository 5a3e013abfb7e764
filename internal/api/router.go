package api

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	ecM "github.com/labstack/echo/v4/middleware"
)

type Deps struct {
	Handler *Handler
	Logger  *slog.Logger
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = HTTPErrorHandler
	e.Use(ecM.Recover(), ecM.RequestID(), RequestLogger(d.Logger))

	h := d.Handler
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if err := h.Svc.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "unavailable", Message: "database unreachable"})
		}
		return c.NoContent(http.StatusOK)
	})

	api := e.Group("/api")

	entities := api.Group("/entities")
	entities.GET("", h.ListKinds)
	entities.GET("/:kind", h.ListEntities)
	entities.POST("/:kind", h.CreateEntity)
	entities.GET("/:kind/:id", h.GetEntity)
	entities.PATCH("/:kind/:id", h.UpdateEntity)
	entities.DELETE("/:kind/:id", h.DeleteEntity)

	queries := api.Group("/queries")
	queries.GET("", h.ListQueries)
	queries.GET("/:id", h.RunQuery)
	queries.POST("/:id/export", h.ExportQuery)

	tables := api.Group("/tables")
	tables.GET("", h.ListTables)
	tables.POST("", h.CreateTable)
	tables.GET("/:name", h.DescribeTable)
	tables.DELETE("/:name", h.DropTable)
	tables.PATCH("/:name", h.RenameTable)
	tables.POST("/:name/columns", h.AddColumn)
	tables.PATCH("/:name/columns/:column", h.RenameColumn)
	tables.DELETE("/:name/columns/:column", h.DropColumn)
	tables.GET("/:name/rows", h.TableRows)
	tables.POST("/:name/rows", h.InsertRow)
	tables.POST("/:name/export", h.ExportTable)

	api.POST("/seed", h.Seed)
	api.POST("/counters/refresh", h.RefreshCounters)
}
