package api

import (
	"errors"
	"net/http"

	"github.com/chrisdamba/foodadmin/internal/database"
	"github.com/chrisdamba/foodadmin/internal/logging"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(err error) int {
	switch database.Classify(err) {
	case database.ErrInvalidInput, database.ErrInvalidIdentifier, database.ErrMalformedQuery:
		return http.StatusBadRequest
	case database.ErrNotFound:
		return http.StatusNotFound
	case database.ErrConstraintViolation:
		return http.StatusConflict
	case database.ErrUnsupportedOperation:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func fail(c echo.Context, op string, err error) error {
	l := logging.FromContext(c.Request().Context()).With("handler", op)
	status := StatusFor(err)

	resp := ErrorResponse{Error: database.KindName(err), Message: err.Error()}
	if status >= http.StatusInternalServerError {
		l.Error(op+"_failed", "status", status, "error", err)
		resp.Message = "internal error"
	} else {
		l.Warn(op+"_failed", "status", status, "error", err)
	}
	return c.JSON(status, resp)
}

func badRequest(c echo.Context, op, message string) error {
	logging.FromContext(c.Request().Context()).With("handler", op).
		Warn(op+"_failed", "status", http.StatusBadRequest, "reason", message)
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_input", Message: message})
}

func notFound(c echo.Context, op, message string) error {
	logging.FromContext(c.Request().Context()).With("handler", op).
		Warn(op+"_failed", "status", http.StatusNotFound, "reason", message)
	return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not_found", Message: message})
}

// HTTPErrorHandler renders errors that escape the handlers, such as unknown
// routes, in the same shape as handler errors.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	resp := ErrorResponse{Error: "internal", Message: "internal error"}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		resp.Message = http.StatusText(status)
		if m, ok := he.Message.(string); ok {
			resp.Message = m
		}
		switch status {
		case http.StatusNotFound:
			resp.Error = "not_found"
		case http.StatusMethodNotAllowed:
			resp.Error = "method_not_allowed"
		default:
			if status < http.StatusInternalServerError {
				resp.Error = "invalid_input"
			}
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, resp)
}
