// Package handler contains the HTTP handlers of the public API.
package handler

import (
	"net/http"
	"strconv"

	"market/internal/delivery/api/response"
	domainerrors "market/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request into req and runs struct validation.
// On failure the error response has already been written and ok is false.
func bindAndValidate(c echo.Context, req any, bindMessage string) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, bindMessage)
	}

	if err := c.Validate(req); err != nil {
		return false, response.ValidationFailed(c, err)
	}

	return true, nil
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

func invalidID(c echo.Context, name string) error {
	return response.BadRequest(c, "INVALID_ID", "Invalid "+name+" id")
}

// unauthenticated answers routes reached without an actor on the context.
func unauthenticated(c echo.Context) error {
	return response.HandleAppError(c, domainerrors.ErrUnauthorized)
}
