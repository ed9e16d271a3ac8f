package handler

import (
	"errors"
	"net/http"

	"github.com/Eursukkul/event-ticketing/internal/service"
	"github.com/Eursukkul/event-ticketing/internal/store"
	"github.com/Eursukkul/event-ticketing/internal/view"
	"github.com/labstack/echo/v4"
)

// toHTTPError maps domain errors onto status codes. Unknown errors keep
// their detail as the internal error only.
func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, store.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrUnauthorized), errors.Is(err, view.ErrAccessDenied):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, store.ErrEventNotFound), errors.Is(err, store.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrSoldOut), errors.Is(err, service.ErrBookingInProgress):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error").SetInternal(err)
}
