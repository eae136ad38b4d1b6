package http

import (
	"errors"
	"log/slog"
	"net/http"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/services"
	"parcels/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an application error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, parcel.ErrParcelPickedUp),
		errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, parcel.ErrLegMismatch),
		errors.Is(err, services.ErrNoRouteFound),
		errs.IsInvalidInput(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an Error body. Internal failures are logged and
// answered with the generic message only.
func (s *Server) respondError(c echo.Context, err error, internalMessage string) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), internalMessage,
			slog.String("method", c.Request().Method),
			slog.String("path", c.Path()),
			slog.Any("error", err))
		return c.JSON(code, Error{Code: code, Message: internalMessage})
	}
	return c.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
