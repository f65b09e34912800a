package http

import (
	"errors"
	"net/http"

	"blip/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// internalServerErrorMessage is the only detail callers ever see for
// non-operational failures.
const internalServerErrorMessage = "internal server error"

// errorResponse is the uniform error payload: {"error": "<message>"}.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler builds the echo error handler mapping application
// errors to responses.
//
// Operational errors (validation, authentication, authorization, not-found,
// invalid transition) respond with their kind's status code and precise
// message, logged at warning level. Infrastructure errors and unexpected
// failures are logged with full detail and surface only as a generic 500,
// so internals never leak to callers. echo's own HTTPErrors
// (unknown route, rate-limit rejections, malformed bodies) pass through
// unchanged.
func NewHTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr *errs.Error
		if errors.As(err, &appErr) && appErr.Operational() {
			e.Logger.Warnf("operational error: %v (path=%s method=%s)",
				appErr, c.Path(), c.Request().Method)
			if writeErr := c.JSON(appErr.HTTPStatus(), errorResponse{Error: appErr.Message()}); writeErr != nil {
				e.Logger.Errorf("failed to write error response: %v", writeErr)
			}
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			message, ok := httpErr.Message.(string)
			if !ok {
				message = http.StatusText(httpErr.Code)
			}
			e.Logger.Warnf("http error: %v (path=%s method=%s)",
				err, c.Path(), c.Request().Method)
			if writeErr := c.JSON(httpErr.Code, errorResponse{Error: message}); writeErr != nil {
				e.Logger.Errorf("failed to write error response: %v", writeErr)
			}
			return
		}

		e.Logger.Errorf("unexpected error: %v (path=%s method=%s)",
			err, c.Path(), c.Request().Method)
		if writeErr := c.JSON(http.StatusInternalServerError, errorResponse{Error: internalServerErrorMessage}); writeErr != nil {
			e.Logger.Errorf("failed to write error response: %v", writeErr)
		}
	}
}
