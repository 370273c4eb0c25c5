package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Freeeeeet/school_calendar/internal/service"
)

// newHTTPErrorHandler переводит ошибки сервисов в коды ответа и JSON вида {"error": "..."}
func newHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var (
			code    int
			message string
			httpErr *echo.HTTPError
		)

		switch {
		case errors.As(err, &httpErr):
			code = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		case errors.Is(err, service.ErrInvalidRange):
			code = http.StatusBadRequest
			message = err.Error()
		case errors.Is(err, service.ErrSourcesUnavailable):
			code = http.StatusServiceUnavailable
			message = err.Error()
		default:
			code = http.StatusInternalServerError
			message = http.StatusText(code)
			logger.Error("Unhandled API error",
				zap.String("path", ctx.Request().URL.Path),
				zap.Error(err))
		}

		if ctx.Echo().Debug {
			message = err.Error()
		}

		if ctx.Response().Committed {
			return
		}
		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, echo.Map{"error": message})
		}
		if err != nil {
			logger.Error("Failed to write error response", zap.Error(err))
		}
	}
}
