package middleware

import (
	"log/slog"
	"net/http"

	"leyenda/internal/delivery/http/response"
	domainerrors "leyenda/internal/domain/errors"
	"leyenda/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// notFoundSentinels are the repository-level lookup misses that surface to
// clients as a plain 404.
var notFoundSentinels = []error{
	repository.ErrUserNotFound,
	repository.ErrCredentialNotFound,
	repository.ErrRegionNotFound,
	repository.ErrHotelNotFound,
	repository.ErrRestaurantNotFound,
	repository.ErrLegendNotFound,
	repository.ErrMythStoryNotFound,
	repository.ErrReviewNotFound,
}

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = c.JSON(appErr.HTTPCode(), response.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &response.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	for _, sentinel := range notFoundSentinels {
		if errors.Is(err, sentinel) {
			_ = response.NotFound(c, "NOT_FOUND", sentinel.Error())

			return
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", "")
}
