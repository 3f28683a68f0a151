package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "quill/internal/delivery/context"
	domainerrors "quill/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

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

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Every error
// renders as a single-field body {"error": "<message>"}; unexpected errors
// are logged server-side and surface only the generic internal message.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.writeError(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		m.writeError(c, httpErr.Code, message)

		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.writeError(c, http.StatusInternalServerError, domainerrors.ErrInternal.Message())
}

func (m *ErrorMiddleware) writeError(c echo.Context, status int, message string) {
	if err := c.JSON(status, map[string]string{"error": message}); err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}
