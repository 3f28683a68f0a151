package handler

import (
	"net/http"
	"time"

	"quill/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, response.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}
