package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports the service name. The same handler backs the
// public /health probe and the authenticated /health/secure variant.
type HealthHandler struct {
	AppName string
}

func NewHealthHandler(appName string) *HealthHandler { return &HealthHandler{AppName: appName} }

type healthResponse struct {
	Name string `json:"name"`
}

func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Name: h.AppName})
}
