package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"sincmart/internal/infrastructure/mongodb"
)

type HealthHandler struct {
	db *mongodb.Client
}

var healthHandler *HealthHandler

func NewHealthHandler(db *mongodb.Client) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

func SetupHealthHandler(db *mongodb.Client) {
	healthHandler = NewHealthHandler(db)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) Welcome(c echo.Context) error {
	return c.String(http.StatusOK, "Welcome to the best choice server!")
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	if err := h.db.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status": "MongoDB connection failed",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}
