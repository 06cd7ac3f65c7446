package router

import (
	"github.com/labstack/echo/v4"

	"sincmart/internal/adapter/api/handler"
)

func SetupHealthRouter(e *echo.Echo) {
	healthHandler := handler.GetHealthHandler()

	e.GET("/", healthHandler.Welcome)
	e.GET("/health", healthHandler.CheckHealth)
}
