package router

import (
	"github.com/labstack/echo/v4"

	"sincmart/internal/adapter/api/handler"
)

func SetupUserRouter(e *echo.Echo) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/users")
	users.GET("", userHandler.ListUsers)
	users.POST("", userHandler.CreateUser)
	users.PATCH("/:id/role", userHandler.UpdateUserRole)
}
