package router

import (
	"github.com/labstack/echo/v4"

	"sincmart/internal/adapter/api/handler"
)

func SetupOrderRouter(e *echo.Echo) {
	orderHandler := handler.GetOrderHandler()

	e.POST("/product/checkout", orderHandler.Checkout)
	e.GET("/order", orderHandler.ListOrders)
}
