package router

import (
	"github.com/labstack/echo/v4"

	"sincmart/internal/adapter/api/handler"
)

func SetupProductRouter(e *echo.Echo) {
	productHandler := handler.GetProductHandler()

	e.GET("/products", productHandler.ListProducts)
	e.GET("/products/page", productHandler.ListProductsPaged)
	e.DELETE("/products/:id", productHandler.DeleteProduct)

	// The create route keeps the capitalized path of the original deployment.
	e.POST("/Products", productHandler.CreateProduct)

	e.GET("/product/:id", productHandler.GetProduct)
}
