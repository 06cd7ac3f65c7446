package handler

import (
	"sincmart/internal/usecase"
)

var (
	userHandler       *UserHandler
	productHandler    *ProductHandler
	engagementHandler *EngagementHandler
	orderHandler      *OrderHandler
)

func Setup(
	userUseCase *usecase.UserUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	engagementUseCase *usecase.EngagementUseCase,
	orderUseCase *usecase.OrderUseCase,
) {
	userHandler = NewUserHandler(userUseCase)
	productHandler = NewProductHandler(catalogUseCase)
	engagementHandler = NewEngagementHandler(engagementUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetEngagementHandler() *EngagementHandler {
	return engagementHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}
