package handler

import (
	"github.com/labstack/echo/v4"

	"sincmart/internal/domain/entity"
	"sincmart/internal/usecase"
	"sincmart/pkg/errors"
	"sincmart/pkg/response"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type purchaserRequest struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	PhotoURL    string `json:"photoURL"`
	Timestamp   string `json:"timestamp"`
}

type orderItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type checkoutRequest struct {
	Items     []orderItemRequest `json:"items"`
	Purchaser purchaserRequest   `json:"purchaser"`
}

func (h *OrderHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid cart data", err))
	}

	items := make([]entity.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	err := h.orderUseCase.Checkout(c.Request().Context(), usecase.CheckoutInput{
		Items: items,
		Purchaser: entity.Purchaser{
			DisplayName: req.Purchaser.DisplayName,
			Email:       req.Purchaser.Email,
			PhotoURL:    req.Purchaser.PhotoURL,
			Timestamp:   req.Purchaser.Timestamp,
		},
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, echo.Map{
		"message": "Checkout successful",
	})
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUseCase.ListOrders(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}
