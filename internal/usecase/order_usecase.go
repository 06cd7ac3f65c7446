package usecase

import (
	"context"
	"time"

	"sincmart/internal/domain/entity"
	"sincmart/internal/domain/repository"
	"sincmart/pkg/errors"
	"sincmart/pkg/logger"
)

type OrderUseCase struct {
	orderRepo repository.OrderRepository
}

func NewOrderUseCase(orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
	}
}

type CheckoutInput struct {
	Items     []entity.OrderItem `json:"items"`
	Purchaser entity.Purchaser   `json:"purchaser"`
}

// Checkout converts a cart into a persisted order. The order is stored
// unconditionally: no payment or inventory check, and no idempotency key,
// so duplicate submissions create duplicate orders.
func (uc *OrderUseCase) Checkout(ctx context.Context, input CheckoutInput) error {
	if len(input.Items) == 0 {
		return errors.BadRequest("Invalid cart data", nil)
	}

	order := &entity.Order{
		Purchaser: input.Purchaser,
		Items:     input.Items,
		Timestamp: time.Now(),
		Status:    entity.OrderStatusPending,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return err
	}

	logger.Info("Checkout received: email=%s items=%d", input.Purchaser.Email, len(input.Items))

	return nil
}

func (uc *OrderUseCase) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	return uc.orderRepo.List(ctx)
}
