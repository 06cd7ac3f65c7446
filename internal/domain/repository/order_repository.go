package repository

import (
	"context"

	"sincmart/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	List(ctx context.Context) ([]*entity.Order, error)
}
