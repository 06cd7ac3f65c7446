package repository

import (
	"context"

	"sincmart/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	ListPaged(ctx context.Context, limit, offset int) ([]*entity.Product, int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}
