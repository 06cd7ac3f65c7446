package repository

import (
	"context"

	"sincmart/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	ListByProductID(ctx context.Context, productID string) ([]*entity.Review, error)
}
