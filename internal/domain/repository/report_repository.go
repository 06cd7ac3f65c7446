package repository

import (
	"context"

	"sincmart/internal/domain/entity"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	ListByProductID(ctx context.Context, productID string) ([]*entity.Report, error)
}
