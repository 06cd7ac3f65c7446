package repository

import (
	"context"

	"sincmart/internal/domain/entity"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	ListByProductID(ctx context.Context, productID string) ([]*entity.Question, error)
	// SetAnswer updates the answer field in place and returns the updated
	// record.
	SetAnswer(ctx context.Context, id string, answer string) (*entity.Question, error)
}
