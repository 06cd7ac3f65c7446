package repository

import (
	"context"

	"sincmart/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	List(ctx context.Context) ([]*entity.User, error)
	// UpdateRole sets the role on the matching record and returns the
	// number of records actually modified.
	UpdateRole(ctx context.Context, id string, role string) (int64, error)
}
