package usecase

import (
	"context"
	"time"

	"sincmart/internal/domain/entity"
	"sincmart/internal/domain/repository"
	"sincmart/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
	Role     string `json:"role"`
}

func (uc *UserUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.List(ctx)
}

// CreateUser inserts the submitted payload as-is. No uniqueness check is
// performed, so duplicate users are possible.
func (uc *UserUseCase) CreateUser(ctx context.Context, input CreateUserInput) (*entity.User, error) {
	user := &entity.User{
		Name:      input.Name,
		Email:     input.Email,
		PhotoURL:  input.PhotoURL,
		Role:      input.Role,
		CreatedAt: time.Now(),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateUserRole sets the role on the matching user. A zero modified count
// is reported as not found; this also covers the case where the record
// exists but already holds the requested role.
func (uc *UserUseCase) UpdateUserRole(ctx context.Context, id string, role string) error {
	modified, err := uc.userRepo.UpdateRole(ctx, id, role)
	if err != nil {
		return err
	}

	if modified == 0 {
		return errors.NotFound("User", nil)
	}

	return nil
}
