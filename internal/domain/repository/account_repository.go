package repository

import (
	"context"

	"carenow/internal/domain/entity"

	"github.com/google/uuid"
)

type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
