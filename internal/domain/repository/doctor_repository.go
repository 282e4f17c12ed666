package repository

import (
	"context"

	"carenow/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	FindAvailable(ctx context.Context) ([]entity.Doctor, error)
	Count(ctx context.Context) (int64, error)
}
