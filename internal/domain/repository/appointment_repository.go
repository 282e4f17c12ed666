package repository

import (
	"context"

	"carenow/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error)
	FindAll(ctx context.Context, status entity.AppointmentStatus) ([]entity.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.AppointmentStatus, notes string) (int64, error)
}
