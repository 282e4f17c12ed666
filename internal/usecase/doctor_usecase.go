package usecase

import (
	"context"
	"errors"

	"carenow/internal/converter"
	"carenow/internal/delivery/dto"
	"carenow/internal/domain/entity"
	"carenow/internal/domain/repository"
	"carenow/internal/service"

	"github.com/sirupsen/logrus"
)

type DoctorUsecase interface {
	List(ctx context.Context) (*dto.DoctorListResponse, error)
}

type doctorUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	telemetry  service.TelemetryService
	status     *entity.BackendStatus
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	telemetry service.TelemetryService,
	status *entity.BackendStatus,
) DoctorUsecase {
	return &doctorUsecase{
		log:        log,
		doctorRepo: doctorRepo,
		telemetry:  telemetry,
		status:     status,
	}
}

// List returns the available doctors from the live database, or the fixed
// sample directory when the backend is not configured.
func (u *doctorUsecase) List(ctx context.Context) (*dto.DoctorListResponse, error) {
	if u.status.Source == entity.DataSourceFallback {
		return fallbackDoctorList(), nil
	}

	doctors, err := u.doctorRepo.FindAvailable(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotConfigured) {
			u.log.Warn("Doctors table missing, serving fallback directory")
			return fallbackDoctorList(), nil
		}
		u.log.Warnf("Failed to list doctors: %+v", err)
		u.telemetry.CaptureException(err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
		Source:  string(entity.DataSourceLive),
	}, nil
}

func fallbackDoctorList() *dto.DoctorListResponse {
	doctors := service.FallbackDoctors()
	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
		Source:  string(entity.DataSourceFallback),
	}
}
