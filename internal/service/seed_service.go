package service

import (
	"context"
	"errors"

	"carenow/internal/domain/entity"
	"carenow/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// sampleDoctors is the fixed set created on first startup against an empty
// doctors table. The same six entries double as the static fallback directory
// in not-configured mode.
var sampleDoctors = []entity.Doctor{
	{ID: uuid.MustParse("7d3c1c5e-0a51-4b7e-9a35-0f6f8a1c2d01"), Name: "Sarah Johnson", Specialty: "Family Medicine", Available: true},
	{ID: uuid.MustParse("7d3c1c5e-0a51-4b7e-9a35-0f6f8a1c2d02"), Name: "Michael Chen", Specialty: "Cardiology", Available: true},
	{ID: uuid.MustParse("7d3c1c5e-0a51-4b7e-9a35-0f6f8a1c2d03"), Name: "Emily Rodriguez", Specialty: "Pediatrics", Available: true},
	{ID: uuid.MustParse("7d3c1c5e-0a51-4b7e-9a35-0f6f8a1c2d04"), Name: "David Thompson", Specialty: "Orthopedics", Available: true},
	{ID: uuid.MustParse("7d3c1c5e-0a51-4b7e-9a35-0f6f8a1c2d05"), Name: "Lisa Park", Specialty: "Dermatology", Available: true},
	{ID: uuid.MustParse("7d3c1c5e-0a51-4b7e-9a35-0f6f8a1c2d06"), Name: "Robert Wilson", Specialty: "Internal Medicine", Available: true},
}

// FallbackDoctors returns the static doctor directory used when the backend is
// not configured.
func FallbackDoctors() []entity.Doctor {
	doctors := make([]entity.Doctor, len(sampleDoctors))
	copy(doctors, sampleDoctors)
	return doctors
}

// SeedService runs the startup probe against the doctors table. Its outcome
// decides, once, whether the application operates against the live database or
// in the degraded fallback mode.
type SeedService struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	telemetry  TelemetryService
}

func NewSeedService(log *logrus.Logger, doctorRepo repository.DoctorRepository, telemetry TelemetryService) *SeedService {
	return &SeedService{
		log:        log,
		doctorRepo: doctorRepo,
		telemetry:  telemetry,
	}
}

// EnsureDoctors probes the doctors table and seeds the sample set when it is
// empty. Any failure, including a missing table, resolves to the fallback
// status instead of an error: the application keeps running in limited mode.
func (s *SeedService) EnsureDoctors(ctx context.Context) *entity.BackendStatus {
	count, err := s.doctorRepo.Count(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotConfigured) {
			s.log.Warn("Database or tables not yet set up, operating in limited mode")
			s.log.Warn("Required setup: create tables users, doctors, appointments")
		} else {
			s.log.Warnf("Failed to probe doctors table: %+v", err)
			s.telemetry.CaptureException(err)
		}
		return &entity.BackendStatus{Source: entity.DataSourceFallback, DatabaseReady: false}
	}

	if count == 0 {
		s.log.Info("Initializing sample doctors...")
		for i := range sampleDoctors {
			doctor := sampleDoctors[i]
			if err := s.doctorRepo.Create(ctx, &doctor); err != nil {
				s.log.Warnf("Failed to seed doctor %s: %+v", doctor.Name, err)
				s.telemetry.CaptureException(err)
				return &entity.BackendStatus{Source: entity.DataSourceFallback, DatabaseReady: false}
			}
		}
		s.log.Info("Sample doctors initialized successfully")
	}

	return &entity.BackendStatus{Source: entity.DataSourceLive, DatabaseReady: true}
}
