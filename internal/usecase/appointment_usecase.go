package usecase

import (
	"context"
	"errors"
	"time"

	"carenow/internal/converter"
	"carenow/internal/delivery/dto"
	"carenow/internal/domain/entity"
	"carenow/internal/domain/repository"
	"carenow/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrBackendNotConfigured = errors.New("database not configured, appointments cannot be saved at this time")
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrDoctorUnavailable    = errors.New("doctor is not available for booking")
	ErrPastAppointment      = errors.New("appointment must be scheduled for a future date and time")
	ErrReasonTooShort       = errors.New("reason must be at least 10 characters")
	ErrInvalidDateTime      = errors.New("invalid appointment date or time format")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrInvalidStatus        = errors.New("invalid appointment status")
	ErrIllegalTransition    = errors.New("status transition is not permitted")
)

const (
	appointmentDateLayout = "2006-01-02"
	appointmentTimeLayout = "15:04"
	minReasonLength       = 10
)

type AppointmentUsecase interface {
	Book(ctx context.Context, patient *entity.User, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListForAdmin(ctx context.Context, statusFilter string) (*dto.AppointmentListResponse, error)
	SetStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	telemetry       service.TelemetryService
	status          *entity.BackendStatus
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	telemetry service.TelemetryService,
	status *entity.BackendStatus,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		telemetry:       telemetry,
		status:          status,
	}
}

// Book creates a pending appointment for the patient. All preconditions are
// checked before any write: backend ready, doctor known and available, a
// strictly-future date/time, and a minimum-length reason. Patient and doctor
// display fields are denormalized at this instant.
func (u *appointmentUsecase) Book(ctx context.Context, patient *entity.User, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	if !u.status.Ready() {
		return nil, ErrBackendNotConfigured
	}

	if len(req.Reason) < minReasonLength {
		return nil, ErrReasonTooShort
	}

	when, err := time.ParseInLocation(
		appointmentDateLayout+" "+appointmentTimeLayout,
		req.AppointmentDate+" "+req.AppointmentTime,
		time.Local,
	)
	if err != nil {
		return nil, ErrInvalidDateTime
	}
	if !when.After(time.Now()) {
		return nil, ErrPastAppointment
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrDoctorNotFound
	}

	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		if errors.Is(err, repository.ErrNotConfigured) {
			return nil, ErrBackendNotConfigured
		}
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		u.telemetry.CaptureException(err)
		return nil, err
	}
	if !doctor.Available {
		return nil, ErrDoctorUnavailable
	}

	appointment := &entity.Appointment{
		PatientID:       patient.ID,
		PatientName:     patient.Name,
		PatientEmail:    patient.Email,
		PatientPhone:    patient.Phone,
		DoctorID:        doctor.ID,
		DoctorName:      doctor.Name,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Reason:          req.Reason,
		Status:          entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		if errors.Is(err, repository.ErrNotConfigured) {
			return nil, ErrBackendNotConfigured
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		u.telemetry.CaptureException(err)
		return nil, err
	}

	u.log.Infof("Appointment booked: id=%s, patient=%s, doctor=%s", appointment.ID, patient.ID, doctor.Name)
	return converter.AppointmentToResponse(appointment), nil
}

// ListForPatient returns the caller's appointments, newest first. A backend
// that is not configured yields an empty list, not an error.
func (u *appointmentUsecase) ListForPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	if !u.status.Ready() {
		return emptyAppointmentList(), nil
	}

	appointments, err := u.appointmentRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotConfigured) {
			return emptyAppointmentList(), nil
		}
		u.log.Warnf("Failed to list appointments for patient %s: %+v", patientID, err)
		u.telemetry.CaptureException(err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// ListForAdmin returns all appointments, optionally filtered by status,
// newest first.
func (u *appointmentUsecase) ListForAdmin(ctx context.Context, statusFilter string) (*dto.AppointmentListResponse, error) {
	var filter entity.AppointmentStatus
	if statusFilter != "" && statusFilter != "all" {
		parsed, ok := entity.ParseAppointmentStatus(statusFilter)
		if !ok {
			return nil, ErrInvalidStatus
		}
		filter = parsed
	}

	if !u.status.Ready() {
		return emptyAppointmentList(), nil
	}

	appointments, err := u.appointmentRepo.FindAll(ctx, filter)
	if err != nil {
		if errors.Is(err, repository.ErrNotConfigured) {
			return emptyAppointmentList(), nil
		}
		u.log.Warnf("Failed to list appointments: %+v", err)
		u.telemetry.CaptureException(err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// SetStatus transitions an appointment along the lifecycle
// pending -> accepted -> completed, or pending -> rejected. The stored status
// is re-fetched and the edge validated before writing, so an illegal
// transition is a rejected operation rather than a silent overwrite.
func (u *appointmentUsecase) SetStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	if !u.status.Ready() {
		return nil, ErrBackendNotConfigured
	}

	newStatus, ok := entity.ParseAppointmentStatus(req.Status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		if errors.Is(err, repository.ErrNotConfigured) {
			return nil, ErrBackendNotConfigured
		}
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		u.telemetry.CaptureException(err)
		return nil, err
	}

	if !appointment.Status.CanTransitionTo(newStatus) {
		return nil, ErrIllegalTransition
	}

	affected, err := u.appointmentRepo.UpdateStatus(ctx, id, appointment.Status, newStatus, req.Notes)
	if err != nil {
		if errors.Is(err, repository.ErrNotConfigured) {
			return nil, ErrBackendNotConfigured
		}
		u.log.Warnf("Failed to update appointment %s status: %+v", id, err)
		u.telemetry.CaptureException(err)
		return nil, err
	}
	if affected == 0 {
		// Stored status changed between the read and the write.
		return nil, ErrIllegalTransition
	}

	appointment.Status = newStatus
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}

	u.log.Infof("Appointment %s status set to %s", id, newStatus)
	return converter.AppointmentToResponse(appointment), nil
}

func emptyAppointmentList() *dto.AppointmentListResponse {
	return &dto.AppointmentListResponse{
		Appointments: []dto.AppointmentResponse{},
		Total:        0,
	}
}
