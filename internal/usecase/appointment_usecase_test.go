package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"carenow/internal/delivery/dto"
	"carenow/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appointmentFixture struct {
	usecase         AppointmentUsecase
	appointmentRepo *mockAppointmentRepo
	doctorRepo      *mockDoctorRepo
	telemetry       *mockTelemetry
	status          *entity.BackendStatus
	patient         *entity.User
	doctor          *entity.Doctor
}

func newAppointmentFixture(status *entity.BackendStatus) *appointmentFixture {
	log := logrus.New()
	log.SetOutput(io.Discard)

	appointmentRepo := newMockAppointmentRepo()
	doctorRepo := newMockDoctorRepo()
	telemetry := &mockTelemetry{}

	doctor := &entity.Doctor{
		ID:        uuid.New(),
		Name:      "Sarah Johnson",
		Specialty: "Family Medicine",
		Available: true,
	}
	doctorRepo.doctors[doctor.ID] = doctor

	return &appointmentFixture{
		usecase:         NewAppointmentUsecase(log, appointmentRepo, doctorRepo, telemetry, status),
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		telemetry:       telemetry,
		status:          status,
		patient: &entity.User{
			ID:    uuid.New(),
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Phone: "555-0100",
			Role:  entity.RolePatient,
		},
		doctor: doctor,
	}
}

func liveStatus() *entity.BackendStatus {
	return &entity.BackendStatus{Source: entity.DataSourceLive, DatabaseReady: true}
}

func fallbackStatus() *entity.BackendStatus {
	return &entity.BackendStatus{Source: entity.DataSourceFallback, DatabaseReady: false}
}

func (f *appointmentFixture) bookRequest() *dto.BookAppointmentRequest {
	tomorrow := time.Now().AddDate(0, 0, 1)
	return &dto.BookAppointmentRequest{
		DoctorID:        f.doctor.ID.String(),
		AppointmentDate: tomorrow.Format("2006-01-02"),
		AppointmentTime: "10:00",
		Reason:          "Annual check-up needed",
	}
}

func TestBookCreatesPendingAppointment(t *testing.T) {
	f := newAppointmentFixture(liveStatus())

	resp, err := f.usecase.Book(context.Background(), f.patient, f.bookRequest())
	require.NoError(t, err)

	assert.Equal(t, string(entity.AppointmentStatusPending), resp.Status)
	assert.Equal(t, f.patient.ID, resp.PatientID)
	assert.Equal(t, "Jane Doe", resp.PatientName)
	assert.Equal(t, "555-0100", resp.PatientPhone)
	assert.Equal(t, "Sarah Johnson", resp.DoctorName)
	assert.Equal(t, "10:00", resp.AppointmentTime)
	assert.Len(t, f.appointmentRepo.appointments, 1)
}

func TestBookRejectsShortReason(t *testing.T) {
	f := newAppointmentFixture(liveStatus())
	req := f.bookRequest()
	req.Reason = "check-up"

	_, err := f.usecase.Book(context.Background(), f.patient, req)
	assert.ErrorIs(t, err, ErrReasonTooShort)
	assert.Empty(t, f.appointmentRepo.appointments)
}

func TestBookRejectsPastDateTime(t *testing.T) {
	f := newAppointmentFixture(liveStatus())

	yesterday := time.Now().AddDate(0, 0, -1)
	req := f.bookRequest()
	req.AppointmentDate = yesterday.Format("2006-01-02")

	_, err := f.usecase.Book(context.Background(), f.patient, req)
	assert.ErrorIs(t, err, ErrPastAppointment)
	assert.Empty(t, f.appointmentRepo.appointments)
}

func TestBookRejectsMalformedDateTime(t *testing.T) {
	f := newAppointmentFixture(liveStatus())
	req := f.bookRequest()
	req.AppointmentTime = "25:99"

	_, err := f.usecase.Book(context.Background(), f.patient, req)
	assert.ErrorIs(t, err, ErrInvalidDateTime)
}

func TestBookUnknownDoctor(t *testing.T) {
	f := newAppointmentFixture(liveStatus())
	req := f.bookRequest()
	req.DoctorID = uuid.NewString()

	_, err := f.usecase.Book(context.Background(), f.patient, req)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestBookUnavailableDoctor(t *testing.T) {
	f := newAppointmentFixture(liveStatus())
	f.doctor.Available = false

	_, err := f.usecase.Book(context.Background(), f.patient, f.bookRequest())
	assert.ErrorIs(t, err, ErrDoctorUnavailable)
	assert.Empty(t, f.appointmentRepo.appointments)
}

func TestBookFailsWhenBackendNotConfigured(t *testing.T) {
	f := newAppointmentFixture(fallbackStatus())

	_, err := f.usecase.Book(context.Background(), f.patient, f.bookRequest())
	assert.ErrorIs(t, err, ErrBackendNotConfigured)
	assert.Empty(t, f.appointmentRepo.appointments)
}

func TestListForPatientNewestFirst(t *testing.T) {
	f := newAppointmentFixture(liveStatus())

	first, err := f.usecase.Book(context.Background(), f.patient, f.bookRequest())
	require.NoError(t, err)
	req := f.bookRequest()
	req.AppointmentTime = "11:30"
	second, err := f.usecase.Book(context.Background(), f.patient, req)
	require.NoError(t, err)

	// Another patient's appointment must not leak into the listing.
	other := &entity.User{ID: uuid.New(), Name: "John Smith", Email: "john@example.com", Role: entity.RolePatient}
	_, err = f.usecase.Book(context.Background(), other, f.bookRequest())
	require.NoError(t, err)

	list, err := f.usecase.ListForPatient(context.Background(), f.patient.ID)
	require.NoError(t, err)

	require.Equal(t, 2, list.Total)
	assert.Equal(t, second.ID, list.Appointments[0].ID)
	assert.Equal(t, first.ID, list.Appointments[1].ID)

	// Submitted fields survive the round trip intact.
	assert.Equal(t, "Annual check-up needed", list.Appointments[0].Reason)
	assert.Equal(t, "11:30", list.Appointments[0].AppointmentTime)
	assert.Equal(t, first.AppointmentDate, list.Appointments[1].AppointmentDate)
	assert.Equal(t, string(entity.AppointmentStatusPending), list.Appointments[0].Status)
}

func TestListForPatientEmptyWhenNotConfigured(t *testing.T) {
	f := newAppointmentFixture(fallbackStatus())

	list, err := f.usecase.ListForPatient(context.Background(), f.patient.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
	assert.NotNil(t, list.Appointments)
	assert.Empty(t, list.Appointments)
}

func TestListForAdminStatusFilter(t *testing.T) {
	f := newAppointmentFixture(liveStatus())

	booked, err := f.usecase.Book(context.Background(), f.patient, f.bookRequest())
	require.NoError(t, err)
	req := f.bookRequest()
	req.AppointmentTime = "14:00"
	_, err = f.usecase.Book(context.Background(), f.patient, req)
	require.NoError(t, err)

	_, err = f.usecase.SetStatus(context.Background(), booked.ID, &dto.UpdateAppointmentStatusRequest{
		Status: string(entity.AppointmentStatusAccepted),
	})
	require.NoError(t, err)

	all, err := f.usecase.ListForAdmin(context.Background(), "all")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	accepted, err := f.usecase.ListForAdmin(context.Background(), "accepted")
	require.NoError(t, err)
	require.Equal(t, 1, accepted.Total)
	assert.Equal(t, booked.ID, accepted.Appointments[0].ID)

	pending, err := f.usecase.ListForAdmin(context.Background(), "pending")
	require.NoError(t, err)
	assert.Equal(t, 1, pending.Total)
}

func TestListForAdminInvalidFilter(t *testing.T) {
	f := newAppointmentFixture(liveStatus())

	_, err := f.usecase.ListForAdmin(context.Background(), "cancelled")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetStatusLifecycle(t *testing.T) {
	f := newAppointmentFixture(liveStatus())

	booked, err := f.usecase.Book(context.Background(), f.patient, f.bookRequest())
	require.NoError(t, err)

	accepted, err := f.usecase.SetStatus(context.Background(), booked.ID, &dto.UpdateAppointmentStatusRequest{
		Status: string(entity.AppointmentStatusAccepted),
		Notes:  "Confirmed for tomorrow morning",
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusAccepted), accepted.Status)
	assert.Equal(t, "Confirmed for tomorrow morning", accepted.Notes)

	completed, err := f.usecase.SetStatus(context.Background(), booked.ID, &dto.UpdateAppointmentStatusRequest{
		Status: string(entity.AppointmentStatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCompleted), completed.Status)
	// Earlier notes survive an update without notes.
	assert.Equal(t, "Confirmed for tomorrow morning", completed.Notes)

	// Completed is terminal.
	_, err = f.usecase.SetStatus(context.Background(), booked.ID, &dto.UpdateAppointmentStatusRequest{
		Status: string(entity.AppointmentStatusPending),
	})
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestSetStatusIllegalEdges(t *testing.T) {
	f := newAppointmentFixture(liveStatus())

	booked, err := f.usecase.Book(context.Background(), f.patient, f.bookRequest())
	require.NoError(t, err)

	// pending -> completed skips acceptance.
	_, err = f.usecase.SetStatus(context.Background(), booked.ID, &dto.UpdateAppointmentStatusRequest{
		Status: string(entity.AppointmentStatusCompleted),
	})
	assert.ErrorIs(t, err, ErrIllegalTransition)

	_, err = f.usecase.SetStatus(context.Background(), booked.ID, &dto.UpdateAppointmentStatusRequest{
		Status: string(entity.AppointmentStatusRejected),
	})
	require.NoError(t, err)

	// Rejected is terminal.
	_, err = f.usecase.SetStatus(context.Background(), booked.ID, &dto.UpdateAppointmentStatusRequest{
		Status: string(entity.AppointmentStatusAccepted),
	})
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestSetStatusUnknownAppointment(t *testing.T) {
	f := newAppointmentFixture(liveStatus())

	_, err := f.usecase.SetStatus(context.Background(), uuid.New(), &dto.UpdateAppointmentStatusRequest{
		Status: string(entity.AppointmentStatusAccepted),
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestSetStatusInvalidValue(t *testing.T) {
	f := newAppointmentFixture(liveStatus())

	booked, err := f.usecase.Book(context.Background(), f.patient, f.bookRequest())
	require.NoError(t, err)

	_, err = f.usecase.SetStatus(context.Background(), booked.ID, &dto.UpdateAppointmentStatusRequest{
		Status: "approved",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
