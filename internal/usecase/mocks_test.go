package usecase

import (
	"context"
	"fmt"
	"time"

	"carenow/internal/domain/entity"
	"carenow/internal/domain/repository"

	"github.com/google/uuid"
)

// -- Mock repositories --

var _ repository.AccountRepository = (*mockAccountRepo)(nil)

type mockAccountRepo struct {
	accounts    map[uuid.UUID]*entity.Account
	findErr     error
	deleteErr   error
	deleteCalls int
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{accounts: make(map[uuid.UUID]*entity.Account)}
}

func (m *mockAccountRepo) Create(_ context.Context, account *entity.Account) error {
	for _, existing := range m.accounts {
		if existing.Email == account.Email {
			return repository.ErrDuplicate
		}
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.CreatedAt = time.Now()
	account.UpdatedAt = time.Now()
	m.accounts[account.ID] = account
	return nil
}

func (m *mockAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, account := range m.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	account, ok := m.accounts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return account, nil
}

func (m *mockAccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.deleteCalls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.accounts, id)
	return nil
}

var _ repository.UserRepository = (*mockUserRepo)(nil)

type mockUserRepo struct {
	users         map[uuid.UUID]*entity.User
	notConfigured bool
	createErr     error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *entity.User) error {
	if m.notConfigured {
		return repository.ErrNotConfigured
	}
	if m.createErr != nil {
		return m.createErr
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if m.notConfigured {
		return nil, repository.ErrNotConfigured
	}
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

var _ repository.DoctorRepository = (*mockDoctorRepo)(nil)

type mockDoctorRepo struct {
	doctors       map[uuid.UUID]*entity.Doctor
	notConfigured bool
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: make(map[uuid.UUID]*entity.Doctor)}
}

func (m *mockDoctorRepo) Create(_ context.Context, doctor *entity.Doctor) error {
	if m.notConfigured {
		return repository.ErrNotConfigured
	}
	if doctor.ID == uuid.Nil {
		doctor.ID = uuid.New()
	}
	m.doctors[doctor.ID] = doctor
	return nil
}

func (m *mockDoctorRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Doctor, error) {
	if m.notConfigured {
		return nil, repository.ErrNotConfigured
	}
	doctor, ok := m.doctors[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return doctor, nil
}

func (m *mockDoctorRepo) FindAvailable(_ context.Context) ([]entity.Doctor, error) {
	if m.notConfigured {
		return nil, repository.ErrNotConfigured
	}
	var doctors []entity.Doctor
	for _, doctor := range m.doctors {
		if doctor.Available {
			doctors = append(doctors, *doctor)
		}
	}
	return doctors, nil
}

func (m *mockDoctorRepo) Count(_ context.Context) (int64, error) {
	if m.notConfigured {
		return 0, repository.ErrNotConfigured
	}
	return int64(len(m.doctors)), nil
}

var _ repository.AppointmentRepository = (*mockAppointmentRepo)(nil)

type mockAppointmentRepo struct {
	appointments  map[uuid.UUID]*entity.Appointment
	order         []uuid.UUID
	notConfigured bool
	createErr     error
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{appointments: make(map[uuid.UUID]*entity.Appointment)}
}

func (m *mockAppointmentRepo) Create(_ context.Context, appointment *entity.Appointment) error {
	if m.notConfigured {
		return repository.ErrNotConfigured
	}
	if m.createErr != nil {
		return m.createErr
	}
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	appointment.CreatedAt = time.Now().Add(time.Duration(len(m.order)) * time.Millisecond)
	appointment.UpdatedAt = appointment.CreatedAt
	m.appointments[appointment.ID] = appointment
	m.order = append(m.order, appointment.ID)
	return nil
}

func (m *mockAppointmentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Appointment, error) {
	if m.notConfigured {
		return nil, repository.ErrNotConfigured
	}
	appointment, ok := m.appointments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return appointment, nil
}

func (m *mockAppointmentRepo) FindByPatientID(_ context.Context, patientID uuid.UUID) ([]entity.Appointment, error) {
	if m.notConfigured {
		return nil, repository.ErrNotConfigured
	}
	var appointments []entity.Appointment
	// Newest first
	for i := len(m.order) - 1; i >= 0; i-- {
		appointment := m.appointments[m.order[i]]
		if appointment.PatientID == patientID {
			appointments = append(appointments, *appointment)
		}
	}
	return appointments, nil
}

func (m *mockAppointmentRepo) FindAll(_ context.Context, status entity.AppointmentStatus) ([]entity.Appointment, error) {
	if m.notConfigured {
		return nil, repository.ErrNotConfigured
	}
	var appointments []entity.Appointment
	for i := len(m.order) - 1; i >= 0; i-- {
		appointment := m.appointments[m.order[i]]
		if status == "" || appointment.Status == status {
			appointments = append(appointments, *appointment)
		}
	}
	return appointments, nil
}

func (m *mockAppointmentRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to entity.AppointmentStatus, notes string) (int64, error) {
	if m.notConfigured {
		return 0, repository.ErrNotConfigured
	}
	appointment, ok := m.appointments[id]
	if !ok || appointment.Status != from {
		return 0, nil
	}
	appointment.Status = to
	if notes != "" {
		appointment.Notes = notes
	}
	appointment.UpdatedAt = time.Now()
	return 1, nil
}

var _ repository.SessionRepository = (*mockSessionRepo)(nil)

type mockSessionRepo struct {
	tokens   map[string]bool
	storeErr error
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{tokens: make(map[string]bool)}
}

func sessionKey(kind repository.TokenKind, userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s:%s:%s", kind, userID, tokenID)
}

func (m *mockSessionRepo) Store(_ context.Context, kind repository.TokenKind, userID uuid.UUID, tokenID string, _ time.Duration) error {
	if m.storeErr != nil {
		return m.storeErr
	}
	m.tokens[sessionKey(kind, userID, tokenID)] = true
	return nil
}

func (m *mockSessionRepo) Exists(_ context.Context, kind repository.TokenKind, userID uuid.UUID, tokenID string) (bool, error) {
	return m.tokens[sessionKey(kind, userID, tokenID)], nil
}

func (m *mockSessionRepo) Revoke(_ context.Context, kind repository.TokenKind, tokenID string) error {
	prefix := string(kind) + ":"
	suffix := ":" + tokenID
	for key := range m.tokens {
		if len(key) > len(prefix)+len(suffix) && key[:len(prefix)] == prefix && key[len(key)-len(suffix):] == suffix {
			delete(m.tokens, key)
		}
	}
	return nil
}

// -- Mock telemetry --

type mockTelemetry struct {
	actorID  uuid.UUID
	actorSet bool
	cleared  bool
	captured []error
}

func (m *mockTelemetry) SetActor(id uuid.UUID, _, _ string) {
	m.actorID = id
	m.actorSet = true
}

func (m *mockTelemetry) ClearActor() {
	m.cleared = true
	m.actorSet = false
}

func (m *mockTelemetry) CaptureException(err error) {
	m.captured = append(m.captured, err)
}
