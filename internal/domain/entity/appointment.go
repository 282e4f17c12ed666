package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment request
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusAccepted  AppointmentStatus = "accepted"
	AppointmentStatusRejected  AppointmentStatus = "rejected"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// ParseAppointmentStatus validates a raw status string.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	status := AppointmentStatus(s)
	switch status {
	case AppointmentStatusPending, AppointmentStatusAccepted,
		AppointmentStatusRejected, AppointmentStatusCompleted:
		return status, true
	}
	return "", false
}

// IsTerminal reports whether no further transition is permitted.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusRejected || s == AppointmentStatusCompleted
}

// CanTransitionTo reports whether the status may move to next. The only legal
// edges are pending->accepted, pending->rejected and accepted->completed.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	switch s {
	case AppointmentStatusPending:
		return next == AppointmentStatusAccepted || next == AppointmentStatusRejected
	case AppointmentStatusAccepted:
		return next == AppointmentStatusCompleted
	}
	return false
}

// Appointment represents a patient's appointment request. Patient and doctor
// display fields are denormalized copies captured at booking time; they are not
// kept in sync with later changes to the source records.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	PatientName     string            `gorm:"type:varchar(255);not null" json:"patient_name"`
	PatientEmail    string            `gorm:"type:varchar(255);not null" json:"patient_email"`
	PatientPhone    string            `gorm:"type:varchar(50)" json:"patient_phone"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DoctorName      string            `gorm:"type:varchar(255);not null" json:"doctor_name"`
	AppointmentDate string            `gorm:"type:varchar(10);not null" json:"appointment_date"`
	AppointmentTime string            `gorm:"type:varchar(5);not null" json:"appointment_time"`
	Reason          string            `gorm:"type:text;not null" json:"reason"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment is still awaiting review
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}
