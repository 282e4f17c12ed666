package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAppointmentStatus(t *testing.T) {
	for _, raw := range []string{"pending", "accepted", "rejected", "completed"} {
		status, ok := ParseAppointmentStatus(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, AppointmentStatus(raw), status)
	}

	for _, raw := range []string{"", "all", "Pending", "cancelled", "done"} {
		_, ok := ParseAppointmentStatus(raw)
		assert.False(t, ok, raw)
	}
}

func TestAppointmentStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{AppointmentStatusPending, AppointmentStatusAccepted, true},
		{AppointmentStatusPending, AppointmentStatusRejected, true},
		{AppointmentStatusAccepted, AppointmentStatusCompleted, true},

		{AppointmentStatusPending, AppointmentStatusCompleted, false},
		{AppointmentStatusPending, AppointmentStatusPending, false},
		{AppointmentStatusAccepted, AppointmentStatusPending, false},
		{AppointmentStatusAccepted, AppointmentStatusRejected, false},
		{AppointmentStatusAccepted, AppointmentStatusAccepted, false},
		{AppointmentStatusRejected, AppointmentStatusPending, false},
		{AppointmentStatusRejected, AppointmentStatusAccepted, false},
		{AppointmentStatusRejected, AppointmentStatusCompleted, false},
		{AppointmentStatusCompleted, AppointmentStatusPending, false},
		{AppointmentStatusCompleted, AppointmentStatusAccepted, false},
		{AppointmentStatusCompleted, AppointmentStatusRejected, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestAppointmentStatusIsTerminal(t *testing.T) {
	assert.False(t, AppointmentStatusPending.IsTerminal())
	assert.False(t, AppointmentStatusAccepted.IsTerminal())
	assert.True(t, AppointmentStatusRejected.IsTerminal())
	assert.True(t, AppointmentStatusCompleted.IsTerminal())
}

func TestBasicUser(t *testing.T) {
	account := &Account{Email: "jane@example.com", Name: "Jane Doe"}
	user := BasicUser(account)

	assert.Equal(t, account.ID, user.ID)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, RolePatient, user.Role)
	assert.Empty(t, user.Phone)
	assert.True(t, user.IsPatient())
	assert.False(t, user.IsAdmin())
}
