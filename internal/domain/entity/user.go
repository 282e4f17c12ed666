package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role constants
const (
	RolePatient = "patient"
	RoleAdmin   = "admin"
)

// User represents the application-level profile document. Its ID is the owning
// account's ID. Role is set at registration and never changes afterwards.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone"`
	Role      string    `gorm:"type:varchar(20);not null;default:'patient';index" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsPatient reports whether the user has the patient role.
func (u *User) IsPatient() bool {
	return u.Role == RolePatient
}

// BasicUser synthesizes a degraded in-memory profile from an account when the
// profile store is not configured. The role always defaults to patient.
func BasicUser(account *Account) *User {
	now := time.Now()
	return &User{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Phone:     "",
		Role:      RolePatient,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
