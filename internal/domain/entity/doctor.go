package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor represents an entry in the doctor directory. The application only
// reads doctors; the seed service creates the initial set.
type Doctor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Specialty string    `gorm:"type:varchar(100);not null;index" json:"specialty"`
	Available bool      `gorm:"not null;default:true;index" json:"available"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}
