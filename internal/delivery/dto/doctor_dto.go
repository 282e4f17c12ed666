package dto

import "github.com/google/uuid"

type DoctorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Available bool      `json:"available"`
}

// DoctorListResponse reports which data source served the directory: "live"
// for the database, "fallback" for the static sample set.
type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
	Source  string           `json:"source"`
}
