package entities

import (
	"time"
)

// PatientStatus represents the lifecycle state of a patient record
type PatientStatus string

const (
	PatientStatusActive   PatientStatus = "active"
	PatientStatusArchived PatientStatus = "archived"
)

// Patient represents a patient registered with a clinic
type Patient struct {
	ID               string        `json:"id" db:"id"`
	FullName         string        `json:"full_name" db:"full_name"`
	Age              int           `json:"age" db:"age"`
	Phone            string        `json:"phone" db:"phone"`
	ClinicID         string        `json:"clinic_id" db:"clinic_id"`
	AssignedToUserID string        `json:"assigned_to_user_id,omitempty" db:"assigned_to_user_id"`
	Status           PatientStatus `json:"status" db:"status"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
}
