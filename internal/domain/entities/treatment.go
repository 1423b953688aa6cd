package entities

import (
	"time"
)

// Treatment represents a performed (and billable) procedure
type Treatment struct {
	ID          string  `json:"id" db:"id"`
	PatientID   string  `json:"patient_id" db:"patient_id"`
	DoctorID    string  `json:"doctor_id" db:"doctor_id"`
	Description string  `json:"description" db:"description"`
	Date        string  `json:"date" db:"date"`
	Cost        float64 `json:"cost,omitempty" db:"cost"`
}

// TreatmentPlanStatus represents the approval state of a treatment plan
type TreatmentPlanStatus string

const (
	TreatmentPlanStatusPending    TreatmentPlanStatus = "pending"
	TreatmentPlanStatusInProgress TreatmentPlanStatus = "in_progress"
	TreatmentPlanStatusCompleted  TreatmentPlanStatus = "completed"
)

// TreatmentPlan represents a multi-visit plan proposed by a clinic
type TreatmentPlan struct {
	ID          string              `json:"id" db:"id"`
	PatientID   string              `json:"patient_id" db:"patient_id"`
	ClinicID    string              `json:"clinic_id" db:"clinic_id"`
	Title       string              `json:"title" db:"title"`
	Description string              `json:"description" db:"description"`
	Status      TreatmentPlanStatus `json:"status" db:"status"`
	CreatedAt   time.Time           `json:"created_at" db:"created_at"`
}
