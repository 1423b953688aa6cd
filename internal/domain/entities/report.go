package entities

import (
	"time"
)

// Report represents a medical record entry (visit summary, x-ray
// reading, lab result) attached to a patient
type Report struct {
	ID         string    `json:"id" db:"id"`
	PatientID  string    `json:"patient_id" db:"patient_id"`
	ClinicID   string    `json:"clinic_id" db:"clinic_id"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	ReportType string    `json:"report_type" db:"report_type"`
	CreatedBy  string    `json:"created_by" db:"created_by"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
