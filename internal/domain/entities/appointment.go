package entities

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

// Appointment represents a scheduled visit. Date is a calendar day
// (YYYY-MM-DD) and Time a clock slot (HH:MM), matching how the booking
// UI submits them.
type Appointment struct {
	ID        string            `json:"id" db:"id"`
	PatientID string            `json:"patient_id" db:"patient_id"`
	DoctorID  string            `json:"doctor_id" db:"doctor_id"`
	Date      string            `json:"date" db:"date"`
	Time      string            `json:"time" db:"time"`
	Status    AppointmentStatus `json:"status" db:"status"`
	Notes     string            `json:"notes,omitempty" db:"notes"`
}
