package entities

// Doctor represents a practicing dentist attached to a clinic
type Doctor struct {
	ID             string `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	Specialization string `json:"specialization" db:"specialization"`
	Contact        string `json:"contact,omitempty" db:"contact"`
	Email          string `json:"email,omitempty" db:"email"`
	ClinicID       string `json:"clinic_id,omitempty" db:"clinic_id"`

	// ClinicName is denormalized into the search index so queries can
	// match on it; it is not a doctors table column.
	ClinicName string `json:"clinic_name,omitempty" db:"-"`
}
