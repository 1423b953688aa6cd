package entities

// Clinic represents a specialty clinic inside the dental center
type Clinic struct {
	ID                string `json:"id" db:"id"`
	Name              string `json:"name" db:"name"`
	NameEn            string `json:"name_en,omitempty" db:"name_en"`
	SpecializationTag string `json:"specialization_tag,omitempty" db:"specialization_tag"`
	Address           string `json:"address,omitempty" db:"address"`
	Contact           string `json:"contact,omitempty" db:"contact"`
	Email             string `json:"email,omitempty" db:"email"`
}
