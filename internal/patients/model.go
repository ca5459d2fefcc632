package patients

import "time"

// Patient is a person record keyed by a short human-readable code of the
// form PT-#### and uniquely identified by canonical phone number.
type Patient struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	DOB       string    `json:"dob,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertInput carries the identity fields used to find-or-create a patient.
type UpsertInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	DOB       string `json:"dob"`
}

// UpdateInput carries a partial patient edit. Empty fields are left alone.
type UpdateInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	DOB       string `json:"dob"`
}
