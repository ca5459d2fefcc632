package appointments

import "time"

// Appointment links a patient to a visit on a calendar date. There is no
// time-of-day component; VisitDate is always ISO YYYY-MM-DD.
type Appointment struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	VisitDate string    `json:"visit_date"`
	CreatedAt time.Time `json:"created_at"`
}
