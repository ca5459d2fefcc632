package importer

// RowError attributes one failure to one input row. Row 0 marks wholesale
// file-level failures.
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// Result is the per-invocation import report returned to the caller. Success
// is deliberately lenient: true whenever any patient was created or updated,
// regardless of row-level errors.
type Result struct {
	Success             bool       `json:"success"`
	TotalRows           int        `json:"totalRows"`
	PatientsCreated     int        `json:"patientsCreated"`
	PatientsUpdated     int        `json:"patientsUpdated"`
	AppointmentsCreated int        `json:"appointmentsCreated"`
	TasksCreated        int        `json:"tasksCreated"`
	Errors              []RowError `json:"errors"`
}

func newResult() *Result {
	return &Result{Errors: []RowError{}}
}

func (r *Result) addError(row int, msg string) {
	r.Errors = append(r.Errors, RowError{Row: row, Error: msg})
}
