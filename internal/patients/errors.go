package patients

import "errors"

var (
	// ErrInvalidPhone is returned when the phone cannot be normalized.
	// The message is shown verbatim in import reports.
	ErrInvalidPhone = errors.New("Invalid phone number")

	// ErrDuplicatePhone is returned by Create when the phone already belongs
	// to an existing patient.
	ErrDuplicatePhone = errors.New("a patient with this phone number already exists")

	// ErrPhoneTaken is returned by Update when the new phone belongs to a
	// different patient.
	ErrPhoneTaken = errors.New("phone number belongs to another patient")

	// ErrPatientNotFound is returned when the target patient does not exist.
	ErrPatientNotFound = errors.New("patient not found")

	// ErrCodeExhausted is returned when no free PT-#### code was found within
	// the retry budget.
	ErrCodeExhausted = errors.New("could not allocate a unique patient code")
)
