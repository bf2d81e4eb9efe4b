package report

import "errors"

var (
	// ErrInvalidRange means the end date is before the start date.
	ErrInvalidRange = errors.New("end date before start date")
	// ErrInvalidCutoff means the requested period length is below one day.
	ErrInvalidCutoff = errors.New("cutoff days must be at least 1")
	// ErrInvalidRate means a negative hourly rate was supplied.
	ErrInvalidRate = errors.New("hourly rate must not be negative")
	// ErrEmptyEmployee means generation was requested without an employee name.
	ErrEmptyEmployee = errors.New("employee name is required")
	// ErrNoReport means an export was requested before any report was generated.
	ErrNoReport = errors.New("no report has been generated")
)
