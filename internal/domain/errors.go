package domain

import "errors"

var (
	// ErrInvalidSchedule is returned when a weekly schedule has a malformed shape
	ErrInvalidSchedule = errors.New("invalid weekly schedule")

	// ErrInvalidCustomer is returned when customer contact data is malformed
	ErrInvalidCustomer = errors.New("invalid customer data")
)
