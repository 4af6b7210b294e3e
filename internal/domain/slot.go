package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// Slot is a candidate bookable interval within one day, half-open [Start, End)
type Slot struct {
	Start types.TimeString
	End   types.TimeString
}

// PeriodSummary aggregated calendar figures for a period
type PeriodSummary struct {
	TotalAppointments   int
	TotalAvailableSlots int
}
