package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// BlackoutDate represents a calendar day fully excluded from booking
type BlackoutDate struct {
	ID          int64
	Date        types.Date
	Reason      *string
	IsRecurring bool // Matches the same month and day in any year
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Matches returns true if the blackout covers the given day
func (b *BlackoutDate) Matches(day types.Date) bool {
	if b.IsRecurring {
		return b.Date.SameMonthDay(day)
	}
	return b.Date.Equal(day)
}
