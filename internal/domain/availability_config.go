package domain

import "time"

// AvailabilityConfig is the business availability definition.
// Callers load the active config and hand it to the engine explicitly.
type AvailabilityConfig struct {
	ID                     int64
	WeeklySchedule         WeeklySchedule
	SlotStepMinutes        int
	DefaultDurationMinutes int
	IsActive               bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// StepOrDefault returns the configured slot step, falling back to DefaultSlotStepMinutes
func (c *AvailabilityConfig) StepOrDefault() int {
	if c.SlotStepMinutes <= 0 {
		return DefaultSlotStepMinutes
	}
	return c.SlotStepMinutes
}
