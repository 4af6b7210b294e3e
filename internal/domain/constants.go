package domain

// Default configuration values
const (
	DefaultSlotStepMinutes         = 15
	DefaultAppointmentMinutes      = 30
	DefaultOverviewDurationMinutes = 30
)

// Business validation constants
const (
	MinDurationMinutes      = 5
	MaxDurationMinutes      = 480 // 8 hours
	MinSlotStepMinutes      = 5
	MaxSlotStepMinutes      = 240
	MaxOverviewPeriodDays   = 366
	MaxNotesLength          = 1000
	MaxCustomerNameLength   = 255
	MaxBlackoutReasonLength = 255
)

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM, naive local
)
