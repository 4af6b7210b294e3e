package domain

import "time"

// DefaultCurrency is applied when a service is created without a currency
const DefaultCurrency = "EUR"

// Service is a bookable offering from the catalog
type Service struct {
	ID              int64
	Name            string
	Description     *string
	PriceCents      int64 // Minor currency units
	Currency        string
	DurationMinutes *int // Nil means the configured default duration applies
	IsActive        bool
	SortOrder       int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
