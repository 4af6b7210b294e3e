package events

import "time"

// Типы событий о записях
const (
	TypeAppointmentCreated   = "appointment.created"
	TypeAppointmentCancelled = "appointment.cancelled"
)

// Event событие, которое публикуется в kafka
type Event struct {
	ID         string             `json:"id"`
	Type       string             `json:"type"`
	OccurredAt time.Time          `json:"occurredAt"`
	Data       AppointmentPayload `json:"data"`
}

// AppointmentPayload данные записи в событии
type AppointmentPayload struct {
	AppointmentID   int64   `json:"appointmentId"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	StartsAt        string  `json:"startsAt"` // "YYYY-MM-DD HH:mm", без часового пояса
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	AppointmentType *string `json:"appointmentType,omitempty"`
}
