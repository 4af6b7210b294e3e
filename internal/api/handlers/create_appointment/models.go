package create_appointment

import (
	"time"

	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
	Datetime        string  `json:"datetime"`           // "2025-01-06 10:00"
	DurationMinutes *int    `json:"duration,omitempty"` // nil - длительность услуги или по умолчанию
	Notes           *string `json:"notes,omitempty"`
	AppointmentType *string `json:"appointmentType,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
	Datetime        string  `json:"datetime"`
	EndsAt          string  `json:"endsAt"`
	DurationMinutes int     `json:"duration"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	AppointmentType *string `json:"appointmentType,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Маркер часового пояса в datetime отбрасывается, время считается локальным.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	startsAt, err := types.ParseWallClock(r.Datetime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   r.CustomerEmail,
		StartsAt:        startsAt,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
		AppointmentType: r.AppointmentType,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		CustomerName:    resp.CustomerName,
		CustomerPhone:   resp.CustomerPhone,
		CustomerEmail:   resp.CustomerEmail,
		Datetime:        resp.StartsAt.String(),
		EndsAt:          resp.EndsAt.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Notes:           resp.Notes,
		AppointmentType: resp.AppointmentType,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
