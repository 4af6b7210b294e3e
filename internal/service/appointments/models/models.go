package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidFilter возвращается при некорректном фильтре
	ErrInvalidFilter = errors.New("invalid appointments filter")
)

// Request модели

// ListRequest запрос на получение списка записей
type ListRequest struct {
	StartDate        *string `json:"startDate,omitempty"` // "2025-01-06", включительно
	EndDate          *string `json:"endDate,omitempty"`   // "2025-01-12", включительно
	Status           *string `json:"status,omitempty"`
	IncludeCancelled bool    `json:"includeCancelled,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{IncludeCancelled: r.IncludeCancelled}

	if r.StartDate != nil {
		d, err := types.ParseDate(*r.StartDate)
		if err != nil {
			return filter, fmt.Errorf("%w: startDate: %v", ErrInvalidFilter, err)
		}
		filter.StartDate = &d
	}
	if r.EndDate != nil {
		d, err := types.ParseDate(*r.EndDate)
		if err != nil {
			return filter, fmt.Errorf("%w: endDate: %v", ErrInvalidFilter, err)
		}
		filter.EndDate = &d
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return filter, fmt.Errorf("%w: endDate is before startDate", ErrInvalidFilter)
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateRequest частичное обновление записи, nil означает "не менять"
type UpdateRequest struct {
	CustomerName    *string `json:"customerName,omitempty"`
	CustomerPhone   *string `json:"customerPhone,omitempty"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
	Datetime        *string `json:"datetime,omitempty"` // "2025-01-06 10:00"
	DurationMinutes *int    `json:"duration,omitempty"`
	Status          *string `json:"status,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	AppointmentType *string `json:"appointmentType,omitempty"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
	Datetime        string  `json:"datetime"` // "2025-01-06 10:00"
	EndsAt          string  `json:"endsAt"`
	DurationMinutes int     `json:"duration"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	AppointmentType *string `json:"appointmentType,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		CustomerName:    a.CustomerName,
		CustomerPhone:   a.CustomerPhone,
		CustomerEmail:   a.CustomerEmail,
		Datetime:        a.StartsAt.String(),
		EndsAt:          a.EndsAt().String(),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		Notes:           a.Notes,
		AppointmentType: a.AppointmentType,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if item := FromDomainAppointment(appt); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s, nil
}
