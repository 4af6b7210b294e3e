package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	PriceCents      *int64  `json:"priceCents"`
	Currency        *string `json:"currency,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	SortOrder       *int    `json:"sortOrder,omitempty"`
}

// UpdateServiceRequest запрос на частичное обновление услуги
type UpdateServiceRequest struct {
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	PriceCents      *int64  `json:"priceCents,omitempty"`
	Currency        *string `json:"currency,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	SortOrder       *int    `json:"sortOrder,omitempty"`
}

// Response модели

// ServiceResponse ответ с услугой
type ServiceResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	PriceCents      int64     `json:"priceCents"`
	Currency        string    `json:"currency"`
	DurationMinutes *int      `json:"durationMinutes,omitempty"`
	IsActive        bool      `json:"isActive"`
	SortOrder       int       `json:"sortOrder"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		PriceCents:      s.PriceCents,
		Currency:        s.Currency,
		DurationMinutes: s.DurationMinutes,
		IsActive:        s.IsActive,
		SortOrder:       s.SortOrder,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
