package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модели

// UpdateConfigRequest запрос на обновление конфигурации доступности.
// Все поля опциональны; если активной конфигурации нет, WeeklySchedule обязателен.
type UpdateConfigRequest struct {
	WeeklySchedule         *domain.WeeklySchedule `json:"weeklySchedule,omitempty"`
	SlotStepMinutes        *int                   `json:"slotStepMinutes,omitempty"`
	DefaultDurationMinutes *int                   `json:"defaultDuration,omitempty"`
}

// AddBlackoutRequest запрос на добавление blackout-даты
type AddBlackoutRequest struct {
	Date        string  `json:"date"` // "2025-12-25"
	Reason      *string `json:"reason,omitempty"`
	IsRecurring bool    `json:"isRecurring"`
}

// Response модели

// ConfigResponse ответ с активной конфигурацией
type ConfigResponse struct {
	ID                     int64                 `json:"id"`
	WeeklySchedule         domain.WeeklySchedule `json:"weeklySchedule"`
	SlotStepMinutes        int                   `json:"slotStepMinutes"`
	DefaultDurationMinutes int                   `json:"defaultDuration"`
	IsActive               bool                  `json:"isActive"`
	CreatedAt              time.Time             `json:"createdAt"`
	UpdatedAt              time.Time             `json:"updatedAt"`
}

// BlackoutResponse ответ с blackout-датой
type BlackoutResponse struct {
	ID          int64     `json:"id"`
	Date        string    `json:"date"`
	Reason      *string   `json:"reason,omitempty"`
	IsRecurring bool      `json:"isRecurring"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BlackoutListResponse ответ со списком blackout-дат
type BlackoutListResponse struct {
	BlackoutDates []BlackoutResponse `json:"blackoutDates"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.AvailabilityConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	return &ConfigResponse{
		ID:                     c.ID,
		WeeklySchedule:         c.WeeklySchedule,
		SlotStepMinutes:        c.StepOrDefault(),
		DefaultDurationMinutes: c.DefaultDurationMinutes,
		IsActive:               c.IsActive,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}

// FromDomainBlackout конвертирует domain модель в DTO
func FromDomainBlackout(b *domain.BlackoutDate) *BlackoutResponse {
	if b == nil {
		return nil
	}

	return &BlackoutResponse{
		ID:          b.ID,
		Date:        b.Date.String(),
		Reason:      b.Reason,
		IsRecurring: b.IsRecurring,
		CreatedAt:   b.CreatedAt,
	}
}

// FromDomainBlackoutList конвертирует список domain моделей в DTO
func FromDomainBlackoutList(blackouts []domain.BlackoutDate) *BlackoutListResponse {
	resp := &BlackoutListResponse{
		BlackoutDates: make([]BlackoutResponse, 0, len(blackouts)),
	}

	for i := range blackouts {
		resp.BlackoutDates = append(resp.BlackoutDates, *FromDomainBlackout(&blackouts[i]))
	}

	return resp
}
