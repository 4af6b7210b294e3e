package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Executor исполняет вызовы инструментов поверх usecase'ов доступности и записи
type Executor struct {
	slots   SlotsUseCase
	booking BookingUseCase
	logger  Logger
}

// NewExecutor создает исполнитель инструментов
func NewExecutor(slots SlotsUseCase, booking BookingUseCase, logger Logger) *Executor {
	return &Executor{
		slots:   slots,
		booking: booking,
		logger:  logger,
	}
}

// AvailabilityResult результат checkAvailability
type AvailabilityResult struct {
	Date           string     `json:"date"`
	Duration       int        `json:"duration"`
	AvailableSlots []SlotView `json:"availableSlots"`
}

// SlotView свободный слот
type SlotView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BookingResult результат bookAppointment
type BookingResult struct {
	Success     bool            `json:"success"`
	Appointment AppointmentView `json:"appointment"`
}

// AppointmentView созданная запись
type AppointmentView struct {
	ID            int64   `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Datetime      string  `json:"datetime"`
	Duration      int     `json:"duration"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
}

type checkAvailabilityArgs struct {
	Date     string  `json:"date"`
	Duration float64 `json:"duration"`
}

type bookAppointmentArgs struct {
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Datetime      string  `json:"datetime"`
	Duration      float64 `json:"duration"`
	Notes         *string `json:"notes"`
}

// Execute выполняет инструмент name с JSON-аргументами args.
// Ошибки usecase'ов возвращаются как есть, чтобы вызывающий код мог их различать через errors.Is.
func (e *Executor) Execute(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	e.logger.Info("Assistant: executing tool %s", name)

	switch name {
	case ToolCheckAvailability:
		return e.checkAvailability(ctx, args)
	case ToolBookAppointment:
		return e.bookAppointment(ctx, args)
	default:
		e.logger.Warn("Assistant: unknown tool %q", name)
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
}

func (e *Executor) checkAvailability(ctx context.Context, raw json.RawMessage) (*AvailabilityResult, error) {
	var args checkAvailabilityArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}

	date, err := types.ParseDate(args.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date: %v", ErrInvalidArguments, err)
	}
	duration, err := wholeMinutes(args.Duration)
	if err != nil {
		return nil, err
	}

	resp, err := e.slots.Execute(ctx, &get_available_slots.Request{Date: date, DurationMinutes: ptr.Ptr(duration)})
	if err != nil {
		return nil, err
	}

	result := &AvailabilityResult{
		Date:           resp.Date.String(),
		Duration:       resp.DurationMinutes,
		AvailableSlots: make([]SlotView, 0, len(resp.Slots)),
	}
	for _, slot := range resp.Slots {
		result.AvailableSlots = append(result.AvailableSlots, SlotView{Start: slot.Start.String(), End: slot.End.String()})
	}

	return result, nil
}

func (e *Executor) bookAppointment(ctx context.Context, raw json.RawMessage) (*BookingResult, error) {
	var args bookAppointmentArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}

	// Маркер часового пояса отбрасывается: время всегда локальное
	startsAt, err := types.ParseWallClock(args.Datetime)
	if err != nil {
		return nil, fmt.Errorf("%w: datetime: %v", ErrInvalidArguments, err)
	}
	duration, err := wholeMinutes(args.Duration)
	if err != nil {
		return nil, err
	}

	resp, err := e.booking.Execute(ctx, &create_appointment.Request{
		CustomerName:    args.CustomerName,
		CustomerPhone:   args.CustomerPhone,
		StartsAt:        startsAt,
		DurationMinutes: ptr.Ptr(duration),
		Notes:           args.Notes,
	})
	if err != nil {
		return nil, err
	}

	return &BookingResult{
		Success: true,
		Appointment: AppointmentView{
			ID:            resp.ID,
			CustomerName:  resp.CustomerName,
			CustomerPhone: resp.CustomerPhone,
			Datetime:      resp.StartsAt.String(),
			Duration:      resp.DurationMinutes,
			Status:        resp.Status,
			Notes:         resp.Notes,
		},
	}, nil
}

// wholeMinutes требует положительное целое число минут
func wholeMinutes(v float64) (int, error) {
	if v <= 0 || v != math.Trunc(v) || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: duration must be a positive whole number of minutes, got %v", ErrInvalidArguments, v)
	}
	return int(v), nil
}
