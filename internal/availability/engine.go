package availability

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Engine единый источник ответа на вопросы "что можно забронировать" и "можно ли забронировать вот это".
//
// Engine - чистое вычисление над переданными данными: не хранит состояние между вызовами,
// не меняет входные данные, не логирует и безопасен для конкурентного использования.
// Расписание, blackout-даты и записи вызывающий код передает согласованным снимком.
// Проверка не является резервированием: гонку "проверил - записал" закрывает слой хранения.
type Engine struct {
	stepMinutes int
}

// NewEngine создает движок с шагом генерации слотов stepMinutes
func NewEngine(stepMinutes int) (*Engine, error) {
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot step must be positive, got %d", ErrInvalidInput, stepMinutes)
	}
	return &Engine{stepMinutes: stepMinutes}, nil
}

// NewDefaultEngine создает движок с шагом domain.DefaultSlotStepMinutes
func NewDefaultEngine() *Engine {
	return &Engine{stepMinutes: domain.DefaultSlotStepMinutes}
}

// StepMinutes возвращает шаг генерации слотов
func (e *Engine) StepMinutes() int {
	return e.stepMinutes
}

// GetAvailableSlots возвращает свободные слоты дня в порядке GenerateSlots.
// Blackout-день дает пустой список. Слот исключается, если пересекается с любой неотмененной записью дня.
func (e *Engine) GetAvailableSlots(
	day types.Date,
	schedule domain.WeeklySchedule,
	blackouts []domain.BlackoutDate,
	durationMinutes int,
	appointments []domain.Appointment,
) ([]domain.Slot, error) {
	if err := validateDuration(durationMinutes); err != nil {
		return nil, err
	}
	if err := validateSchedule(schedule); err != nil {
		return nil, err
	}

	free := e.freeRanges(day, schedule, blackouts, durationMinutes, appointments)
	return toSlots(free)
}

// IsSlotBookable проверяет конкретный запрос.
//
// Слот бронируем, только если пара {начало, конец} в точности совпадает с одним из сгенерированных
// слотов дня и не пересекается с неотмененными записями. Точное совпадение гарантирует, что начало
// выровнено по шагу генерации, а не произвольно по минутам.
// Запрос на дату, отличную от day, не бронируем.
func (e *Engine) IsSlotBookable(
	day types.Date,
	schedule domain.WeeklySchedule,
	blackouts []domain.BlackoutDate,
	requestedStart types.WallClock,
	durationMinutes int,
	appointments []domain.Appointment,
) (bool, error) {
	if err := validateDuration(durationMinutes); err != nil {
		return false, err
	}
	if err := validateSchedule(schedule); err != nil {
		return false, err
	}
	if requestedStart.IsZero() {
		return false, fmt.Errorf("%w: requested start is required", ErrInvalidInput)
	}

	if !requestedStart.Date().Equal(day) {
		return false, nil
	}
	if IsBlackout(day, blackouts) {
		return false, nil
	}

	start := requestedStart.MinuteOfDay()
	requested := minuteRange{start: start, end: start + durationMinutes}

	matched := false
	for _, candidate := range e.candidateRanges(day, schedule, durationMinutes) {
		if candidate == requested {
			matched = true
			break
		}
	}
	if !matched {
		return false, nil
	}

	return newBookingIndex(day, appointments).isFree(requested), nil
}

// ComputePeriodSummary считает сводку за период для обзорной сетки календаря.
//
// Свободные слоты суммируются по дням [startDay, endDay) (конец не включается), blackout-дни пропускаются.
// Записи считаются по дням [startDay, endDay] включительно с обеих сторон, отмененные не учитываются.
func (e *Engine) ComputePeriodSummary(
	startDay types.Date,
	endDay types.Date,
	schedule domain.WeeklySchedule,
	blackouts []domain.BlackoutDate,
	appointments []domain.Appointment,
	defaultDurationMinutes int,
) (domain.PeriodSummary, error) {
	if err := validateDuration(defaultDurationMinutes); err != nil {
		return domain.PeriodSummary{}, err
	}
	if err := validateSchedule(schedule); err != nil {
		return domain.PeriodSummary{}, err
	}
	if endDay.Before(startDay) {
		return domain.PeriodSummary{}, fmt.Errorf("%w: period end %s is before start %s", ErrInvalidInput, endDay, startDay)
	}

	summary := domain.PeriodSummary{}

	for day := startDay; day.Before(endDay); day = day.AddDays(1) {
		if IsBlackout(day, blackouts) {
			continue
		}
		summary.TotalAvailableSlots += len(e.freeRanges(day, schedule, blackouts, defaultDurationMinutes, appointments))
	}

	for i := range appointments {
		appt := &appointments[i]
		if !appt.IsActive() {
			continue
		}
		date := appt.StartsAt.Date()
		if !date.Before(startDay) && !date.After(endDay) {
			summary.TotalAppointments++
		}
	}

	return summary, nil
}

// freeRanges кандидаты дня без пересечений с занятым временем; входные данные уже проверены
func (e *Engine) freeRanges(
	day types.Date,
	schedule domain.WeeklySchedule,
	blackouts []domain.BlackoutDate,
	durationMinutes int,
	appointments []domain.Appointment,
) []minuteRange {
	if IsBlackout(day, blackouts) {
		return []minuteRange{}
	}

	candidates := e.candidateRanges(day, schedule, durationMinutes)
	index := newBookingIndex(day, appointments)

	free := make([]minuteRange, 0, len(candidates))
	for _, candidate := range candidates {
		if index.isFree(candidate) {
			free = append(free, candidate)
		}
	}
	return free
}
