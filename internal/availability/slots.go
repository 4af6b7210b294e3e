package availability

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// GenerateSlots перечисляет все слоты длительностью durationMinutes внутри открытых интервалов дня.
//
// Для каждого интервала (в порядке хранения) слоты начинаются с начала интервала и идут с шагом
// e.stepMinutes, пока начало + длительность <= конец интервала (слот, заканчивающийся ровно в конце
// интервала, допустим). Слоты разных интервалов просто склеиваются, без слияния и дедупликации,
// поэтому первый слот в списке - самый ранний.
//
// Закрытый день, отсутствующий день или длительность длиннее любого интервала дают пустой список.
func (e *Engine) GenerateSlots(day types.Date, schedule domain.WeeklySchedule, durationMinutes int) ([]domain.Slot, error) {
	if err := validateDuration(durationMinutes); err != nil {
		return nil, err
	}
	if err := validateSchedule(schedule); err != nil {
		return nil, err
	}

	ranges := e.candidateRanges(day, schedule, durationMinutes)
	return toSlots(ranges)
}

// candidateRanges генерирует кандидатов в минутах; расписание должно быть уже проверено
func (e *Engine) candidateRanges(day types.Date, schedule domain.WeeklySchedule, durationMinutes int) []minuteRange {
	daySchedule := schedule.Day(day.Weekday())
	if !daySchedule.IsOpen() {
		return []minuteRange{}
	}

	ranges := make([]minuteRange, 0)
	for _, interval := range daySchedule.Intervals {
		start := interval.Start.Minutes()
		end := interval.End.Minutes()

		for current := start; current+durationMinutes <= end; current += e.stepMinutes {
			ranges = append(ranges, minuteRange{start: current, end: current + durationMinutes})
		}
	}

	return ranges
}

func toSlots(ranges []minuteRange) ([]domain.Slot, error) {
	slots := make([]domain.Slot, 0, len(ranges))
	for _, r := range ranges {
		start, err := types.NewTimeStringFromMinutes(r.start)
		if err != nil {
			return nil, fmt.Errorf("%w: slot start: %v", ErrInvalidInput, err)
		}
		end, err := types.NewTimeStringFromMinutes(r.end)
		if err != nil {
			return nil, fmt.Errorf("%w: slot end: %v", ErrInvalidInput, err)
		}
		slots = append(slots, domain.Slot{Start: start, End: end})
	}
	return slots, nil
}

func validateDuration(durationMinutes int) error {
	if durationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidInput, durationMinutes)
	}
	return nil
}

func validateSchedule(schedule domain.WeeklySchedule) error {
	if err := schedule.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
