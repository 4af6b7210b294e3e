package availability

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// minuteRange полуинтервал [start, end) в минутах от начала суток
type minuteRange struct {
	start int
	end   int
}

// overlaps проверяет РЕАЛЬНОЕ пересечение полуинтервалов.
// Интервалы, которые только соприкасаются границами, не пересекаются:
// - [09:30, 10:00) и [10:00, 10:30) -> нет пересечения
// - [09:45, 10:15) и [10:00, 10:30) -> есть пересечение
func (r minuteRange) overlaps(other minuteRange) bool {
	return r.start < other.end && r.end > other.start
}

// bookingIndex занятое время одного дня
type bookingIndex []minuteRange

// newBookingIndex строит занятые интервалы из записей, начинающихся в указанный день.
// Отмененные записи время не занимают. Конец записи может выходить за полночь,
// на следующий день такая запись не переносится.
func newBookingIndex(day types.Date, appointments []domain.Appointment) bookingIndex {
	index := make(bookingIndex, 0, len(appointments))
	for i := range appointments {
		appt := &appointments[i]
		if !appt.IsActive() || !appt.StartsAt.Date().Equal(day) {
			continue
		}
		start := appt.StartsAt.MinuteOfDay()
		index = append(index, minuteRange{start: start, end: start + appt.DurationMinutes})
	}
	return index
}

// isFree возвращает true, если интервал не пересекается ни с одной записью
func (idx bookingIndex) isFree(r minuteRange) bool {
	for _, occupied := range idx {
		if r.overlaps(occupied) {
			return false
		}
	}
	return true
}
