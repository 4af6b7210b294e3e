package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// 2025-01-06 - понедельник
const monday = "2025-01-06"

func mustDate(t *testing.T, s string) types.Date {
	t.Helper()
	d, err := types.ParseDate(s)
	require.NoError(t, err)
	return d
}

func mustWallClock(t *testing.T, s string) types.WallClock {
	t.Helper()
	w, err := types.ParseWallClock(s)
	require.NoError(t, err)
	return w
}

func interval(start, end string) domain.Interval {
	return domain.Interval{Start: types.TimeString(start), End: types.TimeString(end)}
}

func slot(start, end string) domain.Slot {
	return domain.Slot{Start: types.TimeString(start), End: types.TimeString(end)}
}

func weekdaySchedule(intervals ...domain.Interval) domain.WeeklySchedule {
	schedule := domain.WeeklySchedule{
		time.Saturday: {IsAvailable: false},
		time.Sunday:   {IsAvailable: false},
	}
	for _, day := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday} {
		schedule[day] = domain.DaySchedule{IsAvailable: true, Intervals: intervals}
	}
	return schedule
}

func appointment(t *testing.T, startsAt string, duration int, status domain.AppointmentStatus) domain.Appointment {
	t.Helper()
	return domain.Appointment{
		StartsAt:        mustWallClock(t, startsAt),
		DurationMinutes: duration,
		Status:          status,
	}
}

func TestNewEngine(t *testing.T) {
	_, err := NewEngine(0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	engine, err := NewEngine(10)
	require.NoError(t, err)
	assert.Equal(t, 10, engine.StepMinutes())

	assert.Equal(t, domain.DefaultSlotStepMinutes, NewDefaultEngine().StepMinutes())
}

func TestGenerateSlots_SplitDaySchedule(t *testing.T) {
	engine := NewDefaultEngine()
	schedule := weekdaySchedule(interval("09:00", "12:00"), interval("13:00", "17:00"))

	slots, err := engine.GenerateSlots(mustDate(t, monday), schedule, 30)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(slots), 3)
	assert.Equal(t, []domain.Slot{
		slot("09:00", "09:30"),
		slot("09:15", "09:45"),
		slot("09:30", "10:00"),
	}, slots[:3])

	// 09:00-12:00 дает 11 слотов, 13:00-17:00 - 15 слотов
	assert.Len(t, slots, 11+15)

	for _, s := range slots {
		// Ни один слот не пересекает перерыв 12:00-13:00
		crossesGap := s.Start.IsBefore("13:00") && s.End.IsAfter("12:00")
		assert.False(t, crossesGap, "slot %s-%s crosses the lunch gap", s.Start, s.End)
	}
	assert.Equal(t, slot("11:30", "12:00"), slots[10])
	assert.Equal(t, slot("13:00", "13:30"), slots[11])
}

func TestGenerateSlots_DurationAndStepProperties(t *testing.T) {
	engine := NewDefaultEngine()
	schedule := weekdaySchedule(interval("08:10", "11:55"))

	for _, duration := range []int{5, 15, 20, 45, 60, 90, 225} {
		slots, err := engine.GenerateSlots(mustDate(t, monday), schedule, duration)
		require.NoError(t, err)
		require.NotEmpty(t, slots, "duration %d", duration)

		assert.Equal(t, types.TimeString("08:10"), slots[0].Start)
		for i, s := range slots {
			assert.Equal(t, duration, s.End.Minutes()-s.Start.Minutes())
			assert.False(t, s.End.IsAfter("11:55"))
			if i > 0 {
				assert.Equal(t, 15, s.Start.Minutes()-slots[i-1].Start.Minutes())
			}
		}
	}
}

func TestGenerateSlots_BoundaryInclusion(t *testing.T) {
	engine := NewDefaultEngine()
	schedule := weekdaySchedule(interval("09:00", "10:00"))
	day := mustDate(t, monday)

	slots, err := engine.GenerateSlots(day, schedule, 60)
	require.NoError(t, err)
	assert.Equal(t, []domain.Slot{slot("09:00", "10:00")}, slots)

	slots, err = engine.GenerateSlots(day, schedule, 45)
	require.NoError(t, err)
	assert.Equal(t, []domain.Slot{slot("09:00", "09:45"), slot("09:15", "10:00")}, slots)

	slots, err = engine.GenerateSlots(day, schedule, 61)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_ClosedOrMissingDay(t *testing.T) {
	engine := NewDefaultEngine()
	schedule := weekdaySchedule(interval("09:00", "17:00"))

	// 2025-01-11 - суббота (закрыто)
	slots, err := engine.GenerateSlots(mustDate(t, "2025-01-11"), schedule, 30)
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)

	// Отсутствующий день считается закрытым
	delete(schedule, time.Monday)
	slots, err = engine.GenerateSlots(mustDate(t, monday), schedule, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)

	// Доступный день без интервалов
	schedule[time.Monday] = domain.DaySchedule{IsAvailable: true}
	slots, err = engine.GenerateSlots(mustDate(t, monday), schedule, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)

	// Пустое расписание
	slots, err = engine.GenerateSlots(mustDate(t, monday), nil, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_IntervalOrderIsPreserved(t *testing.T) {
	engine := NewDefaultEngine()
	schedule := domain.WeeklySchedule{
		time.Monday: {IsAvailable: true, Intervals: []domain.Interval{
			interval("14:00", "14:30"),
			interval("09:00", "09:30"),
		}},
	}

	slots, err := engine.GenerateSlots(mustDate(t, monday), schedule, 30)
	require.NoError(t, err)
	assert.Equal(t, []domain.Slot{slot("14:00", "14:30"), slot("09:00", "09:30")}, slots)
}

func TestGenerateSlots_CustomStep(t *testing.T) {
	engine, err := NewEngine(30)
	require.NoError(t, err)

	slots, err := engine.GenerateSlots(mustDate(t, monday), weekdaySchedule(interval("09:00", "10:30")), 30)
	require.NoError(t, err)
	assert.Equal(t, []domain.Slot{slot("09:00", "09:30"), slot("09:30", "10:00"), slot("10:00", "10:30")}, slots)
}

func TestGenerateSlots_InvalidInput(t *testing.T) {
	engine := NewDefaultEngine()
	day := mustDate(t, monday)

	_, err := engine.GenerateSlots(day, weekdaySchedule(interval("09:00", "10:00")), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = engine.GenerateSlots(day, weekdaySchedule(interval("09:00", "10:00")), -15)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = engine.GenerateSlots(day, weekdaySchedule(interval("10:00", "09:00")), 30)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = engine.GenerateSlots(day, weekdaySchedule(interval("9am", "10:00")), 30)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestIsBlackout(t *testing.T) {
	day := mustDate(t, monday)

	assert.False(t, IsBlackout(day, nil))
	assert.False(t, IsBlackout(day, []domain.BlackoutDate{}))

	assert.True(t, IsBlackout(day, []domain.BlackoutDate{{Date: mustDate(t, monday)}}))
	assert.False(t, IsBlackout(day, []domain.BlackoutDate{{Date: mustDate(t, "2024-01-06")}}))

	// Повторяющаяся дата совпадает в любом году
	assert.True(t, IsBlackout(day, []domain.BlackoutDate{{Date: mustDate(t, "2019-01-06"), IsRecurring: true}}))
	assert.False(t, IsBlackout(day, []domain.BlackoutDate{{Date: mustDate(t, "2019-01-07"), IsRecurring: true}}))
}

func TestGetAvailableSlots_BlackoutDominates(t *testing.T) {
	engine := NewDefaultEngine()
	schedule := weekdaySchedule(interval("09:00", "12:00"), interval("13:00", "17:00"))
	blackouts := []domain.BlackoutDate{{Date: mustDate(t, monday)}}

	slots, err := engine.GetAvailableSlots(mustDate(t, monday), schedule, blackouts, 30, nil)
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)

	// На следующий день blackout не действует
	slots, err = engine.GetAvailableSlots(mustDate(t, "2025-01-07"), schedule, blackouts, 30, nil)
	require.NoError(t, err)
	assert.Len(t, slots, 26)
}

func TestGetAvailableSlots_HalfOpenOverlap(t *testing.T) {
	engine := NewDefaultEngine()
	schedule := weekdaySchedule(interval("09:00", "12:00"))
	appointments := []domain.Appointment{
		appointment(t, monday+" 10:00", 30, domain.StatusConfirmed),
	}

	slots, err := engine.GetAvailableSlots(mustDate(t, monday), schedule, nil, 30, appointments)
	require.NoError(t, err)

	assert.NotContains(t, slots, slot("09:45", "10:15"))
	assert.NotContains(t, slots, slot("10:00", "10:30"))
	assert.NotContains(t, slots, slot("10:15", "10:45"))
	assert.Contains(t, slots, slot("09:30", "10:00"))
	assert.Contains(t, slots, slot("10:30", "11:00"))
}

func TestGetAvailableSlots_ConfirmedHourBlocksOverlappingSlots(t *testing.T) {
	engine := NewDefaultEngine()
	schedule := weekdaySchedule(interval("09:00", "12:00"), interval("13:00", "17:00"))
	appointments := []domain.Appointment{
		appointment(t, monday+" 10:00", 60, domain.StatusConfirmed),
	}

	slots, err := engine.GetAvailableSlots(mustDate(t, monday), schedule, nil, 30, appointments)
	require.NoError(t, err)

	assert.NotContains(t, slots, slot("09:45", "10:15"))
	assert.NotContains(t, slots, slot("10:00", "10:30"))
	assert.NotContains(t, slots, slot("10:15", "10:45"))
	assert.NotContains(t, slots, slot("10:30", "11:00"))
	assert.NotContains(t, slots, slot("10:45", "11:15"))
	assert.Contains(t, slots, slot("09:30", "10:00"))
	assert.Contains(t, slots, slot("11:00", "11:30"))

	// Порядок генератора сохраняется
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.IsBefore(slots[i].Start))
	}
}

func TestGetAvailableSlots_IgnoresCancelledAndOtherDays(t *testing.T) {
	engine := NewDefaultEngine()
	schedule := weekdaySchedule(interval("09:00", "12:00"))
	day := mustDate(t, monday)

	all, err := engine.GetAvailableSlots(day, schedule, nil, 30, nil)
	require.NoError(t, err)

	appointments := []domain.Appointment{
		appointment(t, monday+" 10:00", 60, domain.StatusCancelled),
		appointment(t, "2025-01-07 10:00", 60, domain.StatusConfirmed),
		appointment(t, "2025-01-13 10:00", 60, domain.StatusPending),
	}

	slots, err := engine.GetAvailableSlots(day, schedule, nil, 30, appointments)
	require.NoError(t, err)
	assert.Equal(t, all, slots)
}

func TestGetAvailableSlots_PendingAndCompletedOccupyTime(t *testing.T) {
	engine := NewDefaultEngine()
	schedule := weekdaySchedule(interval("09:00", "10:00"))

	for _, status := range []domain.AppointmentStatus{domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted} {
		appointments := []domain.Appointment{appointment(t, monday+" 09:00", 60, status)}
		slots, err := engine.GetAvailableSlots(mustDate(t, monday), schedule, nil, 30, appointments)
		require.NoError(t, err)
		assert.Empty(t, slots, "status %s", status)
	}
}

func TestGetAvailableSlots_Idempotent(t *testing.T) {
	engine := NewDefaultEngine()
	schedule := weekdaySchedule(interval("09:00", "12:00"), interval("13:00", "17:00"))
	appointments := []domain.Appointment{
		appointment(t, monday+" 09:30", 45, domain.StatusConfirmed),
		appointment(t, monday+" 15:00", 30, domain.StatusPending),
	}

	first, err := engine.GetAvailableSlots(mustDate(t, monday), schedule, nil, 30, appointments)
	require.NoError(t, err)
	second, err := engine.GetAvailableSlots(mustDate(t, monday), schedule, nil, 30, appointments)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, appointments, 2)
	assert.Equal(t, domain.StatusConfirmed, appointments[0].Status)
}

func TestGetAvailableSlots_InvalidInput(t *testing.T) {
	engine := NewDefaultEngine()

	_, err := engine.GetAvailableSlots(mustDate(t, monday), weekdaySchedule(interval("09:00", "10:00")), nil, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Некорректное расписание - ошибка даже в blackout-день
	blackouts := []domain.BlackoutDate{{Date: mustDate(t, monday)}}
	_, err = engine.GetAvailableSlots(mustDate(t, monday), weekdaySchedule(interval("12:00", "12:00")), blackouts, 30, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestIsSlotBookable(t *testing.T) {
	engine := NewDefaultEngine()
	schedule := weekdaySchedule(interval("09:00", "12:00"), interval("13:00", "17:00"))
	day := mustDate(t, monday)
	appointments := []domain.Appointment{
		appointment(t, monday+" 10:00", 60, domain.StatusConfirmed),
		appointment(t, monday+" 14:00", 30, domain.StatusCancelled),
	}

	tests := []struct {
		name     string
		start    string
		duration int
		want     bool
	}{
		{name: "aligned free slot", start: monday + " 09:00", duration: 30, want: true},
		{name: "ends exactly when booking starts", start: monday + " 09:30", duration: 30, want: true},
		{name: "starts exactly when booking ends", start: monday + " 11:00", duration: 30, want: true},
		{name: "overlaps booking", start: monday + " 09:45", duration: 30, want: false},
		{name: "inside booking", start: monday + " 10:15", duration: 30, want: false},
		{name: "offset by five minutes", start: monday + " 09:05", duration: 30, want: false},
		{name: "crosses lunch gap", start: monday + " 11:45", duration: 30, want: false},
		{name: "ends at interval end", start: monday + " 16:30", duration: 30, want: true},
		{name: "exceeds interval end", start: monday + " 16:45", duration: 30, want: false},
		{name: "cancelled booking frees time", start: monday + " 14:00", duration: 30, want: true},
		{name: "iso with zone marker", start: "2025-01-06T13:15:00Z", duration: 45, want: true},
		{name: "outside schedule", start: monday + " 08:00", duration: 30, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.IsSlotBookable(day, schedule, nil, mustWallClock(t, tt.start), tt.duration, appointments)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSlotBookable_MatchesGeneratedSlots(t *testing.T) {
	engine := NewDefaultEngine()
	schedule := weekdaySchedule(interval("09:00", "12:00"))
	day := mustDate(t, monday)
	appointments := []domain.Appointment{appointment(t, monday+" 10:30", 30, domain.StatusConfirmed)}

	free, err := engine.GetAvailableSlots(day, schedule, nil, 30, appointments)
	require.NoError(t, err)

	// Каждая минута дня: бронируемо ровно то, что есть в списке свободных слотов
	for minute := 0; minute < types.MinutesInDay-30; minute++ {
		tod, err := types.NewTimeStringFromMinutes(minute)
		require.NoError(t, err)
		start, err := types.NewWallClock(day, tod)
		require.NoError(t, err)

		end, err := tod.AddMinutes(30)
		require.NoError(t, err)

		bookable, err := engine.IsSlotBookable(day, schedule, nil, start, 30, appointments)
		require.NoError(t, err)
		assert.Equal(t, containsSlot(free, domain.Slot{Start: tod, End: end}), bookable, "start %s", tod)
	}
}

func TestIsSlotBookable_BlackoutAndWrongDay(t *testing.T) {
	engine := NewDefaultEngine()
	schedule := weekdaySchedule(interval("09:00", "12:00"))
	day := mustDate(t, monday)

	ok, err := engine.IsSlotBookable(day, schedule, []domain.BlackoutDate{{Date: day}}, mustWallClock(t, monday+" 09:00"), 30, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = engine.IsSlotBookable(day, schedule, nil, mustWallClock(t, "2025-01-07 09:00"), 30, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsSlotBookable_InvalidInput(t *testing.T) {
	engine := NewDefaultEngine()
	schedule := weekdaySchedule(interval("09:00", "12:00"))
	day := mustDate(t, monday)

	_, err := engine.IsSlotBookable(day, schedule, nil, mustWallClock(t, monday+" 09:00"), 0, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = engine.IsSlotBookable(day, schedule, nil, types.WallClock{}, 30, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestComputePeriodSummary(t *testing.T) {
	engine := NewDefaultEngine()
	schedule := weekdaySchedule(interval("09:00", "12:00"))

	start := mustDate(t, monday)                                          // понедельник
	end := mustDate(t, "2025-01-13")                                      // следующий понедельник, не включается в подсчет слотов
	blackouts := []domain.BlackoutDate{{Date: mustDate(t, "2025-01-08")}} // среда

	appointments := []domain.Appointment{
		appointment(t, monday+" 09:00", 30, domain.StatusConfirmed),    // -1 слот 09:00 и -1 слот 09:15 в понедельник
		appointment(t, "2025-01-08 10:00", 30, domain.StatusConfirmed), // в blackout-день
		appointment(t, "2025-01-09 10:00", 30, domain.StatusCancelled), // не учитывается
		appointment(t, "2025-01-13 09:00", 30, domain.StatusPending),   // последний день входит в подсчет записей
		appointment(t, "2025-01-14 09:00", 30, domain.StatusConfirmed), // за пределами периода
	}

	summary, err := engine.ComputePeriodSummary(start, end, schedule, blackouts, appointments, 30)
	require.NoError(t, err)

	// Пн-Пт по 11 слотов, среда закрыта blackout: 4 дня * 11 - 2 занятых в понедельник
	assert.Equal(t, 4*11-2, summary.TotalAvailableSlots)
	assert.Equal(t, 3, summary.TotalAppointments)
}

func TestComputePeriodSummary_EmptyAndInvalidRange(t *testing.T) {
	engine := NewDefaultEngine()
	schedule := weekdaySchedule(interval("09:00", "12:00"))
	day := mustDate(t, monday)

	summary, err := engine.ComputePeriodSummary(day, day, schedule, nil, []domain.Appointment{
		appointment(t, monday+" 09:00", 30, domain.StatusConfirmed),
	}, 30)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalAvailableSlots)
	assert.Equal(t, 1, summary.TotalAppointments)

	_, err = engine.ComputePeriodSummary(day, day.AddDays(-1), schedule, nil, nil, 30)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = engine.ComputePeriodSummary(day, day.AddDays(1), schedule, nil, nil, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func containsSlot(slots []domain.Slot, target domain.Slot) bool {
	for _, s := range slots {
		if s == target {
			return true
		}
	}
	return false
}
