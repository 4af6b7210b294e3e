package types

import (
	"fmt"
	"strings"
	"time"
)

// WallClockLayout канонический формат локальной даты и времени
const WallClockLayout = "YYYY-MM-DD HH:mm"

// WallClock локальные дата и время "как на настенных часах".
// Никогда не содержит часового пояса или смещения: два значения сравниваются как наивные локальные.
// На границах системы всегда передается через строку "YYYY-MM-DD HH:mm".
type WallClock struct {
	date    Date
	minutes int // минуты с начала суток, [0, MinutesInDay)
}

// NewWallClock собирает значение из даты и времени суток
func NewWallClock(date Date, t TimeString) (WallClock, error) {
	if date.IsZero() {
		return WallClock{}, fmt.Errorf("%w: empty date", ErrInvalidWallClock)
	}
	minutes, err := parseClock(string(t))
	if err != nil {
		return WallClock{}, fmt.Errorf("%w: %v", ErrInvalidWallClock, err)
	}
	return WallClock{date: date, minutes: minutes}, nil
}

// ParseWallClock парсит "YYYY-MM-DD HH:mm" и ISO-подобную форму "YYYY-MM-DDTHH:mm[:ss[.fff]][Z|±hh:mm]".
// Маркер часового пояса отбрасывается, а не интерпретируется. Секунды отбрасываются.
func ParseWallClock(s string) (WallClock, error) {
	s = strings.TrimSpace(s)
	if len(s) < dateLen+1+timeStringLen {
		return WallClock{}, fmt.Errorf("%w: %q", ErrInvalidWallClock, s)
	}

	sep := s[dateLen]
	if sep != ' ' && sep != 'T' && sep != 't' {
		return WallClock{}, fmt.Errorf("%w: %q", ErrInvalidWallClock, s)
	}

	date, err := ParseDate(s[:dateLen])
	if err != nil {
		return WallClock{}, fmt.Errorf("%w: %q", ErrInvalidWallClock, s)
	}

	clock := stripZoneMarker(s[dateLen+1:])

	// Дробная часть секунд
	if idx := strings.IndexByte(clock, '.'); idx >= 0 {
		clock = clock[:idx]
	}

	switch len(clock) {
	case timeStringLen:
	case timeStringLen + 3:
		if clock[timeStringLen] != ':' {
			return WallClock{}, fmt.Errorf("%w: %q", ErrInvalidWallClock, s)
		}
		seconds, err := parseDigits(clock[timeStringLen+1:])
		if err != nil || seconds > 59 {
			return WallClock{}, fmt.Errorf("%w: %q", ErrInvalidWallClock, s)
		}
		clock = clock[:timeStringLen]
	default:
		return WallClock{}, fmt.Errorf("%w: %q", ErrInvalidWallClock, s)
	}

	minutes, err := parseClock(clock)
	if err != nil {
		return WallClock{}, fmt.Errorf("%w: %q", ErrInvalidWallClock, s)
	}

	return WallClock{date: date, minutes: minutes}, nil
}

// stripZoneMarker убирает "Z" или смещение "+hh:mm" / "-hhmm" в конце строки времени
func stripZoneMarker(clock string) string {
	if strings.HasSuffix(clock, "Z") || strings.HasSuffix(clock, "z") {
		return clock[:len(clock)-1]
	}
	// Знак смещения может встретиться только после "HH:MM"
	if idx := strings.IndexAny(clock, "+-"); idx >= timeStringLen {
		return clock[:idx]
	}
	return clock
}

// Date возвращает календарную дату
func (w WallClock) Date() Date {
	return w.date
}

// TimeOfDay возвращает время суток
func (w WallClock) TimeOfDay() TimeString {
	t, _ := NewTimeStringFromMinutes(w.minutes)
	return t
}

// MinuteOfDay возвращает минуты с начала суток
func (w WallClock) MinuteOfDay() int {
	return w.minutes
}

// Weekday возвращает день недели
func (w WallClock) Weekday() time.Weekday {
	return w.date.Weekday()
}

// AddMinutes прибавляет минуты, при необходимости переходя на другой день
func (w WallClock) AddMinutes(n int) WallClock {
	total := w.date.days()*MinutesInDay + w.minutes + n
	return WallClock{
		date:    dateFromDays(floorDiv(total, MinutesInDay)),
		minutes: floorMod(total, MinutesInDay),
	}
}

// IsZero возвращает true для нулевого значения
func (w WallClock) IsZero() bool {
	return w.date.IsZero() && w.minutes == 0
}

func (w WallClock) Compare(other WallClock) int {
	if c := w.date.Compare(other.date); c != 0 {
		return c
	}
	switch {
	case w.minutes < other.minutes:
		return -1
	case w.minutes > other.minutes:
		return 1
	default:
		return 0
	}
}

func (w WallClock) Before(other WallClock) bool { return w.Compare(other) < 0 }
func (w WallClock) After(other WallClock) bool  { return w.Compare(other) > 0 }
func (w WallClock) Equal(other WallClock) bool  { return w == other }

func (w WallClock) String() string {
	return w.date.String() + " " + w.TimeOfDay().String()
}

// MarshalText реализует encoding.TextMarshaler
func (w WallClock) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler
func (w *WallClock) UnmarshalText(text []byte) error {
	parsed, err := ParseWallClock(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
