package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

const (
	// MinutesInDay количество минут в сутках
	MinutesInDay = 24 * 60

	timeStringLen = 5 // HH:MM
)

// TimeString время суток в формате "HH:MM" в диапазоне [00:00, 24:00).
// Не содержит ни даты, ни часового пояса.
type TimeString string

// NewTimeStringFromString парсит строку "HH:MM" (или "HH:MM:SS" с нулевыми секундами, как её возвращает БД)
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) == 8 {
		if s[5] != ':' || s[6:] != "00" {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
		s = s[:timeStringLen]
	}

	minutes, err := parseClock(s)
	if err != nil {
		return "", err
	}

	return NewTimeStringFromMinutes(minutes)
}

// NewTimeStringFromMinutes создает время из количества минут с начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= MinutesInDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOverflow, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// NewTimeString берет часы и минуты из time.Time как есть, без перевода в другой пояс
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// Minutes возвращает количество минут с начала суток.
// Для некорректного значения возвращает -1.
func (t TimeString) Minutes() int {
	minutes, err := parseClock(string(t))
	if err != nil {
		return -1
	}
	return minutes
}

// AddMinutes прибавляет минуты. Переход через полночь считается ошибкой.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := parseClock(string(t))
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(current + minutes)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	_, err := parseClock(string(t))
	return err
}

func (t TimeString) String() string {
	return string(t)
}

// Scan реализует sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: TimeString from %T", ErrUnsupportedScanType, src)
	}

	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// parseClock разбирает строго "HH:MM" в минуты с начала суток
func parseClock(s string) (int, error) {
	if len(s) != timeStringLen || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hours, err := parseDigits(s[:2])
	if err != nil || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	minutes, err := parseDigits(s[3:])
	if err != nil || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return hours*60 + minutes, nil
}

// parseDigits парсит неотрицательное число только из цифр (без знака и пробелов)
func parseDigits(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}
