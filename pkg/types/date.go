package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLen = 10 // YYYY-MM-DD

// Date календарная дата без времени и без часового пояса.
// Арифметика дат ведется через порядковый номер дня, time.Location не используется.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate создает дату с проверкой корректности
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < 1 || year > 9999 || month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	if day < 1 || day > daysIn(year, month) {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return Date{year: year, month: month, day: day}, nil
}

// DateOf берет год, месяц и день из time.Time как есть, без перевода в другой пояс
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate парсит строку "YYYY-MM-DD"
func ParseDate(s string) (Date, error) {
	if len(s) != dateLen || s[4] != '-' || s[7] != '-' {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	year, err := parseDigits(s[:4])
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	month, err := parseDigits(s[5:7])
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	day, err := parseDigits(s[8:])
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return NewDate(year, time.Month(month), day)
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

// IsZero возвращает true для нулевой даты
func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

// Weekday возвращает день недели (1970-01-01 - четверг)
func (d Date) Weekday() time.Weekday {
	return time.Weekday(floorMod(d.days()+int(time.Thursday), 7))
}

// AddDays сдвигает дату на n дней (n может быть отрицательным)
func (d Date) AddDays(n int) Date {
	return dateFromDays(d.days() + n)
}

// DaysUntil возвращает количество дней от d до other
func (d Date) DaysUntil(other Date) int {
	return other.days() - d.days()
}

func (d Date) Compare(other Date) int {
	a, b := d.days(), other.days()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }
func (d Date) Equal(other Date) bool  { return d == other }

// SameMonthDay сравнивает только месяц и день (для ежегодно повторяющихся дат)
func (d Date) SameMonthDay(other Date) bool {
	return d.month == other.month && d.day == other.day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// MarshalText реализует encoding.TextMarshaler
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan реализует sql.Scanner. Колонка DATE приходит из драйвера как time.Time,
// из нее берутся только поля даты.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.UnmarshalText([]byte(firstN(v, dateLen)))
	case []byte:
		return d.UnmarshalText([]byte(firstN(string(v), dateLen)))
	default:
		return fmt.Errorf("%w: Date from %T", ErrUnsupportedScanType, src)
	}
}

// Value реализует driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// days возвращает номер дня относительно 1970-01-01 (алгоритм days_from_civil)
func (d Date) days() int {
	y := d.year
	m := int(d.month)
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + d.day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// dateFromDays обратное преобразование (алгоритм civil_from_days)
func dateFromDays(z int) Date {
	z += 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := doy - (153*mp+2)/5 + 1
	month := mp + 3
	if mp >= 10 {
		month = mp - 9
	}
	if month <= 2 {
		y++
	}
	return Date{year: y, month: time.Month(month), day: day}
}

func daysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

func firstN(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
