package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// WeekdayNames maps weekdays to their lowercase English names used on the wire
var WeekdayNames = map[time.Weekday]string{
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
	time.Sunday:    "sunday",
}

// ParseWeekday resolves a lowercase weekday name
func ParseWeekday(name string) (time.Weekday, bool) {
	for day, n := range WeekdayNames {
		if n == name {
			return day, true
		}
	}
	return 0, false
}

// Interval is an open-for-business range within a day, half-open [Start, End)
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// Validate checks the time format and that Start < End
func (i Interval) Validate() error {
	if err := i.Start.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidSchedule, err)
	}
	if err := i.End.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidSchedule, err)
	}
	if !i.Start.IsBefore(i.End) {
		return fmt.Errorf("%w: interval %s-%s must start before it ends", ErrInvalidSchedule, i.Start, i.End)
	}
	return nil
}

// DaySchedule availability definition of one weekday.
// An unavailable day carries no intervals.
type DaySchedule struct {
	IsAvailable bool
	Intervals   []Interval
}

// IsOpen returns true if the day has at least one open interval
func (d DaySchedule) IsOpen() bool {
	return d.IsAvailable && len(d.Intervals) > 0
}

// WeeklySchedule per-weekday availability. A missing weekday is unavailable.
type WeeklySchedule map[time.Weekday]DaySchedule

// Day returns the schedule of the given weekday
func (s WeeklySchedule) Day(day time.Weekday) DaySchedule {
	if s == nil {
		return DaySchedule{}
	}
	return s[day]
}

// Validate checks every interval of every available day
func (s WeeklySchedule) Validate() error {
	for day, ds := range s {
		if _, ok := WeekdayNames[day]; !ok {
			return fmt.Errorf("%w: unknown weekday %d", ErrInvalidSchedule, day)
		}
		if !ds.IsAvailable {
			continue
		}
		for _, interval := range ds.Intervals {
			if err := interval.Validate(); err != nil {
				return fmt.Errorf("%s: %w", WeekdayNames[day], err)
			}
		}
	}
	return nil
}

type intervalJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type dayScheduleJSON struct {
	IsAvailable *bool          `json:"isAvailable"`
	TimeSlots   []intervalJSON `json:"timeSlots"`
}

// MarshalJSON writes the schedule keyed by lowercase weekday name, all seven days present
func (s WeeklySchedule) MarshalJSON() ([]byte, error) {
	out := make(map[string]dayScheduleJSON, len(WeekdayNames))
	for day, name := range WeekdayNames {
		ds := s.Day(day)
		available := ds.IsAvailable
		slots := make([]intervalJSON, 0, len(ds.Intervals))
		if available {
			for _, interval := range ds.Intervals {
				slots = append(slots, intervalJSON{Start: interval.Start.String(), End: interval.End.String()})
			}
		}
		out[name] = dayScheduleJSON{IsAvailable: &available, TimeSlots: slots}
	}
	return json.Marshal(out)
}

// UnmarshalJSON parses and validates the wire shape.
// Unknown weekday keys, malformed "HH:MM" values and empty or reversed intervals are rejected.
func (s *WeeklySchedule) UnmarshalJSON(data []byte) error {
	var raw map[string]dayScheduleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	if raw == nil {
		return fmt.Errorf("%w: schedule must be an object", ErrInvalidSchedule)
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	schedule := make(WeeklySchedule, len(raw))
	for _, name := range names {
		day, ok := ParseWeekday(strings.ToLower(name))
		if !ok {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidSchedule, name)
		}

		entry := raw[name]
		if entry.IsAvailable == nil {
			return fmt.Errorf("%w: %s: isAvailable is required", ErrInvalidSchedule, name)
		}

		ds := DaySchedule{IsAvailable: *entry.IsAvailable}
		if ds.IsAvailable {
			ds.Intervals = make([]Interval, 0, len(entry.TimeSlots))
			for _, slot := range entry.TimeSlots {
				start, err := types.NewTimeStringFromString(slot.Start)
				if err != nil {
					return fmt.Errorf("%w: %s: start: %v", ErrInvalidSchedule, name, err)
				}
				end, err := types.NewTimeStringFromString(slot.End)
				if err != nil {
					return fmt.Errorf("%w: %s: end: %v", ErrInvalidSchedule, name, err)
				}
				interval := Interval{Start: start, End: end}
				if err := interval.Validate(); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				ds.Intervals = append(ds.Intervals, interval)
			}
		}
		schedule[day] = ds
	}

	*s = schedule
	return nil
}
