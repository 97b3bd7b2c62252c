// Package schedule holds the pure booking rules: date and time string
// validation and the working-hours containment check. Functions here have no
// side effects and touch no storage; error messages are surfaced verbatim to
// the end user.
package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrInvalidDate         = errors.New("Date must be in YYYY-MM-DD format (e.g., 2025-11-26).")
	ErrInvalidTime         = errors.New("Time must be in HH:MM 24-hour format (e.g., 09:30).")
	ErrInvalidWorkingHours = errors.New("Doctor working hours must be in 'HH:MM-HH:MM' format.")
)

// OutOfHoursError reports a format-valid time that falls outside the doctor's
// declared working hours.
type OutOfHoursError struct {
	Time  string
	Hours string
}

func (e *OutOfHoursError) Error() string {
	return fmt.Sprintf("Appointment time %s is outside doctor's working hours (%s).", e.Time, e.Hours)
}

// ValidateDate accepts exactly YYYY-MM-DD with a real calendar date.
// The round-trip through time.Parse rejects unpadded or out-of-range
// components that Parse alone would tolerate.
func ValidateDate(s string) error {
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Format(DateLayout) != s {
		return ErrInvalidDate
	}
	return nil
}

// ValidateTime accepts exactly HH:MM with hour 00-23 and minute 00-59.
func ValidateTime(s string) error {
	t, err := time.Parse(TimeLayout, s)
	if err != nil || t.Format(TimeLayout) != s {
		return ErrInvalidTime
	}
	return nil
}

// WorkingHours is the half-open clock interval [Start, End) during which a
// doctor accepts appointments: the start boundary is bookable, the end
// boundary is not.
type WorkingHours struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether Start <= t < End. An inverted interval
// (Start after End) admits no times.
func (w WorkingHours) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// ParseWorkingHours parses a "HH:MM-HH:MM" specification. Both parts must
// independently pass ValidateTime after trimming surrounding whitespace.
func ParseWorkingHours(spec string) (WorkingHours, error) {
	parts := strings.Split(spec, "-")
	if len(parts) != 2 {
		return WorkingHours{}, ErrInvalidWorkingHours
	}

	startStr := strings.TrimSpace(parts[0])
	endStr := strings.TrimSpace(parts[1])
	if ValidateTime(startStr) != nil || ValidateTime(endStr) != nil {
		return WorkingHours{}, ErrInvalidWorkingHours
	}

	start, _ := time.Parse(TimeLayout, startStr)
	end, _ := time.Parse(TimeLayout, endStr)
	return WorkingHours{Start: start, End: end}, nil
}

// CheckWorkingHours verifies that a format-valid appointment time is bookable
// under the given working-hours specification. An empty specification means
// the doctor is unconstrained and every time is permitted.
func CheckWorkingHours(spec, appointmentTime string) error {
	if spec == "" {
		return nil
	}

	hours, err := ParseWorkingHours(spec)
	if err != nil {
		return err
	}

	t, err := time.Parse(TimeLayout, appointmentTime)
	if err != nil {
		return ErrInvalidTime
	}

	if !hours.Contains(t) {
		return &OutOfHoursError{Time: appointmentTime, Hours: spec}
	}
	return nil
}
