package schedule

import (
	"errors"
	"testing"
)

func TestValidateDate(t *testing.T) {
	valid := []string{
		"2025-06-01",
		"2025-11-26",
		"2024-02-29", // leap day
		"2025-12-31",
		"2025-01-01",
	}
	for _, d := range valid {
		if err := ValidateDate(d); err != nil {
			t.Errorf("ValidateDate(%q) = %v, want nil", d, err)
		}
	}

	invalid := []string{
		"",
		"2025-13-01",
		"2025-00-10",
		"2025-02-30",
		"2023-02-29", // not a leap year
		"2025-06-1",
		"2025-6-01",
		"25-06-01",
		"2025/06/01",
		"01-06-2025",
		"2025-06-01 ",
		"tomorrow",
	}
	for _, d := range invalid {
		err := ValidateDate(d)
		if err == nil {
			t.Errorf("ValidateDate(%q) = nil, want error", d)
			continue
		}
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ValidateDate(%q) = %v, want ErrInvalidDate", d, err)
		}
	}
}

func TestValidateTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "12:00", "23:59"}
	for _, tm := range valid {
		if err := ValidateTime(tm); err != nil {
			t.Errorf("ValidateTime(%q) = %v, want nil", tm, err)
		}
	}

	invalid := []string{
		"",
		"24:00",
		"23:60",
		"9:30",
		"09:3",
		"09.30",
		"09:30:00",
		" 09:30",
		"noon",
	}
	for _, tm := range invalid {
		err := ValidateTime(tm)
		if err == nil {
			t.Errorf("ValidateTime(%q) = nil, want error", tm)
			continue
		}
		if !errors.Is(err, ErrInvalidTime) {
			t.Errorf("ValidateTime(%q) = %v, want ErrInvalidTime", tm, err)
		}
	}
}

func TestParseWorkingHours(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantErr bool
	}{
		{"standard hours", "09:00-17:00", false},
		{"spaces around parts", "09:00 - 17:00", false},
		{"missing separator", "09:00", true},
		{"too many parts", "09:00-12:00-17:00", true},
		{"bad start", "9:00-17:00", true},
		{"bad end", "09:00-25:00", true},
		{"empty parts", "-", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWorkingHours(tt.spec)
			if tt.wantErr && err == nil {
				t.Fatalf("ParseWorkingHours(%q) = nil, want error", tt.spec)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("ParseWorkingHours(%q) = %v, want nil", tt.spec, err)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidWorkingHours) {
				t.Errorf("ParseWorkingHours(%q) = %v, want ErrInvalidWorkingHours", tt.spec, err)
			}
		})
	}
}

func TestCheckWorkingHours(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		time      string
		permitted bool
	}{
		{"start boundary bookable", "09:00-17:00", "09:00", true},
		{"last minute bookable", "09:00-17:00", "16:59", true},
		{"end boundary excluded", "09:00-17:00", "17:00", false},
		{"before opening", "09:00-17:00", "08:59", false},
		{"midday", "09:00-17:00", "12:30", true},
		{"no hours set permits anything", "", "03:00", true},
		{"inverted interval admits nothing", "17:00-09:00", "12:00", false},
		{"inverted interval rejects own start", "17:00-09:00", "17:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckWorkingHours(tt.spec, tt.time)
			if tt.permitted && err != nil {
				t.Fatalf("CheckWorkingHours(%q, %q) = %v, want nil", tt.spec, tt.time, err)
			}
			if !tt.permitted {
				var outOfHours *OutOfHoursError
				if !errors.As(err, &outOfHours) {
					t.Fatalf("CheckWorkingHours(%q, %q) = %v, want OutOfHoursError", tt.spec, tt.time, err)
				}
				if outOfHours.Time != tt.time || outOfHours.Hours != tt.spec {
					t.Errorf("OutOfHoursError carries %q/%q, want %q/%q",
						outOfHours.Time, outOfHours.Hours, tt.time, tt.spec)
				}
			}
		})
	}
}

func TestCheckWorkingHoursMalformedSpec(t *testing.T) {
	// A malformed stored specification is a data-quality failure, reported
	// distinctly from an out-of-hours rejection.
	err := CheckWorkingHours("nine to five", "10:00")
	if !errors.Is(err, ErrInvalidWorkingHours) {
		t.Fatalf("CheckWorkingHours with malformed spec = %v, want ErrInvalidWorkingHours", err)
	}
}
