package workday

import (
	"testing"
	"time"
)

func TestParseHolidays(t *testing.T) {
	tests := []struct {
		name             string
		input            string
		expectedCount    int
		expectedWarnings int
	}{
		{
			name:          "Empty string",
			input:         "",
			expectedCount: 0,
		},
		{
			name:          "Single date",
			input:         "2024-12-25",
			expectedCount: 1,
		},
		{
			name:          "Multiple dates with whitespace",
			input:         " 2024-12-25 , 2024-12-26,2025-01-01 ",
			expectedCount: 3,
		},
		{
			name:          "Trailing comma and empty entries",
			input:         "2024-12-25,,  ,2024-12-26,",
			expectedCount: 2,
		},
		{
			name:          "Duplicate dates collapse",
			input:         "2024-12-25,2024-12-25",
			expectedCount: 1,
		},
		{
			name:             "Malformed entry is skipped with warning",
			input:            "2024-12-25,25/12/2024,2024-12-26",
			expectedCount:    2,
			expectedWarnings: 1,
		},
		{
			name:             "All entries malformed",
			input:            "foo,bar",
			expectedCount:    0,
			expectedWarnings: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, warnings := ParseHolidays(tt.input)

			if len(set) != tt.expectedCount {
				t.Errorf("ParseHolidays(%q) produced %d dates, expected %d", tt.input, len(set), tt.expectedCount)
			}
			if len(warnings) != tt.expectedWarnings {
				t.Errorf("ParseHolidays(%q) produced %d warnings, expected %d: %v",
					tt.input, len(warnings), tt.expectedWarnings, warnings)
			}
		})
	}
}

func TestHolidaySetContains(t *testing.T) {
	set, _ := ParseHolidays("2024-12-25")

	// Membership is by calendar day, not time-of-day.
	christmasEvening := time.Date(2024, 12, 25, 18, 30, 0, 0, time.UTC)
	if !set.Contains(christmasEvening) {
		t.Errorf("Contains() = false for same calendar day with time-of-day")
	}

	boxingDay := time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC)
	if set.Contains(boxingDay) {
		t.Errorf("Contains() = true for a non-holiday")
	}

	var nilSet HolidaySet
	if nilSet.Contains(christmasEvening) {
		t.Errorf("Contains() = true on a nil set")
	}
}

func TestHolidaySetCountBetween(t *testing.T) {
	set, _ := ParseHolidays("2024-01-01,2024-01-15,2024-02-01")

	tests := []struct {
		name       string
		after      string
		onOrBefore string
		expected   int
	}{
		{
			name:       "Window covering all",
			after:      "2023-12-31",
			onOrBefore: "2024-02-01",
			expected:   3,
		},
		{
			name:       "Lower bound is exclusive",
			after:      "2024-01-01",
			onOrBefore: "2024-02-01",
			expected:   2,
		},
		{
			name:       "Upper bound is inclusive",
			after:      "2024-01-01",
			onOrBefore: "2024-01-15",
			expected:   1,
		},
		{
			name:       "Empty window",
			after:      "2024-02-02",
			onOrBefore: "2024-03-01",
			expected:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := set.CountBetween(date(tt.after), date(tt.onOrBefore))
			if result != tt.expected {
				t.Errorf("CountBetween(%s, %s) = %d, expected %d", tt.after, tt.onOrBefore, result, tt.expected)
			}
		})
	}
}
