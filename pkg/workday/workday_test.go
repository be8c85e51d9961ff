package workday

import (
	"testing"
	"time"

	"github.com/MohitJain0115/calc-suite/pkg/datetime"
)

func date(s string) time.Time {
	return datetime.MustParseTime(datetime.DateLayout, s)
}

func TestLastWorkingDayWorkingDays(t *testing.T) {
	tests := []struct {
		name             string
		resignation      string
		days             int
		holidays         string
		expectedEnd      string
		expectedObserved int
	}{
		{
			name:        "Five working days from Monday skip one weekend",
			resignation: "2024-01-01", // Monday
			days:        5,
			expectedEnd: "2024-01-08", // Jan 2,3,4,5,8
		},
		{
			name:        "One working day from Friday lands on Monday",
			resignation: "2024-01-05", // Friday
			days:        1,
			expectedEnd: "2024-01-08",
		},
		{
			name:        "Starts on Saturday",
			resignation: "2024-01-06",
			days:        3,
			expectedEnd: "2024-01-10", // Mon, Tue, Wed
		},
		{
			name:             "Holiday extends the walk",
			resignation:      "2024-01-01",
			days:             5,
			holidays:         "2024-01-03",
			expectedEnd:      "2024-01-09", // Jan 2,4,5,8,9
			expectedObserved: 1,
		},
		{
			name:             "Holiday on weekend has no effect",
			resignation:      "2024-01-01",
			days:             5,
			holidays:         "2024-01-06",
			expectedEnd:      "2024-01-08",
			expectedObserved: 1, // still inside the window
		},
		{
			name:        "Ten working days spanning two weekends",
			resignation: "2024-01-01",
			days:        10,
			expectedEnd: "2024-01-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			holidays, warnings := ParseHolidays(tt.holidays)
			if len(warnings) != 0 {
				t.Fatalf("unexpected holiday warnings: %v", warnings)
			}

			result := LastWorkingDay(date(tt.resignation), Duration{Value: tt.days, Unit: UnitDays}, holidays)

			if !result.PeriodEnd.Equal(date(tt.expectedEnd)) {
				t.Errorf("period end = %s, expected %s",
					result.PeriodEnd.Format(datetime.DateLayout), tt.expectedEnd)
			}
			// The days branch guarantees period end and last working day agree.
			if !result.LastWorkingDay.Equal(result.PeriodEnd) {
				t.Errorf("last working day = %s diverges from period end %s",
					result.LastWorkingDay.Format(datetime.DateLayout),
					result.PeriodEnd.Format(datetime.DateLayout))
			}
			if result.HolidaysObserved != tt.expectedObserved {
				t.Errorf("holidays observed = %d, expected %d", result.HolidaysObserved, tt.expectedObserved)
			}
		})
	}
}

func TestLastWorkingDayCalendarUnits(t *testing.T) {
	tests := []struct {
		name            string
		resignation     string
		value           int
		unit            Unit
		holidays        string
		expectedEnd     string
		expectedWorking string
	}{
		{
			name:            "Two weeks ending on a Sunday",
			resignation:     "2024-01-01", // Monday
			value:           2,
			unit:            UnitWeeks,
			expectedEnd:     "2024-01-14", // Sunday
			expectedWorking: "2024-01-12", // previous Friday
		},
		{
			name:            "One month ending on a Sunday",
			resignation:     "2024-03-01",
			value:           1,
			unit:            UnitMonths,
			expectedEnd:     "2024-03-31", // Sunday
			expectedWorking: "2024-03-29", // Friday
		},
		{
			name:            "Three months ending mid-week",
			resignation:     "2024-01-15", // Monday
			value:           3,
			unit:            UnitMonths,
			expectedEnd:     "2024-04-14", // Sunday
			expectedWorking: "2024-04-12",
		},
		{
			name:            "Holiday pushes last working day back further",
			resignation:     "2024-01-01",
			value:           2,
			unit:            UnitWeeks,
			holidays:        "2024-01-12",
			expectedEnd:     "2024-01-14",
			expectedWorking: "2024-01-11", // Friday is a holiday, land on Thursday
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			holidays, _ := ParseHolidays(tt.holidays)

			result := LastWorkingDay(date(tt.resignation), Duration{Value: tt.value, Unit: tt.unit}, holidays)

			if !result.PeriodEnd.Equal(date(tt.expectedEnd)) {
				t.Errorf("period end = %s, expected %s",
					result.PeriodEnd.Format(datetime.DateLayout), tt.expectedEnd)
			}
			if !result.LastWorkingDay.Equal(date(tt.expectedWorking)) {
				t.Errorf("last working day = %s, expected %s",
					result.LastWorkingDay.Format(datetime.DateLayout), tt.expectedWorking)
			}
		})
	}
}

// The calendar-unit branches intentionally diverge from the working-day
// branch: an equivalent duration expressed in weeks lands earlier than one
// walked out in working days whenever the period ends on a non-working day.
func TestLastWorkingDayUnitAsymmetry(t *testing.T) {
	resignation := date("2024-01-01")
	holidays := NewHolidaySet()

	byDays := LastWorkingDay(resignation, Duration{Value: 10, Unit: UnitDays}, holidays)
	byWeeks := LastWorkingDay(resignation, Duration{Value: 2, Unit: UnitWeeks}, holidays)

	if !byDays.LastWorkingDay.After(byWeeks.LastWorkingDay) {
		t.Errorf("expected 10 working days (%s) to end after 2 calendar weeks (%s)",
			byDays.LastWorkingDay.Format(datetime.DateLayout),
			byWeeks.LastWorkingDay.Format(datetime.DateLayout))
	}
}

func TestLastWorkingDayBackwardSkipInvariant(t *testing.T) {
	holidays, _ := ParseHolidays("2024-05-27, 2024-12-25, 2024-12-26, 2025-01-01")

	tests := []struct {
		name        string
		resignation string
		d           Duration
	}{
		{
			name:        "Days over holidays",
			resignation: "2024-05-20",
			d:           Duration{Value: 7, Unit: UnitDays},
		},
		{
			name:        "Weeks over year end",
			resignation: "2024-12-16",
			d:           Duration{Value: 3, Unit: UnitWeeks},
		},
		{
			name:        "Months over year end",
			resignation: "2024-10-26",
			d:           Duration{Value: 2, Unit: UnitMonths},
		},
		{
			name:        "Single month",
			resignation: "2024-11-30",
			d:           Duration{Value: 1, Unit: UnitMonths},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := LastWorkingDay(date(tt.resignation), tt.d, holidays)

			if datetime.IsWeekend(result.LastWorkingDay) {
				t.Errorf("last working day %s is a weekend",
					result.LastWorkingDay.Format(datetime.DateLayout))
			}
			if holidays.Contains(result.LastWorkingDay) {
				t.Errorf("last working day %s is a listed holiday",
					result.LastWorkingDay.Format(datetime.DateLayout))
			}
			if result.LastWorkingDay.After(result.PeriodEnd) {
				t.Errorf("last working day %s is after period end %s",
					result.LastWorkingDay.Format(datetime.DateLayout),
					result.PeriodEnd.Format(datetime.DateLayout))
			}
		})
	}
}

func TestLastWorkingDayZeroDuration(t *testing.T) {
	result := LastWorkingDay(date("2024-01-06"), Duration{Value: 0, Unit: UnitDays}, nil) // Saturday

	if !result.PeriodEnd.Equal(date("2024-01-06")) {
		t.Errorf("period end = %s, expected the resignation date", result.PeriodEnd.Format(datetime.DateLayout))
	}
	if !result.LastWorkingDay.Equal(date("2024-01-05")) {
		t.Errorf("last working day = %s, expected 2024-01-05", result.LastWorkingDay.Format(datetime.DateLayout))
	}
}

func TestProbationEnd(t *testing.T) {
	holidays, _ := ParseHolidays("2024-07-04")

	result := ProbationEnd(date("2024-01-08"), Duration{Value: 6, Unit: UnitMonths}, holidays)

	if !result.PeriodEnd.Equal(date("2024-07-07")) { // Sunday
		t.Errorf("period end = %s, expected 2024-07-07", result.PeriodEnd.Format(datetime.DateLayout))
	}
	if !result.LastWorkingDay.Equal(date("2024-07-05")) { // Friday; the 4th is a holiday anyway
		t.Errorf("last working day = %s, expected 2024-07-05", result.LastWorkingDay.Format(datetime.DateLayout))
	}
	if result.HolidaysObserved != 1 {
		t.Errorf("holidays observed = %d, expected 1", result.HolidaysObserved)
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Unit
		wantErr bool
	}{
		{
			name:  "Days",
			input: "days",
			want:  UnitDays,
		},
		{
			name:  "Weeks",
			input: "weeks",
			want:  UnitWeeks,
		},
		{
			name:  "Months",
			input: "months",
			want:  UnitMonths,
		},
		{
			name:    "Unsupported",
			input:   "fortnights",
			wantErr: true,
		},
		{
			name:    "Empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, err := ParseUnit(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseUnit(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if !tt.wantErr && unit != tt.want {
				t.Errorf("ParseUnit(%q) = %v, expected %v", tt.input, unit, tt.want)
			}
		})
	}
}
