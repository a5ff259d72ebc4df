package date

import (
	"testing"
	"time"
)

// Dates must be directly comparable: the reporting code uses them as map
// keys.
func TestComparable(t *testing.T) {
	d1 := New(2025, time.March, 10)
	d2 := Of(time.Date(2025, time.March, 10, 23, 59, 59, 0, time.UTC))
	if d1 != d2 {
		t.Errorf("%v != %v, want equal", d1, d2)
	}
}

func TestNewNormalizes(t *testing.T) {
	// Overflowing day-of-month rolls into the next month.
	if got, want := New(2025, time.January, 32), New(2025, time.February, 1); got != want {
		t.Errorf("New(2025, 1, 32) = %s, want %s", got, want)
	}
}

func TestAdd(t *testing.T) {
	testCases := []struct {
		name string
		d    Date
		days int
		want Date
	}{
		{"within month", New(2025, time.March, 10), 5, New(2025, time.March, 15)},
		{"across month", New(2025, time.January, 31), 1, New(2025, time.February, 1)},
		{"across year backwards", New(2025, time.January, 1), -1, New(2024, time.December, 31)},
		{"leap day", New(2024, time.February, 28), 1, New(2024, time.February, 29)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.d.Add(tc.days); got != tc.want {
				t.Errorf("%s.Add(%d) = %s, want %s", tc.d, tc.days, got, tc.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2025-03-10")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d != New(2025, time.March, 10) {
		t.Errorf("Parse = %s", d)
	}
	if d.String() != "2025-03-10" {
		t.Errorf("String = %q, want round-trip", d.String())
	}
	if _, err := Parse("10/03/2025"); err == nil {
		t.Error("want error for non-ISO input")
	}
}

func TestWeekday(t *testing.T) {
	if got := New(2025, time.March, 10).Weekday(); got != time.Monday {
		t.Errorf("Weekday = %s, want Monday", got)
	}
}

func TestBeforeAfter(t *testing.T) {
	a, b := New(2025, time.March, 9), New(2025, time.March, 10)
	if !a.Before(b) || a.After(b) || b.Before(a) {
		t.Errorf("ordering between %s and %s is wrong", a, b)
	}
}
