package domain

import "testing"

// TestStartYear checks startYear against known Unix timestamps for the
// start of a few Gregorian years, including a leap year boundary.
func TestStartYear(t *testing.T) {
	cases := []struct {
		year int
		want int64
	}{
		{1970, 0},
		{1971, 31536000},
		{1900, -2208988800},
		{2000, 946684800},
		{2001, 978307200}, // 2000 was a leap year
	}
	for _, c := range cases {
		got := startYear(c.year)
		if got != c.want {
			t.Errorf("startYear(%d) = %d, want %d", c.year, got, c.want)
		}
	}
}

// TestStartYearPanicsOutOfRange checks that years outside [1,4001]
// panic rather than silently producing nonsense.
func TestStartYearPanicsOutOfRange(t *testing.T) {
	for _, y := range []int{0, 4002} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("startYear(%d) did not panic", y)
				}
			}()
			startYear(y)
		}()
	}
}

// TestMidYearIsBetweenStartYears checks the defining property of
// midYear: it falls strictly between the start of its year and the
// start of the next.
func TestMidYearIsBetweenStartYears(t *testing.T) {
	for _, y := range []int{1, 1900, 2000, 2024, 4000} {
		lo, hi := startYear(y), startYear(y+1)
		mid := midYear(y)
		if mid <= lo || mid >= hi {
			t.Errorf("midYear(%d) = %d, want strictly between %d and %d", y, mid, lo, hi)
		}
	}
}

func TestCheckYearRangePanics(t *testing.T) {
	cases := []struct {
		name                                string
		firstYear, lastYear, epochForSpeed int
	}{
		{"lastYear before firstYear", 2000, 1999, 2000},
		{"firstYear below 1", 0, 10, 5},
		{"lastYear above 4000", 3990, 4001, 3995},
		{"epochForSpeed below 1", 1, 10, 0},
		{"epochForSpeed above 4000", 1, 10, 4001},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("checkYearRange(%d,%d,%d) did not panic", c.firstYear, c.lastYear, c.epochForSpeed)
				}
			}()
			checkYearRange(c.firstYear, c.lastYear, c.epochForSpeed)
		})
	}
}
