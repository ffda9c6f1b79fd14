package domain

import "fmt"

// Calendar constants used to locate a year within the Gregorian calendar
// and to express time as Julian centuries from the 1899-12-31 12:00 GMT
// epoch used throughout SP 98.
const (
	secondsPerYear = 31536000
	secondsPerDay  = 86400

	// yearOneStart is the Unix time of 0001-01-01 00:00:00 UTC, the
	// proleptic Gregorian start of year 1 that startYear counts forward
	// from using the civil leap-day rule.
	yearOneStart = -62135596800

	// table1Epoch is the Unix time of 1899-12-31 12:00:00 GMT, the
	// epoch SP 98 Table 1 reckons Julian centuries from.
	table1Epoch = -2209032000

	secondsPerJulianCentury = 3155760000.0
	hoursPerJulianCentury   = 876600.0
)

// startYear returns the Unix time at which the given Gregorian year
// begins (year 1 through 4001 inclusive, so that startYear(4001) can
// serve as the end-of-range boundary for lastYear 4000).
func startYear(year int) int64 {
	if year < 1 || year > 4001 {
		panic(fmt.Sprintf("domain: year %d out of range [1,4001]", year))
	}
	y := int64(year - 1)
	leapDays := y/4 - y/100 + y/400
	return yearOneStart + y*secondsPerYear + leapDays*secondsPerDay
}

// midYear returns the Unix time at the midpoint of the given Gregorian
// year, used as the evaluation instant for node factors.
func midYear(year int) int64 {
	if year < 1 || year > 4000 {
		panic(fmt.Sprintf("domain: year %d out of range [1,4000]", year))
	}
	return (startYear(year) + startYear(year+1)) / 2
}

// table1T converts a Unix time into Julian centuries from the SP 98
// Table 1 epoch (1899-12-31 12:00 GMT).
func table1T(t int64) float64 {
	return float64(t-table1Epoch) / secondsPerJulianCentury
}

// checkYearRange enforces the constructor-wide invariant that
// firstYear <= lastYear, both within [1,4000], and epochForSpeed within
// [1,4000].
func checkYearRange(firstYear, lastYear, epochForSpeed int) {
	if lastYear < firstYear {
		panic(fmt.Sprintf("domain: lastYear %d precedes firstYear %d", lastYear, firstYear))
	}
	if firstYear < 1 || lastYear > 4000 {
		panic(fmt.Sprintf("domain: year range [%d,%d] outside [1,4000]", firstYear, lastYear))
	}
	if epochForSpeed < 1 || epochForSpeed > 4000 {
		panic(fmt.Sprintf("domain: epochForSpeed %d outside [1,4000]", epochForSpeed))
	}
}
