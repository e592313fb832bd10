package chrono

/*
cal.go implements the Gregorian calendar engine: conversion between
the absolute second count and civil year/month/day fields, leap year
handling, and generic field normalization.
*/

import "golang.org/x/exp/constraints"

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerWeek   = 7 * secondsPerDay
)

// Gregorian cycle lengths:
//   - 400 years = 303 regular years + 97 leap years
//   - 100 years = 76 regular years + 24 leap years
//   - 4 years = 3 regular years + 1 leap year
const (
	daysPer400Years = 365*400 + 97
	daysPer100Years = 365*100 + 24
	daysPer4Years   = 365*4 + 1
)

// The absolute zero year for internal calculations. Must be 1 mod 400
// so that leap cycle decomposition needs no negative-year branches.
// Times before this year will not compute correctly.
const absoluteZeroYear = -292277022399

// Offsets converting between the three second counts in play: the
// internal count (zero = Jan 1, year 1), the absolute count (zero =
// Jan 1 of absoluteZeroYear) and the Unix count (zero = Jan 1, 1970).
//
// absoluteToInternal is (absoluteZeroYear - 1) * 365.2425 * secondsPerDay,
// precomputed because the float expression is not exact in constant
// arithmetic.
const (
	absoluteToInternal int64 = -9223371966579724800
	internalToAbsolute       = -absoluteToInternal

	unixToInternal int64 = (1969*365 + 1969/4 - 1969/100 + 1969/400) * secondsPerDay
	internalToUnix int64 = -unixToInternal
)

// daysBefore[m] counts the number of days in a non-leap year before
// month m+1 begins. The final entry counts the days before January
// of the following year (365).
var daysBefore = [...]int32{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// isLeap reports whether the year is a leap year.
func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// norm returns nhi, nlo such that
//
//	hi * base + lo == nhi * base + nlo
//	0 <= nlo < base
//
// using floor division so that negative lo carries borrow from hi.
func norm[T constraints.Signed](hi, lo, base T) (nhi, nlo T) {
	if lo < 0 {
		n := (-lo-1)/base + 1
		hi -= n
		lo += n * base
	}
	if lo >= base {
		n := lo / base
		hi += n
		lo -= n * base
	}
	return hi, lo
}

// daysSinceEpoch takes a year and returns the number of days from
// the absolute epoch to the start of that year, peeling complete
// 400-year, 100-year and 4-year cycles before the residual years.
func daysSinceEpoch(year int) uint64 {
	y := uint64(int64(year) - absoluteZeroYear)

	// Add in days from 400-year cycles.
	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	// Add in 100-year cycles.
	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	// Add in 4-year cycles.
	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	// Add in non-leap years.
	n = y
	d += 365 * n

	return d
}

// absWeekday is like Time.Weekday but operates on an absolute time.
// January 1 of the absolute year was a Monday.
func absWeekday(abs uint64) Weekday {
	sec := (abs + uint64(Monday)*secondsPerDay) % secondsPerWeek
	return Weekday(sec / secondsPerDay)
}

// absDate converts an absolute time to a year and a zero-based
// day-of-year.
func absDate(abs uint64) (year, yday int) {
	// Split into time and day.
	d := abs / secondsPerDay

	// Account for 400 year cycles.
	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// Cut off 100-year cycles.
	// The last cycle has one extra leap year, so on the last day
	// of that year, day / daysPer100Years will be 4 instead of 3.
	// Cut it back down to 3 by subtracting n>>2.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	// Cut off 4-year cycles.
	// The last cycle has a missing leap year, which does not
	// affect the computation.
	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Cut off years within a 4-year cycle.
	// The last year is a leap year, so on the last day of that year,
	// day / 365 will be 4 instead of 3. Cut it back down to 3
	// by subtracting n>>2.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	return int(int64(y) + absoluteZeroYear), int(d)
}

// absDateFull converts an absolute time to a year, month, day and
// zero-based day-of-year.
func absDateFull(abs uint64) (year int, month Month, day, yday int) {
	year, yday = absDate(abs)

	day = yday
	if isLeap(year) {
		// The cumulative table is built for non-leap years, so day
		// indices at or past the leap day are shifted back by one,
		// and the leap day itself is answered directly.
		if day > 31+29-1 {
			day--
		}
		if day == 31+29-1 {
			return year, February, 29, yday
		}
	}

	// Estimate month on assumption that every month has 31 days,
	// then correct against the cumulative table.
	month = Month(day / 31)
	end := int(daysBefore[month+1])
	var begin int
	if day >= end {
		month++
		begin = end
	} else {
		begin = int(daysBefore[month])
	}

	month++ // 0-based to 1-based
	day = day - begin + 1
	return year, month, day, yday
}

// absClock converts an absolute time to the hour, minute and second
// within the day.
func absClock(abs uint64) (hour, min, sec int) {
	sec = int(abs % secondsPerDay)
	hour = sec / secondsPerHour
	sec -= hour * secondsPerHour
	min = sec / secondsPerMinute
	sec -= min * secondsPerMinute
	return hour, min, sec
}
