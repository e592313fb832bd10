package chrono

/*
time.go implements the Time instant type: construction, civil field
accessors, Unix conversions, comparison, arithmetic and rounding.
*/

/*
Time represents an instant in time with nanosecond precision.

The zero value is January 1, year 1, 00:00:00.000000000 UTC, and
doubles as the failure sentinel returned by [Parse] and
[DecodeBinary]. Use [Time.IsZero] to detect it.

Civil field accessors take an explicit UTC offset in seconds east of
UTC; pass 0 for UTC. Every accessor is a pure function of the
instant and the offset.
*/
type Time struct {
	sec  int64 // seconds since zero time
	nsec int32 // nanoseconds within the second [0, 999999999]
}

// unixTime converts Unix (sec, nsec) to the internal representation.
func unixTime(sec int64, nsec int32) Time {
	return Time{sec + unixToInternal, nsec}
}

// unixSec returns t as a Unix second count.
func (t Time) unixSec() int64 {
	return t.sec + internalToUnix
}

// abs returns t shifted by the zone offset as an absolute time,
// suitable for the cal.go decomposition routines. The absolute base
// is non-negative for every representable instant, so callers need
// no negative-value branches.
func (t Time) abs(offsetSec int) uint64 {
	return uint64(t.sec + int64(offsetSec) + internalToAbsolute)
}

/*
Now returns the current time in UTC.
*/
func Now() Time {
	sec, nsec := nowUnix()
	return unixTime(sec, nsec)
}

/*
Date returns the [Time] corresponding to

	yyyy-mm-dd hh:mm:ss + nsec nanoseconds

in the time zone with the given fixed offset in seconds east of UTC.

The month, day, hour, min, sec and nsec values may be outside their
usual ranges and will be normalized during the conversion. For
example, October 32 converts to November 1.
*/
func Date(year int, month Month, day, hour, min, sec, nsec, offsetSec int) Time {
	// Normalize month, overflowing into year.
	m := int(month) - 1
	year, m = norm(year, m, 12)
	month = Month(m) + 1

	// Normalize nsec, sec, min, hour, overflowing into day.
	sec, nsec = norm(sec, nsec, 1e9)
	min, sec = norm(min, sec, 60)
	hour, min = norm(hour, min, 60)
	day, hour = norm(day, hour, 24)

	// Compute days since the absolute epoch.
	d := daysSinceEpoch(year)

	// Add in days before this month.
	d += uint64(daysBefore[month-1])
	if isLeap(year) && month >= March {
		d++ // February 29
	}

	// Add in days before today.
	d += uint64(day - 1)

	// Add in time elapsed today.
	abs := d * secondsPerDay
	abs += uint64(hour*secondsPerHour + min*secondsPerMinute + sec)

	// Convert from local wall time to UTC.
	abs -= uint64(offsetSec)

	return Time{int64(abs) + absoluteToInternal, int32(nsec)}
}

/*
Date returns the year, month and day in which t occurs, in the time
zone with the given fixed offset in seconds east of UTC.
*/
func (t Time) Date(offsetSec int) (year int, month Month, day int) {
	year, month, day, _ = absDateFull(t.abs(offsetSec))
	return year, month, day
}

/*
Year returns the year in which t occurs.
*/
func (t Time) Year(offsetSec int) int {
	year, _ := absDate(t.abs(offsetSec))
	return year
}

/*
Month returns the month of the year specified by t.
*/
func (t Time) Month(offsetSec int) Month {
	_, month, _, _ := absDateFull(t.abs(offsetSec))
	return month
}

/*
Day returns the day of the month specified by t.
*/
func (t Time) Day(offsetSec int) int {
	_, _, day, _ := absDateFull(t.abs(offsetSec))
	return day
}

/*
Clock returns the hour, minute and second within the day specified
by t.
*/
func (t Time) Clock(offsetSec int) (hour, min, sec int) {
	return absClock(t.abs(offsetSec))
}

/*
Hour returns the hour within the day specified by t, in the range
[0, 23].
*/
func (t Time) Hour(offsetSec int) int {
	return int(t.abs(offsetSec)%secondsPerDay) / secondsPerHour
}

/*
Minute returns the minute offset within the hour specified by t, in
the range [0, 59].
*/
func (t Time) Minute(offsetSec int) int {
	return int(t.abs(offsetSec)%secondsPerHour) / secondsPerMinute
}

/*
Second returns the second offset within the minute specified by t,
in the range [0, 59].
*/
func (t Time) Second(offsetSec int) int {
	return int(t.abs(offsetSec) % secondsPerMinute)
}

/*
Nanosecond returns the nanosecond offset within the second specified
by t, in the range [0, 999999999]. It is independent of the zone
offset.
*/
func (t Time) Nanosecond() int {
	return int(t.nsec)
}

/*
Weekday returns the day of the week specified by t.
*/
func (t Time) Weekday(offsetSec int) Weekday {
	return absWeekday(t.abs(offsetSec))
}

/*
YearDay returns the day of the year specified by t, in the range
[1, 365] for non-leap years, and [1, 366] in leap years.
*/
func (t Time) YearDay(offsetSec int) int {
	_, yday := absDate(t.abs(offsetSec))
	return yday + 1
}

/*
ISOWeek returns the ISO 8601 year and week number in which t occurs.
Week ranges from 1 to 53. Jan 01 to Jan 03 of year n might belong to
week 52 or 53 of year n-1, and Dec 29 to Dec 31 might belong to week
1 of year n+1.
*/
func (t Time) ISOWeek(offsetSec int) (year, week int) {
	// The first calendar week of a year is the week containing the
	// first Thursday of that year. Shift to the Thursday of t's week
	// and read the year and day-of-year there.
	//
	// Monday Tuesday Wednesday Thursday Friday Saturday Sunday
	// +3     +2      +1        0        -1     -2       -3
	abs := t.abs(offsetSec)
	d := int(Thursday) - int(absWeekday(abs))
	// handle Sunday
	if d == 4 {
		d = -3
	}
	abs += uint64(int64(d) * secondsPerDay)
	year, yday := absDate(abs)
	return year, yday/7 + 1
}

/*
Unix returns the [Time] corresponding to the given Unix time, sec
seconds and nsec nanoseconds since January 1, 1970 UTC. It is valid
to pass nsec outside the range [0, 999999999].
*/
func Unix(sec, nsec int64) Time {
	sec, nsec = norm(sec, nsec, 1e9)
	return unixTime(sec, int32(nsec))
}

/*
UnixMilli returns the [Time] corresponding to the given Unix time,
msec milliseconds since January 1, 1970 UTC.
*/
func UnixMilli(msec int64) Time {
	return Unix(msec/1e3, (msec%1e3)*1e6)
}

/*
UnixMicro returns the [Time] corresponding to the given Unix time,
usec microseconds since January 1, 1970 UTC.
*/
func UnixMicro(usec int64) Time {
	return Unix(usec/1e6, (usec%1e6)*1e3)
}

/*
UnixNano returns the [Time] corresponding to the given Unix time,
nsec nanoseconds since January 1, 1970 UTC.
*/
func UnixNano(nsec int64) Time {
	return Unix(0, nsec)
}

/*
Unix returns t as a Unix time, the number of seconds elapsed since
January 1, 1970 UTC. The result is valid for billions of years into
the past or future.
*/
func (t Time) Unix() int64 {
	return t.unixSec()
}

/*
UnixMilli returns t as a Unix time, the number of milliseconds
elapsed since January 1, 1970 UTC. The result is undefined if the
Unix time in milliseconds cannot be represented by an int64 (a date
more than 292 million years before or after 1970).
*/
func (t Time) UnixMilli() int64 {
	return t.unixSec()*1e3 + int64(t.nsec)/1e6
}

/*
UnixMicro returns t as a Unix time, the number of microseconds
elapsed since January 1, 1970 UTC. The result is undefined if the
Unix time in microseconds cannot be represented by an int64 (a date
before year -290307 or after year 294246).
*/
func (t Time) UnixMicro() int64 {
	return t.unixSec()*1e6 + int64(t.nsec)/1e3
}

/*
UnixNano returns t as a Unix time, the number of nanoseconds elapsed
since January 1, 1970 UTC. The result is undefined if the Unix time
in nanoseconds cannot be represented by an int64 (a date before the
year 1678 or after 2262); in particular this applies to the zero
[Time].
*/
func (t Time) UnixNano() int64 {
	return t.unixSec()*1e9 + int64(t.nsec)
}

/*
After reports whether the time instant t is after u.
*/
func (t Time) After(u Time) bool {
	return t.sec > u.sec || (t.sec == u.sec && t.nsec > u.nsec)
}

/*
Before reports whether the time instant t is before u.
*/
func (t Time) Before(u Time) bool {
	return t.sec < u.sec || (t.sec == u.sec && t.nsec < u.nsec)
}

/*
Compare compares the time instant t with u. If t is before u, it
returns -1; if t is after u, it returns +1; if they're the same, it
returns 0.
*/
func (t Time) Compare(u Time) int {
	switch {
	case t.Before(u):
		return -1
	case t.After(u):
		return +1
	}
	return 0
}

/*
Equal reports whether t and u represent the same time instant.
*/
func (t Time) Equal(u Time) bool {
	return t.sec == u.sec && t.nsec == u.nsec
}

/*
IsZero reports whether t represents the zero time instant, January
1, year 1, 00:00:00 UTC.
*/
func (t Time) IsZero() bool {
	return t.sec == 0 && t.nsec == 0
}

/*
Add returns the time t+d.
*/
func (t Time) Add(d Duration) Time {
	dsec := int64(d / Second)
	nsec := t.nsec + int32(d%Second)
	if nsec >= 1e9 {
		dsec++
		nsec -= 1e9
	} else if nsec < 0 {
		dsec--
		nsec += 1e9
	}
	return Time{t.sec + dsec, nsec}
}

/*
Sub returns the duration t-u. If the result exceeds the maximum (or
minimum) value that can be stored in a [Duration], the maximum (or
minimum) duration will be returned.
*/
func (t Time) Sub(u Time) Duration {
	d := Duration(t.sec-u.sec)*Second + Duration(t.nsec-u.nsec)
	if u.Add(d).Equal(t) {
		return d // d is correct
	}
	if t.Before(u) {
		return MinDuration // t - u is negative out of range
	}
	return MaxDuration // t - u is positive out of range
}

/*
Since returns the time elapsed since t. It is shorthand for
Now().Sub(t).
*/
func Since(t Time) Duration {
	return Now().Sub(t)
}

/*
Until returns the duration until t. It is shorthand for
t.Sub(Now()).
*/
func Until(t Time) Duration {
	return t.Sub(Now())
}

/*
AddDate returns the time corresponding to adding the given number of
years, months and days to t. For example, AddDate(-1, 2, 3) applied
to January 1, 2011 returns March 4, 2010.

AddDate normalizes its result in the same way that [Date] does, so,
for example, adding one month to October 31 yields December 1, the
normalized form for November 31.
*/
func (t Time) AddDate(years, months, days int) Time {
	year, month, day := t.Date(0)
	hour, min, sec := t.Clock(0)
	return Date(year+years, month+Month(months), day+days, hour, min, sec, int(t.nsec), 0)
}

// lessThanHalf reports whether x+x < y but avoids overflow,
// assuming x and y are both positive.
func lessThanHalf(x, y Duration) bool {
	return uint64(x)+uint64(x) < uint64(y)
}

// div divides t by d and returns the remainder.
// Only supports d which is a multiple of 1 second.
func (t Time) div(d Duration) Duration {
	if d%Second != 0 {
		return 0
	}

	neg := false
	sec := t.sec
	nsec := int64(t.nsec)
	if sec < 0 {
		// Operate on absolute value.
		neg = true
		sec = -sec
		nsec = -nsec
		if nsec < 0 {
			nsec += 1e9
			sec-- // sec >= 1 before the -- so safe
		}
	}

	d1 := int64(d / Second)
	r := Duration(sec%d1)*Second + Duration(nsec)

	if neg && r != 0 {
		r = d - r
	}
	return r
}

/*
Truncate returns the result of rounding t down to a multiple of d
(since the zero time). Only d values that are a multiple of [Second]
are supported. If d <= 0, Truncate returns t unchanged.
*/
func (t Time) Truncate(d Duration) Time {
	if d <= 0 {
		return t
	}
	r := t.div(d)
	return t.Add(-r)
}

/*
Round returns the result of rounding t to the nearest multiple of d
(since the zero time). The rounding behavior for halfway values is
to round up. Only d values that are a multiple of [Second] are
supported. If d <= 0, Round returns t unchanged.
*/
func (t Time) Round(d Duration) Time {
	if d <= 0 {
		return t
	}
	r := t.div(d)
	if lessThanHalf(r, d) {
		return t.Add(-r)
	}
	return t.Add(d - r)
}

/*
String returns the ISO 8601 representation of t in UTC, e.g.
"2011-11-18T15:56:35.666777888Z". It is shorthand for rendering via
[Time.FormatISO] with a zero offset.
*/
func (t Time) String() string {
	var buf [30]byte
	n := t.FormatISO(buf[:], 0)
	return string(buf[:n])
}
