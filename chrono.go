/*
Package chrono provides civil time and duration handling with
nanosecond precision.

Calendrical calculations always assume the proleptic Gregorian
calendar, with no leap seconds. There is no time zone database;
local representations are expressed exclusively through fixed
numeric UTC offsets (seconds east of UTC) supplied by the caller.

The two value types -- [Time] and [Duration] -- are immutable and
safe for unguarded concurrent use. Every operation is a total
function: malformed textual or binary input yields the zero [Time]
rather than an error, and arithmetic that would overflow saturates
to [MinDuration] or [MaxDuration] rather than wrapping.
*/
package chrono

/*
Month is a month of the year (January = 1, ...).
*/
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [12]string{
	`January`,
	`February`,
	`March`,
	`April`,
	`May`,
	`June`,
	`July`,
	`August`,
	`September`,
	`October`,
	`November`,
	`December`,
}

/*
String returns the English name of the month ("January", "February", ...).
*/
func (r Month) String() string {
	if January <= r && r <= December {
		return monthNames[r-1]
	}
	return `%!Month(` + uitoa(int(r)) + `)`
}

/*
Weekday is a day of the week (Sunday = 0, ...).
*/
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [7]string{
	`Sunday`,
	`Monday`,
	`Tuesday`,
	`Wednesday`,
	`Thursday`,
	`Friday`,
	`Saturday`,
}

/*
String returns the English name of the day ("Sunday", "Monday", ...).
*/
func (r Weekday) String() string {
	if Sunday <= r && r <= Saturday {
		return weekdayNames[r]
	}
	return `%!Weekday(` + uitoa(int(r)) + `)`
}

// uitoa renders a small non-negative integer without pulling
// in strconv. Negative input falls back to a leading minus.
func uitoa(v int) string {
	if v < 0 {
		return `-` + uitoa(-v)
	}
	var b [20]byte
	i := len(b)
	for v >= 10 {
		i--
		b[i] = byte('0' + v%10)
		v /= 10
	}
	i--
	b[i] = byte('0' + v)
	return string(b[i:])
}
