package chrono

/*
duration.go implements the Duration interval type: unit constants,
unit conversions, truncation, rounding and absolute value.
*/

/*
Duration represents the elapsed time between two instants as an
int64 nanosecond count. The representation limits the largest
representable duration to approximately 290 years.
*/
type Duration int64

/*
Minimum and maximum representable durations. Saturating operations
([Duration.Round], [Time.Sub]) return these sentinels instead of a
wrapped value when the true result is out of range.
*/
const (
	MinDuration Duration = -1 << 63
	MaxDuration Duration = 1<<63 - 1
)

/*
Common durations. There is no definition for units of Day or larger
to avoid confusion across daylight savings time zone transitions.
*/
const (
	Nanosecond  Duration = 1
	Microsecond          = 1000 * Nanosecond
	Millisecond          = 1000 * Microsecond
	Second               = 1000 * Millisecond
	Minute               = 60 * Second
	Hour                 = 60 * Minute
)

/*
Microseconds returns the duration as an integer microsecond count.
*/
func (d Duration) Microseconds() int64 {
	return int64(d) / int64(Microsecond)
}

/*
Milliseconds returns the duration as an integer millisecond count.
*/
func (d Duration) Milliseconds() int64 {
	return int64(d) / int64(Millisecond)
}

/*
Seconds returns the duration as a floating point number of seconds.
The whole seconds and the fractional remainder are converted
separately to avoid precision loss on large counts.
*/
func (d Duration) Seconds() float64 {
	sec := d / Second
	nsec := d % Second
	return float64(sec) + float64(nsec)/1e9
}

/*
Minutes returns the duration as a floating point number of minutes.
*/
func (d Duration) Minutes() float64 {
	min := d / Minute
	nsec := d % Minute
	return float64(min) + float64(nsec)/(60*1e9)
}

/*
Hours returns the duration as a floating point number of hours.
*/
func (d Duration) Hours() float64 {
	hour := d / Hour
	nsec := d % Hour
	return float64(hour) + float64(nsec)/(60*60*1e9)
}

/*
Truncate returns the result of rounding d toward zero to a multiple
of m. If m <= 0, Truncate returns d unchanged.
*/
func (d Duration) Truncate(m Duration) Duration {
	if m <= 0 {
		return d
	}
	return d - d%m
}

/*
Round returns the result of rounding d to the nearest multiple of m.
The rounding behavior for halfway values is to round away from zero.
If the result exceeds the maximum (or minimum) value that can be
stored in a [Duration], Round returns [MaxDuration] (or
[MinDuration]). If m <= 0, Round returns d unchanged.
*/
func (d Duration) Round(m Duration) Duration {
	if m <= 0 {
		return d
	}
	r := d % m

	if d < 0 {
		r = -r
		if lessThanHalf(r, m) {
			return d + r
		}
		if d1 := d - m + r; d1 < d {
			return d1
		}
		return MinDuration // overflow
	}

	if lessThanHalf(r, m) {
		return d - r
	}
	if d1 := d + m - r; d1 > d {
		return d1
	}
	return MaxDuration // overflow
}

/*
Abs returns the absolute value of d. As a special case,
[MinDuration] is converted to [MaxDuration], as its true negation is
not representable.
*/
func (d Duration) Abs() Duration {
	switch {
	case d >= 0:
		return d
	case d == MinDuration:
		return MaxDuration
	}
	return -d
}
