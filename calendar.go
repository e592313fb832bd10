package chrono

/*
calendar.go implements the broken-down Calendar representation used
to exchange civil fields with callers in bulk.
*/

/*
Calendar is a broken-down civil time: the wall-clock fields a human
reads, always relative to some fixed UTC offset chosen by the
caller. It carries no sub-second precision and no zone identity.
*/
type Calendar struct {
	Year  int
	Month Month
	Day   int
	Hour  int
	Min   int
	Sec   int
}

/*
FromCalendar returns the [Time] corresponding to the given calendar
fields interpreted at the given fixed offset in seconds east of UTC.
Out-of-range fields are normalized exactly as in [Date].
*/
func FromCalendar(c Calendar, offsetSec int) Time {
	return Date(c.Year, c.Month, c.Day, c.Hour, c.Min, c.Sec, 0, offsetSec)
}

/*
Calendar returns t as broken-down calendar fields at the given fixed
offset in seconds east of UTC. The nanosecond component is dropped;
use [Time.Nanosecond] to recover it.
*/
func (t Time) Calendar(offsetSec int) Calendar {
	year, month, day := t.Date(offsetSec)
	hour, min, sec := t.Clock(offsetSec)
	return Calendar{
		Year:  year,
		Month: month,
		Day:   day,
		Hour:  hour,
		Min:   min,
		Sec:   sec,
	}
}
