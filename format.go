package chrono

/*
format.go implements the fixed textual layouts. Each renderer writes
into a caller-provided buffer and returns the byte count the
rendering requires; the buffer is written only when it is large
enough, so callers detect truncation by comparing the return value
against len(buf).
*/

// putDate writes "2006-01-02" at buf[0:10].
func putDate(buf []byte, year int, month Month, day int) {
	buf[0] = byte('0' + (year/1000)%10)
	buf[1] = byte('0' + (year/100)%10)
	buf[2] = byte('0' + (year/10)%10)
	buf[3] = byte('0' + year%10)
	buf[4] = '-'
	put2(buf[5:], int(month))
	buf[7] = '-'
	put2(buf[8:], day)
}

// putClock writes "15:04:05" at buf[0:8].
func putClock(buf []byte, hour, min, sec int) {
	put2(buf, hour)
	buf[2] = ':'
	put2(buf[3:], min)
	buf[5] = ':'
	put2(buf[6:], sec)
}

// putFrac writes ".999999999" at buf[0:10], zero-padded to nine digits.
func putFrac(buf []byte, nsec int) {
	buf[0] = '.'
	i := 1
	for p := 100000000; p >= 1; p /= 10 {
		buf[i] = byte('0' + (nsec/p)%10)
		i++
	}
}

// putOffset writes "+07:00" at buf[0:6]. A sub-hour negative offset
// renders with a '+' sign, matching the hour-division convention.
func putOffset(buf []byte, offsetSec int) {
	ofhour := offsetSec / secondsPerHour
	ofmin := (offsetSec % secondsPerHour) / secondsPerMinute
	if ofmin < 0 {
		ofmin = -ofmin
	}
	sign := byte('+')
	if ofhour < 0 {
		sign = '-'
		ofhour = -ofhour
	}
	buf[0] = sign
	put2(buf[1:], ofhour)
	buf[3] = ':'
	put2(buf[4:], ofmin)
}

func put2(buf []byte, v int) {
	buf[0] = byte('0' + v/10)
	buf[1] = byte('0' + v%10)
}

/*
FormatISO renders t as an ISO 8601 string at the given fixed offset
in seconds east of UTC, choosing the most compact of:

	2006-01-02T15:04:05.999999999+07:00
	2006-01-02T15:04:05.999999999Z
	2006-01-02T15:04:05+07:00
	2006-01-02T15:04:05Z

The fractional part appears only when the nanosecond field is
nonzero, always padded to nine digits. A zero offset renders the
literal Z suffix. The return value is the required byte count; buf
is written only when len(buf) is at least that large.
*/
func (t Time) FormatISO(buf []byte, offsetSec int) int {
	n := 20
	if t.nsec != 0 {
		n += 10
	}
	if offsetSec != 0 {
		n += 5
	}
	if len(buf) < n {
		return n
	}

	year, month, day := t.Date(offsetSec)
	hour, min, sec := t.Clock(offsetSec)

	putDate(buf, year, month, day)
	buf[10] = 'T'
	putClock(buf[11:], hour, min, sec)
	i := 19
	if t.nsec != 0 {
		putFrac(buf[i:], int(t.nsec))
		i += 10
	}
	if offsetSec == 0 {
		buf[i] = 'Z'
	} else {
		putOffset(buf[i:], offsetSec)
	}
	return n
}

/*
FormatDateTime renders t as "2006-01-02 15:04:05" at the given fixed
offset in seconds east of UTC. The offset shifts the rendered fields
but is never itself rendered. The return value is the required byte
count; buf is written only when len(buf) is at least that large.
*/
func (t Time) FormatDateTime(buf []byte, offsetSec int) int {
	const n = 19
	if len(buf) < n {
		return n
	}
	year, month, day := t.Date(offsetSec)
	hour, min, sec := t.Clock(offsetSec)
	putDate(buf, year, month, day)
	buf[10] = ' '
	putClock(buf[11:], hour, min, sec)
	return n
}

/*
FormatDate renders t as "2006-01-02" at the given fixed offset in
seconds east of UTC. The return value is the required byte count;
buf is written only when len(buf) is at least that large.
*/
func (t Time) FormatDate(buf []byte, offsetSec int) int {
	const n = 10
	if len(buf) < n {
		return n
	}
	year, month, day := t.Date(offsetSec)
	putDate(buf, year, month, day)
	return n
}

/*
FormatTime renders t as "15:04:05" at the given fixed offset in
seconds east of UTC. The return value is the required byte count;
buf is written only when len(buf) is at least that large.
*/
func (t Time) FormatTime(buf []byte, offsetSec int) int {
	const n = 8
	if len(buf) < n {
		return n
	}
	hour, min, sec := t.Clock(offsetSec)
	putClock(buf, hour, min, sec)
	return n
}
