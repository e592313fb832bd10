package chrono

/*
parse.go implements the textual decoder. The accepted layout is
selected purely by input length; anything else is rejected. Failure
of any kind yields the zero Time -- there is no error channel.
*/

func dgt(b byte) bool        { return '0' <= b && b <= '9' }
func toInt2(b0, b1 byte) int { return int(b0-'0')*10 + int(b1-'0') }

// parseDatePart decodes "2006-01-02" from s[0:10].
func parseDatePart(s string) (year, month, day int, ok bool) {
	if s[4] != '-' || s[7] != '-' {
		return 0, 0, 0, false
	}
	for _, i := range [8]int{0, 1, 2, 3, 5, 6, 8, 9} {
		if !dgt(s[i]) {
			return 0, 0, 0, false
		}
	}
	year = toInt2(s[0], s[1])*100 + toInt2(s[2], s[3])
	month = toInt2(s[5], s[6])
	day = toInt2(s[8], s[9])
	return year, month, day, true
}

// parseClockPart decodes "15:04:05" from s[0:8].
func parseClockPart(s string) (hour, min, sec int, ok bool) {
	if s[2] != ':' || s[5] != ':' {
		return 0, 0, 0, false
	}
	for _, i := range [6]int{0, 1, 3, 4, 6, 7} {
		if !dgt(s[i]) {
			return 0, 0, 0, false
		}
	}
	hour = toInt2(s[0], s[1])
	min = toInt2(s[3], s[4])
	sec = toInt2(s[6], s[7])
	return hour, min, sec, true
}

// parseFracPart decodes ".999999999" from s[0:10].
func parseFracPart(s string) (nsec int, ok bool) {
	if s[0] != '.' {
		return 0, false
	}
	for i := 1; i < 10; i++ {
		if !dgt(s[i]) {
			return 0, false
		}
		nsec = nsec*10 + int(s[i]-'0')
	}
	return nsec, true
}

// parseOffsetPart decodes "+07:00" from s[0:6] into seconds east of
// UTC. The lexical rules are strict: a sign, exactly two digits, a
// literal colon, exactly two digits.
func parseOffsetPart(s string) (offsetSec int, ok bool) {
	if s[0] != '+' && s[0] != '-' {
		return 0, false
	}
	if !dgt(s[1]) || !dgt(s[2]) || s[3] != ':' || !dgt(s[4]) || !dgt(s[5]) {
		return 0, false
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	offsetSec = toInt2(s[1], s[2]) * secondsPerHour * sign
	offsetSec += toInt2(s[4], s[5]) * secondsPerMinute * sign
	return offsetSec, true
}

/*
Parse parses a formatted string and returns the time value it
represents. The layout is chosen by the exact length of the input:

	"2006-01-02T15:04:05.999999999+07:00"  (35 bytes)
	"2006-01-02T15:04:05.999999999Z"       (30 bytes)
	"2006-01-02T15:04:05+07:00"            (25 bytes)
	"2006-01-02T15:04:05Z"                 (20 bytes)
	"2006-01-02 15:04:05"                  (19 bytes)
	"2006-01-02"                           (10 bytes)
	"15:04:05"                             (8 bytes)

Any other length, and any input whose fields do not match the
selected layout, yields the zero [Time]. Out-of-range field values
are not rejected; they normalize exactly as in [Date].
*/
func Parse(value string) Time {
	year, month, day := 1, 1, 1
	var hour, min, sec, nsec, offsetSec int
	var ok bool

	switch len(value) {
	case 35:
		// "2006-01-02T15:04:05.999999999+07:00"
		if year, month, day, ok = parseDatePart(value); !ok || value[10] != 'T' {
			return Time{}
		}
		if hour, min, sec, ok = parseClockPart(value[11:]); !ok {
			return Time{}
		}
		if nsec, ok = parseFracPart(value[19:]); !ok {
			return Time{}
		}
		if offsetSec, ok = parseOffsetPart(value[29:]); !ok {
			return Time{}
		}
	case 30:
		// "2006-01-02T15:04:05.999999999Z"
		if year, month, day, ok = parseDatePart(value); !ok || value[10] != 'T' {
			return Time{}
		}
		if hour, min, sec, ok = parseClockPart(value[11:]); !ok {
			return Time{}
		}
		if nsec, ok = parseFracPart(value[19:]); !ok || value[29] != 'Z' {
			return Time{}
		}
	case 25:
		// "2006-01-02T15:04:05+07:00"
		if year, month, day, ok = parseDatePart(value); !ok || value[10] != 'T' {
			return Time{}
		}
		if hour, min, sec, ok = parseClockPart(value[11:]); !ok {
			return Time{}
		}
		if offsetSec, ok = parseOffsetPart(value[19:]); !ok {
			return Time{}
		}
	case 19, 20:
		// "2006-01-02 15:04:05"
		// "2006-01-02T15:04:05Z"
		// The byte at the date/time boundary is a wildcard, and the
		// trailing byte of the 20-byte form is not inspected.
		if year, month, day, ok = parseDatePart(value); !ok {
			return Time{}
		}
		if hour, min, sec, ok = parseClockPart(value[11:19]); !ok {
			return Time{}
		}
	case 10:
		// "2006-01-02"
		if year, month, day, ok = parseDatePart(value); !ok {
			return Time{}
		}
	case 8:
		// "15:04:05"
		if hour, min, sec, ok = parseClockPart(value); !ok {
			return Time{}
		}
	default:
		return Time{}
	}

	return Date(year, Month(month), day, hour, min, sec, nsec, offsetSec)
}
