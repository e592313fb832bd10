package chrono

import (
	"fmt"
	"testing"
)

type formatTest struct {
	year      int
	month     Month
	day       int
	hour      int
	min       int
	sec       int
	nsec      int
	want      string
	offsetSec int
}

func (ft formatTest) time() Time {
	return Date(ft.year, ft.month, ft.day, ft.hour, ft.min, ft.sec, ft.nsec, 0)
}

func TestFormatISO(t *testing.T) {
	for _, tc := range []formatTest{
		{2011, November, 18, 15, 56, 35, 0, `2011-11-18T15:56:35Z`, 0},
		{2011, November, 18, 15, 56, 35, 666777888, `2011-11-18T15:56:35.666777888Z`, 0},
		{2011, November, 18, 15, 56, 35, 0, `2011-11-18T20:56:35+05:00`, 5 * 3600},
		{2011, November, 18, 15, 56, 35, 0, `2011-11-18T21:26:35+05:30`, 5*3600 + 30*60},
		{2011, November, 18, 15, 56, 35, 0, `2011-11-18T10:56:35-05:00`, -5 * 3600},
		{2011, November, 18, 15, 56, 35, 0, `2011-11-18T10:26:35-05:30`, -5*3600 - 30*60},
		{2011, November, 18, 15, 56, 35, 666777888, `2011-11-18T20:56:35.666777888+05:00`, 5 * 3600},
		{2011, November, 18, 15, 56, 35, 666777888, `2011-11-18T10:56:35.666777888-05:00`, -5 * 3600},
	} {
		var buf [64]byte
		n := tc.time().FormatISO(buf[:], tc.offsetSec)
		if got := string(buf[:n]); got != tc.want {
			t.Fatalf("%s failed [offset %d]: want %s, got %s",
				t.Name(), tc.offsetSec, tc.want, got)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	for _, tc := range []formatTest{
		{2011, November, 18, 15, 56, 35, 0, `2011-11-18 15:56:35`, 0},
		{2011, November, 18, 15, 56, 35, 666777888, `2011-11-18 15:56:35`, 0},
		{2011, November, 18, 15, 56, 35, 0, `2011-11-18 20:56:35`, 5 * 3600},
		{2011, November, 18, 15, 56, 35, 0, `2011-11-18 21:26:35`, 5*3600 + 30*60},
		{2011, November, 18, 15, 56, 35, 0, `2011-11-18 10:56:35`, -5 * 3600},
		{2011, November, 18, 15, 56, 35, 0, `2011-11-18 10:26:35`, -5*3600 - 30*60},
		{2011, November, 18, 15, 56, 35, 666777888, `2011-11-18 20:56:35`, 5 * 3600},
		{2011, November, 18, 15, 56, 35, 666777888, `2011-11-18 10:56:35`, -5 * 3600},
	} {
		var buf [64]byte
		n := tc.time().FormatDateTime(buf[:], tc.offsetSec)
		if got := string(buf[:n]); got != tc.want {
			t.Fatalf("%s failed [offset %d]: want %s, got %s",
				t.Name(), tc.offsetSec, tc.want, got)
		}
	}
}

func TestFormatDate(t *testing.T) {
	for _, tc := range []formatTest{
		{2011, November, 18, 15, 56, 35, 0, `2011-11-18`, 0},
		{2011, November, 18, 15, 56, 35, 0, `2011-11-18`, 5 * 3600},
		{2011, November, 18, 15, 56, 35, 0, `2011-11-19`, 12 * 3600},
		{2011, November, 18, 15, 56, 35, 0, `2011-11-18`, -5 * 3600},
		{2011, November, 18, 15, 56, 35, 0, `2011-11-17`, -20 * 3600},
	} {
		var buf [64]byte
		n := tc.time().FormatDate(buf[:], tc.offsetSec)
		if got := string(buf[:n]); got != tc.want {
			t.Fatalf("%s failed [offset %d]: want %s, got %s",
				t.Name(), tc.offsetSec, tc.want, got)
		}
	}
}

func TestFormatTime(t *testing.T) {
	for _, tc := range []formatTest{
		{2011, November, 18, 15, 56, 35, 0, `15:56:35`, 0},
		{2011, November, 18, 15, 56, 35, 0, `20:56:35`, 5 * 3600},
		{2011, November, 18, 15, 56, 35, 0, `03:56:35`, 12 * 3600},
		{2011, November, 18, 15, 56, 35, 0, `10:56:35`, -5 * 3600},
		{2011, November, 18, 15, 56, 35, 0, `19:56:35`, -20 * 3600},
	} {
		var buf [64]byte
		n := tc.time().FormatTime(buf[:], tc.offsetSec)
		if got := string(buf[:n]); got != tc.want {
			t.Fatalf("%s failed [offset %d]: want %s, got %s",
				t.Name(), tc.offsetSec, tc.want, got)
		}
	}
}

func TestFormatShortBuffer(t *testing.T) {
	when := Date(2011, November, 18, 15, 56, 35, 666777888, 0)

	// A short buffer is left untouched; the return value reports the
	// required size.
	buf := []byte(`xxxxx`)
	if n := when.FormatISO(buf, 0); n != 30 {
		t.Fatalf("%s failed [required]: want 30, got %d", t.Name(), n)
	}
	if string(buf) != `xxxxx` {
		t.Fatalf("%s failed [untouched]: got %q", t.Name(), string(buf))
	}
	if n := when.FormatISO(nil, 5*3600); n != 35 {
		t.Fatalf("%s failed [required offset]: want 35, got %d", t.Name(), n)
	}
	if n := when.FormatDateTime(nil, 0); n != 19 {
		t.Fatalf("%s failed [datetime required]: want 19, got %d", t.Name(), n)
	}
	if n := when.FormatDate(nil, 0); n != 10 {
		t.Fatalf("%s failed [date required]: want 10, got %d", t.Name(), n)
	}
	if n := when.FormatTime(nil, 0); n != 8 {
		t.Fatalf("%s failed [time required]: want 8, got %d", t.Name(), n)
	}
}

func TestTimeString(t *testing.T) {
	for _, tc := range []struct {
		when Time
		want string
	}{
		{Date(2011, November, 18, 15, 56, 35, 0, 0), `2011-11-18T15:56:35Z`},
		{Date(2011, November, 18, 15, 56, 35, 666777888, 0), `2011-11-18T15:56:35.666777888Z`},
		{Time{}, `0001-01-01T00:00:00Z`},
	} {
		if got := tc.when.String(); got != tc.want {
			t.Fatalf("%s failed: want %s, got %s", t.Name(), tc.want, got)
		}
	}
}

func ExampleTime_FormatISO() {
	when := Date(2011, November, 18, 15, 56, 35, 0, 0)
	var buf [64]byte
	n := when.FormatISO(buf[:], 5*3600+30*60)
	fmt.Println(string(buf[:n]))
	// Output: 2011-11-18T21:26:35+05:30
}

func ExampleTime_FormatDateTime() {
	when := Date(2011, November, 18, 15, 56, 35, 0, 0)
	var buf [64]byte
	n := when.FormatDateTime(buf[:], 0)
	fmt.Println(string(buf[:n]))
	// Output: 2011-11-18 15:56:35
}
