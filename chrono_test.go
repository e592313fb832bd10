package chrono

import (
	"fmt"
	"testing"
)

func TestMonthString(t *testing.T) {
	for _, tc := range []struct {
		m    Month
		want string
	}{
		{January, `January`},
		{August, `August`},
		{December, `December`},
		{Month(0), `%!Month(0)`},
		{Month(13), `%!Month(13)`},
		{Month(-2), `%!Month(-2)`},
	} {
		if got := tc.m.String(); got != tc.want {
			t.Fatalf("%s failed [%d]: want %s, got %s",
				t.Name(), int(tc.m), tc.want, got)
		}
	}
}

func TestWeekdayString(t *testing.T) {
	for _, tc := range []struct {
		d    Weekday
		want string
	}{
		{Sunday, `Sunday`},
		{Wednesday, `Wednesday`},
		{Saturday, `Saturday`},
		{Weekday(7), `%!Weekday(7)`},
		{Weekday(-1), `%!Weekday(-1)`},
	} {
		if got := tc.d.String(); got != tc.want {
			t.Fatalf("%s failed [%d]: want %s, got %s",
				t.Name(), int(tc.d), tc.want, got)
		}
	}
}

func TestIsLeap(t *testing.T) {
	for _, tc := range []struct {
		year int
		want bool
	}{
		{2024, true},
		{2023, false},
		{2000, true},
		{1900, false},
		{1600, true},
		{4, true},
		{1, false},
	} {
		if got := isLeap(tc.year); got != tc.want {
			t.Fatalf("%s failed [%d]: want %t, got %t",
				t.Name(), tc.year, tc.want, got)
		}
	}
}

func ExampleMonth_String() {
	fmt.Println(August)
	// Output: August
}

func ExampleWeekday_String() {
	fmt.Println(Tuesday)
	// Output: Tuesday
}
