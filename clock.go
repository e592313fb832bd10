package chrono

/*
clock.go isolates the single platform dependency: reading the host
wall clock as a Unix (seconds, nanoseconds) pair. Everything else in
the package is pure computation.
*/

import "time"

// nowUnix reads the platform wall clock. Swappable in tests.
var nowUnix = func() (sec int64, nsec int32) {
	now := time.Now()
	return now.Unix(), int32(now.Nanosecond())
}
