package schedule

import "fmt"

// minutesToClock renders minutes-from-midnight as "HH:MM", wrapping modulo
// one day.
func minutesToClock(minutes int) string {
	m := ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// clockToMinutes parses "HH:MM" into minutes-from-midnight. Returns false if
// malformed.
func clockToMinutes(clock string) (int, bool) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, false
	}
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
