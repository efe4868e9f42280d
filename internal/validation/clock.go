package validation

import "time"

// now is replaced in tests that need a fixed "today".
var now = time.Now

func today() time.Time {
	t := now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
