package main

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// clock supplies "today" for the --date default so tests can freeze it.
var clock = clockwork.NewRealClock()

// resolveDate parses a YYYY-MM-DD date, or returns the current UTC day
// when the flag was left empty.
func resolveDate(date string) (time.Time, error) {
	if date == "" {
		return clock.Now().UTC(), nil
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	return t, nil
}
