package timezone

import (
	"sync/atomic"
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Sao_Paulo"

var current atomic.Value

func init() {
	current.Store(DefaultTimezone)
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// SetDefault changes the zone used by Now and Today. Invalid names are
// ignored and reported as false.
func SetDefault(tz string) bool {
	if !IsValid(tz) {
		return false
	}
	current.Store(tz)
	return true
}

func Default() string {
	return current.Load().(string)
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(Default()))
}

// Today is the current calendar date in the default zone, as UTC midnight.
func Today() time.Time {
	return DateOf(Now())
}

// DateOf drops the clock and zone of t, keeping its calendar date.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
