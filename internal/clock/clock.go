// Package clock formats London wall-clock time and picks the time-of-day banner.
package clock

import (
	"sync"
	"time"

	// Embedded zone database for hosts without one.
	_ "time/tzdata"
)

// Zone is the IANA name of the trip's timezone.
const Zone = "Europe/London"

// Sunrise and sunset are fixed placeholders, not computed per date.
const (
	SunriseLabel = "07:42"
	SunsetLabel  = "16:12"
)

// RefreshInterval is how often the London Now tile is redrawn.
const RefreshInterval = time.Minute

var (
	londonOnce sync.Once
	london     *time.Location
)

// London returns the Europe/London location, loaded once.
func London() *time.Location {
	londonOnce.Do(func() {
		loc, err := time.LoadLocation(Zone)
		if err != nil {
			loc = time.UTC
		}
		london = loc
	})
	return london
}

// LondonNow formats now as HH:MM in London time.
func LondonNow(now time.Time) string {
	return now.In(London()).Format("15:04")
}

// SunLine is the sunrise/sunset row of the tile.
func SunLine() string {
	return "🌅 " + SunriseLabel + " · 🌇 " + SunsetLabel
}
