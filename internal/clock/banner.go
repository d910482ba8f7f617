package clock

import "time"

// BannerInterval is how often the banner band is re-evaluated.
const BannerInterval = time.Hour

// Band names a time-of-day slot.
type Band string

const (
	BandMorning Band = "morning"
	BandDay     Band = "day"
	BandEvening Band = "evening"
	BandNight   Band = "night"
)

// Banner is the header image for one band.
type Banner struct {
	Band     Band
	ImageURL string
}

var banners = map[Band]string{
	BandMorning: "https://images.unsplash.com/photo-1602535819025-6cf5f7b1bbfe?auto=format&fit=crop&w=1500&q=80",
	BandDay:     "https://images.unsplash.com/photo-1473959383417-5cd8c1df8a06?auto=format&fit=crop&w=1500&q=80",
	BandEvening: "https://images.unsplash.com/photo-1505761671935-60b3a7427bad?auto=format&fit=crop&w=1500&q=80",
	BandNight:   "https://images.unsplash.com/photo-1541844053589-346841d0d8f8?auto=format&fit=crop&w=1500&q=80",
}

// BandFor maps a 0-23 hour to its band.
func BandFor(hour int) Band {
	switch {
	case hour >= 6 && hour < 10:
		return BandMorning
	case hour >= 10 && hour < 17:
		return BandDay
	case hour >= 17 && hour < 21:
		return BandEvening
	default:
		return BandNight
	}
}

// BannerFor picks the banner for the London hour of now.
func BannerFor(now time.Time) Banner {
	band := BandFor(now.In(London()).Hour())
	return Banner{Band: band, ImageURL: banners[band]}
}
