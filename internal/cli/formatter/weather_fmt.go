package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/londonapp/internal/clock"
	"github.com/alexanderramin/londonapp/internal/weather"
)

const weatherUnavailable = "⚠️ Wetterdaten nicht verfügbar"

// WeatherTile renders the forecast for the named place.
func WeatherTile(place string, r *weather.Report) string {
	icon := r.Icon()
	temp := fmt.Sprintf("%s / %s",
		StyleBold.Render(fmt.Sprintf("%.0f °C", r.Temperature)),
		fmt.Sprintf("%.0f °C morgen", r.TomorrowMax))
	meta := Dim(fmt.Sprintf("💧 Regen %.0f%% · 💨 Wind %.0f km/h", r.Precipitation, r.WindSpeed))
	return RenderBox(icon.Glyph+" "+place, temp+"\n"+meta)
}

// WeatherLoading renders the tile while the forecast is in flight.
func WeatherLoading(place, spinner string) string {
	return RenderBox("… "+place, StylePurple.Render(spinner)+" "+Dim("Wetter wird geladen"))
}

// WeatherFailed renders the tile after a failed forecast request.
func WeatherFailed() string {
	return RenderBox("", StyleYellow.Render(weatherUnavailable))
}

// NowTile renders the London Now tile for now.
func NowTile(now time.Time) string {
	return RenderBox("🇬🇧 London Now", "🕒 "+clock.LondonNow(now)+"\n"+Dim(clock.SunLine()))
}

// Banner renders the time-of-day header line.
func Banner(b clock.Banner) string {
	return StyleHeader.Render("London 2025") + "  " + Dim(string(b.Band)+" · "+b.ImageURL)
}
