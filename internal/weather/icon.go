package weather

// Icon is the precipitation-based summary glyph.
type Icon struct {
	Glyph string
	Name  string
}

var (
	IconHeavyRain = Icon{Glyph: "🌧️", Name: "heavy rain"}
	IconShowers   = Icon{Glyph: "🌦️", Name: "showers"}
	IconOvercast  = Icon{Glyph: "⛅", Name: "overcast"}
	IconClear     = Icon{Glyph: "☀️", Name: "clear"}
)

// IconFor selects the icon for a precipitation probability in percent.
func IconFor(probability float64) Icon {
	switch {
	case probability > 60:
		return IconHeavyRain
	case probability > 30:
		return IconShowers
	case probability > 10:
		return IconOvercast
	default:
		return IconClear
	}
}
