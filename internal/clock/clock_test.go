package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLondon_Loads(t *testing.T) {
	require.NotNil(t, London())
	assert.Equal(t, Zone, London().String())
}

func TestLondonNow_ConvertsFromOtherZones(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"utc in summer", time.Date(2025, 6, 1, 8, 5, 0, 0, time.UTC), "09:05"},
		{"utc in winter", time.Date(2025, 12, 1, 8, 5, 0, 0, time.UTC), "08:05"},
		{"berlin", time.Date(2025, 6, 1, 23, 30, 0, 0, berlin), "22:30"},
		{"tokyo crosses midnight", time.Date(2025, 6, 2, 7, 0, 0, 0, tokyo), "23:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LondonNow(tt.now))
		})
	}
}

func TestSunLine(t *testing.T) {
	assert.Equal(t, "🌅 07:42 · 🌇 16:12", SunLine())
}

func TestBandFor_Boundaries(t *testing.T) {
	tests := map[int]Band{
		0: BandNight, 5: BandNight,
		6: BandMorning, 9: BandMorning,
		10: BandDay, 16: BandDay,
		17: BandEvening, 20: BandEvening,
		21: BandNight, 23: BandNight,
	}
	for hour, want := range tests {
		assert.Equal(t, want, BandFor(hour), "hour %d", hour)
	}
}

func TestBannerFor_UsesLondonHour(t *testing.T) {
	// 09:30 UTC in June is 10:30 in London.
	b := BannerFor(time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC))
	assert.Equal(t, BandDay, b.Band)
	assert.Contains(t, b.ImageURL, "photo-1473959383417")

	b = BannerFor(time.Date(2025, 1, 1, 5, 59, 0, 0, time.UTC))
	assert.Equal(t, BandNight, b.Band)
	assert.Contains(t, b.ImageURL, "photo-1541844053589")
}

func TestBannerFor_EveryBandHasImage(t *testing.T) {
	for _, band := range []Band{BandMorning, BandDay, BandEvening, BandNight} {
		assert.NotEmpty(t, banners[band], band)
	}
}
