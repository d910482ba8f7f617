package itinerary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/londonapp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "trip.json"))
	require.NoError(t, err)
	return data
}

func TestParse_DocumentShape(t *testing.T) {
	trip, err := Parse(readFixture(t))
	require.NoError(t, err)

	require.Len(t, trip.Days, 2)
	day := trip.Days[0]
	assert.Equal(t, 1, day.Tag)
	assert.Equal(t, "2025-06-01", day.Date)
	assert.Equal(t, "Arrival", day.Title)
	require.Len(t, day.Points, 3)

	assert.Equal(t, "10:30", day.Points[0].Time)
	assert.Nil(t, day.Points[0].Coords)
	require.NotNil(t, day.Points[1].Coords)
	assert.Equal(t, domain.Coord{Lat: 51.5076, Lng: -0.0994}, *day.Points[1].Coords)
	assert.Equal(t, "https://example.com/bridge", day.Points[2].URL)
	assert.Empty(t, day.Points[2].Time)
}

func TestParse_PartialCoordsAreAbsent(t *testing.T) {
	trip, err := Parse(readFixture(t))
	require.NoError(t, err)

	assert.Nil(t, trip.Days[1].Points[0].Coords, "lat without lng must not count as a coordinate")
}

func TestParse_IdeasKeepKnownCategoriesOnly(t *testing.T) {
	trip, err := Parse(readFixture(t))
	require.NoError(t, err)

	assert.Len(t, trip.Ideas, 2)
	assert.Len(t, trip.Ideas[domain.CategoryEvening], 2)
	assert.Equal(t, "https://example.com/bar", trip.Ideas[domain.CategoryEvening][1].URL)
	require.Len(t, trip.Ideas[domain.CategoryCulinary], 1)
	assert.NotNil(t, trip.Ideas[domain.CategoryCulinary][0].Coords)
	_, ok := trip.Ideas[domain.IdeaCategory("shopping")]
	assert.False(t, ok)
}

func TestParse_EmptyObjectYieldsEmptyTrip(t *testing.T) {
	trip, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, trip.Days)
	assert.Empty(t, trip.Ideas)
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"tage": [`))
	assert.ErrorIs(t, err, ErrDocumentParse)
	assert.NotErrorIs(t, err, ErrDocumentLoad)

	_, err = Parse([]byte(`[1,2,3]`))
	assert.ErrorIs(t, err, ErrDocumentParse)
}

func TestLoader_File(t *testing.T) {
	l := NewLoader(filepath.Join("testdata", "trip.json"), Options{})

	trip, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, trip.Days, 2)
}

func TestLoader_FileMissing(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "missing.json"), Options{})

	_, err := l.Load(context.Background())
	assert.ErrorIs(t, err, ErrDocumentLoad)
	assert.Equal(t, "Datei nicht gefunden", Kind(err))
}

func TestLoader_HTTPSuccess(t *testing.T) {
	fixture := readFixture(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/london2025_data.json", r.URL.Path)
		assert.Equal(t, "no-cache", r.Header.Get("Cache-Control"))
		w.Header().Set("Content-Type", "application/json")
		w.Write(fixture)
	}))
	defer srv.Close()

	l := NewLoader(srv.URL+"/london2025_data.json", Options{})
	raw, trip, err := l.LoadRaw(context.Background())

	require.NoError(t, err)
	assert.Equal(t, fixture, raw)
	assert.Len(t, trip.Days, 2)
}

func TestLoader_HTTPNonSuccessStatus(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewLoader(srv.URL, Options{}).Load(context.Background())

	assert.ErrorIs(t, err, ErrDocumentLoad)
	assert.Equal(t, 1, calls, "the loader must not retry")
}

func TestLoader_HTTPBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := NewLoader(srv.URL, Options{}).Load(context.Background())

	assert.ErrorIs(t, err, ErrDocumentParse)
	assert.Equal(t, "ungültiges Format", Kind(err))
}

func TestLoader_HTTPTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := NewLoader(srv.URL, Options{Timeout: 30 * time.Millisecond}).Load(context.Background())

	assert.ErrorIs(t, err, ErrDocumentLoad)
}

func TestLoader_Unreachable(t *testing.T) {
	_, err := NewLoader("http://127.0.0.1:1/data.json", Options{Timeout: time.Second}).Load(context.Background())
	assert.ErrorIs(t, err, ErrDocumentLoad)
}
