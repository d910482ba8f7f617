// Package weather fetches current conditions from the open-meteo forecast API.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/alexanderramin/londonapp/internal/domain"
)

// Report is the validated subset of a forecast response.
type Report struct {
	Temperature   float64
	Precipitation float64 // probability in percent
	WindSpeed     float64 // km/h
	TomorrowMax   float64
}

// Icon returns the precipitation icon for the report.
func (r Report) Icon() Icon { return IconFor(r.Precipitation) }

// Client provides current weather for a coordinate.
type Client interface {
	Current(ctx context.Context, coord domain.Coord) (*Report, error)
}

// Config holds the forecast client parameters.
type Config struct {
	Endpoint string
	Timeout  time.Duration
	Timezone string
}

// DefaultConfig returns the open-meteo defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint: "https://api.open-meteo.com/v1/forecast",
		Timeout:  6 * time.Second,
		Timezone: "Europe/London",
	}
}

type openMeteoClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewOpenMeteoClient creates a Client for the open-meteo forecast endpoint.
func NewOpenMeteoClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &openMeteoClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// forecastResponse mirrors the fields we read. Pointers distinguish a
// missing value from zero.
type forecastResponse struct {
	Current *struct {
		Temperature   *float64 `json:"temperature_2m"`
		Precipitation *float64 `json:"precipitation_probability"`
		WindSpeed     *float64 `json:"windspeed_10m"`
	} `json:"current"`
	Daily *struct {
		TemperatureMax []*float64 `json:"temperature_2m_max"`
	} `json:"daily"`
}

func (r *forecastResponse) report() (*Report, error) {
	if r.Current == nil || r.Current.Temperature == nil ||
		r.Current.Precipitation == nil || r.Current.WindSpeed == nil {
		return nil, fmt.Errorf("%w: missing current values", ErrMalformedResponse)
	}
	if r.Daily == nil || len(r.Daily.TemperatureMax) < 2 || r.Daily.TemperatureMax[1] == nil {
		return nil, fmt.Errorf("%w: missing next-day maximum", ErrMalformedResponse)
	}
	return &Report{
		Temperature:   *r.Current.Temperature,
		Precipitation: *r.Current.Precipitation,
		WindSpeed:     *r.Current.WindSpeed,
		TomorrowMax:   *r.Daily.TemperatureMax[1],
	}, nil
}

func (c *openMeteoClient) Current(ctx context.Context, coord domain.Coord) (*Report, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	report, err := c.doRequest(ctx, coord)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			err = ErrTimeout
		case !errors.Is(err, ErrFetch):
			err = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		c.observer.OnCallComplete(CallEvent{
			Coord:     coord,
			LatencyMs: latency,
			ErrorCode: errorCode(err),
		})
		return nil, err
	}

	c.observer.OnCallComplete(CallEvent{
		Coord:     coord,
		LatencyMs: latency,
		Success:   true,
	})
	return report, nil
}

// RequestURL builds the forecast query for coord.
func (c *openMeteoClient) RequestURL(coord domain.Coord) string {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(coord.Lng, 'f', -1, 64))
	q.Set("current", "temperature_2m,precipitation_probability,windspeed_10m")
	q.Set("daily", "temperature_2m_max,precipitation_sum")
	q.Set("forecast_days", "2")
	q.Set("timezone", c.cfg.Timezone)
	return c.cfg.Endpoint + "?" + q.Encode()
}

func (c *openMeteoClient) doRequest(ctx context.Context, coord domain.Coord) (*Report, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.RequestURL(coord), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrUnavailable, err)
	}
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrMalformedResponse, err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrStatus, httpResp.StatusCode)
	}

	var resp forecastResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return resp.report()
}
