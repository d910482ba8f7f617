package weather

import (
	"log/slog"

	"github.com/alexanderramin/londonapp/internal/domain"
)

// CallEvent records metadata about a single forecast request.
type CallEvent struct {
	Coord     domain.Coord
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about weather calls for logging.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to a slog logger.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to logger.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	attrs := []any{
		"lat", event.Coord.Lat,
		"lng", event.Coord.Lng,
		"latency_ms", event.LatencyMs,
	}
	if !event.Success {
		o.logger.Warn("weather_call", append(attrs, "status", "err:"+event.ErrorCode)...)
		return
	}
	o.logger.Info("weather_call", append(attrs, "status", "ok")...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
