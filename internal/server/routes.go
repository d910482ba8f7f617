package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/alexanderramin/londonapp/internal/domain"
	"github.com/alexanderramin/londonapp/internal/mapview"
)

// DaySummary is one entry of the day list.
type DaySummary struct {
	Tag     int    `json:"tag"`
	Datum   string `json:"datum"`
	Titel   string `json:"titel"`
	Color   string `json:"color"`
	Located int    `json:"located"`
}

func registerAPIRoutes(r chi.Router, deps Deps) {
	r.Get("/api/days", listDaysHandler(deps))
	r.Get("/api/ideas", listIdeasHandler(deps))
	r.Get("/api/days/{tag}/map", dayMapHandler(deps))
}

func listDaysHandler(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make([]DaySummary, 0, len(deps.Trip.Days))
		for _, d := range deps.Trip.Days {
			out = append(out, DaySummary{
				Tag:     d.Tag,
				Datum:   d.Date,
				Titel:   d.Title,
				Color:   deps.Palette.ForTag(d.Tag),
				Located: len(domain.LocatedPoints(d.Points)),
			})
		}
		writeJSON(deps.Logger, w, http.StatusOK, out)
	}
}

func listIdeasHandler(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(deps.Logger, w, http.StatusOK, deps.Catalog.ExpandAll(deps.Trip.Ideas))
	}
}

func dayMapHandler(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tag, err := strconv.Atoi(chi.URLParam(r, "tag"))
		if err != nil {
			writeError(deps.Logger, w, http.StatusBadRequest, "tag must be an integer")
			return
		}
		_, day, ok := deps.Trip.DayByTag(tag)
		if !ok {
			writeError(deps.Logger, w, http.StatusNotFound, "day not found")
			return
		}
		writeJSON(deps.Logger, w, http.StatusOK, mapview.BuildDay(day, deps.Palette, deps.Providers))
	}
}

func writeJSON(logger *slog.Logger, w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("response_write_failed", "status", status, "error", err)
	}
}

func writeError(logger *slog.Logger, w http.ResponseWriter, status int, msg string) {
	writeJSON(logger, w, status, map[string]string{"error": msg})
}
