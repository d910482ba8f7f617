package cli

import (
	"github.com/alexanderramin/londonapp/internal/domain"
	"github.com/alexanderramin/londonapp/internal/selection"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Trip is nil until loaded; LoadErr is set when loading failed.
	Trip    *domain.Trip
	LoadErr error
	Loaded  bool

	Selection *selection.State

	// Terminal dimensions
	Width  int
	Height int
}

// Days returns the loaded days, or nil.
func (s *SharedState) Days() []domain.Day {
	if s.Trip == nil {
		return nil
	}
	return s.Trip.Days
}

// OpenDay selects index through the guarded selection state.
func (s *SharedState) OpenDay(index int) (selection.Token, error) {
	return s.Selection.OpenDay(index, len(s.Days()))
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
