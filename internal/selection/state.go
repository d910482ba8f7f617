// Package selection tracks which day sheet is open, which idea group is
// expanded and which map instance is live.
package selection

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/alexanderramin/londonapp/internal/domain"
	"github.com/alexanderramin/londonapp/internal/mapview"
)

// ErrDayOutOfRange is returned when opening an index outside the day list.
var ErrDayOutOfRange = errors.New("day index out of range")

// Token identifies one opened sheet. Async results carry the token they were
// started under and are dropped once it is no longer current.
type Token string

// State is owned by the UI event loop and is not safe for concurrent use.
type State struct {
	currentDay int
	hasDay     bool
	expanded   domain.IdeaCategory
	token      Token

	Maps mapview.Holder
}

// New returns a state with nothing selected.
func New() *State {
	return &State{}
}

// OpenDay selects index and issues a fresh token. An out-of-range index
// leaves the state unchanged.
func (s *State) OpenDay(index, dayCount int) (Token, error) {
	if index < 0 || index >= dayCount {
		return "", fmt.Errorf("%w: %d of %d", ErrDayOutOfRange, index, dayCount)
	}
	s.currentDay = index
	s.hasDay = true
	s.token = Token(uuid.New().String())
	return s.token, nil
}

// CloseDay clears the selection and invalidates the current token.
func (s *State) CloseDay() {
	s.hasDay = false
	s.currentDay = 0
	s.token = Token(uuid.New().String())
}

// CurrentDay returns the open day's index.
func (s *State) CurrentDay() (int, bool) {
	return s.currentDay, s.hasDay
}

// IsCurrent reports whether tok belongs to the open sheet.
func (s *State) IsCurrent(tok Token) bool {
	return s.hasDay && tok != "" && tok == s.token
}

// Toggle collapses key if it is expanded, otherwise expands it alone.
func (s *State) Toggle(key domain.IdeaCategory) {
	if s.expanded == key {
		s.expanded = ""
		return
	}
	s.expanded = key
}

// Expanded returns the expanded group, if any.
func (s *State) Expanded() (domain.IdeaCategory, bool) {
	return s.expanded, s.expanded != ""
}

// IsExpanded reports whether key is the expanded group.
func (s *State) IsExpanded(key domain.IdeaCategory) bool {
	return s.expanded != "" && s.expanded == key
}
