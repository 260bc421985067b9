// Package squadfinder holds the transient state of one squad-search wizard
// run: the selected game, the role toggles and the availability grid. When
// the selection is complete it builds a throwaway squad profile and hands it
// to the matching engine.
package squadfinder

import (
	"errors"
	"slices"

	"github.com/r0nnniiee/GAME-match/internal/catalog"
	"github.com/r0nnniiee/GAME-match/internal/matching"
	"github.com/r0nnniiee/GAME-match/internal/models"
)

var (
	// ErrUnknownGame is returned for a game outside the catalog.
	ErrUnknownGame = errors.New("game is not in the catalog")
	// ErrUnknownSlot is returned for a day or slot id outside the weekly grid.
	ErrUnknownSlot = errors.New("day or time slot is not in the schedule grid")
	// ErrUnknownRole is returned for a role label outside the role catalog.
	ErrUnknownRole = errors.New("role is not in the catalog")
	// ErrNoGameSelected is returned when matching runs before a game is picked.
	ErrNoGameSelected = errors.New("no game selected")
)

// Session is the profile-under-construction of one matching run. It is owned
// by a single caller and not safe for concurrent use, matching the
// single-writer model of the engine.
type Session struct {
	actor        *models.User
	game         string
	roles        []string
	availability []models.DayAvailability
}

// NewSession starts a wizard session for the actor, seeded from the actor's
// stored squad profile and first game, as the UI does.
func NewSession(actor *models.User) *Session {
	s := &Session{actor: actor}
	if len(actor.Games) > 0 {
		s.game = actor.Games[0]
	}
	if p := actor.SquadProfile; p != nil {
		s.roles = slices.Clone(p.Roles)
		s.availability = make([]models.DayAvailability, len(p.Availability))
		for i, d := range p.Availability {
			s.availability[i] = models.DayAvailability{Day: d.Day, Times: slices.Clone(d.Times)}
		}
	}
	return s
}

// SelectGame picks the game to search teammates for.
func (s *Session) SelectGame(game string) error {
	if !catalog.ValidGame(game) {
		return ErrUnknownGame
	}
	s.game = game
	return nil
}

// ToggleRole adds the role to the selection, or removes it when already
// selected.
func (s *Session) ToggleRole(role string) {
	if i := slices.Index(s.roles, role); i >= 0 {
		s.roles = slices.Delete(s.roles, i, i+1)
		return
	}
	s.roles = append(s.roles, role)
}

// ToggleSlot flips one slot of the weekly grid. A day entry appears with its
// first selected slot and disappears when its last slot is removed.
func (s *Session) ToggleSlot(day, slotID string) error {
	if !catalog.ValidDay(day) || !catalog.ValidSlot(slotID) {
		return ErrUnknownSlot
	}

	for i := range s.availability {
		entry := &s.availability[i]
		if entry.Day != day {
			continue
		}
		if j := slices.Index(entry.Times, slotID); j >= 0 {
			entry.Times = slices.Delete(entry.Times, j, j+1)
			if len(entry.Times) == 0 {
				s.availability = slices.Delete(s.availability, i, i+1)
			}
			return nil
		}
		entry.Times = append(entry.Times, slotID)
		return nil
	}

	s.availability = append(s.availability, models.DayAvailability{Day: day, Times: []string{slotID}})
	return nil
}

// SetRoles replaces the role selection wholesale, as a completed wizard
// submission does.
func (s *Session) SetRoles(roles []string) error {
	for _, r := range roles {
		if !slices.Contains(matching.Roles, r) {
			return ErrUnknownRole
		}
	}
	s.roles = slices.Clone(roles)
	return nil
}

// SetAvailability replaces the weekly grid selection wholesale.
func (s *Session) SetAvailability(entries []models.DayAvailability) error {
	for _, d := range entries {
		if !catalog.ValidDay(d.Day) {
			return ErrUnknownSlot
		}
		for _, t := range d.Times {
			if !catalog.ValidSlot(t) {
				return ErrUnknownSlot
			}
		}
	}
	out := make([]models.DayAvailability, len(entries))
	for i, d := range entries {
		out[i] = models.DayAvailability{Day: d.Day, Times: slices.Clone(d.Times)}
	}
	s.availability = out
	return nil
}

// Game returns the currently selected game.
func (s *Session) Game() string { return s.game }

// Roles returns the current role selection.
func (s *Session) Roles() []string { return slices.Clone(s.roles) }

// Availability returns the current weekly grid selection.
func (s *Session) Availability() []models.DayAvailability {
	out := make([]models.DayAvailability, len(s.availability))
	for i, d := range s.availability {
		out[i] = models.DayAvailability{Day: d.Day, Times: slices.Clone(d.Times)}
	}
	return out
}

// Profile builds the transient squad profile for this search. Communication
// defaults to Strategic and languages to English until the wizard collects
// them.
func (s *Session) Profile() *models.SquadProfile {
	return &models.SquadProfile{
		Roles:         slices.Clone(s.roles),
		Communication: models.CommunicationStrategic,
		Availability:  s.Availability(),
		Languages:     []string{"English"},
	}
}

// Run ranks the pool against the session's selection.
func (s *Session) Run(pool []*models.User) ([]matching.CompatibilityResult, error) {
	if s.game == "" {
		return nil, ErrNoGameSelected
	}
	return matching.Rank(s.actor, s.Profile(), pool, s.game), nil
}
