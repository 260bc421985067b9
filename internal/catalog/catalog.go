// Package catalog holds the fixed configuration tables the matching flow
// validates against: the supported games, the weekly day/slot grid and the
// communication styles. The tables are initialized once and never mutated.
package catalog

import (
	"slices"

	"github.com/r0nnniiee/GAME-match/internal/models"
)

// Games is the global game catalog squad searches are validated against.
var Games = []string{
	"League of Legends", "Valorant", "Counter-Strike 2", "Dota 2", "Overwatch 2",
	"Apex Legends", "Fortnite", "Call of Duty", "Minecraft", "Rocket League",
	"Rainbow Six Siege", "Genshin Impact", "Elden Ring", "FIFA 24", "NBA 2K24",
}

// Days is the weekday order used by availability schedules.
var Days = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// TimeSlot is one selectable window of the evening schedule grid.
type TimeSlot struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// TimeSlots is the fixed slot grid; availability entries reference slot ids.
var TimeSlots = []TimeSlot{
	{ID: "18-20", Label: "6PM - 8PM"},
	{ID: "20-22", Label: "8PM - 10PM"},
	{ID: "22-24", Label: "10PM - 12AM"},
}

// CommunicationStyles lists the selectable communication preferences.
var CommunicationStyles = []models.CommunicationStyle{
	models.CommunicationCasual,
	models.CommunicationStrategic,
	models.CommunicationCompetitive,
}

// ValidGame reports whether the game is part of the catalog.
func ValidGame(game string) bool {
	return slices.Contains(Games, game)
}

// ValidDay reports whether the day label is part of the weekly grid.
func ValidDay(day string) bool {
	return slices.Contains(Days, day)
}

// ValidSlot reports whether the slot id is part of the slot grid.
func ValidSlot(id string) bool {
	return slices.ContainsFunc(TimeSlots, func(s TimeSlot) bool { return s.ID == id })
}
