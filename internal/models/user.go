package models

import (
	"slices"
	"time"
)

// CommunicationStyle is how a player prefers to communicate in a squad.
type CommunicationStyle string

const (
	CommunicationCasual      CommunicationStyle = "Casual"
	CommunicationStrategic   CommunicationStyle = "Strategic"
	CommunicationCompetitive CommunicationStyle = "Competitive"
)

// DayAvailability is one weekday entry of a weekly schedule. Times holds
// slot ids from the fixed slot catalog (e.g. "18-20").
type DayAvailability struct {
	Day   string   `json:"day"`
	Times []string `json:"times"`
}

// SquadProfile is the squad-finder profile a user fills in: which roles they
// play, how they communicate and when they are available.
type SquadProfile struct {
	Roles         []string           `json:"roles"`
	Communication CommunicationStyle `json:"communication"`
	Availability  []DayAvailability  `json:"availability"`
	Languages     []string           `json:"languages"`
}

// User represents a user in the system. Relationship lists hold user ids;
// the relation between any two users is always in exactly one of
// {none, outgoing-pending, incoming-pending, friends} and is mirrored on the
// counterpart's record.
type User struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	UniqueCode   string `gorm:"size:6;uniqueIndex;not null" json:"unique_code"`
	Username     string `gorm:"size:255;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:50;not null;default:'user';index" json:"role"`

	Bio             string `json:"bio"`
	Rank            string `gorm:"size:50" json:"rank"`
	Level           int    `json:"level"`
	YearsExperience int    `json:"years_experience"`

	Games            []string      `gorm:"serializer:json" json:"games"`
	Friends          []string      `gorm:"serializer:json" json:"friends"`
	IncomingRequests []string      `gorm:"serializer:json" json:"incoming_requests"`
	OutgoingRequests []string      `gorm:"serializer:json" json:"outgoing_requests"`
	SquadProfile     *SquadProfile `gorm:"serializer:json" json:"squad_profile,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlaysGame reports whether the user lists the given game.
func (u *User) PlaysGame(game string) bool {
	return slices.Contains(u.Games, game)
}

// Clone returns a deep copy of the user. Relationship mutators work on
// clones so that a failed operation never leaves a half-updated record.
func (u *User) Clone() *User {
	c := *u
	c.Games = slices.Clone(u.Games)
	c.Friends = slices.Clone(u.Friends)
	c.IncomingRequests = slices.Clone(u.IncomingRequests)
	c.OutgoingRequests = slices.Clone(u.OutgoingRequests)
	if u.SquadProfile != nil {
		p := *u.SquadProfile
		p.Roles = slices.Clone(u.SquadProfile.Roles)
		p.Languages = slices.Clone(u.SquadProfile.Languages)
		p.Availability = make([]DayAvailability, len(u.SquadProfile.Availability))
		for i, d := range u.SquadProfile.Availability {
			p.Availability[i] = DayAvailability{Day: d.Day, Times: slices.Clone(d.Times)}
		}
		c.SquadProfile = &p
	}
	return &c
}
