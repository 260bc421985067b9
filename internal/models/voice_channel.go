package models

import (
	"slices"
	"time"
)

// VoiceChannelCapacity is the fixed seat count of every voice channel.
const VoiceChannelCapacity = 6

// VoiceChannel represents a voice room users can gather in while playing.
type VoiceChannel struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Creator  string `gorm:"size:255;not null" json:"creator"`
	Game     string `gorm:"size:255" json:"game"`
	MaxUsers int    `gorm:"not null;default:6" json:"max_users"`
	IsPublic bool   `gorm:"not null;default:true" json:"is_public"`

	ConnectedUserIDs []string `gorm:"serializer:json" json:"connected_user_ids"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasMember reports whether the user is currently connected.
func (v *VoiceChannel) HasMember(userID string) bool {
	return slices.Contains(v.ConnectedUserIDs, userID)
}

// IsFull reports whether every seat is taken.
func (v *VoiceChannel) IsFull() bool {
	return len(v.ConnectedUserIDs) >= v.MaxUsers
}
