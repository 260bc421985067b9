package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/r0nnniiee/GAME-match/internal/models"
)

func player(id, rank string, games []string, profile *models.SquadProfile) *models.User {
	return &models.User{
		ID:           id,
		Rank:         rank,
		Games:        games,
		SquadProfile: profile,
	}
}

func TestScoreGameGate(t *testing.T) {
	actorProfile := &models.SquadProfile{
		Roles:         []string{"Flex"},
		Communication: models.CommunicationStrategic,
	}
	actor := player("a", "Gold", []string{"Valorant"}, nil)
	candidate := player("b", "Gold", []string{"Minecraft"}, &models.SquadProfile{
		Roles:         []string{"Flex"},
		Communication: models.CommunicationStrategic,
	})

	assert.Equal(t, 0, Score(actor, candidate, actorProfile, "Valorant"),
		"a candidate not playing the target game scores zero, no partial credit")
}

func TestScoreWithoutProfiles(t *testing.T) {
	// Gold vs Platinum is one tier apart: full skill factor. With no squad
	// profiles the availability, role and communication terms all vanish,
	// leaving base 4 + skill 35.
	actor := player("a", "Gold", []string{"Valorant"}, nil)
	candidate := player("b", "Platinum", []string{"Valorant"}, nil)

	assert.Equal(t, 39, Score(actor, candidate, nil, "Valorant"))
}

func TestScoreCommunicationBonus(t *testing.T) {
	// Same rank, disjoint schedules, a role pair with no declared synergy,
	// matching communication style: base 4 + skill 35 + bonus 5.
	actorProfile := &models.SquadProfile{
		Roles:         []string{"Tank"},
		Communication: models.CommunicationCasual,
		Availability:  []models.DayAvailability{{Day: "Mon", Times: []string{"18-20"}}},
	}
	candidate := player("b", "Gold", []string{"Valorant"}, &models.SquadProfile{
		Roles:         []string{"Duelist"},
		Communication: models.CommunicationCasual,
		Availability:  []models.DayAvailability{{Day: "Tue", Times: []string{"20-22"}}},
	})
	actor := player("a", "Gold", []string{"Valorant"}, nil)

	assert.Equal(t, 44, Score(actor, candidate, actorProfile, "Valorant"))
}

func TestScoreFullBreakdown(t *testing.T) {
	// Two tiers apart (0.8 * 35 = 28), full availability coverage (30),
	// half the role pairs synergize (7.5), styles differ: 4+28+30+7.5 = 69.5,
	// rounded to 70.
	actorProfile := &models.SquadProfile{
		Roles:         []string{"Flex", "Initiator"},
		Communication: models.CommunicationStrategic,
		Availability: []models.DayAvailability{
			{Day: "Mon", Times: []string{"18-20", "20-22"}},
			{Day: "Wed", Times: []string{"18-20"}},
			{Day: "Fri", Times: []string{"20-22"}},
		},
	}
	actor := player("a", "Platinum", []string{"Valorant"}, nil)
	candidate := player("b", "Ascendant", []string{"Valorant", "Apex Legends"}, &models.SquadProfile{
		Roles:         []string{"Duelist", "DPS"},
		Communication: models.CommunicationCompetitive,
		Availability: []models.DayAvailability{
			{Day: "Mon", Times: []string{"18-20", "20-22"}},
			{Day: "Wed", Times: []string{"18-20"}},
			{Day: "Fri", Times: []string{"20-22", "22-24"}},
		},
	})

	assert.Equal(t, 70, Score(actor, candidate, actorProfile, "Valorant"))
}

func TestScoreSkillSteps(t *testing.T) {
	tests := []struct {
		name          string
		candidateRank string
		want          int
	}{
		{name: "same tier", candidateRank: "Gold", want: 39},
		{name: "one apart", candidateRank: "Platinum", want: 39},
		{name: "two apart", candidateRank: "Diamond", want: 32},
		{name: "three apart", candidateRank: "Ascendant", want: 22},
		{name: "four apart", candidateRank: "Immortal", want: 11},
	}
	actor := player("a", "Gold", []string{"Valorant"}, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := player("b", tt.candidateRank, []string{"Valorant"}, nil)
			assert.Equal(t, tt.want, Score(actor, candidate, nil, "Valorant"))
		})
	}
}

func TestScoreUnknownTierFallsBack(t *testing.T) {
	// An invalid tier on a record is treated as maximum skill distance
	// rather than failing the whole score.
	actor := player("a", "Wood", []string{"Valorant"}, nil)
	candidate := player("b", "Gold", []string{"Valorant"}, nil)

	assert.Equal(t, 11, Score(actor, candidate, nil, "Valorant"))
}

func TestScoreAlwaysInRange(t *testing.T) {
	profiles := []*models.SquadProfile{
		nil,
		{Roles: []string{"Flex"}, Communication: models.CommunicationStrategic},
		{
			Roles:         []string{"Flex", "Tank", "Support"},
			Communication: models.CommunicationStrategic,
			Availability: []models.DayAvailability{
				{Day: "Mon", Times: []string{"18-20", "20-22", "22-24"}},
				{Day: "Sat", Times: []string{"18-20"}},
			},
		},
	}
	games := [][]string{nil, {"Valorant"}, {"Valorant", "Dota 2"}}

	for _, rankA := range Ranks {
		for _, rankB := range append(Ranks, "Unranked") {
			for _, pa := range profiles {
				for _, pb := range profiles {
					for _, g := range games {
						actor := player("a", rankA, []string{"Valorant"}, nil)
						candidate := player("b", rankB, g, pb)
						s := Score(actor, candidate, pa, "Valorant")
						assert.GreaterOrEqual(t, s, 0)
						assert.LessOrEqual(t, s, 100)
					}
				}
			}
		}
	}
}
