package matching

import (
	"math"

	"github.com/r0nnniiee/GAME-match/internal/models"
)

// Weights of the score terms. The game-overlap weight scales a fixed base
// contribution granted once the candidate passes the game gate; the others
// scale their term's [0,1] factor to points out of 100.
const (
	weightSkill        = 0.35
	weightAvailability = 0.30
	weightGameOverlap  = 0.20
	weightRoleSynergy  = 0.15
)

// communicationBonus is flat, applied after the weighted sum.
const communicationBonus = 5

// Score rates how compatible a candidate teammate is with the actor for the
// target game, as an integer in [0,100]. actorProfile is the actor's squad
// profile for this search; it may differ from the one stored on the actor's
// record (the wizard builds a transient one).
//
// A candidate who does not play the target game scores 0, no partial credit.
// Availability and role terms require squad profiles on both sides and
// contribute nothing otherwise.
func Score(actor, candidate *models.User, actorProfile *models.SquadProfile, targetGame string) int {
	if !candidate.PlaysGame(targetGame) {
		return 0
	}

	score := 20 * weightGameOverlap

	diff := skillDistance(actor.Rank, candidate.Rank)
	score += skillFactor(diff) * weightSkill * 100

	if actorProfile != nil && candidate.SquadProfile != nil {
		score += OverlapRatio(actorProfile.Availability, candidate.SquadProfile.Availability) * weightAvailability * 100
		score += RoleSynergy(actorProfile.Roles, candidate.SquadProfile.Roles) * weightRoleSynergy * 100
		if actorProfile.Communication == candidate.SquadProfile.Communication {
			score += communicationBonus
		}
	}

	return int(math.Min(math.Round(score), 100))
}

// skillDistance is the tier gap between two ranks. An unknown tier on either
// side is treated as maximally distant rather than failing the whole score;
// rank labels are validated at profile save, so this is a fallback.
func skillDistance(rankA, rankB string) int {
	a, errA := Ordinal(rankA)
	b, errB := Ordinal(rankB)
	if errA != nil || errB != nil {
		return len(Ranks)
	}
	if a > b {
		return a - b
	}
	return b - a
}

// skillFactor steps the tier gap down to a [0,1] factor: same or adjacent
// tiers are a full match, far-apart ladders still earn a floor of 0.2.
func skillFactor(diff int) float64 {
	switch {
	case diff <= 1:
		return 1.0
	case diff <= 2:
		return 0.8
	case diff <= 3:
		return 0.5
	default:
		return 0.2
	}
}
