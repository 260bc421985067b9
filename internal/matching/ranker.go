package matching

import (
	"sort"

	"github.com/r0nnniiee/GAME-match/internal/models"
)

// CompatibilityResult pairs a candidate with their score for one search.
// Results are produced fresh per invocation and never cached.
type CompatibilityResult struct {
	Candidate *models.User `json:"candidate"`
	Score     int          `json:"score"`
}

// Rank scores every candidate in the pool against the actor and returns the
// matches ordered best first. The actor is excluded from the pool by id, as
// are all zero scores (candidates failing the game gate). The sort is stable,
// so equal scores keep the pool's order; callers paginate the full list.
func Rank(actor *models.User, actorProfile *models.SquadProfile, pool []*models.User, targetGame string) []CompatibilityResult {
	results := make([]CompatibilityResult, 0, len(pool))
	for _, candidate := range pool {
		if candidate.ID == actor.ID {
			continue
		}
		s := Score(actor, candidate, actorProfile, targetGame)
		if s == 0 {
			continue
		}
		results = append(results, CompatibilityResult{Candidate: candidate, Score: s})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}
