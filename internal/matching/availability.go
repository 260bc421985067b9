package matching

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/r0nnniiee/GAME-match/internal/models"
)

// OverlapRatio measures what fraction of a's declared weekly slots b also
// covers. For every day entry of a, slots present in b's entry for the same
// day count as matched; the result is matched slots over a's total slots.
//
// The ratio is deliberately asymmetric: it answers "can this candidate meet
// my schedule", not how similar the two schedules are, so OverlapRatio(a, b)
// and OverlapRatio(b, a) may differ.
func OverlapRatio(a, b []models.DayAvailability) float64 {
	matches := 0
	totalSlots := 0

	for _, dayA := range a {
		totalSlots += len(dayA.Times)
		for _, dayB := range b {
			if dayB.Day != dayA.Day {
				continue
			}
			slotsA := mapset.NewThreadUnsafeSet(dayA.Times...)
			slotsB := mapset.NewThreadUnsafeSet(dayB.Times...)
			matches += slotsA.Intersect(slotsB).Cardinality()
			break
		}
	}

	if totalSlots == 0 {
		return 0
	}
	return float64(matches) / float64(totalSlots)
}
