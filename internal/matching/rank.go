// Package matching implements the squad compatibility engine: the rank
// ladder, availability overlap, role synergy and the weighted scorer that
// combines them into a 0..100 compatibility score per candidate.
package matching

import (
	"errors"
	"fmt"
)

// ErrUnknownTier is returned for a rank label outside the fixed ladder.
// Seeing it means a user record carries an invalid rank; upstream validation
// is supposed to make that impossible.
var ErrUnknownTier = errors.New("unknown rank tier")

// Ranks is the skill ladder, lowest tier first.
var Ranks = []string{
	"Iron", "Bronze", "Silver", "Gold", "Platinum",
	"Diamond", "Ascendant", "Immortal", "Radiant",
}

var rankOrdinals = func() map[string]int {
	m := make(map[string]int, len(Ranks))
	for i, r := range Ranks {
		m[r] = i
	}
	return m
}()

// Ordinal maps a tier label to its zero-based position on the ladder.
func Ordinal(tier string) (int, error) {
	ord, ok := rankOrdinals[tier]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	return ord, nil
}

// ValidRank reports whether the label is a tier on the ladder.
func ValidRank(tier string) bool {
	_, ok := rankOrdinals[tier]
	return ok
}
