package matching

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// RoleFlex is the wildcard role: it synergizes with everything, on either
// side of a pair.
const RoleFlex = "Flex"

// Roles lists the selectable role labels.
var Roles = []string{
	"Tank", "DPS", "Support", "Duelist", "Controller",
	"Sentinel", "Initiator", "Sniper", "Healer", "IGL", RoleFlex,
}

// roleSynergy maps a role to the roles it is declared to synergize with.
// The table is hand-authored and consulted in one direction only
// (synergy[ra] contains rb); it is not symmetric everywhere and that is
// intentional, pending product-owner review.
var roleSynergy = map[string]mapset.Set[string]{
	"Tank":       mapset.NewThreadUnsafeSet("DPS", "Support", "Sniper"),
	"DPS":        mapset.NewThreadUnsafeSet("Tank", "Support", "Initiator"),
	"Support":    mapset.NewThreadUnsafeSet("Tank", "DPS", "Duelist"),
	"Duelist":    mapset.NewThreadUnsafeSet("Controller", "Sentinel", "Initiator"),
	"Controller": mapset.NewThreadUnsafeSet("Duelist", "Sentinel"),
	"Sentinel":   mapset.NewThreadUnsafeSet("Controller", "Duelist"),
	RoleFlex:     mapset.NewThreadUnsafeSet("Tank", "DPS", "Support"),
}

// RoleSynergy scores how well two role sets complement each other. Every
// ordered pair (ra, rb) is checked, with repetition; a pair counts when rb is
// in ra's synergy set or either role is the Flex wildcard. The result is the
// fraction of counting pairs. With no pairs to check (either side empty)
// there is no signal, and the neutral 0.5 is returned.
func RoleSynergy(rolesA, rolesB []string) float64 {
	synergyCount := 0
	checks := 0

	for _, ra := range rolesA {
		for _, rb := range rolesB {
			checks++
			if ra == RoleFlex || rb == RoleFlex {
				synergyCount++
				continue
			}
			if set, ok := roleSynergy[ra]; ok && set.Contains(rb) {
				synergyCount++
			}
		}
	}

	if checks == 0 {
		return 0.5
	}
	return float64(synergyCount) / float64(checks)
}
