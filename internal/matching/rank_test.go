package matching

import (
	"errors"
	"testing"
)

func TestOrdinal(t *testing.T) {
	tests := []struct {
		tier string
		want int
	}{
		{tier: "Iron", want: 0},
		{tier: "Bronze", want: 1},
		{tier: "Silver", want: 2},
		{tier: "Gold", want: 3},
		{tier: "Platinum", want: 4},
		{tier: "Diamond", want: 5},
		{tier: "Ascendant", want: 6},
		{tier: "Immortal", want: 7},
		{tier: "Radiant", want: 8},
	}
	for _, tt := range tests {
		t.Run(tt.tier, func(t *testing.T) {
			got, err := Ordinal(tt.tier)
			if err != nil {
				t.Fatalf("Ordinal(%q) error = %v", tt.tier, err)
			}
			if got != tt.want {
				t.Errorf("Ordinal(%q) = %v, want %v", tt.tier, got, tt.want)
			}
		})
	}
}

func TestOrdinalStrictlyIncreasing(t *testing.T) {
	prev := -1
	for _, tier := range Ranks {
		ord, err := Ordinal(tier)
		if err != nil {
			t.Fatalf("Ordinal(%q) error = %v", tier, err)
		}
		if ord <= prev {
			t.Errorf("Ordinal(%q) = %d, want > %d", tier, ord, prev)
		}
		prev = ord
	}
}

func TestOrdinalUnknownTier(t *testing.T) {
	for _, tier := range []string{"", "gold", "Wood", "Challenger"} {
		if _, err := Ordinal(tier); !errors.Is(err, ErrUnknownTier) {
			t.Errorf("Ordinal(%q) error = %v, want ErrUnknownTier", tier, err)
		}
	}
}
