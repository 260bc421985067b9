package matching

import "testing"

func TestRoleSynergy(t *testing.T) {
	tests := []struct {
		name   string
		rolesA []string
		rolesB []string
		want   float64
	}{
		{
			name:   "both empty is neutral",
			rolesA: nil,
			rolesB: nil,
			want:   0.5,
		},
		{
			name:   "one side empty is neutral",
			rolesA: []string{"Tank"},
			rolesB: nil,
			want:   0.5,
		},
		{
			name:   "declared synergy pair",
			rolesA: []string{"Tank"},
			rolesB: []string{"Support"},
			want:   1.0,
		},
		{
			name:   "no synergy pair",
			rolesA: []string{"Tank"},
			rolesB: []string{"Duelist"},
			want:   0,
		},
		{
			name:   "flex matches from the left",
			rolesA: []string{"Flex"},
			rolesB: []string{"Duelist"},
			want:   1.0,
		},
		{
			name:   "flex matches from the right",
			rolesA: []string{"Sniper"},
			rolesB: []string{"Flex"},
			want:   1.0,
		},
		{
			name:   "lookup is one-directional",
			rolesA: []string{"Duelist"},
			rolesB: []string{"Initiator"},
			want:   1.0,
		},
		{
			name:   "reverse of an asymmetric pair",
			rolesA: []string{"Initiator"},
			rolesB: []string{"Duelist"},
			want:   0,
		},
		{
			name:   "fraction over all ordered pairs",
			rolesA: []string{"Flex", "Initiator"},
			rolesB: []string{"Duelist", "DPS"},
			want:   0.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoleSynergy(tt.rolesA, tt.rolesB); got != tt.want {
				t.Errorf("RoleSynergy(%v, %v) = %v, want %v", tt.rolesA, tt.rolesB, got, tt.want)
			}
		})
	}
}
