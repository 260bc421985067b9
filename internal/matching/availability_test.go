package matching

import (
	"testing"

	"github.com/r0nnniiee/GAME-match/internal/models"
)

func TestOverlapRatio(t *testing.T) {
	weekday := []models.DayAvailability{
		{Day: "Mon", Times: []string{"18-20", "20-22"}},
		{Day: "Wed", Times: []string{"18-20"}},
	}
	mondayLate := []models.DayAvailability{
		{Day: "Mon", Times: []string{"20-22"}},
	}

	tests := []struct {
		name string
		a    []models.DayAvailability
		b    []models.DayAvailability
		want float64
	}{
		{
			name: "self overlap is total",
			a:    weekday,
			b:    weekday,
			want: 1.0,
		},
		{
			name: "no counterpart availability",
			a:    weekday,
			b:    nil,
			want: 0,
		},
		{
			name: "no declared slots",
			a:    nil,
			b:    weekday,
			want: 0,
		},
		{
			name: "partial match over a's slots",
			a:    weekday,
			b:    mondayLate,
			want: 1.0 / 3.0,
		},
		{
			name: "reverse direction is measured over the other total",
			a:    mondayLate,
			b:    weekday,
			want: 1.0,
		},
		{
			name: "same day different slots",
			a:    []models.DayAvailability{{Day: "Fri", Times: []string{"18-20"}}},
			b:    []models.DayAvailability{{Day: "Fri", Times: []string{"22-24"}}},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverlapRatio(tt.a, tt.b); got != tt.want {
				t.Errorf("OverlapRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}
