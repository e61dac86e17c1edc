package stats

import "testing"

func TestOverallRating(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]float64
		want  int
	}{
		{
			// round((8+6+7+5)/(4*10)*100) = 65; the two zero attributes drop
			// out of the denominator.
			name: "zero attributes excluded from denominator",
			attrs: map[string]float64{
				"Attack": 8, "pace": 6, "Physicality": 0,
				"Defense": 7, "passing": 5, "Technique": 0,
			},
			want: 65,
		},
		{
			name: "all six present",
			attrs: map[string]float64{
				"Attack": 10, "pace": 10, "Physicality": 10,
				"Defense": 10, "passing": 10, "Technique": 10,
			},
			want: 100,
		},
		{
			name: "all zero returns zero not NaN",
			attrs: map[string]float64{
				"Attack": 0, "pace": 0, "Physicality": 0,
				"Defense": 0, "passing": 0, "Technique": 0,
			},
			want: 0,
		},
		{name: "empty map", attrs: map[string]float64{}, want: 0},
		{name: "nil map", attrs: nil, want: 0},
		{
			name:  "single attribute",
			attrs: map[string]float64{"pace": 7},
			want:  70,
		},
		{
			name: "alternate vocabulary maps onto canonical attributes",
			attrs: map[string]float64{
				"shooting": 8, "speed": 6, "defense": 7, "crossing": 5,
			},
			want: 65,
		},
		{
			name: "canonical value wins over its alias",
			attrs: map[string]float64{
				"Attack": 9, "shooting": 1,
			},
			want: 90,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverallRating(tt.attrs); got != tt.want {
				t.Errorf("OverallRating() = %d, want %d", got, tt.want)
			}
		})
	}
}
