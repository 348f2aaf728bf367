package geom

import (
	"testing"
)

func TestDist(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want float64
	}{
		{"axis", V3(0, 0, 0), V3(0, 0, 3), 3},
		{"diagonal", V3(1, 0, 1), V3(4, 0, 5), 5},
		{"same", V3(2, 0, 7), V3(2, 0, 7), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dist(tt.a, tt.b); got != tt.want {
				t.Errorf("Dist(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := Format(V3(0, 0, 2.5)); got != "(0.000, 0.000, 2.500)" {
		t.Errorf("Format = %q", got)
	}
}
