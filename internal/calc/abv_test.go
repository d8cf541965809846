package calc

import (
	"math"
	"testing"
)

func TestABVSimple(t *testing.T) {
	tests := []struct {
		name string
		og   float64
		fg   float64
		want float64
	}{
		{"equal gravities", 1.050, 1.050, 0},
		{"standard ale", 1.050, 1.010, 5.25},
		{"session", 1.038, 1.008, 3.9375},
		{"fg above og goes negative", 1.010, 1.020, -1.3125},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ABVSimple(tt.og, tt.fg); !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("ABVSimple(%v, %v) = %v, want %v", tt.og, tt.fg, got, tt.want)
			}
		})
	}
}

func TestABVSimpleIdentityForAnyOG(t *testing.T) {
	for _, og := range []float64{1.000, 1.030, 1.075, 1.120} {
		if got := ABVSimple(og, og); got != 0 {
			t.Errorf("ABVSimple(%v, %v) = %v, want 0", og, og, got)
		}
	}
}

func TestABVSimpleMonotonicInDrop(t *testing.T) {
	prev := ABVSimple(1.050, 1.045)
	for _, fg := range []float64{1.040, 1.030, 1.020, 1.010} {
		cur := ABVSimple(1.050, fg)
		if cur <= prev {
			t.Errorf("ABV not increasing as FG drops: %v then %v", prev, cur)
		}
		prev = cur
	}
}

func TestABVByWeight(t *testing.T) {
	// 76.08*(0.040)/(0.725) * (1.010/0.794)
	want := 76.08 * 0.040 / (1.775 - 1.050) * (1.010 / 0.794)
	if got := ABVByWeight(1.050, 1.010); !almostEqual(got, want, 1e-9) {
		t.Errorf("ABVByWeight = %v, want %v", got, want)
	}
	if got := ABVByWeight(math.NaN(), 1.010); got != 0 {
		t.Errorf("ABVByWeight(NaN) = %v, want 0", got)
	}
	if got := ABVByWeight(1.775, 1.010); got != 0 {
		t.Errorf("ABVByWeight at singular OG = %v, want 0", got)
	}
}

func TestABVDispatch(t *testing.T) {
	if got := ABV(ABVModelSimple, 1.050, 1.010); got != ABVSimple(1.050, 1.010) {
		t.Errorf("simple dispatch = %v", got)
	}
	if got := ABV(ABVModelABW, 1.050, 1.010); got != ABVByWeight(1.050, 1.010) {
		t.Errorf("abw dispatch = %v", got)
	}
	if got := ABV("bogus", 1.050, 1.010); got != ABVSimple(1.050, 1.010) {
		t.Errorf("unknown model should fall back to simple, got %v", got)
	}
}
