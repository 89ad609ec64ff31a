package geometry

import "testing"

func TestRecipeRatios(t *testing.T) {
	if got := CaptionFontSize(1000); got != 100 {
		t.Errorf("CaptionFontSize(1000) = %v, want 100", got)
	}
	if got := TextBoxWidth(1000); got != 920 {
		t.Errorf("TextBoxWidth(1000) = %d, want 920", got)
	}
	if got := CaptionHeight(1000, 120); got != 286 {
		t.Errorf("CaptionHeight(1000, 120) = %d, want 286", got)
	}
	if got := MotivateHeight(500, 40, false); got != 40 {
		t.Errorf("MotivateHeight(unpadded) = %d, want 40", got)
	}
	if got := MotivateHeight(500, 40, true); got != 90 {
		t.Errorf("MotivateHeight(padded) = %d, want 90", got)
	}
	if w, h := LocketBox(401, 300); w != 200 || h != 150 {
		t.Errorf("LocketBox(401, 300) = %d, %d, want 200, 150", w, h)
	}
}

func TestHaloRadius(t *testing.T) {
	tests := []struct {
		width int
		want  float64
	}{
		{900, 100.0 / 18},
		{162, 1},
		{8, 0},
	}
	for _, tt := range tests {
		if got := HaloRadius(tt.width); got != tt.want {
			t.Errorf("HaloRadius(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestHaloMargins(t *testing.T) {
	got := HaloMargins(100.0 / 18) // 5.55...
	want := Margins{Left: 5, Top: 11, Width: 11, Height: 22}
	if got != want {
		t.Errorf("HaloMargins(5.55) = %+v, want %+v", got, want)
	}
	if got := HaloMargins(0); got != (Margins{}) {
		t.Errorf("HaloMargins(0) = %+v, want zero", got)
	}
}

func TestAtLeast(t *testing.T) {
	if got := AtLeast(100, 40); got != 100 {
		t.Errorf("AtLeast(100, 40) = %d, want 100", got)
	}
	if got := AtLeast(100, 140); got != 140 {
		t.Errorf("AtLeast(100, 140) = %d, want 140", got)
	}
}
