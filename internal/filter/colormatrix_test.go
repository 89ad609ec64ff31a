package filter

import (
	"errors"
	"image/color"
	"testing"
)

func planesOf(values ...float32) []Plane {
	planes := make([]Plane, len(values))
	for i, v := range values {
		planes[i] = Plane{Pix: []float32{v}, Width: 1, Height: 1}
	}
	return planes
}

func TestColorMatrixApply(t *testing.T) {
	tests := []struct {
		name   string
		matrix ColorMatrix
		in     [4]float32
		want   [4]float32
	}{
		{"swap and bias", ColorMatrix{
			0, 1, 0, 0, 0,
			1, 0, 0, 0, 0,
			0, 0, 1, 0, 5,
			0, 0, 0, 1, 0,
		}, [4]float32{10, 20, 30, 40}, [4]float32{20, 10, 35, 40}},
		{"recolor black", RecolorMatrix(color.NRGBA{A: 255}), [4]float32{10, 20, 30, 40}, [4]float32{0, 0, 0, 40}},
		{"recolor red half", RecolorMatrix(color.NRGBA{R: 255, A: 128}), [4]float32{1, 2, 3, 200}, [4]float32{255, 0, 0, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planes := planesOf(tt.in[0], tt.in[1], tt.in[2], tt.in[3])
			if err := tt.matrix.Apply(planes); err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			for c := range planes {
				if absf32(planes[c].Pix[0]-tt.want[c]) > 0.5 {
					t.Errorf("channel %d = %v, want %v", c, planes[c].Pix[0], tt.want[c])
				}
			}
		})
	}
}

func TestColorMatrixNeedsFourPlanes(t *testing.T) {
	if err := RecolorMatrix(color.NRGBA{A: 255}).Apply(planesOf(1, 2, 3)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Apply(3 planes) error = %v, want ErrDimensionMismatch", err)
	}
	planes := planesOf(1, 2, 3, 4)
	planes[2] = NewPlane(2, 1)
	if err := RecolorMatrix(color.NRGBA{A: 255}).Apply(planes); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Apply(uneven planes) error = %v, want ErrDimensionMismatch", err)
	}
}
