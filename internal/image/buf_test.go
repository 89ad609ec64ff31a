package image

import (
	"bytes"
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		channels int
		format   SampleFormat
		wantErr  error
	}{
		{"valid RGBA uchar", 100, 100, 4, FormatUchar, nil},
		{"valid RGB ushort", 50, 50, 3, FormatUshort, nil},
		{"1x1 minimum", 1, 1, 1, FormatUchar, nil},
		{"zero width", 0, 100, 4, FormatUchar, ErrInvalidDimensions},
		{"zero height", 100, 0, 4, FormatUchar, ErrInvalidDimensions},
		{"negative width", -1, 100, 4, FormatUchar, ErrInvalidDimensions},
		{"five channels", 10, 10, 5, FormatUchar, ErrInvalidFormat},
		{"invalid format", 10, 10, 4, SampleFormat(200), ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.width, tt.height, tt.channels, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			want := tt.width * tt.height * tt.channels * tt.format.BytesPerSample()
			if m.Len() != want {
				t.Errorf("Len() = %d, want %d", m.Len(), want)
			}
			if m.Channels() != tt.channels {
				t.Errorf("Channels() = %d, want %d", m.Channels(), tt.channels)
			}
		})
	}
}

func TestFromRaw(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		channels int
		format   SampleFormat
		wantErr  error
	}{
		{"exact RGBA", 4 * 3 * 2, 4, FormatUchar, nil},
		{"exact ushort RGB", 3 * 3 * 2 * 2, 3, FormatUshort, nil},
		{"short buffer", 4*3*2 - 1, 4, FormatUchar, ErrDataSize},
		{"long buffer", 4*3*2 + 1, 4, FormatUchar, ErrDataSize},
		{"wrong channel count", 4 * 3 * 2, 3, FormatUchar, ErrDataSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]byte, tt.size)
			_, err := FromRaw(data, 3, 2, tt.channels, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FromRaw() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFromRawSharesBuffer(t *testing.T) {
	data := make([]byte, 2*2*4)
	m, err := FromRaw(data, 2, 2, 4, FormatUchar)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	m.SetSample(1, 1, 2, 200)
	if data[(1*2+1)*4+2] != 200 {
		t.Errorf("FromRaw copied the buffer, want shared storage")
	}
}

func TestSampleUshortRoundTrip(t *testing.T) {
	m, err := New(2, 1, 1, FormatUshort)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	m.SetSample(0, 0, 0, 1234)
	m.SetSample(1, 0, 0, 70000)

	if got := m.Sample(0, 0, 0); got != 1234 {
		t.Errorf("Sample(0,0) = %v, want 1234", got)
	}
	if got := m.Sample(1, 0, 0); got != 65535 {
		t.Errorf("Sample(1,0) = %v, want clamped 65535", got)
	}
}

func TestSetSampleClampsAndRounds(t *testing.T) {
	m, _ := New(3, 1, 1, FormatUchar)
	m.SetSample(0, 0, 0, -4)
	m.SetSample(1, 0, 0, 300)
	m.SetSample(2, 0, 0, 10.6)

	want := []byte{0, 255, 11}
	if !bytes.Equal(m.Data(), want) {
		t.Errorf("Data() = %v, want %v", m.Data(), want)
	}
}

func TestAddAlphaKeepsColour(t *testing.T) {
	pool := NewPool(0)
	for _, format := range []SampleFormat{FormatUchar, FormatUshort} {
		src, err := pool.Get(4, 3, 3, format)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		for i := range src.Data() {
			src.Data()[i] = byte(i*7 + 1)
		}

		dst, err := src.AddAlpha(pool)
		if err != nil {
			t.Fatalf("AddAlpha() error = %v", err)
		}
		if dst.Channels() != 4 {
			t.Fatalf("Channels() = %d, want 4", dst.Channels())
		}
		for y := 0; y < 3; y++ {
			for x := 0; x < 4; x++ {
				for c := 0; c < 3; c++ {
					if got, want := dst.Sample(x, y, c), src.Sample(x, y, c); got != want {
						t.Errorf("%s pixel (%d,%d) channel %d = %v, want %v", format, x, y, c, got, want)
					}
				}
				if a := dst.Sample(x, y, 3); a != format.Max() {
					t.Errorf("%s pixel (%d,%d) alpha = %v, want %v", format, x, y, a, format.Max())
				}
			}
		}
		src.Release()
		dst.Release()
	}
	if pool.Live() != 0 {
		t.Errorf("Live() = %d, want 0", pool.Live())
	}
}

func TestAddAlphaGray(t *testing.T) {
	pool := NewPool(0)
	src, _ := pool.Get(2, 2, 1, FormatUchar)
	defer src.Release()
	dst, err := src.AddAlpha(pool)
	if err != nil {
		t.Fatalf("AddAlpha() error = %v", err)
	}
	defer dst.Release()
	if dst.Channels() != 2 || !dst.HasAlpha() {
		t.Errorf("Channels() = %d HasAlpha() = %v, want 2 true", dst.Channels(), dst.HasAlpha())
	}
}

func TestAddAlphaOnRGBAClones(t *testing.T) {
	pool := NewPool(0)
	src, _ := pool.Get(1, 1, 4, FormatUchar)
	copy(src.Data(), []byte{1, 2, 3, 4})
	dst, err := src.AddAlpha(pool)
	if err != nil {
		t.Fatalf("AddAlpha() error = %v", err)
	}
	if !bytes.Equal(dst.Data(), []byte{1, 2, 3, 4}) {
		t.Errorf("Data() = %v, want unchanged clone", dst.Data())
	}
	if &dst.Data()[0] == &src.Data()[0] {
		t.Error("AddAlpha returned shared storage for RGBA input")
	}
}

func TestReleaseIdempotent(t *testing.T) {
	pool := NewPool(0)
	m, _ := pool.Get(2, 2, 4, FormatUchar)
	m.Release()
	m.Release()
	if pool.Live() != 0 {
		t.Errorf("Live() = %d, want 0", pool.Live())
	}
	if !m.Released() {
		t.Error("Released() = false after Release")
	}
}

func TestDetach(t *testing.T) {
	pool := NewPool(0)
	m, _ := pool.Get(2, 2, 4, FormatUchar)
	m.Data()[0] = 9

	data := m.Detach()
	if len(data) != 16 || data[0] != 9 {
		t.Errorf("Detach() = %v, want the 16-byte buffer", data)
	}
	if pool.Live() != 0 {
		t.Errorf("Live() = %d after Detach, want 0", pool.Live())
	}
	m.Release()
	if pool.Live() != 0 {
		t.Errorf("Live() = %d after Release of detached image, want 0", pool.Live())
	}
}

func TestNRGBAView(t *testing.T) {
	m, _ := New(3, 2, 4, FormatUchar)
	view, err := m.NRGBA()
	if err != nil {
		t.Fatalf("NRGBA() error = %v", err)
	}
	view.Pix[view.PixOffset(2, 1)] = 77
	if m.Sample(2, 1, 0) != 77 {
		t.Error("NRGBA view does not share storage")
	}

	rgb, _ := New(3, 2, 3, FormatUchar)
	if _, err := rgb.NRGBA(); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("NRGBA() on RGB error = %v, want ErrInvalidFormat", err)
	}
}
