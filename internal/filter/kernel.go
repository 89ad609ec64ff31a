package filter

import "math"

// Kernel is a convolution mask.
//
// A separable kernel holds one 1-D row of Size() coefficients that is applied
// horizontally and then vertically. A 2-D kernel holds Size()*Size()
// coefficients in row-major order. Kernels are not modified after
// construction; Scale returns a new Kernel.
type Kernel struct {
	Coeffs    []float32
	Radius    int
	Separable bool
}

// Size returns the width of the kernel window.
func (k Kernel) Size() int {
	return k.Radius*2 + 1
}

// Sum returns the sum of all coefficients.
func (k Kernel) Sum() float32 {
	var sum float32
	for _, v := range k.Coeffs {
		sum += v
	}
	return sum
}

// Scale returns a copy of the kernel with every coefficient multiplied by
// gain. A separable kernel applies the gain on each pass.
func (k Kernel) Scale(gain float32) Kernel {
	coeffs := make([]float32, len(k.Coeffs))
	for i, v := range k.Coeffs {
		coeffs[i] = v * gain
	}
	return Kernel{Coeffs: coeffs, Radius: k.Radius, Separable: k.Separable}
}

// Identity returns the separable kernel [1].
func Identity() Kernel {
	return Kernel{Coeffs: []float32{1}, Separable: true}
}

// GaussMat builds a separable, normalized Gaussian kernel.
//
// The window extends while exp(-x²/2σ²) stays at or above minAmplitude, so a
// larger minAmplitude gives a tighter kernel. A minAmplitude outside (0, 1)
// falls back to three standard deviations. For sigma <= 0 it returns the
// identity kernel.
func GaussMat(sigma, minAmplitude float64) Kernel {
	if sigma <= 0 {
		return Identity()
	}

	var radius int
	if minAmplitude > 0 && minAmplitude < 1 {
		radius = int(math.Floor(sigma * math.Sqrt(-2*math.Log(minAmplitude))))
	} else {
		radius = int(math.Ceil(sigma * 3))
	}

	size := radius*2 + 1
	coeffs := make([]float32, size)

	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)
	for i := 0; i < size; i++ {
		x := float64(i - radius)
		val := math.Exp(-(x * x) / twoSigmaSq)
		coeffs[i] = float32(val)
		sum += val
	}

	invSum := float32(1.0 / sum)
	for i := range coeffs {
		coeffs[i] *= invSum
	}

	return Kernel{Coeffs: coeffs, Radius: radius, Separable: true}
}

// SobelX returns the 3x3 horizontal gradient kernel.
func SobelX() Kernel {
	return Kernel{
		Coeffs: []float32{
			-1, 0, 1,
			-2, 0, 2,
			-1, 0, 1,
		},
		Radius: 1,
	}
}

// SobelY returns the 3x3 vertical gradient kernel. Positive responses point
// down the image.
func SobelY() Kernel {
	return Kernel{
		Coeffs: []float32{
			-1, -2, -1,
			0, 0, 0,
			1, 2, 1,
		},
		Radius: 1,
	}
}
