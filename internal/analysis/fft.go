package analysis

import (
	"math"
	"math/cmplx"
)

// FFT returns the discrete Fourier transform of data, whose length must be
// a power of two. It is an iterative radix-2 transform over a copy.
func FFT(data []float64) []complex128 {
	n := len(data)
	out := make([]complex128, n)
	for i, v := range data {
		out[i] = complex(v, 0)
	}
	if n <= 1 {
		return out
	}
	if n&(n-1) != 0 {
		panic("analysis: fft length must be a power of two")
	}

	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			out[i], out[j] = out[j], out[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		for k := 0; k < half; k++ {
			w := cmplx.Rect(1, -2*math.Pi*float64(k)/float64(size))
			for start := k; start < n; start += size {
				a, b := out[start], w*out[start+half]
				out[start], out[start+half] = a+b, a-b
			}
		}
	}
	return out
}

// PowerSpectrum returns |X_k|² for the non-negative frequency bins.
func PowerSpectrum(data []float64) []float64 {
	spectrum := FFT(data)
	ps := make([]float64, len(spectrum)/2)
	for k := range ps {
		re, im := real(spectrum[k]), imag(spectrum[k])
		ps[k] = re*re + im*im
	}
	return ps
}

// DominantFrequency returns the strongest non-DC frequency of a signal
// sampled every dt seconds. The signal is mean-removed, Hann-windowed and
// zero-padded to a power of two; the peak is refined by a parabola through
// the log power of the neighbouring bins.
func DominantFrequency(signal []float64, dt float64) float64 {
	if len(signal) < 4 || dt <= 0 {
		return 0
	}

	mean := 0.0
	for _, v := range signal {
		mean += v
	}
	mean /= float64(len(signal))

	n := 1
	for n < len(signal) {
		n *= 2
	}
	n *= 4
	padded := make([]float64, n)
	last := float64(len(signal) - 1)
	for i, v := range signal {
		w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/last)
		padded[i] = (v - mean) * w
	}

	ps := PowerSpectrum(padded)

	peak := 1
	for i := 2; i < len(ps)-1; i++ {
		if ps[i] > ps[peak] {
			peak = i
		}
	}

	offset := 0.0
	if peak < len(ps)-1 && ps[peak-1] > 0 && ps[peak+1] > 0 {
		a, b, c := math.Log(ps[peak-1]), math.Log(ps[peak]), math.Log(ps[peak+1])
		if den := a - 2*b + c; den != 0 {
			offset = 0.5 * (a - c) / den
		}
	}

	return (float64(peak) + offset) / (float64(n) * dt)
}
