package wav

import "math"

// Sec2Smp converts a duration in seconds to a sample count.
func Sec2Smp(seconds float64, sampleRate int) int {
	return int(math.Round(float64(sampleRate) * seconds))
}

// BPM2Sec converts beats per minute to the length of one beat in
// seconds.
func BPM2Sec(bpm float64) float64 {
	return 60 / bpm
}

// Mono2Stereo duplicates each mono sample into an interleaved stereo
// stream.
func Mono2Stereo(samples []float64) []float64 {
	out := make([]float64, 0, 2*len(samples))
	for _, s := range samples {
		out = append(out, s, s)
	}
	return out
}

// HardClip limits every sample to [-threshold, threshold].
func HardClip(samples []float64, threshold float64) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		switch {
		case s > threshold:
			out[i] = threshold
		case s < -threshold:
			out[i] = -threshold
		default:
			out[i] = s
		}
	}
	return out
}

// HPF applies a first-order high-pass filter:
// y[n] = x[n] - x[n-1] + a*y[n-1], a = exp(-2*pi*cutoff/rate).
func HPF(samples []float64, cutoff float64, sampleRate int) []float64 {
	if len(samples) == 0 {
		return nil
	}
	a := math.Exp(-2 * math.Pi * cutoff / float64(sampleRate))
	out := make([]float64, len(samples))
	out[0] = samples[0]
	for i := 1; i < len(samples); i++ {
		out[i] = samples[i] - samples[i-1] + a*out[i-1]
	}
	return out
}

// Tone generates a clipped sine wave at the given frequency.
func Tone(freq float64, seconds float64, sampleRate int) []float64 {
	n := Sec2Smp(seconds, sampleRate)
	out := make([]float64, n)
	for i := range out {
		f := math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
		if f < -1 {
			f = -1
		} else if f > 1 {
			f = 1
		}
		out[i] = f
	}
	return out
}
