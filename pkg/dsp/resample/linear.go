package resample

// Linear resamples by two-point linear interpolation. It is far cheaper
// than Fourier and has no wraparound at block edges, at the cost of
// attenuating and imaging high-frequency content; smooth control curves
// rarely notice.
type Linear struct{}

// Resample converts in from sourceRate to targetRate.
func (Linear) Resample(in []float64, targetRate, sourceRate float64) []float64 {
	n := len(in)
	m := OutputLen(n, targetRate, sourceRate)
	out := make([]float64, m)
	if n == 0 || m == 0 {
		return out
	}
	if n == 1 {
		for i := range out {
			out[i] = in[0]
		}
		return out
	}

	step := sourceRate / targetRate
	for i := range out {
		pos := float64(i) * step
		j := int(pos)
		if j >= n-1 {
			out[i] = in[n-1]
			continue
		}
		out[i] = lerp(in[j], in[j+1], pos-float64(j))
	}
	return out
}

// lerp interpolates between two samples; frac is the position in [0, 1).
func lerp(y0, y1, frac float64) float64 {
	return y0 + (y1-y0)*frac
}
