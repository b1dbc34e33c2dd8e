// Package mix provides single-sample mixing operations shared by the
// effects and the top-level Mixer generator.
package mix

import "math"

// DryWet blends dry and wet samples. amount: 0 = fully dry, 1 = fully
// wet.
func DryWet(dry, wet, amount float32) float32 {
	return dry*(1.0-amount) + wet*amount
}

// CrossfadeLinear performs a linear crossfade. position: 0 = fully a,
// 1 = fully b.
func CrossfadeLinear(a, b, position float32) float32 {
	return a*(1.0-position) + b*position
}

// CrossfadeCosine performs an equal-power cosine crossfade. position:
// 0 = fully a, 1 = fully b.
func CrossfadeCosine(a, b, position float32) float32 {
	angle := float64(position) * math.Pi / 2.0
	gainA := float32(math.Cos(angle))
	gainB := float32(math.Sin(angle))
	return a*gainA + b*gainB
}

// WeightedSum returns the weighted sum of samples, each scaled by the
// gain at the same index. Extra gains or samples beyond the shorter
// slice's length are ignored.
func WeightedSum(samples []float32, gains []float32) float32 {
	n := len(samples)
	if len(gains) < n {
		n = len(gains)
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += samples[i] * gains[i]
	}
	return sum
}
