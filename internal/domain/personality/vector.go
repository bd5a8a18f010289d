// Package personality models the 4-axis behavioral-preference vector used for
// relative similarity between users and job titles.
package personality

import (
	"encoding/json"
	"math"
	"strconv"
)

// Default value for an axis when the source document carries nothing usable.
const defaultAxis = 0.5

// Axis names in fixed order. The scorer never interprets axis meaning; it only
// computes similarity over this ordered set.
var axes = [4]string{"E", "S", "T", "J"}

// Vector is an immutable 4-axis preference vector. Each axis lives in [0,1].
type Vector struct {
	E float64
	S float64
	T float64
	J float64
}

// Weighted pairs a vector with the weight it contributes to an average.
type Weighted struct {
	Vector Vector
	Weight float64
}

// Default returns the all-unknown vector (every axis 0.5).
func Default() Vector {
	return Vector{E: defaultAxis, S: defaultAxis, T: defaultAxis, J: defaultAxis}
}

// Clamp01 bounds v into [0,1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// values returns the axes in fixed order.
func (v Vector) values() [4]float64 {
	return [4]float64{v.E, v.S, v.T, v.J}
}

// Similarity computes the cosine similarity between a and b over the fixed
// axis order. A zero-norm side yields 0 rather than a divide-by-zero.
func Similarity(a, b Vector) float64 {
	av, bv := a.values(), b.values()
	var dot, na, nb float64
	for i := range av {
		dot += av[i] * bv[i]
		na += av[i] * av[i]
		nb += bv[i] * bv[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// WeightedAverage returns the per-axis weighted mean of pairs, each axis
// clamped to [0,1]. An empty list or zero total weight yields Default().
func WeightedAverage(pairs []Weighted) Vector {
	if len(pairs) == 0 {
		return Default()
	}
	var total float64
	for _, p := range pairs {
		total += p.Weight
	}
	if total == 0 {
		return Default()
	}
	var acc [4]float64
	for _, p := range pairs {
		pv := p.Vector.values()
		for i := range acc {
			acc[i] += pv[i] * (p.Weight / total)
		}
	}
	return Vector{
		E: Clamp01(acc[0]),
		S: Clamp01(acc[1]),
		T: Clamp01(acc[2]),
		J: Clamp01(acc[3]),
	}
}

// FromDocument extracts a vector from a raw document shape. Two legacy field
// names are honored: "mbti" first, then "personality". Axis values are coerced
// to float64 and clamped; anything missing or non-numeric falls back to the
// default axis value. Never fails.
func FromDocument(doc map[string]any) Vector {
	base := Default()
	if doc == nil {
		return base
	}
	// An empty mbti map counts as absent, so the legacy field still applies.
	raw, ok := doc["mbti"].(map[string]any)
	if !ok || len(raw) == 0 {
		raw, ok = doc["personality"].(map[string]any)
	}
	if !ok || len(raw) == 0 {
		return base
	}
	out := [4]float64{}
	for i, name := range axes {
		out[i] = defaultAxis
		if f, ok := coerceFloat(raw[name]); ok {
			out[i] = Clamp01(f)
		}
	}
	return Vector{E: out[0], S: out[1], T: out[2], J: out[3]}
}

// coerceFloat handles the numeric shapes that survive a JSON round trip.
func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
