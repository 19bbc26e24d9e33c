package rng

import (
	"fmt"
	"math"
)

// Weight selects which part of the [0, 1] domain a weighted sample
// favors.
type Weight int

const (
	WeightNone Weight = iota
	WeightLower
	WeightUpper
	WeightCentre
	WeightEnds
)

func (w Weight) String() string {
	switch w {
	case WeightNone:
		return "none"
	case WeightLower:
		return "lower"
	case WeightUpper:
		return "upper"
	case WeightCentre:
		return "centre"
	case WeightEnds:
		return "ends"
	default:
		return fmt.Sprintf("weight(%d)", int(w))
	}
}

// ParseWeight maps a name to its Weight. Returns false for unknown names.
func ParseWeight(s string) (Weight, bool) {
	switch s {
	case "none":
		return WeightNone, true
	case "lower":
		return WeightLower, true
	case "upper":
		return WeightUpper, true
	case "centre", "center":
		return WeightCentre, true
	case "ends":
		return WeightEnds, true
	default:
		return WeightNone, false
	}
}

// DefaultWeightStrength is the usual draw strength for the weighted
// samplers: the minimum of strength+1 uniform draws.
const DefaultWeightStrength = 4

// WeightedValue returns a sample in [0, 1] favoring the region selected
// by w. For WeightNone it is a plain uniform sample. Otherwise it takes
// the minimum m of strength+1 independent uniform draws and remaps m
// into the favored region. Negative strength is treated as 0.
// Panics with ErrUnknownCategory for a Weight outside the declared
// constants.
func (e *Engine) WeightedValue(w Weight, strength int) float64 {
	if w == WeightNone {
		return e.Value()
	}
	if strength < 0 {
		strength = 0
	}
	m := e.Value()
	for i := 0; i < strength; i++ {
		if v := e.Value(); v < m {
			m = v
		}
	}
	switch w {
	case WeightLower:
		return m
	case WeightUpper:
		return 1 - m
	case WeightCentre:
		return 0.5 + m*0.5*float64(e.Sign())
	case WeightEnds:
		if e.Sign() < 0 {
			return m
		}
		return 1 - m
	default:
		panic(fmt.Errorf("%w: weight %d", ErrUnknownCategory, int(w)))
	}
}

// WeightedRange interpolates a WeightedValue sample into [min, max].
func (e *Engine) WeightedRange(min, max float64, w Weight, strength int) float64 {
	return lerp(min, max, e.WeightedValue(w, strength))
}

// WeightedSignedValue is WeightedValue remapped to [-1, 1].
func (e *Engine) WeightedSignedValue(w Weight, strength int) float64 {
	return e.WeightedValue(w, strength)*2 - 1
}

// Extreme selects which of n uniform draws ExtremeOf keeps.
type Extreme int

const (
	Smallest Extreme = iota
	Largest
	MostCentred
)

func (x Extreme) String() string {
	switch x {
	case Smallest:
		return "smallest"
	case Largest:
		return "largest"
	case MostCentred:
		return "centred"
	default:
		return fmt.Sprintf("extreme(%d)", int(x))
	}
}

// ParseExtreme maps a name to its Extreme. Returns false for unknown names.
func ParseExtreme(s string) (Extreme, bool) {
	switch s {
	case "smallest", "min":
		return Smallest, true
	case "largest", "max":
		return Largest, true
	case "centred", "centered", "centre", "center":
		return MostCentred, true
	default:
		return Smallest, false
	}
}

// ExtremeOf draws n independent uniform [0, 1] samples and returns the
// minimum, maximum, or the one closest to 0.5. The centred candidate
// starts at 0 and is only replaced on strict improvement, so ties keep
// the first-seen value. Always consumes exactly n draws.
// Panics with ErrInvalidRange if n < 1 and with ErrUnknownCategory for
// an Extreme outside the declared constants.
func (e *Engine) ExtremeOf(n int, kind Extreme) float64 {
	if n < 1 {
		panic(fmt.Errorf("%w: ExtremeOf needs at least one draw, got %d", ErrInvalidRange, n))
	}
	var smallest, largest float64
	centred := 0.0
	for i := 0; i < n; i++ {
		v := e.Value()
		if i == 0 || v < smallest {
			smallest = v
		}
		if i == 0 || v > largest {
			largest = v
		}
		if math.Abs(v-0.5) < math.Abs(centred-0.5) {
			centred = v
		}
	}
	switch kind {
	case Smallest:
		return smallest
	case Largest:
		return largest
	case MostCentred:
		return centred
	default:
		panic(fmt.Errorf("%w: extreme %d", ErrUnknownCategory, int(kind)))
	}
}
