package rng

// The bias family remaps a uniform sample toward a target point or
// region. Strength is a scalar in [0, 1]: 0 leaves the sample uniform,
// 1 collapses it onto the target.
//
// The remap law: for a uniform t in [0, 1] and k = (1-strength)^3 - 1,
// the biased-low value is (t + t*k) / (t*k + 1), clamped to [0, 1].

// ValueBiasLower returns a sample in [0, 1] pulled toward 0.
// At strength 1 it returns 0 directly (k = -1 would divide by zero).
func (e *Engine) ValueBiasLower(strength float64) float64 {
	if strength >= 1 {
		return 0
	}
	t := e.Value()
	f := clamp01(1 - strength)
	k := f*f*f - 1
	return clamp01((t + t*k) / (t*k + 1))
}

// ValueBiasUpper returns a sample in [0, 1] pulled toward 1.
func (e *Engine) ValueBiasUpper(strength float64) float64 {
	return 1 - e.ValueBiasLower(strength)
}

// ValueBiasExtremes returns a bimodal sample pushed toward both 0 and 1
// as strength increases: a fair coin picks the low or high lobe.
func (e *Engine) ValueBiasExtremes(strength float64) float64 {
	v := e.ValueBiasLower(strength)
	if e.Sign() < 0 {
		return v
	}
	return 1 - v
}

// ValueBiasCentre returns a sample concentrated around 0.5 as strength
// increases, with an independent fair sign choosing the side.
func (e *Engine) ValueBiasCentre(strength float64) float64 {
	return 0.5 + e.ValueBiasLower(strength)*0.5*float64(e.Sign())
}

// SignedValueBiasExtremes is ValueBiasExtremes remapped to [-1, 1].
func (e *Engine) SignedValueBiasExtremes(strength float64) float64 {
	return e.ValueBiasExtremes(strength)*2 - 1
}

// SignedValueBiasCentre is ValueBiasCentre remapped to [-1, 1].
func (e *Engine) SignedValueBiasCentre(strength float64) float64 {
	return e.ValueBiasCentre(strength)*2 - 1
}
