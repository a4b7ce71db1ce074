package gain

import "errors"

// Sentinel errors for agent construction.
var (
	// ErrNegativeDepth indicates a negative hierarchy depth was requested.
	ErrNegativeDepth = errors.New("gain: depth must be non-negative")
)

// Agent — hierarchical gain-adaptation predictor.
//
// Description:
//
//	Agent tracks a scalar prediction y and updates it once per Action call
//	as y += gain · e(t), where e(t) is the prediction error against the
//	*previous* prediction. The gain itself is level 0 of a fixed-length
//	hierarchy of depth+1 rates: level depth is pinned to the base constant
//	b, and each level above accumulates the error-correlation signal
//	scaled by the level directly below it.
//
// Update outline (one Action call):
//  1. e(t−1) ← e(t);  e(t) ← observation − y.
//  2. If depth > 0:
//     p ← e(t) · e(t−1)
//     level[depth] ← b
//     for i = depth−1 … 0:  level[i] += level[i+1] · p
//  3. y += level[0] · e(t).
//
// The sweep runs base-to-top because each level's increment must see the
// already-updated value of its child from the same step. At depth 1 the
// recurrence is exactly the classical level[0] += b · e(t) · e(t−1); at
// depth 0 the hierarchy is the single frozen cell level[0] = initialGain.
//
// Agent is strictly sequential state: one logical driver, no locking.
type Agent struct {
	prediction float64   // y, the running estimate
	pe         float64   // e(t), current prediction error
	prevPE     float64   // e(t−1), previous prediction error
	baseRate   float64   // b, fixed base adaptation rate
	depth      int       // number of adaptation levels above the base
	levels     []float64 // len == depth+1; levels[0] is the effective gain
}

// New constructs an Agent with the given initial gain, base adaptation
// rate b, and hierarchy depth.
//
// depth must be non-negative; ErrNegativeDepth otherwise. initialGain is
// honored only at depth 0, where it becomes the permanent effective gain.
// At depth ≥ 1 all levels start at zero and initialGain has no observable
// effect (see package doc).
func New(initialGain, b float64, depth int) (*Agent, error) {
	if depth < 0 {
		return nil, ErrNegativeDepth
	}
	levels := make([]float64, depth+1)
	if depth == 0 {
		levels[0] = initialGain
	}

	return &Agent{
		baseRate: b,
		depth:    depth,
		levels:   levels,
	}, nil
}

// Action consumes one observed value, returns the updated prediction, and
// adapts the gain hierarchy in place. Calls are strictly sequential; the
// error window and every hierarchy level persist across steps.
// Complexity: O(depth).
func (a *Agent) Action(trueValue float64) float64 {
	a.prevPE = a.pe
	a.pe = trueValue - a.prediction

	if a.depth > 0 {
		product := a.pe * a.prevPE
		// The base level is always the constant rate, never adapted.
		a.levels[a.depth] = a.baseRate
		for i := a.depth - 1; i >= 0; i-- {
			a.levels[i] += a.levels[i+1] * product
		}
	}

	a.prediction += a.levels[0] * a.pe

	return a.prediction
}

// Gain returns the effective gain: the level-0 value the next prediction
// update will be scaled by. Complexity: O(1).
func (a *Agent) Gain() float64 {
	return a.levels[0]
}

// Prediction returns the current prediction estimate y. Complexity: O(1).
func (a *Agent) Prediction() float64 {
	return a.prediction
}

// BaseRate returns the fixed base adaptation rate b. Complexity: O(1).
func (a *Agent) BaseRate() float64 {
	return a.baseRate
}

// Depth returns the number of adaptation levels above the base rate.
// Complexity: O(1).
func (a *Agent) Depth() int {
	return a.depth
}

// Hierarchy returns a copy of the gain hierarchy, level 0 first.
// The slice always has Depth()+1 elements. Complexity: O(depth).
func (a *Agent) Hierarchy() []float64 {
	out := make([]float64, len(a.levels))
	copy(out, a.levels)

	return out
}
