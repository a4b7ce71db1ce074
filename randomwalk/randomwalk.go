package randomwalk

import "github.com/katalvlaran/metagain/noise"

// Env — simulated noisy random walk with pre-drawn noise tapes.
//
// Description:
//
//	Env holds two length-maxSteps tapes: walkNoise (increments of the
//	latent walk, σ = sa) and obsNoise (observation noise, σ = sb), both
//	drawn up front from the injected generator, walk tape first. A cursor
//	advances one slot per Step; when the tapes run out, Step fails rather
//	than wrapping or extending.
//
// Step outline (one call):
//  1. a ← walkNoise[cursor];  b ← obsNoise[cursor].
//  2. y ← z + b          (observe the walk *before* it moves)
//  3. z ← z + a          (then advance the latent walk)
//  4. cursor++; return y.
//
// Env is strictly sequential state: one logical driver, no locking. The
// tapes are owned exclusively by their Env and never shared.
type Env struct {
	latent    float64   // z, the hidden walk position
	obs       float64   // last emitted observation y
	sa        float64   // stddev of walk increments
	sb        float64   // stddev of observation noise
	walkNoise []float64 // pre-drawn increments A(t), len == maxSteps
	obsNoise  []float64 // pre-drawn observation noise B(t), len == maxSteps
	cursor    int       // next unread tape index
	maxSteps  int       // total step budget
	gen       noise.Generator
}

// New constructs an environment with walk-increment stddev sa, observation
// noise stddev sb, and a budget of maxSteps Step calls.
//
// Both stddevs must be non-negative (ErrBadStdDev) and maxSteps positive
// (ErrBadMaxSteps). The generator defaults to a Gaussian source seeded
// with DefaultSeed; override with WithSeed or WithGenerator. Both tapes
// are drawn here, so equal seeds yield bit-identical environments.
// Complexity: O(maxSteps) time and memory.
func New(sa, sb float64, maxSteps int, opts ...Option) (*Env, error) {
	if sa < 0 || sb < 0 {
		return nil, ErrBadStdDev
	}
	if maxSteps <= 0 {
		return nil, ErrBadMaxSteps
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Gen == nil {
		return nil, ErrNilGenerator
	}

	return &Env{
		sa:        sa,
		sb:        sb,
		walkNoise: o.Gen.Normal(sa, maxSteps),
		obsNoise:  o.Gen.Normal(sb, maxSteps),
		maxSteps:  maxSteps,
		gen:       o.Gen,
	}, nil
}

// Step emits the next observation y = z + B(t) and then advances the
// latent walk by A(t). The observation therefore reflects the walk's
// position before this step's increment. Fails with ErrExhausted exactly
// on call maxSteps+1. Complexity: O(1).
func (e *Env) Step() (float64, error) {
	if e.cursor == e.maxSteps {
		return 0, ErrExhausted
	}
	a, b := e.walkNoise[e.cursor], e.obsNoise[e.cursor]

	e.obs = e.latent + b
	e.latent += a
	e.cursor++

	return e.obs, nil
}

// ChangeVariance redraws the entire observation-noise tape from
// Normal(0, newSb) — already-consumed slots included, though those have no
// further effect — leaving the walk tape and sa untouched. Future Step
// calls observe the new noise regime from the current cursor onward.
// Rejects negative newSb with ErrBadStdDev. Complexity: O(maxSteps).
func (e *Env) ChangeVariance(newSb float64) error {
	if newSb < 0 {
		return ErrBadStdDev
	}
	e.sb = newSb
	e.obsNoise = e.gen.Normal(newSb, e.maxSteps)

	return nil
}

// Steps returns how many Step calls have been consumed. Complexity: O(1).
func (e *Env) Steps() int {
	return e.cursor
}

// MaxSteps returns the total step budget. Complexity: O(1).
func (e *Env) MaxSteps() int {
	return e.maxSteps
}

// Latent returns the current hidden walk position z — the value the *next*
// observation will be centered on. Complexity: O(1).
func (e *Env) Latent() float64 {
	return e.latent
}

// StdDevs returns the current (sa, sb) pair; sb reflects the most recent
// ChangeVariance call. Complexity: O(1).
func (e *Env) StdDevs() (sa, sb float64) {
	return e.sa, e.sb
}
