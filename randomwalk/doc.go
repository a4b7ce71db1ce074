// Package randomwalk implements an open-loop synthetic signal source: a
// latent Gaussian random walk observed through independent Gaussian noise,
// with every sample pre-drawn at construction for reproducibility.
//
// 🚀 What is the random-walk environment?
//
//	The latent state z accumulates increments A(t) ~ Normal(0, sa); each
//	Step emits y(t) = z(t) + B(t) with B(t) ~ Normal(0, sb), then advances
//	the walk. The environment never sees the agent — it is a fixed tape
//	of maxSteps observations, which makes it the classic testbed for
//	adaptive-gain predictors: the walk demands a large gain, the
//	observation noise punishes one.
//
// ✨ Key features:
//   - both noise tapes pre-drawn from one injectable, seedable generator
//   - observation precedes the walk increment: y(t) reflects the walk's
//     position *before* this step's move
//   - hard step budget: Step past maxSteps fails with ErrExhausted
//   - ChangeVariance redraws the observation-noise tape mid-run for
//     non-stationarity studies, leaving the walk untouched
//
// ⚙️ Usage:
//
//	env, err := randomwalk.New(1.0, 0.5, 10_000, randomwalk.WithSeed(42))
//	if err != nil {
//	  // handle ErrBadStdDev / ErrBadMaxSteps
//	}
//	for {
//	  y, err := env.Step()
//	  if errors.Is(err, randomwalk.ErrExhausted) {
//	    break
//	  }
//	  // feed y to a predictor
//	}
//
// Complexity: construction O(maxSteps); Step O(1); ChangeVariance
// O(maxSteps).
package randomwalk
