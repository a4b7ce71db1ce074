// Package gain implements an online predictor whose learning rate adapts
// itself through a hierarchy of meta-learning-rates ("gain of a gain").
//
// 🚀 What is hierarchical gain adaptation?
//
//	A scalar predictor y is nudged toward each observation by
//	gain · error.  Instead of hand-tuning the gain, the agent adapts it
//	from the correlation of successive prediction errors: persistent
//	same-sign errors mean the gain is too small, alternating signs mean
//	it overshoots.  The hierarchy generalizes this recursively — each
//	level is the learning rate of the level above it, terminating at a
//	fixed base constant, so deeper levels adapt at ever slower timescales.
//
// ✨ Key features:
//   - depth 1 reduces exactly to the classical rule
//     gain += b · e(t) · e(t−1)
//   - depth 0 disables adaptation entirely (fixed gain)
//   - fixed-size level slice, one reverse in-place sweep per step
//   - pure arithmetic: no allocation, no randomness, no error paths
//     after construction
//
// ⚙️ Usage:
//
//	agent, err := gain.New(0, 0.1, 2) // initialGain, base rate b, depth
//	if err != nil {
//	  // handle ErrNegativeDepth
//	}
//	for _, y := range observations {
//	  pred := agent.Action(y)
//	  _ = pred            // prediction after seeing y
//	  _ = agent.Gain()    // effective (level-0) gain right now
//	}
//
// Note: initialGain only matters at depth 0. At depth ≥ 1 every level
// starts at zero and the effective gain is recomputed before first use,
// so initialGain is observably inert — this mirrors the reference
// behavior and is kept deliberately.
//
// Complexity: Action is O(depth) time, O(1) memory per step.
package gain
