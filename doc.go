// Package metagain is a small, deterministic playground for adaptive
// learning-rate algorithms — an online predictor whose gain adapts itself
// through a hierarchy of meta-learning-rates, plus the noisy random-walk
// testbed it is classically evaluated on.
//
// 🚀 What is metagain?
//
//	A pure-Go, reproducibility-first library that brings together:
//		• gain/       — hierarchical gain-adaptation agent ("gain of a gain"),
//		  collapsing to the classical single-level rule at depth 1
//		• randomwalk/ — open-loop noisy random-walk environment with
//		  pre-drawn noise and mid-run variance switching
//		• noise/      — seedable Gaussian sample source (gonum-backed),
//		  injectable so every trajectory is bit-reproducible
//
// ✨ Why choose metagain?
//
//   - Deterministic by construction – seed in, trajectory out, every time
//   - Minimal API – two stateful types, three operations, sentinel errors
//   - Pure Go – no cgo, no hidden global randomness
//   - Honest to the source – preserves the reference behavior exactly,
//     including its documented quirks
//
// Quick sketch of one simulation step (driver code is yours):
//
//	y, err := env.Step()        // noisy observation of the latent walk
//	pred := agent.Action(y)     // predict, then self-adapt the gain
//	g := agent.Gain()           // effective (level-0) gain, for analysis
//
// See gain/doc.go and randomwalk/doc.go for full walkthroughs.
package metagain
