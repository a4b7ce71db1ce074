// Package noise provides seedable sources of zero-mean Gaussian samples.
//
// 🚀 What is noise?
//
//	A thin, explicit randomness boundary: everything stochastic in this
//	library draws its samples through a noise.Generator that the caller
//	constructs and injects.  No package-level generator, no ambient seed —
//	two runs with the same seed produce bit-identical sample streams.
//
// ✨ Key features:
//   - Generator interface: one method, batch draws of Normal(0, σ)
//   - Gaussian: gonum-backed implementation over a seedable source
//   - σ = 0 yields exact zeros, so degenerate experiments stay bit-exact
//
// ⚙️ Usage:
//
//	gen := noise.NewGaussian(42)
//	samples := gen.Normal(0.5, 1000) // 1000 draws from Normal(0, 0.5)
//
// Complexity: Normal(σ, n) is O(n) time and memory.
package noise
