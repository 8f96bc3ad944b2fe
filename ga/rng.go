// RNG utilities shared by the engine and the operators.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs across platforms.
//   - A single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Engine owns its own stream and
//     only touches it under the engine mutex.
package ga

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a:
// i runs from n-1 down to 1 and swaps with a uniform j ∈ [0, i].
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// pickTwo draws two distinct positions from [0, k) uniformly, unordered.
// Requires k >= 2.
func pickTwo(rng *rand.Rand, k int) (int, int) {
	a := rng.Intn(k)
	b := rng.Intn(k - 1)
	if b >= a {
		b++ // skip a so that b is uniform over the remaining k-1 values
	}

	return a, b
}

// pickCut draws two distinct positions from [0, k) and returns them ordered,
// lo < hi. Requires k >= 2.
func pickCut(rng *rand.Rand, k int) (lo, hi int) {
	lo, hi = pickTwo(rng, k)
	if lo > hi {
		lo, hi = hi, lo
	}

	return lo, hi
}
