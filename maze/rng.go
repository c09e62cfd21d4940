package maze

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed == 0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// golden is 2^64 divided by the golden ratio; stepping by it visits every
// uint64 before repeating.
const golden uint64 = 0x9e3779b97f4a7c15

// DeriveSeed returns the seed of board number generation in a chain started
// from base. Generation 0 is base itself, unmixed, so a fresh Generate and
// its derivation chain agree on the first board. game.Reset passes the
// number of resets since the last Generate, which makes the whole sequence
// of boards replayable from base alone.
//
// Later generations run base + generation·golden through the SplitMix64
// finalizer, so neighbouring generations land far apart.
//
// Complexity: O(1).
func DeriveSeed(base int64, generation uint64) int64 {
	if generation == 0 {
		return base
	}
	return int64(mix64(uint64(base) + generation*golden))
}

// mix64 is the SplitMix64 output function.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
