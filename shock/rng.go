// SPDX-License-Identifier: MIT

package shock

import "math/rand/v2"

// defaultSeed replaces a zero seed so defaults stay reproducible.
const defaultSeed int64 = 42

// NewRand returns a deterministic source for panel 0 of seed.
// Policy: seed == 0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func NewRand(seed int64) *rand.Rand {
	return Derive(seed, 0)
}

// Derive returns the deterministic source of one shock panel. A seed names
// a family of panels and panel selects a member; PCG keeps the two words
// of its state separate, so distinct panels never share a sequence.
func Derive(seed int64, panel uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewPCG(uint64(seed), panel))
}
