package chip8

import "math/rand"

// defaultRandom is the Machine's random oracle when none is injected
// via WithRandom. It ignores the seed byte; a real host has no need
// to reproduce CHIP-8 randomness across platforms (see spec's
// "deterministic cross-platform randomness" non-goal), but tests can
// swap in a seed-driven oracle via WithRandom.
func defaultRandom(_ uint8) uint8 {
	return uint8(rand.Intn(256))
}
