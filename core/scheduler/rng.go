package scheduler

import (
	"math/rand"
	"os"
	"strconv"
)

// DefaultRNGSeed is used when ELASTISCHED_RNG_SEED is unset or invalid.
const DefaultRNGSeed uint64 = 1337

// rngSeedEnvVar is the environment variable consulted for a deterministic
// override of the search's PRNG seed, mirroring the original engine's
// ELASTISCHED_RNG_SEED / RNG_SEED() convention.
const rngSeedEnvVar = "ELASTISCHED_RNG_SEED"

// ResolveRNGSeed returns the seed to use for a new search: the value of
// ELASTISCHED_RNG_SEED if it is set and parses as a full, valid unsigned
// integer, or DefaultRNGSeed otherwise.
func ResolveRNGSeed() uint64 {
	raw, ok := os.LookupEnv(rngSeedEnvVar)
	if !ok {
		return DefaultRNGSeed
	}
	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return DefaultRNGSeed
	}
	return seed
}

// NewRNG returns a *rand.Rand seeded from ResolveRNGSeed, for callers that
// want a default source without wiring the seed themselves.
func NewRNG() *rand.Rand {
	return rand.New(rand.NewSource(int64(ResolveRNGSeed())))
}
