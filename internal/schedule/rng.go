package schedule

import (
	"hash/fnv"
	"math/rand"
)

// initialSOCRNG returns the RNG used to draw the initial SOC when
// Params.FixedInitialSOC is unset, seeded directly from Params.Seed so a
// solve is fully reproducible.
func initialSOCRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed)))
}

// drawInitialSOC samples a starting SOC uniformly from [0.4, 1.0) when no
// fixed value is configured, matching the sweep range used by the
// random-SOC exploration in internal/runner.
func drawInitialSOC(r *rand.Rand) float64 {
	return 0.4 + r.Float64()*0.6
}

// transitionNoiseKey hashes the transition identity (seed, source activity,
// destination activity, chosen start time, chosen duration) to a uint64
// used to seed a per-transition RNG. Two calls to extend() with identical
// arguments always draw the same perturbation, which keeps Pareto
// dominance internally consistent: a dominance comparison between two
// labels that both reached b via the same (a, start_b, duration_b) sees the
// same noise applied to both, so the comparison reduces to the real
// utility difference rather than RNG luck.
func transitionNoiseKey(seed uint64, a, b, startB, durationB int) uint64 {
	h := fnv.New64a()
	var buf [40]byte
	putUint64(buf[0:8], seed)
	putUint64(buf[8:16], uint64(int64(a)))
	putUint64(buf[16:24], uint64(int64(b)))
	putUint64(buf[24:32], uint64(int64(startB)))
	putUint64(buf[32:40], uint64(int64(durationB)))
	h.Write(buf[:])
	return h.Sum64()
}

func putUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * uint(i)))
	}
}

// utilityPerturbation returns a deterministic pseudo-random perturbation
// with the given standard deviation for one transition, or 0 if stdDev is
// 0. Draws a standard normal (rand.NormFloat64) from the transition's own
// seeded source so no shared RNG state is threaded through the DP loop.
func utilityPerturbation(seed uint64, a, b, startB, durationB int, stdDev float64) float64 {
	if stdDev == 0 {
		return 0
	}
	key := transitionNoiseKey(seed, a, b, startB, durationB)
	src := rand.New(rand.NewSource(int64(key)))
	return src.NormFloat64() * stdDev
}
