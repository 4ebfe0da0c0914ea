package world

import "math/rand"

func (w *World) ensureRNG() {
	if w.rng != nil {
		return
	}
	if w.rngSeed == 0 {
		w.rngSeed = 1
	}
	w.rng = rand.New(rand.NewSource(w.rngSeed))
}

// RandFloat32 draws from the world's seeded stream. Every random decision
// in the simulation (boss controllers included) goes through these so
// snapshots can replay the stream by call count.
func (w *World) RandFloat32() float32 {
	w.ensureRNG()
	w.rngCalls++
	return w.rng.Float32()
}

func (w *World) RandIntn(n int) int {
	w.ensureRNG()
	w.rngCalls++
	return w.rng.Intn(n)
}

// RandRange returns a uniform draw in [lo, hi).
func (w *World) RandRange(lo, hi float32) float32 {
	if hi <= lo {
		return lo
	}
	return lo + w.RandFloat32()*(hi-lo)
}
