package service

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the source of randomness used for shuffling and distractor sampling.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// lockedRand makes a *rand.Rand safe to share between sessions.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRand returns a goroutine-safe random source. A zero seed means time based.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{rnd: rand.New(rand.NewSource(seed))}
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}

// shuffle permutes codes in place (Fisher-Yates).
func shuffle(rnd Rand, codes []string) {
	for i := len(codes) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		codes[i], codes[j] = codes[j], codes[i]
	}
}
