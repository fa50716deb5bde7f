package game

import (
	"sync"

	"golang.org/x/exp/rand"
)

// Roller draws a die value in [1, sides].
type Roller interface {
	Roll(sides int) int
}

type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller returns a uniform roller seeded with seed.
func NewRandomRoller(seed uint64) Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(seed))}
}

func (r *randomRoller) Roll(sides int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(sides) + 1
}

// FixedRoller replays a scripted sequence of rolls, cycling when exhausted.
type FixedRoller struct {
	Values []int
	next   int
}

func NewFixedRoller(values ...int) *FixedRoller {
	if len(values) == 0 {
		panic("fixed roller needs at least one value")
	}
	return &FixedRoller{Values: values}
}

func (f *FixedRoller) Roll(sides int) int {
	v := f.Values[f.next%len(f.Values)]
	f.next++
	// Clamp into range so a script cannot break the die invariant
	return min(max(v, 1), sides)
}
