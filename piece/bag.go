package piece

import "math/rand"

// Randomizer supplies the next piece kind. The game only requires that
// every kind remains reachable; the draw policy is up to the
// implementation.
type Randomizer interface {
	Next() Kind
}

// Bag draws from a shuffled bag of all seven kinds, refilled when
// empty. Guarantees every kind appears once per seven draws.
type Bag struct {
	rng  *rand.Rand
	bag  [KindCount]Kind
	left int
}

// NewBag creates a seven-bag randomizer from the given seed
func NewBag(seed int64) *Bag {
	return &Bag{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next kind from the bag, refilling and reshuffling
// when the bag runs out.
func (b *Bag) Next() Kind {
	if b.left == 0 {
		for i := range b.bag {
			b.bag[i] = Kind(i)
		}
		b.rng.Shuffle(KindCount, func(i, j int) {
			b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
		})
		b.left = KindCount
	}
	b.left--
	return b.bag[b.left]
}

// Uniform draws every kind independently and uniformly
type Uniform struct {
	rng *rand.Rand
}

// NewUniform creates a uniform randomizer from the given seed
func NewUniform(seed int64) *Uniform {
	return &Uniform{rng: rand.New(rand.NewSource(seed))}
}

// Next returns an independently drawn kind
func (u *Uniform) Next() Kind {
	return Kind(u.rng.Intn(KindCount))
}
