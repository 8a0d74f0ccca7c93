package deck

// Size is the number of cards in a full deck
const Size = NumRanks * NumSuits

// RandSource is the randomness a shuffle draws from. *rand.Rand from
// math/rand/v2 satisfies it; tests supply fixed sequences.
type RandSource interface {
	IntN(n int) int
}

// Deck is a standard 52-card deck
type Deck [Size]Card

// NewOrdered returns the deck in canonical order: suit-major blocks of 13
// ranks, so position i holds rank i%13 of suit i/13.
func NewOrdered() Deck {
	var d Deck
	for i := range d {
		d[i] = CardAt(i)
	}
	return d
}

// Shuffle randomizes the order of cards in the deck in place
func (d *Deck) Shuffle(rng RandSource) {
	Shuffle(d[:], rng)
}

// Cards returns the deck as a slice sharing the deck's storage
func (d *Deck) Cards() []Card {
	return d[:]
}

// Shuffle permutes s in place with Fisher-Yates, drawing each swap index
// uniformly from [0, i].
func Shuffle[T any](s []T, rng RandSource) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
