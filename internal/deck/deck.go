package deck

import rand "math/rand/v2"

// Size is the number of cards in a standard deck.
const Size = 52

// Deck represents a shuffled deck of playing cards, consumed from the front.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a standard 52-card deck shuffled with the provided RNG.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}
	d.fill()
	d.Shuffle()
	return d
}

func (d *Deck) fill() {
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Ace; rank <= King; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
}

// Shuffle randomizes the order of cards in the deck (Fisher-Yates).
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card, face up. An exhausted deck is
// rebuilt and reshuffled before dealing; a two-player round never gets
// close to 52 cards, so this is a fallback rather than an expected path.
func (d *Deck) Deal() Card {
	if len(d.cards) == 0 {
		d.fill()
		d.Shuffle()
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card
}

// Cards returns the remaining cards in deal order. The slice is a copy.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}
