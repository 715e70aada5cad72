package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrUnderflow is returned when more cards are requested than the deck holds.
var ErrUnderflow = errors.New("not enough cards left in the deck")

// Deck is a shuffled pile of cards numbered from 1 to DeckSize.
// The meaning of each number is left to the game wrapping the deck.
type Deck struct {
	DeckSize  int
	cards     []int
	lastDrawn int
}

// New creates a deck of size cards and shuffles it with rng.
func New(size int, rng *rand.Rand) *Deck {
	d := &Deck{DeckSize: size}
	d.Shuffle(rng)
	return d
}

// Draw removes n cards from the top of the deck and returns them in order.
// It returns ErrUnderflow, leaving the deck untouched, if fewer than n cards remain.
func (d *Deck) Draw(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot draw %d cards", n)
	}
	if n > d.Remaining() {
		return nil, fmt.Errorf("%w: requested %d, remaining %d", ErrUnderflow, n, d.Remaining())
	}
	drawn := make([]int, n)
	copy(drawn, d.cards[d.lastDrawn:d.lastDrawn+n])
	d.lastDrawn += n
	return drawn, nil
}

// Remaining returns how many cards can still be drawn.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.lastDrawn
}

// Undrawn returns a copy of the cards still in the deck, top first.
func (d *Deck) Undrawn() []int {
	rest := make([]int, d.Remaining())
	copy(rest, d.cards[d.lastDrawn:])
	return rest
}
