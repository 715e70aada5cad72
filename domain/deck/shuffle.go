package deck

import "math/rand/v2"

// Shuffle rebuilds the full deck and applies a uniform random permutation to it.
// Every card drawn so far is put back.
func (d *Deck) Shuffle(rng *rand.Rand) {
	d.lastDrawn = 0
	d.cards = permutation(rng, d.DeckSize)
}

// Helper function to generate a random permutation of the card numbers 1..permSize
func permutation(rng *rand.Rand, permSize int) []int {
	perm := rng.Perm(permSize)
	for i := range perm {
		perm[i]++
	}
	return perm
}
