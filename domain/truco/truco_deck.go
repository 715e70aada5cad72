package truco

import (
	"errors"
	"math/rand/v2"

	"github.com/luca-patrignani/truco/domain/deck"
)

// DeckSize is the number of cards in a truco deck: ten ranks in four suits, no jokers.
const DeckSize = NumRanks * NumSuits

// TrucoDeck wraps a generic numbered deck and converts its card numbers
// into truco Cards.
type TrucoDeck struct {
	*deck.Deck
}

// NewShuffled creates a full 40-card deck shuffled with rng.
func NewShuffled(rng *rand.Rand) TrucoDeck {
	return TrucoDeck{Deck: deck.New(DeckSize, rng)}
}

// IntToCard converts a raw card number (1-40) to a Card. Numbers map to suits in
// order (ouros, espadas, copas, paus) with the ten ranks in strength order within each suit.
//
// Card numbering:
//   - 1-10: Ouros (4 through 3)
//   - 11-20: Espadas
//   - 21-30: Copas
//   - 31-40: Paus
func IntToCard(rawCard int) (Card, error) {
	if rawCard > DeckSize || rawCard < 1 {
		return Card{}, errors.New("the card to convert have an invalid value")
	}
	suit := Suit((rawCard - 1) / NumRanks)
	rank := Rank((rawCard - 1) % NumRanks)
	return NewCard(rank, suit)
}

// CardToInt converts a Card to its integer representation (1-40).
// This is the inverse operation of IntToCard.
func CardToInt(card Card) int {
	return int(card.Suit())*NumRanks + int(card.Rank()) + 1
}

// Deal removes n cards from the top of the deck.
// It fails with an error wrapping deck.ErrUnderflow if fewer than n cards remain.
func (d TrucoDeck) Deal(n int) ([]Card, error) {
	raw, err := d.Deck.Draw(n)
	if err != nil {
		return nil, err
	}
	cards := make([]Card, n)
	for i, r := range raw {
		card, err := IntToCard(r)
		if err != nil {
			return nil, err
		}
		cards[i] = card
	}
	return cards, nil
}

// Cards returns the cards still in the deck, top first.
func (d TrucoDeck) Cards() []Card {
	raw := d.Deck.Undrawn()
	cards := make([]Card, 0, len(raw))
	for _, r := range raw {
		card, err := IntToCard(r)
		if err != nil {
			continue
		}
		cards = append(cards, card)
	}
	return cards
}
