package truco

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Rank is the position of a card value in the trick strength order,
// from Four (weakest) to Three (strongest).
type Rank uint8

const (
	Four Rank = iota
	Five
	Six
	Seven
	Queen
	Jack
	King
	Ace
	Two
	Three
)

// NumRanks is the number of ranks in a truco deck.
const NumRanks = 10

// Suit of a card. Suits are ordered by their manilha strength.
type Suit uint8

const (
	Ouros   Suit = iota // ♦ (red)
	Espadas             // ♠ (black)
	Copas               // ♥ (red)
	Paus                // ♣ (black)
)

// NumSuits is the number of suits in a truco deck.
const NumSuits = 4

// manilhaBase is added to the suit strength of a manilha so that it beats any rank index.
const manilhaBase = 100

var rankLabels = [NumRanks]string{"4", "5", "6", "7", "Q", "J", "K", "A", "2", "3"}

var suitNames = [NumSuits]string{"Ouros", "Espadas", "Copas", "Paus"}

var suitSymbols = [NumSuits]string{"♦", "♠", "♥", "♣"}

func (r Rank) String() string {
	if r >= NumRanks {
		return "?"
	}
	return rankLabels[r]
}

// Next returns the rank following r in the strength order, wrapping from Three to Four.
func (r Rank) Next() Rank {
	return (r + 1) % NumRanks
}

func (s Suit) String() string {
	if s >= NumSuits {
		return "?"
	}
	return suitNames[s]
}

// Symbol returns the unicode symbol of the suit.
func (s Suit) Symbol() string {
	if s >= NumSuits {
		return "?"
	}
	return suitSymbols[s]
}

// Strength returns the tie-break value of the suit among manilhas (1-4).
func (s Suit) Strength() int {
	return int(s) + 1
}

// Card represents a playing card with rank and suit.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a new Card, returning an error if rank or suit is out of range.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if rank >= NumRanks || suit >= NumSuits {
		return Card{}, fmt.Errorf("invalid card %d, %d", rank, suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// Rank returns the rank of the card.
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit of the card.
func (c Card) Suit() Suit {
	return c.suit
}

// Label returns the rank followed by the plain suit symbol, e.g. "A♥".
func (c Card) Label() string {
	return c.rank.String() + c.suit.Symbol()
}

// Describe returns the long form of the card, e.g. "A de Copas".
func (c Card) Describe() string {
	return c.rank.String() + " de " + c.suit.String()
}

// String renders the card for the terminal with a coloured suit symbol.
func (c Card) String() string {
	var suit string
	switch c.suit {
	case Ouros, Copas:
		suit = pterm.LightRed(c.suit.Symbol())
	case Espadas, Paus:
		suit = pterm.Black(c.suit.Symbol())
	default:
		suit = "?"
	}
	return c.rank.String() + suit
}

// ManilhaRank returns the rank that becomes manilha when vira is turned up.
func ManilhaRank(vira Rank) Rank {
	return vira.Next()
}

// Strength returns the trick strength of card for the given manilha rank.
// Manilhas score 100 plus their suit strength, every other card scores its rank index.
func Strength(card Card, manilha Rank) int {
	if card.rank == manilha {
		return manilhaBase + card.suit.Strength()
	}
	return int(card.rank)
}
