package truco

import (
	"io"
	"log/slog"
	"math/rand/v2"
)

// scriptedOpponent plays like Heuristic but answers raises with a fixed choice.
type scriptedOpponent struct {
	accept bool
	asked  int
}

func (s *scriptedOpponent) ChooseCard(cards []Card, manilha Rank) int {
	return Heuristic{}.ChooseCard(cards, manilha)
}

func (s *scriptedOpponent) AcceptRaise(RaiseView) bool {
	s.asked++
	return s.accept
}

type memoryRecorder struct {
	settlements []Settlement
}

func (r *memoryRecorder) Record(s Settlement) error {
	r.settlements = append(r.settlements, s)
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMatch(balance float64, opts ...matchOption) *Match {
	base := []matchOption{
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithLogger(quietLogger()),
	}
	return NewMatch(balance, append(base, opts...)...)
}

// dealFixed replaces the dealt hand with known cards.
func dealFixed(m *Match, stake float64, player, opponent []Card, vira Card) {
	m.hand = newHand(stake, player, opponent, vira)
	m.hands++
}

func c(r Rank, s Suit) Card {
	return Card{rank: r, suit: s}
}
