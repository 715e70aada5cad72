package truco

// Opponent is the decision policy of the computer-controlled side.
type Opponent interface {
	// ChooseCard returns the index in cards of the card to play this round.
	ChooseCard(cards []Card, manilha Rank) int
	// AcceptRaise decides whether to keep playing at the raised stake.
	AcceptRaise(view RaiseView) bool
}

// RaiseView is what the opponent knows when asked to accept a raise.
type RaiseView struct {
	Cards       []Card
	Manilha     Rank
	OwnRounds   int
	RivalRounds int
}

// RandomSource is the part of *rand.Rand used by Heuristic.
type RandomSource interface {
	Float64() float64
}

const (
	acceptThreshold   = 20
	aheadThresholdInc = 4
	bluffAcceptChance = 0.4
)

// Heuristic always plays its strongest card and accepts raises when its hand is
// strong enough, or on a 40% chance otherwise.
type Heuristic struct {
	rng RandomSource
}

func NewHeuristic(rng RandomSource) Heuristic {
	return Heuristic{rng: rng}
}

// ChooseCard returns the index of the strongest card, the first one found on ties.
func (h Heuristic) ChooseCard(cards []Card, manilha Rank) int {
	best := 0
	for i := 1; i < len(cards); i++ {
		if Strength(cards[i], manilha) > Strength(cards[best], manilha) {
			best = i
		}
	}
	return best
}

// AcceptRaise compares the average strength of the remaining cards against a
// threshold that grows when the opponent is already ahead on rounds.
func (h Heuristic) AcceptRaise(view RaiseView) bool {
	total := 0
	for _, c := range view.Cards {
		total += Strength(c, view.Manilha)
	}
	average := float64(total) / float64(max(len(view.Cards), 1))
	threshold := float64(acceptThreshold)
	if view.OwnRounds > view.RivalRounds {
		threshold += aheadThresholdInc
	}
	if average >= threshold {
		return true
	}
	return h.rng.Float64() < bluffAcceptChance
}
