package truco

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

const (
	cardsPerPlayer  = 3
	roundsPerHand   = 3
	roundsToWin     = 2
	baseMultiplier  = 1
	raiseMultiplier = 3
)

// Hand is one dealt sequence of up to three rounds.
type Hand struct {
	deck     TrucoDeck
	player   []Card
	opponent []Card
	played   []Card
	vira     Card
	manilha  Rank

	round          int // 1-3 while playing, 4 once the third round is over
	playerRounds   int
	opponentRounds int
	advantage      Side // winner of the first non-tied round

	baseStake  float64
	multiplier int
	state      HandState
}

// dealHand shuffles a fresh deck and deals three cards to each side plus the vira.
func dealHand(stake float64, rng *rand.Rand) *Hand {
	d := NewShuffled(rng)
	// The fixed 3+3+1 deal always fits a full deck.
	player, err := d.Deal(cardsPerPlayer)
	if err != nil {
		panic(fmt.Sprintf("dealing player cards: %v", err))
	}
	opponent, err := d.Deal(cardsPerPlayer)
	if err != nil {
		panic(fmt.Sprintf("dealing opponent cards: %v", err))
	}
	vira, err := d.Deal(1)
	if err != nil {
		panic(fmt.Sprintf("turning the vira: %v", err))
	}
	h := newHand(stake, player, opponent, vira[0])
	h.deck = d
	return h
}

func newHand(stake float64, player, opponent []Card, vira Card) *Hand {
	return &Hand{
		player:     player,
		opponent:   opponent,
		vira:       vira,
		manilha:    ManilhaRank(vira.Rank()),
		round:      1,
		advantage:  NoSide,
		baseStake:  stake,
		multiplier: baseMultiplier,
		state:      Active,
	}
}

type roundResult struct {
	playerCard   Card
	opponentCard Card
	winner       Side
	round        int
}

// playRound plays the player card at index against the card chosen by opp.
// The index must already be validated.
func (h *Hand) playRound(index int, opp Opponent) roundResult {
	playerCard := h.player[index]
	h.player = slices.Delete(h.player, index, index+1)

	choice := opp.ChooseCard(slices.Clone(h.opponent), h.manilha)
	if choice < 0 || choice >= len(h.opponent) {
		panic(fmt.Sprintf("opponent chose card %d out of %d", choice, len(h.opponent)))
	}
	opponentCard := h.opponent[choice]
	h.opponent = slices.Delete(h.opponent, choice, choice+1)
	h.played = append(h.played, playerCard, opponentCard)

	winner := compare(playerCard, opponentCard, h.manilha)
	switch winner {
	case SidePlayer:
		h.playerRounds++
	case SideOpponent:
		h.opponentRounds++
	}
	if winner != NoSide && h.advantage == NoSide {
		h.advantage = winner
	}

	r := roundResult{
		playerCard:   playerCard,
		opponentCard: opponentCard,
		winner:       winner,
		round:        h.round,
	}
	h.round++
	return r
}

func compare(playerCard, opponentCard Card, manilha Rank) Side {
	p, o := Strength(playerCard, manilha), Strength(opponentCard, manilha)
	switch {
	case p > o:
		return SidePlayer
	case o > p:
		return SideOpponent
	default:
		return NoSide
	}
}

func (h *Hand) isFinished() bool {
	return h.playerRounds >= roundsToWin || h.opponentRounds >= roundsToWin || h.round > roundsPerHand
}

// winner returns the side with more round wins, then the advantage holder.
// A hand with every round tied goes to the player.
func (h *Hand) winner() Side {
	switch {
	case h.playerRounds > h.opponentRounds:
		return SidePlayer
	case h.opponentRounds > h.playerRounds:
		return SideOpponent
	case h.advantage != NoSide:
		return h.advantage
	default:
		return SidePlayer
	}
}

// forfeit awards the hand to the player after the opponent folds a raise.
func (h *Hand) forfeit() {
	h.playerRounds = roundsToWin
}

func (h *Hand) raiseView() RaiseView {
	return RaiseView{
		Cards:       slices.Clone(h.opponent),
		Manilha:     h.manilha,
		OwnRounds:   h.opponentRounds,
		RivalRounds: h.playerRounds,
	}
}

func (h *Hand) stake() float64 {
	return roundCurrency(h.baseStake * float64(h.multiplier))
}
