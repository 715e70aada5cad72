package truco

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/luca-patrignani/truco/domain/deck"
)

// MatchGoal is the number of match points that ends a match.
const MatchGoal = 12

// Match plays hands against the opponent and settles each of them on a running balance.
// A Match is not safe for concurrent use.
type Match struct {
	balance        float64
	hand           *Hand
	hands          int
	playerPoints   int
	opponentPoints int
	goal           int
	winner         Side

	rng      *rand.Rand
	opponent Opponent
	logger   *slog.Logger
	recorder Recorder
}

// NewMatch creates a match with the given starting balance.
// Without WithRand the random generator is seeded from the Ed25519 group.
func NewMatch(balance float64, opts ...matchOption) *Match {
	m := &Match{
		balance: roundCurrency(balance),
		goal:    MatchGoal,
		winner:  NoSide,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	if m.rng == nil {
		hi, lo, err := deck.NewSeed()
		if err != nil {
			m.logger.Warn("falling back to a clock seed", "error", err)
			hi, lo = uint64(time.Now().UnixNano()), 0
		}
		m.rng = rand.New(rand.NewPCG(hi, lo))
	}
	if m.opponent == nil {
		m.opponent = NewHeuristic(m.rng)
	}
	return m
}

// CanBet reports whether stake is a valid base stake for the current balance.
func (m *Match) CanBet(stake float64) bool {
	s := roundCurrency(stake)
	return s > 0 && s <= m.balance
}

// StartHand deals a new hand played for stake.
func (m *Match) StartHand(stake float64) (Snapshot, error) {
	if m.winner != NoSide {
		return Snapshot{}, ErrMatchAlreadyOver
	}
	if m.hand != nil && m.hand.state == Active {
		return Snapshot{}, ErrHandInProgress
	}
	if !m.CanBet(stake) {
		return Snapshot{}, fmt.Errorf("%w: stake %.2f, balance %.2f", ErrInvalidStake, stake, m.balance)
	}
	m.hand = dealHand(roundCurrency(stake), m.rng)
	m.hands++
	m.logger.Debug("hand dealt",
		"hand", m.hands,
		"stake", m.hand.baseStake,
		"vira", m.hand.vira.Label(),
		"manilha", m.hand.manilha.String())
	return m.State(), nil
}

// PlayCard plays the player's card at index and the opponent's answer to it.
// When the round ends the hand, the stake is settled before returning.
func (m *Match) PlayCard(index int) (PlayResult, error) {
	if err := m.checkActive(); err != nil {
		return PlayResult{}, err
	}
	h := m.hand
	if index < 0 || index >= len(h.player) {
		return PlayResult{}, fmt.Errorf("%w: index %d, %d cards in hand", ErrCardIndexOutOfRange, index, len(h.player))
	}

	r := h.playRound(index, m.opponent)
	res := PlayResult{
		PlayerCard:   r.playerCard,
		OpponentCard: r.opponentCard,
		RoundWinner:  r.winner,
		Round:        r.round,
	}
	if h.isFinished() {
		res.HandWinner = h.winner()
		res.HandConcluded = true
		m.settle(res.HandWinner, false)
	}
	res.PlayerRounds = h.playerRounds
	res.OpponentRounds = h.opponentRounds
	res.Balance = m.balance
	res.Multiplier = h.multiplier
	res.PlayerMatchPoints = m.playerPoints
	res.OpponentMatchPoints = m.opponentPoints
	res.MatchWinner = m.winner
	return res, nil
}

// RequestRaise asks the opponent to play the hand at three times the base stake.
// Refusals that leave the hand untouched are reported as outcomes, not errors.
func (m *Match) RequestRaise() (RaiseResult, error) {
	if err := m.checkActive(); err != nil {
		return RaiseResult{}, err
	}
	h := m.hand
	if h.multiplier >= raiseMultiplier {
		return m.raiseResult(RaiseAlreadyMaximum, "truco is already in force"), nil
	}
	potential := roundCurrency(h.baseStake * raiseMultiplier)
	if potential > m.balance {
		return m.raiseResult(RaiseInsufficientBalance, "insufficient balance to cover truco"), nil
	}

	h.multiplier = raiseMultiplier
	if m.opponent.AcceptRaise(h.raiseView()) {
		m.logger.Debug("raise accepted", "hand", m.hands, "multiplier", h.multiplier)
		return m.raiseResult(RaiseAccepted, fmt.Sprintf("the opponent accepted, the hand is worth %dx", h.multiplier)), nil
	}
	h.forfeit()
	m.settle(SidePlayer, true)
	return m.raiseResult(RaiseFolded, "the opponent folded, the hand is yours"), nil
}

// ResetMatch starts the match over with balance, dropping points, winner and any hand in progress.
func (m *Match) ResetMatch(balance float64) {
	m.balance = roundCurrency(balance)
	m.playerPoints = 0
	m.opponentPoints = 0
	m.winner = NoSide
	m.hand = nil
	m.hands = 0
	m.logger.Debug("match reset", "balance", m.balance)
}

// State returns a snapshot of the match and of its current hand.
func (m *Match) State() Snapshot {
	s := Snapshot{
		State:               NotStarted,
		Round:               1,
		Multiplier:          baseMultiplier,
		Balance:             m.balance,
		PlayerMatchPoints:   m.playerPoints,
		OpponentMatchPoints: m.opponentPoints,
		Goal:                m.goal,
		MatchWinner:         m.winner,
	}
	if h := m.hand; h != nil {
		s.State = h.state
		s.Vira = h.vira.Label()
		s.Manilha = h.manilha.String()
		s.PlayerHand = slices.Clone(h.player)
		s.Round = h.round
		s.Multiplier = h.multiplier
		s.BaseStake = h.baseStake
		s.PlayerRounds = h.playerRounds
		s.OpponentRounds = h.opponentRounds
	}
	return s
}

func (m *Match) Balance() float64 {
	return m.balance
}

// IsOver reports whether a side reached the goal.
func (m *Match) IsOver() bool {
	return m.winner != NoSide
}

// Winner returns the side that reached the goal, or NoSide.
func (m *Match) Winner() Side {
	return m.winner
}

func (m *Match) checkActive() error {
	if m.winner != NoSide {
		return ErrMatchAlreadyOver
	}
	if m.hand == nil || m.hand.state != Active {
		return ErrHandNotActive
	}
	return nil
}

// settle applies the outcome of the current hand to balance and match points.
func (m *Match) settle(winner Side, folded bool) {
	h := m.hand
	amount := h.stake()
	switch winner {
	case SidePlayer:
		m.balance += amount
		m.playerPoints = min(m.goal, m.playerPoints+h.multiplier)
	case SideOpponent:
		m.balance -= amount
		m.opponentPoints = min(m.goal, m.opponentPoints+h.multiplier)
		amount = -amount
	}
	m.balance = roundCurrency(m.balance)
	h.state = Concluded

	switch {
	case m.playerPoints >= m.goal:
		m.winner = SidePlayer
	case m.opponentPoints >= m.goal:
		m.winner = SideOpponent
	}

	s := Settlement{
		Hand:                m.hands,
		BaseStake:           h.baseStake,
		Multiplier:          h.multiplier,
		Winner:              winner,
		Amount:              amount,
		Folded:              folded,
		Balance:             m.balance,
		PlayerMatchPoints:   m.playerPoints,
		OpponentMatchPoints: m.opponentPoints,
		MatchWinner:         m.winner,
	}
	m.logger.Info("hand settled",
		"hand", s.Hand,
		"winner", string(s.Winner),
		"amount", s.Amount,
		"balance", s.Balance,
		"player_points", s.PlayerMatchPoints,
		"opponent_points", s.OpponentMatchPoints)
	if m.winner != NoSide {
		m.logger.Info("match over", "winner", string(m.winner))
	}
	if m.recorder != nil {
		if err := m.recorder.Record(s); err != nil {
			m.logger.Error("recording settlement", "hand", s.Hand, "error", err)
		}
	}
}

func roundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}

func (m *Match) raiseResult(outcome RaiseOutcome, msg string) RaiseResult {
	return RaiseResult{
		Outcome:             outcome,
		Multiplier:          m.hand.multiplier,
		Message:             msg,
		Balance:             m.balance,
		PlayerMatchPoints:   m.playerPoints,
		OpponentMatchPoints: m.opponentPoints,
		MatchWinner:         m.winner,
	}
}
