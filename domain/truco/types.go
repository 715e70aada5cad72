package truco

// Side identifies one of the two sides of the table. The zero value NoSide
// stands for "nobody", e.g. a tied round or a match still in progress.
type Side string

const (
	NoSide       Side = ""
	SidePlayer   Side = "player"
	SideOpponent Side = "opponent"
)

// HandState is the lifecycle state of the current hand.
type HandState string

const (
	NotStarted HandState = "not_started"
	Active     HandState = "active"
	Concluded  HandState = "concluded"
)

// RaiseOutcome is the answer to a truco request.
type RaiseOutcome string

const (
	RaiseAccepted            RaiseOutcome = "accepted"
	RaiseFolded              RaiseOutcome = "folded"
	RaiseInsufficientBalance RaiseOutcome = "insufficient_balance"
	RaiseAlreadyMaximum      RaiseOutcome = "already_maximum"
)

// PlayResult describes a round played with PlayCard.
type PlayResult struct {
	PlayerCard   Card
	OpponentCard Card
	RoundWinner  Side // NoSide on a tied round
	Round        int  // number of the round just played (1-3)

	PlayerRounds   int
	OpponentRounds int

	HandConcluded bool
	HandWinner    Side // set only when HandConcluded

	Balance             float64
	Multiplier          int
	PlayerMatchPoints   int
	OpponentMatchPoints int
	MatchWinner         Side
}

// RaiseResult describes the answer to RequestRaise.
type RaiseResult struct {
	Outcome    RaiseOutcome
	Multiplier int
	Message    string

	Balance             float64
	PlayerMatchPoints   int
	OpponentMatchPoints int
	MatchWinner         Side
}

// Accepted reports whether the stake in force after the request is the raised one
// and the hand goes on.
func (r RaiseResult) Accepted() bool {
	return r.Outcome == RaiseAccepted || r.Outcome == RaiseAlreadyMaximum
}

// Folded reports whether the opponent gave up the hand.
func (r RaiseResult) Folded() bool {
	return r.Outcome == RaiseFolded
}

// Snapshot is a read-only view of the match and of its current hand.
type Snapshot struct {
	State      HandState
	Vira       string // label of the vira, empty before the first deal
	Manilha    string // manilha rank, empty before the first deal
	PlayerHand []Card
	Round      int
	Multiplier int
	BaseStake  float64

	PlayerRounds   int
	OpponentRounds int

	Balance             float64
	PlayerMatchPoints   int
	OpponentMatchPoints int
	Goal                int
	MatchWinner         Side
}

// Settlement is the outcome of a concluded hand, as applied to the balance.
type Settlement struct {
	Hand                int     `json:"hand"`
	BaseStake           float64 `json:"base_stake"`
	Multiplier          int     `json:"multiplier"`
	Winner              Side    `json:"winner"`
	Amount              float64 `json:"amount"` // signed balance change
	Folded              bool    `json:"folded"`
	Balance             float64 `json:"balance"`
	PlayerMatchPoints   int     `json:"player_match_points"`
	OpponentMatchPoints int     `json:"opponent_match_points"`
	MatchWinner         Side    `json:"match_winner,omitempty"`
}

// Recorder receives every settlement applied by a Match.
type Recorder interface {
	Record(s Settlement) error
}
