package truco

import (
	"log/slog"
	"math/rand/v2"
)

type matchOption func(*Match)

// WithRand makes the match shuffle and take random decisions with rng.
// Use a seeded generator for reproducible matches.
func WithRand(rng *rand.Rand) matchOption {
	return func(m *Match) {
		m.rng = rng
	}
}

// WithOpponent replaces the default Heuristic opponent.
func WithOpponent(opp Opponent) matchOption {
	return func(m *Match) {
		m.opponent = opp
	}
}

func WithLogger(logger *slog.Logger) matchOption {
	return func(m *Match) {
		m.logger = logger
	}
}

// WithRecorder sends every settlement to r, e.g. a ledger.Blockchain.
func WithRecorder(r Recorder) matchOption {
	return func(m *Match) {
		m.recorder = r
	}
}
