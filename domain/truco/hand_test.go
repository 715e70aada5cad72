package truco

import "testing"

func TestPlayRoundTieKeepsCounts(t *testing.T) {
	h := newHand(10, []Card{c(King, Espadas)}, []Card{c(King, Copas)}, c(Four, Ouros))
	r := h.playRound(0, Heuristic{})
	if r.winner != NoSide {
		t.Fatalf("expected a tie, got %s", r.winner)
	}
	if h.playerRounds != 0 || h.opponentRounds != 0 {
		t.Fatalf("tie changed round wins: %d-%d", h.playerRounds, h.opponentRounds)
	}
	if h.advantage != NoSide {
		t.Fatalf("tie set the advantage to %s", h.advantage)
	}
	if h.round != 2 {
		t.Fatalf("expected round 2, got %d", h.round)
	}
}

func TestAdvantageGoesToFirstDecisiveRound(t *testing.T) {
	tests := []struct {
		name      string
		player    []Card
		opponent  []Card
		moves     []int
		advantage Side
		winner    Side
	}{
		{
			name:      "opponent first, then player, then tie",
			player:    []Card{c(Four, Espadas), c(Three, Espadas), c(Six, Espadas)},
			opponent:  []Card{c(Two, Copas), c(Seven, Copas), c(Six, Copas)},
			moves:     []int{0, 0, 0},
			advantage: SideOpponent,
			winner:    SideOpponent,
		},
		{
			name:      "tie, then player, then opponent",
			player:    []Card{c(Two, Espadas), c(Ace, Espadas), c(Four, Espadas)},
			opponent:  []Card{c(Two, Copas), c(Six, Copas), c(King, Copas)},
			moves:     []int{0, 0, 0},
			advantage: SidePlayer,
			winner:    SidePlayer,
		},
		{
			name:      "all rounds tied",
			player:    []Card{c(Four, Espadas), c(Six, Espadas), c(Seven, Espadas)},
			opponent:  []Card{c(Four, Copas), c(Six, Copas), c(Seven, Copas)},
			moves:     []int{2, 1, 0},
			advantage: NoSide,
			winner:    SidePlayer,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// vira 4 makes 5 the manilha, absent from every hand above
			h := newHand(10, tt.player, tt.opponent, c(Four, Ouros))
			for i, idx := range tt.moves {
				if h.isFinished() {
					t.Fatalf("hand finished early after %d rounds", i)
				}
				h.playRound(idx, Heuristic{})
			}
			if !h.isFinished() {
				t.Fatal("hand should be finished after three rounds")
			}
			if h.round != 4 {
				t.Errorf("expected round counter 4, got %d", h.round)
			}
			if h.advantage != tt.advantage {
				t.Errorf("advantage = %q, want %q", h.advantage, tt.advantage)
			}
			if got := h.winner(); got != tt.winner {
				t.Errorf("winner = %q, want %q", got, tt.winner)
			}
		})
	}
}

func TestManilhaWinsRound(t *testing.T) {
	// vira 7 makes Q the manilha
	h := newHand(10, []Card{c(Queen, Ouros)}, []Card{c(Three, Paus)}, c(Seven, Copas))
	r := h.playRound(0, Heuristic{})
	if r.winner != SidePlayer {
		t.Fatalf("expected the manilha to win, got %q", r.winner)
	}
}

func TestHandFinishesAtTwoRoundWins(t *testing.T) {
	h := newHand(10,
		[]Card{c(Three, Paus), c(Three, Copas), c(Two, Paus)},
		[]Card{c(Four, Espadas), c(Six, Espadas), c(Seven, Espadas)},
		c(Four, Ouros))
	h.playRound(0, Heuristic{})
	if h.isFinished() {
		t.Fatal("hand finished after one round")
	}
	h.playRound(0, Heuristic{})
	if !h.isFinished() {
		t.Fatal("hand should finish at two round wins")
	}
	if h.round != 3 || len(h.player) != 1 || len(h.opponent) != 1 {
		t.Fatalf("unexpected state: round %d, %d and %d cards left", h.round, len(h.player), len(h.opponent))
	}
}

func TestForfeit(t *testing.T) {
	h := newHand(10, []Card{c(Four, Paus)}, []Card{c(Three, Paus)}, c(Four, Ouros))
	h.forfeit()
	if !h.isFinished() || h.winner() != SidePlayer {
		t.Fatal("forfeited hand must be won by the player")
	}
}
