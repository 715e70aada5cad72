package truco

import "testing"

type fixedSource float64

func (f fixedSource) Float64() float64 {
	return float64(f)
}

func TestHeuristicChoosesStrongestCard(t *testing.T) {
	h := NewHeuristic(fixedSource(0))
	tests := []struct {
		name     string
		cards    []Card
		manilha  Rank
		expected int
	}{
		{
			name:     "highest rank",
			cards:    []Card{{rank: Four, suit: Paus}, {rank: Three, suit: Ouros}, {rank: King, suit: Copas}},
			manilha:  Seven,
			expected: 1,
		},
		{
			name:     "manilha over three",
			cards:    []Card{{rank: Three, suit: Paus}, {rank: Four, suit: Ouros}, {rank: Seven, suit: Copas}},
			manilha:  Four,
			expected: 1,
		},
		{
			name:     "stronger manilha suit",
			cards:    []Card{{rank: Ace, suit: Ouros}, {rank: Ace, suit: Paus}},
			manilha:  Ace,
			expected: 1,
		},
		{
			name:     "first of equal cards",
			cards:    []Card{{rank: Five, suit: Ouros}, {rank: King, suit: Espadas}, {rank: King, suit: Copas}},
			manilha:  Four,
			expected: 1,
		},
		{
			name:     "single card",
			cards:    []Card{{rank: Five, suit: Ouros}},
			manilha:  Four,
			expected: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.ChooseCard(tt.cards, tt.manilha); got != tt.expected {
				t.Errorf("ChooseCard() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestHeuristicAcceptRaise(t *testing.T) {
	strong := []Card{{rank: Five, suit: Paus}, {rank: Five, suit: Copas}, {rank: Three, suit: Ouros}}
	weak := []Card{{rank: Four, suit: Paus}, {rank: Six, suit: Copas}, {rank: Seven, suit: Ouros}}
	// average 20.2 with Five as manilha: above the base threshold, below the ahead one
	borderline := []Card{
		{rank: Five, suit: Ouros},
		{rank: Four, suit: Ouros},
		{rank: Four, suit: Espadas},
		{rank: Four, suit: Copas},
		{rank: Four, suit: Paus},
	}
	tests := []struct {
		name     string
		view     RaiseView
		roll     float64
		expected bool
	}{
		{"strong hand", RaiseView{Cards: strong, Manilha: Five}, 0.99, true},
		{"weak hand lucky roll", RaiseView{Cards: weak, Manilha: Five}, 0.39, true},
		{"weak hand folds", RaiseView{Cards: weak, Manilha: Five}, 0.4, false},
		{"borderline even", RaiseView{Cards: borderline, Manilha: Five}, 0.99, true},
		{"borderline behind", RaiseView{Cards: borderline, Manilha: Five, OwnRounds: 0, RivalRounds: 1}, 0.99, true},
		{"borderline ahead folds", RaiseView{Cards: borderline, Manilha: Five, OwnRounds: 1, RivalRounds: 0}, 0.99, false},
		{"no cards left", RaiseView{Manilha: Five}, 0.99, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeuristic(fixedSource(tt.roll))
			if got := h.AcceptRaise(tt.view); got != tt.expected {
				t.Errorf("AcceptRaise() = %v, want %v", got, tt.expected)
			}
		})
	}
}
