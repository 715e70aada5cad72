package truco

import (
	"strings"
	"testing"
)

func TestManilhaRank(t *testing.T) {
	tests := []struct {
		vira     Rank
		expected Rank
	}{
		{Four, Five},
		{Five, Six},
		{Six, Seven},
		{Seven, Queen},
		{Queen, Jack},
		{Jack, King},
		{King, Ace},
		{Ace, Two},
		{Two, Three},
		{Three, Four},
	}
	for _, tt := range tests {
		t.Run(tt.vira.String(), func(t *testing.T) {
			got := ManilhaRank(tt.vira)
			if got != tt.expected {
				t.Errorf("ManilhaRank(%s) = %s, want %s", tt.vira, got, tt.expected)
			}
			if got == tt.vira {
				t.Errorf("manilha equals the vira rank %s", tt.vira)
			}
		})
	}
}

func TestStrengthFollowsRankOrder(t *testing.T) {
	manilha := Seven
	for a := Rank(0); a < NumRanks; a++ {
		for b := Rank(0); b < NumRanks; b++ {
			if a == manilha || b == manilha {
				continue
			}
			ca := Card{rank: a, suit: Paus}
			cb := Card{rank: b, suit: Ouros}
			if (Strength(ca, manilha) > Strength(cb, manilha)) != (a > b) {
				t.Fatalf("%s vs %s: strength %d vs %d", ca.Label(), cb.Label(), Strength(ca, manilha), Strength(cb, manilha))
			}
		}
	}
}

func TestManilhaBeatsEveryOtherCard(t *testing.T) {
	manilha := Four
	weakest := Card{rank: Four, suit: Ouros}
	for r := Rank(0); r < NumRanks; r++ {
		if r == manilha {
			continue
		}
		for s := Suit(0); s < NumSuits; s++ {
			c := Card{rank: r, suit: s}
			if Strength(weakest, manilha) <= Strength(c, manilha) {
				t.Fatalf("manilha %s does not beat %s", weakest.Label(), c.Label())
			}
		}
	}
}

func TestManilhaSuitOrder(t *testing.T) {
	manilha := Three
	order := []Suit{Ouros, Espadas, Copas, Paus}
	for i := 1; i < len(order); i++ {
		lower := Card{rank: manilha, suit: order[i-1]}
		higher := Card{rank: manilha, suit: order[i]}
		if Strength(higher, manilha) <= Strength(lower, manilha) {
			t.Errorf("expected %s to beat %s", higher.Describe(), lower.Describe())
		}
	}
	if got := Strength(Card{rank: manilha, suit: Paus}, manilha); got != 104 {
		t.Errorf("expected strength 104 for the manilha of paus, got %d", got)
	}
}

func TestNewCard(t *testing.T) {
	c, err := NewCard(Ace, Copas)
	if err != nil {
		t.Fatal(err)
	}
	if c.Rank() != Ace || c.Suit() != Copas {
		t.Fatalf("unexpected card %s", c.Describe())
	}
	if _, err := NewCard(NumRanks, Copas); err == nil {
		t.Fatal("expected an error for an invalid rank")
	}
	if _, err := NewCard(Ace, NumSuits); err == nil {
		t.Fatal("expected an error for an invalid suit")
	}
}

func TestCardText(t *testing.T) {
	c := Card{rank: Ace, suit: Copas}
	if c.Label() != "A♥" {
		t.Fatalf("expected A♥, got %s", c.Label())
	}
	if c.Describe() != "A de Copas" {
		t.Fatalf("expected A de Copas, got %s", c.Describe())
	}
	s := Card{rank: Queen, suit: Paus}.String()
	if !strings.HasPrefix(s, "Q") || !strings.Contains(s, "♣") {
		t.Fatalf("unexpected rendering %q", s)
	}
}
