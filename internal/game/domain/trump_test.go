package domain

import "testing"

func TestIsTrump(t *testing.T) {
	trump := NewTrumpInfo(Two, Hearts)

	tests := []struct {
		name     string
		card     Card
		expected bool
	}{
		{"big joker is trump", NewJoker(BigJoker, 0), true},
		{"small joker is trump", NewJoker(SmallJoker, 0), true},
		{"trump rank in trump suit is trump", NewCard(Hearts, Two, 0), true},
		{"trump rank off-suit is trump", NewCard(Spades, Two, 0), true},
		{"trump suit non-rank is trump", NewCard(Hearts, King, 0), true},
		{"off-suit non-rank is not trump", NewCard(Spades, King, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTrump(tt.card, trump); got != tt.expected {
				t.Errorf("IsTrump() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsTrump_NoSuitDeclared(t *testing.T) {
	trump := NewTrumpInfoNoSuit(Two)

	if IsTrump(NewCard(Hearts, King, 0), trump) {
		t.Error("with no trump suit declared, a non-rank card must not be trump")
	}
	if !IsTrump(NewCard(Hearts, Two, 0), trump) {
		t.Error("trump-rank cards are always trump regardless of suit declaration")
	}
	if !IsTrump(NewJoker(BigJoker, 0), trump) {
		t.Error("jokers are always trump")
	}
}

func TestClassOf(t *testing.T) {
	trump := NewTrumpInfo(Two, Hearts)

	if class := ClassOf(NewCard(Spades, King, 0), trump); class.Trump {
		t.Error("non-trump card should not classify as trump")
	}
	if class := ClassOf(NewCard(Hearts, King, 0), trump); !class.Trump {
		t.Error("trump-suit card should classify as trump")
	}
	if class := ClassOf(NewCard(Spades, Two, 0), trump); !class.Trump {
		t.Error("trump-rank card should classify as trump regardless of suit")
	}
}

func TestGetTrumpLevel_Hierarchy(t *testing.T) {
	trump := NewTrumpInfo(Two, Hearts)

	levels := []struct {
		name string
		card Card
		want int
	}{
		{"big joker", NewJoker(BigJoker, 0), LevelBigJoker},
		{"small joker", NewJoker(SmallJoker, 0), LevelSmallJoker},
		{"trump rank in trump suit", NewCard(Hearts, Two, 0), LevelTrumpSuitRank},
		{"trump rank off suit", NewCard(Spades, Two, 0), LevelOffSuitRank},
		{"trump suit non-rank", NewCard(Hearts, King, 0), LevelTrumpSuitCard},
		{"non-trump", NewCard(Spades, King, 0), LevelNonTrump},
	}

	for _, tt := range levels {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetTrumpLevel(tt.card, trump); got != tt.want {
				t.Errorf("GetTrumpLevel() = %d, want %d", got, tt.want)
			}
		})
	}

	// Big joker must strictly outrank every other level.
	if LevelBigJoker <= LevelSmallJoker || LevelSmallJoker <= LevelTrumpSuitRank ||
		LevelTrumpSuitRank <= LevelOffSuitRank || LevelOffSuitRank <= LevelTrumpSuitCard ||
		LevelTrumpSuitCard <= LevelNonTrump {
		t.Error("trump level constants must be in strictly ascending hierarchy order")
	}
}

func TestOffSuitTrumpRank_CollapsesToOneLevel(t *testing.T) {
	trump := NewTrumpInfo(Two, Hearts)

	a := GetTrumpLevel(NewCard(Spades, Two, 0), trump)
	b := GetTrumpLevel(NewCard(Clubs, Two, 0), trump)
	c := GetTrumpLevel(NewCard(Diamonds, Two, 0), trump)

	if a != b || b != c {
		t.Error("off-suit trump-rank cards of every suit must collapse to the same level (L2)")
	}
}
