package domain

import "testing"

// TestIsComboUnbeatable_KingHeartsPair reproduces the spec's end-to-end
// scenario: with trump declared as (rank=2, suit=Spades), is a King-King
// pair of Hearts unbeatable given what has been seen of the Ace of Hearts?
func TestIsComboUnbeatable_KingHeartsPair(t *testing.T) {
	trump := NewTrumpInfo(Two, Spades)
	combo := Combo{Type: ComboPair, Cards: []Card{NewCard(Hearts, King, 0), NewCard(Hearts, King, 1)}}
	class := SuitClass(Hearts)

	tests := []struct {
		name    string
		played  []Card
		ownHand []Card
		want    bool
	}{
		{
			name:    "both aces of hearts accounted for",
			played:  []Card{NewCard(Hearts, Ace, 0), NewCard(Hearts, Ace, 1)},
			ownHand: nil,
			want:    true,
		},
		{
			name:    "only one ace of hearts seen still breaks the pair",
			played:  []Card{NewCard(Hearts, Ace, 0)},
			ownHand: nil,
			want:    true,
		},
		{
			name:    "neither ace seen leaves a higher pair possible",
			played:  nil,
			ownHand: nil,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsComboUnbeatable(combo, class, tt.played, tt.ownHand, nil, trump, 2)
			if got != tt.want {
				t.Errorf("IsComboUnbeatable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsComboUnbeatable_TrumpClassIsAlwaysConservativelyFalse(t *testing.T) {
	trump := NewTrumpInfo(Two, Spades)
	combo := Combo{Type: ComboSingle, Cards: []Card{NewJoker(BigJoker, 0)}}

	if IsComboUnbeatable(combo, TrumpClass(), nil, nil, nil, trump, 2) {
		t.Error("trump-class unbeatability must conservatively return false")
	}
}

func TestIsComboUnbeatable_MonotoneInAccountedCards(t *testing.T) {
	// P7: accounting more cards never turns an unbeatable combo beatable.
	trump := NewTrumpInfo(Two, Spades)
	combo := Combo{Type: ComboSingle, Cards: []Card{NewCard(Hearts, King, 0)}}
	class := SuitClass(Hearts)

	withoutAce := IsComboUnbeatable(combo, class, nil, nil, nil, trump, 2)
	withAce := IsComboUnbeatable(combo, class, []Card{NewCard(Hearts, Ace, 0), NewCard(Hearts, Ace, 1)}, nil, nil, trump, 2)

	if withoutAce && !withAce {
		t.Error("accounting for more cards must not reduce unbeatability")
	}
	if !withAce {
		t.Error("with both aces accounted for, the King of Hearts single should be unbeatable")
	}
}
