package domain

// IsComboUnbeatable decides whether a non-trump combo can still be beaten,
// assuming every unseen card is distributed among the other three players.
//
// For a non-trump suit combo, it returns true iff no legal higher-ranked
// combo of the same type and length, in the same suit, can be formed from
// the cards not yet accounted for in playedCards, ownHand, or
// visibleKitty. Trump-class unbeatability is not computed (conservatively
// false), per spec.md §4.4 step 1.
//
// Accounting is asymmetric by combo type: a single is accounted for at the
// instance level (a specific copy must be seen to remove it from
// contention); a pair or tractor's ranks are accounted for at the commonID
// level (seeing either copy of a rank is enough to break any pair an
// opponent might hold of that rank) — see spec.md §4.4 step 3 and its
// rationale.
//
// visibleKitty should be empty for every caller except the round's
// declarer, who alone has seen the kitty.
func IsComboUnbeatable(combo Combo, class Class, playedCards, ownHand, visibleKitty []Card, t TrumpInfo, decks int) bool {
	if class.Trump {
		return false
	}

	memory := NewCardMemoryFrom(playedCards, ownHand, visibleKitty)
	complement := suitComplement(class.Suit, t, decks)

	var unseen []Card
	if combo.Type == ComboSingle {
		for _, c := range complement {
			if !memory.HasInstance(c) {
				unseen = append(unseen, c)
			}
		}
	} else {
		for _, c := range complement {
			if !memory.AnyCopySeen(c) {
				unseen = append(unseen, c)
			}
		}
	}

	requiredLen := len(combo.Cards)
	for _, candidate := range IdentifyCombos(unseen, t) {
		if candidate.Type != combo.Type || len(candidate.Cards) != requiredLen {
			continue
		}
		if highestRankValue(candidate.Cards) > highestRankValue(combo.Cards) {
			return false
		}
	}
	return true
}

// suitComplement enumerates every card that can belong to a non-trump suit:
// every rank except the trump rank (which belongs to the trump class, not
// this suit), each appearing `decks` times.
func suitComplement(suit Suit, t TrumpInfo, decks int) []Card {
	var out []Card
	for rank := Two; rank <= Ace; rank++ {
		if rank == t.Rank {
			continue
		}
		for i := 0; i < decks; i++ {
			out = append(out, NewCard(suit, rank, i))
		}
	}
	return out
}

// highestRankValue returns the highest in-suit sequence value among cards
// that all share one non-trump suit — the representative strength of a
// Single/Pair/Tractor combo for unbeatability comparison.
func highestRankValue(cards []Card) int {
	best := -1
	for _, c := range cards {
		if v := suitSequenceValue(c.Rank); v > best {
			best = v
		}
	}
	return best
}
