package domain

import "fmt"

// MultiComboStructure summarises a card set belonging to a single class as
// an aggregate of tractors, pairs, and singles. Singles are implicit:
// Singles() == TotalLength - 2*TotalPairs. This repository uses the
// totalPairs representation (tractor pairs + standalone pairs) rather than
// the older singles/pairs/tractors split mentioned as drift in spec.md §9 —
// see SPEC_FULL.md §6.2.
type MultiComboStructure struct {
	Class        Class
	TotalLength  int
	TotalPairs   int
	Tractors     int
	TractorSizes []int // length, in pairs, of each tractor
	IsLeading    bool
}

// Singles returns the number of unpaired cards implied by the structure.
func (s MultiComboStructure) Singles() int {
	return s.TotalLength - 2*s.TotalPairs
}

// AnalyseComponents decomposes a card set into non-overlapping combos after
// verifying every card belongs to a single class (one non-trump suit, or
// all trump). It fails with ErrMixedClassMultiCombo otherwise, and with
// ErrMalformedCard when a physical card appears twice or a suited card's
// rank lies outside Two..Ace.
func AnalyseComponents(cards []Card, t TrumpInfo) ([]Combo, error) {
	if len(cards) == 0 {
		return nil, nil
	}
	if hasDuplicateInstance(cards) {
		return nil, fmt.Errorf("analysing multi-combo components: %w", ErrMalformedCard)
	}

	class := ClassOf(cards[0], t)
	for _, c := range cards {
		if !c.IsJoker && (c.Rank < Two || c.Rank > Ace) {
			return nil, fmt.Errorf("analysing multi-combo components: %w", ErrMalformedCard)
		}
		if ClassOf(c, t) != class {
			return nil, fmt.Errorf("analysing multi-combo components: %w", ErrMixedClassMultiCombo)
		}
	}

	return Decompose(cards, t), nil
}

// GetMultiComboStructure aggregates a combo list (as returned by
// AnalyseComponents) into a MultiComboStructure summary.
func GetMultiComboStructure(combos []Combo, class Class, isLeading bool) MultiComboStructure {
	s := MultiComboStructure{Class: class, IsLeading: isLeading}
	for _, combo := range combos {
		s.TotalLength += len(combo.Cards)
		switch combo.Type {
		case ComboPair:
			s.TotalPairs++
		case ComboTractor:
			pairs := len(combo.Cards) / 2
			s.TotalPairs += pairs
			s.Tractors++
			s.TractorSizes = append(s.TractorSizes, pairs)
		}
	}
	return s
}

// MatchesRequiredComponents reports whether a following structure satisfies
// a required (led) structure: equal total length, and every structural
// measure (pairs, tractors, total tractor pairs, longest tractor) at least
// as strong. This lets a strictly-stronger structure satisfy a weaker lead
// (a tractor can satisfy a pair requirement) but never the reverse.
//
// MatchesRequiredComponents(s, s) is always true by construction (P5).
func MatchesRequiredComponents(following, required MultiComboStructure) bool {
	if following.TotalLength != required.TotalLength {
		return false
	}
	if following.TotalPairs < required.TotalPairs {
		return false
	}
	if following.Tractors < required.Tractors {
		return false
	}
	if sumInts(following.TractorSizes) < sumInts(required.TractorSizes) {
		return false
	}
	if maxInt(following.TractorSizes) < maxInt(required.TractorSizes) {
		return false
	}
	return true
}

func sumInts(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

func maxInt(xs []int) int {
	best := 0
	for _, x := range xs {
		if x > best {
			best = x
		}
	}
	return best
}
