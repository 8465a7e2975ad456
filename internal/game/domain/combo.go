package domain

import "sort"

// ComboType is the strict classification of a set of cards.
type ComboType int

const (
	ComboInvalid ComboType = iota
	ComboSingle
	ComboPair
	ComboTractor
	ComboMulti
)

func (t ComboType) String() string {
	switch t {
	case ComboSingle:
		return "Single"
	case ComboPair:
		return "Pair"
	case ComboTractor:
		return "Tractor"
	case ComboMulti:
		return "MultiCombo"
	default:
		return "Invalid"
	}
}

// Combo is a set of cards classified as exactly one ComboType.
type Combo struct {
	Type  ComboType
	Cards []Card
}

// Class returns the class the combo's cards belong to. It assumes the combo
// is well-formed (Classify/Decompose never produce a combo spanning classes).
func (c Combo) Class(t TrumpInfo) Class {
	if len(c.Cards) == 0 {
		return Class{}
	}
	return ClassOf(c.Cards[0], t)
}

// PointValue is the sum of the combo's cards' point values.
func (c Combo) PointValue() int {
	total := 0
	for _, card := range c.Cards {
		total += card.PointValue()
	}
	return total
}

// Classify strictly classifies a card set: it returns Single/Pair/Tractor
// only when the exact input forms that combo, never ComboMulti (Classify
// decides a single playable combo; see AnalyseComponents for lead
// aggregates), and ComboInvalid otherwise.
func Classify(cards []Card, t TrumpInfo) ComboType {
	switch {
	case len(cards) == 0:
		return ComboInvalid
	case hasDuplicateInstance(cards):
		// A duplicated physical card (same instance ID twice) is malformed
		// input, never a legal Pair/Tractor — see ErrMalformedCard.
		return ComboInvalid
	case len(cards) == 1:
		return ComboSingle
	case len(cards) == 2:
		if cards[0].IsSameFace(cards[1]) {
			return ComboPair
		}
		return ComboInvalid
	case len(cards) >= 4 && len(cards)%2 == 0:
		if isTractor(cards, t) {
			return ComboTractor
		}
		return ComboInvalid
	default:
		return ComboInvalid
	}
}

// hasDuplicateInstance reports whether the same physical card (instance ID)
// appears more than once in cards.
func hasDuplicateInstance(cards []Card) bool {
	seen := make(map[string]bool, len(cards))
	for _, c := range cards {
		id := c.InstanceID()
		if seen[id] {
			return true
		}
		seen[id] = true
	}
	return false
}

// comboSlot returns a card's position in the adjacency chain it belongs to.
// Two pairs are tractor-adjacent iff their representative cards' slots
// differ by exactly 1. See SPEC_FULL.md §6.1 for the chosen trump-class
// table: jokers chain with each other; the trump-suit trump-rank pair (L3)
// and the collapsed off-suit trump-rank pair (L2) are each isolated from
// every other slot, per the spec's explicit requirement that L3 and L2
// never tractor together.
func comboSlot(c Card, t TrumpInfo) int {
	if !IsTrump(c, t) {
		return suitSequenceValue(c.Rank)
	}
	if c.IsJoker {
		if c.JokerType == SmallJoker {
			return 1
		}
		return 2
	}
	if c.Rank == t.Rank {
		if t.IsTrumpSuit(c.Suit) {
			return 100 // L3, isolated
		}
		return 200 // L2, isolated and collapsed across all off-suits
	}
	return 1000 + suitSequenceValue(c.Rank) // L1, chains with itself only
}

// isTractor reports whether cards form exactly one tractor: an even number
// >= 4 of cards partitioning into k >= 2 pairs whose slots are consecutive
// integers, all within a single class.
func isTractor(cards []Card, t TrumpInfo) bool {
	if len(cards) < 4 || len(cards)%2 != 0 {
		return false
	}

	class := ClassOf(cards[0], t)
	groups := make(map[string][]Card)
	for _, c := range cards {
		if ClassOf(c, t) != class {
			return false
		}
		groups[c.CommonID()] = append(groups[c.CommonID()], c)
	}

	slots := make([]int, 0, len(groups))
	for _, group := range groups {
		if len(group) != 2 {
			return false
		}
		slots = append(slots, comboSlot(group[0], t))
	}
	if len(slots) < 2 {
		return false
	}

	sort.Ints(slots)
	for i := 1; i < len(slots); i++ {
		if slots[i]-slots[i-1] != 1 {
			return false
		}
	}
	return true
}

// pairGroups buckets cards by commonID.
func pairGroups(cards []Card) map[string][]Card {
	groups := make(map[string][]Card)
	for _, c := range cards {
		groups[c.CommonID()] = append(groups[c.CommonID()], c)
	}
	return groups
}

// sortedPairRanks returns the commonIDs that have both copies present,
// ordered by adjacency slot ascending.
func sortedPairRanks(groups map[string][]Card, t TrumpInfo) []string {
	var ids []string
	for commonID, group := range groups {
		if len(group) == 2 {
			ids = append(ids, commonID)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		return comboSlot(groups[ids[i]][0], t) < comboSlot(groups[ids[j]][0], t)
	})
	return ids
}

// consecutiveRuns groups slot-sorted pairable commonIDs into maximal runs
// of consecutive slots (diff == 1).
func consecutiveRuns(sortedIDs []string, groups map[string][]Card, t TrumpInfo) [][]string {
	var runs [][]string
	var current []string
	var lastSlot int

	for i, id := range sortedIDs {
		slot := comboSlot(groups[id][0], t)
		if i > 0 && slot-lastSlot != 1 {
			runs = append(runs, current)
			current = nil
		}
		current = append(current, id)
		lastSlot = slot
	}
	if len(current) > 0 {
		runs = append(runs, current)
	}
	return runs
}

// IdentifyCombos returns every Single, Pair, and Tractor that can be formed
// from the given cards: one Single per card, one Pair per rank with both
// copies present, and one Tractor per contiguous sub-run (length >= 2) of
// consecutive pairable ranks.
func IdentifyCombos(cards []Card, t TrumpInfo) []Combo {
	var out []Combo
	for _, c := range cards {
		out = append(out, Combo{Type: ComboSingle, Cards: []Card{c}})
	}

	for _, classCards := range groupByClass(cards, t) {
		groups := pairGroups(classCards)
		order := sortedPairRanks(groups, t)

		for _, id := range order {
			out = append(out, Combo{Type: ComboPair, Cards: append([]Card{}, groups[id]...)})
		}

		for _, run := range consecutiveRuns(order, groups, t) {
			for start := 0; start < len(run); start++ {
				for end := start + 1; end < len(run); end++ {
					var tractorCards []Card
					for _, commonID := range run[start : end+1] {
						tractorCards = append(tractorCards, groups[commonID]...)
					}
					out = append(out, Combo{Type: ComboTractor, Cards: tractorCards})
				}
			}
		}
	}

	return out
}

// Decompose covers every input card exactly once with non-overlapping
// combos, chosen greedily by priority (Tractor > Pair > Single) then by
// length (longest first). If the greedy cover somehow fails to consume
// every card, it falls back to treating every card as its own Single — the
// documented policy from spec.md §4.2.
func Decompose(cards []Card, t TrumpInfo) []Combo {
	if len(cards) == 0 {
		return nil
	}

	var combos []Combo
	for _, classCards := range groupByClass(cards, t) {
		combos = append(combos, decomposeClass(classCards, t)...)
	}

	if !coversExactly(combos, cards) {
		return allSingles(cards)
	}
	return combos
}

func decomposeClass(cards []Card, t TrumpInfo) []Combo {
	groups := pairGroups(cards)
	order := sortedPairRanks(groups, t)
	runs := consecutiveRuns(order, groups, t)

	used := make(map[string]bool)
	var combos []Combo

	// Maximal runs of length >= 2 become a single tractor each — the run is
	// already the longest possible tractor at that position, so no further
	// longest-first tie-break is needed.
	for _, run := range runs {
		if len(run) < 2 {
			continue
		}
		var tractorCards []Card
		for _, commonID := range run {
			tractorCards = append(tractorCards, groups[commonID]...)
			used[commonID] = true
		}
		combos = append(combos, Combo{Type: ComboTractor, Cards: tractorCards})
	}

	for _, commonID := range order {
		if used[commonID] {
			continue
		}
		combos = append(combos, Combo{Type: ComboPair, Cards: append([]Card{}, groups[commonID]...)})
		used[commonID] = true
	}

	for _, c := range cards {
		if used[c.CommonID()] {
			continue
		}
		combos = append(combos, Combo{Type: ComboSingle, Cards: []Card{c}})
	}

	return combos
}

func groupByClass(cards []Card, t TrumpInfo) map[Class][]Card {
	out := make(map[Class][]Card)
	for _, c := range cards {
		class := ClassOf(c, t)
		out[class] = append(out[class], c)
	}
	return out
}

func coversExactly(combos []Combo, cards []Card) bool {
	want := make(map[string]int)
	for _, c := range cards {
		want[c.InstanceID()]++
	}
	got := make(map[string]int)
	for _, combo := range combos {
		for _, c := range combo.Cards {
			got[c.InstanceID()]++
		}
	}
	if len(want) != len(got) {
		return false
	}
	for id, n := range want {
		if got[id] != n {
			return false
		}
	}
	return true
}

func allSingles(cards []Card) []Combo {
	combos := make([]Combo, 0, len(cards))
	for _, c := range cards {
		combos = append(combos, Combo{Type: ComboSingle, Cards: []Card{c}})
	}
	return combos
}
