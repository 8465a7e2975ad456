package domain

import "fmt"

// VoidStatus records which of the other three players are known to hold
// no cards of the led suit.
type VoidStatus struct {
	AllOpponentsVoid bool
	VoidPlayers      []PlayerPosition
}

// UnbeatableStatus records which components of a leading multi-combo, if
// any, could still be beaten by an opponent.
type UnbeatableStatus struct {
	AllUnbeatable      bool
	BeatableComponents []Combo
}

// Verdict is the structured result of validating a leading multi-combo.
// Reasons accumulates every failed check, not just the first, so a caller
// (UI or AI layer) can explain the rejection in full.
type Verdict struct {
	Valid            bool
	Reasons          []string
	VoidStatus       VoidStatus
	UnbeatableStatus UnbeatableStatus
}

// ValidateLeadingMultiCombo decides whether cards can legally be led as a
// multi-combo: every card must belong to one non-trump suit, the set must
// decompose into at least two non-overlapping components, and either every
// other player is known void in that suit or every component is unbeatable
// (C5). gs supplies the card-memory inputs (played cards, the leader's own
// hand, visible kitty, and suit-void tracking) that this module does not
// own — see spec.md §1.
func ValidateLeadingMultiCombo(cards []Card, gs GameStateView, playerID PlayerPosition) Verdict {
	var reasons []string

	components, err := AnalyseComponents(cards, gs.TrumpInfo())
	if err != nil {
		return Verdict{Valid: false, Reasons: []string{err.Error()}}
	}
	if len(cards) == 0 {
		return Verdict{Valid: false, Reasons: []string{"no cards supplied"}}
	}

	class := ClassOf(cards[0], gs.TrumpInfo())
	if class.Trump {
		reasons = append(reasons, "a leading multi-combo may not be trump")
	}
	if len(components) < 2 {
		reasons = append(reasons, "a leading multi-combo requires at least two components")
	}

	voidStatus := computeVoidStatus(class, gs, playerID)

	unbeatableStatus := computeUnbeatableStatus(components, class, gs, playerID)

	if !voidStatus.AllOpponentsVoid && !unbeatableStatus.AllUnbeatable {
		reasons = append(reasons, "neither all opponents are void in the suit nor are all components unbeatable")
	}

	return Verdict{
		Valid:            len(reasons) == 0,
		Reasons:          reasons,
		VoidStatus:       voidStatus,
		UnbeatableStatus: unbeatableStatus,
	}
}

func computeVoidStatus(class Class, gs GameStateView, playerID PlayerPosition) VoidStatus {
	var voidPlayers []PlayerPosition
	for _, other := range playerID.Others() {
		if gs.VoidInSuit(other, class.Suit) {
			voidPlayers = append(voidPlayers, other)
		}
	}
	return VoidStatus{
		AllOpponentsVoid: len(voidPlayers) == 3,
		VoidPlayers:      voidPlayers,
	}
}

func computeUnbeatableStatus(components []Combo, class Class, gs GameStateView, playerID PlayerPosition) UnbeatableStatus {
	var beatable []Combo
	for _, combo := range components {
		unbeatable := IsComboUnbeatable(
			combo, class,
			gs.PlayedCards(),
			gs.Hand(playerID).Cards,
			gs.VisibleKitty(playerID),
			gs.TrumpInfo(),
			gs.Decks(),
		)
		if !unbeatable {
			beatable = append(beatable, combo)
		}
	}
	return UnbeatableStatus{
		AllUnbeatable:      len(beatable) == 0,
		BeatableComponents: beatable,
	}
}

// GameStateView is the minimal read-only contract C6/C7/C8 need from a
// live game: the current trick, the active trump context, and the
// card-memory bookkeeping (played cards, hands, visible kitty, suit
// voids) that a real controller tracks over a round but this module does
// not own (spec.md §1, §2).
type GameStateView interface {
	CurrentTrick() *Trick
	TrumpInfo() TrumpInfo
	Decks() int
	PlayedCards() []Card
	Hand(player PlayerPosition) Hand
	VisibleKitty(player PlayerPosition) []Card
	VoidInSuit(player PlayerPosition, suit Suit) bool
}

// ErrNoCurrentTrick names the missing-trick condition for callers. No
// function in this package returns it: IsValidPlay reports a nil
// gs.CurrentTrick() as false, and EvaluateTrickPlay reports a trick without
// a lead as a non-legal result.
var ErrNoCurrentTrick = fmt.Errorf("no current trick")
