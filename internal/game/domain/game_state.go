package domain

import "fmt"

// RoundState is a minimal, adapted read-only-from-the-engine's-view
// window over an in-progress round: whatever C6/C7/C8 need — the current
// trick, the active trump context, and the card-memory bookkeeping
// (played cards, hands, the declarer's visible kitty, and known suit
// voids). It deliberately does not model declaration, bidding, dealing,
// kitty exchange, or scoring — phases external to this module (spec.md
// §1). A caller running a full round drives those phases itself and
// feeds the results here.
type RoundState struct {
	ID        string
	Trump     TrumpInfo
	DeckCount int
	Hands     [4]Hand
	Played    []Card
	Kitty     []Card // visible only to Declarer
	Declarer  PlayerPosition
	Trick     *Trick

	suitVoids [4]map[Suit]bool
}

// NewRoundState builds a round view from the four dealt hands and the
// round's trump context. Kitty defaults to empty; set it directly after
// construction if the declarer has exchanged with it.
func NewRoundState(id string, trump TrumpInfo, decks int, hands [4]Hand, declarer PlayerPosition) *RoundState {
	rs := &RoundState{
		ID:        id,
		Trump:     trump,
		DeckCount: decks,
		Hands:     hands,
		Declarer:  declarer,
	}
	for i := range rs.suitVoids {
		rs.suitVoids[i] = make(map[Suit]bool)
	}
	return rs
}

func (rs *RoundState) CurrentTrick() *Trick   { return rs.Trick }
func (rs *RoundState) TrumpInfo() TrumpInfo   { return rs.Trump }
func (rs *RoundState) Decks() int             { return rs.DeckCount }
func (rs *RoundState) PlayedCards() []Card    { return rs.Played }
func (rs *RoundState) Hand(p PlayerPosition) Hand { return rs.Hands[p] }

// VisibleKitty returns the kitty for the declarer and nil for everyone
// else, matching the rule that only the declarer has seen it (spec.md §4.4).
func (rs *RoundState) VisibleKitty(p PlayerPosition) []Card {
	if p == rs.Declarer {
		return rs.Kitty
	}
	return nil
}

// VoidInSuit reports whether p is known (by prior observation) to hold no
// cards of suit s.
func (rs *RoundState) VoidInSuit(p PlayerPosition, s Suit) bool {
	return rs.suitVoids[p][s]
}

// MarkVoid records that p is known to hold no cards of suit s — derived by
// the caller from observing p follow with an off-suit card at some point
// in the round.
func (rs *RoundState) MarkVoid(p PlayerPosition, s Suit) {
	rs.suitVoids[p][s] = true
}

// StartTrick opens a new trick led by the given player.
func (rs *RoundState) StartTrick(id string, leader PlayerPosition) {
	rs.Trick = NewTrick(id, leader, rs.Trump)
}

// RecordPlay removes the played cards from the player's hand and adds
// them to the played-cards memory, mirroring the bookkeeping a controller
// performs once a play has been accepted by IsValidPlay/EvaluateTrickPlay.
func (rs *RoundState) RecordPlay(p PlayerPosition, cards []Card) error {
	if !rs.Hands[p].HasAll(cards) {
		return fmt.Errorf("player %s does not hold all of the played cards", p)
	}
	rs.Hands[p] = removeCards(rs.Hands[p], cards)
	rs.Played = append(rs.Played, cards...)
	return nil
}

func removeCards(h Hand, cards []Card) Hand {
	remaining := append([]Card{}, h.Cards...)
	for _, c := range cards {
		for i, held := range remaining {
			if held.IsEqual(c) {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}
	return Hand{Cards: remaining}
}
