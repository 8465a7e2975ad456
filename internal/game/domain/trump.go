package domain

import "fmt"

// TrumpInfo pins down the dynamic (rank, suit) pair that defines trump for a
// round. Suit is nil when the declarer chose not to declare a suit ("skip"),
// in which case only trump-rank cards and jokers are trump.
type TrumpInfo struct {
	Rank Rank
	Suit *Suit
}

// NewTrumpInfo builds a TrumpInfo with a declared trump suit.
func NewTrumpInfo(rank Rank, suit Suit) TrumpInfo {
	s := suit
	return TrumpInfo{Rank: rank, Suit: &s}
}

// NewTrumpInfoNoSuit builds a TrumpInfo for a skipped trump-suit
// declaration: only the trump rank and the jokers are trump.
func NewTrumpInfoNoSuit(rank Rank) TrumpInfo {
	return TrumpInfo{Rank: rank}
}

// HasSuit reports whether a trump suit was declared.
func (t TrumpInfo) HasSuit() bool {
	return t.Suit != nil
}

// IsTrumpSuit reports whether s is the declared trump suit.
func (t TrumpInfo) IsTrumpSuit(s Suit) bool {
	return t.Suit != nil && *t.Suit == s
}

func (t TrumpInfo) String() string {
	if t.Suit == nil {
		return fmt.Sprintf("rank=%s suit=<none>", t.Rank)
	}
	return fmt.Sprintf("rank=%s suit=%s", t.Rank, t.Suit.String())
}

// Class identifies the "bucket" a combo's cards are drawn from: either the
// trump class (jokers, trump rank, trump suit, considered a single class),
// or one concrete non-trump suit. This is the "None" suit-key from the spec,
// modeled as an explicit flag instead of a sentinel Suit value so the zero
// Class is never confused with Spades.
type Class struct {
	Trump bool
	Suit  Suit
}

// TrumpClass is the singleton trump bucket.
func TrumpClass() Class { return Class{Trump: true} }

// SuitClass is the bucket for a concrete non-trump suit.
func SuitClass(s Suit) Class { return Class{Suit: s} }

func (c Class) String() string {
	if c.Trump {
		return "Trump"
	}
	return c.Suit.String()
}

// IsTrump reports whether a card belongs to the trump class: any joker, any
// trump-rank card, or (if a trump suit was declared) any card of that suit.
func IsTrump(c Card, t TrumpInfo) bool {
	if c.IsJoker {
		return true
	}
	if c.Rank == t.Rank {
		return true
	}
	return t.HasSuit() && c.Suit == *t.Suit
}

// ClassOf returns the class a card belongs to under the given trump context.
func ClassOf(c Card, t TrumpInfo) Class {
	if IsTrump(c, t) {
		return TrumpClass()
	}
	return SuitClass(c.Suit)
}

// Trump hierarchy levels, from L0 (lowest) to L5 (highest). L2 is deliberately a single level
// shared by every off-suit trump-rank card: all such cards compare Equal to
// each other regardless of their own suit.
const (
	LevelNonTrump      = 0 // L0: non-trump card, ordered by rank within its suit
	LevelTrumpSuitCard = 1 // L1: trump-suit, non-rank card, ordered by rank
	LevelOffSuitRank   = 2 // L2: trump-rank card in a non-trump suit
	LevelTrumpSuitRank = 3 // L3: trump-rank card in the trump suit
	LevelSmallJoker    = 4 // L4
	LevelBigJoker      = 5 // L5, highest
)

// GetTrumpLevel is total: every card maps to exactly one of the six levels
// above given a trump context.
func GetTrumpLevel(c Card, t TrumpInfo) int {
	if c.IsJoker {
		if c.JokerType == BigJoker {
			return LevelBigJoker
		}
		return LevelSmallJoker
	}
	if c.Rank == t.Rank {
		if t.IsTrumpSuit(c.Suit) {
			return LevelTrumpSuitRank
		}
		return LevelOffSuitRank
	}
	if t.IsTrumpSuit(c.Suit) {
		return LevelTrumpSuitCard
	}
	return LevelNonTrump
}
