// Command engine-demo exercises the card engine end to end: it deals a
// round, declares trump, and plays a single trick through
// EvaluateTrickPlay, logging each step. It replaces the HTTP services this
// repository used to ship — there is no server, database, or auth layer
// in this module (spec.md §1).
package main

import (
	"log"

	"tractor-engine/internal/common/config"
	"tractor-engine/internal/game/domain"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	log.Printf("engine-demo starting (decks=%d, tractorMinPairs=%d, followRule=%s, environment=%s)",
		cfg.Decks, cfg.TractorMinPairs, cfg.FollowRule, cfg.Environment)

	deck := domain.NewDeck(cfg.Decks)
	if err := deck.ValidateDeckComposition(cfg.Decks); err != nil {
		log.Fatal("invalid deck composition: ", err)
	}

	trump := domain.NewTrumpInfo(domain.Two, domain.Hearts)
	log.Printf("trump declared: %s", trump)

	var hands [4]domain.Hand
	for pos := domain.North; pos <= domain.West; pos++ {
		cards, err := deck.Deal(25)
		if err != nil {
			log.Fatal("failed to deal hand: ", err)
		}
		hands[pos] = domain.NewHand(cards)
	}
	kitty, err := deck.Deal(deck.Remaining())
	if err != nil {
		log.Fatal("failed to deal kitty: ", err)
	}

	round := domain.NewRoundState(uuid.NewString(), trump, cfg.Decks, hands, domain.North)
	round.Kitty = kitty

	round.StartTrick(uuid.NewString(), domain.North)
	log.Printf("trick %s opened, led by %s", round.Trick.ID, round.Trick.Leader)

	for _, pos := range round.Trick.PlayOrder() {
		hand := round.Hand(pos)
		play := chooseSingle(hand, round.Trick, trump)

		if err := round.Trick.AddPlay(pos, play); err != nil {
			log.Fatalf("rejected play by %s: %v", pos, err)
		}
		if err := round.RecordPlay(pos, play); err != nil {
			log.Fatalf("bookkeeping failure for %s: %v", pos, err)
		}
		log.Printf("%s played %s", pos, play[0])
	}

	log.Printf("trick %s complete: winner=%s points=%d",
		round.Trick.ID, round.Trick.WinningPlayer, round.Trick.Points)
}

// chooseSingle picks the player's first card if it is a legal follow (or
// the trick has no lead yet), otherwise scans the hand for one that is.
func chooseSingle(hand domain.Hand, trick *domain.Trick, trump domain.TrumpInfo) []domain.Card {
	if trick.State() == domain.TrickOpen {
		return hand.Cards[:1]
	}
	for _, c := range hand.Cards {
		candidate := []domain.Card{c}
		if domain.EvaluateTrickPlay(candidate, trick, trump, hand).IsLegal {
			return candidate
		}
	}
	return hand.Cards[:1]
}
