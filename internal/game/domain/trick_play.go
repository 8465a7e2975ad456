package domain

// TrickPlayResult is the structured outcome of evaluating a candidate
// play against the trick in progress. Strength is a coarse scalar (not a
// precise score) for an AI layer to rank candidates; it is not used by
// anything in this package.
type TrickPlayResult struct {
	CanBeat  bool
	IsLegal  bool
	Strength int
	Reason   string
}

// EvaluateTrickPlay checks a candidate play's legality against the trick
// in progress and, if legal, whether it overtakes the current winner.
// Legality reuses the same suit-following and structure rules as
// IsValidPlay (§4.6); only the beating computation (§4.7 step 5) is new
// here.
func EvaluateTrickPlay(play []Card, trick *Trick, t TrumpInfo, hand Hand) TrickPlayResult {
	lead := trick.LeadPlay()
	if lead == nil {
		return TrickPlayResult{Reason: "trick has no lead to evaluate against"}
	}
	if len(play) != len(lead.Cards) {
		return TrickPlayResult{IsLegal: false, Strength: 25, Reason: "play does not match lead length"}
	}
	if !hand.HasAll(play) {
		return TrickPlayResult{IsLegal: false, Strength: 25, Reason: "player does not hold every card played"}
	}

	ledClass := ClassOf(lead.Cards[0], t)
	leadType := Classify(lead.Cards, t)

	required := len(play)
	if n := hand.CountInClass(ledClass, t); n < required {
		required = n
	}
	if countInClass(play, ledClass, t) < required {
		return TrickPlayResult{IsLegal: false, Strength: 25, Reason: "play does not follow the led suit"}
	}

	var legal bool
	if leadType == ComboInvalid {
		legal = validateMultiFollow(play, lead.Cards, ledClass, hand, t)
	} else {
		legal = validateNonMultiFollow(play, lead.Cards, ledClass, leadType, hand, t)
	}
	if !legal {
		return TrickPlayResult{IsLegal: false, Strength: 25, Reason: "play does not satisfy suit-following or structure rules"}
	}

	winning := trick.WinningPlay()
	winningCards := lead.Cards
	if winning != nil {
		winningCards = winning.Cards
	}

	beats := Beats(lead.Cards, winningCards, play, t)
	strength := 25
	switch {
	case beats:
		strength = 75
	case cardsEqual(winningCards, play):
		strength = 50
	}

	return TrickPlayResult{IsLegal: true, CanBeat: beats, Strength: strength}
}

// Beats reports whether challenger overtakes currentWinner, given what was
// led. Trump beats non-trump; non-trump never beats trump; two non-trump
// plays in different suits never beat each other. Against a MultiCombo
// lead, only a trump follow can beat, and it is compared under the lead's
// dominant required combo type (tractor > pair > single) rather than
// card-for-card.
func Beats(lead, currentWinner, challenger []Card, t TrumpInfo) bool {
	if Classify(lead, t) == ComboInvalid {
		return beatsMultiComboLead(lead, currentWinner, challenger, t)
	}
	return beatsSimpleLead(currentWinner, challenger, t)
}

func beatsSimpleLead(currentWinner, challenger []Card, t TrumpInfo) bool {
	winnerClass := ClassOf(currentWinner[0], t)
	challengerClass := ClassOf(challenger[0], t)

	switch {
	case challengerClass.Trump && !winnerClass.Trump:
		return true
	case !challengerClass.Trump && winnerClass.Trump:
		return false
	case !challengerClass.Trump && !winnerClass.Trump && challengerClass.Suit != winnerClass.Suit:
		return false
	}

	ord, err := Compare(representativeCard(challenger, t), representativeCard(currentWinner, t), t)
	return err == nil && ord == Greater
}

func beatsMultiComboLead(lead, currentWinner, challenger []Card, t TrumpInfo) bool {
	challengerClass := ClassOf(challenger[0], t)
	if !challengerClass.Trump {
		return false
	}

	leadComponents, err := AnalyseComponents(lead, t)
	if err != nil {
		return false
	}
	structure := GetMultiComboStructure(leadComponents, ClassOf(lead[0], t), true)
	requiredType := dominantComboType(structure)

	challengerBest, ok := highestOfType(challenger, requiredType, t)
	if !ok {
		return false
	}
	winnerBest, ok := highestOfType(currentWinner, requiredType, t)
	if !ok {
		return true
	}

	ord, err := Compare(challengerBest, winnerBest, t)
	return err == nil && ord == Greater
}

// dominantComboType is the strongest structural requirement a leading
// multi-combo imposes: a tractor outranks a pair, which outranks a single.
func dominantComboType(s MultiComboStructure) ComboType {
	switch {
	case s.Tractors > 0:
		return ComboTractor
	case s.TotalPairs > 0:
		return ComboPair
	default:
		return ComboSingle
	}
}

// highestOfType returns the strongest representative card among the
// combos of the given type found within cards — "a higher combo type may
// supply a lower type": a pair's top card still counts as a single.
func highestOfType(cards []Card, comboType ComboType, t TrumpInfo) (Card, bool) {
	var best Card
	found := false
	for _, combo := range IdentifyCombos(cards, t) {
		if combo.Type != comboType {
			continue
		}
		rep := representativeCard(combo.Cards, t)
		if !found || isHigher(rep, best, t) {
			best = rep
			found = true
		}
	}
	return best, found
}

// representativeCard is the strongest card in a same-class combo, used as
// its stand-in for comparison purposes.
func representativeCard(cards []Card, t TrumpInfo) Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if isHigher(c, best, t) {
			best = c
		}
	}
	return best
}

func isHigher(a, b Card, t TrumpInfo) bool {
	ord, err := Compare(a, b, t)
	return err == nil && ord == Greater
}

func cardsEqual(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].IsEqual(b[i]) {
			return false
		}
	}
	return true
}
