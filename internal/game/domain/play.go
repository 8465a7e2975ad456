package domain

// IsValidPlay checks a proposed follow against the hand it is drawn from
// and the trick it follows, applying the rules of §4.6 in order: card
// provenance, card count, suit-following, and structure matching (either
// Single/Pair/Tractor matching or MultiCombo component matching,
// depending on what was led).
func IsValidPlay(play []Card, hand Hand, playerID PlayerPosition, gs GameStateView) bool {
	trick := gs.CurrentTrick()
	if trick == nil {
		return false
	}
	lead := trick.LeadPlay()
	if lead == nil {
		return false
	}
	t := gs.TrumpInfo()

	if !hand.HasAll(play) {
		return false
	}
	if len(play) != len(lead.Cards) {
		return false
	}

	ledClass := ClassOf(lead.Cards[0], t)
	handLedClassCount := hand.CountInClass(ledClass, t)
	required := len(play)
	if handLedClassCount < required {
		required = handLedClassCount
	}
	if countInClass(play, ledClass, t) < required {
		return false
	}

	leadType := Classify(lead.Cards, t)
	if leadType == ComboInvalid {
		return validateMultiFollow(play, lead.Cards, ledClass, hand, t)
	}
	return validateNonMultiFollow(play, lead.Cards, ledClass, leadType, hand, t)
}

// validateNonMultiFollow handles a Single/Pair/Tractor lead (§4.6 rules 4
// and 6).
func validateNonMultiFollow(play, lead []Card, ledClass Class, leadType ComboType, hand Hand, t TrumpInfo) bool {
	if hand.IsVoidIn(ledClass, t) {
		return true // exhaustion: any |lead| cards are legal, trump overtake included
	}

	playLedClassCards := classCards(play, ledClass, t)

	switch leadType {
	case ComboPair:
		if !hasComboOfType(hand.Cards, ledClass, ComboPair, 2, t) {
			// Short of a qualifying pair: the suit-following check above
			// already forced in every ledClass card the player holds: the
			// remainder may be anything (§4.6 rule 4's final bullet).
			return true
		}
		if !hasComboOfType(playLedClassCards, ledClass, ComboPair, 2, t) {
			return false
		}
	case ComboTractor:
		requiredLen := len(lead)
		if !hasComboOfType(hand.Cards, ledClass, ComboTractor, requiredLen, t) {
			return true
		}
		if !hasComboOfType(playLedClassCards, ledClass, ComboTractor, requiredLen, t) {
			return false
		}
	}

	return Classify(play, t) == leadType
}

// validateMultiFollow handles a MultiCombo lead (§4.6 rule 5).
func validateMultiFollow(play, lead []Card, ledClass Class, hand Hand, t TrumpInfo) bool {
	leadComponents, err := AnalyseComponents(lead, t)
	if err != nil {
		return false
	}
	required := GetMultiComboStructure(leadComponents, ledClass, true)

	handLedClassCount := hand.CountInClass(ledClass, t)
	playLedClassCount := countInClass(play, ledClass, t)

	switch {
	case handLedClassCount >= required.TotalLength:
		if playLedClassCount != len(play) {
			return false
		}
		following := GetMultiComboStructure(Decompose(play, t), ledClass, false)
		return MatchesRequiredComponents(following, required)
	case handLedClassCount == 0:
		return true // exhaustion rule
	default:
		for _, c := range hand.CardsInClass(ledClass, t) {
			if !containsCard(play, c) {
				return false
			}
		}
		return true
	}
}

func countInClass(cards []Card, class Class, t TrumpInfo) int {
	n := 0
	for _, c := range cards {
		if ClassOf(c, t) == class {
			n++
		}
	}
	return n
}

func classCards(cards []Card, class Class, t TrumpInfo) []Card {
	var out []Card
	for _, c := range cards {
		if ClassOf(c, t) == class {
			out = append(out, c)
		}
	}
	return out
}

func hasComboOfType(cards []Card, class Class, comboType ComboType, minLen int, t TrumpInfo) bool {
	for _, combo := range IdentifyCombos(classCards(cards, class, t), t) {
		if combo.Type == comboType && len(combo.Cards) >= minLen {
			return true
		}
	}
	return false
}

func containsCard(cards []Card, target Card) bool {
	for _, c := range cards {
		if c.IsEqual(target) {
			return true
		}
	}
	return false
}
