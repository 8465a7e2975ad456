package domain

import "errors"

// Contract-violation sentinels. These signal a caller bug, not a game-rule
// outcome, and are never returned from rule-verdict constructors. Callers
// should test with errors.Is, matching the wrapping style the rest of this
// module uses for fmt.Errorf("...: %w", err).
var (
	// ErrInvalidComparison is returned by Compare when asked to order two
	// non-trump cards from different suits — there is no total order across
	// suits, and routing such a pair through Compare is a programming error.
	ErrInvalidComparison = errors.New("invalid comparison: cross-suit non-trump cards have no order")

	// ErrMalformedCard is returned when a card set contains a duplicate
	// instance ID or a rank outside the configured domain.
	ErrMalformedCard = errors.New("malformed card")

	// ErrMixedClassMultiCombo is returned when a multi-combo analysis is
	// asked to treat cards from two different classes (two suits, or a suit
	// mixed with trump) as a single aggregate.
	ErrMixedClassMultiCombo = errors.New("multi-combo cards span more than one class")
)
