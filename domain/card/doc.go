// Package card defines the vocabulary shared by the chain calculator:
// command card kinds, three-card hands and positions inside a hand.
//
// # Core Types
//
// Kind: one of Quick, Arts or Buster.
//
// Hand: an ordered play of exactly three cards. Hands are comparable and
// can be used as map keys.
//
// Position: First, Second, Third or Extra. Extra is the virtual follow-up
// hit after the three played cards and never holds a card.
//
// # Parsing
//
// ParseHand turns a three letter code such as "qab" (case-insensitive)
// into a Hand. Malformed input yields a *LengthError or a *CardCodeError,
// both of which match ErrInvalidLength and ErrInvalidCardCode through
// errors.Is.
package card
