package card

import (
	"strings"
	"unicode/utf8"
)

// HandSize is the number of cards played in a turn.
const HandSize = 3

// Hand is one specific play order of three cards.
type Hand [HandSize]Kind

// Position is a slot inside a turn.
type Position uint8

const (
	First Position = iota
	Second
	Third
	// Extra is the follow-up hit after the three cards. It never holds a card.
	Extra
)

// Positions maps the index of a card in a Hand to its Position.
var Positions = [HandSize]Position{First, Second, Third}

func (p Position) String() string {
	switch p {
	case First:
		return "First"
	case Second:
		return "Second"
	case Third:
		return "Third"
	case Extra:
		return "Extra"
	default:
		return "Unknown"
	}
}

// String renders the hand as three letters, e.g. "QAB".
func (h Hand) String() string {
	var sb strings.Builder
	for _, k := range h {
		sb.WriteString(k.String())
	}
	return sb.String()
}

// Count returns how many cards of kind k the hand holds.
func (h Hand) Count(k Kind) int {
	n := 0
	for _, c := range h {
		if c == k {
			n++
		}
	}
	return n
}

// ParseHand reads a hand from exactly three card codes (see ParseKind).
// The length is checked before any code, so "ab" reports a *LengthError
// and "xyz" reports a *CardCodeError naming 'x'.
func ParseHand(codes string) (Hand, error) {
	if n := utf8.RuneCountInString(codes); n != HandSize {
		return Hand{}, &LengthError{Input: codes, Length: n}
	}
	var h Hand
	i := 0
	for _, r := range codes {
		k, err := ParseKind(r)
		if err != nil {
			return Hand{}, err
		}
		h[i] = k
		i++
	}
	return h, nil
}

// MarshalText encodes the hand as its three letter form.
func (h Hand) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText decodes a hand with ParseHand.
func (h *Hand) UnmarshalText(text []byte) error {
	parsed, err := ParseHand(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
