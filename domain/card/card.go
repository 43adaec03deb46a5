package card

import "fmt"

// Kind is the type of a command card.
type Kind uint8

const (
	Quick Kind = iota
	Arts
	Buster
)

// Kinds lists every card kind in declaration order.
var Kinds = [...]Kind{Quick, Arts, Buster}

// String returns the single letter used to display the card (Q, A or B).
func (k Kind) String() string {
	switch k {
	case Quick:
		return "Q"
	case Arts:
		return "A"
	case Buster:
		return "B"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Name returns the full name of the card kind.
func (k Kind) Name() string {
	switch k {
	case Quick:
		return "Quick"
	case Arts:
		return "Arts"
	case Buster:
		return "Buster"
	default:
		return "Unknown"
	}
}

// ParseKind maps a card code to its Kind.
//
// Accepted codes are 'a' (Arts), 'b' (Buster) and 'q' (Quick), in either case.
// Any other rune yields a *CardCodeError.
func ParseKind(code rune) (Kind, error) {
	switch code {
	case 'a', 'A':
		return Arts, nil
	case 'b', 'B':
		return Buster, nil
	case 'q', 'Q':
		return Quick, nil
	}
	return 0, &CardCodeError{Code: code}
}
