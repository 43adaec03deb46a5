package card

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength   = errors.New("invalid hand length")
	ErrInvalidCardCode = errors.New("invalid card code")
)

// LengthError reports an input that does not hold exactly HandSize cards.
type LengthError struct {
	Input  string
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("expected %d cards, found %d in %q", HandSize, e.Length, e.Input)
}

func (e *LengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

// CardCodeError reports a character that is not a/b/q.
type CardCodeError struct {
	Code rune
}

func (e *CardCodeError) Error() string {
	return fmt.Sprintf("expected a/b/q, found %q", e.Code)
}

func (e *CardCodeError) Is(target error) bool {
	return target == ErrInvalidCardCode
}
