package card

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	cases := map[rune]Kind{
		'a': Arts, 'A': Arts,
		'b': Buster, 'B': Buster,
		'q': Quick, 'Q': Quick,
	}
	for code, expected := range cases {
		k, err := ParseKind(code)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", code, err)
		}
		if k != expected {
			t.Fatalf("expected %s for %q, got %s", expected.Name(), code, k.Name())
		}
	}
}

func TestParseKindInvalid(t *testing.T) {
	_, err := ParseKind('x')
	if !errors.Is(err, ErrInvalidCardCode) {
		t.Fatalf("expected ErrInvalidCardCode, got %v", err)
	}
	var codeErr *CardCodeError
	if !errors.As(err, &codeErr) || codeErr.Code != 'x' {
		t.Fatalf("expected CardCodeError naming 'x', got %v", err)
	}
}

func TestKindString(t *testing.T) {
	if Quick.String() != "Q" || Arts.String() != "A" || Buster.String() != "B" {
		t.Fatalf("unexpected letters %s%s%s", Quick, Arts, Buster)
	}
}
