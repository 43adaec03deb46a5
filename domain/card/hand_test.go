package card

import (
	"errors"
	"testing"
)

func TestParseHand(t *testing.T) {
	h, err := ParseHand("aab")
	if err != nil {
		t.Fatal(err)
	}
	expected := Hand{Arts, Arts, Buster}
	if h != expected {
		t.Fatalf("expected %v, got %v", expected, h)
	}
}

func TestParseHandUppercase(t *testing.T) {
	upper, err := ParseHand("ABQ")
	if err != nil {
		t.Fatal(err)
	}
	lower, err := ParseHand("abq")
	if err != nil {
		t.Fatal(err)
	}
	if upper != lower {
		t.Fatalf("expected %s, got %s", lower, upper)
	}
}

func TestParseHandInvalidCode(t *testing.T) {
	_, err := ParseHand("xyz")
	if !errors.Is(err, ErrInvalidCardCode) {
		t.Fatalf("expected ErrInvalidCardCode, got %v", err)
	}
	var codeErr *CardCodeError
	if !errors.As(err, &codeErr) {
		t.Fatalf("expected *CardCodeError, got %T", err)
	}
	if codeErr.Code != 'x' {
		t.Fatalf("expected the first invalid code 'x', got %q", codeErr.Code)
	}
}

func TestParseHandInvalidCodeAfterValid(t *testing.T) {
	_, err := ParseHand("qbz")
	var codeErr *CardCodeError
	if !errors.As(err, &codeErr) || codeErr.Code != 'z' {
		t.Fatalf("expected CardCodeError naming 'z', got %v", err)
	}
}

func TestParseHandInvalidLength(t *testing.T) {
	for _, input := range []string{"", "ab", "abqq"} {
		_, err := ParseHand(input)
		if !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("expected ErrInvalidLength for %q, got %v", input, err)
		}
		var lenErr *LengthError
		if !errors.As(err, &lenErr) {
			t.Fatalf("expected *LengthError, got %T", err)
		}
		if lenErr.Length != len(input) || lenErr.Input != input {
			t.Fatalf("expected length %d for %q, got %d", len(input), input, lenErr.Length)
		}
	}
}

func TestParseHandLengthCountsRunes(t *testing.T) {
	_, err := ParseHand("aé")
	var lenErr *LengthError
	if !errors.As(err, &lenErr) || lenErr.Length != 2 {
		t.Fatalf("expected length 2, got %v", err)
	}
}

func TestHandString(t *testing.T) {
	h := Hand{Quick, Arts, Buster}
	if h.String() != "QAB" {
		t.Fatalf("expected QAB, got %s", h.String())
	}
}

func TestHandCount(t *testing.T) {
	h := Hand{Buster, Quick, Buster}
	if h.Count(Buster) != 2 || h.Count(Quick) != 1 || h.Count(Arts) != 0 {
		t.Fatalf("unexpected counts for %s", h)
	}
}

func TestPositions(t *testing.T) {
	expected := []Position{First, Second, Third}
	for i, p := range Positions {
		if p != expected[i] {
			t.Fatalf("expected %s at index %d, got %s", expected[i], i, p)
		}
	}
}

func TestHandTextRoundTrip(t *testing.T) {
	h := Hand{Buster, Arts, Quick}
	text, err := h.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "BAQ" {
		t.Fatalf("expected BAQ, got %s", text)
	}
	var decoded Hand
	if err := decoded.UnmarshalText([]byte("baq")); err != nil {
		t.Fatal(err)
	}
	if decoded != h {
		t.Fatalf("expected %s, got %s", h, decoded)
	}
	if err := decoded.UnmarshalText([]byte("bx")); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}
