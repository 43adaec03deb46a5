package chain

import "github.com/luca-patrignani/brave-chain/domain/card"

// Detect reports whether all three cards of the hand share a kind, and which.
func Detect(h card.Hand) (card.Kind, bool) {
	var counts [len(card.Kinds)]int
	for _, k := range h {
		counts[k]++
		if counts[k] == card.HandSize {
			return k, true
		}
	}
	return 0, false
}
