package evaluation

import (
	"github.com/luca-patrignani/brave-chain/domain/card"
	"gonum.org/v1/gonum/stat/combin"
)

// Combinations returns every distinct order of the cards in h exactly once.
//
// Kinds are tried in order of first appearance in h, so the output is
// deterministic: "aab" yields AAB, ABA, BAA.
func Combinations(h card.Hand) []card.Hand {
	var kinds []card.Kind
	remaining := make(map[card.Kind]int, len(card.Kinds))
	for _, k := range h {
		if remaining[k] == 0 {
			kinds = append(kinds, k)
		}
		remaining[k]++
	}

	var (
		result []card.Hand
		prefix card.Hand
		pick   func(depth int)
	)
	pick = func(depth int) {
		if depth == card.HandSize {
			result = append(result, prefix)
			return
		}
		for _, k := range kinds {
			if remaining[k] == 0 {
				continue
			}
			remaining[k]--
			prefix[depth] = k
			pick(depth + 1)
			remaining[k]++
		}
	}
	pick(0)
	return result
}

// Orderings returns the cards of h under every permutation of positions.
// Repeated kinds produce repeated hands.
func Orderings(h card.Hand) []card.Hand {
	perms := combin.Permutations(card.HandSize, card.HandSize)
	result := make([]card.Hand, 0, len(perms))
	for _, perm := range perms {
		var o card.Hand
		for i, j := range perm {
			o[i] = h[j]
		}
		result = append(result, o)
	}
	return result
}
