package evaluation

import (
	"slices"

	"github.com/luca-patrignani/brave-chain/domain/chain"
)

// Metric selects one value out of HandStats.
type Metric func(chain.HandStats) float64

var (
	Damage Metric = func(s chain.HandStats) float64 { return s.Damage }
	NP     Metric = func(s chain.HandStats) float64 { return s.NP }
	Stars  Metric = func(s chain.HandStats) float64 { return s.Stars }
)

// Rank returns the entries sorted by m, highest first. Entries with equal
// (or unordered, e.g. NaN) values keep their insertion order.
func (s *Set) Rank(m Metric) []Entry {
	ranked := s.Entries()
	slices.SortStableFunc(ranked, func(a, b Entry) int {
		return descending(m(a.Stats), m(b.Stats))
	})
	return ranked
}

func (s *Set) ByDamage() []Entry { return s.Rank(Damage) }

func (s *Set) ByNP() []Entry { return s.Rank(NP) }

func (s *Set) ByStars() []Entry { return s.Rank(Stars) }

func descending(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}
