package evaluation

import (
	"fmt"

	"github.com/luca-patrignani/brave-chain/domain/card"
	"github.com/luca-patrignani/brave-chain/domain/chain"
)

// Entry pairs a hand order with its evaluated stats.
type Entry struct {
	Hand  card.Hand       `json:"hand"`
	Stats chain.HandStats `json:"stats"`
}

// String formats the entry as a single result line, e.g.
// "BBB|dmg: 25162, np: 0.020, stars 3.7".
func (e Entry) String() string {
	return fmt.Sprintf("%s|dmg: %5.0f, np: %4.3f, stars %3.1f",
		e.Hand, e.Stats.Damage, e.Stats.NP, e.Stats.Stars)
}

// StatsFunc evaluates one hand order.
type StatsFunc func(card.Hand) chain.HandStats

type tabulator struct {
	stats StatsFunc
}

type option func(tabulator) tabulator

// WithStats replaces chain.Stats as the evaluation function.
func WithStats(fn StatsFunc) option {
	return func(t tabulator) tabulator {
		t.stats = fn
		return t
	}
}

// Set maps distinct hand orders to their stats, remembering insertion order.
type Set struct {
	entries []Entry
	index   map[card.Hand]int
}

// Tabulate evaluates each distinct hand of hands once. Hands already seen
// are skipped without being evaluated again.
func Tabulate(hands []card.Hand, opts ...option) *Set {
	t := tabulator{stats: chain.Stats}
	for _, opt := range opts {
		t = opt(t)
	}
	s := &Set{index: make(map[card.Hand]int, len(hands))}
	for _, h := range hands {
		if _, ok := s.index[h]; ok {
			continue
		}
		s.index[h] = len(s.entries)
		s.entries = append(s.entries, Entry{Hand: h, Stats: t.stats(h)})
	}
	return s
}

// Len returns the number of distinct hands in the set.
func (s *Set) Len() int {
	return len(s.entries)
}

// Get returns the stats of h, if h was tabulated.
func (s *Set) Get(h card.Hand) (chain.HandStats, bool) {
	i, ok := s.index[h]
	if !ok {
		return chain.HandStats{}, false
	}
	return s.entries[i].Stats, true
}

// Entries returns a copy of the entries in insertion order.
func (s *Set) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}
