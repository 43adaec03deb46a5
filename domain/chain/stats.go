package chain

import (
	"fmt"

	"github.com/luca-patrignani/brave-chain/domain/card"
)

// Contribution is the base value of a single slot before hand-wide bonuses.
// Damage is a fraction of attack power; NP and Stars are per-hit values.
type Contribution struct {
	Damage float64
	NP     float64
	Stars  float64
}

// HandStats is the evaluated outcome of one hand order.
type HandStats struct {
	Damage float64 `json:"damage"`
	NP     float64 `json:"np"`
	Stars  float64 `json:"stars"`
}

var table = map[card.Kind][card.HandSize]Contribution{
	card.Buster: {
		{Damage: 1.5, NP: 0, Stars: 0.10},
		{Damage: 1.8, NP: 0, Stars: 0.15},
		{Damage: 2.1, NP: 0, Stars: 0.20},
	},
	card.Quick: {
		{Damage: 0.8, NP: 1.0, Stars: 0.80},
		{Damage: 0.96, NP: 1.5, Stars: 1.30},
		{Damage: 1.12, NP: 2.0, Stars: 1.80},
	},
	card.Arts: {
		{Damage: 1.0, NP: 3.0, Stars: 0},
		{Damage: 1.2, NP: 4.5, Stars: 0},
		{Damage: 1.4, NP: 6.0, Stars: 0},
	},
}

// CardStats returns the base contribution of card k played at position p.
//
// p must be First, Second or Third. The Extra slot never holds a card, use
// FollowUpStats for it; asking for a card at Extra panics.
func CardStats(k card.Kind, p card.Position) Contribution {
	if p >= card.Extra {
		panic(fmt.Sprintf("chain: card %s cannot be played at position %s", k.Name(), p))
	}
	row, ok := table[k]
	if !ok {
		panic(fmt.Sprintf("chain: unknown card kind %d", uint8(k)))
	}
	return row[p]
}

// FollowUpStats returns the contribution of the Extra slot, which has no card.
func FollowUpStats() Contribution {
	return Contribution{Damage: 1.0, NP: 1.0, Stars: 1.0}
}
