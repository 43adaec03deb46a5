package chain

import "github.com/luca-patrignani/brave-chain/domain/card"

const (
	AttackPower = 7000.0
	Hits        = 2.0
	NPRate      = 0.01
	StarRate    = 0.1
)

const (
	damageScale        = 0.23
	firstBusterBonus   = 0.5
	firstArtsBonus     = 1.0
	busterChainBonus   = 0.2
	quickChainBonus    = 0.2
	artsChainNP        = 0.2
	quickChainStars    = 10.0
	followUpModifier   = 2.0
	chainFollowUpBonus = 3.5
)

// Stats evaluates one hand order.
//
// The three cards are looked up in CardStats at their positions and a
// follow-up slot (FollowUpStats) is appended. The first card colours every
// slot: a Buster opener adds damage, an Arts opener adds NP. Chains add
// their bonus to every slot and raise the follow-up modifier.
func Stats(h card.Hand) HandStats {
	kind, isChain := Detect(h)
	is := func(k card.Kind) bool { return isChain && kind == k }

	var firstBuster, firstArts float64
	switch h[card.First] {
	case card.Buster:
		firstBuster = firstBusterBonus
	case card.Arts:
		firstArts = firstArtsBonus
	}

	var busterChain, quickChain float64
	if is(card.Buster) {
		busterChain = busterChainBonus
	}
	if is(card.Quick) {
		quickChain = quickChainBonus
	}

	slots := make([]Contribution, 0, card.HandSize+1)
	for i, p := range card.Positions {
		slots = append(slots, CardStats(h[i], p))
	}
	slots = append(slots, FollowUpStats())

	var acc HandStats
	if is(card.Arts) {
		acc.NP = artsChainNP
	}
	if is(card.Quick) {
		acc.Stars = quickChainStars
	}

	for i, s := range slots {
		modifier := 1.0
		if i == int(card.Extra) {
			modifier = followUpModifier
			if isChain {
				modifier = chainFollowUpBonus
			}
		}
		acc.Damage += damageScale*modifier*AttackPower*(firstBuster+s.Damage) + AttackPower*busterChain
		acc.NP += Hits * NPRate * (firstArts + s.NP)
		acc.Stars += Hits * (StarRate + quickChain + s.Stars)
	}
	return acc
}
