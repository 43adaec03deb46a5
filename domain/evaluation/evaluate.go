package evaluation

import "github.com/luca-patrignani/brave-chain/domain/card"

// Result holds every distinct order of a hand ranked by each metric.
type Result struct {
	Hand     card.Hand `json:"hand"`
	ByDamage []Entry   `json:"by_damage"`
	ByNP     []Entry   `json:"by_np"`
	ByStars  []Entry   `json:"by_stars"`
}

// Evaluate parses three card codes and ranks every distinct order of them.
// Parse errors from card.ParseHand are returned unchanged.
func Evaluate(codes string) (Result, error) {
	h, err := card.ParseHand(codes)
	if err != nil {
		return Result{}, err
	}
	return EvaluateHand(h), nil
}

// EvaluateHand ranks every distinct order of h. It cannot fail.
func EvaluateHand(h card.Hand) Result {
	set := Tabulate(Combinations(h))
	return Result{
		Hand:     h,
		ByDamage: set.ByDamage(),
		ByNP:     set.ByNP(),
		ByStars:  set.ByStars(),
	}
}
