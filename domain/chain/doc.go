// Package chain computes the outcome of playing one hand in a fixed order.
//
// # Chains
//
// A hand of three cards of the same kind forms a chain of that kind
// (Detect). Chains add bonuses: Buster chains add flat damage per card,
// Arts chains start with NP already charged, Quick chains add stars.
// Any chain also makes the follow-up hit stronger.
//
// # Formula
//
// CardStats is the per-card, per-position base table. Stats folds the three
// card contributions plus the follow-up hit (FollowUpStats) into a HandStats
// holding damage, NP gain and star generation. Stats is pure and never fails.
package chain
