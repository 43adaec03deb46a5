// Package evaluation answers the question "in which order should this hand
// be played?".
//
// # Pipeline
//
// Combinations enumerates every distinct order of a hand, treating repeated
// kinds as indistinguishable. Tabulate evaluates each order once with
// chain.Stats and keeps the results in insertion order inside a Set. The Set
// ranks its entries by damage, NP or stars, descending, with ties kept in
// insertion order.
//
// Evaluate runs the whole pipeline on a three letter code such as "aab".
//
// # Duplicates
//
// Orderings is the naive generator: it permutes positions, so a hand with
// repeated kinds yields the same order several times. Tabulate collapses
// duplicates regardless of the generator it is fed with.
package evaluation
