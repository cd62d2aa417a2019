// Package scoring turns a sequence of Likert answers into trait totals and a
// four-letter type code.
package scoring

import "github.com/abhisek/shiseikan/internal/trait"

// Midpoint is the neutral value of the 1-10 scale. An answer at exactly the
// midpoint contributes nothing to either pole.
const Midpoint = 5.5

// Answer is one recorded response: the score given and the pair copied from
// the question it answers.
type Answer struct {
	Score float64
	Pair  trait.Pair
}

// Accumulator holds the running total for each trait, indexed in trait.All
// order.
type Accumulator [8]float64

// Get returns the total for t, or zero for an unknown trait.
func (a Accumulator) Get(t trait.Trait) float64 {
	i := t.Index()
	if i < 0 {
		return 0
	}
	return a[i]
}

func (a *Accumulator) add(t trait.Trait, v float64) {
	if i := t.Index(); i >= 0 {
		a[i] += v
	}
}

// Accumulate sums the contribution of every answer. Scores below the
// midpoint credit the pair's low pole by (Midpoint - score); scores at or
// above it credit the high pole by (score - Midpoint).
func Accumulate(answers []Answer) Accumulator {
	var acc Accumulator
	for _, a := range answers {
		if a.Score < Midpoint {
			acc.add(a.Pair.Low(), Midpoint-a.Score)
		} else {
			acc.add(a.Pair.High(), a.Score-Midpoint)
		}
	}
	return acc
}

// Decide picks one trait per canonical pair. Ties go to the first trait of
// the pair.
func Decide(acc Accumulator) trait.TypeCode {
	pairs := trait.Pairs()
	picked := make([]trait.Trait, 0, len(pairs))
	for _, p := range pairs {
		if acc.Get(p.Low()) >= acc.Get(p.High()) {
			picked = append(picked, p.Low())
		} else {
			picked = append(picked, p.High())
		}
	}
	return trait.NewTypeCode(picked...)
}

// DeriveType computes the type code for a completed answer sequence. An
// empty sequence yields "DSAI".
func DeriveType(answers []Answer) trait.TypeCode {
	return Decide(Accumulate(answers))
}
