// Package trait defines the fixed catalog of worldview traits, the four
// opposing pairs they form, and the four-letter type codes derived from them.
package trait

import (
	"fmt"
	"strings"
)

// Trait is one pole of a worldview dimension, identified by a single letter.
type Trait byte

const (
	Fatalism      Trait = 'D'
	FreeWill      Trait = 'W'
	Spiritualism  Trait = 'S'
	Materialism   Trait = 'M'
	Acceptance    Trait = 'A'
	Resistance    Trait = 'R'
	Individualism Trait = 'I'
	Communalism   Trait = 'C'
)

// All lists the eight traits in canonical pair order.
var All = []Trait{
	Fatalism, FreeWill,
	Spiritualism, Materialism,
	Acceptance, Resistance,
	Individualism, Communalism,
}

var labels = map[Trait]string{
	Fatalism:      "Fatalism",
	FreeWill:      "Free Will",
	Spiritualism:  "Spiritualism",
	Materialism:   "Materialism",
	Acceptance:    "Acceptance",
	Resistance:    "Resistance",
	Individualism: "Individualism",
	Communalism:   "Communalism",
}

var summaries = map[Trait]string{
	Fatalism:      "You trust that much of life is already written, and find calm in that.",
	FreeWill:      "You hold that each choice shapes what comes next, and act accordingly.",
	Spiritualism:  "You sense something beyond the visible world and give it weight.",
	Materialism:   "You look for meaning in what can be seen, touched and shared here.",
	Acceptance:    "You meet endings with openness rather than struggle.",
	Resistance:    "You push back against loss and refuse to let go easily.",
	Individualism: "Your answers to the big questions are your own to find.",
	Communalism:   "You find your place in the people and traditions around you.",
}

// String returns the trait letter.
func (t Trait) String() string {
	return string(rune(t))
}

// Label returns the human-readable name of the trait, or the letter itself
// for unknown traits.
func (t Trait) Label() string {
	if l, ok := labels[t]; ok {
		return l
	}
	return t.String()
}

// Summary returns a one-sentence description of someone leaning toward t.
func (t Trait) Summary() string {
	return summaries[t]
}

// Valid reports whether t is one of the eight known traits.
func (t Trait) Valid() bool {
	_, ok := labels[t]
	return ok
}

// Index returns the position of t in All, or -1 if unknown.
func (t Trait) Index() int {
	for i, v := range All {
		if v == t {
			return i
		}
	}
	return -1
}

// ParseTrait parses a single-letter trait code. Case-insensitive.
func ParseTrait(s string) (Trait, error) {
	s = strings.TrimSpace(s)
	if len(s) != 1 {
		return 0, fmt.Errorf("trait code must be a single letter, got %q", s)
	}
	t := Trait(strings.ToUpper(s)[0])
	if !t.Valid() {
		return 0, fmt.Errorf("unknown trait code %q", s)
	}
	return t, nil
}
