package trait

import "fmt"

// Pair is an ordered pair of opposing traits. The first trait is the pole
// measured by the low end of the answer scale, the second by the high end.
type Pair [2]Trait

// Dimension describes one canonical pair.
type Dimension struct {
	Name string
	Pair Pair
}

// dimensions is the fixed derivation and display order.
var dimensions = []Dimension{
	{Name: "Fate", Pair: Pair{Fatalism, FreeWill}},
	{Name: "Spirit", Pair: Pair{Spiritualism, Materialism}},
	{Name: "Stance", Pair: Pair{Acceptance, Resistance}},
	{Name: "Belonging", Pair: Pair{Individualism, Communalism}},
}

// Dimensions returns the four dimensions in canonical order.
func Dimensions() []Dimension {
	out := make([]Dimension, len(dimensions))
	copy(out, dimensions)
	return out
}

// Pairs returns the four canonical pairs in canonical order.
func Pairs() []Pair {
	out := make([]Pair, len(dimensions))
	for i, d := range dimensions {
		out[i] = d.Pair
	}
	return out
}

// Low returns the trait on the low end of the scale.
func (p Pair) Low() Trait { return p[0] }

// High returns the trait on the high end of the scale.
func (p Pair) High() Trait { return p[1] }

func (p Pair) String() string {
	return fmt.Sprintf("%s/%s", p[0], p[1])
}

// Canonical returns the canonical pair containing the same two traits as p,
// in either order.
func (p Pair) Canonical() (Pair, bool) {
	for _, d := range dimensions {
		c := d.Pair
		if (p[0] == c[0] && p[1] == c[1]) || (p[0] == c[1] && p[1] == c[0]) {
			return c, true
		}
	}
	return Pair{}, false
}

// Valid reports whether p is made of the two traits of a canonical pair.
func (p Pair) Valid() bool {
	_, ok := p.Canonical()
	return ok
}

// DimensionOf returns the dimension whose pair matches p in either order.
func DimensionOf(p Pair) (Dimension, bool) {
	c, ok := p.Canonical()
	if !ok {
		return Dimension{}, false
	}
	for _, d := range dimensions {
		if d.Pair == c {
			return d, true
		}
	}
	return Dimension{}, false
}

// ParsePair builds a Pair from two trait letters.
func ParsePair(low, high string) (Pair, error) {
	a, err := ParseTrait(low)
	if err != nil {
		return Pair{}, err
	}
	b, err := ParseTrait(high)
	if err != nil {
		return Pair{}, err
	}
	p := Pair{a, b}
	if !p.Valid() {
		return Pair{}, fmt.Errorf("%s is not a canonical trait pair", p)
	}
	return p, nil
}
