package trait

import (
	"fmt"
	"strings"
)

// TypeCode is a four-letter worldview type, one trait per canonical pair in
// canonical order, e.g. "DSAI".
type TypeCode string

// NewTypeCode concatenates the given traits into a TypeCode without
// validation.
func NewTypeCode(ts ...Trait) TypeCode {
	b := make([]byte, len(ts))
	for i, t := range ts {
		b[i] = byte(t)
	}
	return TypeCode(b)
}

// Traits returns the letters of the code as traits.
func (c TypeCode) Traits() []Trait {
	out := make([]Trait, len(c))
	for i := 0; i < len(c); i++ {
		out[i] = Trait(c[i])
	}
	return out
}

// Valid reports whether c has exactly one trait of each canonical pair, in
// canonical order.
func (c TypeCode) Valid() bool {
	pairs := Pairs()
	if len(c) != len(pairs) {
		return false
	}
	for i, p := range pairs {
		t := Trait(c[i])
		if t != p[0] && t != p[1] {
			return false
		}
	}
	return true
}

// Labels returns the human-readable labels of each letter.
func (c TypeCode) Labels() []string {
	ts := c.Traits()
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Label()
	}
	return out
}

// ParseTypeCode validates and normalizes s into a TypeCode.
func ParseTypeCode(s string) (TypeCode, error) {
	c := TypeCode(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("invalid type code %q: want one letter from each of %s", s, pairList())
	}
	return c, nil
}

// AllTypeCodes enumerates the sixteen type codes in canonical order, with the
// first trait of each pair varying slowest.
func AllTypeCodes() []TypeCode {
	codes := []string{""}
	for _, p := range Pairs() {
		next := make([]string, 0, len(codes)*2)
		for _, prefix := range codes {
			next = append(next, prefix+p[0].String(), prefix+p[1].String())
		}
		codes = next
	}
	out := make([]TypeCode, len(codes))
	for i, c := range codes {
		out[i] = TypeCode(c)
	}
	return out
}

func pairList() string {
	parts := make([]string, 0, len(dimensions))
	for _, p := range Pairs() {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, ", ")
}
