// Package card implements the cards of the game SET.
//
// A card has four independent attributes (conventionally count,
// shape, color and shading, though nothing here depends on that
// reading), each taking one of three values. Three cards form a
// set when, in every attribute, their values are either all equal
// or all distinct; for any two distinct cards there is exactly
// one third card completing them into a set.
//
// Cards have two interchangeable representations: the expanded
// [Card] value and the [Packed] single-byte encoding, on which
// the completion card can be computed with a single carry-free
// bitwise formula.
package card

import "fmt"

const (
	// NumAttrs is the number of attribute slots on a card.
	NumAttrs = 4

	// NumValues is the number of values an attribute slot can take.
	NumValues = 3

	// NumCards is the number of distinct cards, NumValues**NumAttrs.
	NumCards = 81
)

// Card holds one card: an ordered tuple of NumAttrs attribute
// values, each in [0, NumValues).
//
// Card is a comparable value type: two cards are equal exactly
// when all their attributes are equal, so cards can be compared
// with == and used as map keys. The zero Card is a valid card
// with all attributes zero.
type Card struct {
	attrs [NumAttrs]uint8
}

// New returns the card with the given attribute values.
// It returns an *InvalidAttributeError if any value is
// outside [0, NumValues).
func New(a0, a1, a2, a3 int) (Card, error) {
	var c Card
	for i, a := range [...]int{a0, a1, a2, a3} {
		if a < 0 || a >= NumValues {
			return Card{}, &InvalidAttributeError{Slot: i, Value: a}
		}
		c.attrs[i] = uint8(a)
	}
	return c, nil
}

// Attr returns the value of the i'th attribute slot.
// It panics if i is out of range.
func (c Card) Attr(i int) int {
	return int(c.attrs[i])
}

func (c Card) String() string {
	return fmt.Sprintf("Card(%d,%d,%d,%d)", c.attrs[0], c.attrs[1], c.attrs[2], c.attrs[3])
}

// IsSet reports whether the three cards form a set: in every
// attribute slot the three values must be all equal or all
// distinct. This is the defining form of the rule; IsSetMod
// is equivalent and cheaper.
func IsSet(c0, c1, c2 Card) bool {
	for i := range c0.attrs {
		v0, v1, v2 := c0.attrs[i], c1.attrs[i], c2.attrs[i]
		allEqual := v0 == v1 && v1 == v2
		allDistinct := v0 != v1 && v1 != v2 && v0 != v2
		if !allEqual && !allDistinct {
			return false
		}
	}
	return true
}

// IsSetMod is equivalent to IsSet: three values in {0, 1, 2}
// are all equal or all distinct exactly when their sum is
// divisible by three, so each slot needs only one modular test.
func IsSetMod(c0, c1, c2 Card) bool {
	for i := range c0.attrs {
		if (c0.attrs[i]+c1.attrs[i]+c2.attrs[i])%3 != 0 {
			return false
		}
	}
	return true
}

// Completion returns the unique card that forms a set with c0
// and c1. Per slot the completing value is -(v0+v1) mod 3.
// If c0 == c1 the result is that same card.
func Completion(c0, c1 Card) Card {
	var c Card
	for i := range c.attrs {
		// The +6 keeps the byte arithmetic non-negative.
		c.attrs[i] = (6 - c0.attrs[i] - c1.attrs[i]) % 3
	}
	return c
}

// All returns the full deck: every one of the NumCards distinct
// cards, in lexicographic order of their attribute tuples.
// The slice is freshly allocated on each call.
func All() []Card {
	cards := make([]Card, 0, NumCards)
	for a0 := range uint8(NumValues) {
		for a1 := range uint8(NumValues) {
			for a2 := range uint8(NumValues) {
				for a3 := range uint8(NumValues) {
					cards = append(cards, Card{[NumAttrs]uint8{a0, a1, a2, a3}})
				}
			}
		}
	}
	return cards
}

// An InvalidAttributeError reports an attribute value outside
// [0, NumValues) passed to New.
type InvalidAttributeError struct {
	Slot  int
	Value int
}

func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("invalid value %d for card attribute %d (must be from 0 to %d)", e.Value, e.Slot, NumValues-1)
}
