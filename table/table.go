// Package table implements an immutable table of distinct SET
// cards with stable positional indices, the input collection
// that the match package searches for sets.
package table

import (
	"fmt"
	"iter"
	"slices"

	"github.com/rogpeppe/setgame/card"
)

// Table holds an ordered collection of distinct cards. A card's
// position is its index in the sequence given to New.
//
// Just as with a nil map, a nil *Table is a valid empty table.
//
// A Table is immutable after construction, so it can be read
// from any number of goroutines without synchronization.
type Table struct {
	cards []card.Card

	// pos maps each card to its position; it doubles as the
	// duplicate check during construction.
	pos map[card.Card]int
}

// New returns a table holding the given cards, assigning each
// card the position it holds in cards. It returns a
// *DuplicateCardError if the same card appears more than once.
// The slice is copied, so later changes to it do not affect the
// table.
func New(cards []card.Card) (*Table, error) {
	t := &Table{
		cards: slices.Clone(cards),
		pos:   make(map[card.Card]int, len(cards)),
	}
	for i, c := range t.cards {
		if j, ok := t.pos[c]; ok {
			return nil, &DuplicateCardError{Card: c, First: j, Second: i}
		}
		t.pos[c] = i
	}
	return t, nil
}

// Len returns the number of cards in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.cards)
}

// At returns the card at position i.
// It panics if i is out of range.
func (t *Table) At(i int) card.Card {
	if i < 0 || i >= t.Len() {
		panic("table.Table.At called with position out of range")
	}
	return t.cards[i]
}

// Position returns the position of c and reports whether c is
// present in the table.
func (t *Table) Position(c card.Card) (int, bool) {
	if t == nil {
		return 0, false
	}
	i, ok := t.pos[c]
	return i, ok
}

// All returns an iterator over the positions and cards of the
// table, in ascending position order.
func (t *Table) All() iter.Seq2[int, card.Card] {
	return func(yield func(int, card.Card) bool) {
		if t == nil {
			return
		}
		for i, c := range t.cards {
			if !yield(i, c) {
				break
			}
		}
	}
}

// A DuplicateCardError reports a card that appeared at two
// positions in the sequence passed to New.
type DuplicateCardError struct {
	Card          card.Card
	First, Second int
}

func (e *DuplicateCardError) Error() string {
	return fmt.Sprintf("duplicate %v at positions %d and %d", e.Card, e.First, e.Second)
}
