// Package match finds sets on a table of SET cards: every triple
// of positions whose three cards satisfy the game rule.
//
// Four implementations are provided, from a cubic brute-force
// search down to a quadratic search that represents cards as
// packed bytes and finds each pair's completing card by direct
// array indexing. All variants return identical results; the
// slower ones serve as oracles for the faster ones and are kept
// for that purpose.
package match

import (
	"fmt"

	"github.com/rogpeppe/setgame/card"
	"github.com/rogpeppe/setgame/table"
)

// Variant selects one of the set-finding implementations.
type Variant int

const (
	// Naive visits every i<j<k index triple and tests the set
	// rule directly with card.IsSet. Cubic in the table size.
	Naive Variant = iota

	// ModSum is Naive with the cheaper modular-sum predicate.
	ModSum

	// CompletionLookup visits index pairs only: the third card
	// of a set is determined by the first two, so it can be
	// found with a map lookup instead of a third loop.
	// Quadratic in the table size.
	CompletionLookup

	// BitPacked is CompletionLookup on packed cards: the
	// completion is one bitwise operation and the lookup indexes
	// a 256-entry array directly by the packed byte. This is the
	// variant to use when speed matters.
	BitPacked
)

var variantNames = []string{"naive", "modSum", "completionLookup", "bitPacked"}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// A Triple identifies three table positions whose cards form a
// set. Invariant: I < J < K.
type Triple struct {
	I, J, K int
}

// Find returns all sets on the table: each triple of positions
// whose cards satisfy the set rule appears exactly once, in
// ascending lexicographic order of (I, J, K). Every variant
// returns the same result for the same table. A nil table is
// an empty table and yields no sets.
//
// Find panics if v is not one of the defined variants.
func Find(t *table.Table, v Variant) []Triple {
	switch v {
	case Naive:
		return findTriples(t, card.IsSet)
	case ModSum:
		return findTriples(t, card.IsSetMod)
	case CompletionLookup:
		return findLookup(t)
	case BitPacked:
		return findPacked(t)
	}
	panic(fmt.Sprintf("match.Find called with unknown variant %d", int(v)))
}

// findTriples visits every index triple i<j<k exactly once and
// keeps those whose cards satisfy isSet. The i<j<k ordering is
// what guarantees one visit per unordered triple.
func findTriples(t *table.Table, isSet func(c0, c1, c2 card.Card) bool) []Triple {
	var found []Triple
	n := t.Len()
	for i := 0; i < n; i++ {
		ci := t.At(i)
		for j := i + 1; j < n; j++ {
			cj := t.At(j)
			for k := j + 1; k < n; k++ {
				if isSet(ci, cj, t.At(k)) {
					found = append(found, Triple{i, j, k})
				}
			}
		}
	}
	return found
}

// findLookup visits index pairs i<j and computes the unique card
// completing each pair into a set; that card's position, if any,
// comes from a map built once for this call. A set {i, j, k} is
// found through all three of its pairs, so it is counted only
// when the completion's position follows both pair indices
// (k > j, not merely k distinct from i and j, which would count
// it three times).
func findLookup(t *table.Table) []Triple {
	n := t.Len()
	have := make(map[card.Card]int, n)
	for i, c := range t.All() {
		have[c] = i
	}
	var found []Triple
	for i := 0; i < n; i++ {
		ci := t.At(i)
		for j := i + 1; j < n; j++ {
			if k, ok := have[card.Completion(ci, t.At(j))]; ok && k > j {
				found = append(found, Triple{i, j, k})
			}
		}
	}
	return found
}

// findPacked is findLookup on packed cards. The position index
// is an array with one slot per possible byte value, -1 meaning
// absent; the k > j test then also rejects absent completions,
// so no separate presence check is needed.
func findPacked(t *table.Table) []Triple {
	packed, have := packIndex(t)
	var found []Triple
	n := len(packed)
	for i, pi := range packed {
		for j := i + 1; j < n; j++ {
			if k := have[pi.Completion(packed[j])]; k > j {
				found = append(found, Triple{i, j, k})
			}
		}
	}
	return found
}

// packIndex returns the table's cards in packed form along with
// the array mapping each packed value to its position, or -1 if
// the card is not on the table. Both are local to one Find call.
func packIndex(t *table.Table) ([]card.Packed, [256]int) {
	packed := make([]card.Packed, t.Len())
	var have [256]int
	for i := range have {
		have[i] = -1
	}
	for i, c := range t.All() {
		p := c.Pack()
		packed[i] = p
		have[p] = i
	}
	return packed, have
}
