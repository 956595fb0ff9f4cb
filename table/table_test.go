package table_test

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"github.com/rogpeppe/setgame/card"
	"github.com/rogpeppe/setgame/table"
)

func TestNew(t *testing.T) {
	cards := deal(t, [][4]int{
		{1, 0, 2, 2},
		{0, 0, 0, 0},
		{2, 1, 0, 1},
	})
	tab, err := table.New(cards)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(tab.Len(), 3))
	for i, c := range cards {
		qt.Assert(t, qt.Equals(tab.At(i), c))
		pos, ok := tab.Position(c)
		qt.Assert(t, qt.IsTrue(ok))
		qt.Assert(t, qt.Equals(pos, i))
	}

	_, ok := tab.Position(mustCard(t, 1, 1, 1, 1))
	qt.Assert(t, qt.IsFalse(ok))
}

func TestNilTableIsEmpty(t *testing.T) {
	var tab *table.Table
	qt.Assert(t, qt.Equals(tab.Len(), 0))

	_, ok := tab.Position(mustCard(t, 0, 0, 0, 0))
	qt.Assert(t, qt.IsFalse(ok))

	for range tab.All() {
		t.Error("nil table iterator yielded a card")
	}

	mustPanic(t, func() { tab.At(0) })
}

func TestNewEmpty(t *testing.T) {
	tab, err := table.New(nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(tab.Len(), 0))
}

func TestNewDuplicateCard(t *testing.T) {
	cards := deal(t, [][4]int{
		{0, 0, 0, 0},
		{1, 2, 0, 1},
		{0, 0, 0, 0},
	})
	_, err := table.New(cards)
	var dupErr *table.DuplicateCardError
	qt.Assert(t, qt.ErrorAs(err, &dupErr))
	qt.Assert(t, qt.Equals(dupErr.Card, cards[0]))
	qt.Assert(t, qt.Equals(dupErr.First, 0))
	qt.Assert(t, qt.Equals(dupErr.Second, 2))
	qt.Assert(t, qt.Matches(err.Error(), `duplicate Card\(0,0,0,0\) at positions 0 and 2`))
}

func TestNewCopiesInput(t *testing.T) {
	cards := deal(t, [][4]int{
		{0, 0, 0, 1},
		{0, 0, 0, 2},
	})
	tab, err := table.New(cards)
	qt.Assert(t, qt.IsNil(err))

	cards[0] = mustCard(t, 2, 2, 2, 2)
	qt.Assert(t, qt.Equals(tab.At(0), mustCard(t, 0, 0, 0, 1)))
}

func TestAtOutOfRangePanics(t *testing.T) {
	tab, err := table.New(card.All()[:4])
	qt.Assert(t, qt.IsNil(err))
	mustPanic(t, func() { tab.At(-1) })
	mustPanic(t, func() { tab.At(4) })
}

func TestAll(t *testing.T) {
	cards := card.All()[:12]
	tab, err := table.New(cards)
	qt.Assert(t, qt.IsNil(err))

	var gotPos []int
	var gotCards []card.Card
	for i, c := range tab.All() {
		gotPos = append(gotPos, i)
		gotCards = append(gotCards, c)
	}
	qt.Assert(t, qt.CmpEquals(gotCards, cards, cmp.AllowUnexported(card.Card{})))
	for i, p := range gotPos {
		qt.Assert(t, qt.Equals(p, i))
	}

	// Early exit must stop the iteration.
	n := 0
	for range tab.All() {
		n++
		if n == 3 {
			break
		}
	}
	qt.Assert(t, qt.Equals(n, 3))
}

func TestFullDeckTable(t *testing.T) {
	tab, err := table.New(card.All())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(tab.Len(), card.NumCards))
}

func deal(t *testing.T, attrs [][4]int) []card.Card {
	t.Helper()
	cards := make([]card.Card, len(attrs))
	for i, a := range attrs {
		cards[i] = mustCard(t, a[0], a[1], a[2], a[3])
	}
	return cards
}

func mustCard(t *testing.T, a0, a1, a2, a3 int) card.Card {
	t.Helper()
	c, err := card.New(a0, a1, a2, a3)
	qt.Assert(t, qt.IsNil(err))
	return c
}

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic, but code did not panic")
		}
	}()
	f()
}
