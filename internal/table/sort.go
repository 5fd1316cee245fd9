package table

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is the sort order of the active column.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// Sorter orders rows by one column. Text is compared with a collator at
// base strength, so case and diacritics do not affect order. A Sorter is
// not safe for concurrent use.
type Sorter struct {
	coll *collate.Collator
}

// NewSorter returns a Sorter collating for tag.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{coll: collate.New(tag, collate.Loose)}
}

// Compare orders a before b. Nulls sort after every non-null value in
// both directions; dir only reverses the comparison of non-null values.
func (s *Sorter) Compare(a, b Value, dir Direction) int {
	switch {
	case a.IsNull() && b.IsNull():
		return 0
	case a.IsNull():
		return 1
	case b.IsNull():
		return -1
	}

	var c int
	af, aNum := a.Float()
	bf, bNum := b.Float()
	if aNum && bNum {
		c = cmp.Compare(af, bf)
	} else {
		c = s.coll.CompareString(a.Plain(), b.Plain())
	}
	if dir == Desc {
		return -c
	}
	return c
}

// Sort returns a stably sorted copy of rows ordered by key. An empty key
// returns rows unchanged.
func (s *Sorter) Sort(rows []Row, key string, dir Direction) []Row {
	if key == "" {
		return rows
	}
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b Row) int {
		return s.Compare(a[key], b[key], dir)
	})
	return out
}
