package recoplot

import (
	"errors"
	"fmt"
	"sort"
)

var errNilAssns = errors.New("nil association table")

// Assn is one entry of an association table: indices into the left and
// right collections plus the datum attached to the association.
type Assn[D any] struct {
	Left  int
	Right int
	Data  D
}

// Assns is a flat many-to-many association between two collections.
// Entries for one left record are expected to be contiguous.
type Assns[L, R, D any] struct {
	Lefts   []L
	Rights  []R
	Entries []Assn[D]
}

func NewAssns[L, R, D any](lefts []L, rights []R) *Assns[L, R, D] {
	return &Assns[L, R, D]{Lefts: lefts, Rights: rights}
}

func (a *Assns[L, R, D]) Add(left, right int, data D) {
	a.Entries = append(a.Entries, Assn[D]{Left: left, Right: right, Data: data})
}

func (a *Assns[L, R, D]) Len() int {
	return len(a.Entries)
}

// SortByLeft orders the entries by left index, keeping the relative
// order of entries sharing a left record.
func (a *Assns[L, R, D]) SortByLeft() {
	sort.SliceStable(a.Entries, func(i, j int) bool {
		return a.Entries[i].Left < a.Entries[j].Left
	})
}

func (a *Assns[L, R, D]) check() error {
	if a == nil {
		return errNilAssns
	}
	for i, e := range a.Entries {
		if e.Left < 0 || e.Left >= len(a.Lefts) {
			return fmt.Errorf("association %d: left index %d out of range [0,%d)", i, e.Left, len(a.Lefts))
		}
		if e.Right < 0 || e.Right >= len(a.Rights) {
			return fmt.Errorf("association %d: right index %d out of range [0,%d)", i, e.Right, len(a.Rights))
		}
	}
	return nil
}

// Pairs returns the table in flat form, keyed by the left record.
func (a *Assns[L, R, D]) Pairs() ([]Pair[*L, *R], error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	pairs := make([]Pair[*L, *R], len(a.Entries))
	for i, e := range a.Entries {
		pairs[i] = Pair[*L, *R]{Left: &a.Lefts[e.Left], Right: &a.Rights[e.Right]}
	}
	return pairs, nil
}

// Groups calls onGroup for every run of entries sharing a left record,
// with the associated right records and data in table order.
func (a *Assns[L, R, D]) Groups(onGroup func(left *L, rights []*R, data []D)) error {
	if err := a.check(); err != nil {
		return err
	}
	entries := make([]Pair[int, Assn[D]], len(a.Entries))
	for i, e := range a.Entries {
		entries[i] = Pair[int, Assn[D]]{Left: e.Left, Right: e}
	}

	GroupByLeft(entries, func(left int, group []Assn[D]) {
		rights := make([]*R, len(group))
		data := make([]D, len(group))
		for i, e := range group {
			rights[i] = &a.Rights[e.Right]
			data[i] = e.Data
		}
		onGroup(&a.Lefts[left], rights, data)
	})
	return nil
}

// FindMany answers, for each left index, which right records are
// associated with it.
type FindMany[R, D any] struct {
	rights [][]*R
	data   [][]D
}

// NewFindMany indexes assns for a left collection of nLeft records.
func NewFindMany[L, R, D any](nLeft int, assns *Assns[L, R, D]) (*FindMany[R, D], error) {
	if assns == nil {
		return nil, errNilAssns
	}
	if nLeft != len(assns.Lefts) {
		return nil, fmt.Errorf("left collection has %d records, associations refer to %d", nLeft, len(assns.Lefts))
	}
	if err := assns.check(); err != nil {
		return nil, err
	}

	fm := &FindMany[R, D]{
		rights: make([][]*R, nLeft),
		data:   make([][]D, nLeft),
	}
	for _, e := range assns.Entries {
		fm.rights[e.Left] = append(fm.rights[e.Left], &assns.Rights[e.Right])
		fm.data[e.Left] = append(fm.data[e.Left], e.Data)
	}
	return fm, nil
}

func (fm *FindMany[R, D]) Size() int {
	return len(fm.rights)
}

// At returns the right records associated with left index i, and their
// data, in table order.
func (fm *FindMany[R, D]) At(i int) ([]*R, []D) {
	if i < 0 || i >= len(fm.rights) {
		return nil, nil
	}
	return fm.rights[i], fm.data[i]
}
