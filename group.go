package recoplot

import "iter"

// Pair is one entry of a flat association table.
type Pair[K comparable, V any] struct {
	Left  K
	Right V
}

// GroupByLeft calls onGroup once for every maximal run of consecutive
// entries sharing a left key, in input order. Entries for a key must be
// contiguous; a key that shows up again after another key starts a new
// group.
func GroupByLeft[K comparable, V any](entries []Pair[K, V], onGroup func(K, []V)) {
	var rights []V
	for i, entry := range entries {
		if i > 0 && entry.Left != entries[i-1].Left {
			onGroup(entries[i-1].Left, rights)
			rights = nil
		}
		rights = append(rights, entry.Right)
	}
	if len(entries) > 0 {
		onGroup(entries[len(entries)-1].Left, rights)
	}
}

// GroupByLeftSeq is GroupByLeft over a lazy sequence. The slice handed
// to onGroup is reused and must not be retained after onGroup returns.
func GroupByLeftSeq[K comparable, V any](seq iter.Seq2[K, V], onGroup func(K, []V)) {
	var (
		current K
		rights  []V
	)
	for key, value := range seq {
		if len(rights) > 0 && key != current {
			onGroup(current, rights)
			rights = rights[:0]
		}
		current = key
		rights = append(rights, value)
	}
	if len(rights) > 0 {
		onGroup(current, rights)
	}
}

// PairSeq yields the entries of a flat table one at a time.
func PairSeq[K comparable, V any](entries []Pair[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, entry := range entries {
			if !yield(entry.Left, entry.Right) {
				return
			}
		}
	}
}
