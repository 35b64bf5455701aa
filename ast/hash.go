package ast

import (
	"fmt"
	"sort"

	"github.com/mitchellh/hashstructure/v2"
)

// structHash folds a Kind tag and an arbitrary comparable payload into a
// single structural hash. Children are always passed as their own
// already-computed Hash() values, never as full subtrees, which is what
// keeps hash-consing construction O(1) per node instead of O(subtree).
func structHash(kind Kind, payload interface{}) uint64 {
	h, err := hashstructure.Hash(struct {
		K Kind
		P interface{}
	}{kind, payload}, hashstructure.FormatV2, nil)
	if err != nil {
		panic(fmt.Sprintf("ast: structural hash failed for kind %d: %v", kind, err))
	}
	return h
}

// sortedHashes returns the deduplicated, ascending-sorted hashes of an
// operand set, used by And/Or whose operands are sets, not sequences.
func sortedHashes(hashes []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(hashes))
	out := make([]uint64, 0, len(hashes))
	for _, h := range hashes {
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// sameSet reports whether two already-canonical (deduplicated) node slices
// contain the same elements, order ignored. Since every element comes from
// the same Manager, element comparison is pointer/Equal-based.
func sameSet[T Node](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, x := range a {
		found := false
		for j, y := range b {
			if used[j] {
				continue
			}
			if x.Equal(y) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sameSeq[T Node](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
