package symbolicdfa

import (
	"fmt"
	"sort"

	"github.com/whitemech/lydia-go/ast"
	"github.com/whitemech/lydia-go/automaton"
)

// Minimize collapses equivalent states of res by Moore-style signature
// refinement: states start partitioned by acceptance, and the partition is
// repeatedly refined by each state's (block, per-letter successor block)
// signature until it stops changing. This is the supplemented
// minimization operation original_source's automaton layer performs before
// emitting a final automaton; it is not the asymptotically-optimal
// Hopcroft partition-refinement algorithm, just the simpler iterative one,
// since res's state counts in practice are small.
func Minimize(res *automaton.ExploreResult) *automaton.ExploreResult {
	if len(res.States) == 0 {
		return res
	}

	atoms := atomsOf(res.Edges)
	transitions := make([]map[string]int, len(res.States))
	letterMaps := make(map[string]map[ast.Symbol]bool)
	var letterKeys []string
	seenKey := make(map[string]bool)
	for i := range transitions {
		transitions[i] = make(map[string]int)
	}
	for _, e := range res.Edges {
		key := letterKey(atoms, e.Letter)
		transitions[e.From][key] = e.To
		if _, ok := letterMaps[key]; !ok {
			letterMaps[key] = e.Letter
		}
		if !seenKey[key] {
			seenKey[key] = true
			letterKeys = append(letterKeys, key)
		}
	}
	sort.Strings(letterKeys)

	block := make([]int, len(res.States))
	for s := range res.States {
		if res.Final[s] {
			block[s] = 1
		}
	}

	for {
		sigToBlock := make(map[string]int)
		newBlock := make([]int, len(res.States))
		changed := false
		for s := range res.States {
			sig := fmt.Sprintf("%d", block[s])
			for _, k := range letterKeys {
				sig += "," + fmt.Sprintf("%d", block[transitions[s][k]])
			}
			id, ok := sigToBlock[sig]
			if !ok {
				id = len(sigToBlock)
				sigToBlock[sig] = id
			}
			newBlock[s] = id
			if id != block[s] {
				changed = true
			}
		}
		block = newBlock
		if !changed {
			break
		}
	}

	numBlocks := 0
	for _, b := range block {
		if b+1 > numBlocks {
			numBlocks = b + 1
		}
	}
	reps := make([]int, numBlocks)
	seenBlock := make([]bool, numBlocks)
	for s, b := range block {
		if !seenBlock[b] {
			seenBlock[b] = true
			reps[b] = s
		}
	}

	out := &automaton.ExploreResult{
		States:  make([]automaton.DFAState, numBlocks),
		Initial: block[res.Initial],
		Final:   make(map[int]bool),
	}
	for b := 0; b < numBlocks; b++ {
		out.States[b] = res.States[reps[b]]
		if res.Final[reps[b]] {
			out.Final[b] = true
		}
	}
	for b := 0; b < numBlocks; b++ {
		s := reps[b]
		for _, k := range letterKeys {
			t, ok := transitions[s][k]
			if !ok {
				continue
			}
			out.Edges = append(out.Edges, automaton.Edge{From: b, Letter: letterMaps[k], To: block[t]})
		}
	}
	return out
}

func atomsOf(edges []automaton.Edge) []ast.Symbol {
	seen := make(map[ast.Symbol]struct{})
	var out []ast.Symbol
	for _, e := range edges {
		for a := range e.Letter {
			if _, ok := seen[a]; !ok {
				seen[a] = struct{}{}
				out = append(out, a)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func letterKey(atoms []ast.Symbol, letter map[ast.Symbol]bool) string {
	key := make([]byte, 0, len(atoms))
	for _, a := range atoms {
		if letter[a] {
			key = append(key, '1')
		} else {
			key = append(key, '0')
		}
	}
	return string(key)
}
