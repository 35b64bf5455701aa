package bdd

// EnumerateCubes returns one partial assignment per root-to-One path of n.
// Variables the reduced BDD skips along a path are don't-cares for that
// path. Each cube is an implicant of n but not necessarily a prime one: for
// a|b the path cube {a:false, b:true} is returned, not the prime {b:true}.
func (m *Manager) EnumerateCubes(n *Node) []map[int]bool {
	var out []map[int]bool
	assign := make(map[int]bool)
	var walk func(cur *Node)
	walk = func(cur *Node) {
		if cur == m.zero {
			return
		}
		if cur == m.one {
			cp := make(map[int]bool, len(assign))
			for k, v := range assign {
				cp[k] = v
			}
			out = append(out, cp)
			return
		}
		assign[cur.variable] = false
		walk(cur.low)
		assign[cur.variable] = true
		walk(cur.high)
		delete(assign, cur.variable)
	}
	walk(n)
	return out
}

// EnumeratePrimes returns exactly the cubes EnumerateCubes returns: the
// root-to-One path cubes of n. No prime-implicant computation is done, so a
// returned cube can fix more variables than a prime implicant of n would.
func (m *Manager) EnumeratePrimes(n *Node) []map[int]bool {
	return m.EnumerateCubes(n)
}

// ProjectCubes restricts each cube to the keys in relevant, deduplicating
// the result. automaton.ExploreSymbolic uses it to project the cubes of a
// delta BDD onto the atom block of the variable space, giving the letter
// cube each path is taken on.
func ProjectCubes(cubes []map[int]bool, relevant map[int]struct{}) []map[int]bool {
	seen := make(map[string]struct{})
	var out []map[int]bool
	for _, c := range cubes {
		proj := make(map[int]bool)
		for k, v := range c {
			if _, ok := relevant[k]; ok {
				proj[k] = v
			}
		}
		key := cubeKey(proj)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, proj)
	}
	return out
}

func cubeKey(c map[int]bool) string {
	// Deterministic small-map key; cube key spaces here are tiny (one
	// quoted-subformula block per DFA state), so a simple sorted-ish
	// concatenation is adequate and avoids pulling in a canonicalization
	// dependency for this single call site.
	keys := make([]int, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	b := make([]byte, 0, len(keys)*3)
	for _, k := range keys {
		if c[k] {
			b = append(b, '1')
		} else {
			b = append(b, '0')
		}
		b = append(b, byte(k), byte(k>>8))
	}
	return string(b)
}
