// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package tc

// defineTrace returns the coset reached from c by generator g, defining a
// fresh coset and filling table[c][g] if that entry is not yet known.
// Both c and the returned coset may already have been identified away by a
// prior coincidence; callers that need the canonical coset must pass the
// result through find.
func (t *TC) defineTrace(c, g int) int {
	c = t.find(c)
	if d := t.table.Get(c, g); d != Undefined {
		return t.find(d)
	}
	d := t.newCoset()
	t.setTable(c, g, d)
	return d
}

// setTable records that c maps to d under g, and threads d onto c's
// preimage list for g (preimInit/preimNext), the structure identify later
// walks to redirect survivors' incoming edges.
func (t *TC) setTable(c, g, d int) {
	t.table.Set(c, g, d)
	t.preimNext[c] = t.preimInit.Get(d, g)
	t.preimInit.Set(d, g, c)
}

// identify merges cosets a and b (and everything transitively forced
// equal by doing so) into one surviving coset, propagating the
// consequences through every generator's table and preimage structure.
// Ported from Coset::identify_cosets: the lower-numbered coset always
// survives, table/preimage entries pointing at the loser are redirected
// to point at the survivor, and any resulting clash between the
// survivor's and the loser's own table entries is queued as a further
// coincidence.
func (t *TC) identify(a, b int) {
	queue := [][2]int{{a, b}}
	for len(queue) > 0 {
		pair := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		x, y := t.find(pair[0]), t.find(pair[1])
		if x == y {
			continue
		}
		survivor, loser := x, y
		if loser < survivor {
			survivor, loser = loser, survivor
		}

		t.fwd[loser] = survivor
		t.nrActive--
		t.removeFromActive(loser)

		for g := 0; g < t.nrGens; g++ {
			// Redirect every known preimage of loser under g to point at
			// survivor instead, and re-thread it onto survivor's list.
			p := t.preimInit.Get(loser, g)
			for p != Undefined {
				next := t.preimNext[p]
				t.table.Set(p, g, survivor)
				t.preimNext[p] = t.preimInit.Get(survivor, g)
				t.preimInit.Set(survivor, g, p)
				p = next
			}

			lval := t.table.Get(loser, g)
			if lval == Undefined {
				continue
			}
			sval := t.table.Get(survivor, g)
			if sval == Undefined {
				t.setTable(survivor, g, t.find(lval))
				continue
			}
			if t.find(sval) != t.find(lval) {
				queue = append(queue, [2]int{sval, lval})
			}
		}
	}
}

func (t *TC) removeFromActive(c int) {
	for i, v := range t.active {
		if v == c {
			t.active = append(t.active[:i], t.active[i+1:]...)
			if i < t.cursor {
				t.cursor--
			}
			return
		}
	}
}
