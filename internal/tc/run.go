// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package tc

// Run traces every relation through every active coset, defining new
// cosets and processing coincidences as needed, until either no active
// coset has untraced relations left (the table is "closed": done becomes
// true) or the number of active cosets reaches limit.
func (t *TC) Run(limit int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.runLocked(limit)
}

func (t *TC) runLocked(limit int) {
	if t.done {
		return
	}
	if limit < 0 {
		limit = LimitMax
	}

	steps := 0
	for t.cursor < len(t.active) && t.nrActive-1 < limit {
		c := t.active[t.cursor]
		t.cursor++

		if t.find(c) != c {
			continue // c was identified away after being queued
		}

		for _, rel := range t.relations {
			c1 := c
			for _, g := range rel.LHS {
				c1 = t.defineTrace(c1, g)
			}
			c2 := c
			for _, g := range rel.RHS {
				c2 = t.defineTrace(c2, g)
			}
			if t.find(c1) != t.find(c2) {
				t.identify(c1, c2)
			}
		}

		steps++
		if t.sink != nil && t.batchSize > 0 && steps%t.batchSize == 0 {
			t.sink.Reportf(0, "todd-coxeter: %d active cosets, cursor=%d", t.nrActive, t.cursor)
		}
	}

	if t.cursor >= len(t.active) {
		t.done = true
	}
}

// AddRelation appends a further defining relation and, if the table had
// already closed, reopens it by rewinding the cursor so every active
// coset is retraced against the new relation too.
func (t *TC) AddRelation(rel Relation) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.relations = append(t.relations, rel)
	t.cursor = 0
	t.done = false
}
