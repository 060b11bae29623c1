// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package element

import (
	"hash/maphash"

	"github.com/bits-and-blooms/bitset"
)

//nolint:gochecknoglobals
var booleanMatrixSeed = maphash.MakeSeed()

// BooleanMatrix is a square n x n matrix over the boolean semiring
// ({0,1}, OR, AND), stored one bitset.BitSet per row for a compact
// representation and fast row-OR based multiplication.
type BooleanMatrix struct {
	N    int
	Rows []*bitset.BitSet
}

// NewBooleanMatrix builds a matrix of the given dimension from a row-major
// slice of booleans.
func NewBooleanMatrix(n int, entries []bool) *BooleanMatrix {
	rows := make([]*bitset.BitSet, n)
	for i := 0; i < n; i++ {
		row := bitset.New(uint(n))
		for j := 0; j < n; j++ {
			if entries[i*n+j] {
				row.Set(uint(j))
			}
		}
		rows[i] = row
	}
	return &BooleanMatrix{N: n, Rows: rows}
}

func (m *BooleanMatrix) Equal(other *BooleanMatrix) bool {
	if m.N != other.N {
		return false
	}
	for i := 0; i < m.N; i++ {
		if !m.Rows[i].Equal(other.Rows[i]) {
			return false
		}
	}
	return true
}

func (m *BooleanMatrix) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(booleanMatrixSeed)
	for _, row := range m.Rows {
		words := row.Bytes()
		buf := make([]byte, 8*len(words))
		for i, w := range words {
			for b := 0; b < 8; b++ {
				buf[8*i+b] = byte(w >> (8 * b))
			}
		}
		_, _ = h.Write(buf)
	}
	return h.Sum64()
}

func (m *BooleanMatrix) Degree() int { return m.N }

// Complexity of boolean matrix multiplication is cubic in the dimension.
func (m *BooleanMatrix) Complexity() int { return m.N * m.N * m.N }

func (m *BooleanMatrix) Identity() BooleanMatrix {
	rows := make([]*bitset.BitSet, m.N)
	for i := range rows {
		row := bitset.New(uint(m.N))
		row.Set(uint(i))
		rows[i] = row
	}
	return BooleanMatrix{N: m.N, Rows: rows}
}

func (m *BooleanMatrix) Clone() BooleanMatrix {
	rows := make([]*bitset.BitSet, m.N)
	for i, row := range m.Rows {
		rows[i] = row.Clone()
	}
	return BooleanMatrix{N: m.N, Rows: rows}
}

// CloneWidened grows an n x n matrix to (n+delta) x (n+delta), with the new
// rows/columns all zero.
func (m *BooleanMatrix) CloneWidened(delta int) BooleanMatrix {
	newN := m.N + delta
	rows := make([]*bitset.BitSet, newN)
	for i := 0; i < m.N; i++ {
		rows[i] = m.Rows[i].Clone()
	}
	for i := m.N; i < newN; i++ {
		rows[i] = bitset.New(uint(newN))
	}
	return BooleanMatrix{N: newN, Rows: rows}
}

// Product writes a*b into the receiver: row i of the product is the OR of
// rows b[j] for every j that a's row i has set.
func (m *BooleanMatrix) Product(a, b *BooleanMatrix, _ int) {
	if m.N != a.N || len(m.Rows) != a.N {
		m.N = a.N
		m.Rows = make([]*bitset.BitSet, a.N)
		for i := range m.Rows {
			m.Rows[i] = bitset.New(uint(a.N))
		}
	}
	for i := 0; i < a.N; i++ {
		dst := m.Rows[i]
		dst.ClearAll()
		for j, e := a.Rows[i].NextSet(0); e; j, e = a.Rows[i].NextSet(j + 1) {
			dst.InPlaceUnion(b.Rows[j])
		}
	}
}
