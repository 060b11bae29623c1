// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package packed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddRowsPreservesData(t *testing.T) {
	tbl := New[int](3, 2)
	tbl.Set(0, 0, 1)
	tbl.Set(1, 2, 9)

	tbl.AddRows(2)
	require.Equal(t, 4, tbl.NrRows())
	require.Equal(t, 1, tbl.Get(0, 0))
	require.Equal(t, 9, tbl.Get(1, 2))
	require.Equal(t, 0, tbl.Get(3, 0))
}

func TestAddColsPreservesUsedPrefix(t *testing.T) {
	tbl := New[int](2, 3)
	for r := 0; r < 3; r++ {
		tbl.Set(r, 0, r*10)
		tbl.Set(r, 1, r*10+1)
	}

	tbl.AddCols(5)
	require.Equal(t, 7, tbl.NrCols())
	for r := 0; r < 3; r++ {
		require.Equal(t, r*10, tbl.Get(r, 0))
		require.Equal(t, r*10+1, tbl.Get(r, 1))
	}
}

func TestAddColsWithinSpareDoesNotReallocate(t *testing.T) {
	tbl := New[int](2, 1)
	tbl.AddCols(1) // forces a grow to max(5*2/4+4, 3) = 6, leaving 3 spare
	capAfterFirstGrow := tbl.ColsCapacity()

	tbl.Set(0, 0, 42)
	tbl.AddCols(1) // should fit in the spare reserve
	require.Equal(t, capAfterFirstGrow, tbl.ColsCapacity())
	require.Equal(t, 42, tbl.Get(0, 0))
}

func TestClearZeroesUsedCellsOnly(t *testing.T) {
	tbl := New[int](2, 2)
	tbl.Set(0, 0, 7)
	tbl.Set(1, 1, 8)
	tbl.Clear()
	require.Equal(t, 0, tbl.Get(0, 0))
	require.Equal(t, 0, tbl.Get(1, 1))
	require.Equal(t, 2, tbl.NrRows())
}

func TestGetOutOfRangePanics(t *testing.T) {
	tbl := New[int](2, 1)
	require.Panics(t, func() { tbl.Get(0, 5) })
	require.Panics(t, func() { tbl.Get(5, 0) })
}
