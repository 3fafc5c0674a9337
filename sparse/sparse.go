// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sparse implements a deduplicating, additive-merge symmetric
// sparse matrix (upper-triangle storage) and its export to / read-back
// from PETSc's binary AIJ matrix format.
package sparse

import (
	"encoding/binary"
	"io"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// petscMatClassID is PETSc's binary file classid for a Mat object.
const petscMatClassID = 1211216

// Entry is one (row, col, value) contribution; row/col need not be in
// upper-triangle order.
type Entry struct {
	Row, Col int
	Val      float64
}

type key struct{ R, C int }

// Symmetric is an n x n symmetric matrix stored by its upper triangle
// only; inserting the same (row, col) pair (in either order) more than
// once accumulates.
type Symmetric struct {
	Dim  int
	data map[key]float64
}

// New allocates an empty Symmetric of the given dimension.
func New(dim int) *Symmetric {
	return &Symmetric{Dim: dim, data: make(map[key]float64)}
}

// Insert canonicalizes (r, c) to (min, max) and adds v to any existing
// value at that key. Panics if r or c is out of [0, Dim) (a programmer
// error: DoF ids are assigned by the resolver, never user input).
func (s *Symmetric) Insert(r, c int, v float64) {
	if r < 0 || r >= s.Dim || c < 0 || c >= s.Dim {
		chk.Panic("sparse: index (%d,%d) out of range for a %d x %d matrix\n", r, c, s.Dim, s.Dim)
	}
	if r > c {
		r, c = c, r
	}
	s.data[key{r, c}] += v
}

// InsertAll inserts every Entry in entries.
func (s *Symmetric) InsertAll(entries []Entry) {
	for _, e := range entries {
		s.Insert(e.Row, e.Col, e.Val)
	}
}

// Consume merges other's entries into s and empties other.
func (s *Symmetric) Consume(other *Symmetric) {
	for k, v := range other.data {
		s.data[k] += v
	}
	other.data = make(map[key]float64)
}

// Get returns the accumulated value at (r, c), canonicalized.
func (s *Symmetric) Get(r, c int) float64 {
	if r > c {
		r, c = c, r
	}
	return s.data[key{r, c}]
}

// NNZ returns the number of distinct upper-triangle entries.
func (s *Symmetric) NNZ() int { return len(s.data) }

// UpperEntries returns every stored (row <= col) entry, sorted by row
// then column.
func (s *Symmetric) UpperEntries() []Entry {
	out := make([]Entry, 0, len(s.data))
	for k, v := range s.data {
		out = append(out, Entry{Row: k.R, Col: k.C, Val: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// rowEntries materializes every (row, col, val) pair including the
// mirrored lower triangle, grouped by row and sorted by column.
func (s *Symmetric) rowEntries() [][]Entry {
	rows := make([][]Entry, s.Dim)
	for k, v := range s.data {
		rows[k.R] = append(rows[k.R], Entry{Row: k.R, Col: k.C, Val: v})
		if k.R != k.C {
			rows[k.C] = append(rows[k.C], Entry{Row: k.C, Col: k.R, Val: v})
		}
	}
	for r := range rows {
		sort.Slice(rows[r], func(i, j int) bool { return rows[r][i].Col < rows[r][j].Col })
	}
	return rows
}

// WritePETScBinary writes the full symmetric matrix (upper and lower
// triangle materialized) in PETSc's binary AIJ format: the Mat classid,
// big-endian u32 rows/cols/nnz, u32 row-nnz counts, u32 column indices,
// then big-endian f64 values.
func (s *Symmetric) WritePETScBinary(w io.Writer) error {
	rows := s.rowEntries()
	nnz := 0
	for _, r := range rows {
		nnz += len(r)
	}

	if err := binary.Write(w, binary.BigEndian, int32(petscMatClassID)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint32(s.Dim)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint32(s.Dim)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint32(nnz)); err != nil {
		return err
	}
	for _, r := range rows {
		if err := binary.Write(w, binary.BigEndian, uint32(len(r))); err != nil {
			return err
		}
	}
	for _, r := range rows {
		for _, e := range r {
			if err := binary.Write(w, binary.BigEndian, uint32(e.Col)); err != nil {
				return err
			}
		}
	}
	for _, r := range rows {
		for _, e := range r {
			if err := binary.Write(w, binary.BigEndian, e.Val); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadPETScBinary reads back a matrix written by WritePETScBinary and
// returns its upper triangle as a new Symmetric.
func ReadPETScBinary(r io.Reader) (*Symmetric, error) {
	var classID int32
	if err := binary.Read(r, binary.BigEndian, &classID); err != nil {
		return nil, err
	}
	if classID != petscMatClassID {
		return nil, chk.Err("sparse: unexpected PETSc classid %d (want %d)\n", classID, petscMatClassID)
	}
	var rows, cols, nnz uint32
	if err := binary.Read(r, binary.BigEndian, &rows); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &cols); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &nnz); err != nil {
		return nil, err
	}
	rowNNZ := make([]uint32, rows)
	for i := range rowNNZ {
		if err := binary.Read(r, binary.BigEndian, &rowNNZ[i]); err != nil {
			return nil, err
		}
	}
	colIdx := make([]uint32, nnz)
	for i := range colIdx {
		if err := binary.Read(r, binary.BigEndian, &colIdx[i]); err != nil {
			return nil, err
		}
	}
	vals := make([]float64, nnz)
	for i := range vals {
		if err := binary.Read(r, binary.BigEndian, &vals[i]); err != nil {
			return nil, err
		}
	}

	m := New(int(rows))
	pos := 0
	for row, n := range rowNNZ {
		for k := uint32(0); k < n; k++ {
			col := int(colIdx[pos])
			if row <= col {
				m.Insert(row, col, vals[pos])
			}
			pos++
		}
	}
	return m, nil
}
