// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparse

import (
	"bytes"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_sparse01(tst *testing.T) {

	chk.PrintTitle("sparse01: additive merge and symmetry")

	m := New(3)
	m.Insert(0, 1, 1.5)
	m.Insert(1, 0, 2.5) // same key, mirrored order: must accumulate
	m.Insert(2, 2, 4.0)

	if got := m.Get(0, 1); got != 4.0 {
		tst.Errorf("expected Get(0,1) = 4, got %g", got)
	}
	if got := m.Get(1, 0); got != 4.0 {
		tst.Errorf("expected Get(1,0) = Get(0,1) = 4, got %g", got)
	}
	if m.NNZ() != 2 {
		tst.Errorf("expected 2 distinct upper-triangle entries, got %d", m.NNZ())
	}
}

func Test_sparse02(tst *testing.T) {

	chk.PrintTitle("sparse02: consume merges and empties the source")

	a := New(2)
	a.Insert(0, 0, 1.0)
	b := New(2)
	b.Insert(0, 0, 2.0)
	b.Insert(0, 1, 3.0)

	a.Consume(b)
	if got := a.Get(0, 0); got != 3.0 {
		tst.Errorf("expected Get(0,0) = 3 after consume, got %g", got)
	}
	if got := a.Get(0, 1); got != 3.0 {
		tst.Errorf("expected Get(0,1) = 3 after consume, got %g", got)
	}
	if b.NNZ() != 0 {
		tst.Errorf("expected b to be emptied by Consume, got %d entries", b.NNZ())
	}
}

func Test_sparse03(tst *testing.T) {

	chk.PrintTitle("sparse03: PETSc binary round-trip preserves the upper triangle")

	m := New(3)
	m.Insert(0, 0, 1.0)
	m.Insert(0, 2, 2.0)
	m.Insert(1, 1, 3.0)
	m.Insert(2, 2, 4.0)

	var buf bytes.Buffer
	if err := m.WritePETScBinary(&buf); err != nil {
		tst.Fatalf("write failed: %v", err)
	}

	back, err := ReadPETScBinary(&buf)
	if err != nil {
		tst.Fatalf("read failed: %v", err)
	}
	want := m.UpperEntries()
	got := back.UpperEntries()
	if len(want) != len(got) {
		tst.Fatalf("entry count mismatch: want %d, got %d", len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			tst.Errorf("entry %d mismatch: want %+v, got %+v", i, want[i], got[i])
		}
	}
}
