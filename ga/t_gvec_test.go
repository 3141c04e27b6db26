// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_addval01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("addval01. insert, sum and zero dropping")

	var v GVec
	v = v.AddVal(E1, 1.5)
	v = v.AddVal(E1, 0.5)
	chk.Scalar(tst, "e1", 1e-17, v.Get(E1), 2)
	if !v.Has(E1) {
		tst.Errorf("e1 must be present\n")
		return
	}

	// exact cancellation drops the blade
	v = v.AddVal(E1, -2)
	if v.Has(E1) || !v.IsEmpty() {
		tst.Errorf("cancelled blade must be dropped: %v\n", v)
		return
	}
}

func Test_wedge01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wedge01. anticommutativity and grade raising")

	var a, b GVec
	a = a.AddVal(E1, 2).AddVal(E2, 3).AddVal(E0, 1)
	b = b.AddVal(E1, -1).AddVal(E2, 4)

	ab := a.Wedge(b)
	ba := b.Wedge(a)
	io.Pforan("a^b = %v\n", ab)

	// e1-e2 part: 2*4 - 3*(-1) = 11
	chk.Scalar(tst, "(a^b)[e1^e2]", 1e-17, ab.Get(E12), 11)
	chk.Scalar(tst, "(a^b)[e0^e1]", 1e-17, ab.Get(E01), -1)
	chk.Scalar(tst, "(a^b)[e0^e2]", 1e-17, ab.Get(E02), 4)

	// grade-1 by grade-1 raises to grade 2 only
	if ab.Has(Scal) || ab.Has(E1) || ab.Has(E2) || ab.Has(E0) || ab.Has(E012) {
		tst.Errorf("wedge of vectors must be a pure bivector: %v\n", ab)
		return
	}

	// anticommutative
	for k := Blade(0); k < 8; k++ {
		chk.Scalar(tst, io.Sf("(a^b)+(b^a) @ %d", k), 1e-17, ab.Get(k)+ba.Get(k), 0)
	}

	// repeated vector vanishes
	aa := a.Wedge(a)
	if !aa.IsEmpty() {
		tst.Errorf("a^a must vanish: %v\n", aa)
		return
	}
}

func Test_dot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dot01. inner product and degenerate direction")

	var a, b GVec
	a = a.AddVal(E1, 3).AddVal(E2, 4).AddVal(E0, 7)
	b = b.AddVal(E1, 1).AddVal(E2, 2).AddVal(E0, -5)

	// e0 contributes nothing: 3*1 + 4*2 = 11
	s, rest := a.Dot(b).Scalarize()
	chk.Scalar(tst, "a.b", 1e-17, s, 11)
	if !rest.IsEmpty() {
		tst.Errorf("vector.vector must be scalar only: %v\n", rest)
		return
	}
}

func Test_dual01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dual01. involution over all blades")

	var v GVec
	v = v.AddVal(Scal, 1).AddVal(E0, 2).AddVal(E1, 3).AddVal(E2, 4)
	v = v.AddVal(E01, 5).AddVal(E02, 6).AddVal(E12, 7).AddVal(E012, 8)

	d := v.Dual()
	io.Pforan("dual = %v\n", d)

	// blades swap with their complements
	chk.Scalar(tst, "dual[e0^e1^e2]", 1e-17, d.Get(E012), 1)
	chk.Scalar(tst, "dual[e1^e2]", 1e-17, d.Get(E12), -2)
	chk.Scalar(tst, "dual[e0^e2]", 1e-17, d.Get(E02), 3)
	chk.Scalar(tst, "dual[e0^e1]", 1e-17, d.Get(E01), 4)
	chk.Scalar(tst, "dual[e2]", 1e-17, d.Get(E2), 5)
	chk.Scalar(tst, "dual[e1]", 1e-17, d.Get(E1), 6)
	chk.Scalar(tst, "dual[e0]", 1e-17, d.Get(E0), -7)
	chk.Scalar(tst, "dual[1]", 1e-17, d.Get(Scal), 8)

	// dual of dual is the identity
	dd := d.Dual()
	for k := Blade(0); k < 8; k++ {
		chk.Scalar(tst, io.Sf("dual^2 @ %d", k), 1e-17, dd.Get(k), v.Get(k))
	}
}

func Test_scal01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scal01. scalarize and pointwise operations")

	var v GVec
	v = v.AddVal(Scal, 2.5).AddVal(E12, 5)
	s, rest := v.Scalarize()
	chk.Scalar(tst, "scalar part", 1e-17, s, 2.5)
	chk.Scalar(tst, "rest[e1^e2]", 1e-17, rest.Get(E12), 5)
	if rest.Has(Scal) {
		tst.Errorf("scalarize must remove the grade-0 blade\n")
		return
	}

	h := v.DivScalar(2)
	chk.Scalar(tst, "half scalar", 1e-17, h.Get(Scal), 1.25)
	chk.Scalar(tst, "half e1^e2", 1e-17, h.Get(E12), 2.5)

	w := v.Add(h.MulScalar(-2))
	if !w.IsEmpty() {
		tst.Errorf("v - 2*(v/2) must be empty: %v\n", w)
		return
	}
}
