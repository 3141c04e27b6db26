// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ga implements sparse multivectors over the Clifford algebra
// Cl(2,0,1), the projective geometric algebra of the euclidean plane.
// The basis is {1, e0, e1, e2, e0^e1, e0^e2, e1^e2, e0^e1^e2} with
// signatures e0*e0 = 0 and e1*e1 = e2*e2 = 1
package ga

import (
	"math/bits"

	"github.com/cpmech/gosl/io"
)

// Blade is a basis blade key: an ordered subset of {e0, e1, e2}
// encoded as a bitmask with bit i standing for ei
type Blade uint8

// basis blade keys
const (
	Scal Blade = 0         // the scalar blade
	E0   Blade = 1 << 0    // e0 (degenerate direction)
	E1   Blade = 1 << 1    // e1
	E2   Blade = 1 << 2    // e2
	E01  Blade = E0 | E1      // e0^e1
	E02  Blade = E0 | E2      // e0^e2
	E12  Blade = E1 | E2      // e1^e2
	E012 Blade = E0 | E1 | E2 // e0^e1^e2 (pseudoscalar)
)

// GVec holds a sparse multivector: a coefficient per basis blade, with
// absent blades meaning zero. Values are immutable; all operations
// return new multivectors
type GVec struct {
	coef [8]float64 // dense coefficients indexed by blade key
	has  uint8      // occupancy bitmask; bit k set means blade k is present
}

// Grade returns the number of basis vectors in a blade
func (k Blade) Grade() int {
	return bits.OnesCount8(uint8(k))
}

// IsEmpty tells whether no blade is present
func (o GVec) IsEmpty() bool {
	return o.has == 0
}

// Has tells whether blade k is present
func (o GVec) Has(k Blade) bool {
	return o.has&(1<<k) != 0
}

// Get returns the coefficient at blade k (zero if absent)
func (o GVec) Get(k Blade) float64 {
	return o.coef[k]
}

// AddVal returns a copy with v summed into blade k. An exactly zero
// result removes the blade
func (o GVec) AddVal(k Blade, v float64) GVec {
	o.coef[k] += v
	if o.coef[k] == 0 {
		o.has &^= 1 << k
	} else {
		o.has |= 1 << k
	}
	return o
}

// Add returns the blade-wise sum of two multivectors
func (o GVec) Add(b GVec) GVec {
	for k := Blade(0); k < 8; k++ {
		if b.Has(k) {
			o = o.AddVal(k, b.coef[k])
		}
	}
	return o
}

// DivScalar returns the multivector scaled by 1/s
func (o GVec) DivScalar(s float64) GVec {
	var r GVec
	for k := Blade(0); k < 8; k++ {
		if o.Has(k) {
			r = r.AddVal(k, o.coef[k]/s)
		}
	}
	return r
}

// MulScalar returns the multivector scaled by s
func (o GVec) MulScalar(s float64) GVec {
	var r GVec
	for k := Blade(0); k < 8; k++ {
		if o.Has(k) {
			r = r.AddVal(k, o.coef[k]*s)
		}
	}
	return r
}

// Scalarize splits the multivector into its grade-0 part and the
// remainder
func (o GVec) Scalarize() (s float64, rest GVec) {
	s = o.coef[Scal]
	rest = o
	rest.coef[Scal] = 0
	rest.has &^= 1
	return
}

// reorderSign gives the parity sign of sorting the concatenation of
// two basis-vector lists into canonical ascending order
func reorderSign(a, b Blade) float64 {
	n := 0
	x := uint8(a) >> 1
	for x != 0 {
		n += bits.OnesCount8(x & uint8(b))
		x >>= 1
	}
	if n&1 == 1 {
		return -1
	}
	return 1
}

// mulBasis multiplies two basis blades, contracting repeated basis
// vectors through their signatures. The e0 direction squares to zero,
// killing any product that repeats it
func mulBasis(a, b Blade) (sign float64, k Blade) {
	if a&b&E0 != 0 {
		return 0, Scal
	}
	return reorderSign(a, b), a ^ b
}

// Wedge returns the outer product: anticommutative and grade-raising.
// Terms with a repeated basis vector vanish
func (o GVec) Wedge(b GVec) GVec {
	var r GVec
	for ka := Blade(0); ka < 8; ka++ {
		if !o.Has(ka) {
			continue
		}
		for kb := Blade(0); kb < 8; kb++ {
			if !b.Has(kb) || ka&kb != 0 {
				continue
			}
			s, k := mulBasis(ka, kb)
			if s != 0 {
				r = r.AddVal(k, s*o.coef[ka]*b.coef[kb])
			}
		}
	}
	return r
}

// Dot returns the inner product: the grade-lowering part of the
// geometric product, keeping terms of grade |ga - gb|. Its grade-0
// component decides parallelism of lines
func (o GVec) Dot(b GVec) GVec {
	var r GVec
	for ka := Blade(0); ka < 8; ka++ {
		if !o.Has(ka) {
			continue
		}
		for kb := Blade(0); kb < 8; kb++ {
			if !b.Has(kb) {
				continue
			}
			s, k := mulBasis(ka, kb)
			if s == 0 {
				continue
			}
			g := ka.Grade() - kb.Grade()
			if g < 0 {
				g = -g
			}
			if k.Grade() != g {
				continue
			}
			r = r.AddVal(k, s*o.coef[ka]*b.coef[kb])
		}
	}
	return r
}

// dualSign gives the sign carried by the Poincare duality map on each
// blade; the pair {e0, e1^e2} flips so that the dual of the dual is
// the identity on every grade
func dualSign(k Blade) float64 {
	if k == E0 || k == E12 {
		return -1
	}
	return 1
}

// Dual swaps every blade with its complement. It is an involution:
// o.Dual().Dual() equals o
func (o GVec) Dual() GVec {
	var r GVec
	for k := Blade(0); k < 8; k++ {
		if o.Has(k) {
			r = r.AddVal(k^E012, dualSign(k)*o.coef[k])
		}
	}
	return r
}

// String returns a representation listing present blades only
func (o GVec) String() string {
	names := []string{"1", "e0", "e1", "e2", "e0^e1", "e0^e2", "e1^e2", "e0^e1^e2"}
	l, first := "{", true
	for k := Blade(0); k < 8; k++ {
		if o.Has(k) {
			if !first {
				l += ", "
			}
			l += io.Sf("%s:%g", names[k], o.coef[k])
			first = false
		}
	}
	return l + "}"
}
