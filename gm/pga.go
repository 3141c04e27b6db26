// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gm

import (
	"math"
	"sort"

	"github.com/cpmech/goslice/ga"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// PPoint2 holds a projective point: a grade-2 multivector over
// {e0^e1, e0^e2, e1^e2}
type PPoint2 struct {
	V ga.GVec
}

// PLine2 holds a projective (oriented) line: a grade-1 multivector
// over {e0, e1, e2}
type PLine2 struct {
	V ga.GVec
}

// RotDir selects the sweep direction of LineBetween
type RotDir int

// rotation directions
const (
	Clockwise RotDir = iota
	CounterClockwise
)

// EToPPoint2 lifts a euclidean point into the projective plane
func EToPPoint2(p Point2) PPoint2 {
	var v ga.GVec
	v = v.AddVal(ga.E01, p.Y)
	v = v.AddVal(ga.E02, -p.X)
	v = v.AddVal(ga.E12, 1)
	return PPoint2{V: v}
}

// EToPLine2 lifts a segment into the oriented projective line through
// it. For a segment from (x1,y1) to (x2,y2) the coefficients are
// e0 = y1*x2 - x1*y2, e1 = y2 - y1, e2 = x1 - x2
func EToPLine2(o LineSeg) PLine2 {
	x1, y1 := o.P.X, o.P.Y
	x2, y2 := o.End().X, o.End().Y
	var v ga.GVec
	v = v.AddVal(ga.E0, y1*x2-x1*y2)
	v = v.AddVal(ga.E1, y2-y1)
	v = v.AddVal(ga.E2, x1-x2)
	return PLine2{V: v}
}

// Ideal tells whether the point lies at infinity (e1^e2 vanishes)
func (o PPoint2) Ideal() bool {
	return !o.V.Has(ga.E12)
}

// Canon scales the point so its e1^e2 coefficient is one. Ideal
// points are returned unchanged
func (o PPoint2) Canon() PPoint2 {
	if o.Ideal() {
		return o
	}
	return PPoint2{V: o.V.DivScalar(o.V.Get(ga.E12))}
}

// ToE drops a canonical projective point back to euclidean
// coordinates
func (o PPoint2) ToE() Point2 {
	c := o.Canon()
	return Point2{-c.V.Get(ga.E02), c.V.Get(ga.E01)}
}

// Normalize scales the line so its euclidean normal has unit length
func (o PLine2) Normalize() PLine2 {
	h := math.Hypot(o.V.Get(ga.E1), o.V.Get(ga.E2))
	if h == 0 {
		return o
	}
	return PLine2{V: o.V.DivScalar(h)}
}

// Dir returns the unit direction of the line (the normal rotated a
// quarter turn counterclockwise)
func (o PLine2) Dir() Point2 {
	n := o.Normalize()
	return Point2{-n.V.Get(ga.E2), n.V.Get(ga.E1)}
}

// FlipPLine2 negates the three grade-1 coefficients: the same
// geometric line with reversed orientation
func FlipPLine2(o PLine2) PLine2 {
	return PLine2{V: o.V.MulScalar(-1)}
}

// TranslatePerp shifts the line by d along its perpendicular, adding
// d*e0 to the normalized multivector
func TranslatePerp(o PLine2, d float64) PLine2 {
	return PLine2{V: o.Normalize().V.AddVal(ga.E0, d)}
}

// Meet intersects two lines, producing their common point
func Meet(a, b PLine2) PPoint2 {
	return PPoint2{V: a.V.Wedge(b.V)}
}

// Join produces the line through two points via dual-meet-dual
func Join(a, b PPoint2) PLine2 {
	return PLine2{V: a.V.Dual().Wedge(b.V.Dual()).Dual()}
}

// PerpThrough returns the line through p perpendicular to l
func PerpThrough(l PLine2, p PPoint2) PLine2 {
	return PLine2{V: l.V.Dot(p.V)}
}

// IntersectPLines returns the euclidean intersection point of two
// lines. The caller must have established that the lines do intersect
func IntersectPLines(a, b PLine2) Point2 {
	return Meet(a, b).ToE()
}

// Intersection is the outcome of intersecting two lines or segments.
// Producers map every algebraic outcome to exactly one variant;
// consumers that enumerate a subset must treat any other variant as a
// broken invariant (see Insane)
type Intersection interface {
	intersection()
}

// IntersectsAt holds a proper crossing
type IntersectsAt struct {
	P Point2
}

// NoIntersection marks lines that cross outside the segments at hand
type NoIntersection struct{}

// Parallel marks distinct lines with equal orientation
type Parallel struct{}

// AntiParallel marks distinct lines with opposite orientation
type AntiParallel struct{}

// Collinear marks segments sharing one projective line without a
// proper overlap
type Collinear struct{}

// LCollinear holds the overlap of two collinear segments
type LCollinear struct {
	A, B Point2
}

// HitStart marks a crossing exactly at the second segment's origin
type HitStart struct{}

// HitEnd marks a crossing exactly at the second segment's endpoint
type HitEnd struct{}

func (IntersectsAt) intersection()   {}
func (NoIntersection) intersection() {}
func (Parallel) intersection()       {}
func (AntiParallel) intersection()   {}
func (Collinear) intersection()      {}
func (LCollinear) intersection()     {}
func (HitStart) intersection()       {}
func (HitEnd) intersection()         {}

// Insane aborts on an Intersection variant that a call site cannot
// handle; reaching it means a broken invariant upstream
func Insane(x Intersection) {
	chk.Panic("insane intersection variant: %v", x)
}

// innerScalar returns the grade-0 part of the inner product of two
// normalized lines: the cosine of the angle between their normals
func innerScalar(a, b PLine2) float64 {
	s, _ := a.Normalize().V.Dot(b.Normalize().V).Scalarize()
	return s
}

// sweepAngle returns the rotation, in direction dir, taking line a
// onto line b within their pencil; the result lies in [0, 2*pi)
func sweepAngle(a, b PLine2, dir RotDir) float64 {
	an, bn := a.Normalize(), b.Normalize()
	cos, _ := an.V.Dot(bn.V).Scalarize()
	sin := an.V.Wedge(bn.V).Get(ga.E12)
	t := math.Atan2(sin, cos)
	if dir == Clockwise {
		t = -t
	}
	if t < 0 {
		t += 2 * math.Pi
	}
	return t
}

// LineBetween tells whether rotating l1 toward l2 in direction dir
// sweeps across l3 first
func LineBetween(l1 PLine2, dir RotDir, l2, l3 PLine2) bool {
	return sweepAngle(l1, l3, dir) < sweepAngle(l1, l2, dir)
}

// PLinesIntersectAt classifies the incidence of two lines: an empty
// meet means one shared projective line; a grade-0 inner product
// rounding to +1 or -1 means equal or opposite parallels; anything
// else is a proper crossing
func PLinesIntersectAt(a, b PLine2) Intersection {
	m := Meet(a, b)
	if m.V.IsEmpty() {
		return Collinear{}
	}
	d := innerScalar(a, b)
	if RoundEq(d, 1) {
		return Parallel{}
	}
	if RoundEq(d, -1) {
		return AntiParallel{}
	}
	if m.Ideal() {
		// nearly parallel beyond the rounding: classify by the sign
		// of the cosine rather than divide by a vanishing weight
		if d < 0 {
			return AntiParallel{}
		}
		return Parallel{}
	}
	return IntersectsAt{P: m.ToE()}
}

// onSegment tells whether a point of the segment's line lies within
// the segment: the sum of squared distances to both endpoints must
// not exceed the squared length
func onSegment(p Point2, o LineSeg) bool {
	return p.Sub(o.P).NormSq()+p.Sub(o.End()).NormSq() <= o.D.NormSq()
}

// LineIntersection intersects two segments. A crossing landing
// exactly on the second segment's origin or endpoint promotes to
// HitStart or HitEnd; other crossings must lie within both segments.
// Collinear segments refine to LCollinear when they properly overlap
func LineIntersection(s1, s2 LineSeg) Intersection {
	res := PLinesIntersectAt(EToPLine2(s1), EToPLine2(s2))
	switch r := res.(type) {
	case IntersectsAt:
		p := r.P
		if onSegment(p, s1) {
			if p == s2.P {
				return HitStart{}
			}
			if p == s2.End() {
				return HitEnd{}
			}
			if onSegment(p, s2) {
				return r
			}
		}
		return NoIntersection{}
	case Collinear:
		return collinearOverlap(s1, s2)
	}
	return res
}

// collinearOverlap reports the shared portion of two segments on one
// projective line
func collinearOverlap(s1, s2 LineSeg) Intersection {
	var shared []Point2
	add := func(p Point2) {
		for _, q := range shared {
			if p == q {
				return
			}
		}
		shared = append(shared, p)
	}
	for _, p := range []Point2{s2.P, s2.End()} {
		if onSegment(p, s1) {
			add(p)
		}
	}
	for _, p := range []Point2{s1.P, s1.End()} {
		if onSegment(p, s2) {
			add(p)
		}
	}
	if len(shared) >= 2 {
		sort.Slice(shared, func(i, j int) bool {
			if shared[i].X != shared[j].X {
				return shared[i].X < shared[j].X
			}
			return shared[i].Y < shared[j].Y
		})
		return LCollinear{A: shared[0], B: shared[len(shared)-1]}
	}
	return Collinear{}
}

// CombineConsecutiveLines merges runs of adjacent segments sharing
// one projective line: two segments merge when their meet is empty
// and the endpoint of the first equals the origin of the second.
// Orientation is preserved
func CombineConsecutiveLines(segs []LineSeg) []LineSeg {
	if len(segs) < 2 {
		return segs
	}
	res := []LineSeg{segs[0]}
	for _, s := range segs[1:] {
		last := res[len(res)-1]
		m := Meet(EToPLine2(last), EToPLine2(s))
		if m.V.IsEmpty() && Pt2Equal(last.End(), s.P) {
			res[len(res)-1] = LineSeg{P: last.P, D: last.D.Add(s.D)}
			continue
		}
		res = append(res, s)
	}
	return res
}

// String methods give the classifier variants readable names for
// panic messages and logs

func (o IntersectsAt) String() string   { return io.Sf("IntersectsAt%v", o.P) }
func (o NoIntersection) String() string { return "NoIntersection" }
func (o Parallel) String() string       { return "Parallel" }
func (o AntiParallel) String() string   { return "AntiParallel" }
func (o Collinear) String() string      { return "Collinear" }
func (o LCollinear) String() string     { return io.Sf("LCollinear[%v,%v]", o.A, o.B) }
func (o HitStart) String() string       { return "HitStart" }
func (o HitEnd) String() string         { return "HitEnd" }
