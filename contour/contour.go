// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package contour implements the assembly of sliced edge fragments
// into oriented closed loops, the containment forest over those
// loops, and the interior probe deciding on which side of an edge the
// inside of a contour lies
package contour

import (
	"sort"

	"github.com/cpmech/goslice/gm"

	"github.com/cpmech/gosl/io"
)

// FarExterior is the reference point assumed to lie outside every
// contour. It serves ray-parity tests and therefore requires all
// geometry to live in the positive quadrant; callers slicing
// off-quadrant input must move it first
var FarExterior = gm.Point2{X: -1, Y: -1}

// UnclosedLoop signals fragments that do not close into a loop
type UnclosedLoop struct {
	At gm.Point2 // dangling endpoint with no connecting fragment
}

func (e UnclosedLoop) Error() string {
	return io.Sf("cannot close loop: no fragment connects to %v", e.At)
}

// Contour holds an ordered cyclic sequence of at least three planar
// points; the closing edge from the last point back to the first is
// implicit. Once assembled, the interior lies to the right of each
// directed edge
type Contour struct {
	Pts []gm.Point2
}

// Len returns the number of vertices (and edges)
func (o *Contour) Len() int {
	return len(o.Pts)
}

// Edge returns the i-th directed edge, including the implicit closing
// one
func (o *Contour) Edge(i int) gm.LineSeg {
	a := o.Pts[i]
	b := o.Pts[(i+1)%len(o.Pts)]
	return gm.LineSeg{P: a, D: b.Sub(a)}
}

// Reverse flips the traversal order in place
func (o *Contour) Reverse() {
	n := len(o.Pts)
	for i := 0; i < n/2; i++ {
		o.Pts[i], o.Pts[n-1-i] = o.Pts[n-1-i], o.Pts[i]
	}
}

// Equal compares two contours as cyclic sequences, insensitive to
// starting point and traversal direction
func (o *Contour) Equal(b *Contour) bool {
	n := o.Len()
	if n != b.Len() {
		return false
	}
	match := func(rev bool) bool {
		for shift := 0; shift < n; shift++ {
			all := true
			for i := 0; i < n; i++ {
				j := (shift + i) % n
				if rev {
					j = ((shift-i)%n + n) % n
				}
				if !gm.Pt2Equal(o.Pts[i], b.Pts[j]) {
					all = false
					break
				}
			}
			if all {
				return true
			}
		}
		return false
	}
	return match(false) || match(true)
}

func (o *Contour) String() string {
	l := "["
	for i, p := range o.Pts {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%v", p)
	}
	return l + "]"
}

// crossings counts proper crossings of a ray with the contour's
// edges, skipping edge index skip (pass a negative skip to test all
// edges). A crossing exactly through a vertex is counted once: only
// the edge ending at that vertex registers it
func (o *Contour) crossings(ray gm.LineSeg, skip int) (n int) {
	for i := 0; i < o.Len(); i++ {
		if i == skip {
			continue
		}
		switch gm.LineIntersection(ray, o.Edge(i)).(type) {
		case gm.IntersectsAt, gm.HitEnd:
			n++
		}
	}
	return
}

// AssembleLoops stitches unordered directed point pairs into closed
// loops. Pairs are pre-sorted so the result does not depend on input
// order; fragments connect forward (start matches the open end) or
// backward (end matches; the fragment is reversed on insertion).
// Loops shorter than three vertices are dropped silently; a dangling
// end with no connector fails with UnclosedLoop. Every returned loop
// is normalized so its interior lies to the right of each edge
func AssembleLoops(frags [][2]gm.Point2) (loops []*Contour, err error) {

	pairs := make([][2]gm.Point2, len(frags))
	copy(pairs, frags)
	sort.Slice(pairs, func(i, j int) bool {
		a, b := pairs[i], pairs[j]
		if a[0].X != b[0].X {
			return a[0].X < b[0].X
		}
		if a[0].Y != b[0].Y {
			return a[0].Y < b[0].Y
		}
		if a[1].X != b[1].X {
			return a[1].X < b[1].X
		}
		return a[1].Y < b[1].Y
	})

	for len(pairs) > 0 {
		pts := []gm.Point2{pairs[0][0], pairs[0][1]}
		pairs = pairs[1:]
		for {
			end := pts[len(pts)-1]
			if gm.Pt2Equal(end, pts[0]) {
				pts = pts[:len(pts)-1]
				break
			}
			found, rev := -1, false
			for k, pr := range pairs {
				if gm.Pt2Equal(pr[0], end) {
					found = k
					break
				}
				if gm.Pt2Equal(pr[1], end) {
					found, rev = k, true
					break
				}
			}
			if found < 0 {
				return nil, UnclosedLoop{At: end}
			}
			pr := pairs[found]
			pairs = append(pairs[:found], pairs[found+1:]...)
			if rev {
				pts = append(pts, pr[0])
			} else {
				pts = append(pts, pr[1])
			}
		}
		if len(pts) < 3 {
			continue
		}
		c := &Contour{Pts: pts}
		c.FixWinding()
		loops = append(loops, c)
	}
	return
}

// FixWinding reverses the loop when its interior falls on the left of
// the first directed edge, establishing the interior-to-the-right
// invariant
func (o *Contour) FixWinding() {
	inside := o.InsideDir(0)
	e := o.Edge(0)
	right := gm.Point2{X: e.D.Y, Y: -e.D.X}
	if inside.Dot(right) < 0 {
		o.Reverse()
	}
}
