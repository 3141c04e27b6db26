// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contour

import (
	"github.com/cpmech/goslice/gm"
)

// InnerDepth is the default distance at which interior sample points
// are placed off an edge midpoint
const InnerDepth = 1e-4

// InsideDir returns the unit direction pointing from the midpoint of
// edge i into the contour's interior. The decision does not assume
// the contour's orientation is already correct: it combines the side
// of the edge facing the far exterior reference with the crossing
// parity of the ray toward that reference, so a flipped loop still
// yields the true interior side
func (o *Contour) InsideDir(i int) gm.Point2 {

	L := o.Edge(i)
	m := L.Mid()
	ray := gm.LineSeg{P: m, D: FarExterior.Sub(m)}
	l0 := gm.EToPLine2(ray)

	// halves radiating from the midpoint; flip the edge when the
	// exterior ray falls in the clockwise half so the side test below
	// works against a fixed orientation
	h1, h2 := halvesFrom(L)
	if gm.LineBetween(h1, gm.Clockwise, l0, h2) {
		L = L.Flip()
		h1, h2 = halvesFrom(L)
	}

	// perpendicular bisector of the (possibly flipped) edge
	B := gm.PerpThrough(gm.EToPLine2(L), gm.EToPPoint2(m))

	sameSide := gm.LineBetween(h1, gm.Clockwise, l0, h2) == gm.LineBetween(h1, gm.Clockwise, B, h2)

	// parity of the contour around the midpoint, edge i excluded
	count := o.crossings(ray, i)

	s := 1.0
	if count%2 == 0 {
		if sameSide {
			s = -1
		}
	} else {
		if !sameSide {
			s = -1
		}
	}
	return B.Dir().Scale(s)
}

// InnerPoint returns a point at distance depth inside the contour,
// off the midpoint of edge i along its perpendicular bisector
func (o *Contour) InnerPoint(i int, depth float64) gm.Point2 {
	return o.Edge(i).Mid().Add(o.InsideDir(i).Scale(depth))
}

// halvesFrom splits an edge at its midpoint into the two half
// segments radiating outward from it
func halvesFrom(L gm.LineSeg) (h1, h2 gm.PLine2) {
	m := L.Mid()
	h1 = gm.EToPLine2(gm.LineSeg{P: m, D: L.P.Sub(m)})
	h2 = gm.EToPLine2(gm.LineSeg{P: m, D: L.End().Sub(m)})
	return
}
