// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contour

import (
	"testing"

	"github.com/cpmech/goslice/gm"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func square(x0, y0, l float64) [][2]gm.Point2 {
	a := gm.Point2{X: x0, Y: y0}
	b := gm.Point2{X: x0 + l, Y: y0}
	c := gm.Point2{X: x0 + l, Y: y0 + l}
	d := gm.Point2{X: x0, Y: y0 + l}
	return [][2]gm.Point2{{a, b}, {b, c}, {c, d}, {d, a}}
}

func Test_loops01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loops01. assembling a unit square")

	loops, err := AssembleLoops(square(0, 0, 1))
	if err != nil {
		tst.Errorf("AssembleLoops failed: %v\n", err)
		return
	}
	chk.IntAssert(len(loops), 1)
	c := loops[0]
	chk.IntAssert(c.Len(), 4)
	io.Pforan("c = %v\n", c)

	// the interior must lie to the right of each directed edge
	for i := 0; i < c.Len(); i++ {
		e := c.Edge(i)
		right := gm.Point2{X: e.D.Y, Y: -e.D.X}
		if c.InsideDir(i).Dot(right) <= 0 {
			tst.Errorf("interior must be to the right of edge %d\n", i)
			return
		}
	}

	// ray parity from the first edge's midpoint toward the exterior:
	// odd over the remaining edges
	m := c.Edge(0).Mid()
	ray := gm.LineSeg{P: m, D: FarExterior.Sub(m)}
	chk.IntAssert(c.crossings(ray, 0)%2, 1)
}

func Test_loops02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loops02. input order independence and reversed fragments")

	frags := square(0, 0, 1)

	// scramble and reverse some fragments: the loop must still close
	scr := [][2]gm.Point2{
		{frags[2][1], frags[2][0]},
		frags[0],
		{frags[3][1], frags[3][0]},
		frags[1],
	}
	a, err := AssembleLoops(frags)
	if err != nil {
		tst.Errorf("AssembleLoops failed: %v\n", err)
		return
	}
	b, err := AssembleLoops(scr)
	if err != nil {
		tst.Errorf("AssembleLoops (scrambled) failed: %v\n", err)
		return
	}
	chk.IntAssert(len(a), 1)
	chk.IntAssert(len(b), 1)
	if !a[0].Equal(b[0]) {
		tst.Errorf("assembly must not depend on fragment order:\n%v\n%v\n", a[0], b[0])
		return
	}
}

func Test_loops03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loops03. unclosed input and short loops")

	// a dangling chain cannot close
	_, err := AssembleLoops([][2]gm.Point2{
		{{0, 0}, {1, 0}},
		{{1, 0}, {1, 1}},
	})
	if _, ok := err.(UnclosedLoop); !ok {
		tst.Errorf("expected UnclosedLoop: %v\n", err)
		return
	}

	// a two-vertex loop is dropped silently
	loops, err := AssembleLoops([][2]gm.Point2{
		{{0, 0}, {1, 0}},
		{{1, 0}, {0, 0}},
	})
	if err != nil {
		tst.Errorf("short loop must not fail: %v\n", err)
		return
	}
	chk.IntAssert(len(loops), 0)
}

func Test_loops04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loops04. two nested squares from mixed fragments")

	frags := append(square(0, 0, 10), square(2, 2, 6)...)
	loops, err := AssembleLoops(frags)
	if err != nil {
		tst.Errorf("AssembleLoops failed: %v\n", err)
		return
	}
	chk.IntAssert(len(loops), 2)

	roots := BuildTree(loops)
	chk.IntAssert(len(roots), 1)
	chk.IntAssert(len(roots[0].Children), 1)
	chk.IntAssert(roots[0].Count(), 2)
	chk.IntAssert(roots[0].C.Len(), 4)
}

func Test_contains01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("contains01. parity containment and self exclusion")

	outer := &Contour{Pts: []gm.Point2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	inner := &Contour{Pts: []gm.Point2{{2, 2}, {8, 2}, {8, 8}, {2, 8}}}
	apart := &Contour{Pts: []gm.Point2{{20, 20}, {30, 20}, {30, 30}, {20, 30}}}

	if !Contains(outer, inner) {
		tst.Errorf("outer must contain inner\n")
		return
	}
	if Contains(inner, outer) {
		tst.Errorf("inner must not contain outer\n")
		return
	}
	if Contains(outer, apart) {
		tst.Errorf("disjoint contours must not contain each other\n")
		return
	}

	// a contour equal in value to another is not contained by it
	same := &Contour{Pts: []gm.Point2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	if Contains(outer, same) {
		tst.Errorf("a contour must not contain its own shape\n")
		return
	}
}

func Test_contains02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("contains02. containment is transitive")

	a := &Contour{Pts: []gm.Point2{{0, 0}, {12, 0}, {12, 12}, {0, 12}}}
	b := &Contour{Pts: []gm.Point2{{2, 2}, {10, 2}, {10, 10}, {2, 10}}}
	c := &Contour{Pts: []gm.Point2{{4, 4}, {8, 4}, {8, 8}, {4, 8}}}

	if !Contains(a, b) || !Contains(b, c) {
		tst.Errorf("nesting chain must hold\n")
		return
	}
	if !Contains(a, c) {
		tst.Errorf("containment must be transitive\n")
		return
	}

	roots := BuildTree([]*Contour{c, a, b})
	chk.IntAssert(len(roots), 1)
	chk.IntAssert(len(roots[0].Children), 1)
	chk.IntAssert(len(roots[0].Children[0].Children), 1)
	if roots[0].C != a || roots[0].Children[0].C != b {
		tst.Errorf("tree must nest a > b > c\n")
		return
	}
}

func Test_probe01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("probe01. inner point off an edge midpoint")

	// counterclockwise square: the probe must still find the inside
	ccw := &Contour{Pts: []gm.Point2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}
	q := ccw.InnerPoint(0, 0.25)
	chk.Scalar(tst, "q.x", 1e-14, q.X, 0.5)
	chk.Scalar(tst, "q.y", 1e-14, q.Y, 0.25)

	// clockwise square, probing the top edge
	cw := &Contour{Pts: []gm.Point2{{0, 1}, {1, 1}, {1, 0}, {0, 0}}}
	q = cw.InnerPoint(0, 0.25)
	chk.Scalar(tst, "q.x", 1e-14, q.X, 0.5)
	chk.Scalar(tst, "q.y", 1e-14, q.Y, 0.75)
}

func Test_probe02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("probe02. inside directions around a square")

	c := &Contour{Pts: []gm.Point2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}
	correct := []gm.Point2{{0, 1}, {-1, 0}, {0, -1}, {1, 0}}
	for i := 0; i < c.Len(); i++ {
		d := c.InsideDir(i)
		chk.Scalar(tst, io.Sf("d%d.x", i), 1e-14, d.X, correct[i].X)
		chk.Scalar(tst, io.Sf("d%d.y", i), 1e-14, d.Y, correct[i].Y)
	}
}
