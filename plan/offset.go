// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plan

import (
	"github.com/cpmech/goslice/contour"
	"github.com/cpmech/goslice/ga"
	"github.com/cpmech/goslice/gm"
)

// OffsetContour shifts a contour inward by dist, producing the path
// of the next perimeter wall. Runs of collinear edges are merged
// first; each remaining edge line is translated along its
// perpendicular toward the interior (the side reported by the probe)
// and consecutive shifted lines are intersected for the new vertices.
// A contour that collapses below three vertices returns nil
func OffsetContour(c *contour.Contour, dist float64) *contour.Contour {

	var edges []gm.LineSeg
	for i := 0; i < c.Len(); i++ {
		edges = append(edges, c.Edge(i))
	}
	edges = gm.CombineConsecutiveLines(edges)
	if len(edges) < 3 {
		return nil
	}

	// translate each edge line toward the inside
	lines := make([]gm.PLine2, len(edges))
	for i, e := range edges {
		pl := gm.EToPLine2(e)
		inside := insideOfSeg(c, e)
		n := pl.Normalize()
		nx := n.V.Get(ga.E1)
		ny := n.V.Get(ga.E2)
		s := 1.0
		if inside.X*nx+inside.Y*ny < 0 {
			s = -1
		}
		// TranslatePerp moves the line opposite to its normal for a
		// positive distance
		lines[i] = gm.TranslatePerp(pl, -s*dist)
	}

	// intersect consecutive shifted lines
	var pts []gm.Point2
	for i := range lines {
		prev := lines[(i+len(lines)-1)%len(lines)]
		switch r := gm.PLinesIntersectAt(prev, lines[i]).(type) {
		case gm.IntersectsAt:
			pts = append(pts, r.P)
		case gm.Parallel, gm.AntiParallel, gm.Collinear:
			// adjacent edges degenerated under the offset
			continue
		default:
			gm.Insane(r)
		}
	}
	if len(pts) < 3 {
		return nil
	}

	// a vertex closer than dist to any original edge means the offset
	// crossed itself: the contour has collapsed
	for _, p := range pts {
		for i := 0; i < c.Len(); i++ {
			if gm.DistPointSeg(p, c.Edge(i)) < dist-1e-6 {
				return nil
			}
		}
	}
	return &contour.Contour{Pts: pts}
}

// insideOfSeg finds the interior direction at the midpoint of an edge
// of the contour. The edge may be a merged run, so it is located by
// its midpoint rather than by index
func insideOfSeg(c *contour.Contour, e gm.LineSeg) gm.Point2 {
	for i := 0; i < c.Len(); i++ {
		if gm.Pt2Equal(c.Edge(i).Mid(), e.Mid()) {
			return c.InsideDir(i)
		}
	}
	// merged run: probe the first original edge starting at e.P
	for i := 0; i < c.Len(); i++ {
		if gm.Pt2Equal(c.Edge(i).P, e.P) {
			return c.InsideDir(i)
		}
	}
	return c.InsideDir(0)
}
