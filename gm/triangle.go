// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gm

// Triangle holds three ordered edges sharing endpoints cyclically
type Triangle struct {
	Edges [3][2]Point3
}

// NewTriangle builds a triangle from its three vertices
func NewTriangle(a, b, c Point3) Triangle {
	return Triangle{Edges: [3][2]Point3{{a, b}, {b, c}, {c, a}}}
}

// SliceAtZ intersects the triangle with the plane z=v. It returns the
// resulting fragment and ok=true when the intersection is a proper
// segment: either exactly one edge lies on the plane, or two distinct
// edge crossings exist. Degenerate outcomes (whole triangle on the
// plane, a single touching point, or three distinct crossings) return
// ok=false and are meant to be dropped silently by the caller
func (o Triangle) SliceAtZ(v float64) (frag [2]Point2, ok bool) {

	// edges lying exactly on the plane and point crossings
	var flat [][2]Point3
	var pts []Point2
	for _, e := range o.Edges {
		p, q := e[0], e[1]
		if p.Z == q.Z {
			if p.Z == v {
				flat = append(flat, e)
			}
			continue
		}
		t := (v - p.Z) / (q.Z - p.Z)
		if t >= 0 && t <= 1 {
			pts = append(pts, Point2{p.X + t*(q.X-p.X), p.Y + t*(q.Y-p.Y)})
		}
	}

	// a single flat edge is the fragment; more than one means the
	// whole triangle is coplanar with the slice
	if len(flat) == 1 {
		return [2]Point2{flat[0][0].To2D(), flat[0][1].To2D()}, true
	}
	if len(flat) > 1 {
		return
	}

	// deduplicate crossings (shared vertices produce exact repeats)
	var uniq []Point2
	for _, p := range pts {
		seen := false
		for _, q := range uniq {
			if p == q {
				seen = true
				break
			}
		}
		if !seen {
			uniq = append(uniq, p)
		}
	}
	if len(uniq) == 2 {
		return [2]Point2{uniq[0], uniq[1]}, true
	}
	return
}
