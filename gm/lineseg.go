// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gm

import (
	"github.com/cpmech/gosl/io"
)

// DegenerateSegment signals an attempt to build a segment with zero
// displacement
type DegenerateSegment struct {
	P Point2 // the origin of the rejected segment
}

func (e DegenerateSegment) Error() string {
	return io.Sf("degenerate segment at %v: displacement is zero", e.P)
}

// EmptyPointList signals an attempt to build segments out of no points
type EmptyPointList struct{}

func (e EmptyPointList) Error() string {
	return "cannot build segments from an empty point list"
}

// LineSeg holds a directed line segment: origin P plus non-zero
// displacement D; the endpoint is P+D
type LineSeg struct {
	P Point2 // origin
	D Point2 // displacement; never zero for constructed segments
}

// NewLineSeg builds a segment, rejecting a zero displacement
func NewLineSeg(p, d Point2) (LineSeg, error) {
	if d.X == 0 && d.Y == 0 {
		return LineSeg{}, DegenerateSegment{P: p}
	}
	return LineSeg{P: p, D: d}, nil
}

// SegBetween builds the segment from a to b
func SegBetween(a, b Point2) (LineSeg, error) {
	return NewLineSeg(a, b.Sub(a))
}

// End returns the endpoint P+D
func (o LineSeg) End() Point2 {
	return o.P.Add(o.D)
}

// Mid returns the midpoint
func (o LineSeg) Mid() Point2 {
	return o.P.Add(o.D.Scale(0.5))
}

// Len returns the segment length
func (o LineSeg) Len() float64 {
	return o.D.Norm()
}

// Flip returns the segment with origin P+D and displacement -D
func (o LineSeg) Flip() LineSeg {
	return LineSeg{P: o.End(), D: o.D.Scale(-1)}
}

func (o LineSeg) String() string {
	return io.Sf("[%v -> %v]", o.P, o.End())
}

// DistPointSeg returns the distance from a point to the segment
func DistPointSeg(p Point2, s LineSeg) float64 {
	t := p.Sub(s.P).Dot(s.D) / s.D.NormSq()
	t = max(0, min(1, t))
	return p.Sub(s.P.Add(s.D.Scale(t))).Norm()
}

// SegsFromPoints chains the given points into consecutive segments,
// optionally closing the last point back to the first
func SegsFromPoints(pts []Point2, closed bool) (segs []LineSeg, err error) {
	if len(pts) == 0 {
		return nil, EmptyPointList{}
	}
	for i := 0; i < len(pts)-1; i++ {
		s, err := SegBetween(pts[i], pts[i+1])
		if err != nil {
			return nil, err
		}
		segs = append(segs, s)
	}
	if closed && len(pts) > 1 {
		s, err := SegBetween(pts[len(pts)-1], pts[0])
		if err != nil {
			return nil, err
		}
		segs = append(segs, s)
	}
	return
}
