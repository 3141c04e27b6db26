// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CheckPts checks a computed point list against the expected one
func CheckPts(tst *testing.T, msg string, tol float64, pts, correct []Point2) {
	if len(pts) != len(correct) {
		tst.Errorf("%s: wrong number of points: %d != %d\n", msg, len(pts), len(correct))
		return
	}
	for i, p := range pts {
		chk.Scalar(tst, io.Sf("%s: pt%d.x", msg, i), tol, p.X, correct[i].X)
		chk.Scalar(tst, io.Sf("%s: pt%d.y", msg, i), tol, p.Y, correct[i].Y)
	}
}

// CheckSeg checks a computed segment against expected endpoints
func CheckSeg(tst *testing.T, msg string, tol float64, seg LineSeg, a, b Point2) {
	chk.Scalar(tst, io.Sf("%s: a.x", msg), tol, seg.P.X, a.X)
	chk.Scalar(tst, io.Sf("%s: a.y", msg), tol, seg.P.Y, a.Y)
	chk.Scalar(tst, io.Sf("%s: b.x", msg), tol, seg.End().X, b.X)
	chk.Scalar(tst, io.Sf("%s: b.y", msg), tol, seg.End().Y, b.Y)
}

// PtsLims returns the bounding box of a point list
func PtsLims(pts []Point2) (xmin, xmax, ymin, ymax float64) {
	for i, p := range pts {
		if i == 0 {
			xmin, xmax, ymin, ymax = p.X, p.X, p.Y, p.Y
			continue
		}
		xmin, xmax = min(xmin, p.X), max(xmax, p.X)
		ymin, ymax = min(ymin, p.Y), max(ymax, p.Y)
	}
	return
}
