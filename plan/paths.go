// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package plan turns contours and infill segment groups into raw
// machine commands and drives the per-layer slicing pipeline
package plan

import (
	"github.com/cpmech/goslice/contour"
	"github.com/cpmech/goslice/gcode"
	"github.com/cpmech/goslice/gm"

	"github.com/cpmech/gosl/io"
)

// EmptyInfillGroup signals an infill group with no segments; callers
// must pre-filter empty groups
type EmptyInfillGroup struct {
	Index int
}

func (e EmptyInfillGroup) Error() string {
	return io.Sf("infill group %d is empty", e.Index)
}

// rawSeg builds one raw extrude along a segment
func rawSeg(a, b gm.Point2, w, h float64) gcode.RawExtrude2 {
	return gcode.RawExtrude2{Start: a, Stop: b, Path: gcode.Path{Length: b.Sub(a).Norm(), Width: w, Height: h}}
}

// ContourPath emits the raw extrudes drawing a closed contour: one
// per stored edge plus the closing one back to the start
func ContourPath(c *contour.Contour, w, h float64) (cmds []gcode.Cmd) {
	n := c.Len()
	for i := 0; i < n; i++ {
		cmds = append(cmds, rawSeg(c.Pts[i], c.Pts[(i+1)%n], w, h))
	}
	return
}

// InfillPath renders groups of infill segments: segments within a
// group chain through connecting extrusions, and a travel move links
// the endpoint of one group to the start of the next
func InfillPath(groups [][]gm.LineSeg, w, h float64) (cmds []gcode.Cmd, err error) {
	var cur gm.Point2
	started := false
	for gi, g := range groups {
		if len(g) == 0 {
			return nil, EmptyInfillGroup{Index: gi}
		}
		if started {
			cmds = append(cmds, gcode.Move2{Start: cur, Stop: g[0].P})
		}
		for si, s := range g {
			if si > 0 {
				cmds = append(cmds, rawSeg(cur, s.P, w, h))
			}
			cmds = append(cmds, rawSeg(s.P, s.End(), w, h))
			cur = s.End()
		}
		started = true
	}
	return
}
