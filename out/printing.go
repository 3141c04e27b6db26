// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements inspection helpers over slicing results:
// textual summaries and layer plots
package out

import (
	"github.com/cpmech/goslice/contour"
	"github.com/cpmech/goslice/gcode"

	"github.com/cpmech/gosl/io"
)

// LayerSummary describes the contours of one layer
type LayerSummary struct {
	Num      int // layer number
	Ncontour int // number of contours
	Nvert    int // total number of vertices
	MaxDepth int // deepest nesting level
}

// Summarize collects per-layer counts from a containment forest
func Summarize(num int, roots []*contour.TreeNode) (s LayerSummary) {
	s.Num = num
	var walk func(nd *contour.TreeNode, depth int)
	walk = func(nd *contour.TreeNode, depth int) {
		s.Ncontour++
		s.Nvert += nd.C.Len()
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		for _, c := range nd.Children {
			walk(c, depth+1)
		}
	}
	for _, nd := range roots {
		walk(nd, 1)
	}
	return
}

func (o LayerSummary) String() string {
	return io.Sf("layer %d: %d contours, %d vertices, depth %d", o.Num, o.Ncontour, o.Nvert, o.MaxDepth)
}

// CountKinds tallies a program by command kind
func CountKinds(cmds []gcode.Cmd) (ntravel, nextrude, nmarker int) {
	for _, c := range cmds {
		switch c.(type) {
		case gcode.Move2, gcode.Move3, gcode.FeedRate:
			ntravel++
		case gcode.RawExtrude2, gcode.RawExtrude3, gcode.Extrude2, gcode.Extrude3:
			nextrude++
		default:
			nmarker++
		}
	}
	return
}
