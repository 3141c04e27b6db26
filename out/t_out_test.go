// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"testing"

	"github.com/cpmech/goslice/contour"
	"github.com/cpmech/goslice/gcode"
	"github.com/cpmech/goslice/gm"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_sum01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sum01. layer summary over a nested forest")

	outer := &contour.Contour{Pts: []gm.Point2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	inner := &contour.Contour{Pts: []gm.Point2{{2, 2}, {8, 2}, {8, 8}, {2, 8}}}
	roots := contour.BuildTree([]*contour.Contour{outer, inner})

	s := Summarize(7, roots)
	io.Pforan("%v\n", s)
	chk.IntAssert(s.Num, 7)
	chk.IntAssert(s.Ncontour, 2)
	chk.IntAssert(s.Nvert, 8)
	chk.IntAssert(s.MaxDepth, 2)

	if chk.Verbose {
		PlotLayer(roots, "/tmp/goslice", "test_sum01.png")
	}
}

func Test_count01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("count01. command tally")

	cmds := []gcode.Cmd{
		gcode.LayerStart{N: 0},
		gcode.OuterWallStart{},
		gcode.Move2{Stop: gm.Point2{1, 1}},
		gcode.RawExtrude2{Stop: gm.Point2{2, 1}, Path: gcode.Path{Length: 1, Width: 0.4, Height: 0.2}},
		gcode.RawExtrude2{Stop: gm.Point2{2, 2}, Path: gcode.Path{Length: 1, Width: 0.4, Height: 0.2}},
	}
	ntravel, nextrude, nmarker := CountKinds(cmds)
	chk.IntAssert(ntravel, 1)
	chk.IntAssert(nextrude, 2)
	chk.IntAssert(nmarker, 2)
}
