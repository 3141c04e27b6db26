// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gcode implements the machine-command model of the slicer:
// raw and cooked motion commands, the extrusion cooking pass that
// fills in cumulative filament positions, and the ASCII rendering of
// cooked programs
package gcode

import (
	"github.com/cpmech/goslice/gm"
)

// Cmd is one machine command, raw or cooked
type Cmd interface {
	gcode()
}

// Path holds the geometry of one extruded segment
type Path struct {
	Length float64 // path length
	Width  float64 // extruded line width
	Height float64 // extruded line height
}

// Move2 is a planar travel move
type Move2 struct {
	Start, Stop gm.Point2
}

// Move3 is a spatial travel move
type Move3 struct {
	Start, Stop gm.Point3
}

// RawExtrude2 is a planar extrusion before cooking: geometry only, no
// filament position yet
type RawExtrude2 struct {
	Start, Stop gm.Point2
	Path        Path
}

// RawExtrude3 is a spatial extrusion before cooking
type RawExtrude3 struct {
	Start, Stop gm.Point3
	Path        Path
}

// Extrude2 is a cooked planar extrusion: EPos is the cumulative
// filament displacement after the command
type Extrude2 struct {
	Start, Stop gm.Point2
	EPos        float64
}

// Extrude3 is a cooked spatial extrusion
type Extrude3 struct {
	Start, Stop gm.Point3
	EPos        float64
}

// FeedRate wraps a travel move with a feed-rate change
type FeedRate struct {
	Rate  float64
	Inner Cmd
}

// LayerStart marks the beginning of layer N (negative for raft
// layers)
type LayerStart struct {
	N int
}

// InnerWallStart marks the start of inner-wall paths
type InnerWallStart struct{}

// OuterWallStart marks the start of outer-wall paths
type OuterWallStart struct{}

// SupportStart marks the start of support paths
type SupportStart struct{}

// InfillStart marks the start of infill paths
type InfillStart struct{}

func (Move2) gcode()          {}
func (Move3) gcode()          {}
func (RawExtrude2) gcode()    {}
func (RawExtrude3) gcode()    {}
func (Extrude2) gcode()       {}
func (Extrude3) gcode()       {}
func (FeedRate) gcode()       {}
func (LayerStart) gcode()     {}
func (InnerWallStart) gcode() {}
func (OuterWallStart) gcode() {}
func (SupportStart) gcode()   {}
func (InfillStart) gcode()    {}
