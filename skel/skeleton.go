// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package skel holds the data model of the straight skeleton of a
// contour. Only the entities and their capability contracts live
// here; skeleton construction is not part of the geometric core
package skel

import (
	"github.com/cpmech/goslice/gm"
)

// Pointable is the capability of skeleton entities anchored at one
// planar point
type Pointable interface {
	Point() gm.Point2
}

// Arcable is the capability of entities that carry an outgoing arc of
// the skeleton
type Arcable interface {
	Arc() gm.LineSeg
}

// ENode is an exterior node: a contour vertex with its two incident
// contour edges and the bisector arc leaving it
type ENode struct {
	In, Out gm.LineSeg // incident contour edges
	Bisect  gm.LineSeg // outgoing bisector
}

// INode is an interior node: a meeting point of arcs with the arcs
// entering it and the optional arc leaving it
type INode struct {
	P    gm.Point2
	Ins  []gm.LineSeg
	Outs []gm.LineSeg
}

// Motorcycle is a reflex-vertex trace: the path of a reflex vertex
// moving into the polygon
type Motorcycle struct {
	In, Out gm.LineSeg // the reflex pair of contour edges
	Path    gm.LineSeg // trace of the vertex
}

// Spine is a chain of skeleton arcs between nodes
type Spine struct {
	Segs []gm.LineSeg
}

func (o ENode) Point() gm.Point2 { return o.Bisect.P }
func (o ENode) Arc() gm.LineSeg  { return o.Bisect }

func (o INode) Point() gm.Point2 { return o.P }

func (o Motorcycle) Point() gm.Point2 { return o.Path.P }
func (o Motorcycle) Arc() gm.LineSeg  { return o.Path }
