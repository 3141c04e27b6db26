// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gm implements the euclidean and projective geometry
// primitives of the slicer: points, line segments, triangles and the
// typed projective points/lines built on package ga
package gm

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Point2 holds a planar point or displacement
type Point2 struct {
	X, Y float64
}

// Point3 holds a spatial point or displacement
type Point3 struct {
	X, Y, Z float64
}

// Add returns a + b
func (a Point2) Add(b Point2) Point2 {
	return Point2{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b
func (a Point2) Sub(b Point2) Point2 {
	return Point2{a.X - b.X, a.Y - b.Y}
}

// Scale returns a scaled by m
func (a Point2) Scale(m float64) Point2 {
	return Point2{a.X * m, a.Y * m}
}

// Dot returns the euclidean inner product of two planar vectors
func (a Point2) Dot(b Point2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Norm returns the euclidean length
func (a Point2) Norm() float64 {
	return math.Hypot(a.X, a.Y)
}

// NormSq returns the squared euclidean length
func (a Point2) NormSq() float64 {
	return a.X*a.X + a.Y*a.Y
}

func (a Point2) String() string {
	return io.Sf("(%g,%g)", a.X, a.Y)
}

// Add returns a + b
func (a Point3) Add(b Point3) Point3 {
	return Point3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Scale returns a scaled by m
func (a Point3) Scale(m float64) Point3 {
	return Point3{a.X * m, a.Y * m, a.Z * m}
}

// To2D projects to the plane by dropping z
func (a Point3) To2D() Point2 {
	return Point2{a.X, a.Y}
}

func (a Point3) String() string {
	return io.Sf("(%g,%g,%g)", a.X, a.Y, a.Z)
}

// RoundEq declares two reals equal if both round to the same value at
// five fractional digits. This is the only tolerance of the geometric
// core
func RoundEq(a, b float64) bool {
	return math.Round(a*1e5) == math.Round(b*1e5)
}

// Pt2Equal compares planar points with RoundEq on both coordinates
func Pt2Equal(a, b Point2) bool {
	return RoundEq(a.X, b.X) && RoundEq(a.Y, b.Y)
}

// Pt3Equal compares spatial points with RoundEq on all coordinates
func Pt3Equal(a, b Point3) bool {
	return RoundEq(a.X, b.X) && RoundEq(a.Y, b.Y) && RoundEq(a.Z, b.Z)
}
