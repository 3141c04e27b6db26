// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gcode

import (
	"bytes"
	"strings"

	"github.com/cpmech/goslice/gm"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Renderer encodes cooked commands to ASCII G-code lines. It tracks
// the machine position so a coordinate axis is emitted only when its
// value changed at the formatter's tolerance
type Renderer struct {
	x, y, z float64 // prior position
}

// NewRenderer returns a renderer at the printer origin
func NewRenderer() *Renderer {
	return new(Renderer)
}

// posIze formats a number as fixed point with five fractional digits,
// stripping trailing zeros and a dangling decimal point; exact zero
// renders as "0"
func posIze(v float64) string {
	s := strings.TrimRight(io.Sf("%.5f", v), "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-0" {
		return "0"
	}
	return s
}

// Line renders one cooked command as a single line without newline.
// Raw extrudes and feed rates around anything but a planar travel
// move are encoding errors
func (o *Renderer) Line(c Cmd) string {
	switch x := c.(type) {
	case FeedRate:
		m, ok := x.Inner.(Move2)
		if !ok {
			chk.Panic("feed rate must wrap a planar travel move: %v", x.Inner)
		}
		return o.move2("G0 F"+posIze(x.Rate)+" ", m)
	case Move2:
		return o.move2("G0 ", x)
	case Move3:
		l := "G0 " + o.axes2(x.Stop.To2D())
		l += o.axisZ(x.Stop.Z)
		o.update3(x.Stop)
		return l
	case Extrude2:
		l := "G1 " + o.axes2(x.Stop) + "E" + posIze(x.EPos) + " "
		o.update2(x.Stop)
		return l
	case Extrude3:
		l := "G1 " + o.axes2(x.Stop.To2D()) + o.axisZ(x.Stop.Z) + "E" + posIze(x.EPos) + " "
		o.update3(x.Stop)
		return l
	case RawExtrude2, RawExtrude3:
		chk.Panic("cannot encode a raw extrude; cook it first: %v", c)
	case LayerStart:
		return io.Sf(";LAYER:%d", x.N)
	case InnerWallStart:
		return ";TYPE:WALL-INNER"
	case OuterWallStart:
		return ";TYPE:WALL-OUTER"
	case SupportStart:
		return ";TYPE:SUPPORT"
	case InfillStart:
		return ";TYPE:FILL"
	}
	chk.Panic("cannot encode command: %v", c)
	return ""
}

// Render appends the lines of a cooked program to buf
func (o *Renderer) Render(buf *bytes.Buffer, cmds []Cmd) {
	for _, c := range cmds {
		io.Ff(buf, "%s\n", o.Line(c))
	}
}

func (o *Renderer) move2(prefix string, m Move2) string {
	l := prefix + o.axes2(m.Stop)
	o.update2(m.Stop)
	return l
}

func (o *Renderer) axes2(p gm.Point2) (l string) {
	if !gm.RoundEq(p.X, o.x) {
		l += "X" + posIze(p.X) + " "
	}
	if !gm.RoundEq(p.Y, o.y) {
		l += "Y" + posIze(p.Y) + " "
	}
	return
}

func (o *Renderer) axisZ(z float64) (l string) {
	if !gm.RoundEq(z, o.z) {
		l = "Z" + posIze(z) + " "
	}
	return
}

func (o *Renderer) update2(p gm.Point2) {
	o.x, o.y = p.X, p.Y
}

func (o *Renderer) update3(p gm.Point3) {
	o.x, o.y, o.z = p.X, p.Y, p.Z
}
