// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gcode

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// deltaE gives the filament displacement of one command: the printed
// cross-section times the path length over the filament section.
// Travel and marker commands displace nothing
func deltaE(ext *Extruder, c Cmd) float64 {
	switch x := c.(type) {
	case RawExtrude2:
		return pathDeltaE(ext, x.Path)
	case RawExtrude3:
		return pathDeltaE(ext, x.Path)
	}
	return 0
}

func pathDeltaE(ext *Extruder, p Path) float64 {
	return p.Width * p.Height * p.Length * 2 / (math.Pi * ext.FilamentDiameter)
}

// Cook transforms raw commands into cooked ones, replacing every raw
// extrude with an extrude carrying the cumulative filament position
// after it. The per-command displacements are computed in parallel
// over chunks of roughly len/ncpu commands (the input is immutable);
// a single sequential prefix sum then derives the cumulative series.
// Output order equals input order and the series is non-decreasing.
// The state is read once at entry and written once at exit.
//
// Feeding cooked extrudes back in is a broken pipeline and panics:
// their displacement cannot be recovered from start/stop alone, and
// re-folding their absolute position would double-count
func Cook(ext *Extruder, st *ExtruderState, cmds []Cmd, ncpu int) []Cmd {

	n := len(cmds)
	if n == 0 {
		return nil
	}
	for _, c := range cmds {
		switch c.(type) {
		case Extrude2, Extrude3:
			chk.Panic("cannot cook an already cooked extrude: %v", c)
		}
	}

	// parallel per-command displacements
	if ncpu < 1 {
		ncpu = 1
	}
	if ncpu > n {
		ncpu = n
	}
	csize := (n + ncpu - 1) / ncpu
	nch := (n + csize - 1) / csize
	dE := make([]float64, n)
	done := make(chan int, nch)
	for ch := 0; ch < nch; ch++ {
		go func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dE[i] = deltaE(ext, cmds[i])
			}
			done <- 1
		}(ch*csize, imin((ch+1)*csize, n))
	}
	for ch := 0; ch < nch; ch++ {
		<-done
	}

	// sequential prefix sum and command rewrite
	e := st.EPos
	res := make([]Cmd, n)
	for i, c := range cmds {
		e += dE[i]
		switch x := c.(type) {
		case RawExtrude2:
			res[i] = Extrude2{Start: x.Start, Stop: x.Stop, EPos: e}
		case RawExtrude3:
			res[i] = Extrude3{Start: x.Start, Stop: x.Stop, EPos: e}
		default:
			res[i] = c
		}
	}
	st.EPos = e
	return res
}

// imin returns the min between two ints
func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}
