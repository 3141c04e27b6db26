// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gcode

// Extruder describes the filament driven by one extruder
type Extruder struct {
	FilamentDiameter float64 `json:"fildiam"` // filament diameter
}

// ExtruderState is the per-job cumulative filament position. It is
// owned by the caller, initialized to zero at printer start, and
// updated only by the cooking pass: read once at entry, written once
// at exit
type ExtruderState struct {
	EPos float64
}

// Reset restores the printer-start state
func (o *ExtruderState) Reset() {
	o.EPos = 0
}
