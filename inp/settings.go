// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from JSON files: print
// settings (.print), filament materials (.fil) and triangle meshes
// (.tmsh)
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Settings holds global print settings for one job
type Settings struct {

	// global information
	Desc    string `json:"desc"`    // description of print job
	FilFile string `json:"filfile"` // filaments file path
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/goslice

	// geometry and walls
	LayerH   float64 `json:"layerh"`   // layer height
	ExtWidth float64 `json:"extwidth"` // extruded line width
	NInner   int     `json:"ninner"`   // number of inner perimeter walls

	// motion
	PrintFeed  float64 `json:"printfeed"`  // feed rate while extruding
	TravelFeed float64 `json:"travelfeed"` // feed rate while travelling

	// processing
	Filament string `json:"filament"` // name of filament in filaments file
	Ncpu     int    `json:"ncpu"`     // number of goroutines for slicing and cooking
}

// ReadSettings reads a .print JSON file
func ReadSettings(dir, fn string) (set *Settings, err error) {
	set = new(Settings)
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal(b, set)
	if err != nil {
		return nil, chk.Err("cannot parse settings file %q: %v", fn, err)
	}

	// defaults
	if set.LayerH <= 0 {
		set.LayerH = 0.2
	}
	if set.ExtWidth <= 0 {
		set.ExtWidth = 0.4
	}
	if set.Ncpu < 1 {
		set.Ncpu = 1
	}
	return
}

func (o *Settings) String() string {
	return io.Sf("{desc=%q layerh=%g extwidth=%g ninner=%d filament=%q ncpu=%d}",
		o.Desc, o.LayerH, o.ExtWidth, o.NInner, o.Filament, o.Ncpu)
}
