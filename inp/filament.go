// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/goslice/gcode"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Filament holds one filament material
type Filament struct {
	Name    string  `json:"name"`    // name of filament
	Kind    string  `json:"kind"`    // material kind; e.g. "pla", "abs", "petg"
	Diam    float64 `json:"diam"`    // filament diameter
	TempHot float64 `json:"temphot"` // nozzle temperature
	TempBed float64 `json:"tempbed"` // bed temperature
}

// FilsData holds filaments
type FilsData []*Filament

// FilDb implements a database of filaments
type FilDb struct {

	// input
	Filaments FilsData `json:"filaments"` // all filaments

	// derived
	ByName map[string]*Filament
}

// ReadFil reads a filaments database from a .fil JSON file
func ReadFil(dir, fn string) (fdb *FilDb, err error) {
	fdb = new(FilDb)
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal(b, fdb)
	if err != nil {
		return nil, chk.Err("cannot parse filaments file %q: %v", fn, err)
	}
	fdb.ByName = make(map[string]*Filament)
	for _, f := range fdb.Filaments {
		fdb.ByName[f.Name] = f
	}
	return
}

// Extruder builds the extruder descriptor for a named filament
func (o *FilDb) Extruder(name string) (*gcode.Extruder, error) {
	f, ok := o.ByName[name]
	if !ok {
		return nil, chk.Err("filament %q is not available in database", name)
	}
	return &gcode.Extruder{FilamentDiameter: f.Diam}, nil
}

func (o *Filament) String() string {
	return io.Sf("{name=%q kind=%q diam=%g}", o.Name, o.Kind, o.Diam)
}
