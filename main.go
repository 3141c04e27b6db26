// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"flag"
	"path/filepath"

	"github.com/cpmech/goslice/gcode"
	"github.com/cpmech/goslice/inp"
	"github.com/cpmech/goslice/out"
	"github.com/cpmech/goslice/plan"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	mshfn := flag.String("msh", "part.tmsh", "triangle mesh file")
	setfn := flag.String("set", "defaults.print", "print settings file")
	outfn := flag.String("o", "", "output G-code file; default: <mesh>.gcode")
	verbose := flag.Bool("verbose", true, "show messages")
	flag.Parse()
	io.Verbose = *verbose

	// message
	if *verbose {
		io.PfWhite("\nGoslice -- Geometric Core of a 3D Printer Slicer\n\n")
	}

	// settings and filament database
	setdir, setkey := filepath.Split(*setfn)
	set, err := inp.ReadSettings(setdir, setkey)
	if err != nil {
		chk.Panic("cannot read settings: %v", err)
	}
	fdb, err := inp.ReadFil(setdir, set.FilFile)
	if err != nil {
		chk.Panic("cannot read filaments: %v", err)
	}
	ext, err := fdb.Extruder(set.Filament)
	if err != nil {
		chk.Panic("cannot select filament: %v", err)
	}

	// mesh
	mshdir, mshkey := filepath.Split(*mshfn)
	msh, err := inp.ReadMesh(mshdir, mshkey)
	if err != nil {
		chk.Panic("cannot read mesh: %v", err)
	}
	io.Pf("mesh: %v\n", msh)

	// slice and plan all layers
	cmds, err := plan.Build(set, msh.Tris, msh.Zmin, msh.Zmax)
	if err != nil {
		chk.Panic("slicing failed: %v", err)
	}
	ntravel, nextrude, nmarker := out.CountKinds(cmds)
	io.Pf("plan: %d travels, %d extrudes, %d markers\n", ntravel, nextrude, nmarker)

	// cook and render
	var st gcode.ExtruderState
	cooked := gcode.Cook(ext, &st, cmds, set.Ncpu)
	io.Pf("feed: E ends at %g\n", st.EPos)

	var buf bytes.Buffer
	gcode.NewRenderer().Render(&buf, cooked)

	// output
	fn := *outfn
	if fn == "" {
		fn = io.FnKey(mshkey) + ".gcode"
	}
	io.WriteFileV(filepath.Join(set.DirOut, fn), &buf)
}
