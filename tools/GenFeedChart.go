// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

// GenFeedChart slices a mesh and renders an HTML chart of the
// cumulative filament position over the command sequence
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/cpmech/goslice/gcode"
	"github.com/cpmech/goslice/inp"
	"github.com/cpmech/goslice/plan"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func toLineItems(vals []float64) []opts.LineData {
	out := make([]opts.LineData, len(vals))
	for i, v := range vals {
		out[i] = opts.LineData{Value: v}
	}
	return out
}

func main() {

	// input data
	mshfn := flag.String("msh", "part.tmsh", "triangle mesh file")
	setfn := flag.String("set", "defaults.print", "print settings file")
	flag.Parse()

	// read everything
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
	mshdir, mshkey := filepath.Split(*mshfn)
	msh, err := inp.ReadMesh(mshdir, mshkey)
	if err != nil {
		chk.Panic("cannot read mesh: %v", err)
	}

	// slice and cook
	cmds, err := plan.Build(set, msh.Tris, msh.Zmin, msh.Zmax)
	if err != nil {
		chk.Panic("slicing failed: %v", err)
	}
	var st gcode.ExtruderState
	cooked := gcode.Cook(ext, &st, cmds, set.Ncpu)

	// cumulative E per command index
	xx := make([]string, len(cooked))
	ee := make([]float64, len(cooked))
	e := 0.0
	for i, c := range cooked {
		switch x := c.(type) {
		case gcode.Extrude2:
			e = x.EPos
		case gcode.Extrude3:
			e = x.EPos
		}
		xx[i] = io.Sf("%d", i)
		ee[i] = e
	}

	// chart
	title := io.Sf("cumulative feed: %s", mshkey)
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: io.Sf("final E = %g", st.EPos)}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(xx).AddSeries("E", toLineItems(ee))

	// output
	fn := filepath.Join(set.DirOut, io.FnKey(mshkey)+"_feed.html")
	f, err := os.Create(fn)
	if err != nil {
		chk.Panic("cannot create chart file: %v", err)
	}
	defer f.Close()
	if err := line.Render(f); err != nil {
		chk.Panic("cannot render chart: %v", err)
	}
	io.Pf("file <%s> written\n", fn)
}
