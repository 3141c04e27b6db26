// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/goslice/gm"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Mesh holds a triangulated surface read from a .tmsh JSON file
type Mesh struct {

	// input
	Verts [][3]float64 `json:"verts"` // vertex coordinates
	Cells [][3]int     `json:"cells"` // triangles as vertex indices

	// derived
	Tris                               []gm.Triangle // triangle objects
	Xmin, Xmax, Ymin, Ymax, Zmin, Zmax float64       // bounding box
}

// ReadMesh reads a triangle mesh from a .tmsh JSON file and derives
// the triangle objects and the bounding box
func ReadMesh(dir, fn string) (msh *Mesh, err error) {

	// read file
	msh = new(Mesh)
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal(b, msh)
	if err != nil {
		return nil, chk.Err("cannot parse mesh file %q: %v", fn, err)
	}

	// derived
	for i, v := range msh.Verts {
		if i == 0 {
			msh.Xmin, msh.Xmax = v[0], v[0]
			msh.Ymin, msh.Ymax = v[1], v[1]
			msh.Zmin, msh.Zmax = v[2], v[2]
			continue
		}
		msh.Xmin, msh.Xmax = min(msh.Xmin, v[0]), max(msh.Xmax, v[0])
		msh.Ymin, msh.Ymax = min(msh.Ymin, v[1]), max(msh.Ymax, v[1])
		msh.Zmin, msh.Zmax = min(msh.Zmin, v[2]), max(msh.Zmax, v[2])
	}
	for ic, c := range msh.Cells {
		for _, iv := range c {
			if iv < 0 || iv >= len(msh.Verts) {
				return nil, chk.Err("cell %d references vertex %d outside mesh", ic, iv)
			}
		}
		a := pt3(msh.Verts[c[0]])
		b := pt3(msh.Verts[c[1]])
		cc := pt3(msh.Verts[c[2]])
		msh.Tris = append(msh.Tris, gm.NewTriangle(a, b, cc))
	}
	return
}

func pt3(v [3]float64) gm.Point3 {
	return gm.Point3{X: v[0], Y: v[1], Z: v[2]}
}

// min returns the min between two floats
func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// max returns the max between two floats
func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func (o *Mesh) String() string {
	return io.Sf("{nverts=%d ncells=%d lims=[%g,%g,%g,%g,%g,%g]}",
		len(o.Verts), len(o.Cells), o.Xmin, o.Xmax, o.Ymin, o.Ymax, o.Zmin, o.Zmax)
}
