// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plan

import (
	"github.com/cpmech/goslice/contour"
	"github.com/cpmech/goslice/gcode"
	"github.com/cpmech/goslice/gm"
	"github.com/cpmech/goslice/inp"

	"github.com/cpmech/gosl/utl"
	"golang.org/x/sync/errgroup"
)

// SliceLayer cuts all triangles at one z-plane, assembles the
// resulting fragments into contours and returns their containment
// forest
func SliceLayer(tris []gm.Triangle, z float64) ([]*contour.TreeNode, error) {
	var frags [][2]gm.Point2
	for _, t := range tris {
		if frag, ok := t.SliceAtZ(z); ok {
			frags = append(frags, frag)
		}
	}
	loops, err := contour.AssembleLoops(frags)
	if err != nil {
		return nil, err
	}
	return contour.BuildTree(loops), nil
}

// SliceMesh slices every layer of a mesh, fanning the layers out over
// ncpu goroutines. Layers are independent; the result keeps the layer
// order
func SliceMesh(tris []gm.Triangle, zz []float64, ncpu int) ([][]*contour.TreeNode, error) {
	res := make([][]*contour.TreeNode, len(zz))
	g := new(errgroup.Group)
	if ncpu > 0 {
		g.SetLimit(ncpu)
	}
	for i, z := range zz {
		i, z := i, z
		g.Go(func() error {
			roots, err := SliceLayer(tris, z)
			if err != nil {
				return err
			}
			res[i] = roots
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// PlanLayer emits the raw commands drawing one layer: a layer marker,
// then for every contour of the forest a feed-rated travel, the outer
// wall, and the requested number of inward offset walls. The machine
// position is threaded through cur
func PlanLayer(set *inp.Settings, num int, roots []*contour.TreeNode, cur *gm.Point2) (cmds []gcode.Cmd) {
	cmds = append(cmds, gcode.LayerStart{N: num})
	for _, nd := range roots {
		cmds = append(cmds, planNode(set, nd, cur)...)
	}
	return
}

func planNode(set *inp.Settings, nd *contour.TreeNode, cur *gm.Point2) (cmds []gcode.Cmd) {

	// outer wall
	c := nd.C
	cmds = append(cmds, travel(set, cur, c.Pts[0]), gcode.OuterWallStart{})
	cmds = append(cmds, ContourPath(c, set.ExtWidth, set.LayerH)...)
	*cur = c.Pts[0]

	// inward offset walls
	if set.NInner > 0 {
		cmds = append(cmds, gcode.InnerWallStart{})
		for k := 1; k <= set.NInner; k++ {
			w := OffsetContour(c, float64(k)*set.ExtWidth)
			if w == nil {
				break
			}
			cmds = append(cmds, travel(set, cur, w.Pts[0]))
			cmds = append(cmds, ContourPath(w, set.ExtWidth, set.LayerH)...)
			*cur = w.Pts[0]
		}
	}

	// children (holes and islands)
	for _, ch := range nd.Children {
		cmds = append(cmds, planNode(set, ch, cur)...)
	}
	return
}

func travel(set *inp.Settings, cur *gm.Point2, to gm.Point2) gcode.Cmd {
	m := gcode.Move2{Start: *cur, Stop: to}
	if set.TravelFeed > 0 {
		return gcode.FeedRate{Rate: set.TravelFeed, Inner: m}
	}
	return m
}

// Build runs the whole raw pipeline for a mesh spanning [zmin,zmax]:
// slice at mid-layer planes, plan every layer, and concatenate the
// commands in layer order
func Build(set *inp.Settings, tris []gm.Triangle, zmin, zmax float64) ([]gcode.Cmd, error) {
	nlayers := int((zmax - zmin) / set.LayerH)
	if nlayers < 1 {
		nlayers = 1
	}
	var zz []float64
	if nlayers == 1 {
		zz = []float64{(zmin + zmax) / 2}
	} else {
		zz = utl.LinSpace(zmin+set.LayerH/2, zmax-set.LayerH/2, nlayers)
	}
	layers, err := SliceMesh(tris, zz, set.Ncpu)
	if err != nil {
		return nil, err
	}
	var cmds []gcode.Cmd
	var cur gm.Point2
	for i, roots := range layers {
		cmds = append(cmds, PlanLayer(set, i, roots, &cur)...)
	}
	return cmds, nil
}
