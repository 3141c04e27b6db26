// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/goslice/contour"

	"github.com/cpmech/gosl/plt"
)

// PlotLayer draws the contours of one layer. Outer walls are drawn
// solid blue, nested contours alternate to red dashed. Use fname=""
// to show the figure instead of saving it
func PlotLayer(roots []*contour.TreeNode, dirout, fname string) {
	var draw func(nd *contour.TreeNode, depth int)
	draw = func(nd *contour.TreeNode, depth int) {
		n := nd.C.Len()
		x := make([]float64, n+1)
		y := make([]float64, n+1)
		for i, p := range nd.C.Pts {
			x[i], y[i] = p.X, p.Y
		}
		x[n], y[n] = nd.C.Pts[0].X, nd.C.Pts[0].Y
		fm := plt.Fmt{C: "b", L: "outer"}
		if depth%2 == 1 {
			fm = plt.Fmt{C: "r", Ls: "--", L: "inner"}
		}
		plt.Plot(x, y, fm.GetArgs("clip_on=0"))
		for _, c := range nd.Children {
			draw(c, depth+1)
		}
	}
	for _, nd := range roots {
		draw(nd, 0)
	}
	plt.Equal()
	plt.Gll("x", "y", "")
	if fname == "" {
		plt.Show()
		return
	}
	plt.SaveD(dirout, fname)
}
