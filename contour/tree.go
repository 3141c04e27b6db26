// Copyright 2016 The Goslice Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contour

import (
	"github.com/cpmech/goslice/gm"

	"github.com/cpmech/gosl/io"
)

// TreeNode is one node of the containment forest: a contour and the
// contours immediately inside it
type TreeNode struct {
	C        *Contour
	Children []*TreeNode
}

// Contains tells whether contour a strictly contains contour b. An
// interior sample of b is cast toward the far exterior reference and
// the crossings with a's edges are counted: odd parity means inside.
// A contour never contains itself
func Contains(a, b *Contour) bool {
	if a == b || a.Equal(b) {
		return false
	}
	q := b.InnerPoint(0, InnerDepth)
	ray := gm.LineSeg{P: q, D: FarExterior.Sub(q)}
	return a.crossings(ray, -1)%2 == 1
}

// BuildTree partitions contours into a containment forest: roots are
// contained by no other contour, and every child hangs off the
// smallest contour containing it
func BuildTree(cs []*Contour) (roots []*TreeNode) {
	for _, c := range cs {
		roots = insert(roots, c)
	}
	return
}

func insert(nodes []*TreeNode, c *Contour) []*TreeNode {

	// descend into an existing container
	for _, nd := range nodes {
		if Contains(nd.C, c) {
			nd.Children = insert(nd.Children, c)
			return nodes
		}
	}

	// otherwise adopt the siblings the new contour contains
	nd := &TreeNode{C: c}
	var keep []*TreeNode
	for _, s := range nodes {
		if Contains(c, s.C) {
			nd.Children = append(nd.Children, s)
		} else {
			keep = append(keep, s)
		}
	}
	return append(keep, nd)
}

// Count returns the number of contours in the subtree
func (o *TreeNode) Count() (n int) {
	n = 1
	for _, c := range o.Children {
		n += c.Count()
	}
	return
}

func (o *TreeNode) String() string {
	l := io.Sf("{%v", o.C)
	for _, c := range o.Children {
		l += io.Sf(" %v", c)
	}
	return l + "}"
}
