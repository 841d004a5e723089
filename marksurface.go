package bspscene

// markHit pairs a leaf reached during mark-surface clipping with the
// clipped winding that landed there.
type markHit struct {
	leaf *Node
	w    Winding
}

// MakeMarkFaces walks the tree and, for every internal node's
// facelist, clips a copy of each face down the side its Side field
// indicates, splitting against every node's plane along the way. The
// original face (never the clipped copy) is appended to every leaf the
// clipped winding reaches. When a face's winding is split across more
// than one leaf, the per-leaf clipped pieces are recorded as the
// face's Fragments so emission has a concrete winding to emit for
// each leaf the face touches, without the leaves themselves ever
// holding anything but the shared original face pointer. Grounded on
// faces.cc's MakeMarkFaces/AddMarksurfaces_r.
func MakeMarkFaces(ctx *CompileContext, root *Node) {
	makeMarkFacesRecursive(ctx, root)
}

func makeMarkFacesRecursive(ctx *CompileContext, node *Node) {
	if node == nil || node.Leaf {
		return
	}
	for _, f := range node.faces {
		var hits []markHit
		collectMarksurfaces(ctx, node.Children[f.Side], f.W.Clone(), &hits)

		for _, h := range hits {
			h.leaf.MarkFaces = append(h.leaf.MarkFaces, f)
		}
		if len(hits) > 1 {
			f.Fragments = f.Fragments[:0]
			for _, h := range hits {
				f.Fragments = append(f.Fragments, f.cloneShallow(h.w))
			}
		}
	}
	makeMarkFacesRecursive(ctx, node.Children[0])
	makeMarkFacesRecursive(ctx, node.Children[1])
}

// collectMarksurfaces owns fragment for the duration of its own
// recursion and never mutates the face it was cloned from; empty
// splits (fewer than 3 points) are dropped.
func collectMarksurfaces(ctx *CompileContext, node *Node, fragment Winding, hits *[]markHit) {
	if len(fragment) < 3 {
		return
	}
	if node.Leaf {
		*hits = append(*hits, markHit{leaf: node, w: fragment})
		return
	}
	plane := ctx.Planes.Get(node.PlaneNum)
	front, back := fragment.Split(plane)
	if len(front) >= 3 {
		collectMarksurfaces(ctx, node.Children[0], front, hits)
	}
	if len(back) >= 3 {
		collectMarksurfaces(ctx, node.Children[1], back, hits)
	}
}
