package bspscene

// MakeFaces walks the tree rooted at root in post-order: leaves
// materialise one face per portal side from their portal ring, then
// each internal node on the way back up merges and subdivides the
// facelist that accumulated on it from its descendant leaves' portals.
// Grounded on faces.cc's MakeFaces_r/MakeFaces: recursion happens
// before merge/subdivide, so facelists are populated bottom-up.
func MakeFaces(ctx *CompileContext, root *Node) {
	makeFacesRecursive(ctx, root)
}

func makeFacesRecursive(ctx *CompileContext, node *Node) {
	if node == nil {
		return
	}
	if node.Leaf {
		materializeLeafPortals(ctx, node)
		return
	}
	makeFacesRecursive(ctx, node.Children[0])
	makeFacesRecursive(ctx, node.Children[1])

	if !ctx.Config.NoMerge {
		MergeFaces(ctx, node)
	}
	if ctx.Config.Subdivide != 0 {
		SubdivideFaces(ctx, node)
	}
}

// materializeLeafPortals generates a face for every portal on leaf's
// ring, attaching it to the portal's face[s] slot and to the owning
// node's facelist. Leaves whose contents are any-solid are skipped
// entirely.
func materializeLeafPortals(ctx *CompileContext, leaf *Node) {
	if ctx.Rules.IsAnySolid(leaf.Contents) {
		return
	}
	WalkPortals(leaf, func(p *Portal, s int) {
		f := FaceFromPortal(ctx, p, s)
		if f == nil {
			return
		}
		p.Face[s] = f
		p.OnNode.faces = append(p.OnNode.faces, f)
	})
}

// FaceFromPortal materialises the face for portal p on side s, or nil
// if no visible surface should be generated there. Grounded on
// faces.cc's FaceFromPortal.
func FaceFromPortal(ctx *CompileContext, p *Portal, s int) *Face {
	if p.Side == nil {
		// Portal bridges contents with no visible surface.
		return nil
	}

	near := p.Nodes[s].Contents
	far := p.Nodes[1-s].Contents
	if !ctx.Rules.DirectionalVisibleContents(near, far) {
		return nil
	}

	if !ctx.Rules.IsEmpty(near) {
		// Mirror-inside rule: volumetric contents (water, slime, ...)
		// only emit a face on the side matching the originating brush
		// side, unless the content type self-mirrors.
		if !ctx.Rules.ContentsAreMirrored(near) && p.Side.PlaneSide != s {
			return nil
		}
	}

	w := p.W
	if s == 1 {
		w = w.Flip()
	}

	f := NewFace()
	f.PlaneNum = p.Side.PlaneNum
	f.Side = s
	f.TexinfoNum = p.Side.TexinfoNum
	f.LmShift = p.Side.LmShift
	f.W = w
	f.Contents = near
	f.Portal = p
	return f
}
