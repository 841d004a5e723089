package bspscene

// MaxEdges bounds how many edges a single emitted face fragment may
// carry before assignFaceEdges refuses to proceed, mirroring classic BSP
// tooling's MAXEDGES guard against runaway subdivision/merge bugs.
const MaxEdges = 64

// omitFace reports whether f should never reach the output tables:
// sky and hint surfaces are always dropped, and skip surfaces are
// dropped unless the caller asked to keep them.
func omitFace(ctx *CompileContext, f *Face) bool {
	if ctx.Rules.IsSky(f.Contents) {
		return true
	}
	tex := ctx.Texinfos.Get(f.TexinfoNum)
	if tex.Flags&SurfSky != 0 {
		return true
	}
	if tex.Flags&SurfHint != 0 {
		return true
	}
	if tex.Flags&SurfSkip != 0 && !ctx.Config.IncludeSkip {
		return true
	}
	return false
}

// facePieces returns the windings that will actually become separate
// output records for f: its own winding when it was never split across
// leaves by mark-surface clipping, or its per-leaf Fragments when it
// was — fragments exist exactly to give each leaf a concrete piece of
// geometry without ever duplicating the unsplit case.
func facePieces(f *Face) []*Face {
	if len(f.Fragments) > 0 {
		return f.Fragments
	}
	return []*Face{f}
}

// countFaces walks node's subtree tallying the faces and raw vertex
// points that will be emitted, and whether any face carries a
// non-default lightmap shift. This is pass 1 of emission: informational
// only, logged for the caller, since the side-band lightmap-shift
// extension lump itself is a file-writer concern this core does not
// produce.
func countFaces(ctx *CompileContext, node *Node) (faces, verts int, extended bool) {
	if node == nil || node.Leaf {
		return
	}
	for _, f := range node.faces {
		if omitFace(ctx, f) {
			continue
		}
		if f.LmShift != 0 {
			extended = true
		}
		for _, piece := range facePieces(f) {
			faces++
			verts += len(piece.W)
		}
	}
	cf0, cv0, ce0 := countFaces(ctx, node.Children[0])
	cf1, cv1, ce1 := countFaces(ctx, node.Children[1])
	return faces + cf0 + cf1, verts + cv0 + cv1, extended || ce0 || ce1
}

// findFaceEdgesRecursive is pass 2: every non-omitted face's (or
// fragment's) winding is replaced with a sequence of signed edge
// indices, resolving vertices through the vertex table and edges
// through the directed edge table as it goes.
func findFaceEdgesRecursive(ctx *CompileContext, node *Node) {
	if node == nil || node.Leaf {
		return
	}
	for _, f := range node.faces {
		if omitFace(ctx, f) {
			continue
		}
		for _, piece := range facePieces(f) {
			assignFaceEdges(ctx, piece)
		}
	}
	findFaceEdgesRecursive(ctx, node.Children[0])
	findFaceEdgesRecursive(ctx, node.Children[1])
}

func assignFaceEdges(ctx *CompileContext, f *Face) {
	n := len(f.W)
	if n > MaxEdges {
		Log.Panic("face fragment has %d points, exceeds MAXEDGES=%d", n, MaxEdges)
	}
	verts := make([]int, n)
	for i, p := range f.W {
		verts[i] = ctx.Vertices.GetOrAdd(p)
	}
	indices := make([]int, n)
	for i := 0; i < n; i++ {
		v1, v2 := verts[i], verts[(i+1)%n]
		indices[i] = ctx.Edges.GetOrAddDirected(v1, v2, f)
	}
	f.EdgeIndices = indices
}

// growNodeRegion is pass 3: a pre-order walk that stamps each internal
// node's FirstFace/NumFaces to delimit the contiguous range of output
// faces it owns, appending one output record per face (or per
// fragment, in that order) as it goes.
func growNodeRegion(ctx *CompileContext, node *Node) {
	if node == nil || node.Leaf {
		return
	}
	node.FirstFace = len(ctx.Faces)
	for _, f := range node.faces {
		emitFaceRecord(ctx, f)
	}
	node.NumFaces = len(ctx.Faces) - node.FirstFace

	growNodeRegion(ctx, node.Children[0])
	growNodeRegion(ctx, node.Children[1])
}

func emitFaceRecord(ctx *CompileContext, f *Face) {
	if omitFace(ctx, f) {
		return
	}
	for _, piece := range facePieces(f) {
		rec := newOutputFace()
		rec.PlaneNum = ctx.exportPlane(piece.PlaneNum)
		rec.Side = piece.Side
		rec.TexinfoNum = ctx.exportTexinfo(piece.TexinfoNum)
		rec.FirstEdge = len(ctx.Surfedges)
		ctx.Surfedges = append(ctx.Surfedges, piece.EdgeIndices...)
		rec.NumEdges = len(piece.EdgeIndices)
		piece.EdgeIndices = nil

		outIndex := len(ctx.Faces)
		ctx.Faces = append(ctx.Faces, rec)
		piece.markEmitted(outIndex)
	}
}

// MakeFaceEdges runs emission for one entity's tree and returns the
// index of the first output face assigned to it. entity identifies the
// caller's entity purely for logging; this core does not otherwise
// interpret it. Emission for one entity is exclusive: Lock/Unlock
// bracket the whole call, and the edge table's per-call reverse-lookup
// scope is reset on entry and exit so that one entity's edge reuse
// never bleeds into another's.
func MakeFaceEdges(ctx *CompileContext, entity int, root *Node) int {
	ctx.Lock()
	defer ctx.Unlock()

	ctx.Edges.ResetScope()
	defer ctx.Edges.ResetScope()

	faces, verts, extended := countFaces(ctx, root)
	Log.Verbose(2, "entity %d: %d faces, %d vertices pending emission (extended lmshift=%v)", entity, faces, verts, extended)

	findFaceEdgesRecursive(ctx, root)

	firstFace := len(ctx.Faces)
	growNodeRegion(ctx, root)
	return firstFace
}
