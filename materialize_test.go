package bspscene

import "testing"

func testPortal(w Winding, contentsA, contentsB Contents, side *Side) (*Portal, *Node, *Node) {
	a := NewLeaf(contentsA)
	b := NewLeaf(contentsB)
	p := &Portal{W: w, OnNode: a, Side: side}
	p.LinkToNode(a, 0)
	p.LinkToNode(b, 1)
	return p, a, b
}

func square3D() Winding {
	return Winding{
		{0, 0, 0},
		{64, 0, 0},
		{64, 64, 0},
		{0, 64, 0},
	}
}

// A water leaf bordering empty space emits a face on both sides of the
// portal: water is self-mirroring, so the surface is wanted looking
// either direction through the boundary.
func TestFaceFromPortalMirrorInsideWater(t *testing.T) {
	ctx := NewCompileContext(ClassicGameRules{}, Config{})
	side := &Side{PlaneNum: 0, PlaneSide: 0, TexinfoNum: 0}
	p, _, _ := testPortal(square3D(), ContentsWater, ContentsEmpty, side)

	f0 := FaceFromPortal(ctx, p, 0)
	f1 := FaceFromPortal(ctx, p, 1)

	if f0 == nil {
		t.Fatal("water side did not get a face")
	}
	if f1 == nil {
		t.Fatal("air side did not get a face")
	}
}

// A non-mirrored volumetric boundary (two differing current volumes)
// only emits a face on the side matching the brush's original facing
// side, per the mirror-inside rule.
func TestFaceFromPortalNonMirroredOnlyOriginatingSide(t *testing.T) {
	ctx := NewCompileContext(ClassicGameRules{}, Config{})
	side := &Side{PlaneNum: 0, PlaneSide: 1, TexinfoNum: 0}
	p, _, _ := testPortal(square3D(), ContentsCurrent0, ContentsCurrent90, side)

	f0 := FaceFromPortal(ctx, p, 0)
	if f0 != nil {
		t.Fatal("non-originating side should not get a face")
	}

	f1 := FaceFromPortal(ctx, p, 1)
	if f1 == nil {
		t.Fatal("originating side should get a face")
	}
	if f1.Side != 1 {
		t.Fatalf("face.Side = %d, want 1", f1.Side)
	}
}

// Side-1 faces are flipped back to the outward winding materialize.go
// expects everywhere else, since the portal's stored winding is always
// oriented for side 0.
func TestFaceFromPortalFlipsSide1Winding(t *testing.T) {
	ctx := NewCompileContext(ClassicGameRules{}, Config{})
	side := &Side{PlaneNum: 0, PlaneSide: 0, TexinfoNum: 0}
	w := square3D()
	p, _, _ := testPortal(w, ContentsSolid, ContentsEmpty, side)

	f1 := FaceFromPortal(ctx, p, 1)
	if f1 == nil {
		t.Fatal("empty-vs-solid boundary should get a face on the empty side")
	}
	want := w.Flip()
	for i, pt := range f1.W {
		if pt != want[i] {
			t.Fatalf("point %d = %v, want %v (flipped)", i, pt, want[i])
		}
	}
}

func TestFaceFromPortalNilSideBridgesNothing(t *testing.T) {
	ctx := NewCompileContext(ClassicGameRules{}, Config{})
	p, _, _ := testPortal(square3D(), ContentsEmpty, ContentsEmpty, nil)
	if f := FaceFromPortal(ctx, p, 0); f != nil {
		t.Fatal("a portal with no Side should never materialise a face")
	}
}

func TestMaterializeLeafPortalsSkipsSolidLeaves(t *testing.T) {
	ctx := NewCompileContext(ClassicGameRules{}, Config{})
	side := &Side{PlaneNum: 0, PlaneSide: 0, TexinfoNum: 0}
	p, solid, empty := testPortal(square3D(), ContentsSolid, ContentsEmpty, side)

	materializeLeafPortals(ctx, solid)
	if p.Face[0] != nil {
		t.Fatal("solid leaf should never materialise a face on its own side")
	}

	materializeLeafPortals(ctx, empty)
	if p.Face[1] == nil {
		t.Fatal("empty leaf adjacent to solid should materialise a face")
	}
}

func TestFaceFromPortalSolidSolidBoundaryInvisible(t *testing.T) {
	ctx := NewCompileContext(ClassicGameRules{}, Config{})
	side := &Side{PlaneNum: 0, PlaneSide: 0, TexinfoNum: 0}
	p, _, _ := testPortal(square3D(), ContentsSolid, ContentsSolid, side)

	if f := FaceFromPortal(ctx, p, 0); f != nil {
		t.Fatal("solid-solid boundary should never be visible")
	}
}
