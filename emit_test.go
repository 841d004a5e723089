package bspscene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func singleFaceTree(f *Face) *Node {
	root := NewInternalNode(0, NewLeaf(ContentsEmpty), NewLeaf(ContentsEmpty))
	root.faces = []*Face{f}
	return root
}

func TestOmitFaceSkySkipHint(t *testing.T) {
	ctx := NewCompileContext(ClassicGameRules{}, Config{})

	skyTex := ctx.Texinfos.AddOrFind(Texinfo{Flags: SurfSky})
	skipTex := ctx.Texinfos.AddOrFind(Texinfo{Flags: SurfSkip})
	hintTex := ctx.Texinfos.AddOrFind(Texinfo{Flags: SurfHint})
	plainTex := ctx.Texinfos.AddOrFind(Texinfo{})

	cases := []struct {
		name string
		tex  int
		want bool
	}{
		{"sky", skyTex, true},
		{"skip", skipTex, true},
		{"hint", hintTex, true},
		{"plain", plainTex, false},
	}
	for _, c := range cases {
		f := NewFace()
		f.TexinfoNum = c.tex
		f.Contents = ContentsEmpty
		if got := omitFace(ctx, f); got != c.want {
			t.Errorf("%s: omitFace = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestOmitFaceIncludeSkipOverride(t *testing.T) {
	ctx := NewCompileContext(ClassicGameRules{}, Config{IncludeSkip: true})
	tex := ctx.Texinfos.AddOrFind(Texinfo{Flags: SurfSkip})
	f := NewFace()
	f.TexinfoNum = tex
	f.Contents = ContentsEmpty
	if omitFace(ctx, f) {
		t.Fatal("IncludeSkip should stop skip-flagged faces from being omitted")
	}
}

func TestOmitFaceSkyContents(t *testing.T) {
	ctx := NewCompileContext(ClassicGameRules{}, Config{})
	tex := ctx.Texinfos.AddOrFind(Texinfo{})
	f := NewFace()
	f.TexinfoNum = tex
	f.Contents = ContentsSky
	if !omitFace(ctx, f) {
		t.Fatal("a face on sky contents should be omitted regardless of texinfo")
	}
}

func TestMakeFaceEdgesStampsNodeRanges(t *testing.T) {
	ctx := NewCompileContext(ClassicGameRules{}, Config{})
	tex := ctx.Texinfos.AddOrFind(Texinfo{})
	planeIdx := ctx.Planes.AddOrFind(Plane{Normal: mgl64.Vec3{0, 0, 1}, Dist: 0})

	f := NewFace()
	f.PlaneNum, f.TexinfoNum, f.Contents = planeIdx, tex, ContentsEmpty
	f.W = square3D()

	root := singleFaceTree(f)
	first := MakeFaceEdges(ctx, 0, root)

	if first != 0 {
		t.Fatalf("firstface = %d, want 0", first)
	}
	if root.FirstFace != 0 {
		t.Fatalf("root.FirstFace = %d, want 0", root.FirstFace)
	}
	if root.NumFaces != len(ctx.Faces) {
		t.Fatalf("root.NumFaces = %d, want %d", root.NumFaces, len(ctx.Faces))
	}
	if len(ctx.Faces) != 1 {
		t.Fatalf("emitted %d faces, want 1", len(ctx.Faces))
	}
	if f.OutputIndex != 0 {
		t.Fatalf("face.OutputIndex = %d, want 0", f.OutputIndex)
	}
}

// When mark-surface clipping has split a face across more than one
// leaf, emission walks its Fragments instead of its own winding, and
// each fragment is emitted as an independent output record.
func TestEmitUsesFragmentsWhenPresent(t *testing.T) {
	ctx := NewCompileContext(ClassicGameRules{}, Config{})
	tex := ctx.Texinfos.AddOrFind(Texinfo{})
	planeIdx := ctx.Planes.AddOrFind(Plane{Normal: mgl64.Vec3{0, 0, 1}, Dist: 0})

	f := NewFace()
	f.PlaneNum, f.TexinfoNum, f.Contents = planeIdx, tex, ContentsEmpty
	f.W = square3D()
	f.Fragments = []*Face{
		f.cloneShallow(Winding{{0, 0, 0}, {32, 0, 0}, {32, 64, 0}, {0, 64, 0}}),
		f.cloneShallow(Winding{{32, 0, 0}, {64, 0, 0}, {64, 64, 0}, {32, 64, 0}}),
	}

	root := singleFaceTree(f)
	MakeFaceEdges(ctx, 0, root)

	if len(ctx.Faces) != 2 {
		t.Fatalf("emitted %d faces, want 2 (one per fragment)", len(ctx.Faces))
	}
	if f.OutputIndex != -1 {
		t.Fatalf("parent face with fragments should never itself be emitted, got OutputIndex=%d", f.OutputIndex)
	}
	for i, frag := range f.Fragments {
		if frag.OutputIndex != i {
			t.Errorf("fragment %d: OutputIndex = %d, want %d", i, frag.OutputIndex, i)
		}
	}
}
