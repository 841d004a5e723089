package bspscene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func square() Winding {
	return Winding{
		{0, 0, 0},
		{64, 0, 0},
		{64, 64, 0},
		{0, 64, 0},
	}
}

func TestWindingFlip(t *testing.T) {
	w := square()
	flipped := w.Flip()
	if len(flipped) != len(w) {
		t.Fatalf("flip changed point count: %d vs %d", len(flipped), len(w))
	}
	for i, p := range w {
		if flipped[len(w)-1-i] != p {
			t.Errorf("point %d not reversed correctly", i)
		}
	}
}

func TestWindingArea(t *testing.T) {
	w := square()
	if area := w.Area(); math.Abs(area-64*64) > 1e-6 {
		t.Fatalf("area = %v, want %v", area, 64.0*64.0)
	}
}

func TestWindingSplitEntirelyOnOneSide(t *testing.T) {
	w := square()
	plane := Plane{Normal: mgl64.Vec3{0, 0, 1}, Dist: 10}
	front, back := w.Split(plane)
	if front != nil {
		t.Fatalf("expected nil front, got %d points", len(front))
	}
	if len(back) != len(w) {
		t.Fatalf("back piece should be the whole winding, got %d points", len(back))
	}
}

func TestWindingSplitBisect(t *testing.T) {
	w := square()
	plane := Plane{Normal: mgl64.Vec3{1, 0, 0}, Dist: 32}
	front, back := w.Split(plane)
	if len(front) < 3 || len(back) < 3 {
		t.Fatalf("bisecting split produced degenerate pieces: front=%d back=%d", len(front), len(back))
	}
	frontArea, backArea := front.Area(), back.Area()
	if math.Abs(frontArea-back.Area()) > 1e-6 {
		t.Fatalf("bisecting a square should split the area evenly: %v vs %v", frontArea, backArea)
	}
	if math.Abs((frontArea+backArea)-w.Area()) > 1e-6 {
		t.Fatalf("split pieces' combined area %v does not match original %v", frontArea+backArea, w.Area())
	}
}

func TestWindingCloneIsIndependent(t *testing.T) {
	w := square()
	c := w.Clone()
	c[0] = mgl64.Vec3{999, 999, 999}
	if w[0] == c[0] {
		t.Fatal("Clone aliased the original winding's backing array")
	}
}

func TestWindingBoundsEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty winding bounds")
		}
	}()
	Winding{}.Bounds()
}
