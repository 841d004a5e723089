package bspscene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Plane axis-type tags, following therjak-goquake/bsp/types.go's
// plane.Type field: 0/1/2 are exactly axis-aligned, 3/4/5 are
// non-axial but still dominated by the X/Y/Z component respectively.
const (
	PlaneAxisX = 0
	PlaneAxisY = 1
	PlaneAxisZ = 2
	PlaneAnyX  = 3
	PlaneAnyY  = 4
	PlaneAnyZ  = 5
)

// Near-duplicate lookups collapse within (normal ε/2, distance ε/2) on
// every axis simultaneously. Values follow include/qbsp/map.hh's
// HALF_NORMAL_EPSILON/HALF_DIST_EPSILON pattern.
const (
	PlaneNormalEpsilon     = 1.0 / 32.0
	PlaneHalfNormalEpsilon = PlaneNormalEpsilon / 2
	PlaneDistEpsilon       = 0.01
	PlaneHalfDistEpsilon   = PlaneDistEpsilon / 2
	axialNormalTolerance   = 1e-9
)

// Plane is an oriented hyperplane: unit normal and signed distance,
// tagged with the dominant axis used for canonical orientation.
type Plane struct {
	Normal mgl64.Vec3
	Dist   float64
	Type   int
}

func planeType(n mgl64.Vec3) int {
	ax, ay, az := math.Abs(n.X()), math.Abs(n.Y()), math.Abs(n.Z())
	if ax > 1-axialNormalTolerance {
		return PlaneAxisX
	}
	if ay > 1-axialNormalTolerance {
		return PlaneAxisY
	}
	if az > 1-axialNormalTolerance {
		return PlaneAxisZ
	}
	switch {
	case ax >= ay && ax >= az:
		return PlaneAnyX
	case ay >= ax && ay >= az:
		return PlaneAnyY
	default:
		return PlaneAnyZ
	}
}

func dominantComponent(n mgl64.Vec3, t int) float64 {
	switch t {
	case PlaneAxisX, PlaneAnyX:
		return n.X()
	case PlaneAxisY, PlaneAnyY:
		return n.Y()
	default:
		return n.Z()
	}
}

func negatePlane(p Plane) Plane {
	return Plane{Normal: p.Normal.Mul(-1), Dist: -p.Dist, Type: p.Type}
}

// canonicalize returns the positive-side form of p: the one whose
// normal component along its dominant axis is >= 0.
func canonicalize(p Plane) Plane {
	t := planeType(p.Normal)
	p.Type = t
	if dominantComponent(p.Normal, t) < 0 {
		return negatePlane(p)
	}
	return p
}

// PlaneTable is the insertion-ordered plane store with near-duplicate
// lookup. Planes are stored as adjacent even/odd pairs: even
// is the canonical (positive) orientation, odd is its negation.
// Grounded on include/qbsp/map.hh's add_plane/find_plane/
// add_or_find_plane/get_plane and its even/odd swap rule.
type PlaneTable struct {
	planes []Plane
	index  *spatialIndex
}

func NewPlaneTable() *PlaneTable {
	return &PlaneTable{index: newSpatialIndex(4)}
}

func planeCoords(p Plane) []float64 {
	return []float64{p.Normal.X(), p.Normal.Y(), p.Normal.Z(), p.Dist}
}

var planeEps = []float64{PlaneHalfNormalEpsilon, PlaneHalfNormalEpsilon, PlaneHalfNormalEpsilon, PlaneHalfDistEpsilon}

// Add emplaces the canonical pair for p and returns the index of
// whichever side matches p's own orientation. If an equivalent plane
// (within epsilon, in either orientation) is already present, its
// existing pair is reused instead of inserting a duplicate — the
// even/odd pair is the table's unit of identity, so add(P) and
// add(−P) must land on the same pair, differing only in which slot of
// it each call returns.
func (t *PlaneTable) Add(p Plane) int {
	positive := canonicalize(p)

	if hits := t.index.query(planeCoords(positive), planeEps); len(hits) > 0 {
		// The hit may be either slot of its pair (the odd one when the
		// dominant axis is a near tie); the other slot is hit ^ 1.
		hit := hits[0]
		if positive.Normal.Dot(p.Normal) >= 0 {
			return hit
		}
		return hit ^ 1
	}

	negative := negatePlane(positive)
	evenIdx := len(t.planes)
	t.planes = append(t.planes, positive, negative)
	t.index.insert(planeCoords(positive), evenIdx)
	t.index.insert(planeCoords(negative), evenIdx+1)

	if positive.Normal.Dot(p.Normal) >= 0 {
		return evenIdx
	}
	return evenIdx + 1
}

// Find returns either index whose stored plane lies within epsilon of
// the query, or ok=false.
func (t *PlaneTable) Find(p Plane) (index int, ok bool) {
	hits := t.index.query(planeCoords(p), planeEps)
	if len(hits) == 0 {
		return 0, false
	}
	return hits[0], true
}

func (t *PlaneTable) AddOrFind(p Plane) int {
	if idx, ok := t.Find(p); ok {
		return idx
	}
	return t.Add(p)
}

// Get returns the plane at index. Out-of-range is a fatal programming
// error.
func (t *PlaneTable) Get(index int) Plane {
	if index < 0 || index >= len(t.planes) {
		Log.Panic("PlaneTable.Get: index %d out of range (have %d planes)", index, len(t.planes))
	}
	return t.planes[index]
}

func (t *PlaneTable) Len() int {
	return len(t.planes)
}
