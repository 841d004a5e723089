package bspscene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Values within ZeroEpsilon of an integer are snapped before hashing;
// lookups then collapse within ±PointEpsilon/2 on every coordinate.
const (
	ZeroEpsilon        = 1.0 / 64.0
	PointEpsilon       = 0.01
	HalfPointEpsilon   = PointEpsilon / 2
)

func snapCoord(v float64) float64 {
	r := math.Round(v)
	if math.Abs(v-r) < ZeroEpsilon {
		return r
	}
	return v
}

func snapVertex(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{snapCoord(p.X()), snapCoord(p.Y()), snapCoord(p.Z())}
}

// VertexTable is the insertion-ordered, epsilon-deduplicated 3-D point
// store. Grounded on include/qbsp/map.hh's hashverts/
// find_emitted_hash_vector and faces.cc's GetVertex snap-then-lookup
// sequence; the backing index is the same spatialIndex shape as the
// plane table, just 3-D instead of 4-D.
type VertexTable struct {
	vertices []mgl64.Vec3
	index    *spatialIndex
}

func NewVertexTable() *VertexTable {
	return &VertexTable{index: newSpatialIndex(3)}
}

var vertexEps = []float64{HalfPointEpsilon, HalfPointEpsilon, HalfPointEpsilon}

func vertexCoords(p mgl64.Vec3) []float64 {
	return []float64{p.X(), p.Y(), p.Z()}
}

// GetOrAdd snaps p, looks it up, and either returns an existing index
// or appends a new entry and returns its index. The table is
// append-only: returned indices are stable for the lifetime of the
// table.
func (t *VertexTable) GetOrAdd(p mgl64.Vec3) int {
	snapped := snapVertex(p)
	coords := vertexCoords(snapped)
	if hits := t.index.query(coords, vertexEps); len(hits) > 0 {
		return hits[0]
	}
	idx := len(t.vertices)
	t.vertices = append(t.vertices, snapped)
	t.index.insert(coords, idx)
	return idx
}

func (t *VertexTable) Get(index int) mgl64.Vec3 {
	if index < 0 || index >= len(t.vertices) {
		Log.Panic("VertexTable.Get: index %d out of range (have %d vertices)", index, len(t.vertices))
	}
	return t.vertices[index]
}

func (t *VertexTable) Len() int {
	return len(t.vertices)
}
