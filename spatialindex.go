package bspscene

import (
	"github.com/dhconnelly/rtreego"
)

// pointEntry is a single indexed coordinate tuple plus the table index
// it refers back to. Both the 3-D vertex index and the 4-D plane index
// use this shape; only the dimensionality of Coords differs.
type pointEntry struct {
	coords []float64
	index  int
}

const entryEpsilon = 1e-9

func (e *pointEntry) Bounds() *rtreego.Rect {
	lengths := make([]float64, len(e.coords))
	for i := range lengths {
		lengths[i] = entryEpsilon
	}
	r, err := rtreego.NewRect(rtreego.Point(e.coords), lengths)
	if err != nil {
		Log.Panic("spatial index: degenerate point bounds: %v", err)
	}
	return r
}

// spatialIndex is an epsilon-tolerant point index over a fixed
// dimensionality, backed by an R-tree. It generalises node_vmap.go's
// VertexMap/GetBlock grid-then-epsilon-box approach (2-D, Doom segs) to
// arbitrary dimension (3-D vertices, 4-D planes) using a real spatial
// index instead of a hand-rolled grid.
type spatialIndex struct {
	dim  int
	tree *rtreego.Rtree
}

func newSpatialIndex(dim int) *spatialIndex {
	return &spatialIndex{dim: dim, tree: rtreego.NewTree(dim, 25, 50)}
}

// insert records coords as belonging to table index idx.
func (s *spatialIndex) insert(coords []float64, idx int) {
	s.tree.Insert(&pointEntry{coords: append([]float64(nil), coords...), index: idx})
}

// query returns the table indices of every inserted point whose
// per-axis distance from coords is within the matching half-epsilon in
// eps (eps and coords must have the same length as s.dim).
func (s *spatialIndex) query(coords []float64, eps []float64) []int {
	lengths := make([]float64, s.dim)
	origin := make([]float64, s.dim)
	for i := 0; i < s.dim; i++ {
		lengths[i] = 2 * eps[i]
		origin[i] = coords[i] - eps[i]
	}
	box, err := rtreego.NewRect(rtreego.Point(origin), lengths)
	if err != nil {
		Log.Panic("spatial index: bad query box: %v", err)
	}
	hits := s.tree.SearchIntersect(box)
	results := make([]int, 0, len(hits))
	for _, h := range hits {
		pe := h.(*pointEntry)
		within := true
		for i := 0; i < s.dim; i++ {
			d := pe.coords[i] - coords[i]
			if d < 0 {
				d = -d
			}
			if d > eps[i] {
				within = false
				break
			}
		}
		if within {
			results = append(results, pe.index)
		}
	}
	return results
}
