package bspscene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/samber/lo"
)

// ConvexEpsilon tolerates floating-point noise when checking that a
// merged winding's turns all agree with the face's plane normal.
const ConvexEpsilon = 1e-5

// MergeStats records how many fusions happened, per the Open Question
// decision that c_merge is a diagnostic counter only, never control
// flow (nothing in the original reads it either).
type MergeStats struct {
	Merged int
}

func facesFusable(f1, f2 *Face) bool {
	return f1.PlaneNum == f2.PlaneNum &&
		f1.Side == f2.Side &&
		f1.TexinfoNum == f2.TexinfoNum &&
		f1.Contents == f2.Contents &&
		f1.LmShift == f2.LmShift
}

func pointsEqual(a, b mgl64.Vec3) bool {
	d := a.Sub(b)
	return d[0] > -PointEpsilon && d[0] < PointEpsilon &&
		d[1] > -PointEpsilon && d[1] < PointEpsilon &&
		d[2] > -PointEpsilon && d[2] < PointEpsilon
}

// tryMergeWindings looks for a shared edge between w1 and w2 — a pair
// of points that appear in w1 as (p1,p2) and in w2 as (p2,p1) — and, if
// found, returns the fused outline with the shared edge dropped.
// Grounded on the classic TryMerge shape visible throughout
// faces.cc-adjacent BSP tooling: walk both windings once, match the
// reversed edge, splice the remainders together.
func tryMergeWindings(w1, w2 Winding) (Winding, bool) {
	n1, n2 := len(w1), len(w2)
	matchI, matchJ := -1, -1
	for i := 0; i < n1 && matchI == -1; i++ {
		p1 := w1[i]
		p2 := w1[(i+1)%n1]
		for j := 0; j < n2; j++ {
			p3 := w2[j]
			p4 := w2[(j+1)%n2]
			if pointsEqual(p3, p2) && pointsEqual(p4, p1) {
				matchI, matchJ = i, j
				break
			}
		}
	}
	if matchI == -1 {
		return nil, false
	}

	merged := make(Winding, 0, n1+n2-2)
	for k := (matchI + 1) % n1; k != matchI; k = (k + 1) % n1 {
		merged = append(merged, w1[k])
	}
	for l := (matchJ + 1) % n2; l != matchJ; l = (l + 1) % n2 {
		merged = append(merged, w2[l])
	}
	return removeCollinearPoints(merged), true
}

// collinearEpsilon bounds the cross-product magnitude below which a
// merged winding's vertex is treated as lying on the straight line
// between its neighbours and dropped — splicing two windings at a
// shared edge otherwise leaves both of that edge's endpoints in the
// result even when the union's outline no longer turns there.
const collinearEpsilon = 1e-4

func removeCollinearPoints(w Winding) Winding {
	n := len(w)
	if n < 4 {
		return w
	}
	out := make(Winding, 0, n)
	for i := 0; i < n; i++ {
		prev := w[(i-1+n)%n]
		cur := w[i]
		next := w[(i+1)%n]
		turn := cur.Sub(prev).Cross(next.Sub(cur))
		if turn.Len() < collinearEpsilon {
			continue
		}
		out = append(out, cur)
	}
	if len(out) < 3 {
		return w
	}
	return out
}

// isConvexWinding reports whether every turn of w agrees with normal
// (within ConvexEpsilon), i.e. whether the polygon is still convex.
func isConvexWinding(w Winding, normal mgl64.Vec3) bool {
	n := len(w)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a, b, c := w[i], w[(i+1)%n], w[(i+2)%n]
		turn := b.Sub(a).Cross(c.Sub(b))
		if turn.Dot(normal) < -ConvexEpsilon {
			return false
		}
	}
	return true
}

func faceNormal(ctx *CompileContext, f *Face) mgl64.Vec3 {
	n := ctx.Planes.Get(f.PlaneNum).Normal
	if f.Side == 1 {
		return n.Mul(-1)
	}
	return n
}

// MergeFaces repeatedly fuses pairs of node's faces until no pair
// fuses. Scanning is in input order so results are deterministic;
// merging is a pure optimisation — skipping it still yields a valid
// (just less compact) output.
func MergeFaces(ctx *CompileContext, node *Node) MergeStats {
	var stats MergeStats
	faces := node.faces

	for {
		fusedAt := -1
		var replacement *Face
		var i, j int

		for a := 0; a < len(faces) && fusedAt == -1; a++ {
			for b := a + 1; b < len(faces); b++ {
				f1, f2 := faces[a], faces[b]
				if !facesFusable(f1, f2) {
					continue
				}
				merged, ok := tryMergeWindings(f1.W, f2.W)
				if !ok {
					continue
				}
				if !isConvexWinding(merged, faceNormal(ctx, f1)) {
					continue
				}
				replacement = f1.cloneShallow(merged)
				i, j, fusedAt = a, b, a
				break
			}
		}

		if fusedAt == -1 {
			break
		}

		faces = lo.Filter(faces, func(_ *Face, idx int) bool {
			return idx != i && idx != j
		})
		faces = append(faces, replacement)
		stats.Merged++
	}

	node.faces = faces
	return stats
}
