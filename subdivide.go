package bspscene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/samber/lo"
)

// SubdivideStats counts split events, a diagnostic counter only (see
// the Open Question decision on c_subdivide — nothing downstream reads
// it as control flow).
type SubdivideStats struct {
	Subdivided int
}

// SubdivideFaces chops every eligible face on node so no fragment's
// extent along either texture axis exceeds the configured limit,
// replacing node's facelist with the resulting set.
func SubdivideFaces(ctx *CompileContext, node *Node) SubdivideStats {
	var stats SubdivideStats
	node.faces = lo.FlatMap(node.faces, func(f *Face, _ int) []*Face {
		return subdivideFace(ctx, f, &stats)
	})
	return stats
}

func subdivideLimit(cfg Config, lmshift int) int {
	shift := lmshift
	if shift > MaxLightmapShift {
		shift = MaxLightmapShift
	}
	if shift < 0 {
		shift = 0
	}
	cap := 255 << shift
	limit := cfg.Subdivide
	if limit <= 0 || limit > cap {
		limit = cap
	}
	return limit
}

func subdivideFace(ctx *CompileContext, f *Face, stats *SubdivideStats) []*Face {
	tex := ctx.Texinfos.Get(f.TexinfoNum)
	if !ctx.Rules.SurfIsSubdivided(tex.Flags) {
		return []*Face{f}
	}

	limit := subdivideLimit(ctx.Config, f.LmShift)
	result := []*Face{f}
	// The first axis completes before the second begins.
	for axis := 0; axis < 2; axis++ {
		next := make([]*Face, 0, len(result))
		for _, piece := range result {
			next = append(next, subdivideAxis(piece, tex, axis, limit, stats)...)
		}
		result = next
	}
	return result
}

// subdivideAxis recursively chops f along a single texture axis,
// retaining every "back" fragment it cuts off and recursing only on the
// remaining "front" piece. Grounded on faces.cc's
// SubdivideFace: the split plane's dist uses the un-normalised axis
// vector's projection, then divides by its length once the normal is
// normalised, and "-16" is the lightmap slack the original hardcodes.
func subdivideAxis(f *Face, tex Texinfo, axis int, limit int, stats *SubdivideStats) []*Face {
	axisVec := mgl64.Vec3{tex.Vecs[axis][0], tex.Vecs[axis][1], tex.Vecs[axis][2]}
	axisLen := axisVec.Len()
	if axisLen == 0 {
		return []*Face{f}
	}

	mins, maxs := math.Inf(1), math.Inf(-1)
	for _, p := range f.W {
		v := axisVec.Dot(p)
		if v < mins {
			mins = v
		}
		if v > maxs {
			maxs = v
		}
	}
	extent := math.Ceil(maxs) - math.Floor(mins)
	if extent <= float64(limit) {
		return []*Face{f}
	}

	splitDist := (mins + float64(limit) - 16) / axisLen
	plane := Plane{Normal: axisVec.Normalize(), Dist: splitDist}

	frontW, backW := f.W.Split(plane)
	if len(frontW) < 3 || len(backW) < 3 {
		Log.Verbose(1, "subdivide: degenerate split on axis %d, keeping face unsplit", axis)
		return []*Face{f}
	}

	backFace := f.cloneShallow(backW)
	frontFace := f.cloneShallow(frontW)
	stats.Subdivided++

	return append([]*Face{backFace}, subdivideAxis(frontFace, tex, axis, limit, stats)...)
}
