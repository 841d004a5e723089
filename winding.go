package bspscene

import "github.com/go-gl/mathgl/mgl64"

// SideEpsilon is the plane-distance tolerance used to classify a
// winding point as strictly in front of, strictly behind, or on a
// splitting plane. Value follows zdefs.go's SIDE_EPSILON (0.0001),
// matching the BSP tooling convention of a fixed plane-side tolerance
// rather than one scaled to each winding's own size.
const SideEpsilon = 0.0001

// Winding is a finite convex polygon: an ordered sequence of points,
// implicitly coplanar. Grounded on faces.cc's winding-clip routines;
// diffgeometry.go's 2-D epsilon-comparison idiom is the style
// reference, generalised here to 3-D.
type Winding []mgl64.Vec3

// Flip reverses point order, inverting the implied plane orientation.
func (w Winding) Flip() Winding {
	n := len(w)
	out := make(Winding, n)
	for i, p := range w {
		out[n-1-i] = p
	}
	return out
}

// Bounds returns the axis-aligned bounding box of w. Calling Bounds on
// an empty winding is a programming error.
func (w Winding) Bounds() (min, max mgl64.Vec3) {
	if len(w) == 0 {
		Log.Panic("Winding.Bounds: empty winding")
	}
	min, max = w[0], w[0]
	for _, p := range w[1:] {
		for i := 0; i < 3; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	return min, max
}

// Area returns the polygon's area via a triangle fan from the first
// point.
func (w Winding) Area() float64 {
	if len(w) < 3 {
		return 0
	}
	var total mgl64.Vec3
	for i := 1; i < len(w)-1; i++ {
		d1 := w[i].Sub(w[0])
		d2 := w[i+1].Sub(w[0])
		total = total.Add(d1.Cross(d2))
	}
	return total.Len() * 0.5
}

// Split divides w by plane p into a front piece and a back piece;
// either may be nil if w lies entirely on one side. Points within
// SideEpsilon of the plane are treated as on it and copied to both
// sides without introducing a new intersection point.
func (w Winding) Split(p Plane) (front, back Winding) {
	n := len(w)
	if n == 0 {
		return nil, nil
	}

	const (
		sideFront = 0
		sideBack  = 1
		sideOn    = 2
	)

	dists := make([]float64, n)
	sides := make([]int, n)
	var counts [3]int
	for i, pt := range w {
		d := p.Normal.Dot(pt) - p.Dist
		dists[i] = d
		switch {
		case d > SideEpsilon:
			sides[i] = sideFront
		case d < -SideEpsilon:
			sides[i] = sideBack
		default:
			sides[i] = sideOn
		}
		counts[sides[i]]++
	}

	if counts[sideFront] == 0 {
		return nil, w
	}
	if counts[sideBack] == 0 {
		return w, nil
	}

	for i := 0; i < n; i++ {
		p1 := w[i]
		switch sides[i] {
		case sideOn:
			front = append(front, p1)
			back = append(back, p1)
			continue
		case sideFront:
			front = append(front, p1)
		case sideBack:
			back = append(back, p1)
		}

		next := (i + 1) % n
		if sides[next] == sideOn || sides[next] == sides[i] {
			continue
		}

		p2 := w[next]
		t := dists[i] / (dists[i] - dists[next])
		var mid mgl64.Vec3
		for j := 0; j < 3; j++ {
			mid[j] = p1[j] + t*(p2[j]-p1[j])
		}
		front = append(front, mid)
		back = append(back, mid)
	}

	return front, back
}

// Clone returns an independent copy of w, for callers that need to
// mutate a winding without aliasing the original (mark-face clipping's
// per-recursion fragment trees).
func (w Winding) Clone() Winding {
	out := make(Winding, len(w))
	copy(out, w)
	return out
}
