package bspscene

// Face is a textured, oriented convex surface. A Face with a non-nil
// Fragments list represents a splitter-level surface that has been
// further clipped down into per-leaf pieces by mark-surface clipping;
// each fragment shares the parent's plane/texinfo/contents/lmshift but
// carries its own winding and, once edge discovery has run, its own
// edge index list and output index. Fragments never carry further
// fragments of their own.
type Face struct {
	PlaneNum   int
	Side       int
	TexinfoNum int
	W          Winding
	Fragments  []*Face
	Contents   Contents
	LmShift    int

	// OutputIndex is set during emission; -1 means "not yet emitted".
	// A second assignment is a fatal invariant violation.
	OutputIndex int

	// EdgeIndices holds the signed edge-table indices produced by edge
	// discovery, in winding order. Consumed (cleared) once appended to
	// the surfedge list during emission.
	EdgeIndices []int

	// Portal is the back-reference to the portal this face was
	// materialised from, nil for faces that never came from a portal
	// (none currently do, but the field exists for parity with the
	// original face_t's shape).
	Portal *Portal
}

func NewFace() *Face {
	return &Face{OutputIndex: -1}
}

// markEmitted records the face's output index, panicking if it has
// already been assigned one ("face emitted twice" is a fatal invariant
// violation, never a recoverable condition).
func (f *Face) markEmitted(index int) {
	if f.OutputIndex != -1 {
		Log.Panic("face already emitted with output index %d, cannot reassign %d", f.OutputIndex, index)
	}
	f.OutputIndex = index
}

// Windings returns the polygon(s) f actually resolves to for an
// external consumer such as an OBJ exporter: a face mark-surface
// clipping never split across more than one leaf yields its own
// winding; a face that was split yields one winding per fragment.
// Shares facePieces's decision so emission and this view never
// disagree about which case a face is in.
func (f *Face) Windings() []Winding {
	pieces := facePieces(f)
	out := make([]Winding, len(pieces))
	for i, p := range pieces {
		out[i] = p.W
	}
	return out
}

// cloneShallow returns a new Face sharing this one's plane/texinfo/
// contents/lmshift/portal but with its own winding and no fragments —
// the shape mark-face clipping needs when it splits a face's winding
// while leaving the original untouched.
func (f *Face) cloneShallow(w Winding) *Face {
	return &Face{
		PlaneNum:    f.PlaneNum,
		Side:        f.Side,
		TexinfoNum:  f.TexinfoNum,
		W:           w,
		Contents:    f.Contents,
		LmShift:     f.LmShift,
		Portal:      f.Portal,
		OutputIndex: -1,
	}
}
