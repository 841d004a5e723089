package bspscene

import "github.com/go-gl/mathgl/mgl64"

// NodeBounds is an axis-aligned box. Naming follows convexity.go's
// NodeBounds/FindLimits idiom (that one 2-D, this one 3-D).
type NodeBounds struct {
	Min, Max mgl64.Vec3
}

// Node is an internal BSP node or a leaf. Internal nodes carry a
// splitting plane, two children and the facelist of faces lying on
// that splitter; leaves carry a contents tag, a mark-surface list and
// the head of their portal ring.
type Node struct {
	Leaf bool

	// Internal node fields.
	PlaneNum int
	Children [2]*Node
	faces    []*Face

	// Leaf fields.
	Contents  Contents
	MarkFaces []*Face
	Portals   *Portal

	Bounds NodeBounds

	// Emitter-assigned output range, written into internal nodes.
	FirstFace int
	NumFaces  int
}

func NewLeaf(contents Contents) *Node {
	return &Node{Leaf: true, Contents: contents}
}

func NewInternalNode(planeNum int, front, back *Node) *Node {
	return &Node{PlaneNum: planeNum, Children: [2]*Node{front, back}}
}

// Faces returns the splitter's facelist, a read-side seam so an
// external OBJ exporter can walk a tree without reaching into the
// package's internals the way ExportObj_Nodes does over node_t in the
// original.
func (n *Node) Faces() []*Face {
	return n.faces
}
