package bspscene

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// exportMap lazily assigns output indices to internal table indices in
// first-reference order, the way the emitter resolves a face's plane
// and texinfo indices through separate export tables instead of
// emitting every plane or texinfo that was ever inserted during
// compilation, only the ones actually referenced by emitted faces.
type exportMap struct {
	remap map[int]int
	order []int
}

func newExportMap() *exportMap {
	return &exportMap{remap: make(map[int]int)}
}

func (m *exportMap) resolve(internal int) int {
	if out, ok := m.remap[internal]; ok {
		return out
	}
	out := len(m.order)
	m.remap[internal] = out
	m.order = append(m.order, internal)
	return out
}

// OutputFace is the emitted face record. Field shape follows
// therjak-goquake/bsp/types.go's faceV1 (PlaneID/Side/TexInfoID/
// ListEdgeID/ListEdgeNumber/LightStyle/LightMap).
type OutputFace struct {
	PlaneNum   int
	Side       int
	TexinfoNum int
	FirstEdge  int
	NumEdges   int
	LightOfs   int32
	Styles     [4]uint8
}

const noLightmap int32 = -1
const lightStyleSentinel uint8 = 255

func newOutputFace() OutputFace {
	return OutputFace{
		LightOfs: noLightmap,
		Styles:   [4]uint8{lightStyleSentinel, lightStyleSentinel, lightStyleSentinel, lightStyleSentinel},
	}
}

// CompileContext bundles the tables that are process-wide within a
// compile as a single explicit value so the core can be exercised in
// tests without any ambient teardown ritual.
type CompileContext struct {
	Planes    *PlaneTable
	Vertices  *VertexTable
	Edges     *EdgeTable
	Texinfos  *TexinfoTable
	Rules     GameRules
	Config    Config

	PlaneExport   *exportMap
	TexinfoExport *exportMap

	// Surfedges and Faces are the final emitted output tables, grown
	// only by MakeFaceEdges.
	Surfedges []int
	Faces     []OutputFace

	mu sync.Mutex
}

// NewCompileContext constructs an empty compile context for the given
// game rules and configuration.
func NewCompileContext(rules GameRules, cfg Config) *CompileContext {
	cfg.TargetGame = rules
	return &CompileContext{
		Planes:        NewPlaneTable(),
		Vertices:      NewVertexTable(),
		Edges:         NewEdgeTable(rules),
		Texinfos:      NewTexinfoTable(),
		Rules:         rules,
		Config:        cfg,
		PlaneExport:   newExportMap(),
		TexinfoExport: newExportMap(),
	}
}

// Lock/Unlock serialise one entity's emission against another: the
// emitter, tables and output buffers are shared mutable state that
// must be exclusive for the whole of MakeFaceEdges for one entity at a
// time. Distinct entities' trees may be walked (materialised, merged,
// subdivided) concurrently by the caller up to the point they call
// MakeFaceEdges.
func (c *CompileContext) Lock()   { c.mu.Lock() }
func (c *CompileContext) Unlock() { c.mu.Unlock() }

func (c *CompileContext) exportPlane(planeNum int) int {
	return c.PlaneExport.resolve(planeNum)
}

func (c *CompileContext) exportTexinfo(texinfoNum int) int {
	return c.TexinfoExport.resolve(texinfoNum)
}

// vertexPoint is a small helper returning a vertex's point given a
// table index. Nothing in the package calls it; the subdivider and the
// merger work on winding points directly.
func (c *CompileContext) vertexPoint(index int) mgl64.Vec3 {
	return c.Vertices.Get(index)
}
