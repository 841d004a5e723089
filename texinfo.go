package bspscene

// Texinfo is a texture mapping descriptor: two texture-space axis
// vectors (direction + offset each), a miptex index and surface flags.
// Shape follows include/qbsp/map.hh's mapface_t texinfo fields and
// therjak-goquake/bsp/types.go's surface struct (VectorS/DistS/VectorT/
// DistT/TextureID), generalised to a pair of 4-vectors so the
// subdivider can read vecs[axis].xyz directly.
type Texinfo struct {
	// Vecs[0] and Vecs[1] are the S and T texture axes: [0:3] is the
	// unnormalised direction, [3] is the offset.
	Vecs     [2][4]float64
	Miptex   int32
	Flags    uint32
	LmShift  int
}

// TexinfoTable is an insertion-ordered, exact-match-deduplicated list of
// Texinfo values. Unlike the Plane and Vertex tables, texinfo is
// discrete data (not floating-point geometry a runtime perturbs), so no
// epsilon is involved.
type TexinfoTable struct {
	entries []Texinfo
}

func NewTexinfoTable() *TexinfoTable {
	return &TexinfoTable{}
}

// AddOrFind returns the index of an existing equal entry, or appends t
// and returns its new index.
func (t *TexinfoTable) AddOrFind(tex Texinfo) int {
	for i, e := range t.entries {
		if e == tex {
			return i
		}
	}
	t.entries = append(t.entries, tex)
	return len(t.entries) - 1
}

// Get returns the texinfo at index. Out-of-range is a programming error.
func (t *TexinfoTable) Get(index int) Texinfo {
	if index < 0 || index >= len(t.entries) {
		Log.Panic("TexinfoTable.Get: index %d out of range (have %d entries)", index, len(t.entries))
	}
	return t.entries[index]
}

func (t *TexinfoTable) Len() int {
	return len(t.entries)
}
