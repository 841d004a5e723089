package bspscene

// Contents tags the solid/fluid/air nature of a leaf or the bounded
// side of a face. The core never switches on a hardcoded set of these
// values directly — it always goes through a GameRules implementation,
// keeping per-game content taxonomies behind an interface rather than
// scattering game-specific checks through the core.
type Contents int32

// Surface flags carried on a Texinfo, consulted by GameRules.SurfIsSubdivided
// and by the emitter's omit logic.
const (
	SurfSkip uint32 = 1 << iota
	SurfHint
	SurfSky
)

// GameRules exposes the predicates the core needs from upstream without
// committing to one game's content taxonomy.
type GameRules interface {
	// SurfIsSubdivided reports whether a face with the given texinfo
	// flags is eligible for subdivision at all (sky/skip/hint never are).
	SurfIsSubdivided(flags uint32) bool

	// ContentsAreMirrored reports whether a non-empty leaf of the given
	// contents gets a face on its own side of every visible boundary
	// (self-mirroring), rather than only where the originating brush
	// side's PlaneSide matches that side.
	ContentsAreMirrored(c Contents) bool

	// DirectionalVisibleContents reports whether a face should be
	// generated when the near side has "near" contents and the far
	// side has "far" contents.
	DirectionalVisibleContents(near, far Contents) bool

	// IsAnySolid reports whether c is any flavor of solid (opaque to
	// both geometry and visibility).
	IsAnySolid(c Contents) bool

	// IsEmpty reports whether c is ordinary breathable empty space.
	IsEmpty(c Contents) bool

	// IsSky reports whether c is the sky contents type.
	IsSky(c Contents) bool

	// IsValid reports whether c is a contents value the game recognises.
	// strict additionally rejects values that are only valid for brushes,
	// not for leaves (or vice versa, depending on implementation).
	IsValid(c Contents, strict bool) bool
}

// Classic Quake-style contents values, the ones visible throughout
// original_source/. Negative by convention, matching
// therjak-goquake/bsp/types.go's LeafType* constants and the original
// CONTENTS_* values, so that a caller populating a tree from a classic
// compiler's brush stage can pass its own contents values through
// unchanged.
const (
	ContentsEmpty       Contents = -1
	ContentsSolid       Contents = -2
	ContentsWater       Contents = -3
	ContentsSlime       Contents = -4
	ContentsLava        Contents = -5
	ContentsSky         Contents = -6
	ContentsOrigin      Contents = -7
	ContentsClip        Contents = -8
	ContentsCurrent0    Contents = -9
	ContentsCurrent90   Contents = -10
	ContentsCurrent180  Contents = -11
	ContentsCurrent270  Contents = -12
	ContentsCurrentUp   Contents = -13
	ContentsCurrentDown Contents = -14
)

// ClassicGameRules implements GameRules for the classic
// empty/solid/water/slime/lava/sky taxonomy.
type ClassicGameRules struct{}

var _ GameRules = ClassicGameRules{}

func (ClassicGameRules) SurfIsSubdivided(flags uint32) bool {
	return flags&(SurfSkip|SurfHint|SurfSky) == 0
}

// ContentsAreMirrored is true for fluid volumes: a water leaf bordering
// a leaf of other contents gets a face on both sides of that portal
// (the surface is visible looking either direction through the fluid
// boundary), unlike a solid/air boundary where only the air side gets
// one. A portal between two leaves of the same contents gets no face
// at all (see DirectionalVisibleContents).
func (ClassicGameRules) ContentsAreMirrored(c Contents) bool {
	switch c {
	case ContentsWater, ContentsSlime, ContentsLava:
		return true
	default:
		return false
	}
}

// DirectionalVisibleContents is true whenever the two sides differ and
// neither is any-solid-on-both (a solid/solid boundary is never visible
// to begin with, and solid leaves are skipped by the Face Materialiser
// before this predicate is even consulted).
func (g ClassicGameRules) DirectionalVisibleContents(near, far Contents) bool {
	if near == far {
		return false
	}
	if g.IsAnySolid(near) && g.IsAnySolid(far) {
		return false
	}
	return true
}

func (ClassicGameRules) IsAnySolid(c Contents) bool {
	switch c {
	case ContentsSolid, ContentsSky, ContentsOrigin, ContentsClip:
		return true
	default:
		return false
	}
}

func (ClassicGameRules) IsEmpty(c Contents) bool {
	return c == ContentsEmpty
}

func (ClassicGameRules) IsSky(c Contents) bool {
	return c == ContentsSky
}

func (ClassicGameRules) IsValid(c Contents, strict bool) bool {
	switch c {
	case ContentsEmpty, ContentsSolid, ContentsWater, ContentsSlime,
		ContentsLava, ContentsSky:
		return true
	case ContentsOrigin, ContentsClip, ContentsCurrent0, ContentsCurrent90,
		ContentsCurrent180, ContentsCurrent270, ContentsCurrentUp,
		ContentsCurrentDown:
		return !strict
	default:
		return false
	}
}
