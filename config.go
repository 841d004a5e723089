package bspscene

// Config is the options bag the core consumes from its caller. None of
// these are parsed here — no flag package, no environment lookup — the
// front end that owns the CLI/config file is responsible for filling
// this struct in.
type Config struct {
	// Subdivide is the maximum texture-space extent a face may have
	// before the Face Subdivider chops it. Zero, the value of an unset
	// field, disables subdivision entirely; the historical default of
	// 240 (DefaultSubdivide) applies only when a caller sets it.
	Subdivide int

	// NoMerge disables the Face Merger pass when true.
	NoMerge bool

	// IncludeSkip causes skip-flagged faces to be emitted anyway,
	// instead of being silently dropped at emission time.
	IncludeSkip bool

	// TargetGame selects the GameRules implementation the rest of the
	// pipeline consults for contents semantics.
	TargetGame GameRules
}

// DefaultSubdivide is the historical default maximum texture extent.
const DefaultSubdivide = 240

// MaxLightmapShift bounds how far lmshift can stretch the effective
// subdivision cap (255 << min(lmshift,4)).
const MaxLightmapShift = 4
