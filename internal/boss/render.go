package boss

import "github.com/wolfgangpeters02/defend-and-descend-sub008/internal/world"

// RenderData is the read-only projection of a controller for the
// presentation layer: current phase, active mode or sub-state, the boss
// transform, and copies (never references) of every hazard collection.
// It is the only sanctioned way to observe controller internals.
type RenderData struct {
	Kind  Kind
	Phase int
	Mode  string

	BossPos world.Vec2
	BossR   float32

	// Breacher
	Zones []DamageZone
	Beams []Beam

	// Mainframe
	Voids      []VoidZone
	Pylons     []Pylon
	Rifts      []Rift
	Wells      []GravityWell
	SafeRadius float32

	// Daemon
	Fields   []ForceField
	Trail    []TrailBlob
	GridCols int
	GridRows int
	TileSize float32
	Tiles    []TileState
	Ring     *SpinRing

	// Wyrm
	Segments []world.Vec2
	SubWorms []SubWorm
}
