package boss

import (
	"math"

	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/geom"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/world"
)

type TileState int

const (
	TileNormal TileState = iota
	TileWarning
	TileHot
	TileSafe
)

// FloorGrid is the hot/safe floor-tile hazard. It is authoritative for
// area damage lookup by position; the renderer only colors it.
type FloorGrid struct {
	Cols, Rows int
	TileSize   float32
	Tiles      []TileState

	waveTimer float32
	stage     int // 0 idle, 1 warning, 2 hot
}

func newFloorGrid(w *world.World) *FloorGrid {
	size := w.Bal.F("boss.daemon.tile_size", 80)
	cols := int(w.W / size)
	rows := int(w.H / size)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &FloorGrid{
		Cols:     cols,
		Rows:     rows,
		TileSize: size,
		Tiles:    make([]TileState, cols*rows),
	}
}

func (g *FloorGrid) tileIndex(pos world.Vec2) int {
	c := int(pos.X / g.TileSize)
	r := int(pos.Y / g.TileSize)
	if c < 0 {
		c = 0
	}
	if c >= g.Cols {
		c = g.Cols - 1
	}
	if r < 0 {
		r = 0
	}
	if r >= g.Rows {
		r = g.Rows - 1
	}
	return r*g.Cols + c
}

func (g *FloorGrid) tileCenter(idx int) world.Vec2 {
	c := idx % g.Cols
	r := idx / g.Cols
	return world.Vec2{
		X: (float32(c) + 0.5) * g.TileSize,
		Y: (float32(r) + 0.5) * g.TileSize,
	}
}

// StateAt is the damage-lookup entry point: the player's tile decides.
func (g *FloorGrid) StateAt(pos world.Vec2) TileState {
	return g.Tiles[g.tileIndex(pos)]
}

func (g *FloorGrid) update(w *world.World, dt float32) {
	bal := w.Bal
	g.waveTimer -= dt
	if g.waveTimer > 0 {
		return
	}

	switch g.stage {
	case 0: // start a wave: mark safe tiles, everything else telegraphs
		safeFrac := bal.F("boss.daemon.safe_fraction", 0.2)
		for i := range g.Tiles {
			if w.RandFloat32() < safeFrac {
				g.Tiles[i] = TileSafe
			} else {
				g.Tiles[i] = TileWarning
			}
		}
		g.stage = 1
		g.waveTimer = bal.F("boss.daemon.grid_warning", 1.2)
	case 1: // warnings ignite
		for i := range g.Tiles {
			if g.Tiles[i] == TileWarning {
				g.Tiles[i] = TileHot
			}
		}
		g.stage = 2
		g.waveTimer = bal.F("boss.daemon.grid_hot", 2)
	default: // cool down and wait for the next cycle
		for i := range g.Tiles {
			g.Tiles[i] = TileNormal
		}
		g.stage = 0
		g.waveTimer = bal.F("boss.daemon.grid_cycle", 4)
	}
}

// nearestSafeTile returns the center of the closest safe tile, or pos
// unchanged when the wave has no safe tiles.
func (g *FloorGrid) nearestSafeTile(pos world.Vec2) world.Vec2 {
	best := pos
	bestD := float32(math.MaxFloat32)
	for i := range g.Tiles {
		if g.Tiles[i] != TileSafe {
			continue
		}
		c := g.tileCenter(i)
		if d := geom.Dist2(pos, c); d < bestD {
			bestD = d
			best = c
		}
	}
	return best
}

// SpinRing is the phase-4 close-range hazard: blades orbiting the boss.
type SpinRing struct {
	Angle    float32
	RotSpeed float32
	Radius   float32
	Blades   int
	BladeR   float32
	Damage   float32
}

// Daemon is the arena-hazard boss. It rarely attacks directly: push/pull
// force fields, the floor-tile grid, a hazard trail, and a phase-4
// spinning blade ring do the work.
type Daemon struct {
	id    int
	phase phaseTracker
	ids   idGen

	fieldTimer float32
	pushNext   bool
	fields     []ForceField

	grid *FloorGrid

	trailTimer float32
	trail      []TrailBlob

	ring *SpinRing

	contact contactClock

	bossPos world.Vec2
	bossR   float32
}

func newDaemon(id int, w *world.World) *Daemon {
	return &Daemon{
		id:    id,
		phase: newPhaseTracker(),
	}
}

func (s *Daemon) BossID() int { return s.id }

func (s *Daemon) Update(w *world.World, dt float32) {
	b := w.FindEnemy(s.id)
	if b == nil {
		return
	}
	s.contact.tick(dt)

	s.phase.step("daemon", targetPhase(w.Bal, b.HP/b.MaxHP), func(p int) {
		s.enterPhase(w, p)
	})

	s.move(w, b)
	s.spawnFields(w, b, dt)
	if s.phase.Current >= 3 {
		s.dropTrail(w, b, dt)
	}

	integrate(b, w, dt)

	s.fields = updateForceFields(s.fields, w, dt)
	if s.grid != nil {
		s.grid.update(w, dt)
		if s.grid.StateAt(w.Player.Pos) == TileHot {
			w.HurtPlayer(w.Bal.F("boss.daemon.hot_damage", 18))
		}
	}
	s.trail = updateTrail(s.trail, w, dt)
	s.updateRing(w, b, dt)

	s.contact.touch(w, b.Pos, b.R, b.TouchDamage)

	s.bossPos, s.bossR = b.Pos, b.R
}

func (s *Daemon) enterPhase(w *world.World, phase int) {
	bal := w.Bal
	switch phase {
	case 2:
		s.grid = newFloorGrid(w)
	case 3:
		s.trailTimer = 0
	case 4:
		s.ring = &SpinRing{
			RotSpeed: bal.F("boss.daemon.ring_rot_speed", 2.2),
			Radius:   bal.F("boss.daemon.ring_radius", 90),
			Blades:   bal.I("boss.daemon.ring_blade_count", 4),
			BladeR:   bal.F("boss.daemon.ring_blade_radius", 12),
			Damage:   bal.F("boss.daemon.ring_damage", 16),
		}
	}
}

func (s *Daemon) move(w *world.World, b *world.Enemy) {
	// While the floor burns, head for a safe tile; otherwise keep range.
	if s.grid != nil && s.grid.stage == 2 && s.grid.StateAt(b.Pos) == TileHot {
		moveToPoint(b, s.grid.nearestSafeTile(b.Pos), 6)
		return
	}
	maintainDistance(b, w,
		w.Bal.F("boss.daemon.preferred_range", 260),
		w.Bal.F("boss.daemon.range_margin", 60))
}

func (s *Daemon) spawnFields(w *world.World, b *world.Enemy, dt float32) {
	s.fieldTimer -= dt
	if s.fieldTimer > 0 {
		return
	}
	bal := w.Bal
	s.fieldTimer = bal.F("boss.daemon.field_interval", 7)

	strength := bal.F("boss.daemon.push_strength", 160)
	if !s.pushNext {
		strength = -bal.F("boss.daemon.pull_strength", 120)
	}
	s.pushNext = !s.pushNext

	s.fields = append(s.fields, ForceField{
		ID:       s.ids.id(),
		Pos:      b.Pos,
		R:        bal.F("boss.daemon.field_radius", 300),
		Strength: strength,
		Duration: bal.F("boss.daemon.field_duration", 2.5),
	})
}

func (s *Daemon) dropTrail(w *world.World, b *world.Enemy, dt float32) {
	s.trailTimer -= dt
	if s.trailTimer > 0 {
		return
	}
	bal := w.Bal
	s.trailTimer = bal.F("boss.daemon.trail_interval", 0.25)

	if len(s.trail) >= bal.I("boss.daemon.trail_cap", 40) {
		return
	}
	s.trail = append(s.trail, TrailBlob{
		ID:       s.ids.id(),
		Pos:      b.Pos,
		R:        bal.F("boss.daemon.trail_radius", 18),
		Lifetime: bal.F("boss.daemon.trail_lifetime", 3),
		Damage:   bal.F("boss.daemon.trail_damage", 10),
	})
}

func (s *Daemon) updateRing(w *world.World, b *world.Enemy, dt float32) {
	if s.ring == nil {
		return
	}
	r := s.ring
	r.Angle += r.RotSpeed * dt
	for n := 0; n < r.Blades; n++ {
		ang := r.Angle + float32(n)*2*math.Pi/float32(r.Blades)
		pos := b.Pos.Add(geom.FromAngle(ang).Mul(r.Radius))
		if geom.CirclesOverlap(pos, r.BladeR, w.Player.Pos, w.Player.R) {
			w.HurtPlayer(r.Damage)
			return
		}
	}
}

func (s *Daemon) RenderData() RenderData {
	rd := RenderData{
		Kind:    KindDaemon,
		Phase:   s.phase.Current,
		BossPos: s.bossPos,
		BossR:   s.bossR,
	}
	rd.Fields = append(rd.Fields, s.fields...)
	rd.Trail = append(rd.Trail, s.trail...)
	if s.grid != nil {
		rd.GridCols = s.grid.Cols
		rd.GridRows = s.grid.Rows
		rd.TileSize = s.grid.TileSize
		rd.Tiles = append(rd.Tiles, s.grid.Tiles...)
	}
	if s.ring != nil {
		ring := *s.ring
		rd.Ring = &ring
	}
	return rd
}
