package boss

import (
	"math"

	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/commons/logger_config"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/geom"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/world"
)

// Mainframe is the raid-style boss. Phase 1 is void zones and radial
// volleys; phase 2 parks it at the arena center behind destructible pylons
// and marks it invulnerable until every pylon falls; phase 3 adds rotating
// rifts and gravity wells; phase 4 shrinks a safe zone around the center
// while the rifts accelerate.
type Mainframe struct {
	id    int
	phase phaseTracker
	ids   idGen

	voidTimer   float32
	volleyTimer float32
	wellTimer   float32

	voids  []VoidZone
	pylons []Pylon
	rifts  []Rift
	wells  []GravityWell

	safeRadius float32

	contact contactClock

	bossPos world.Vec2
	bossR   float32
}

func newMainframe(id int, w *world.World) *Mainframe {
	return &Mainframe{
		id:    id,
		phase: newPhaseTracker(),
	}
}

func (s *Mainframe) BossID() int { return s.id }

func (s *Mainframe) Update(w *world.World, dt float32) {
	b := w.FindEnemy(s.id)
	if b == nil {
		return
	}
	s.contact.tick(dt)

	// Pylon state and the invulnerability gate resolve before phase
	// evaluation: destroying the last pylon drops the shield on the same
	// tick, whether or not a phase advance follows.
	s.updatePylons(w, dt)
	if s.phase.Current == 2 && s.pylonsDown() && b.Invulnerable {
		b.Invulnerable = false
		logger_config.Infof("boss: mainframe shield down")
	}

	target := targetPhase(w.Bal, b.HP/b.MaxHP)
	if s.phase.Current == 2 && !s.pylonsDown() && target > 2 {
		target = 2 // gated until every pylon is destroyed
	}
	s.phase.step("mainframe", target, func(p int) {
		s.enterPhase(w, b, p)
	})

	if s.phase.Current == 1 {
		chasePlayer(b, w, 0.8)
	} else {
		moveToPoint(b, w.ArenaCenter, 8)
	}

	s.spawnVoids(w, dt)
	if s.phase.Current <= 2 {
		s.radialVolley(w, b, dt)
	}
	if s.phase.Current >= 3 {
		s.spawnWells(w, dt)
	}
	if s.phase.Current >= 4 {
		s.shrinkSafeZone(w, dt)
	}

	integrate(b, w, dt)

	s.voids = updateVoidZones(s.voids, w, dt)
	updateRifts(s.rifts, w.ArenaCenter, w, dt)
	s.wells = updateGravityWells(s.wells, w, dt)

	s.contact.touch(w, b.Pos, b.R, b.TouchDamage)

	s.bossPos, s.bossR = b.Pos, b.R
}

func (s *Mainframe) enterPhase(w *world.World, b *world.Enemy, phase int) {
	bal := w.Bal
	switch phase {
	case 2:
		count := bal.I("boss.mainframe.pylon_count", 4)
		if count <= 0 {
			// degenerate tuning: no pylons means no gate and no shield
			return
		}
		ring := bal.F("boss.mainframe.pylon_ring_radius", 240)
		for n := 0; n < count; n++ {
			pos := w.ArenaCenter.Add(geom.FromAngle(float32(n) * 2 * math.Pi / float32(count)).Mul(ring))
			pos = w.ClampToArena(pos, bal.F("boss.mainframe.pylon_radius", 14))
			id := w.AddEnemy(world.Enemy{
				Pos:   pos,
				Kind:  world.EnemyPylon,
				R:     bal.F("boss.mainframe.pylon_radius", 14),
				MaxHP: bal.F("boss.mainframe.pylon_health", 120),
				HP:    bal.F("boss.mainframe.pylon_health", 120),
			})
			s.pylons = append(s.pylons, Pylon{
				ID:        id,
				Pos:       pos,
				ShotTimer: bal.F("boss.mainframe.pylon_shot_interval", 2.8) * (0.5 + 0.5*float32(n)/float32(count)),
			})
		}
		b.Invulnerable = true
	case 3:
		count := bal.I("boss.mainframe.rift_count", 2)
		for n := 0; n < count; n++ {
			s.rifts = append(s.rifts, Rift{
				ID:        s.ids.id(),
				Angle:     float32(n) * math.Pi / float32(count),
				RotSpeed:  bal.F("boss.mainframe.rift_rot_speed", 0.4),
				Length:    bal.F("boss.mainframe.rift_length", 600),
				HalfWidth: bal.F("boss.mainframe.rift_half_width", 8),
				Damage:    bal.F("boss.mainframe.rift_damage", 18),
				Warmup:    bal.F("boss.mainframe.rift_warning", 1.0),
			})
		}
		s.wellTimer = 0
	case 4:
		s.safeRadius = bal.F("boss.mainframe.safe_radius_start", min32(w.W, w.H)/2)
		faster := bal.F("boss.mainframe.rift_rot_speed_p4", 0.7)
		for i := range s.rifts {
			s.rifts[i].RotSpeed = faster
		}
	}
}

func (s *Mainframe) updatePylons(w *world.World, dt float32) {
	for i := range s.pylons {
		p := &s.pylons[i]
		if p.Destroyed {
			continue
		}
		e := w.FindEnemy(p.ID)
		if e == nil || e.HP <= 0 {
			p.Destroyed = true
			continue
		}
		p.Pos = e.Pos

		p.ShotTimer -= dt
		if p.ShotTimer > 0 {
			continue
		}
		p.ShotTimer = w.Bal.F("boss.mainframe.pylon_shot_interval", 2.8)

		dir := w.Player.Pos.Sub(p.Pos).Norm()
		if dir.X == 0 && dir.Y == 0 {
			continue
		}
		w.AddProjectile(world.Projectile{
			Pos:       p.Pos,
			Vel:       dir.Mul(w.Bal.F("boss.mainframe.pylon_shot_speed", 180)),
			R:         5,
			Damage:    w.Bal.F("boss.mainframe.pylon_shot_damage", 7),
			Life:      6,
			FromEnemy: true,
			Homing:    true,
			TurnRate:  w.Bal.F("boss.mainframe.pylon_shot_turn_rate", 2.0),
		})
	}
}

// pylonsDown treats an empty set as trivially down so a zero pylon_count
// never leaves the boss gated.
func (s *Mainframe) pylonsDown() bool {
	for i := range s.pylons {
		if !s.pylons[i].Destroyed {
			return false
		}
	}
	return true
}

// DestroyedPylons reports progress through the phase 2 gate.
func (s *Mainframe) DestroyedPylons() (down, total int) {
	for i := range s.pylons {
		if s.pylons[i].Destroyed {
			down++
		}
	}
	return down, len(s.pylons)
}

func (s *Mainframe) spawnVoids(w *world.World, dt float32) {
	s.voidTimer -= dt
	if s.voidTimer > 0 {
		return
	}
	s.voidTimer = w.Bal.F("boss.mainframe.void_interval", 2.5)

	if len(s.voids) >= w.Bal.I("boss.mainframe.void_cap", 8) {
		return
	}

	bal := w.Bal
	off := geom.FromAngle(w.RandFloat32() * 2 * math.Pi).Mul(w.RandRange(0, 120))
	s.voids = append(s.voids, VoidZone{
		ID:          s.ids.id(),
		Pos:         w.ClampToArena(w.Player.Pos.Add(off), bal.F("boss.mainframe.void_radius", 70)),
		R:           bal.F("boss.mainframe.void_radius", 70),
		WarningTime: bal.F("boss.mainframe.void_warning", 1.2),
		ActiveTime:  bal.F("boss.mainframe.void_active", 2),
		Damage:      bal.F("boss.mainframe.void_damage", 15),
	})
}

func (s *Mainframe) radialVolley(w *world.World, b *world.Enemy, dt float32) {
	s.volleyTimer -= dt
	if s.volleyTimer > 0 {
		return
	}
	bal := w.Bal
	s.volleyTimer = bal.F("boss.mainframe.volley_interval", 3)

	count := bal.I("boss.mainframe.volley_count", 8)
	speed := bal.F("boss.mainframe.shot_speed", 200)
	// offset the ring each volley so standing still is never safe
	base := w.RandFloat32() * 2 * math.Pi
	for n := 0; n < count; n++ {
		ang := base + float32(n)*2*math.Pi/float32(count)
		w.AddProjectile(world.Projectile{
			Pos:       b.Pos,
			Vel:       geom.FromAngle(ang).Mul(speed),
			R:         bal.F("boss.mainframe.shot_radius", 5),
			Damage:    bal.F("boss.mainframe.shot_damage", 9),
			Life:      bal.F("boss.mainframe.shot_life", 5),
			FromEnemy: true,
		})
	}
}

func (s *Mainframe) spawnWells(w *world.World, dt float32) {
	s.wellTimer -= dt
	if s.wellTimer > 0 {
		return
	}
	s.wellTimer = w.Bal.F("boss.mainframe.well_interval", 6)

	if len(s.wells) >= w.Bal.I("boss.mainframe.well_cap", 3) {
		return
	}

	bal := w.Bal
	pos := world.Vec2{
		X: w.RandRange(w.W*0.2, w.W*0.8),
		Y: w.RandRange(w.H*0.2, w.H*0.8),
	}
	s.wells = append(s.wells, GravityWell{
		ID:   s.ids.id(),
		Pos:  pos,
		R:    bal.F("boss.mainframe.well_radius", 150),
		Pull: bal.F("boss.mainframe.well_pull", 140),
		Life: bal.F("boss.mainframe.well_lifetime", 10),
	})
}

func (s *Mainframe) shrinkSafeZone(w *world.World, dt float32) {
	bal := w.Bal
	minR := bal.F("boss.mainframe.safe_min_radius", 140)
	s.safeRadius -= bal.F("boss.mainframe.shrink_rate", 12) * dt
	if s.safeRadius < minR {
		s.safeRadius = minR
	}
	if geom.Dist(w.Player.Pos, w.ArenaCenter) > s.safeRadius {
		w.HurtPlayer(bal.F("boss.mainframe.outside_damage", 20))
	}
}

func (s *Mainframe) RenderData() RenderData {
	rd := RenderData{
		Kind:       KindMainframe,
		Phase:      s.phase.Current,
		BossPos:    s.bossPos,
		BossR:      s.bossR,
		SafeRadius: s.safeRadius,
	}
	if s.phase.Current == 2 {
		rd.Mode = "shielded"
		if s.pylonsDown() {
			rd.Mode = "exposed"
		}
	}
	rd.Voids = append(rd.Voids, s.voids...)
	rd.Pylons = append(rd.Pylons, s.pylons...)
	rd.Rifts = append(rd.Rifts, s.rifts...)
	rd.Wells = append(rd.Wells, s.wells...)
	return rd
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
