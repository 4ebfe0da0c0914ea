package boss

import (
	"math"

	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/geom"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/world"
)

type Stance int

const (
	StanceMelee Stance = iota
	StanceRanged
)

func (s Stance) String() string {
	if s == StanceMelee {
		return "melee"
	}
	return "ranged"
}

// Breacher is the mode-switching brawler: it alternates melee and ranged
// stances, calls in drone minions from phase 2, drops timed damage zones
// from phase 3, and spins up rotating beams in phase 4.
type Breacher struct {
	id    int
	phase phaseTracker
	ids   idGen

	stance      Stance
	stanceTimer float32

	volleyTimer   float32
	minionTimer   float32
	zoneTimer     float32
	obstacleTimer float32

	zones []DamageZone
	beams []Beam

	contact contactClock

	// last observed boss transform, cached for RenderData
	bossPos world.Vec2
	bossR   float32
}

func newBreacher(id int, w *world.World) *Breacher {
	s := &Breacher{
		id:    id,
		phase: newPhaseTracker(),
	}
	s.stanceTimer = w.Bal.F("boss.breacher.stance_interval", 6)
	return s
}

func (s *Breacher) BossID() int { return s.id }

func (s *Breacher) Update(w *world.World, dt float32) {
	b := w.FindEnemy(s.id)
	if b == nil {
		return
	}
	s.contact.tick(dt)

	ratio := b.HP / b.MaxHP
	s.phase.step("breacher", targetPhase(w.Bal, ratio), func(p int) {
		s.enterPhase(w, b, p)
	})

	s.updateStance(w, dt)

	switch s.stance {
	case StanceMelee:
		s.meleeBody(w, b, dt)
	case StanceRanged:
		s.rangedBody(w, b, dt)
	}

	if s.phase.Current >= 2 {
		s.spawnMinions(w, b, dt)
	}
	if s.phase.Current >= 3 {
		s.spawnZones(w, dt)
	}

	integrate(b, w, dt)

	s.zones = updateDamageZones(s.zones, w, dt)
	updateBeams(s.beams, b.Pos, w, dt)

	s.contact.touch(w, b.Pos, b.R, b.TouchDamage)

	s.bossPos, s.bossR = b.Pos, b.R
}

func (s *Breacher) enterPhase(w *world.World, b *world.Enemy, phase int) {
	switch phase {
	case 2:
		s.minionTimer = 0 // first wave immediately
	case 3:
		s.zoneTimer = 0
	case 4:
		bal := w.Bal
		count := bal.I("boss.breacher.beam_count", 3)
		for n := 0; n < count; n++ {
			s.beams = append(s.beams, Beam{
				ID:        s.ids.id(),
				Angle:     float32(n) * 2 * math.Pi / float32(count),
				RotSpeed:  bal.F("boss.breacher.beam_rot_speed", 0.8),
				Length:    bal.F("boss.breacher.beam_length", 260),
				HalfWidth: bal.F("boss.breacher.beam_half_width", 10),
				Damage:    bal.F("boss.breacher.beam_damage", 20),
				Warmup:    bal.F("boss.breacher.beam_warning", 1.5),
			})
		}
	}
}

func (s *Breacher) updateStance(w *world.World, dt float32) {
	s.stanceTimer -= dt
	if s.stanceTimer > 0 {
		return
	}
	s.stanceTimer = w.Bal.F("boss.breacher.stance_interval", 6)
	if s.stance == StanceMelee {
		s.stance = StanceRanged
	} else {
		s.stance = StanceMelee
	}
}

func (s *Breacher) meleeBody(w *world.World, b *world.Enemy, dt float32) {
	mult := w.Bal.F("boss.breacher.melee_speed_mult", 1.4)
	mult *= 1 + 0.1*float32(s.phase.Current-1)
	chasePlayer(b, w, mult)

	// Melee contact grinds down destructible cover in the way.
	if s.obstacleTimer > 0 {
		s.obstacleTimer -= dt
	}
	if s.obstacleTimer <= 0 {
		for i := range w.Obstacles {
			o := &w.Obstacles[i]
			if !o.Destructible {
				continue
			}
			if geom.CircleRectOverlap(b.Pos, b.R+6, o.Pos, o.W, o.H) {
				w.DamageObstacle(i, w.Bal.F("boss.breacher.obstacle_hit_damage", 40))
				s.obstacleTimer = w.Bal.F("boss.breacher.obstacle_hit_cooldown", 0.8)
				break
			}
		}
	}
}

func (s *Breacher) rangedBody(w *world.World, b *world.Enemy, dt float32) {
	maintainDistance(b, w,
		w.Bal.F("boss.breacher.preferred_range", 220),
		w.Bal.F("boss.breacher.range_margin", 60))

	s.volleyTimer -= dt
	if s.volleyTimer > 0 {
		return
	}
	s.volleyTimer = w.Bal.F("boss.breacher.volley_interval", 2.2)
	s.fireVolley(w, b)
}

func (s *Breacher) fireVolley(w *world.World, b *world.Enemy) {
	to := w.Player.Pos.Sub(b.Pos)
	if to.X == 0 && to.Y == 0 {
		return
	}
	bal := w.Bal
	count := bal.I("boss.breacher.volley_count", 5)
	spread := bal.F("boss.breacher.volley_spread", 0.5)
	speed := bal.F("boss.breacher.shot_speed", 240)
	aim := float32(math.Atan2(float64(to.Y), float64(to.X)))

	for n := 0; n < count; n++ {
		frac := float32(0)
		if count > 1 {
			frac = float32(n)/float32(count-1) - 0.5
		}
		w.AddProjectile(world.Projectile{
			Pos:       b.Pos,
			Vel:       geom.FromAngle(aim + frac*spread).Mul(speed),
			R:         bal.F("boss.breacher.shot_radius", 5),
			Damage:    bal.F("boss.breacher.shot_damage", 10),
			Life:      bal.F("boss.breacher.shot_life", 4),
			FromEnemy: true,
		})
	}
}

func (s *Breacher) spawnMinions(w *world.World, b *world.Enemy, dt float32) {
	s.minionTimer -= dt
	if s.minionTimer > 0 {
		return
	}
	s.minionTimer = w.Bal.F("boss.breacher.minion_interval", 5)

	cap := w.Bal.I("boss.minion_cap", 8)
	if s.phase.Current >= 3 {
		// later phases already add visual and collision load
		cap = w.Bal.I("boss.minion_cap_late", 5)
	}
	kind := world.EnemyDrone
	if s.stance == StanceRanged {
		kind = world.EnemyStinger
	}
	w.SpawnMinions(kind, b.Pos, w.Bal.I("boss.breacher.minion_batch", 2), cap)
}

func (s *Breacher) spawnZones(w *world.World, dt float32) {
	s.zoneTimer -= dt
	if s.zoneTimer > 0 {
		return
	}
	s.zoneTimer = w.Bal.F("boss.breacher.zone_interval", 3)

	if len(s.zones) >= w.Bal.I("boss.breacher.zone_cap", 6) {
		return
	}

	bal := w.Bal
	off := geom.FromAngle(w.RandFloat32() * 2 * math.Pi).Mul(w.RandRange(0, 90))
	s.zones = append(s.zones, DamageZone{
		ID:           s.ids.id(),
		Pos:          w.ClampToArena(w.Player.Pos.Add(off), bal.F("boss.breacher.zone_radius", 60)),
		R:            bal.F("boss.breacher.zone_radius", 60),
		MaxLifetime:  bal.F("boss.breacher.zone_lifetime", 4),
		Warning:      bal.F("boss.breacher.zone_warning", 1),
		TickDamage:   bal.F("boss.breacher.zone_tick_damage", 12),
		PopDamage:    bal.F("boss.breacher.zone_pop_damage", 25),
		PopThreshold: bal.F("boss.breacher.zone_pop_threshold", 0.5),
	})
}

func (s *Breacher) RenderData() RenderData {
	rd := RenderData{
		Kind:    KindBreacher,
		Phase:   s.phase.Current,
		Mode:    s.stance.String(),
		BossPos: s.bossPos,
		BossR:   s.bossR,
	}
	rd.Zones = append(rd.Zones, s.zones...)
	rd.Beams = append(rd.Beams, s.beams...)
	return rd
}
