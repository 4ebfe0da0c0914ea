package world

import (
	"math"

	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/geom"
)

// ============================================================================
// MINION MOVEMENT
// ============================================================================

func (w *World) updateMinions(dt float32) {
	w.drainAIResults()
	intents := w.consumeAIIntentsForTick(w.aiTick)

	p := w.Player.Pos
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.HitT > 0 {
			e.HitT -= dt
			if e.HitT < 0 {
				e.HitT = 0
			}
		}
		if !e.Kind.IsMinion() {
			continue
		}

		dir := Vec2{}
		speedScale := float32(1)
		if in, has := intents[e.ID]; has {
			dir = in.Dir
			speedScale = geom.Clamp(in.SpeedScale, 0.2, 1.5)
		} else {
			toP := p.Sub(e.Pos)
			if toP.X == 0 && toP.Y == 0 {
				continue
			}
			dir = toP.Norm()
		}

		if dir.X != 0 || dir.Y != 0 {
			prev := e.Pos
			e.Pos = e.Pos.Add(dir.Mul(e.Speed * speedScale * dt))
			e.Pos = w.ClampToArena(e.Pos, e.R)
			e.Pos = w.ResolveObstacles(e.Pos, prev, e.R)
		}

		if e.Kind == EnemyStinger {
			w.updateStingerShot(e, dt)
		}
	}

	w.aiTick++
	w.submitAIJob(w.aiTick)
}

func (w *World) updateStingerShot(e *Enemy, dt float32) {
	e.ShotTimer -= dt
	if e.ShotTimer > 0 {
		return
	}
	e.ShotTimer = w.Bal.F("minion.stinger_shot_interval", 2.4)

	dir := w.Player.Pos.Sub(e.Pos).Norm()
	if dir.X == 0 && dir.Y == 0 {
		return
	}
	w.AddProjectile(Projectile{
		Pos:       e.Pos,
		Vel:       dir.Mul(w.Bal.F("minion.stinger_shot_speed", 210)),
		R:         w.Bal.F("minion.stinger_shot_radius", 4),
		Damage:    w.Bal.F("minion.stinger_shot_damage", 6),
		Life:      w.Bal.F("minion.stinger_shot_life", 4),
		FromEnemy: true,
	})
}

// ============================================================================
// PROJECTILES
// ============================================================================

func (w *World) updateProjectiles(dt float32) {
	for i := 0; i < len(w.Projectiles); {
		pr := &w.Projectiles[i]

		if pr.Homing && pr.TurnRate > 0 {
			w.steerHoming(pr, dt)
		}

		pr.Pos = pr.Pos.Add(pr.Vel.Mul(dt))
		pr.Life -= dt

		if pr.Life <= 0 || w.outOfArena(pr.Pos, pr.R) {
			w.removeProjectileAt(i)
			continue
		}

		if pr.FromEnemy {
			if geom.CirclesOverlap(pr.Pos, pr.R, w.Player.Pos, w.Player.R) {
				w.HurtPlayer(pr.Damage)
				w.removeProjectileAt(i)
				continue
			}
		} else if hit := w.projectileHitsEnemy(pr); hit {
			w.removeProjectileAt(i)
			continue
		}

		i++
	}
}

func (w *World) steerHoming(pr *Projectile, dt float32) {
	want := w.Player.Pos.Sub(pr.Pos)
	if want.X == 0 && want.Y == 0 {
		return
	}
	speed := pr.Vel.Len()
	if speed == 0 {
		return
	}
	cur := float32(math.Atan2(float64(pr.Vel.Y), float64(pr.Vel.X)))
	target := float32(math.Atan2(float64(want.Y), float64(want.X)))
	diff := target - cur
	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	for diff < -math.Pi {
		diff += 2 * math.Pi
	}
	maxTurn := pr.TurnRate * dt
	diff = geom.Clamp(diff, -maxTurn, maxTurn)
	pr.Vel = geom.FromAngle(cur + diff).Mul(speed)
}

func (w *World) projectileHitsEnemy(pr *Projectile) bool {
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if geom.CirclesOverlap(pr.Pos, pr.R, e.Pos, e.R) {
			w.DamageEnemy(e.ID, pr.Damage)
			return true
		}
	}
	return false
}

func (w *World) outOfArena(pos Vec2, r float32) bool {
	const margin = 64
	return pos.X < -r-margin || pos.Y < -r-margin ||
		pos.X > w.W+r+margin || pos.Y > w.H+r+margin
}

// ============================================================================
// CONTACT DAMAGE
// ============================================================================

// updateContactDamage covers minions touching the player. Boss bodies run
// their own contact checks inside their controllers, with a separate
// contact cooldown.
func (w *World) updateContactDamage() {
	p := w.Player.Pos
	pr := w.Player.R
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.Kind.IsBoss() || e.TouchDamage <= 0 {
			continue
		}
		if geom.CirclesOverlap(p, pr, e.Pos, e.R) {
			w.HurtPlayer(e.TouchDamage)
			return
		}
	}
}

// ============================================================================
// SPAWNING
// ============================================================================

// SpawnMinions places up to want minions of kind around center, honoring
// the live-count cap. Placement retries a bounded number of times against
// obstacle overlap, then falls back to center itself so a crowded arena
// never fails the spawn. Returns the number actually created.
func (w *World) SpawnMinions(kind EnemyKind, center Vec2, want, cap int) int {
	if want <= 0 {
		return 0
	}
	if room := cap - w.LiveMinionCount(); room < want {
		want = room
	}
	if want <= 0 {
		return 0
	}

	radius := w.Bal.F("minion.spawn_radius", 70)
	for n := 0; n < want; n++ {
		pos := w.findSpawnSpot(center, radius, 8)
		w.spawnMinionAt(kind, pos)
	}
	return want
}

func (w *World) findSpawnSpot(center Vec2, radius float32, attempts int) Vec2 {
	r := w.Bal.F("minion.radius", 8)
	for try := 0; try < attempts; try++ {
		ang := w.RandFloat32() * 2 * math.Pi
		pos := center.Add(geom.FromAngle(ang).Mul(w.RandRange(radius*0.4, radius)))
		pos = w.ClampToArena(pos, r)
		if !w.overlapsObstacle(pos, r) {
			return pos
		}
	}
	return w.ClampToArena(center, r)
}

func (w *World) overlapsObstacle(pos Vec2, r float32) bool {
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		if geom.CircleRectOverlap(pos, r, o.Pos, o.W, o.H) {
			return true
		}
	}
	return false
}

func (w *World) spawnMinionAt(kind EnemyKind, pos Vec2) {
	e := Enemy{
		Pos:         pos,
		Kind:        kind,
		R:           w.Bal.F("minion.radius", 8),
		Speed:       w.Bal.F("minion.speed", 120),
		MaxHP:       w.Bal.F("minion.health", 40),
		HP:          w.Bal.F("minion.health", 40),
		TouchDamage: w.Bal.F("minion.touch_damage", 8),
	}
	if kind == EnemyStinger {
		e.Speed = w.Bal.F("minion.stinger_speed", 140)
		e.ShotTimer = w.RandRange(0.5, 1.5)
	}
	w.AddEnemy(e)
}

func (w *World) placeObstacles() {
	hp := w.Bal.F("obstacle.health", 80)
	size := w.Bal.F("obstacle.size", 48)
	count := w.Bal.I("obstacle.count", 5)
	for n := 0; n < count; n++ {
		pos := Vec2{
			X: w.RandRange(w.W*0.15, w.W*0.85),
			Y: w.RandRange(w.H*0.15, w.H*0.85),
		}
		// keep the arena center and the player start clear
		if geom.Dist(pos, w.ArenaCenter) < 180 || geom.Dist(pos, w.Player.Pos) < 120 {
			continue
		}
		w.Obstacles = append(w.Obstacles, Obstacle{
			Pos: pos, W: size, H: size,
			Destructible: true,
			HP:           hp,
		})
	}
}

// ============================================================================
// REMOVAL
// ============================================================================

func (w *World) sweepDead() {
	for i := 0; i < len(w.Enemies); {
		e := &w.Enemies[i]
		if e.HP > 0 {
			i++
			continue
		}
		w.Bursts = append(w.Bursts, Burst{Pos: e.Pos, Count: 8})
		w.Stats.EnemiesKilled++
		if e.Kind.IsBoss() {
			w.Victory = true
		}
		w.removeEnemyAt(i)
	}
}

func (w *World) removeEnemyAt(idx int) {
	last := len(w.Enemies) - 1
	if idx != last {
		w.Enemies[idx] = w.Enemies[last]
	}
	w.Enemies = w.Enemies[:last]
}

func (w *World) removeProjectileAt(idx int) {
	last := len(w.Projectiles) - 1
	if idx != last {
		w.Projectiles[idx] = w.Projectiles[last]
	}
	w.Projectiles = w.Projectiles[:last]
}
