package boss

import (
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/geom"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/world"
)

// Movement policies. Each sets the boss velocity for this tick; integrate
// then applies it with arena-bounds and obstacle clamping. Zero-length
// directions short-circuit to no movement.

func chasePlayer(b *world.Enemy, w *world.World, speedMult float32) {
	dir := w.Player.Pos.Sub(b.Pos)
	if dir.X == 0 && dir.Y == 0 {
		b.Vel = world.Vec2{}
		return
	}
	b.Vel = dir.Norm().Mul(b.Speed * speedMult)
}

// maintainDistance backs off inside prefer, closes in outside
// prefer+margin, and strafes perpendicular in between.
func maintainDistance(b *world.Enemy, w *world.World, prefer, margin float32) {
	to := w.Player.Pos.Sub(b.Pos)
	d := to.Len()
	if d == 0 {
		b.Vel = world.Vec2{}
		return
	}
	dir := to.Norm()
	switch {
	case d < prefer:
		b.Vel = dir.Mul(-b.Speed)
	case d > prefer+margin:
		b.Vel = dir.Mul(b.Speed)
	default:
		b.Vel = dir.Perp().Mul(b.Speed * 0.6)
	}
}

// moveToPoint heads for a fixed point and stops within arrive distance.
func moveToPoint(b *world.Enemy, target world.Vec2, arrive float32) {
	to := target.Sub(b.Pos)
	if to.Len() <= arrive {
		b.Vel = world.Vec2{}
		return
	}
	b.Vel = to.Norm().Mul(b.Speed)
}

func stayPut(b *world.Enemy) { b.Vel = world.Vec2{} }

func integrate(b *world.Enemy, w *world.World, dt float32) {
	if b.Vel.X == 0 && b.Vel.Y == 0 {
		return
	}
	prev := b.Pos
	b.Pos = b.Pos.Add(b.Vel.Mul(dt))
	b.Pos = w.ClampToArena(b.Pos, b.R)
	b.Pos = w.ResolveObstacles(b.Pos, prev, b.R)
}

// contactClock rate-limits direct body touch damage with a short cooldown
// independent of the player's invulnerability window, so overlapping
// per-segment checks can't double-hit across ticks.
type contactClock struct {
	t float32
}

func (c *contactClock) tick(dt float32) {
	if c.t > 0 {
		c.t -= dt
		if c.t < 0 {
			c.t = 0
		}
	}
}

func (c *contactClock) touch(w *world.World, pos world.Vec2, r, dmg float32) bool {
	if c.t > 0 {
		return false
	}
	if !geom.CirclesOverlap(pos, r, w.Player.Pos, w.Player.R) {
		return false
	}
	if !w.HurtPlayer(dmg) {
		return false
	}
	c.t = w.Bal.F("boss.contact_cooldown", 0.5)
	return true
}
